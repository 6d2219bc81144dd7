// Package roster keeps the persistent units and battalions of a campaign
// and applies engagement results to them.
package roster

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrDuplicateUnit      = errors.New("unit number already taken in this side and battalion")
	ErrDuplicateBattalion = errors.New("battalion name already taken")
	ErrUnknownUnit        = errors.New("unknown unit")
	ErrUnknownBattalion   = errors.New("unknown battalion")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidUnit        = errors.New("invalid unit")
)

// Roster is the unit roster and battalion registry of one campaign.
// It is not safe for concurrent use.
type Roster struct {
	units      map[string]*Unit
	battalions map[string]*Battalion
	newID      func() string
}

func New() *Roster {
	return &Roster{
		units:      map[string]*Unit{},
		battalions: map[string]*Battalion{},
		newID:      uuid.NewString,
	}
}

// UnitSpec is the editable part of a unit.
type UnitSpec struct {
	Number      int      `json:"number"`
	Type        UnitType `json:"type"`
	BattalionID *string  `json:"battalion_id"`
	Side        Side     `json:"side"`
	People      int      `json:"people"`
	Experience  int      `json:"experience"`
	Supplies    int      `json:"supplies"`
}

func (r *Roster) Unit(id string) (Unit, bool) {
	u, ok := r.units[id]
	if !ok {
		return Unit{}, false
	}
	return u.clone(), true
}

func (r *Roster) Len() int { return len(r.units) }

// Units lists all units ordered by side, battalion name and number.
func (r *Roster) Units() []Unit {
	out := make([]Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Side != b.Side {
			return a.Side == Own
		}
		if an, bn := r.battalionName(a), r.battalionName(b); an != bn {
			return an < bn
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.ID < b.ID
	})
	return out
}

func (r *Roster) Battalion(id string) (Battalion, bool) {
	b, ok := r.battalions[id]
	if !ok {
		return Battalion{}, false
	}
	return *b, true
}

// Battalions lists battalions ordered by name.
func (r *Roster) Battalions() []Battalion {
	out := make([]Battalion, 0, len(r.battalions))
	for _, b := range r.battalions {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CreateBattalion registers a battalion. Names are unique, compared
// exactly.
func (r *Roster) CreateBattalion(name string) (Battalion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Battalion{}, ErrEmptyName
	}
	if r.battalionByName(name) != nil {
		return Battalion{}, fmt.Errorf("%w: %q", ErrDuplicateBattalion, name)
	}
	b := &Battalion{ID: r.newID(), Name: name}
	r.battalions[b.ID] = b
	return *b, nil
}

func (r *Roster) RenameBattalion(id, name string) (Battalion, error) {
	b, ok := r.battalions[id]
	if !ok {
		return Battalion{}, fmt.Errorf("%w: %s", ErrUnknownBattalion, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Battalion{}, ErrEmptyName
	}
	if other := r.battalionByName(name); other != nil && other.ID != id {
		return Battalion{}, fmt.Errorf("%w: %q", ErrDuplicateBattalion, name)
	}
	b.Name = name
	return *b, nil
}

func (r *Roster) battalionByName(name string) *Battalion {
	for _, b := range r.battalions {
		if b.Name == name {
			return b
		}
	}
	return nil
}

func (r *Roster) battalionName(u Unit) string {
	if b, ok := r.battalions[u.battalion()]; ok {
		return b.Name
	}
	return ""
}

// NextNumber suggests the number for a new unit in the given scope.
func (r *Roster) NextNumber(side Side, battalionID *string) int {
	scope := ""
	if battalionID != nil {
		scope = *battalionID
	}
	n := 0
	for _, u := range r.units {
		if u.Side == side && u.battalion() == scope && u.Number > n {
			n = u.Number
		}
	}
	return n + 1
}

func (r *Roster) validate(spec *UnitSpec, self string) error {
	if !spec.Side.Valid() {
		return fmt.Errorf("%w: side %q", ErrInvalidUnit, spec.Side)
	}
	if spec.Type == "" {
		spec.Type = Company
	}
	if !spec.Type.Valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidUnit, spec.Type)
	}
	if spec.BattalionID != nil && *spec.BattalionID == "" {
		spec.BattalionID = nil
	}
	if spec.BattalionID != nil {
		if _, ok := r.battalions[*spec.BattalionID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownBattalion, *spec.BattalionID)
		}
	}
	if spec.Number == 0 {
		spec.Number = r.NextNumber(spec.Side, spec.BattalionID)
	}
	if spec.Number < 0 {
		return fmt.Errorf("%w: number %d", ErrInvalidUnit, spec.Number)
	}
	scope := ""
	if spec.BattalionID != nil {
		scope = *spec.BattalionID
	}
	for _, u := range r.units {
		if u.ID != self && u.Side == spec.Side && u.battalion() == scope && u.Number == spec.Number {
			return fmt.Errorf("%w: %s", ErrDuplicateUnit, label(spec.Number, u.Type))
		}
	}
	return nil
}

// CreateUnit adds a unit. A zero Number takes the next free one in the
// unit's side and battalion.
func (r *Roster) CreateUnit(spec UnitSpec) (Unit, error) {
	if err := r.validate(&spec, ""); err != nil {
		return Unit{}, err
	}
	u := &Unit{
		ID:          r.newID(),
		Number:      spec.Number,
		Type:        spec.Type,
		BattalionID: spec.BattalionID,
		Side:        spec.Side,
		People:      spec.People,
		Experience:  spec.Experience,
		Supplies:    spec.Supplies,
		History:     []BattleRecord{},
	}
	u.clamp()
	r.units[u.ID] = u
	return u.clone(), nil
}

// UpdateUnit edits a unit in place. Moving it to another side or battalion
// keeps its ID, counters and history. A zero Number keeps the current one
// unless the unit changes side or battalion.
func (r *Roster) UpdateUnit(id string, spec UnitSpec) (Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %s", ErrUnknownUnit, id)
	}
	if spec.Number == 0 {
		scope := ""
		if spec.BattalionID != nil {
			scope = *spec.BattalionID
		}
		if spec.Side == u.Side && scope == u.battalion() {
			spec.Number = u.Number
		}
	}
	if err := r.validate(&spec, id); err != nil {
		return Unit{}, err
	}
	u.Number = spec.Number
	u.Type = spec.Type
	u.BattalionID = spec.BattalionID
	u.Side = spec.Side
	u.People = spec.People
	u.Experience = spec.Experience
	u.Supplies = spec.Supplies
	u.clamp()
	return u.clone(), nil
}

// DeleteUnit removes a unit and its history for good.
func (r *Roster) DeleteUnit(id string) error {
	if _, ok := r.units[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUnit, id)
	}
	delete(r.units, id)
	return nil
}

// Reinforce adds people to a unit up to the roster maximum and counts the
// reinforcement.
func (r *Roster) Reinforce(id string, people int) (Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %s", ErrUnknownUnit, id)
	}
	if people <= 0 {
		return Unit{}, fmt.Errorf("%w: reinforcement of %d", ErrInvalidUnit, people)
	}
	u.People += people
	u.Reinforcements++
	u.clamp()
	return u.clone(), nil
}

// DisplayName renders a unit for lists and journals, e.g. "3 company (Iron)".
func (r *Roster) DisplayName(id string) string {
	u, ok := r.units[id]
	if !ok {
		return id
	}
	name := label(u.Number, u.Type)
	if bn := r.battalionName(*u); bn != "" {
		name += " (" + bn + ")"
	}
	return name
}
