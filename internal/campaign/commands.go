package campaign

import (
	"fmt"

	"wargame/internal/combat"
	"wargame/internal/roster"
)

func (m *Model) CreateUnit(spec roster.UnitSpec) (roster.Unit, error) {
	return m.roster.CreateUnit(spec)
}

// UpdateUnit edits a unit. A participating unit keeps its place in the
// engagement only while it stays on the same side.
func (m *Model) UpdateUnit(id string, spec roster.UnitSpec) (roster.Unit, error) {
	if m.participating(id) {
		if cur, ok := m.roster.Unit(id); ok && cur.Side != spec.Side {
			return roster.Unit{}, fmt.Errorf("%w: %s", ErrUnitParticipating, m.roster.DisplayName(id))
		}
	}
	u, err := m.roster.UpdateUnit(id, spec)
	if err != nil {
		return roster.Unit{}, err
	}
	m.refreshParticipant(u)
	return u, nil
}

// DeleteUnit removes a unit unless it is taking part in the engagement.
func (m *Model) DeleteUnit(id string) error {
	if m.participating(id) {
		return fmt.Errorf("%w: %s", ErrUnitParticipating, m.roster.DisplayName(id))
	}
	return m.roster.DeleteUnit(id)
}

func (m *Model) Reinforce(id string, people int) (roster.Unit, error) {
	u, err := m.roster.Reinforce(id, people)
	if err != nil {
		return roster.Unit{}, err
	}
	m.refreshParticipant(u)
	return u, nil
}

func (m *Model) refreshParticipant(u roster.Unit) {
	for p := range m.participants {
		for i := range m.participants[p] {
			if m.participants[p][i].UnitID == u.ID {
				m.participants[p][i].People = u.People
				m.participants[p][i].Name = m.roster.DisplayName(u.ID)
			}
		}
	}
}

func (m *Model) NextNumber(side roster.Side, battalionID *string) int {
	return m.roster.NextNumber(side, battalionID)
}

func (m *Model) CreateBattalion(name string) (roster.Battalion, error) {
	return m.roster.CreateBattalion(name)
}

func (m *Model) RenameBattalion(id, name string) (roster.Battalion, error) {
	b, err := m.roster.RenameBattalion(id, name)
	if err != nil {
		return roster.Battalion{}, err
	}
	for p := range m.participants {
		for i := range m.participants[p] {
			m.participants[p][i].Name = m.roster.DisplayName(m.participants[p][i].UnitID)
		}
	}
	return b, nil
}

// AddParticipant appends a unit to one side of the next engagement. The
// first party fights with own units, the second with enemy units.
func (m *Model) AddParticipant(p combat.Party, unitID string) (Participant, error) {
	if err := checkParty(p); err != nil {
		return Participant{}, err
	}
	u, ok := m.roster.Unit(unitID)
	if !ok {
		return Participant{}, fmt.Errorf("%w: %s", roster.ErrUnknownUnit, unitID)
	}
	if u.Side != SideOf(p) {
		return Participant{}, fmt.Errorf("%w: %s", ErrSideMismatch, m.roster.DisplayName(u.ID))
	}
	if m.participating(u.ID) {
		return Participant{}, fmt.Errorf("%w: %s", ErrAlreadyParticipating, m.roster.DisplayName(u.ID))
	}
	pt := Participant{UnitID: u.ID, Name: m.roster.DisplayName(u.ID), People: u.People}
	m.participants[p] = append(m.participants[p], pt)
	return pt, nil
}

// People is the combined strength of a side's participants.
func (m *Model) People(p combat.Party) int {
	n := 0
	for _, pt := range m.participants[p] {
		n += pt.People
	}
	return n
}

// ResetParticipants clears both sides and unlocks them.
func (m *Model) ResetParticipants() {
	m.participants = [2][]Participant{}
}

// Selection is what selecting a single unit for a side yields. When
// Locked, the side's people field must not change and People is the
// participants' total instead of the unit's.
type Selection struct {
	UnitID string `json:"unit_id"`
	People int    `json:"people"`
	Locked bool   `json:"locked"`
}

// SelectUnit looks up the people count to show for a side when the user
// picks a unit from the roster.
func (m *Model) SelectUnit(p combat.Party, unitID string) (Selection, error) {
	if err := checkParty(p); err != nil {
		return Selection{}, err
	}
	u, ok := m.roster.Unit(unitID)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s", roster.ErrUnknownUnit, unitID)
	}
	if m.Locked(p) {
		return Selection{UnitID: u.ID, People: m.People(p), Locked: true}, nil
	}
	return Selection{UnitID: u.ID, People: u.People}, nil
}

func (m *Model) CreateBattle(name string) error {
	return m.journal.CreateBattle(name, m.now())
}

func (m *Model) SelectBattle(name string) error {
	return m.journal.Select(name)
}
