package roster

import (
	"fmt"
	"time"
)

// Side is which army a unit belongs to.
type Side string

const (
	Own   Side = "own"
	Enemy Side = "enemy"
)

func (s Side) Valid() bool { return s == Own || s == Enemy }

// UnitType is the kind of formation a unit is.
type UnitType string

const (
	Company UnitType = "company"
	Group   UnitType = "group"
)

func (t UnitType) Valid() bool { return t == Company || t == Group }

const (
	MaxPeople   = 150
	MaxSupplies = 3
)

// Unit is a persistent roster entry. ID never changes; Number is unique
// among the units of the same side and battalion.
type Unit struct {
	ID             string         `json:"id"`
	Number         int            `json:"number"`
	Type           UnitType       `json:"type"`
	BattalionID    *string        `json:"battalion_id"`
	Side           Side           `json:"side"`
	People         int            `json:"people"`
	Experience     int            `json:"experience"`
	Supplies       int            `json:"supplies"`
	Victories      int            `json:"victories"`
	Reinforcements int            `json:"reinforcements"`
	History        []BattleRecord `json:"battle_history"`
}

// BattleRecord is one engagement as seen by a unit that took part in it.
type BattleRecord struct {
	At           time.Time `json:"at"`
	Battle       string    `json:"battle"`
	OwnScore     int       `json:"own_score"`
	EnemyScore   int       `json:"enemy_score"`
	PeopleBefore int       `json:"people_before"`
	PeopleAfter  int       `json:"people_after"`
	Loss         int       `json:"loss"`
	Victory      bool      `json:"victory"`
	Opponents    []string  `json:"opponents,omitempty"`
}

// Battalion groups units for display. Units reference it by ID only.
type Battalion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (u *Unit) clamp() {
	u.People = clampInt(u.People, 0, MaxPeople)
	u.Supplies = clampInt(u.Supplies, 0, MaxSupplies)
	if u.Victories < 0 {
		u.Victories = 0
	}
	if u.Reinforcements < 0 {
		u.Reinforcements = 0
	}
}

func (u Unit) battalion() string {
	if u.BattalionID == nil {
		return ""
	}
	return *u.BattalionID
}

// Spec returns the editable fields of the unit.
func (u Unit) Spec() UnitSpec {
	c := u.clone()
	return UnitSpec{
		Number:      c.Number,
		Type:        c.Type,
		BattalionID: c.BattalionID,
		Side:        c.Side,
		People:      c.People,
		Experience:  c.Experience,
		Supplies:    c.Supplies,
	}
}

func (u Unit) clone() Unit {
	c := u
	if u.BattalionID != nil {
		b := *u.BattalionID
		c.BattalionID = &b
	}
	c.History = append([]BattleRecord(nil), u.History...)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func label(number int, t UnitType) string {
	return fmt.Sprintf("%d %s", number, t)
}
