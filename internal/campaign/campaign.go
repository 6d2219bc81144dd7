// Package campaign owns the whole state of one campaign: the roster, the
// battle journal, the units taking part in the next engagement, and the
// engine that resolves it. Every command either succeeds or leaves the
// state untouched.
package campaign

import (
	"errors"
	"fmt"
	"time"

	"wargame/internal/combat"
	"wargame/internal/journal"
	"wargame/internal/roster"
)

var (
	ErrUnitParticipating    = errors.New("unit is taking part in the current engagement")
	ErrAlreadyParticipating = errors.New("unit already added to the engagement")
	ErrSideMismatch         = errors.New("unit belongs to the other side")
	ErrInvalidParty         = errors.New("invalid party")
)

// Participant is a unit added to one side of the next engagement.
type Participant struct {
	UnitID string `json:"unit_id"`
	Name   string `json:"name"`
	People int    `json:"people"`
}

// Model is not safe for concurrent use; callers serialize access.
type Model struct {
	engine       *combat.Engine
	roster       *roster.Roster
	journal      *journal.Journal
	participants [2][]Participant
	dataDir      string
	now          func() time.Time
}

// New returns an empty campaign saving its files under dataDir.
func New(engine *combat.Engine, dataDir string) *Model {
	if engine == nil {
		engine = combat.NewEngine(nil, nil)
	}
	return &Model{
		engine:  engine,
		roster:  roster.New(),
		journal: journal.New(engine.Rules.RecentHistory),
		dataDir: dataDir,
		now:     time.Now,
	}
}

// SideOf is the roster side whose units fight as party p: the first party
// is always the own army.
func SideOf(p combat.Party) roster.Side {
	if p == combat.First {
		return roster.Own
	}
	return roster.Enemy
}

// Roster and Journal give read access for reports and views. Mutations go
// through the Model commands.
func (m *Model) Roster() *roster.Roster { return m.roster }
func (m *Model) Journal() *journal.Journal { return m.journal }

func (m *Model) Participants(p combat.Party) []Participant {
	return append([]Participant(nil), m.participants[p]...)
}

// Locked reports whether a side's people count comes from its
// participants rather than from a selected unit.
func (m *Model) Locked(p combat.Party) bool { return len(m.participants[p]) > 0 }

func (m *Model) participating(id string) bool {
	for _, list := range m.participants {
		for _, pt := range list {
			if pt.UnitID == id {
				return true
			}
		}
	}
	return false
}

// State is a snapshot of the model for views.
type State struct {
	Units         []roster.Unit      `json:"units"`
	Battalions    []roster.Battalion `json:"battalions"`
	Battles       []string           `json:"battles"`
	CurrentBattle string             `json:"current_battle"`
	Recent        []journal.Entry    `json:"recent"`
	Stats         journal.Stats      `json:"stats"`
	Participants  [2][]Participant   `json:"participants"`
	Locked        [2]bool            `json:"locked"`
}

func (m *Model) Snapshot() State {
	s := State{
		Units:         m.roster.Units(),
		Battalions:    m.roster.Battalions(),
		Battles:       m.journal.Names(),
		CurrentBattle: m.journal.Current(),
		Recent:        m.journal.Recent(),
	}
	s.Stats, _ = m.journal.Stats(s.CurrentBattle)
	for p := combat.First; p <= combat.Second; p++ {
		s.Participants[p] = m.Participants(p)
		if s.Participants[p] == nil {
			s.Participants[p] = []Participant{}
		}
		s.Locked[p] = m.Locked(p)
	}
	return s
}

func checkParty(p combat.Party) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidParty, p)
	}
	return nil
}
