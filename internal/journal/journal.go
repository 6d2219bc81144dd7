// Package journal records engagement history: a short rolling buffer of
// the latest engagements and an unbounded log per named battle.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Unsaved is the reserved battle that collects engagements only in the
// rolling buffer. It never appears in the saved battle map.
const Unsaved = "Unsaved"

var (
	ErrEmptyName       = errors.New("battle name is required")
	ErrReservedName    = errors.New("battle name is reserved")
	ErrDuplicateBattle = errors.New("battle already exists")
	ErrUnknownBattle   = errors.New("unknown battle")
)

// Entry is one resolved engagement. Field names in JSON follow the battle
// files written by earlier versions of the tool.
type Entry struct {
	At            time.Time `json:"at"`
	Score1        int       `json:"dice1"`
	Score2        int       `json:"dice2"`
	People1Before int       `json:"people1_before"`
	People1After  int       `json:"people1_after"`
	People2Before int       `json:"people2_before"`
	People2After  int       `json:"people2_after"`
	Exp1          bool      `json:"exp1"`
	Exp2          bool      `json:"exp2"`
	Units1        []string  `json:"units1"`
	Units2        []string  `json:"units2"`
	Attack1       bool      `json:"attack1"`
	Attack2       bool      `json:"attack2"`
	Motion1       bool      `json:"motion1"`
	Motion2       bool      `json:"motion2"`
	TacticalTier  int       `json:"tactical_tier,omitempty"`
	TacticalLabel string    `json:"tactical_label,omitempty"`
}

// Losses returns the people each side lost.
func (e Entry) Losses() (int, int) {
	return e.People1Before - e.People1After, e.People2Before - e.People2After
}

// Battle is a named session of engagements.
type Battle struct {
	Created time.Time `json:"created"`
	History []Entry   `json:"history"`
}

// Journal is not safe for concurrent use.
type Journal struct {
	size    int
	recent  []Entry
	battles map[string]*Battle
	names   []string
	current string
}

// New returns an empty journal keeping the last size engagements.
func New(size int) *Journal {
	if size <= 0 {
		size = 12
	}
	return &Journal{
		size:    size,
		battles: map[string]*Battle{},
		names:   []string{Unsaved},
		current: Unsaved,
	}
}

// Recent returns the rolling buffer, oldest first.
func (j *Journal) Recent() []Entry {
	return append([]Entry(nil), j.recent...)
}

// Names lists battles in creation order, Unsaved first.
func (j *Journal) Names() []string {
	return append([]string(nil), j.names...)
}

func (j *Journal) Current() string { return j.current }

// Battle returns a copy of a named battle.
func (j *Journal) Battle(name string) (Battle, bool) {
	b, ok := j.battles[name]
	if !ok {
		return Battle{}, false
	}
	return Battle{Created: b.Created, History: append([]Entry(nil), b.History...)}, true
}

// CreateBattle adds a battle and makes it current.
func (j *Journal) CreateBattle(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case name == Unsaved:
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	case j.has(name):
		return fmt.Errorf("%w: %q", ErrDuplicateBattle, name)
	}
	j.names = append(j.names, name)
	j.battles[name] = &Battle{Created: now, History: []Entry{}}
	j.current = name
	return nil
}

// Select makes name the battle new engagements are appended to.
func (j *Journal) Select(name string) error {
	name = strings.TrimSpace(name)
	if !j.has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownBattle, name)
	}
	j.current = name
	return nil
}

func (j *Journal) has(name string) bool {
	for _, n := range j.names {
		if n == name {
			return true
		}
	}
	return false
}

// Append records an engagement in the rolling buffer, evicting the oldest
// entry when full, and in the current battle unless that is Unsaved.
func (j *Journal) Append(e Entry) {
	j.recent = append(j.recent, e)
	if over := len(j.recent) - j.size; over > 0 {
		j.recent = append([]Entry(nil), j.recent[over:]...)
	}
	if j.current == Unsaved {
		return
	}
	b, ok := j.battles[j.current]
	if !ok {
		b = &Battle{Created: e.At}
		j.battles[j.current] = b
	}
	b.History = append(b.History, e)
}

// Stats sums up a battle.
type Stats struct {
	Engagements int `json:"engagements"`
	Losses1     int `json:"losses1"`
	Losses2     int `json:"losses2"`
}

// Stats returns totals for a named battle, or for the rolling buffer when
// name is Unsaved.
func (j *Journal) Stats(name string) (Stats, bool) {
	var entries []Entry
	if name == Unsaved {
		entries = j.recent
	} else {
		b, ok := j.battles[name]
		if !ok {
			return Stats{}, false
		}
		entries = b.History
	}
	s := Stats{Engagements: len(entries)}
	for _, e := range entries {
		l1, l2 := e.Losses()
		s.Losses1 += l1
		s.Losses2 += l2
	}
	return s, true
}

// Entries returns the history of a named battle, or the rolling buffer for
// Unsaved.
func (j *Journal) Entries(name string) ([]Entry, bool) {
	if name == Unsaved {
		return j.Recent(), true
	}
	b, ok := j.Battle(name)
	return b.History, ok
}
