package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

var ErrInvalidFile = errors.New("invalid battles file")

type fileFormat struct {
	Battles     map[string]*Battle `json:"battles"`
	BattleNames []string           `json:"battle_names"`
	SavedAt     time.Time          `json:"saved_at"`
}

// Write encodes every named battle. Unsaved is left out of both the battle
// map and the name list.
func (j *Journal) Write(w io.Writer, now time.Time) error {
	out := fileFormat{
		Battles:     map[string]*Battle{},
		BattleNames: []string{},
		SavedAt:     now,
	}
	for _, name := range j.names {
		if name == Unsaved {
			continue
		}
		b, ok := j.battles[name]
		if !ok {
			b = &Battle{}
		}
		if b.History == nil {
			b.History = []Entry{}
		}
		out.Battles[name] = b
		out.BattleNames = append(out.BattleNames, name)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// Load replaces the battles with those decoded from rd. The rolling buffer
// is kept. On any error the journal is left as it was.
func (j *Journal) Load(rd io.Reader) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	for _, key := range []string{"battles", "battle_names"} {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: missing %q", ErrInvalidFile, key)
		}
	}
	var f fileFormat
	if err := json.Unmarshal(raw["battles"], &f.Battles); err != nil {
		return fmt.Errorf("%w: battles: %v", ErrInvalidFile, err)
	}
	if err := json.Unmarshal(raw["battle_names"], &f.BattleNames); err != nil {
		return fmt.Errorf("%w: battle_names: %v", ErrInvalidFile, err)
	}

	names := []string{Unsaved}
	seen := map[string]bool{Unsaved: true}
	for _, n := range f.BattleNames {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	battles := make(map[string]*Battle, len(f.Battles))
	var extra []string
	for n, b := range f.Battles {
		if n == Unsaved || b == nil {
			continue
		}
		if b.History == nil {
			b.History = []Entry{}
		}
		battles[n] = b
		if !seen[n] {
			seen[n] = true
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)
	for _, n := range names[1:] {
		if _, ok := battles[n]; !ok {
			battles[n] = &Battle{History: []Entry{}}
		}
	}

	j.battles = battles
	j.names = names
	if !seen[j.current] {
		j.current = Unsaved
	}
	return nil
}
