package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidFile = errors.New("invalid roster file")

// sideKeys maps bucket names found in roster files to sides. Older files
// use the Polish names.
var sideKeys = map[string]Side{
	"own":    Own,
	"własne": Own,
	"enemy":  Enemy,
	"wroga":  Enemy,
}

// migrationSpace seeds IDs for records saved before units had one, so
// loading the same old file twice yields the same IDs.
var migrationSpace = uuid.MustParse("4f1d7c52-8a0e-4a53-9b7e-2c3f0d6a91e4")

type fileFormat struct {
	Units      map[string]map[string]json.RawMessage `json:"units"`
	Battalions []Battalion                           `json:"battalions,omitempty"`
}

type savedFormat struct {
	Units      map[Side]map[string]Unit `json:"units"`
	Battalions []Battalion              `json:"battalions"`
	SavedAt    time.Time                `json:"saved_at"`
}

// Write encodes the roster in the roster file format.
func (r *Roster) Write(w io.Writer, now time.Time) error {
	out := savedFormat{
		Units:      map[Side]map[string]Unit{Own: {}, Enemy: {}},
		Battalions: r.Battalions(),
		SavedAt:    now,
	}
	for id, u := range r.units {
		c := u.clone()
		if c.History == nil {
			c.History = []BattleRecord{}
		}
		out.Units[u.Side][id] = c
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// Read decodes a roster file into a new Roster, migrating old records:
// missing histories become empty, and records without an id get one
// together with type company, no battalion and the next number on their
// side.
func Read(rd io.Reader) (*Roster, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if _, ok := raw["units"]; !ok {
		return nil, fmt.Errorf("%w: missing \"units\"", ErrInvalidFile)
	}
	var f fileFormat
	if err := json.Unmarshal(raw["units"], &f.Units); err != nil {
		return nil, fmt.Errorf("%w: units: %v", ErrInvalidFile, err)
	}
	if b, ok := raw["battalions"]; ok {
		if err := json.Unmarshal(b, &f.Battalions); err != nil {
			return nil, fmt.Errorf("%w: battalions: %v", ErrInvalidFile, err)
		}
	}

	r := New()
	for _, b := range f.Battalions {
		if b.ID == "" || b.Name == "" {
			continue
		}
		bb := b
		r.battalions[b.ID] = &bb
	}

	buckets := map[Side]map[string]json.RawMessage{Own: {}, Enemy: {}}
	for key, bucket := range f.Units {
		side, ok := sideKeys[key]
		if !ok {
			slog.Warn("roster file: skipping unknown side bucket", "side", key)
			continue
		}
		for k, v := range bucket {
			buckets[side][k] = v
		}
	}

	for _, side := range []Side{Own, Enemy} {
		if err := r.readSide(side, buckets[side]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Roster) readSide(side Side, bucket map[string]json.RawMessage) error {
	keys := make([]string, 0, len(bucket))
	for k := range bucket {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var legacy []string
	decoded := make(map[string]*Unit, len(bucket))
	maxNumber := 0
	for _, k := range keys {
		var u Unit
		if err := json.Unmarshal(bucket[k], &u); err != nil {
			return fmt.Errorf("%w: unit %q: %v", ErrInvalidFile, k, err)
		}
		u.Side = side
		if u.History == nil {
			u.History = []BattleRecord{}
		}
		if u.ID == "" {
			legacy = append(legacy, k)
		} else if u.Number > maxNumber {
			maxNumber = u.Number
		}
		decoded[k] = &u
	}

	for _, k := range legacy {
		u := decoded[k]
		u.ID = uuid.NewSHA1(migrationSpace, []byte(string(side)+"/"+k)).String()
		u.Type = Company
		u.BattalionID = nil
		maxNumber++
		u.Number = maxNumber
	}

	for _, k := range keys {
		u := decoded[k]
		if !u.Type.Valid() {
			u.Type = Company
		}
		u.clamp()
		if _, dup := r.units[u.ID]; dup {
			return fmt.Errorf("%w: duplicate unit id %s", ErrInvalidFile, u.ID)
		}
		r.units[u.ID] = u
	}
	if len(legacy) > 0 {
		slog.Info("roster file: migrated units without id", "side", side, "count", len(legacy))
	}
	return nil
}
