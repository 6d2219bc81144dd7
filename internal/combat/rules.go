package combat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Rules holds the tables the engine resolves against.
type Rules struct {
	LossBands      []LossBand `yaml:"loss_bands"`
	LossBase       int        `yaml:"loss_base"`
	TacticalLabels []string   `yaml:"tactical_labels"`
	RecentHistory  int        `yaml:"recent_history"`
}

// LossBand is the uniform base-loss range for one opposing final score.
type LossBand struct {
	Score int     `yaml:"score"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

var ErrInvalidRules = errors.New("invalid rules")

// DefaultRules returns the built-in rules table.
func DefaultRules() *Rules {
	r, err := ParseRules(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("combat: embedded rules: %v", err))
	}
	return r
}

// LoadRules loads a rules table from a YAML file.
func LoadRules(path string) (*Rules, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // operator-supplied config path
	if err != nil {
		return nil, err
	}
	return ParseRules(b)
}

// ParseRules decodes and validates a YAML rules table.
func ParseRules(b []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks that bands cover consecutive scores with sane ranges.
func (r *Rules) Validate() error {
	if len(r.LossBands) == 0 {
		return fmt.Errorf("%w: no loss bands", ErrInvalidRules)
	}
	for i, b := range r.LossBands {
		if b.Min < 0 || b.Max > 1 || b.Min > b.Max {
			return fmt.Errorf("%w: band for score %d has range [%v, %v]", ErrInvalidRules, b.Score, b.Min, b.Max)
		}
		if i > 0 && b.Score != r.LossBands[i-1].Score+1 {
			return fmt.Errorf("%w: band scores must be consecutive, got %d after %d", ErrInvalidRules, b.Score, r.LossBands[i-1].Score)
		}
	}
	if r.LossBase <= 0 {
		return fmt.Errorf("%w: loss_base must be positive", ErrInvalidRules)
	}
	if len(r.TacticalLabels) != Tiers {
		return fmt.Errorf("%w: want %d tactical labels, got %d", ErrInvalidRules, Tiers, len(r.TacticalLabels))
	}
	if r.RecentHistory <= 0 {
		return fmt.Errorf("%w: recent_history must be positive", ErrInvalidRules)
	}
	return nil
}

// Band returns the loss band for an opposing final score.
func (r *Rules) Band(enemyScore int) LossBand {
	first := r.LossBands[0].Score
	last := r.LossBands[len(r.LossBands)-1].Score
	return r.LossBands[clamp(enemyScore, first, last)-first]
}
