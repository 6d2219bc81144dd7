package combat

import (
	"strconv"
	"strings"
)

// parseOrZero implements the parse-or-default policy for numeric text
// fields: a value that is not an integer becomes 0 and the field text is
// reset to "0". It is a recovery, never an error.
func parseOrZero(field *string) int {
	n, err := strconv.Atoi(strings.TrimSpace(*field))
	if err != nil {
		*field = "0"
		return 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseSide normalizes raw side input. The returned RawSide carries the
// field texts as they should be shown back to the user, with unparseable
// fields reset to "0".
func ParseSide(raw RawSide) (SideInput, RawSide) {
	in := SideInput{
		People:             parseOrZero(&raw.People),
		Modifier:           parseOrZero(&raw.Modifier),
		RangeBonus:         parseOrZero(&raw.RangeBonus),
		Experience:         parseOrZero(&raw.Experience),
		Fortification:      parseOrZero(&raw.Fortification),
		Surrounded:         raw.Surrounded,
		DefenseInBuildings: raw.DefenseInBuildings,
		NoSupply:           raw.NoSupply,
		Stance:             raw.Stance,
		InMotion:           raw.InMotion,
	}
	if in.People < 0 {
		in.People = 0
		raw.People = "0"
	}
	in.Experience = clamp(in.Experience, MinExperience, MaxExperience)
	in.Fortification = clamp(in.Fortification, 0, MaxFortification)
	switch in.Stance {
	case Neutral, Attacking, Defending:
	default:
		in.Stance = Neutral
		raw.Stance = Neutral
	}
	return in, raw
}

const (
	MinExperience    = -2
	MaxExperience    = 6
	MaxFortification = 3
)

// DieMax is the highest face a side can roll.
func DieMax(in SideInput) int {
	return max(1, 4+in.RangeBonus+2*max(in.Experience, 0))
}

// Bonuses is what positive experience adds on top of the typed values:
// the experience itself to the flat modifier and twice that to the pips.
type Bonuses struct {
	Modifier int `json:"modifier"`
	Pips     int `json:"pips"`
}

func ExperienceBonuses(in SideInput) Bonuses {
	if in.Experience <= 0 {
		return Bonuses{}
	}
	return Bonuses{Modifier: in.Experience, Pips: 2 * in.Experience}
}
