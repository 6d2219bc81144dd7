package combat

// Party identifies one of the two opposing sides of a single engagement.
type Party int

const (
	First Party = iota
	Second
)

// Other returns the opposing party.
func (p Party) Other() Party {
	if p == First {
		return Second
	}
	return First
}

// Valid reports whether p is First or Second.
func (p Party) Valid() bool { return p == First || p == Second }

// Stance is what a side is doing in an engagement. Being in motion is
// tracked separately on SideInput.
type Stance string

const (
	Neutral   Stance = ""
	Attacking Stance = "attack"
	Defending Stance = "defense"
)

// RawSide is one side's input exactly as typed by the user. Numeric fields
// are text; anything that fails to parse counts as 0.
type RawSide struct {
	People        string `json:"people"`
	Modifier      string `json:"modifier"`
	RangeBonus    string `json:"range_bonus"`
	Experience    string `json:"experience"`
	Fortification string `json:"fortification"`

	Surrounded         bool   `json:"surrounded"`
	DefenseInBuildings bool   `json:"defense_in_buildings"`
	NoSupply           bool   `json:"no_supply"`
	Stance             Stance `json:"stance"`
	InMotion           bool   `json:"in_motion"`
}

// SideInput is the normalized form of RawSide.
type SideInput struct {
	People             int
	Modifier           int
	RangeBonus         int
	Experience         int // -2..6
	Fortification      int // 0..3
	Surrounded         bool
	DefenseInBuildings bool
	NoSupply           bool
	Stance             Stance
	InMotion           bool
}

func (s SideInput) Attacking() bool { return s.Stance == Attacking }
func (s SideInput) Defending() bool { return s.Stance == Defending }

// SideScore is the score breakdown of one side.
type SideScore struct {
	DieMax        int `json:"die_max"`
	Roll          int `json:"roll"`
	Advantage     int `json:"advantage"`
	TotalModifier int `json:"total_modifier"`
	Final         int `json:"final"`
}

// Loss is the outcome of the loss model for one side.
type Loss struct {
	BasePct      float64 `json:"base_pct"`
	DefenseMod   float64 `json:"defense_mod"`
	AttackMod    float64 `json:"attack_mod"`
	FinalPct     float64 `json:"final_pct"`
	LossBase     int     `json:"loss_base"`
	Absolute     int     `json:"absolute"`
	Actual       int     `json:"actual"`
	PeopleBefore int     `json:"people_before"`
	PeopleAfter  int     `json:"people_after"`
}

// Outcome is the tactical tier of a clean attack-versus-defense engagement.
type Outcome struct {
	Attacker   Party  `json:"attacker"`
	Difference int    `json:"difference"`
	Tier       int    `json:"tier"`
	Label      string `json:"label"`
}

// Result is everything a single engagement produced.
type Result struct {
	Scores   [2]SideScore `json:"scores"`
	Losses   [2]Loss      `json:"losses"`
	Gained   [2]bool      `json:"gained_experience"`
	Tactical *Outcome     `json:"tactical,omitempty"`
	Doublet  bool         `json:"doublet"`
}

// Winner returns the party that gained experience, if any.
func (r Result) Winner() (Party, bool) {
	switch {
	case r.Gained[First]:
		return First, true
	case r.Gained[Second]:
		return Second, true
	}
	return First, false
}
