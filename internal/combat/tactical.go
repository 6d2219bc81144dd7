package combat

// Tiers is the number of tactical outcome tiers.
const Tiers = 6

// Tier maps attacker minus defender final score onto tiers 1..6.
//
// An older table rolled a 30% alternative at a difference of -1 that led
// to the same tier either way; the table here is deterministic.
func Tier(difference int) int {
	switch {
	case difference <= 0:
		return 1
	case difference >= Tiers-1:
		return Tiers
	default:
		return difference + 1
	}
}

// attacker returns the attacking party of a clean attack-versus-defense
// pairing.
func attacker(a, b SideInput) (Party, bool) {
	switch {
	case a.Attacking() && b.Defending():
		return First, true
	case b.Attacking() && a.Defending():
		return Second, true
	}
	return First, false
}

// Classify returns the tactical outcome, or nil when the stances are not
// one side attacking and the other defending.
func (r *Rules) Classify(a, b SideInput, scores [2]SideScore) *Outcome {
	p, ok := attacker(a, b)
	if !ok {
		return nil
	}
	diff := scores[p].Final - scores[p.Other()].Final
	tier := Tier(diff)
	return &Outcome{
		Attacker:   p,
		Difference: diff,
		Tier:       tier,
		Label:      r.TacticalLabels[tier-1],
	}
}
