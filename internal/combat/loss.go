package combat

import "math"

// defenseModifier scales a side's own losses from its own situation and
// the enemy being caught in motion.
func defenseModifier(own, enemy SideInput) float64 {
	m := 1.0
	switch own.Fortification {
	case 1:
		m -= 0.05
	case 2:
		m -= 0.10
	case 3:
		m -= 0.15
	}
	if own.NoSupply {
		m += 0.05
	}
	if own.DefenseInBuildings {
		m -= 0.05
	}
	switch own.Experience {
	case -1:
		m += 0.10
	case -2:
		m += 0.25
	}
	if enemy.InMotion {
		m -= 0.10
	}
	return m
}

// attackModifier scales a side's own losses from what it runs into. The
// fortification and buildings ranges are drawn fresh on every call.
func attackModifier(src Source, own, enemy SideInput) float64 {
	m := 1.0
	switch enemy.Fortification {
	case 1:
		m += Uniform(src, 0.10, 0.15)
	case 2:
		m += Uniform(src, 0.16, 0.25)
	case 3:
		m += Uniform(src, 0.30, 0.40)
	}
	if enemy.DefenseInBuildings {
		m += Uniform(src, 0.05, 0.15)
	}
	if own.Attacking() && enemy.Defending() {
		m += 0.05
	}
	return m
}

// LossBaseFor is what a loss percentage is applied to: the rules baseline
// for small forces, the real size for larger ones.
func (r *Rules) LossBaseFor(people int) int {
	if people <= r.LossBase {
		return r.LossBase
	}
	return people
}

// Losses computes one side's personnel loss against the enemy's final
// score.
func (r *Rules) Losses(src Source, own, enemy SideInput, enemyScore int) Loss {
	band := r.Band(enemyScore)
	l := Loss{
		BasePct:      Uniform(src, band.Min, band.Max),
		DefenseMod:   defenseModifier(own, enemy),
		AttackMod:    attackModifier(src, own, enemy),
		PeopleBefore: own.People,
		PeopleAfter:  own.People,
	}
	l.FinalPct = math.Max(0, l.BasePct*l.DefenseMod*l.AttackMod)
	l.LossBase = r.LossBaseFor(own.People)
	l.Absolute = int(math.Floor(float64(l.LossBase) * l.FinalPct))
	if own.People <= 0 {
		l.PeopleBefore, l.PeopleAfter = 0, 0
		return l
	}
	l.Actual = min(l.Absolute, own.People)
	l.PeopleAfter = max(0, own.People-l.Actual)
	return l
}
