package combat

import "math/big"

// Advantage returns the numerical advantage bonus of each side. A side
// outnumbering the other at least 2.1 times gets floor(ratio / 2.1).
// The comparison is done on integers (10a >= 21b) so that ratios such as
// 630/100 land on the exact multiple.
func Advantage(peopleA, peopleB int) [2]int {
	var out [2]int
	if peopleA <= 0 || peopleB <= 0 {
		return out
	}
	out[First] = ratioBonus(peopleA, peopleB)
	if out[First] == 0 {
		out[Second] = ratioBonus(peopleB, peopleA)
	}
	return out
}

// ratioBonus is floor(10a / 21b). big.Int keeps huge head counts from
// overflowing the products.
func ratioBonus(a, b int) int {
	num := new(big.Int).Mul(big.NewInt(10), big.NewInt(int64(a)))
	den := new(big.Int).Mul(big.NewInt(21), big.NewInt(int64(b)))
	return int(num.Quo(num, den).Int64())
}

// TotalModifier sums every flat modifier of a side. Experience counts with
// its sign here; only positive experience widens the die.
func TotalModifier(in SideInput, advantage int) int {
	total := in.Modifier + in.Experience + advantage + in.Fortification
	if in.Surrounded {
		total--
	}
	if in.DefenseInBuildings {
		total++
	}
	if in.NoSupply {
		total--
	}
	return total
}

// Score rolls the die of a side and combines it with its modifiers.
// The final score is not clamped.
func Score(src Source, in SideInput, advantage int) SideScore {
	dieMax := DieMax(in)
	roll := Roll(src, dieMax)
	mod := TotalModifier(in, advantage)
	return SideScore{
		DieMax:        dieMax,
		Roll:          roll,
		Advantage:     advantage,
		TotalModifier: mod,
		Final:         roll + mod,
	}
}
