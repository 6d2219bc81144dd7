package combat

import "testing"

func TestAdvantage(t *testing.T) {
	cases := []struct {
		a, b int
		want [2]int
	}{
		{210, 100, [2]int{1, 0}},
		{100, 210, [2]int{0, 1}},
		{100, 100, [2]int{0, 0}},
		{209, 100, [2]int{0, 0}},
		{420, 100, [2]int{2, 0}},
		{630, 100, [2]int{3, 0}},
		{0, 100, [2]int{0, 0}},
		{100, 0, [2]int{0, 0}},
		{1e18, 100, [2]int{4761904761904761, 0}},
		{100, 1e18, [2]int{0, 4761904761904761}},
		{1e18, 1e18 - 1, [2]int{0, 0}},
	}
	for _, c := range cases {
		if got := Advantage(c.a, c.b); got != c.want {
			t.Errorf("Advantage(%d, %d) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTotalModifier(t *testing.T) {
	in := SideInput{
		Modifier:           2,
		Experience:         -1,
		Fortification:      3,
		Surrounded:         true,
		DefenseInBuildings: true,
		NoSupply:           true,
	}
	// 2 - 1 + 1 + 3 - 1 + 1 - 1
	if got := TotalModifier(in, 1); got != 4 {
		t.Errorf("TotalModifier = %d, want 4", got)
	}
}

func TestScore_FinalIsRollPlusModifier(t *testing.T) {
	src := seeded(7)
	for i := 0; i < 500; i++ {
		in := SideInput{RangeBonus: i%5 - 2, Experience: i%9 - 2, Modifier: i%3 - 1}
		s := Score(src, in, i%2)
		if s.Roll < 1 || s.Roll > DieMax(in) {
			t.Fatalf("roll %d outside [1, %d]", s.Roll, DieMax(in))
		}
		if s.Final != s.Roll+TotalModifier(in, i%2) {
			t.Fatalf("final %d != roll %d + modifier %d", s.Final, s.Roll, s.TotalModifier)
		}
	}
}

func TestScore_NoClamping(t *testing.T) {
	s := Score(fixedSource{face: 0}, SideInput{Modifier: -5, Surrounded: true}, 0)
	if s.Final != -5 {
		t.Errorf("expected negative final -5, got %d", s.Final)
	}
}
