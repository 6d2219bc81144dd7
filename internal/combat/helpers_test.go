package combat

import "math/rand/v2"

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fixedSource returns the same draw every time: IntN yields n-1 clipped
// to face, Float64 yields f.
type fixedSource struct {
	face int
	f    float64
}

func (s fixedSource) IntN(n int) int {
	if s.face >= n {
		return n - 1
	}
	return s.face
}

func (s fixedSource) Float64() float64 { return s.f }
