package combat

import (
	"crypto/rand"
	"encoding/binary"
)

// Source is the randomness behind dice and loss sampling. *rand.Rand from
// math/rand/v2 satisfies it, which is what tests use for seeded runs.
type Source interface {
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// CryptoSource draws from crypto/rand. Plenty for a tabletop aid.
type CryptoSource struct{}

func (CryptoSource) uint64() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (c CryptoSource) IntN(n int) int {
	return int(c.uint64() % uint64(n))
}

func (c CryptoSource) Float64() float64 {
	return float64(c.uint64()>>11) / (1 << 53)
}

// Roll draws uniformly from [1, faces]. faces below 1 counts as 1.
func Roll(src Source, faces int) int {
	if faces < 1 {
		faces = 1
	}
	return src.IntN(faces) + 1
}

// Uniform draws from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
