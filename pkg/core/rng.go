package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bit returns 1 or 0 with equal probability.
func (r *RNG) Bit() uint8 {
	return uint8(r.r.IntN(2))
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillBinary fills the buffer with 0/1 values, each alive with probability
// density. A density of 0.5 uses a fair coin per cell.
func FillBinary(r *RNG, buf []uint8, density float64) {
	for i := range buf {
		switch {
		case density == 0.5:
			buf[i] = r.Bit()
		case r.Chance(density):
			buf[i] = 1
		default:
			buf[i] = 0
		}
	}
}

// RandomGrid returns a rows x cols grid seeded from r.
func RandomGrid(rows, cols int, r *RNG, density float64) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	FillBinary(r, g.data, density)
	return g, nil
}
