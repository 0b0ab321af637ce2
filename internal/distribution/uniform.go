package distribution

import "math/rand/v2"

// Uniform draws uniformly from the requested interval.
type Uniform struct {
	seed uint64
	seq  uint64
	rng  *rand.Rand
}

func NewUniform(seed, seq uint64) *Uniform {
	u := &Uniform{seed: seed, seq: seq}
	u.Reset()
	return u
}

func (u *Uniform) NextInt(n int) int {
	return u.rng.IntN(n)
}

func (u *Uniform) NextLong(lo, hi int64) int64 {
	return lo + u.rng.Int64N(hi-lo)
}

func (u *Uniform) NextDouble(lo, hi float64) float64 {
	return lo + u.rng.Float64()*(hi-lo)
}

func (u *Uniform) NextBool() bool {
	return u.rng.Uint64()&1 == 1
}

func (u *Uniform) Reset() {
	u.rng = newRand(u.seed, u.seq)
}

// Read fills p with pseudo-random bytes, letting a seeded stream stand in
// for an entropy source (UUID generation under a fixed seed).
func (u *Uniform) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(u.rng.Uint64())
	}
	return len(p), nil
}
