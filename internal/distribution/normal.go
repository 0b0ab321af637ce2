package distribution

import (
	"math"
	"math/rand/v2"

	"github.com/funvibe/rangen/internal/core"
)

// Default truncated normal parameters, matching a bell curve centered on
// the unit interval.
const (
	DefaultMean   = 0.5
	DefaultStddev = 0.125
	DefaultLower  = 0
	DefaultUpper  = 1
)

// maxRejections bounds the resampling loop; past it the draw is clamped
// into the truncation interval.
const maxRejections = 100

// Normal samples from a normal distribution truncated to [lo, hi) by
// rejection. Interval draws map the normalized truncated sample onto the
// requested range, so the bell shape carries over to NextLong/NextDouble.
type Normal struct {
	seed uint64
	seq  uint64
	rng  *rand.Rand

	mean   float64
	stddev float64
	lo     float64
	hi     float64
}

func NewNormal(seed, seq uint64, mean, stddev, lo, hi float64) (*Normal, error) {
	if stddev <= 0 {
		return nil, &core.InvalidRangeError{Reason: "normal distribution standard deviation must be positive"}
	}
	if lo >= hi {
		return nil, &core.InvalidRangeError{Reason: "normal distribution upper bound must be greater than lower bound"}
	}
	n := &Normal{seed: seed, seq: seq, mean: mean, stddev: stddev, lo: lo, hi: hi}
	n.Reset()
	return n, nil
}

// sample returns a truncated draw normalized to [0, 1).
func (n *Normal) sample() float64 {
	s := n.lo
	for i := 0; ; i++ {
		s = n.mean + n.stddev*n.rng.NormFloat64()
		if s >= n.lo && s < n.hi {
			break
		}
		if i+1 >= maxRejections {
			s = math.Min(math.Max(s, n.lo), math.Nextafter(n.hi, n.lo))
			break
		}
	}
	return (s - n.lo) / (n.hi - n.lo)
}

func (n *Normal) NextInt(x int) int {
	return int(n.NextLong(0, int64(x)))
}

func (n *Normal) NextLong(lo, hi int64) int64 {
	return lo + int64(n.sample()*float64(hi-lo))
}

func (n *Normal) NextDouble(lo, hi float64) float64 {
	return lo + n.sample()*(hi-lo)
}

func (n *Normal) NextBool() bool {
	return n.sample() >= 0.5
}

func (n *Normal) Reset() {
	n.rng = newRand(n.seed, n.seq)
}
