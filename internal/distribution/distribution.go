// Package distribution provides the sampling primitives value nodes draw
// from. Every node owns its own deterministically seeded stream, so a
// graph built with a fixed seed replays the same sequence and Reset
// rewinds a single node without disturbing its siblings.
package distribution

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source hands out independent deterministic streams. All streams derive
// from one base seed plus a per-stream sequence number, so node creation
// order fixes the whole graph's randomness.
type Source struct {
	seed          uint64
	next          uint64
	deterministic bool
}

func NewSource(seed uint64) *Source {
	return &Source{seed: seed, deterministic: true}
}

// NewRandomSource seeds from the operating system entropy pool.
func NewRandomSource() *Source {
	var b [8]byte
	seed := uint64(1)
	if _, err := cryptorand.Read(b[:]); err == nil {
		seed = binary.LittleEndian.Uint64(b[:])
	}
	s := NewSource(seed)
	s.deterministic = false
	return s
}

func (s *Source) Seed() uint64 { return s.seed }

// Deterministic reports whether the source was explicitly seeded. Nodes
// that would otherwise draw from platform entropy (UUIDs) switch to the
// source's streams when it is.
func (s *Source) Deterministic() bool { return s.deterministic }

// Uniform returns a fresh uniform stream.
func (s *Source) Uniform() *Uniform {
	s.next++
	return NewUniform(s.seed, s.next)
}

// Normal returns a fresh truncated normal stream with the given
// parameters.
func (s *Source) Normal(mean, stddev, lo, hi float64) (*Normal, error) {
	s.next++
	return NewNormal(s.seed, s.next, mean, stddev, lo, hi)
}

func newRand(seed, seq uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seq))
}
