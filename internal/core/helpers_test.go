package core_test

import "github.com/funvibe/rangen/internal/core"

// scriptDist replays fixed draws so selection logic is testable without a
// real random stream.
type scriptDist struct {
	ints    []int
	longs   []int64
	doubles []float64
	i, j, k int
}

func (d *scriptDist) NextInt(n int) int {
	v := d.ints[d.i%len(d.ints)]
	d.i++
	return v % n
}

func (d *scriptDist) NextLong(lo, hi int64) int64 {
	v := d.longs[d.j%len(d.longs)]
	d.j++
	return lo + v%(hi-lo)
}

func (d *scriptDist) NextDouble(lo, hi float64) float64 {
	v := d.doubles[d.k%len(d.doubles)]
	d.k++
	return lo + v*(hi-lo)
}

func (d *scriptDist) NextBool() bool { return false }

func (d *scriptDist) Reset() { d.i, d.j, d.k = 0, 0, 0 }

// counter counts its own advances; Current exposes the count.
type counter struct {
	n int
}

func (c *counter) Current() any { return c.n }
func (c *counter) Next() error  { c.n++; return nil }
func (c *counter) Reset()       { c.n = 0 }

var _ core.Distribution = (*scriptDist)(nil)
var _ core.Value = (*counter)(nil)
