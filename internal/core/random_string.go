package core

import "strings"

// CharRange is an inclusive span of code points.
type CharRange struct {
	Lo, Hi rune
}

func NewCharRange(lo, hi rune) (CharRange, error) {
	if lo > hi {
		return CharRange{}, invalidRangef("character range end (%q) must not be before beginning (%q)", hi, lo)
	}
	return CharRange{Lo: lo, Hi: hi}, nil
}

func (r CharRange) size() int64 {
	return int64(r.Hi) - int64(r.Lo) + 1
}

// DefaultCharRanges spans ASCII letters and digits.
func DefaultCharRanges() []CharRange {
	return []CharRange{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}}
}

// RandomLengthStringValue generates a string of the configured length with
// every character drawn uniformly from the union of its code point ranges.
type RandomLengthStringValue struct {
	length int
	ranges []CharRange
	pool   int64
	dist   Distribution

	val    string
	primed bool
}

func NewRandomLengthString(length int, ranges []CharRange, dist Distribution) (*RandomLengthStringValue, error) {
	if length <= 0 {
		return nil, invalidRangef("string length must be positive, got %d", length)
	}
	if len(ranges) == 0 {
		ranges = DefaultCharRanges()
	}
	pool := int64(0)
	for _, r := range ranges {
		pool += r.size()
	}
	return &RandomLengthStringValue{length: length, ranges: ranges, pool: pool, dist: dist}, nil
}

func (r *RandomLengthStringValue) Current() any {
	if !r.primed {
		_ = r.Next()
	}
	return r.val
}

func (r *RandomLengthStringValue) Next() error {
	r.primed = true
	var sb strings.Builder
	sb.Grow(r.length)
	for i := 0; i < r.length; i++ {
		k := r.dist.NextLong(0, r.pool)
		for _, cr := range r.ranges {
			if k < cr.size() {
				sb.WriteRune(cr.Lo + rune(k))
				break
			}
			k -= cr.size()
		}
	}
	r.val = sb.String()
	return nil
}

func (r *RandomLengthStringValue) Reset() {
	r.primed = false
	r.dist.Reset()
}
