package core

// Range is an immutable half-open [Lo, Hi) interval. Hi must be strictly
// greater than Lo.
type Range[T int64 | float64] struct {
	Lo, Hi T
}

func NewRange[T int64 | float64](lo, hi T) (Range[T], error) {
	if lo >= hi {
		return Range[T]{}, invalidRangef("end (%v) must be greater than beginning (%v)", hi, lo)
	}
	return Range[T]{Lo: lo, Hi: hi}, nil
}
