package core

import "math"

// RangeValueLong samples int64 values from a half-open range. With
// useEdges the first two outputs are the deterministic boundaries Lo and
// Hi-1; sampling starts afterwards.
type RangeValueLong struct {
	rng      Range[int64]
	useEdges bool
	dist     Distribution

	val        int64
	primed     bool
	loEdgeUsed bool
	hiEdgeUsed bool
}

func NewRangeLong(rng Range[int64], useEdges bool, dist Distribution) *RangeValueLong {
	return &RangeValueLong{rng: rng, useEdges: useEdges, dist: dist}
}

func (r *RangeValueLong) Current() any {
	if !r.primed {
		_ = r.Next()
	}
	return r.val
}

func (r *RangeValueLong) Next() error {
	r.primed = true
	switch {
	case r.useEdges && !r.loEdgeUsed:
		r.loEdgeUsed = true
		r.val = r.rng.Lo
	case r.useEdges && !r.hiEdgeUsed:
		r.hiEdgeUsed = true
		r.val = r.rng.Hi - 1
	default:
		r.val = r.dist.NextLong(r.rng.Lo, r.rng.Hi)
	}
	return nil
}

func (r *RangeValueLong) Reset() {
	r.primed = false
	r.loEdgeUsed = false
	r.hiEdgeUsed = false
	r.dist.Reset()
}

// RangeValueDouble samples float64 values from a half-open range. The
// upper edge case is the largest representable float below Hi.
type RangeValueDouble struct {
	rng      Range[float64]
	useEdges bool
	dist     Distribution

	val        float64
	primed     bool
	loEdgeUsed bool
	hiEdgeUsed bool
}

func NewRangeDouble(rng Range[float64], useEdges bool, dist Distribution) *RangeValueDouble {
	return &RangeValueDouble{rng: rng, useEdges: useEdges, dist: dist}
}

func (r *RangeValueDouble) Current() any {
	if !r.primed {
		_ = r.Next()
	}
	return r.val
}

func (r *RangeValueDouble) Next() error {
	r.primed = true
	switch {
	case r.useEdges && !r.loEdgeUsed:
		r.loEdgeUsed = true
		r.val = r.rng.Lo
	case r.useEdges && !r.hiEdgeUsed:
		r.hiEdgeUsed = true
		r.val = math.Nextafter(r.rng.Hi, math.Inf(-1))
	default:
		r.val = r.dist.NextDouble(r.rng.Lo, r.rng.Hi)
	}
	return nil
}

func (r *RangeValueDouble) Reset() {
	r.primed = false
	r.loEdgeUsed = false
	r.hiEdgeUsed = false
	r.dist.Reset()
}

// RangeValueLocalDate samples calendar dates from [beginning, end). The
// upper edge case is the day before end.
type RangeValueLocalDate struct {
	beginning Date
	end       Date
	useEdges  bool
	dist      Distribution

	val        Date
	primed     bool
	loEdgeUsed bool
	hiEdgeUsed bool
}

func NewRangeLocalDate(beginning, end Date, useEdges bool, dist Distribution) (*RangeValueLocalDate, error) {
	if !beginning.Before(end) {
		return nil, invalidRangef("end of the range (%s) must be after the beginning (%s)", end, beginning)
	}
	return &RangeValueLocalDate{beginning: beginning, end: end, useEdges: useEdges, dist: dist}, nil
}

func (r *RangeValueLocalDate) Current() any {
	if !r.primed {
		_ = r.Next()
	}
	return r.val
}

func (r *RangeValueLocalDate) Next() error {
	r.primed = true
	switch {
	case r.useEdges && !r.loEdgeUsed:
		r.loEdgeUsed = true
		r.val = r.beginning
	case r.useEdges && !r.hiEdgeUsed:
		r.hiEdgeUsed = true
		r.val = r.end.AddDays(-1)
	default:
		r.val = DateOfEpochDay(r.dist.NextLong(r.beginning.EpochDay(), r.end.EpochDay()))
	}
	return nil
}

func (r *RangeValueLocalDate) Reset() {
	r.primed = false
	r.loEdgeUsed = false
	r.hiEdgeUsed = false
	r.dist.Reset()
}
