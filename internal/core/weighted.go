package core

import "sort"

// WeightedValuePair couples a child with its selection weight. Weights
// are relative; zero is allowed and makes the child unreachable.
type WeightedValuePair struct {
	Value  Value
	Weight float64
}

// WeightedValue selects a child with probability proportional to its
// weight. Selection draws u in [0, total) and binary-searches the prefix
// sums. Only the selected child is advanced.
type WeightedValue struct {
	pairs  []WeightedValuePair
	prefix []float64
	total  float64
	dist   Distribution

	val    any
	primed bool
}

func NewWeighted(pairs []WeightedValuePair, dist Distribution) (*WeightedValue, error) {
	if len(pairs) == 0 {
		return nil, &ArityError{Op: "weighted", Reason: "requires at least one pair"}
	}
	prefix := make([]float64, len(pairs))
	total := 0.0
	for i, p := range pairs {
		if p.Weight < 0 {
			return nil, invalidRangef("weight must not be negative, got %v", p.Weight)
		}
		total += p.Weight
		prefix[i] = total
	}
	if total <= 0 {
		return nil, invalidRangef("total weight must be positive")
	}
	return &WeightedValue{pairs: pairs, prefix: prefix, total: total, dist: dist}, nil
}

func (w *WeightedValue) Current() any {
	if !w.primed {
		_ = w.Next()
	}
	return w.val
}

func (w *WeightedValue) Next() error {
	w.primed = true
	u := w.dist.NextDouble(0, w.total)
	i := sort.SearchFloat64s(w.prefix, u)
	// SearchFloat64s finds the first prefix >= u; a draw exactly on a
	// boundary belongs to the next child.
	for i < len(w.prefix) && w.prefix[i] <= u {
		i++
	}
	child := w.pairs[i].Value
	if err := child.Next(); err != nil {
		return err
	}
	w.val = child.Current()
	return nil
}

func (w *WeightedValue) Reset() {
	w.primed = false
	w.dist.Reset()
	for _, p := range w.pairs {
		p.Value.Reset()
	}
}
