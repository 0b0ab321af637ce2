package core

// CountValuePair couples a child with the exact number of times it is
// emitted per cycle.
type CountValuePair struct {
	Value Value
	Count int64
}

// ExactWeightedValue emits each child exactly Count times over a cycle of
// length sum(Count), in random order. On every advance it selects among
// children with remaining quota, weighted by that quota, and decrements;
// once all quotas hit zero the cycle refills.
type ExactWeightedValue struct {
	pairs []CountValuePair
	dist  Distribution

	remaining []int64
	left      int64
	val       any
	primed    bool
}

func NewExactWeighted(pairs []CountValuePair, dist Distribution) (*ExactWeightedValue, error) {
	if len(pairs) == 0 {
		return nil, &ArityError{Op: "exactly", Reason: "requires at least one pair"}
	}
	for _, p := range pairs {
		if p.Count < 1 {
			return nil, invalidRangef("count must be at least 1, got %d", p.Count)
		}
	}
	e := &ExactWeightedValue{pairs: pairs, dist: dist}
	e.refill()
	return e, nil
}

func (e *ExactWeightedValue) refill() {
	e.remaining = make([]int64, len(e.pairs))
	e.left = 0
	for i, p := range e.pairs {
		e.remaining[i] = p.Count
		e.left += p.Count
	}
}

func (e *ExactWeightedValue) Current() any {
	if !e.primed {
		_ = e.Next()
	}
	return e.val
}

func (e *ExactWeightedValue) Next() error {
	e.primed = true
	if e.left == 0 {
		e.refill()
	}
	u := e.dist.NextLong(0, e.left)
	i := 0
	for u >= e.remaining[i] {
		u -= e.remaining[i]
		i++
	}
	e.remaining[i]--
	e.left--
	child := e.pairs[i].Value
	if err := child.Next(); err != nil {
		return err
	}
	e.val = child.Current()
	return nil
}

func (e *ExactWeightedValue) Reset() {
	e.primed = false
	e.refill()
	e.dist.Reset()
	for _, p := range e.pairs {
		p.Value.Reset()
	}
}
