package core

import "time"

// NowValue yields the current wall clock as epoch milliseconds.
type NowValue struct {
	val    int64
	primed bool
}

func NewNow() *NowValue { return &NowValue{} }

func (n *NowValue) Current() any {
	if !n.primed {
		_ = n.Next()
	}
	return n.val
}

func (n *NowValue) Next() error {
	n.primed = true
	n.val = time.Now().UnixMilli()
	return nil
}

func (n *NowValue) Reset() { n.primed = false }

// NowDateValue yields the current wall clock as a time.Time.
type NowDateValue struct {
	val    time.Time
	primed bool
}

func NewNowDate() *NowDateValue { return &NowDateValue{} }

func (n *NowDateValue) Current() any {
	if !n.primed {
		_ = n.Next()
	}
	return n.val
}

func (n *NowDateValue) Next() error {
	n.primed = true
	n.val = time.Now()
	return nil
}

func (n *NowDateValue) Reset() { n.primed = false }

// NowLocalDateValue yields today's calendar date.
type NowLocalDateValue struct {
	val    Date
	primed bool
}

func NewNowLocalDate() *NowLocalDateValue { return &NowLocalDateValue{} }

func (n *NowLocalDateValue) Current() any {
	if !n.primed {
		_ = n.Next()
	}
	return n.val
}

func (n *NowLocalDateValue) Next() error {
	n.primed = true
	n.val = DateOf(time.Now())
	return nil
}

func (n *NowLocalDateValue) Reset() { n.primed = false }

// NowLocalDateTimeValue yields the current local date and time truncated
// to whole seconds.
type NowLocalDateTimeValue struct {
	val    time.Time
	primed bool
}

func NewNowLocalDateTime() *NowLocalDateTimeValue { return &NowLocalDateTimeValue{} }

func (n *NowLocalDateTimeValue) Current() any {
	if !n.primed {
		_ = n.Next()
	}
	return n.val
}

func (n *NowLocalDateTimeValue) Next() error {
	n.primed = true
	n.val = time.Now().Truncate(time.Second)
	return nil
}

func (n *NowLocalDateTimeValue) Reset() { n.primed = false }
