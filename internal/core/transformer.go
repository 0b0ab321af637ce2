package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StringTransformer renders its arguments' current outputs into a format
// string. It never advances the arguments; an ancestor in the same record
// is responsible for that, which is what keeps repeated references to one
// node consistent within a record.
type StringTransformer struct {
	format string
	segs   []segment
	args   []Value

	val    string
	primed bool
}

func NewStringTransformer(format string, args []Value) (*StringTransformer, error) {
	segs, err := compileFormat(format, len(args))
	if err != nil {
		return nil, err
	}
	return &StringTransformer{format: format, segs: segs, args: args}, nil
}

func (s *StringTransformer) Current() any {
	if !s.primed {
		_ = s.Next()
	}
	return s.val
}

func (s *StringTransformer) Next() error {
	s.primed = true
	var sb strings.Builder
	for _, seg := range s.segs {
		if seg.arg < 0 {
			sb.WriteString(seg.text)
			continue
		}
		sb.WriteString(formatOutput(s.args[seg.arg].Current()))
	}
	s.val = sb.String()
	return nil
}

func (s *StringTransformer) Reset() {
	s.primed = false
	for _, a := range s.args {
		a.Reset()
	}
}

// JSONTransformer serializes its inner node's current output as JSON. The
// inner node is read, not advanced.
type JSONTransformer struct {
	inner Value

	val    string
	primed bool
}

func NewJSONTransformer(inner Value) *JSONTransformer {
	return &JSONTransformer{inner: inner}
}

func (j *JSONTransformer) Current() any {
	if !j.primed {
		_ = j.Next()
	}
	return j.val
}

func (j *JSONTransformer) Next() error {
	j.primed = true
	b, err := json.Marshal(j.inner.Current())
	if err != nil {
		return &FormatError{Format: "json", Reason: err.Error()}
	}
	j.val = string(b)
	return nil
}

func (j *JSONTransformer) Reset() {
	j.primed = false
	j.inner.Reset()
}

// TimeFormatTransformer formats a temporal output with a date pattern.
// The pattern is compiled to a layout once, at construction.
type TimeFormatTransformer struct {
	pattern string
	layout  string
	inner   Value

	val    string
	primed bool
}

func NewTimeFormatTransformer(pattern string, inner Value) (*TimeFormatTransformer, error) {
	layout, err := compileTimePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &TimeFormatTransformer{pattern: pattern, layout: layout, inner: inner}, nil
}

func (t *TimeFormatTransformer) Current() any {
	if !t.primed {
		_ = t.Next()
	}
	return t.val
}

func (t *TimeFormatTransformer) Next() error {
	t.primed = true
	switch v := t.inner.Current().(type) {
	case int64:
		t.val = time.UnixMilli(v).Format(t.layout)
	case time.Time:
		t.val = v.Format(t.layout)
	case Date:
		t.val = v.Time().Format(t.layout)
	default:
		return &FormatError{Format: t.pattern, Reason: fmt.Sprintf("cannot format value of type %T as time", v)}
	}
	return nil
}

func (t *TimeFormatTransformer) Reset() {
	t.primed = false
	t.inner.Reset()
}
