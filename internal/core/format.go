package core

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one piece of a compiled format string: either literal text or
// a reference to a positional argument.
type segment struct {
	text string
	arg  int // argument index, -1 for literal text
}

// compileFormat parses a format with {} (next positional) and {n}
// (explicit zero-based) placeholders. Index problems surface here, at
// construction, never at evaluation.
func compileFormat(format string, argc int) ([]segment, error) {
	var segs []segment
	auto := 0
	lit := strings.Builder{}
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String(), arg: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '{' {
			lit.WriteByte(format[i])
			continue
		}
		end := strings.IndexByte(format[i:], '}')
		if end < 0 {
			lit.WriteByte(format[i])
			continue
		}
		body := format[i+1 : i+end]
		var idx int
		if body == "" {
			idx = auto
			auto++
		} else {
			n, err := strconv.Atoi(body)
			if err != nil {
				// Braced text that is not an index is literal.
				lit.WriteString(format[i : i+end+1])
				i += end
				continue
			}
			idx = n
		}
		if idx < 0 || idx >= argc {
			return nil, &FormatError{Format: format, Reason: fmt.Sprintf("placeholder index %d out of range for %d argument(s)", idx, argc)}
		}
		flush()
		segs = append(segs, segment{arg: idx})
		i += end
	}
	flush()
	return segs, nil
}

// formatOutput renders one node output as placeholder text.
func formatOutput(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
