package core

import (
	"fmt"
	"strings"
)

// patternTokens maps date pattern letter runs (yyyy-MM-dd style) to Go
// reference layout fragments.
var patternTokens = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"SSS":  "000",
	"a":    "PM",
	"zzz":  "MST",
	"z":    "MST",
	"XXX":  "Z07:00",
	"XX":   "Z0700",
	"X":    "Z07",
}

// compileTimePattern converts a letter-run date pattern into a Go layout.
// Unknown pattern letters are an error, surfaced at construction;
// non-letter characters pass through literally.
func compileTimePattern(pattern string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if !isPatternLetter(c) {
			sb.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		run := pattern[i:j]
		layout, ok := patternTokens[run]
		if !ok {
			return "", &FormatError{Format: pattern, Reason: fmt.Sprintf("unsupported pattern token %q", run)}
		}
		sb.WriteString(layout)
		i = j
	}
	return sb.String(), nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
