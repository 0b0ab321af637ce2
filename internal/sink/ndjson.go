package sink

import (
	"encoding/json"
	"io"
)

// NDJSON writes one JSON object per line. With indent set it pretty-prints
// instead, which suits interactive terminals.
type NDJSON struct {
	enc *json.Encoder
}

func NewNDJSON(w io.Writer, indent bool) *NDJSON {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return &NDJSON{enc: enc}
}

func (s *NDJSON) Write(record map[string]any) error {
	return s.enc.Encode(record)
}

func (s *NDJSON) Close() error { return nil }
