package rangen

import (
	"fmt"

	"github.com/funvibe/rangen/internal/core"
	"github.com/funvibe/rangen/internal/parser"
)

// Generator drives a compiled value graph. One Next call produces one
// record: every top-level root advances once, in definition order, then
// the roots' outputs are snapshotted. A generator must be driven from a
// single goroutine.
type Generator struct {
	order []string
	roots map[string]core.Value
	table *parser.Table
}

// Names returns the top-level root names in definition order.
func (g *Generator) Names() []string {
	return append([]string(nil), g.order...)
}

// Next produces one record.
func (g *Generator) Next() (map[string]any, error) {
	for _, name := range g.order {
		if err := g.roots[name].Next(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	out := make(map[string]any, len(g.order))
	for _, name := range g.order {
		out[name] = g.roots[name].Current()
	}
	return out, nil
}

// Value exposes a single named node (any fully qualified name, not just
// top-level roots) for per-root driving.
func (g *Generator) Value(name string) (Value, bool) {
	return g.table.Lookup(name)
}

// Reset rewinds the whole graph to its initial state; with a fixed seed
// the generator then replays the same record sequence.
func (g *Generator) Reset() {
	for _, name := range g.order {
		g.roots[name].Reset()
	}
}
