package parser

import (
	"strings"

	"github.com/funvibe/rangen/internal/core"
)

// Table is the append-only mapping from fully qualified names to proxies.
// The graph builder pre-registers a proxy for every definition name, so
// forward references across the input order resolve; binding happens as
// each definition's expression is parsed.
type Table struct {
	proxies map[string]*core.Proxy
	order   []string
}

func NewTable() *Table {
	return &Table{proxies: make(map[string]*core.Proxy)}
}

// Proxy returns the proxy registered under name, creating it on first use.
func (t *Table) Proxy(name string) *core.Proxy {
	if p, ok := t.proxies[name]; ok {
		return p
	}
	p := core.NewProxy(name)
	t.proxies[name] = p
	t.order = append(t.order, name)
	return p
}

// Lookup returns the proxy for name if one was registered.
func (t *Table) Lookup(name string) (*core.Proxy, bool) {
	p, ok := t.proxies[name]
	return p, ok
}

// Bind attaches a delegate to the proxy registered under name.
func (t *Table) Bind(name string, v core.Value) error {
	return t.Proxy(name).Bind(v)
}

// Unbound returns the names of all proxies still missing a delegate, in
// registration order.
func (t *Table) Unbound() []string {
	var names []string
	for _, name := range t.order {
		if !t.proxies[name].Bound() {
			names = append(names, name)
		}
	}
	return names
}

// Resolve looks a reference up against the scope chain: a reference "x"
// under scope "a.b" tries "a.b.x", then "a.x", then "x"; the first
// registered name wins.
func (t *Table) Resolve(scope, ref string) (*core.Proxy, error) {
	var tried []string
	parent := scope
	for {
		name := ref
		if parent != "" {
			name = parent + "." + ref
		}
		tried = append(tried, name)
		if p, ok := t.proxies[name]; ok {
			return p, nil
		}
		if parent == "" {
			return nil, &core.InvalidReferenceNameError{Name: ref, Tried: tried}
		}
		parent = stripLastSegment(parent)
	}
}

func stripLastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}
