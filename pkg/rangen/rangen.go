// Package rangen compiles named value expressions into an evaluable graph
// and drives it to produce a stream of synthetic records.
//
// A definition list maps dotted names to expression text. Dotted prefixes
// form scopes: user.first and user.full live under a synthesized composite
// user, and a reference $first inside user.full resolves against that
// scope chain. Forward references across the definition order are
// supported through proxy indirection and bound once the whole graph is
// built.
package rangen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/funvibe/rangen/internal/core"
	"github.com/funvibe/rangen/internal/distribution"
	"github.com/funvibe/rangen/internal/parser"
)

// Definition pairs a fully qualified name with its expression text.
type Definition struct {
	Name string
	Expr string
}

// Re-exported surface so embedders never import internal packages.
type (
	Value = core.Value

	ParseError                = parser.ParseError
	InvalidRangeError         = core.InvalidRangeError
	InvalidReferenceNameError = core.InvalidReferenceNameError
	UnresolvedReferenceError  = core.UnresolvedReferenceError
	EvaluationCycleError      = core.EvaluationCycleError
	FormatError               = core.FormatError
	ArityError                = core.ArityError
)

type buildOptions struct {
	seeds *distribution.Source
}

// Option configures graph construction.
type Option func(*buildOptions)

// WithSeed makes every random stream in the graph deterministic,
// including UUID generation.
func WithSeed(seed uint64) Option {
	return func(o *buildOptions) {
		o.seeds = distribution.NewSource(seed)
	}
}

var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Build compiles an ordered definition list into a generator. Compilation
// is two-phase: every definition name (and synthesized parent) is
// registered first so forward references bind, then each expression is
// parsed under its scope; finally every proxy must have a delegate.
// No partial graph escapes on error.
func Build(defs []Definition, opts ...Option) (*Generator, error) {
	options := buildOptions{seeds: distribution.NewRandomSource()}
	for _, opt := range opts {
		opt(&options)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no definitions")
	}

	defined := make(map[string]bool, len(defs))
	for _, d := range defs {
		if !nameRe.MatchString(d.Name) {
			return nil, fmt.Errorf("invalid definition name %q", d.Name)
		}
		if defined[d.Name] {
			return nil, fmt.Errorf("duplicate definition %q", d.Name)
		}
		defined[d.Name] = true
	}

	// Parent composites synthesized from dotted prefixes, in first
	// appearance order.
	var parents []string
	parentSeen := make(map[string]bool)
	for _, d := range defs {
		for prefix := parentOf(d.Name); prefix != ""; prefix = parentOf(prefix) {
			if defined[prefix] {
				return nil, fmt.Errorf("name %q conflicts with nested definitions under it", prefix)
			}
			if !parentSeen[prefix] {
				parentSeen[prefix] = true
				parents = append(parents, prefix)
			}
		}
	}

	table := parser.NewTable()
	for _, d := range defs {
		table.Proxy(d.Name)
	}
	for _, name := range parents {
		table.Proxy(name)
	}

	p := parser.New(table, options.seeds)
	for _, d := range defs {
		p.SetScope(parentOf(d.Name))
		v, err := p.Parse(d.Expr)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", d.Name, err)
		}
		if err := table.Bind(d.Name, v); err != nil {
			return nil, fmt.Errorf("definition %q: %w", d.Name, err)
		}
	}

	// Members are attached through their proxies so composites and
	// references share one node per name.
	composites := make(map[string]*core.CompositeValue, len(parents))
	for _, name := range parents {
		composites[name] = core.NewComposite()
	}
	for _, name := range memberOrder(defs, parents) {
		parent := parentOf(name)
		if parent == "" {
			continue
		}
		composites[parent].Add(lastSegment(name), table.Proxy(name))
	}
	for _, name := range parents {
		if err := table.Bind(name, composites[name]); err != nil {
			return nil, fmt.Errorf("composite %q: %w", name, err)
		}
	}

	if unbound := table.Unbound(); len(unbound) > 0 {
		return nil, &core.UnresolvedReferenceError{Names: unbound}
	}

	var order []string
	topSeen := make(map[string]bool)
	for _, name := range memberOrder(defs, parents) {
		if top := topLevelOf(name); !topSeen[top] {
			topSeen[top] = true
			order = append(order, top)
		}
	}

	roots := make(map[string]core.Value, len(order))
	for _, name := range order {
		roots[name] = table.Proxy(name)
	}
	return &Generator{order: order, roots: roots, table: table}, nil
}

// BuildMap is a convenience over Build for unordered input; names are
// processed in sorted order so runs are reproducible.
func BuildMap(m map[string]string, opts ...Option) (*Generator, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, Definition{Name: name, Expr: m[name]})
	}
	return Build(defs, opts...)
}

// memberOrder lists every definition and synthesized parent in first
// appearance order of the underlying definitions.
func memberOrder(defs []Definition, parents []string) []string {
	seen := make(map[string]bool, len(defs)+len(parents))
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, d := range defs {
		// Parents surface at the position of their first member.
		var prefixes []string
		for prefix := parentOf(d.Name); prefix != ""; prefix = parentOf(prefix) {
			prefixes = append(prefixes, prefix)
		}
		for i := len(prefixes) - 1; i >= 0; i-- {
			add(prefixes[i])
		}
		add(d.Name)
	}
	return names
}

func parentOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

func lastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func topLevelOf(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
