package core

// MaxEvalDepth bounds delegate recursion per advance. A reference cycle in
// the graph is not detected at build time; it shows up as runaway
// recursion here and is reported as an EvaluationCycleError.
const MaxEvalDepth = 1024

// Proxy is the indirection that makes named and forward references work:
// it is created when a name is registered in the name table and bound to
// its delegate once that name's definition has been compiled. After
// binding it delegates transparently.
type Proxy struct {
	name     string
	delegate Value

	depth     int
	resetting bool
}

func NewProxy(name string) *Proxy {
	return &Proxy{name: name}
}

func (p *Proxy) Name() string { return p.name }

func (p *Proxy) Bound() bool { return p.delegate != nil }

// Bind attaches the delegate. A proxy may not delegate to itself.
func (p *Proxy) Bind(delegate Value) error {
	if d, ok := delegate.(*Proxy); ok && d == p {
		return &InvalidReferenceNameError{Name: p.name}
	}
	p.delegate = delegate
	return nil
}

func (p *Proxy) Current() any {
	if p.delegate == nil || p.depth > MaxEvalDepth {
		return nil
	}
	p.depth++
	defer func() { p.depth-- }()
	return p.delegate.Current()
}

func (p *Proxy) Next() error {
	if p.delegate == nil {
		return &UnresolvedReferenceError{Names: []string{p.name}}
	}
	if p.depth >= MaxEvalDepth {
		return &EvaluationCycleError{Name: p.name}
	}
	p.depth++
	defer func() { p.depth-- }()
	return p.delegate.Next()
}

func (p *Proxy) Reset() {
	if p.delegate == nil || p.resetting {
		return
	}
	p.resetting = true
	p.delegate.Reset()
	p.resetting = false
}
