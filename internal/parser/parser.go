// Package parser turns expression text into a graph of core value nodes.
// The grammar is deterministic with ordered choice; each rule returns a
// typed node and argument lists are assembled directly, so there is no
// semantic value stack. References resolve against the proxy table under
// the parser's current scope.
package parser

import (
	"fmt"

	"github.com/funvibe/rangen/internal/core"
	"github.com/funvibe/rangen/internal/distribution"
	"github.com/funvibe/rangen/internal/lexer"
	"github.com/funvibe/rangen/internal/token"
)

// Parser is reusable across expressions: the graph builder sets the scope
// per definition and calls Parse once per expression text.
type Parser struct {
	table *Table
	seeds *distribution.Source
	scope string

	input string
	lx    *lexer.Lexer
	cur   token.Token
	peek  token.Token
}

func New(table *Table, seeds *distribution.Source) *Parser {
	return &Parser{table: table, seeds: seeds}
}

// SetScope sets the dotted prefix references resolve under.
func (p *Parser) SetScope(scope string) {
	p.scope = scope
}

// Parse compiles one expression into its root value node. On failure no
// partial graph is returned.
func (p *Parser) Parse(input string) (core.Value, error) {
	p.input = input
	p.lx = lexer.New(input)
	p.cur = p.lx.NextToken()
	p.peek = p.lx.NextToken()

	if p.cur.Type == token.EOF {
		return nil, p.errf("value", "empty expression")
	}

	if !p.startsStructured() {
		return p.nakedString()
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, p.errf("value", "unexpected trailing input")
	}
	return v, nil
}

// startsStructured reports whether the input commits to a non-naked
// alternative. Quoted strings, references, known calls and whole-input
// numeric or boolean literals commit; everything else falls back to a
// naked string spanning the input.
func (p *Parser) startsStructured() bool {
	switch p.cur.Type {
	case token.DOLLAR, token.STRING:
		return true
	case token.INT, token.FLOAT:
		return p.peek.Type == token.EOF
	case token.IDENT:
		switch p.cur.Lexeme {
		case "true", "True", "false", "False":
			return p.peek.Type == token.EOF
		case "random", "circular", "list", "weighted", "exactly", "randomLengthString",
			"uuid", "now", "nowDate", "nowLocalDate", "nowLocalDateTime",
			"string", "json", "time", "null":
			return p.peek.Type == token.LPAREN
		}
	}
	return false
}

// nakedString accepts top-level bare text as a string constant. Inputs
// beginning with a quote, backslash or line break are rejected here.
func (p *Parser) nakedString() (core.Value, error) {
	switch p.input[0] {
	case '"', '\'', '\\', '\r', '\n':
		return nil, p.errf("nakedString", "unexpected character %q", p.input[0])
	}
	return core.NewPrimitive(p.input), nil
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lx.NextToken()
}

func (p *Parser) expect(t token.Type, rule string) (token.Token, error) {
	if p.cur.Type != t {
		return token.Token{}, p.errf(rule, "expected %s, found %s", t, p.describeCur())
	}
	tok := p.cur
	p.next()
	return tok, nil
}

func (p *Parser) describeCur() string {
	if p.cur.Type == token.EOF {
		return "end of input"
	}
	return p.cur.String()
}

func (p *Parser) errf(rule, format string, args ...any) *ParseError {
	off := p.cur.Offset
	snippet := "<end of input>"
	if off < len(p.input) {
		end := off + 20
		if end > len(p.input) {
			end = len(p.input)
		}
		snippet = p.input[off:end]
	}
	return &ParseError{
		Line:    p.cur.Line,
		Col:     p.cur.Column,
		Offset:  off,
		Rule:    rule,
		Snippet: snippet,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// parseValue is the ordered-choice entry for nested value positions.
// Naked strings are not valid here.
func (p *Parser) parseValue() (core.Value, error) {
	switch p.cur.Type {
	case token.DOLLAR:
		return p.parseReference()
	case token.STRING:
		v := core.NewPrimitive(p.cur.Literal.(string))
		p.next()
		return v, nil
	case token.INT:
		v := core.NewPrimitive(p.cur.Literal.(int64))
		p.next()
		return v, nil
	case token.FLOAT:
		v := core.NewPrimitive(p.cur.Literal.(float64))
		p.next()
		return v, nil
	case token.IDENT:
		switch p.cur.Lexeme {
		case "random":
			return p.parseRandom()
		case "circular":
			return p.parseCircular()
		case "list":
			return p.parseList()
		case "weighted":
			return p.parseWeighted()
		case "exactly":
			return p.parseExactly()
		case "randomLengthString":
			return p.parseRandomLengthString()
		case "uuid":
			if err := p.emptyCall("uuid"); err != nil {
				return nil, err
			}
			return p.newUUID(), nil
		case "now":
			if err := p.emptyCall("now"); err != nil {
				return nil, err
			}
			return core.NewNow(), nil
		case "nowDate":
			if err := p.emptyCall("nowDate"); err != nil {
				return nil, err
			}
			return core.NewNowDate(), nil
		case "nowLocalDate":
			if err := p.emptyCall("nowLocalDate"); err != nil {
				return nil, err
			}
			return core.NewNowLocalDate(), nil
		case "nowLocalDateTime":
			if err := p.emptyCall("nowLocalDateTime"); err != nil {
				return nil, err
			}
			return core.NewNowLocalDateTime(), nil
		case "string":
			return p.parseStringTransformer()
		case "json":
			return p.parseJSONTransformer()
		case "time":
			return p.parseTimeTransformer()
		case "null":
			if err := p.emptyCall("null"); err != nil {
				return nil, err
			}
			return core.NewNull(), nil
		case "true", "True":
			p.next()
			return core.NewPrimitive(true), nil
		case "false", "False":
			p.next()
			return core.NewPrimitive(false), nil
		}
		return nil, p.errf("value", "unknown construct %q", p.cur.Lexeme)
	}
	return nil, p.errf("value", "expected value, found %s", p.describeCur())
}

// parseReference consumes $a.b.c and resolves it to a proxy under the
// current scope.
func (p *Parser) parseReference() (core.Value, error) {
	if _, err := p.expect(token.DOLLAR, "reference"); err != nil {
		return nil, err
	}
	tok, err := p.expect(token.IDENT, "reference")
	if err != nil {
		return nil, err
	}
	name := tok.Lexeme
	for p.cur.Type == token.DOT {
		p.next()
		tok, err := p.expect(token.IDENT, "reference")
		if err != nil {
			return nil, err
		}
		name += "." + tok.Lexeme
	}
	return p.table.Resolve(p.scope, name)
}

func (p *Parser) newUUID() core.Value {
	if p.seeds.Deterministic() {
		return core.NewUUID(p.seeds.Uniform())
	}
	return core.NewUUID(nil)
}

func (p *Parser) emptyCall(rule string) error {
	p.next() // function name
	if _, err := p.expect(token.LPAREN, rule); err != nil {
		return err
	}
	_, err := p.expect(token.RPAREN, rule)
	return err
}

type number struct {
	isFloat bool
	i       int64
	f       float64
}

func (n number) double() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (p *Parser) parseNumber(rule string) (number, error) {
	switch p.cur.Type {
	case token.INT:
		n := number{i: p.cur.Literal.(int64)}
		p.next()
		return n, nil
	case token.FLOAT:
		n := number{isFloat: true, f: p.cur.Literal.(float64)}
		p.next()
		return n, nil
	}
	return number{}, p.errf(rule, "expected number, found %s", p.describeCur())
}

func (p *Parser) parseBool(rule string) (bool, error) {
	if p.cur.Type == token.IDENT {
		switch p.cur.Lexeme {
		case "true", "True":
			p.next()
			return true, nil
		case "false", "False":
			p.next()
			return false, nil
		}
	}
	return false, p.errf(rule, "expected boolean, found %s", p.describeCur())
}

// parseRandom handles both the discrete form random([...]) and the range
// forms random(lo..hi). Integer endpoints make a long range; a '.' or
// exponent in either endpoint widens both to double.
func (p *Parser) parseRandom() (core.Value, error) {
	p.next() // random
	if _, err := p.expect(token.LPAREN, "random"); err != nil {
		return nil, err
	}

	if p.cur.Type == token.LBRACKET {
		vals, err := p.parseBracketValueList("random")
		if err != nil {
			return nil, err
		}
		dist := core.Distribution(nil)
		if p.cur.Type == token.COMMA {
			p.next()
			dist, err = p.parseDistribution()
			if err != nil {
				return nil, err
			}
		}
		if dist == nil {
			dist = p.seeds.Uniform()
		}
		if _, err := p.expect(token.RPAREN, "random"); err != nil {
			return nil, err
		}
		return core.NewDiscrete(vals, dist)
	}

	lo, err := p.parseNumber("range")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOTDOT, "range"); err != nil {
		return nil, err
	}
	hi, err := p.parseNumber("range")
	if err != nil {
		return nil, err
	}

	useEdges := false
	dist := core.Distribution(nil)
	if p.cur.Type == token.COMMA {
		p.next()
		useEdges, err = p.parseBool("range")
		if err != nil {
			return nil, err
		}
		if p.cur.Type == token.COMMA {
			p.next()
			dist, err = p.parseDistribution()
			if err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN, "random"); err != nil {
		return nil, err
	}
	if dist == nil {
		dist = p.seeds.Uniform()
	}

	if lo.isFloat || hi.isFloat {
		rng, err := core.NewRange(lo.double(), hi.double())
		if err != nil {
			return nil, err
		}
		return core.NewRangeDouble(rng, useEdges, dist), nil
	}
	rng, err := core.NewRange(lo.i, hi.i)
	if err != nil {
		return nil, err
	}
	return core.NewRangeLong(rng, useEdges, dist), nil
}

// parseDistribution handles the optional trailing distribution argument:
// uniform() or normal() with exactly zero or four parameters.
func (p *Parser) parseDistribution() (core.Distribution, error) {
	if p.cur.Type != token.IDENT {
		return nil, p.errf("distribution", "expected distribution, found %s", p.describeCur())
	}
	switch p.cur.Lexeme {
	case "uniform":
		if err := p.emptyCall("uniform"); err != nil {
			return nil, err
		}
		return p.seeds.Uniform(), nil
	case "normal":
		p.next()
		if _, err := p.expect(token.LPAREN, "normal"); err != nil {
			return nil, err
		}
		var args []float64
		for p.cur.Type != token.RPAREN {
			if len(args) > 0 {
				if _, err := p.expect(token.COMMA, "normal"); err != nil {
					return nil, err
				}
			}
			n, err := p.parseNumber("normal")
			if err != nil {
				return nil, err
			}
			args = append(args, n.double())
		}
		p.next() // ')'
		switch len(args) {
		case 0:
			return p.seeds.Normal(distribution.DefaultMean, distribution.DefaultStddev,
				distribution.DefaultLower, distribution.DefaultUpper)
		case 4:
			return p.seeds.Normal(args[0], args[1], args[2], args[3])
		}
		return nil, &core.ArityError{Op: "normal",
			Reason: "requires mean, standard deviation, lower bound and upper bound, or no parameters"}
	}
	return nil, p.errf("distribution", "unknown distribution %q", p.cur.Lexeme)
}

// parseCircular handles both circular([...]) and circular(lo..hi, step).
func (p *Parser) parseCircular() (core.Value, error) {
	p.next() // circular
	if _, err := p.expect(token.LPAREN, "circular"); err != nil {
		return nil, err
	}

	if p.cur.Type == token.LBRACKET {
		vals, err := p.parseBracketValueList("circular")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "circular"); err != nil {
			return nil, err
		}
		return core.NewCircular(vals)
	}

	lo, err := p.parseNumber("circularRange")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOTDOT, "circularRange"); err != nil {
		return nil, err
	}
	hi, err := p.parseNumber("circularRange")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA, "circularRange"); err != nil {
		return nil, err
	}
	step, err := p.parseNumber("circularRange")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "circular"); err != nil {
		return nil, err
	}

	if lo.isFloat || hi.isFloat || step.isFloat {
		rng, err := core.NewRange(lo.double(), hi.double())
		if err != nil {
			return nil, err
		}
		return core.NewCircularRangeDouble(rng, step.double())
	}
	rng, err := core.NewRange(lo.i, hi.i)
	if err != nil {
		return nil, err
	}
	return core.NewCircularRangeLong(rng, step.i)
}

func (p *Parser) parseList() (core.Value, error) {
	p.next() // list
	if _, err := p.expect(token.LPAREN, "list"); err != nil {
		return nil, err
	}
	vals, err := p.parseBracketValueList("list")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "list"); err != nil {
		return nil, err
	}
	return core.NewList(vals), nil
}

func (p *Parser) parseWeighted() (core.Value, error) {
	p.next() // weighted
	if _, err := p.expect(token.LPAREN, "weighted"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACKET, "weighted"); err != nil {
		return nil, err
	}
	var pairs []core.WeightedValuePair
	for p.cur.Type != token.RBRACKET {
		if len(pairs) > 0 {
			if _, err := p.expect(token.COMMA, "weighted"); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.LPAREN, "weightedPair"); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA, "weightedPair"); err != nil {
			return nil, err
		}
		w, err := p.parseNumber("weightedPair")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "weightedPair"); err != nil {
			return nil, err
		}
		pairs = append(pairs, core.WeightedValuePair{Value: v, Weight: w.double()})
	}
	p.next() // ']'
	if _, err := p.expect(token.RPAREN, "weighted"); err != nil {
		return nil, err
	}
	return core.NewWeighted(pairs, p.seeds.Uniform())
}

func (p *Parser) parseExactly() (core.Value, error) {
	p.next() // exactly
	if _, err := p.expect(token.LPAREN, "exactly"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACKET, "exactly"); err != nil {
		return nil, err
	}
	var pairs []core.CountValuePair
	for p.cur.Type != token.RBRACKET {
		if len(pairs) > 0 {
			if _, err := p.expect(token.COMMA, "exactly"); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.LPAREN, "countPair"); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA, "countPair"); err != nil {
			return nil, err
		}
		count, err := p.expect(token.INT, "countPair")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "countPair"); err != nil {
			return nil, err
		}
		pairs = append(pairs, core.CountValuePair{Value: v, Count: count.Literal.(int64)})
	}
	p.next() // ']'
	if _, err := p.expect(token.RPAREN, "exactly"); err != nil {
		return nil, err
	}
	return core.NewExactWeighted(pairs, p.seeds.Uniform())
}

func (p *Parser) parseRandomLengthString() (core.Value, error) {
	p.next() // randomLengthString
	if _, err := p.expect(token.LPAREN, "randomLengthString"); err != nil {
		return nil, err
	}
	length, err := p.expect(token.INT, "randomLengthString")
	if err != nil {
		return nil, err
	}
	var ranges []core.CharRange
	if p.cur.Type == token.COMMA {
		p.next()
		if _, err := p.expect(token.LBRACKET, "charRange"); err != nil {
			return nil, err
		}
		for p.cur.Type != token.RBRACKET {
			if len(ranges) > 0 {
				if _, err := p.expect(token.COMMA, "charRange"); err != nil {
					return nil, err
				}
			}
			r, err := p.parseCharRange()
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
		p.next() // ']'
	}
	if _, err := p.expect(token.RPAREN, "randomLengthString"); err != nil {
		return nil, err
	}
	return core.NewRandomLengthString(int(length.Literal.(int64)), ranges, p.seeds.Uniform())
}

func (p *Parser) parseCharRange() (core.CharRange, error) {
	lo, err := p.parseChar()
	if err != nil {
		return core.CharRange{}, err
	}
	if _, err := p.expect(token.DOTDOT, "charRange"); err != nil {
		return core.CharRange{}, err
	}
	hi, err := p.parseChar()
	if err != nil {
		return core.CharRange{}, err
	}
	return core.NewCharRange(lo, hi)
}

func (p *Parser) parseChar() (rune, error) {
	tok, err := p.expect(token.STRING, "charRange")
	if err != nil {
		return 0, err
	}
	runes := []rune(tok.Literal.(string))
	if len(runes) != 1 {
		return 0, p.errf("charRange", "expected single character literal, found %q", tok.Literal)
	}
	return runes[0], nil
}

func (p *Parser) parseStringTransformer() (core.Value, error) {
	p.next() // string
	if _, err := p.expect(token.LPAREN, "string"); err != nil {
		return nil, err
	}
	format, err := p.expect(token.STRING, "string")
	if err != nil {
		return nil, err
	}
	var args []core.Value
	for p.cur.Type == token.COMMA {
		p.next()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if _, err := p.expect(token.RPAREN, "string"); err != nil {
		return nil, err
	}
	return core.NewStringTransformer(format.Literal.(string), args)
}

func (p *Parser) parseJSONTransformer() (core.Value, error) {
	p.next() // json
	if _, err := p.expect(token.LPAREN, "json"); err != nil {
		return nil, err
	}
	ref, err := p.parseReference()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "json"); err != nil {
		return nil, err
	}
	return core.NewJSONTransformer(ref), nil
}

func (p *Parser) parseTimeTransformer() (core.Value, error) {
	p.next() // time
	if _, err := p.expect(token.LPAREN, "time"); err != nil {
		return nil, err
	}
	pattern, err := p.expect(token.STRING, "time")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA, "time"); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "time"); err != nil {
		return nil, err
	}
	return core.NewTimeFormatTransformer(pattern.Literal.(string), v)
}

func (p *Parser) parseBracketValueList(rule string) ([]core.Value, error) {
	if _, err := p.expect(token.LBRACKET, rule); err != nil {
		return nil, err
	}
	var vals []core.Value
	for p.cur.Type != token.RBRACKET {
		if len(vals) > 0 {
			if _, err := p.expect(token.COMMA, rule); err != nil {
				return nil, err
			}
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	p.next() // ']'
	return vals, nil
}
