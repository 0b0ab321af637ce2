package lexer_test

import (
	"testing"

	"github.com/funvibe/rangen/internal/lexer"
	"github.com/funvibe/rangen/internal/token"
)

type tok struct {
	typ token.Type
	lit any
}

func TestNextToken(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []tok
	}{
		{"long_range", "random(1..10)", []tok{
			{token.IDENT, nil}, {token.LPAREN, nil},
			{token.INT, int64(1)}, {token.DOTDOT, nil}, {token.INT, int64(10)},
			{token.RPAREN, nil}, {token.EOF, nil},
		}},
		{"double_range", "random(1.5..2e3)", []tok{
			{token.IDENT, nil}, {token.LPAREN, nil},
			{token.FLOAT, 1.5}, {token.DOTDOT, nil}, {token.FLOAT, 2e3},
			{token.RPAREN, nil}, {token.EOF, nil},
		}},
		{"negative_int", "-5", []tok{{token.INT, int64(-5)}, {token.EOF, nil}}},
		{"signed_float", "+0.25", []tok{{token.FLOAT, 0.25}, {token.EOF, nil}}},
		{"leading_dot_float", ".5", []tok{{token.FLOAT, 0.5}, {token.EOF, nil}}},
		{"reference", "$user.first", []tok{
			{token.DOLLAR, nil}, {token.IDENT, nil}, {token.DOT, nil}, {token.IDENT, nil}, {token.EOF, nil},
		}},
		{"single_quoted", "'Ada'", []tok{{token.STRING, "Ada"}, {token.EOF, nil}}},
		{"double_quoted", `"Ada"`, []tok{{token.STRING, "Ada"}, {token.EOF, nil}}},
		{"escapes", `'a\tb\n\\\''`, []tok{{token.STRING, "a\tb\n\\'"}, {token.EOF, nil}}},
		{"bracket_list", "[1, 2]", []tok{
			{token.LBRACKET, nil}, {token.INT, int64(1)}, {token.COMMA, nil},
			{token.INT, int64(2)}, {token.RBRACKET, nil}, {token.EOF, nil},
		}},
		{"whitespace_absorbed", "  ( 1 ,\t2 )", []tok{
			{token.LPAREN, nil}, {token.INT, int64(1)}, {token.COMMA, nil},
			{token.INT, int64(2)}, {token.RPAREN, nil}, {token.EOF, nil},
		}},
		{"unterminated_string", "'abc", []tok{{token.ILLEGAL, nil}}},
		{"bad_escape", `'a\qb'`, []tok{{token.ILLEGAL, nil}}},
		{"lone_minus", "-x", []tok{{token.ILLEGAL, nil}, {token.IDENT, nil}, {token.EOF, nil}}},
		{"newline_illegal", "a\nb", []tok{{token.IDENT, nil}, {token.ILLEGAL, nil}, {token.IDENT, nil}, {token.EOF, nil}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := lexer.New(tc.input)
			for i, want := range tc.expect {
				got := l.NextToken()
				if got.Type != want.typ {
					t.Fatalf("token %d: expected %s, got %s", i, want.typ, got)
				}
				if want.lit != nil && got.Literal != want.lit {
					t.Fatalf("token %d: expected literal %v (%T), got %v (%T)",
						i, want.lit, want.lit, got.Literal, got.Literal)
				}
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	l := lexer.New("random( 42 )")
	toks := []token.Token{l.NextToken(), l.NextToken(), l.NextToken(), l.NextToken()}

	if toks[0].Offset != 0 || toks[0].Column != 1 {
		t.Errorf("random: unexpected position %+v", toks[0])
	}
	if toks[2].Lexeme != "42" || toks[2].Offset != 8 {
		t.Errorf("42: unexpected position %+v", toks[2])
	}
	if toks[3].Type != token.RPAREN || toks[3].Offset != 11 {
		t.Errorf("): unexpected position %+v", toks[3])
	}
}
