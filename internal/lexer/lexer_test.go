package lexer

import (
	"testing"

	"github.com/nalgeon/be"
)

func types(toks []Token) []TokenType {
	var out []TokenType
	for _, t := range toks {
		out = append(out, t.Type)
	}
	return out
}

func TestNextOperators(t *testing.T) {
	toks := New("a = b[1] + 2 * 3 <= 4 && !c || d != e;").All()
	be.Equal(t, types(toks), []TokenType{
		IDENT, ASSIGN, IDENT, LBRACK, INT, RBRACK, PLUS, INT, STAR, INT,
		LE, INT, ANDAND, BANG, IDENT, OROR, IDENT, NEQ, IDENT, SEMI, EOF,
	})
}

func TestNextKeywords(t *testing.T) {
	toks := New("int char float void return if else while print main").All()
	be.Equal(t, types(toks), []TokenType{
		KW_INT, KW_CHAR, KW_FLOAT, KW_VOID, KW_RETURN, KW_IF, KW_ELSE,
		KW_WHILE, KW_PRINT, IDENT, EOF,
	})
}

func TestNextLiterals(t *testing.T) {
	toks := New(`42 3.25 'a' '\0' "hi\n"`).All()
	be.Equal(t, types(toks), []TokenType{INT, FLOAT, CHAR, CHAR, STRING, EOF})
	be.Equal(t, toks[0].Lex, "42")
	be.Equal(t, toks[1].Lex, "3.25")
	be.Equal(t, toks[2].Lex, "a")
	be.Equal(t, toks[3].Lex, "\x00")
	be.Equal(t, toks[4].Lex, "hi\n")
}

func TestNextPositions(t *testing.T) {
	src := "int x;\n  // comment\n  x = 1;"
	toks := New(src).All()
	be.Equal(t, toks[0].Off, 0)
	be.Equal(t, toks[1].Off, 4)
	x := toks[3]
	be.Equal(t, x.Lex, "x")
	be.Equal(t, x.Line, 3)
	be.Equal(t, x.Col, 3)
	be.Equal(t, x.Off, 22)
}

func TestNextComments(t *testing.T) {
	toks := New("/* block\n comment */ x // tail").All()
	be.Equal(t, types(toks), []TokenType{IDENT, EOF})
}

func TestNextIllegal(t *testing.T) {
	cases := []string{"42foo", "''", "'ab'", `"open`, "&", "#"}
	for _, src := range cases {
		tok := New(src).Next()
		be.Equal(t, tok.Type, ILLEGAL)
	}
}

func TestTokenTypeString(t *testing.T) {
	be.Equal(t, SEMI.String(), "';'")
	be.Equal(t, IDENT.String(), "identifier")
}
