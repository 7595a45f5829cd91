package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	src  []rune
	i    int
	ch   rune
	off  int // byte offset of ch
	next int // byte offset of src[i]
	line int
	col  int
}

func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1}
	l.read()
	return l
}

func (l *Lexer) read() {
	l.off = l.next
	if l.i >= len(l.src) {
		l.ch = 0
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.ch = l.src[l.i]
	l.i++
	l.next += utf8.RuneLen(l.ch)
	l.col++
}

func (l *Lexer) peek() rune {
	if l.i >= len(l.src) {
		return 0
	}
	return l.src[l.i]
}

func (l *Lexer) atEOF() bool { return l.ch == 0 && l.i >= len(l.src) }

// Peek returns what Next would return without consuming it.
func (l *Lexer) Peek() Token {
	c := *l
	return c.Next()
}

// All drains the lexer, EOF token included.
func (l *Lexer) All() []Token {
	var toks []Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Type == EOF {
			return toks
		}
	}
}

func (l *Lexer) Next() Token {
	// skip spaces and comments
	for {
		for unicode.IsSpace(l.ch) {
			l.read()
		}
		if l.ch == '/' && l.peek() == '/' {
			for !l.atEOF() && l.ch != '\n' {
				l.read()
			}
			continue
		}
		if l.ch == '/' && l.peek() == '*' {
			l.read()
			l.read()
			for !l.atEOF() {
				if l.ch == '*' && l.peek() == '/' {
					l.read()
					l.read()
					break
				}
				l.read()
			}
			continue
		}
		break
	}
	tok := Token{Off: l.off, Line: l.line, Col: l.col}
	if l.atEOF() {
		tok.Type = EOF
		return tok
	}
	switch ch := l.ch; ch {
	case '(':
		l.single(&tok, LPAREN)
	case ')':
		l.single(&tok, RPAREN)
	case '{':
		l.single(&tok, LBRACE)
	case '}':
		l.single(&tok, RBRACE)
	case '[':
		l.single(&tok, LBRACK)
	case ']':
		l.single(&tok, RBRACK)
	case ';':
		l.single(&tok, SEMI)
	case ',':
		l.single(&tok, COMMA)
	case '+':
		l.single(&tok, PLUS)
	case '-':
		l.single(&tok, MINUS)
	case '*':
		l.single(&tok, STAR)
	case '/':
		l.single(&tok, SLASH)
	case '%':
		l.single(&tok, PERCENT)
	case '=':
		l.pair(&tok, '=', EQEQ, ASSIGN)
	case '!':
		l.pair(&tok, '=', NEQ, BANG)
	case '<':
		l.pair(&tok, '=', LE, LT)
	case '>':
		l.pair(&tok, '=', GE, GT)
	case '&':
		l.pair(&tok, '&', ANDAND, ILLEGAL)
	case '|':
		l.pair(&tok, '|', OROR, ILLEGAL)
	case '\'':
		l.charLit(&tok)
	case '"':
		l.stringLit(&tok)
	default:
		if unicode.IsLetter(ch) || ch == '_' {
			ident := []rune{ch}
			l.read()
			for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
				ident = append(ident, l.ch)
				l.read()
			}
			lex := string(ident)
			tok.Type = IDENT
			if kw, ok := keywords[lex]; ok {
				tok.Type = kw
			}
			tok.Lex = lex
		} else if unicode.IsDigit(ch) || (ch == '.' && unicode.IsDigit(l.peek())) {
			l.number(&tok)
		} else {
			tok.Type, tok.Lex = ILLEGAL, string(ch)
			l.read()
		}
	}
	return tok
}

func (l *Lexer) single(tok *Token, tt TokenType) {
	tok.Type, tok.Lex = tt, string(l.ch)
	l.read()
}

// pair lexes a one or two rune operator: ch followed by second gives two,
// otherwise one.
func (l *Lexer) pair(tok *Token, second rune, two, one TokenType) {
	first := l.ch
	l.read()
	if l.ch == second {
		tok.Type, tok.Lex = two, string([]rune{first, second})
		l.read()
		return
	}
	tok.Type, tok.Lex = one, string(first)
}

func (l *Lexer) number(tok *Token) {
	var b strings.Builder
	isFloat := false
	for unicode.IsDigit(l.ch) || (l.ch == '.' && !isFloat) {
		if l.ch == '.' {
			isFloat = true
		}
		b.WriteRune(l.ch)
		l.read()
	}
	tok.Type, tok.Lex = INT, b.String()
	if isFloat {
		tok.Type = FLOAT
	}
	// 42foo is not a number followed by an identifier
	if unicode.IsLetter(l.ch) || l.ch == '_' {
		for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
			b.WriteRune(l.ch)
			l.read()
		}
		tok.Type, tok.Lex = ILLEGAL, b.String()
	}
}

// escape decodes the rune after a backslash. ok is false for unknown escapes.
func escape(ch rune) (rune, bool) {
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\', '\'', '"':
		return ch, true
	}
	return ch, false
}

func (l *Lexer) charLit(tok *Token) {
	l.read() // opening quote
	if l.atEOF() || l.ch == '\'' || l.ch == '\n' {
		if l.ch == '\'' {
			l.read()
		}
		tok.Type, tok.Lex = ILLEGAL, "empty char literal"
		return
	}
	c, ok := l.ch, true
	if c == '\\' {
		l.read()
		c, ok = escape(l.ch)
	}
	l.read()
	if !ok || l.ch != '\'' {
		tok.Type, tok.Lex = ILLEGAL, "malformed char literal"
		for !l.atEOF() && l.ch != '\'' && l.ch != '\n' {
			l.read()
		}
		if l.ch == '\'' {
			l.read()
		}
		return
	}
	l.read() // closing quote
	tok.Type, tok.Lex = CHAR, string(c)
}

func (l *Lexer) stringLit(tok *Token) {
	l.read() // opening quote
	var b strings.Builder
	for {
		if l.atEOF() || l.ch == '\n' {
			tok.Type, tok.Lex = ILLEGAL, "unterminated string literal"
			return
		}
		if l.ch == '"' {
			l.read()
			break
		}
		c := l.ch
		if c == '\\' {
			l.read()
			var ok bool
			if c, ok = escape(l.ch); !ok {
				tok.Type, tok.Lex = ILLEGAL, "unknown escape sequence"
				return
			}
		}
		b.WriteRune(c)
		l.read()
	}
	tok.Type, tok.Lex = STRING, b.String()
}
