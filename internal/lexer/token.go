package lexer

type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers + literals
	IDENT
	INT
	FLOAT
	CHAR
	STRING

	// Keywords
	KW_INT
	KW_CHAR
	KW_FLOAT
	KW_VOID
	KW_RETURN
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_PRINT

	// Symbols
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	LBRACK // [
	RBRACK // ]
	SEMI   // ;
	COMMA  // ,
	ASSIGN // =

	// Arithmetic
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Logical
	ANDAND // &&
	OROR   // ||
	BANG   // !

	// Comparison
	EQEQ // ==
	NEQ  // !=
	LT   // <
	LE   // <=
	GT   // >
	GE   // >=
)

var tokenNames = [...]string{
	EOF:       "end of file",
	ILLEGAL:   "illegal token",
	IDENT:     "identifier",
	INT:       "integer literal",
	FLOAT:     "float literal",
	CHAR:      "char literal",
	STRING:    "string literal",
	KW_INT:    "'int'",
	KW_CHAR:   "'char'",
	KW_FLOAT:  "'float'",
	KW_VOID:   "'void'",
	KW_RETURN: "'return'",
	KW_IF:     "'if'",
	KW_ELSE:   "'else'",
	KW_WHILE:  "'while'",
	KW_PRINT:  "'print'",
	LPAREN:    "'('",
	RPAREN:    "')'",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	LBRACK:    "'['",
	RBRACK:    "']'",
	SEMI:      "';'",
	COMMA:     "','",
	ASSIGN:    "'='",
	PLUS:      "'+'",
	MINUS:     "'-'",
	STAR:      "'*'",
	SLASH:     "'/'",
	PERCENT:   "'%'",
	ANDAND:    "'&&'",
	OROR:      "'||'",
	BANG:      "'!'",
	EQEQ:      "'=='",
	NEQ:       "'!='",
	LT:        "'<'",
	LE:        "'<='",
	GT:        "'>'",
	GE:        "'>='",
}

func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return "unknown token"
}

var keywords = map[string]TokenType{
	"int":    KW_INT,
	"char":   KW_CHAR,
	"float":  KW_FLOAT,
	"void":   KW_VOID,
	"return": KW_RETURN,
	"if":     KW_IF,
	"else":   KW_ELSE,
	"while":  KW_WHILE,
	"print":  KW_PRINT,
}

// Token is a lexeme plus where it starts. Off is a byte offset into the
// source; Line and Col are 1-based. For CHAR and STRING tokens Lex holds the
// decoded text, escapes already resolved.
type Token struct {
	Type TokenType
	Lex  string
	Off  int
	Line int
	Col  int
}

func (t Token) Is(op TokenType) bool { return t.Type == op }

// In reports whether the token is any of tts.
func (t Token) In(tts ...TokenType) bool {
	for _, tt := range tts {
		if t.Type == tt {
			return true
		}
	}
	return false
}

// IsType reports whether the token starts a type.
func (t Token) IsType() bool {
	switch t.Type {
	case KW_INT, KW_CHAR, KW_FLOAT, KW_VOID:
		return true
	}
	return false
}
