package parser

import (
	"strconv"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/lexer"
)

// Binary operators from loosest to tightest binding. All are left
// associative.
var levels = [][]lexer.TokenType{
	{lexer.OROR},
	{lexer.ANDAND},
	{lexer.EQEQ, lexer.NEQ},
	{lexer.LT, lexer.LE, lexer.GT, lexer.GE},
	{lexer.PLUS, lexer.MINUS},
	{lexer.STAR, lexer.SLASH, lexer.PERCENT},
}

var binOps = map[lexer.TokenType]ast.Op{
	lexer.OROR:    ast.OpLOr,
	lexer.ANDAND:  ast.OpLAnd,
	lexer.EQEQ:    ast.OpEq,
	lexer.NEQ:     ast.OpNe,
	lexer.LT:      ast.OpLt,
	lexer.LE:      ast.OpLe,
	lexer.GT:      ast.OpGt,
	lexer.GE:      ast.OpGe,
	lexer.PLUS:    ast.OpAdd,
	lexer.MINUS:   ast.OpSub,
	lexer.STAR:    ast.OpMul,
	lexer.SLASH:   ast.OpDiv,
	lexer.PERCENT: ast.OpMod,
}

func (p *Parser) parseExpr() (ast.Expr, *diag.ParseError) { return p.parseBinary(0) }

func (p *Parser) parseBinary(level int) (ast.Expr, *diag.ParseError) {
	if level == len(levels) {
		return p.parseUnary()
	}
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.tok.In(levels[level]...) {
		op := p.tok
		p.next()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{At: ast.Pos(op.Off), Op: binOps[op.Type], Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, *diag.ParseError) {
	var op ast.Op
	switch p.tok.Type {
	case lexer.MINUS:
		op = ast.OpNeg
	case lexer.BANG:
		op = ast.OpNot
	default:
		return p.parsePrimary()
	}
	at := ast.Pos(p.tok.Off)
	p.next()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{At: at, Op: op, X: x}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, *diag.ParseError) {
	tok := p.tok
	at := ast.Pos(tok.Off)
	switch tok.Type {
	case lexer.INT:
		n, err := strconv.ParseInt(tok.Lex, 10, 32)
		if err != nil {
			return nil, p.errorf("integer literal %s out of range", tok.Lex)
		}
		p.next()
		return &ast.IntLit{At: at, Value: int32(n)}, nil
	case lexer.FLOAT:
		f, err := strconv.ParseFloat(tok.Lex, 32)
		if err != nil {
			return nil, p.errorf("invalid float literal %s", tok.Lex)
		}
		p.next()
		return &ast.FloatLit{At: at, Value: float32(f)}, nil
	case lexer.CHAR:
		p.next()
		return &ast.CharLit{At: at, Value: []rune(tok.Lex)[0]}, nil
	case lexer.STRING:
		p.next()
		return &ast.StringLit{At: at, Value: tok.Lex}, nil
	case lexer.IDENT:
		p.next()
		switch p.tok.Type {
		case lexer.LPAREN:
			return p.parseCall(tok)
		case lexer.LBRACK:
			p.next()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			return &ast.IndexExpr{At: at, Name: tok.Lex, Index: idx}, nil
		}
		return &ast.Ident{At: at, Name: tok.Lex}, nil
	case lexer.LPAREN:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.unexpected("expression")
}

// parseCall reads the argument list after the function name id.
func (p *Parser) parseCall(id lexer.Token) (*ast.CallExpr, *diag.ParseError) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	call := &ast.CallExpr{At: ast.Pos(id.Off), Name: id.Lex}
	if p.tok.Type == lexer.RPAREN {
		p.next()
		return call, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.tok.Type != lexer.COMMA {
			break
		}
		p.next()
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}
