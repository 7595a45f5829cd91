// Package parser is a recursive-descent parser for the C subset. Malformed
// declarations and statements are replaced by placeholders and parsing goes
// on, so one run reports every syntax error.
package parser

import (
	"fmt"
	"strconv"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/lexer"
	"github.com/mfaerevaag/semic/internal/types"
)

type Parser struct {
	lx   *lexer.Lexer
	tok  lexer.Token
	errs diag.ParseErrors
}

// Parse always returns a program. The error, when non-nil, is a
// diag.ParseErrors and the program holds placeholders where it failed.
func Parse(src string) (*ast.Program, error) {
	p := &Parser{lx: lexer.New(src)}
	p.next()
	prog := &ast.Program{}
	for p.tok.Type != lexer.EOF {
		start := p.tok.Off
		ds, err := p.parseDecl()
		if err != nil {
			p.fail(err)
			p.syncDecl()
			prog.Decls = append(prog.Decls, &ast.BadDecl{At: ast.Pos(start)})
			continue
		}
		prog.Decls = append(prog.Decls, ds...)
	}
	if len(p.errs) > 0 {
		return prog, p.errs
	}
	return prog, nil
}

func (p *Parser) next() { p.tok = p.lx.Next() }

func (p *Parser) errorf(format string, args ...any) *diag.ParseError {
	return &diag.ParseError{Msg: fmt.Sprintf(format, args...), Pos: ast.Pos(p.tok.Off)}
}

func (p *Parser) unexpected(want string) *diag.ParseError {
	if p.tok.Type == lexer.ILLEGAL {
		return p.errorf("%s: %s", p.tok.Type, p.tok.Lex)
	}
	return p.errorf("expected %s, got %v", want, p.tok.Type)
}

func (p *Parser) fail(err *diag.ParseError) { p.errs = append(p.errs, err) }

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, *diag.ParseError) {
	if p.tok.Type != tt {
		return lexer.Token{}, p.unexpected(tt.String())
	}
	t := p.tok
	p.next()
	return t, nil
}

// syncDecl skips past the next ';' or balanced '}' at top level.
func (p *Parser) syncDecl() {
	depth := 0
	for p.tok.Type != lexer.EOF {
		switch p.tok.Type {
		case lexer.SEMI:
			if depth == 0 {
				p.next()
				return
			}
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
			if depth <= 0 {
				p.next()
				return
			}
		}
		p.next()
	}
}

// syncStmt skips past the next ';', stopping before a '}' that closes the
// enclosing block.
func (p *Parser) syncStmt() {
	depth := 0
	for p.tok.Type != lexer.EOF {
		switch p.tok.Type {
		case lexer.SEMI:
			if depth == 0 {
				p.next()
				return
			}
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		}
		p.next()
	}
}

func typeKeyword(tt lexer.TokenType) (types.Type, bool) {
	switch tt {
	case lexer.KW_INT:
		return types.IntT(), true
	case lexer.KW_CHAR:
		return types.CharT(), true
	case lexer.KW_FLOAT:
		return types.FloatT(), true
	case lexer.KW_VOID:
		return types.VoidT(), true
	}
	return types.Type{}, false
}

// parseDecl reads one top-level element. A declarator list yields one
// declaration per name.
//
//	decl       = type declarator { "," declarator } ";"
//	           | type ident "(" params ")" block
//	declarator = ident [ "[" expr "]" ] | ident "(" params ")"
func (p *Parser) parseDecl() ([]ast.Decl, *diag.ParseError) {
	typ, ok := typeKeyword(p.tok.Type)
	if !ok {
		return nil, p.unexpected("type")
	}
	at := p.tok.Off
	p.next()

	var decls []ast.Decl
	for {
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if len(decls) > 0 {
			at = name.Off
		}
		switch p.tok.Type {
		case lexer.LPAREN:
			p.next()
			params, err := p.parseParams()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			proto := &ast.Proto{At: ast.Pos(at), Ret: typ, Name: name.Lex, Params: params}
			if p.tok.Type == lexer.LBRACE && len(decls) == 0 {
				body, err := p.parseBlock()
				if err != nil {
					return nil, err
				}
				return []ast.Decl{&ast.FuncDecl{Proto: proto, Body: body.Stmts}}, nil
			}
			decls = append(decls, proto)
		default:
			if typ.IsVoid() {
				return nil, &diag.ParseError{Msg: fmt.Sprintf("variable '%s' declared void", name.Lex), Pos: ast.Pos(name.Off)}
			}
			vt, size, err := p.parseArraySuffix(typ)
			if err != nil {
				return nil, err
			}
			decls = append(decls, &ast.VarDecl{At: ast.Pos(at), Type: vt, Name: name.Lex, Size: size})
		}
		if p.tok.Type != lexer.COMMA {
			break
		}
		p.next()
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return decls, nil
}

func (p *Parser) parseArraySuffix(typ types.Type) (types.Type, ast.Expr, *diag.ParseError) {
	if p.tok.Type != lexer.LBRACK {
		return typ, nil, nil
	}
	p.next()
	size, err := p.parseExpr()
	if err != nil {
		return typ, nil, err
	}
	if _, err := p.expect(lexer.RBRACK); err != nil {
		return typ, nil, err
	}
	return types.ReferenceTo(typ), size, nil
}

//	params = [ "void" | param { "," param } ]
//	param  = type ident [ "[" "]" ]
func (p *Parser) parseParams() ([]ast.Param, *diag.ParseError) {
	var params []ast.Param
	if p.tok.Type == lexer.RPAREN {
		return params, nil
	}
	if p.tok.Type == lexer.KW_VOID && p.lx.Peek().Type == lexer.RPAREN {
		p.next()
		return params, nil
	}
	for {
		typ, ok := typeKeyword(p.tok.Type)
		if !ok || typ.IsVoid() {
			return nil, p.unexpected("parameter type")
		}
		at := p.tok.Off
		p.next()
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if p.tok.Type == lexer.LBRACK {
			p.next()
			if _, err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			typ = types.ReferenceTo(typ)
		}
		params = append(params, ast.Param{At: ast.Pos(at), Type: typ, Name: name.Lex})
		if p.tok.Type != lexer.COMMA {
			return params, nil
		}
		p.next()
	}
}
