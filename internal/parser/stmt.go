package parser

import (
	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/lexer"
)

func (p *Parser) parseBlock() (*ast.BlockStmt, *diag.ParseError) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{}
	for p.tok.Type != lexer.RBRACE && p.tok.Type != lexer.EOF {
		block.Stmts = append(block.Stmts, p.parseBlockItem()...)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseBlockItem reads a declaration list or a statement. Errors are
// recorded and replaced by a BadStmt.
func (p *Parser) parseBlockItem() []ast.Stmt {
	var (
		ss  []ast.Stmt
		err *diag.ParseError
	)
	if p.tok.IsType() {
		ss, err = p.parseDeclStmt()
	} else {
		var s ast.Stmt
		s, err = p.parseStmt()
		if s != nil {
			ss = []ast.Stmt{s}
		}
	}
	if err != nil {
		p.fail(err)
		p.syncStmt()
		return []ast.Stmt{&ast.BadStmt{}}
	}
	return ss
}

func (p *Parser) parseDeclStmt() ([]ast.Stmt, *diag.ParseError) {
	typ, _ := typeKeyword(p.tok.Type)
	if typ.IsVoid() {
		return nil, p.errorf("local variables cannot be void")
	}
	at := p.tok.Off
	p.next()
	var ss []ast.Stmt
	for {
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if len(ss) > 0 {
			at = name.Off
		}
		vt, size, err := p.parseArraySuffix(typ)
		if err != nil {
			return nil, err
		}
		ss = append(ss, &ast.DeclStmt{At: ast.Pos(at), Type: vt, Name: name.Lex, Size: size})
		if p.tok.Type != lexer.COMMA {
			break
		}
		p.next()
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return ss, nil
}

// parseStmt returns a nil statement for ';'.
func (p *Parser) parseStmt() (ast.Stmt, *diag.ParseError) {
	at := ast.Pos(p.tok.Off)
	switch p.tok.Type {
	case lexer.SEMI:
		p.next()
		return nil, nil
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.KW_RETURN:
		p.next()
		ret := &ast.ReturnStmt{At: at}
		if p.tok.Type != lexer.SEMI {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			ret.Value = e
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return ret, nil
	case lexer.KW_IF:
		p.next()
		cond, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		then, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		s := &ast.IfStmt{At: at, Cond: cond, Then: then}
		if p.tok.Type == lexer.KW_ELSE {
			p.next()
			if s.Else, err = p.parseBody(); err != nil {
				return nil, err
			}
		}
		return s, nil
	case lexer.KW_WHILE:
		p.next()
		cond, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{At: at, Cond: cond, Body: body}, nil
	case lexer.KW_PRINT:
		p.next()
		e, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.PrintStmt{At: at, Value: e}, nil
	case lexer.IDENT:
		return p.parseSimpleStmt()
	}
	if p.tok.IsType() {
		return nil, p.errorf("declaration not allowed here")
	}
	return nil, p.unexpected("statement")
}

// parseBody reads the statement of an if, else or while. An empty
// statement becomes an empty block.
func (p *Parser) parseBody() (ast.Stmt, *diag.ParseError) {
	s, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &ast.BlockStmt{}, nil
	}
	return s, nil
}

func (p *Parser) parseCond() (ast.Expr, *diag.ParseError) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

//	simple = ident "=" expr ";" | ident "[" expr "]" "=" expr ";" | call ";"
func (p *Parser) parseSimpleStmt() (ast.Stmt, *diag.ParseError) {
	id := p.tok
	at := ast.Pos(id.Off)
	p.next()
	var s ast.Stmt
	switch p.tok.Type {
	case lexer.LPAREN:
		call, err := p.parseCall(id)
		if err != nil {
			return nil, err
		}
		s = &ast.CallStmt{At: at, Call: call}
	case lexer.ASSIGN, lexer.LBRACK:
		var index ast.Expr
		if p.tok.Type == lexer.LBRACK {
			p.next()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			index = e
		}
		if _, err := p.expect(lexer.ASSIGN); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		s = &ast.AssignStmt{At: at, Name: id.Lex, Index: index, Value: v}
	default:
		return nil, p.unexpected("'=', '[' or '('")
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return s, nil
}
