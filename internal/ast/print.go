package ast

import (
	"strconv"
	"strings"

	"github.com/mfaerevaag/semic/internal/types"
)

// Sprint renders a node in a compact C-like form for debug logging.
func Sprint(n Node) string {
	var p printer
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case Stmt:
		return p.stmt(n)
	case Expr:
		return p.expr(n)
	case Decl:
		return p.decl(n)
	}
	return "?"
}

// SprintProgram renders every top-level element on its own line.
func SprintProgram(prog *Program) string {
	var p printer
	lines := make([]string, 0, len(prog.Decls))
	for _, d := range prog.Decls {
		lines = append(lines, p.decl(d))
	}
	return strings.Join(lines, "\n")
}

type printer struct{}

func (p printer) decl(d Decl) string {
	switch d := d.(type) {
	case *VarDecl:
		return declared(d.Type, d.Size) + " " + d.Name + p.size(d.Size) + ";"
	case *Proto:
		return p.proto(d) + ";"
	case *FuncDecl:
		return p.proto(d.Proto) + " " + p.stmt(&BlockStmt{Stmts: d.Body})
	case *BadDecl:
		return "error"
	}
	return "?"
}

func (p printer) proto(d *Proto) string {
	params := make([]string, 0, len(d.Params))
	for _, prm := range d.Params {
		params = append(params, prm.Type.String()+" "+prm.Name)
	}
	return d.Ret.String() + " " + d.Name + "(" + strings.Join(params, ", ") + ")"
}

// declared prints arrays C style, with the element type before the name.
func declared(t types.Type, size Expr) string {
	if size != nil {
		return t.ElemType().String()
	}
	return t.String()
}

func (p printer) size(e Expr) string {
	if e == nil {
		return ""
	}
	return "[" + p.expr(e) + "]"
}

func (p printer) stmt(s Stmt) string {
	out, err := VisitStmt[string](p, s)
	if err != nil {
		return "?"
	}
	return out
}

func (p printer) expr(e Expr) string {
	out, err := VisitExpr[string](p, e)
	if err != nil {
		return "?"
	}
	return out
}

func (p printer) VisitDecl(s *DeclStmt) (string, error) {
	return declared(s.Type, s.Size) + " " + s.Name + p.size(s.Size) + ";", nil
}

func (p printer) VisitAssign(s *AssignStmt) (string, error) {
	return s.Name + p.size(s.Index) + " = " + p.expr(s.Value) + ";", nil
}

func (p printer) VisitReturn(s *ReturnStmt) (string, error) {
	if s.Value == nil {
		return "return;", nil
	}
	return "return " + p.expr(s.Value) + ";", nil
}

func (p printer) VisitBlock(s *BlockStmt) (string, error) {
	if len(s.Stmts) == 0 {
		return "{}", nil
	}
	parts := make([]string, 0, len(s.Stmts))
	for _, c := range s.Stmts {
		parts = append(parts, p.stmt(c))
	}
	return "{ " + strings.Join(parts, " ") + " }", nil
}

func (p printer) VisitIf(s *IfStmt) (string, error) {
	out := "if (" + p.expr(s.Cond) + ") " + p.stmt(s.Then)
	if s.Else != nil {
		out += " else " + p.stmt(s.Else)
	}
	return out, nil
}

func (p printer) VisitWhile(s *WhileStmt) (string, error) {
	return "while (" + p.expr(s.Cond) + ") " + p.stmt(s.Body), nil
}

func (p printer) VisitCall(s *CallStmt) (string, error) {
	return p.expr(s.Call) + ";", nil
}

func (p printer) VisitPrint(s *PrintStmt) (string, error) {
	return "print(" + p.expr(s.Value) + ");", nil
}

func (printer) VisitBadStmt(*BadStmt) (string, error) { return "error;", nil }

func (printer) VisitIntLit(e *IntLit) (string, error) {
	return strconv.FormatInt(int64(e.Value), 10), nil
}

func (printer) VisitFloatLit(e *FloatLit) (string, error) {
	s := strconv.FormatFloat(float64(e.Value), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func (printer) VisitStringLit(e *StringLit) (string, error) {
	return strconv.Quote(e.Value), nil
}

func (printer) VisitCharLit(e *CharLit) (string, error) {
	return strconv.QuoteRune(e.Value), nil
}

func (printer) VisitIdent(e *Ident) (string, error) { return e.Name, nil }

func (p printer) VisitUnary(e *UnaryExpr) (string, error) {
	return "(" + e.Op.String() + p.expr(e.X) + ")", nil
}

func (p printer) VisitBinary(e *BinaryExpr) (string, error) {
	return "(" + p.expr(e.Left) + " " + e.Op.String() + " " + p.expr(e.Right) + ")", nil
}

func (p printer) VisitCallExpr(e *CallExpr) (string, error) {
	args := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, p.expr(a))
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")", nil
}

func (p printer) VisitIndex(e *IndexExpr) (string, error) {
	return e.Name + "[" + p.expr(e.Index) + "]", nil
}

func (printer) VisitBadExpr(*BadExpr) (string, error) { return "error", nil }
