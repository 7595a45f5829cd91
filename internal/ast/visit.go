package ast

import "fmt"

// StmtVisitor has one method per statement kind. Adding a statement kind
// means adding a method here, which breaks every visitor until it handles it.
type StmtVisitor[R any] interface {
	VisitDecl(*DeclStmt) (R, error)
	VisitAssign(*AssignStmt) (R, error)
	VisitReturn(*ReturnStmt) (R, error)
	VisitBlock(*BlockStmt) (R, error)
	VisitIf(*IfStmt) (R, error)
	VisitWhile(*WhileStmt) (R, error)
	VisitCall(*CallStmt) (R, error)
	VisitPrint(*PrintStmt) (R, error)
	VisitBadStmt(*BadStmt) (R, error)
}

// ExprVisitor has one method per expression kind.
type ExprVisitor[R any] interface {
	VisitIntLit(*IntLit) (R, error)
	VisitFloatLit(*FloatLit) (R, error)
	VisitStringLit(*StringLit) (R, error)
	VisitCharLit(*CharLit) (R, error)
	VisitIdent(*Ident) (R, error)
	VisitUnary(*UnaryExpr) (R, error)
	VisitBinary(*BinaryExpr) (R, error)
	VisitCallExpr(*CallExpr) (R, error)
	VisitIndex(*IndexExpr) (R, error)
	VisitBadExpr(*BadExpr) (R, error)
}

// UnknownNodeError is returned when a node does not belong to this package's
// closed set of kinds, which only happens for nil nodes.
type UnknownNodeError struct{ Node Node }

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unexpected node %T", e.Node)
}

func VisitStmt[R any](v StmtVisitor[R], s Stmt) (R, error) {
	switch s := s.(type) {
	case *DeclStmt:
		return v.VisitDecl(s)
	case *AssignStmt:
		return v.VisitAssign(s)
	case *ReturnStmt:
		return v.VisitReturn(s)
	case *BlockStmt:
		return v.VisitBlock(s)
	case *IfStmt:
		return v.VisitIf(s)
	case *WhileStmt:
		return v.VisitWhile(s)
	case *CallStmt:
		return v.VisitCall(s)
	case *PrintStmt:
		return v.VisitPrint(s)
	case *BadStmt:
		return v.VisitBadStmt(s)
	}
	var zero R
	return zero, &UnknownNodeError{Node: s}
}

func VisitExpr[R any](v ExprVisitor[R], e Expr) (R, error) {
	switch e := e.(type) {
	case *IntLit:
		return v.VisitIntLit(e)
	case *FloatLit:
		return v.VisitFloatLit(e)
	case *StringLit:
		return v.VisitStringLit(e)
	case *CharLit:
		return v.VisitCharLit(e)
	case *Ident:
		return v.VisitIdent(e)
	case *UnaryExpr:
		return v.VisitUnary(e)
	case *BinaryExpr:
		return v.VisitBinary(e)
	case *CallExpr:
		return v.VisitCallExpr(e)
	case *IndexExpr:
		return v.VisitIndex(e)
	case *BadExpr:
		return v.VisitBadExpr(e)
	}
	var zero R
	return zero, &UnknownNodeError{Node: e}
}

// Located reports whether the debugger can map s to a source line.
func Located(s Stmt) bool { return s != nil && s.Pos().IsValid() }
