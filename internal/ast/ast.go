package ast

import "github.com/mfaerevaag/semic/internal/types"

// Pos is a byte offset into the source text.
type Pos int

// NoPos marks nodes without a source location.
const NoPos Pos = -1

func (p Pos) IsValid() bool { return p >= 0 }

type Node interface{ Pos() Pos }

type Program struct {
	Decls []Decl
}

type Decl interface {
	Node
	isDecl()
}

// VarDecl is a global variable. Size is nil unless the variable is an array.
type VarDecl struct {
	At   Pos
	Type types.Type
	Name string
	Size Expr
}

func (*VarDecl) isDecl()    {}
func (d *VarDecl) Pos() Pos { return d.At }

type Param struct {
	At   Pos
	Type types.Type
	Name string
}

// Proto is a function signature. Ret is types.Void for void functions.
type Proto struct {
	At     Pos
	Ret    types.Type
	Name   string
	Params []Param
}

func (*Proto) isDecl()    {}
func (p *Proto) Pos() Pos { return p.At }

type FuncDecl struct {
	Proto *Proto
	Body  []Stmt
}

func (*FuncDecl) isDecl()    {}
func (f *FuncDecl) Pos() Pos { return f.Proto.At }

// BadDecl stands in for a top-level element the parser could not read.
type BadDecl struct{ At Pos }

func (*BadDecl) isDecl()    {}
func (d *BadDecl) Pos() Pos { return d.At }

type Stmt interface {
	Node
	isStmt()
}

type DeclStmt struct {
	At   Pos
	Type types.Type
	Name string
	Size Expr
}

func (*DeclStmt) isStmt()    {}
func (s *DeclStmt) Pos() Pos { return s.At }

// AssignStmt stores Value into Name, or into Name[Index] when Index is set.
type AssignStmt struct {
	At    Pos
	Name  string
	Index Expr
	Value Expr
}

func (*AssignStmt) isStmt()    {}
func (s *AssignStmt) Pos() Pos { return s.At }

type ReturnStmt struct {
	At    Pos
	Value Expr // nil for a bare return
}

func (*ReturnStmt) isStmt()    {}
func (s *ReturnStmt) Pos() Pos { return s.At }

type BlockStmt struct{ Stmts []Stmt }

func (*BlockStmt) isStmt()  {}
func (*BlockStmt) Pos() Pos { return NoPos }

type IfStmt struct {
	At   Pos
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

func (*IfStmt) isStmt()    {}
func (s *IfStmt) Pos() Pos { return s.At }

type WhileStmt struct {
	At   Pos
	Cond Expr
	Body Stmt
}

func (*WhileStmt) isStmt()    {}
func (s *WhileStmt) Pos() Pos { return s.At }

type CallStmt struct {
	At   Pos
	Call *CallExpr
}

func (*CallStmt) isStmt()    {}
func (s *CallStmt) Pos() Pos { return s.At }

type PrintStmt struct {
	At    Pos
	Value Expr
}

func (*PrintStmt) isStmt()    {}
func (s *PrintStmt) Pos() Pos { return s.At }

type BadStmt struct{}

func (*BadStmt) isStmt()  {}
func (*BadStmt) Pos() Pos { return NoPos }

type Expr interface {
	Node
	isExpr()
}

type IntLit struct {
	At    Pos
	Value int32
}

func (*IntLit) isExpr()    {}
func (e *IntLit) Pos() Pos { return e.At }

type FloatLit struct {
	At    Pos
	Value float32
}

func (*FloatLit) isExpr()    {}
func (e *FloatLit) Pos() Pos { return e.At }

type StringLit struct {
	At    Pos
	Value string
}

func (*StringLit) isExpr()    {}
func (e *StringLit) Pos() Pos { return e.At }

type CharLit struct {
	At    Pos
	Value rune
}

func (*CharLit) isExpr()    {}
func (e *CharLit) Pos() Pos { return e.At }

type Ident struct {
	At   Pos
	Name string
}

func (*Ident) isExpr()    {}
func (e *Ident) Pos() Pos { return e.At }

type UnaryExpr struct {
	At Pos
	Op Op
	X  Expr
}

func (*UnaryExpr) isExpr()    {}
func (e *UnaryExpr) Pos() Pos { return e.At }

type BinaryExpr struct {
	At          Pos
	Op          Op
	Left, Right Expr
}

func (*BinaryExpr) isExpr()    {}
func (e *BinaryExpr) Pos() Pos { return e.At }

type CallExpr struct {
	At   Pos
	Name string
	Args []Expr
}

func (*CallExpr) isExpr()    {}
func (e *CallExpr) Pos() Pos { return e.At }

type IndexExpr struct {
	At    Pos
	Name  string
	Index Expr
}

func (*IndexExpr) isExpr()    {}
func (e *IndexExpr) Pos() Pos { return e.At }

type BadExpr struct{ At Pos }

func (*BadExpr) isExpr()    {}
func (e *BadExpr) Pos() Pos { return e.At }

// Op is the single operator set shared by unary and binary expressions.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpLAnd
	OpLOr
	OpNeg
	OpNot
)

var opNames = [...]string{
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpMod:  "%",
	OpEq:   "==",
	OpNe:   "!=",
	OpLt:   "<",
	OpLe:   "<=",
	OpGt:   ">",
	OpGe:   ">=",
	OpLAnd: "&&",
	OpLOr:  "||",
	OpNeg:  "-",
	OpNot:  "!",
}

func (o Op) String() string {
	if int(o) >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return "?"
}

func (o Op) IsArith() bool { return o >= OpAdd && o <= OpMod }

func (o Op) IsRelational() bool { return o >= OpEq && o <= OpGe }

func (o Op) IsLogical() bool { return o == OpLAnd || o == OpLOr }
