// Package eval executes a checked program by walking its syntax tree.
package eval

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/env"
	"github.com/mfaerevaag/semic/internal/types"
	"github.com/mfaerevaag/semic/internal/value"
)

// Hook is told about every statement that has a source location, before it
// runs. A non-nil error aborts the run and is returned unchanged.
type Hook interface {
	BeforeStmt(s ast.Stmt, e *env.Env) error
}

type Option func(*Interpreter)

func WithHook(h Hook) Option { return func(i *Interpreter) { i.hook = h } }

// WithOutput sets where print writes. The default discards output.
func WithOutput(w io.Writer) Option { return func(i *Interpreter) { i.out = w } }

func WithLogger(l *slog.Logger) Option { return func(i *Interpreter) { i.log = l } }

type Interpreter struct {
	env  *env.Env
	hook Hook
	out  io.Writer
	log  *slog.Logger
}

func New(e *env.Env, opts ...Option) *Interpreter {
	i := &Interpreter{
		env: e,
		out: io.Discard,
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

func (i *Interpreter) Env() *env.Env { return i.env }

// RunMain calls main without arguments and returns its result, which is nil
// for a void main or one that falls off its end. Main's frame stays on the
// local table so it can still be inspected.
func (i *Interpreter) RunMain() (value.Value, error) {
	fn, ok := i.env.Funcs.Func("main")
	if !ok {
		return nil, diag.Runtimef(ast.NoPos, "Function 'main' missing")
	}
	return i.run(fn, nil, fn.Pos(), true)
}

// control is the outcome of a statement: fall through, or return with an
// optional value.
type control struct {
	ret bool
	val value.Value
}

var fallthru = control{}

func (i *Interpreter) call(fn *ast.FuncDecl, args []value.Value, pos ast.Pos) (value.Value, error) {
	return i.run(fn, args, pos, false)
}

func (i *Interpreter) run(fn *ast.FuncDecl, args []value.Value, pos ast.Pos, keep bool) (value.Value, error) {
	proto := fn.Proto
	if len(args) != len(proto.Params) {
		return nil, diag.Runtimef(pos, "Function '%s' expects %d arguments, got %d",
			proto.Name, len(proto.Params), len(args))
	}
	i.log.Debug("call", "func", proto.Name, "args", len(args))

	locals := i.env.Locals
	locals.PushCallFrame()
	for k, p := range proto.Params {
		v, err := cast(args[k], p.Type, pos)
		if err != nil {
			return nil, err
		}
		locals.Insert(p.Name, p.Type, env.NoSize, v, p.At)
	}

	ctl, err := i.stmts(fn.Body)
	if err != nil {
		return nil, err
	}
	if !keep {
		if err := locals.PopFrame(); err != nil {
			return nil, err
		}
	}

	if ctl.val == nil {
		return nil, nil
	}
	if proto.Ret.IsVoid() {
		return nil, diag.Runtimef(pos, "Function '%s' is void but returned %s", proto.Name, ctl.val)
	}
	return cast(ctl.val, proto.Ret, pos)
}

// exec runs one statement, notifying the hook first.
func (i *Interpreter) exec(s ast.Stmt) (control, error) {
	if err := i.before(s); err != nil {
		return fallthru, err
	}
	ctl, err := ast.VisitStmt[control](i, s)
	return ctl, unknown(err)
}

func (i *Interpreter) before(s ast.Stmt) error {
	if i.hook == nil || !ast.Located(s) {
		return nil
	}
	return i.hook.BeforeStmt(s, i.env)
}

// stmts runs ss in order and stops at the first return.
func (i *Interpreter) stmts(ss []ast.Stmt) (control, error) {
	for _, s := range ss {
		ctl, err := i.exec(s)
		if err != nil || ctl.ret {
			return ctl, err
		}
	}
	return fallthru, nil
}

func (i *Interpreter) eval(e ast.Expr) (value.Value, error) {
	v, err := ast.VisitExpr[value.Value](i, e)
	return v, unknown(err)
}

func unknown(err error) error {
	var nerr *ast.UnknownNodeError
	if errors.As(err, &nerr) {
		return diag.Unknownf("%v", nerr)
	}
	return err
}

func cast(v value.Value, to types.Type, pos ast.Pos) (value.Value, error) {
	out, err := value.Cast(v, to)
	if err != nil {
		return nil, &diag.RuntimeError{Msg: err.Error(), Pos: pos}
	}
	return out, nil
}
