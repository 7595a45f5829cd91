// Package runner ties the front end, checker, evaluator and debug console
// into one run.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/check"
	"github.com/mfaerevaag/semic/internal/config"
	"github.com/mfaerevaag/semic/internal/debug"
	"github.com/mfaerevaag/semic/internal/env"
	"github.com/mfaerevaag/semic/internal/eval"
	"github.com/mfaerevaag/semic/internal/parser"
	"github.com/mfaerevaag/semic/internal/tsparser"
	"github.com/mfaerevaag/semic/internal/value"
)

type Options struct {
	// Interactive attaches the debug console, reading commands from Input.
	Interactive bool
	Input       debug.LineReader
	Frontend    config.Frontend
	// Out receives program and console output. Nil discards it.
	Out io.Writer
	Log *slog.Logger
}

// Run parses, checks and runs src. The result is main's return value, nil
// for a void main. debug.ErrQuit is returned when the user quits mid-run.
func Run(filename, src string, opts Options) (value.Value, error) {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	prog, err := parse(src, opts.Frontend)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed", "file", filename, "frontend", opts.Frontend, "decls", len(prog.Decls))
	log.Debug("ast\n" + ast.SprintProgram(prog))

	funcs, globals, err := check.Check(prog)
	if err != nil {
		return nil, err
	}
	e := env.New(funcs, globals)

	evalOpts := []eval.Option{eval.WithOutput(out), eval.WithLogger(log)}
	var console *debug.Console
	if opts.Interactive {
		if opts.Input == nil {
			return nil, fmt.Errorf("runner: interactive run without input")
		}
		console = debug.New(src, opts.Input, out, log)
		evalOpts = append(evalOpts, eval.WithHook(console))
	}

	v, err := eval.New(e, evalOpts...).RunMain()
	if err != nil {
		return nil, err
	}
	log.Debug("finished", "result", show(v))

	if console != nil {
		if err := console.Finish(e); err != nil {
			return v, err
		}
	}
	return v, nil
}

// RunFile reads path and runs it.
func RunFile(path string, opts Options) (value.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return Run(path, string(src), opts)
}

func parse(src string, fe config.Frontend) (*ast.Program, error) {
	switch fe {
	case config.Native, "":
		return parser.Parse(src)
	case config.TreeSitter:
		return tsparser.Parse(src)
	}
	return nil, fmt.Errorf("runner: unknown frontend %q", fe)
}

func show(v value.Value) string {
	if v == nil {
		return "void"
	}
	return v.String()
}
