// Package debug is the interactive line-stepping console. It pauses before
// statements on new source lines and answers inspection commands.
package debug

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/env"
	"github.com/mfaerevaag/semic/internal/source"
)

// ErrQuit is returned from BeforeStmt when the user quits mid-run.
var ErrQuit = errors.New("debug: quit")

const Prompt = ">> "

// LineReader reads one command line. io.EOF ends the session.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type Console struct {
	in    LineReader
	out   io.Writer
	lines *source.LineMap
	log   *slog.Logger

	skip     int
	lastLine int
}

func New(src string, in LineReader, out io.Writer, log *slog.Logger) *Console {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Console{in: in, out: out, lines: source.NewLineMap(src), log: log}
}

// BeforeStmt pauses on the first statement of a new line unless a pending
// "next n" says to keep going.
func (c *Console) BeforeStmt(s ast.Stmt, e *env.Env) error {
	line, ok := c.lines.Line(int(s.Pos()))
	c.log.Debug("REPL", "line", line, "offset", s.Pos(), "skip", c.skip, "stmt", ast.Sprint(s))
	if !ok || line == c.lastLine {
		return nil
	}
	// every line advanced counts, blank ones included
	if line > c.lastLine {
		c.skip = max(0, c.skip-(line-c.lastLine))
	}
	c.lastLine = line
	if c.skip > 0 {
		return nil
	}
	return c.read(e, false)
}

// Finish runs the command loop once more after the program returned.
func (c *Console) Finish(e *env.Env) error {
	c.say("End of program")
	return c.read(e, true)
}

func (c *Console) say(format string, args ...any) {
	fmt.Fprintf(c.out, " "+format+"\n", args...)
}

func (c *Console) read(e *env.Env, finished bool) error {
	for {
		input, err := c.in.Prompt(Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return c.quit(finished)
		}
		if err != nil {
			return diag.Unknownf("reading command: %v", err)
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			c.say("No command given. Try again")
			continue
		}
		cmd, arg := fields[0], ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "next", "n":
			n := 1
			if arg != "" {
				if n, err = strconv.Atoi(arg); err != nil || n < 1 {
					c.say("Incorrect command usage: try 'next [lines]'")
					continue
				}
			}
			c.skip = n - 1
			return nil
		case "print", "p":
			if arg == "" {
				c.say("Invalid typing of the variable name")
				continue
			}
			c.print(e, arg)
		case "trace", "t":
			if arg == "" {
				c.say("Invalid typing of the variable name")
				continue
			}
			c.trace(e, arg)
		case "help", "h":
			c.help()
		case "quit", "q":
			return c.quit(finished)
		default:
			c.say("Unknown command '%s'. Try again", cmd)
		}
	}
}

func (c *Console) quit(finished bool) error {
	c.say("Bye, bye")
	if finished {
		return nil
	}
	return ErrQuit
}

func (c *Console) print(e *env.Env, name string) {
	if v, ok := e.Locals.Value(name); ok {
		c.say("%s", show(v))
		return
	}
	if v, ok := e.Globals.Value(name); ok {
		c.say("%s (global)", show(v))
		return
	}
	if v, ok := e.Locals.ValueInEnclosing(name); ok {
		c.say("%s (invisible)", show(v))
		return
	}
	c.say("Not declared")
}

func (c *Console) trace(e *env.Env, name string) {
	hist, ok := e.Locals.History(name)
	if !ok {
		if hist, ok = e.Globals.History(name); !ok {
			c.say(`N\A`)
			return
		}
	}
	for _, r := range hist {
		if line, ok := c.lines.Line(int(r.Pos)); ok {
			c.say("%s = %s at line %d", name, show(r.Value), line)
		} else {
			c.say("%s = %s", name, show(r.Value))
		}
	}
}

func (c *Console) help() {
	c.say("next|n [lines]  run until the given number of lines later")
	c.say("print|p <name>  show the current value of a variable")
	c.say("trace|t <name>  show every assignment to a variable")
	c.say("quit|q          stop")
}

func show(v fmt.Stringer) string {
	if v == nil {
		return `N\A`
	}
	return v.String()
}
