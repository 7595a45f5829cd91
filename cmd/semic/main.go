// Command semic checks and runs a program, optionally stepping through it
// in the debug console.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mfaerevaag/semic/internal/config"
	"github.com/mfaerevaag/semic/internal/debug"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/runner"
)

const usage = "usage: semic [-i] [-v] [-frontend native|tree-sitter] [-config file] [-history file] [-no-color] [-dump-config] <file.c>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("semic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	var (
		interactive = fs.Bool("i", false, "step through the program in the debug console")
		verbose     = fs.Bool("v", false, "log the AST and the final value")
		frontend    = fs.String("frontend", string(config.Native), "parser front end: native or tree-sitter")
		cfgPath     = fs.String("config", "", "config file (default "+config.DefaultFile+" if present)")
		history     = fs.String("history", "", "console history file")
		noColor     = fs.Bool("no-color", false, "disable colored diagnostics")
		dump        = fs.Bool("dump-config", false, "print the effective config and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Find(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Interactive = *interactive
		case "v":
			cfg.Verbose = *verbose
		case "frontend":
			cfg.Frontend = config.Frontend(*frontend)
		case "history":
			cfg.History = *history
		case "no-color":
			cfg.Color = !*noColor
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *dump {
		b, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		stdout.Write(b)
		return 0
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "semic: %v\n", err)
		return 1
	}

	opts := runner.Options{
		Interactive: cfg.Interactive,
		Frontend:    cfg.Frontend,
		Out:         stdout,
		Log:         log,
	}
	if cfg.Interactive {
		term := debug.OpenTerminal(cfg.History, log)
		defer func() {
			if err := term.Close(); err != nil {
				log.Warn("closing terminal", "err", err)
			}
		}()
		opts.Input = term
	}

	v, err := runner.Run(path, string(src), opts)
	switch {
	case errors.Is(err, debug.ErrQuit):
		return 0
	case err != nil:
		diag.NewRenderer(stderr, path, string(src)).WithColor(cfg.Color).Render(err)
		return 1
	}
	if cfg.Verbose {
		if v == nil {
			fmt.Fprintln(stderr, "result: void")
		} else {
			fmt.Fprintln(stderr, "result:", v)
		}
	}
	return 0
}
