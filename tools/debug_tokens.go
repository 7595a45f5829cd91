//go:build ignore

// debug_tokens prints the token stream of a source file, one per line.
package main

import (
	"fmt"
	"os"

	"github.com/mfaerevaag/semic/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: debug_tokens <file>")
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, t := range lexer.New(string(data)).All() {
		fmt.Printf("%-8v %q at %d:%d (+%d)\n", t.Type, t.Lex, t.Line, t.Col, t.Off)
	}
}
