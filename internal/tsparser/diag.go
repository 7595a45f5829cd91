package tsparser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mfaerevaag/semic/internal/diag"
)

// syntaxError reports the first missing node, else the first error node.
func syntaxError(root *sitter.Node) *diag.ParseError {
	if n := first(root, (*sitter.Node).IsMissing); n != nil {
		return errorAt(n, "expected %s", expected(n.Kind()))
	}
	if n := first(root, (*sitter.Node).IsError); n != nil {
		return errorAt(n, "syntax error")
	}
	return errorAt(root, "syntax error")
}

func first(root *sitter.Node, match func(*sitter.Node) bool) *sitter.Node {
	var best *sitter.Node
	walk(root, func(n *sitter.Node) {
		if match(n) && (best == nil || n.StartByte() < best.StartByte()) {
			best = n
		}
	})
	return best
}

func walk(n *sitter.Node, visit func(*sitter.Node)) {
	visit(n)
	for i := uint(0); i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil {
			walk(c, visit)
		}
	}
}

func expected(kind string) string {
	for _, r := range kind {
		if r == '_' || r >= 'a' && r <= 'z' {
			return kind
		}
	}
	return "'" + kind + "'"
}
