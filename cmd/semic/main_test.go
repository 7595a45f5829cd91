package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func write(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	be.Err(t, os.WriteFile(path, []byte(src), 0o644), nil)
	return path
}

func exec(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunProgram(t *testing.T) {
	t.Chdir(t.TempDir())
	path := write(t, "ok.c", "int main() { print(1 + 2); return 0; }\n")
	for _, fe := range []string{"native", "tree-sitter"} {
		t.Run(fe, func(t *testing.T) {
			code, out, _ := exec(t, "-frontend", fe, path)
			be.Equal(t, code, 0)
			be.Equal(t, out, "3\n")
		})
	}
}

func TestVerboseEchoesResult(t *testing.T) {
	t.Chdir(t.TempDir())
	path := write(t, "ok.c", "int main() { return 42; }\n")
	code, _, errOut := exec(t, "-v", path)
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(errOut, "result: 42"))
	be.True(t, strings.Contains(errOut, "level=DEBUG"))
}

func TestErrorsExitOne(t *testing.T) {
	t.Chdir(t.TempDir())
	tests := []struct {
		name string
		src  string
		head string
	}{
		{"syntax", "int main( { return 0; }\n", "Syntax error"},
		{"checker", "int x;\nint x;\n", "Checker error"},
		{"runtime", "int main() { return 1 / 0; }\n", "Run-time error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(t, "bad.c", tt.src)
			code, _, errOut := exec(t, "-no-color", path)
			be.Equal(t, code, 1)
			be.True(t, strings.HasPrefix(errOut, tt.head+": "))
		})
	}
}

func TestMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	code, _, errOut := exec(t, "nope.c")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(errOut, "nope.c"))
}

func TestUsage(t *testing.T) {
	t.Chdir(t.TempDir())
	code, _, errOut := exec(t)
	be.Equal(t, code, 2)
	be.True(t, strings.Contains(errOut, "usage: semic"))

	code, _, _ = exec(t, "-bogus", "x.c")
	be.Equal(t, code, 2)

	code, _, errOut = exec(t, "-frontend", "gcc", "x.c")
	be.Equal(t, code, 2)
	be.True(t, strings.Contains(errOut, `unknown frontend "gcc"`))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	be.Err(t, os.WriteFile(".semic.yaml", []byte("frontend: tree-sitter\ncolor: false\n"), 0o644), nil)

	code, out, _ := exec(t, "-dump-config")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(out, "frontend: tree-sitter"))
	be.True(t, strings.Contains(out, "color: false"))

	// explicit flags win over the file
	code, out, _ = exec(t, "-frontend", "native", "-dump-config")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(out, "frontend: native"))
}

func TestBadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	path := write(t, "c.yaml", "colour: true\n")
	code, _, errOut := exec(t, "-config", path, "x.c")
	be.Equal(t, code, 2)
	be.True(t, strings.HasPrefix(errOut, "config: "))
}
