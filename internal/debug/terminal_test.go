package debug

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

type history struct {
	lines []string
	err   error
}

func (h *history) ReadHistory(r io.Reader) (int, error) {
	if h.err != nil {
		return 0, h.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	h.lines = strings.Fields(string(b))
	return len(h.lines), nil
}

func logTo(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestLoadHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	be.Err(t, os.WriteFile(path, []byte("n\nq\n"), 0o644), nil)

	var logs bytes.Buffer
	h := &history{}
	loadHistory(h, path, logTo(&logs))
	be.Equal(t, h.lines, []string{"n", "q"})
	be.Equal(t, logs.String(), "")
}

func TestLoadHistoryMissingFile(t *testing.T) {
	var logs bytes.Buffer
	h := &history{}
	loadHistory(h, filepath.Join(t.TempDir(), "none"), logTo(&logs))
	loadHistory(h, "", logTo(&logs))
	be.Equal(t, logs.String(), "")
}

func TestLoadHistoryCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	be.Err(t, os.WriteFile(path, []byte("x\n"), 0o644), nil)

	var logs bytes.Buffer
	loadHistory(&history{err: errors.New("line too long")}, path, logTo(&logs))
	be.True(t, strings.Contains(logs.String(), "level=WARN"))
	be.True(t, strings.Contains(logs.String(), "line too long"))
}

func TestLoadHistoryUnreadable(t *testing.T) {
	var logs bytes.Buffer
	// a directory opens but cannot be read as a file
	loadHistory(&history{}, t.TempDir(), logTo(&logs))
	be.True(t, strings.Contains(logs.String(), "history not loaded"))
}
