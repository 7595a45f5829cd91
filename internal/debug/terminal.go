package debug

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Terminal reads commands with line editing and keeps a history file.
type Terminal struct {
	state   *liner.State
	history string
}

// OpenTerminal takes over the terminal. An empty history path disables the
// history file; one that cannot be read is logged and otherwise ignored.
// Close restores the terminal.
func OpenTerminal(history string, log *slog.Logger) *Terminal {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	t := &Terminal{state: liner.NewLiner(), history: history}
	t.state.SetCtrlCAborts(true)
	loadHistory(t.state, history, log)
	return t
}

type historyReader interface {
	ReadHistory(r io.Reader) (int, error)
}

func loadHistory(h historyReader, path string, log *slog.Logger) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Warn("history not loaded", "path", path, "err", err)
		return
	}
	defer f.Close()
	if _, err := h.ReadHistory(f); err != nil {
		log.Warn("history not loaded", "path", path, "err", err)
	}
}

func (t *Terminal) Prompt(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err == nil && strings.TrimSpace(line) != "" {
		t.state.AppendHistory(line)
	}
	return line, err
}

func (t *Terminal) Close() error {
	var herr error
	if t.history != "" {
		f, err := os.Create(t.history)
		if err == nil {
			_, err = t.state.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			herr = fmt.Errorf("debug: write history: %w", err)
		}
	}
	if err := t.state.Close(); err != nil {
		return err
	}
	return herr
}
