// Package source maps byte offsets to lines and columns.
package source

import "strings"

// LineMap holds the length of every source line, newline included.
type LineMap struct {
	lines []string
	lens  []int
}

func NewLineMap(src string) *LineMap {
	lines := strings.Split(src, "\n")
	lens := make([]int, len(lines))
	for i, line := range lines {
		lens[i] = len(line) + 1
	}
	return &LineMap{lines: lines, lens: lens}
}

// Line returns the 1-based line holding off.
func (m *LineMap) Line(off int) (int, bool) {
	line, _, ok := m.Position(off)
	return line, ok
}

// Position returns the 1-based line and column of off.
func (m *LineMap) Position(off int) (line, col int, ok bool) {
	if off < 0 {
		return 0, 0, false
	}
	count := 0
	for i, n := range m.lens {
		if off < count+n {
			return i + 1, off - count + 1, true
		}
		count += n
	}
	return 0, 0, false
}

// Text returns the text of the 1-based line, without its newline.
func (m *LineMap) Text(line int) string {
	if line < 1 || line > len(m.lines) {
		return ""
	}
	return m.lines[line-1]
}

func (m *LineMap) Lines() int { return len(m.lines) }
