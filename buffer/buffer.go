package buffer

import (
	"sort"
	"strings"
)

// Buffer holds document text split into lines with precomputed offsets.
type Buffer struct {
	lines   [][]rune
	starts  []int
	version uint64
}

func New(text string) *Buffer {
	b := &Buffer{}
	b.reset(text)
	return b
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every text change.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Len returns the document length in runes, line breaks included.
func (b *Buffer) Len() int {
	last := len(b.lines) - 1
	return b.starts[last] + len(b.lines[last])
}

// Line returns the 1-based line n, clamped to the document.
func (b *Buffer) Line(n int) Line {
	row := clampInt(n-1, 0, len(b.lines)-1)
	return b.lineAtRow(row)
}

// LineAt returns the line containing offset pos, clamped to the document.
//
// An offset pointing at a line break belongs to the line it ends.
func (b *Buffer) LineAt(pos int) Line {
	pos = clampInt(pos, 0, b.Len())
	row := sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > pos }) - 1
	return b.lineAtRow(clampInt(row, 0, len(b.lines)-1))
}

// SetText replaces the whole document. It reports whether the text changed.
func (b *Buffer) SetText(text string) bool {
	if text == b.Text() {
		return false
	}
	b.reset(text)
	b.version++
	return true
}

// Replace substitutes the offsets [from, to) with text.
func (b *Buffer) Replace(from, to int, text string) bool {
	n := b.Len()
	from = clampInt(from, 0, n)
	to = clampInt(to, 0, n)
	if to < from {
		from, to = to, from
	}
	if from == to && text == "" {
		return false
	}

	all := []rune(b.Text())
	var sb strings.Builder
	sb.WriteString(string(all[:from]))
	sb.WriteString(text)
	sb.WriteString(string(all[to:]))
	return b.SetText(sb.String())
}

func (b *Buffer) lineAtRow(row int) Line {
	from := b.starts[row]
	return Line{
		Number: row + 1,
		From:   from,
		To:     from + len(b.lines[row]),
		Text:   string(b.lines[row]),
	}
}

func (b *Buffer) reset(text string) {
	b.lines = splitLines(text)
	b.starts = make([]int, len(b.lines))
	off := 0
	for i, line := range b.lines {
		b.starts[i] = off
		off += len(line) + 1
	}
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
