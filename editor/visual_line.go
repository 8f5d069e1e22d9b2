package editor

import (
	"strings"

	graphemeutil "github.com/iw2rmb/wrapindent/internal/grapheme"
)

// visualToken is one rendered grapheme of a logical line.
type visualToken struct {
	// Text is the rendered token text. Tabs are expanded to spaces.
	Text string

	StartCell int
	CellWidth int

	// StartCol/EndCol are the rune columns of the token in the raw line.
	StartCol int
	EndCol   int

	isSpace bool
}

type visualLine struct {
	RuneLen int
	Tokens  []visualToken
}

// buildVisualLine expands tabs against tab stops counted from the line start.
// Carriage returns are dropped from the rendering but keep their rune column.
func buildVisualLine(rawLine string, tabWidth int) visualLine {
	clusters := graphemeutil.Split(rawLine)
	vl := visualLine{Tokens: make([]visualToken, 0, len(clusters))}

	cell := 0
	col := 0
	for _, gr := range clusters {
		n := len([]rune(gr))
		if gr == "\r" {
			col += n
			continue
		}

		width := graphemeCellWidth(gr, cell, tabWidth)
		text := gr
		if gr == "\t" {
			text = strings.Repeat(" ", width)
		}
		if width < 1 {
			width = 1
		}
		vl.Tokens = append(vl.Tokens, visualToken{
			Text:      text,
			StartCell: cell,
			CellWidth: width,
			StartCol:  col,
			EndCol:    col + n,
			isSpace:   graphemeutil.IsSpace(gr),
		})
		cell += width
		col += n
	}
	vl.RuneLen = col
	return vl
}

func (vl visualLine) VisualLen() int {
	if len(vl.Tokens) == 0 {
		return 0
	}
	last := vl.Tokens[len(vl.Tokens)-1]
	return last.StartCell + last.CellWidth
}

// text renders tokens [start, end), stopping before maxCells when maxCells >= 0.
func (vl visualLine) text(start, end, maxCells int) string {
	var sb strings.Builder
	used := 0
	for i := clampInt(start, 0, len(vl.Tokens)); i < clampInt(end, 0, len(vl.Tokens)); i++ {
		tok := vl.Tokens[i]
		if maxCells >= 0 && used+tok.CellWidth > maxCells {
			break
		}
		sb.WriteString(tok.Text)
		used += tok.CellWidth
	}
	return sb.String()
}
