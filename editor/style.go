package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	// Line only contributes its left padding: it is the base padding every
	// rendered row starts with, and the value plugins measure.
	Line lipgloss.Style
	// Indent renders the hanging indent cells of wrapped rows.
	Indent lipgloss.Style
	Text   lipgloss.Style

	Gutter  lipgloss.Style
	LineNum lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Line:    lipgloss.NewStyle().PaddingLeft(1),
		Indent:  lipgloss.NewStyle(),
		Text:    lipgloss.NewStyle(),
		Gutter:  gutter,
		LineNum: gutter,
	}
}

func (s Style) basePadding() int {
	p := s.Line.GetPaddingLeft()
	if p < 0 {
		return 0
	}
	return p
}
