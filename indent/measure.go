package indent

// Spacing is the measured leading whitespace of one line.
type Spacing struct {
	// Columns is the indent width in character cells.
	Columns int
	// Tabs counts the tab characters inside the indent.
	Tabs int
}

func (s Spacing) ContainsTab() bool { return s.Tabs > 0 }

// Measure returns the leading whitespace width of text.
//
// Spaces advance one column and tabs advance to the next multiple of tabSize.
// Carriage returns are skipped. Measurement stops at the first other rune.
func Measure(text string, tabSize int) Spacing {
	var s Spacing
	for _, r := range text {
		switch r {
		case ' ':
			s.Columns++
		case '\t':
			s.Tabs++
			s.Columns += tabAdvance(s.Columns, tabSize)
		case '\r':
			continue
		default:
			return s
		}
	}
	return s
}

func tabAdvance(col, tabSize int) int {
	if tabSize <= 0 {
		tabSize = 4
	}
	return tabSize - col%tabSize
}
