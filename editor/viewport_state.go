package editor

import "github.com/iw2rmb/wrapindent/indent"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual row index rendered at viewport screen row 0.
	TopVisualRow int
	// TopLine is the 1-based logical line owning TopVisualRow.
	TopLine int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of visual rows of the whole document.
	TotalRows int
	// WrapMode is the active wrapping mode used to interpret coordinates.
	WrapMode WrapMode
	// Ranges are the document spans reported to plugins.
	Ranges []indent.Range
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := maxInt(m.viewport.YOffset, 0)
	topLine := 1
	if len(m.layout.rows) > 0 {
		ref := m.layout.rows[clampInt(top, 0, len(m.layout.rows)-1)]
		topLine = m.layout.lines[ref.line].line.Number
	}
	return ViewportState{
		TopVisualRow: top,
		TopLine:      topLine,
		VisibleRows:  m.visibleRowCount(),
		TotalRows:    len(m.layout.rows),
		WrapMode:     m.cfg.WrapMode,
		Ranges:       m.host.VisibleRanges(),
	}
}

// ScrollToLine puts the first row of the 1-based line n at the top.
func (m Model) ScrollToLine(n int) Model {
	m.viewport.SetYOffset(m.layout.rowForLine(n))
	m.sync(false)
	return m
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
