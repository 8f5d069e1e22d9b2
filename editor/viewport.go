package editor

import (
	"sort"
	"strconv"

	"github.com/iw2rmb/wrapindent/buffer"
	"github.com/iw2rmb/wrapindent/indent"
)

type layoutRow struct {
	line         int
	segmentIndex int
}

type layoutLine struct {
	line     buffer.Line
	visual   visualLine
	hang     hangingIndent
	segments []wrappedSegment
	firstRow int
}

type layout struct {
	lines []layoutLine
	rows  []layoutRow

	contentWidth int
	gutterWidth  int
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(m.buf.LineCount())) + 1
}

func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) buildLayout() layout {
	lay := layout{
		contentWidth: m.contentWidth(),
		gutterWidth:  m.gutterWidth(),
	}
	decos := m.Decorations()
	base := m.cfg.Style.basePadding()

	n := m.buf.LineCount()
	lay.lines = make([]layoutLine, 0, n)
	lay.rows = make([]layoutRow, 0, n)
	for i := 1; i <= n; i++ {
		line := m.buf.Line(i)
		visual := buildVisualLine(line.Text, m.host.tabWidth)

		hang := hangingIndent{first: base, rest: base}
		if d, ok := decos.At(line.From); ok {
			hang = hangingIndentFromStyle(d.Style(), base)
		}
		if lay.contentWidth > 0 {
			// Every row keeps at least one cell for text.
			limit := maxInt(lay.contentWidth-1, 0)
			hang.first = minInt(hang.first, limit)
			hang.rest = minInt(hang.rest, limit)
		}

		segments := wrapSegmentsForVisualLine(
			visual,
			m.cfg.WrapMode,
			lay.contentWidth-hang.first,
			lay.contentWidth-hang.rest,
		)

		idx := len(lay.lines)
		lay.lines = append(lay.lines, layoutLine{
			line:     line,
			visual:   visual,
			hang:     hang,
			segments: segments,
			firstRow: len(lay.rows),
		})
		for segIdx := range segments {
			lay.rows = append(lay.rows, layoutRow{line: idx, segmentIndex: segIdx})
		}
	}
	return lay
}

// visibleRanges returns the document span covered by the rows inside the
// viewport. The span ends past the last visible line's break, so an empty
// line at the bottom of the viewport is still visited.
func (m *Model) visibleRanges() []indent.Range {
	h := m.visibleRowCount()
	if h <= 0 || len(m.layout.rows) == 0 {
		return nil
	}
	top := clampInt(m.viewport.YOffset, 0, len(m.layout.rows)-1)
	bottom := minInt(top+h, len(m.layout.rows)) - 1

	first := m.layout.rows[top]
	last := m.layout.rows[bottom]
	fl := m.layout.lines[first.line]
	ll := m.layout.lines[last.line]

	from := fl.line.From + fl.segments[first.segmentIndex].StartCol
	to := minInt(ll.line.To+1, m.buf.Len())
	if to < from {
		to = from
	}
	return []indent.Range{{From: from, To: to}}
}

// rowForLine returns the first visual row of the 1-based line n.
func (l layout) rowForLine(n int) int {
	i := sort.Search(len(l.lines), func(i int) bool { return l.lines[i].line.Number >= n })
	if i >= len(l.lines) {
		return maxInt(len(l.rows)-1, 0)
	}
	return l.lines[i].firstRow
}
