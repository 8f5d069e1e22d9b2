package editor

import (
	"fmt"
	"strings"
)

func (m *Model) renderContent() string {
	lay := m.layout
	out := make([]string, 0, len(lay.rows))
	digits := maxInt(lay.gutterWidth-1, 0)

	for _, ref := range lay.rows {
		line := lay.lines[ref.line]
		seg := line.segments[ref.segmentIndex]

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			num := fmt.Sprintf("%*s", digits, "")
			if ref.segmentIndex == 0 {
				num = fmt.Sprintf("%*d", digits, line.line.Number)
			}
			sb.WriteString(m.cfg.Style.LineNum.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		prefix := line.hang.rest
		if ref.segmentIndex == 0 {
			prefix = line.hang.first
		}
		budget := -1
		if lay.contentWidth > 0 {
			prefix = minInt(prefix, lay.contentWidth)
			budget = lay.contentWidth - prefix
		}
		if prefix > 0 {
			sb.WriteString(m.cfg.Style.Indent.Render(strings.Repeat(" ", prefix)))
		}
		if text := line.visual.text(seg.startTok, seg.endTok, budget); text != "" {
			sb.WriteString(m.cfg.Style.Text.Render(text))
		}

		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}
