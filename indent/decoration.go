package indent

import (
	"fmt"
	"sort"
)

// StyleAttr is the attribute key decorations use for their inline style.
const StyleAttr = "style"

// Decoration is a zero-width line decoration anchored at a line start.
type Decoration struct {
	// From is the line start offset the decoration is attached to.
	From int
	// Line is the 1-based number of the decorated line.
	Line int
	// Columns is the total indent (measured plus initial) in ch units.
	Columns int
	HasTab  bool

	Attributes map[string]string
}

// Style returns the inline style attribute.
func (d Decoration) Style() string {
	if d.Attributes == nil {
		return ""
	}
	return d.Attributes[StyleAttr]
}

// DecorationSet is an ordered set of line decorations, sorted by From.
type DecorationSet []Decoration

func (s DecorationSet) Len() int { return len(s) }

// At returns the decoration anchored at offset from.
func (s DecorationSet) At(from int) (Decoration, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i].From >= from })
	if i < len(s) && s[i].From == from {
		return s[i], true
	}
	return Decoration{}, false
}

// Style renders the inline style for a line indented by columns.
//
// basePadding is the host's own line padding, kept so the wrapped rows still
// clear it. correctionPx is subtracted from the text-indent.
func Style(columns int, basePadding string, correctionPx int) string {
	return fmt.Sprintf(
		"padding-left: calc(%dch + %s); text-indent: calc(-%dch - %dpx);",
		columns, basePadding, columns, correctionPx,
	)
}

func lineDecoration(line Line, columns int, sp Spacing, basePadding string, correctionPx int) Decoration {
	px := 0
	if sp.ContainsTab() {
		px = correctionPx
	}
	return Decoration{
		From:    line.From,
		Line:    line.Number,
		Columns: columns,
		HasTab:  sp.ContainsTab(),
		Attributes: map[string]string{
			StyleAttr: Style(columns, basePadding, px),
		},
	}
}
