package indent

// Line is one logical document line.
//
// From and To are rune offsets; To excludes the line break. Number is 1-based.
type Line struct {
	Number int
	From   int
	To     int
	Text   string
}

func (l Line) Length() int { return l.To - l.From }

// Range is a half-open span of document offsets [From, To).
type Range struct {
	From int
	To   int
}

// Document is the read-only text a host exposes to plugins.
type Document interface {
	// Line returns the 1-based line n.
	Line(n int) Line
	// LineAt returns the line containing offset pos.
	LineAt(pos int) Line
	// Length is the document length in runes.
	Length() int
}

// State is a snapshot of host editor state.
type State interface {
	Doc() Document
	TabSize() int
	IndentUnit() int
}

// Surface answers layout queries after the host has rendered a frame.
type Surface interface {
	// LinePaddingLeft returns the computed left padding of one rendered line,
	// as a CSS length. ok is false when no line is rendered.
	LinePaddingLeft() (padding string, ok bool)
}

// MeasureRequest asks the host to call Read after its next layout pass.
//
// Hosts may coalesce pending requests that share a non-nil Key.
type MeasureRequest struct {
	Key  any
	Read func(Surface) error
}

// View is the host editor handle given to plugins on Attach.
type View interface {
	State() State
	// VisibleRanges may contain several discontiguous ranges.
	VisibleRanges() []Range
	RequestMeasure(req MeasureRequest)
}

// Update is sent to plugins after every host state transition.
type Update struct {
	State           State
	DocChanged      bool
	ViewportChanged bool
}

// Plugin is the lifecycle a host drives for each installed view plugin.
type Plugin interface {
	Attach(view View) error
	Update(u Update) error
	Detach()
}

// DecorationSource is implemented by plugins that contribute decorations.
type DecorationSource interface {
	Decorations() DecorationSet
}
