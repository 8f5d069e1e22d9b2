package indent

import (
	"errors"
	"sort"
)

// ErrPaddingUnavailable is returned from a measurement when a rendered line
// reports an empty left padding.
var ErrPaddingUnavailable = errors.New("indent: could not read initial line padding")

// Decorator is the wrapped-line indent view plugin.
//
// The host line padding is measured once and cached for the decorator's
// lifetime. Hosts that restyle lines at runtime call InvalidatePadding.
type Decorator struct {
	cfg  Config
	view View

	indentUnit int

	padding    string
	hasPadding bool

	decorations DecorationSet
}

var (
	_ Plugin           = (*Decorator)(nil)
	_ DecorationSource = (*Decorator)(nil)
)

func NewDecorator(cfg Config) *Decorator {
	return &Decorator{cfg: cfg}
}

func (d *Decorator) Config() Config { return d.cfg }

func (d *Decorator) Attach(view View) error {
	d.view = view
	if view == nil {
		return nil
	}
	st := view.State()
	d.indentUnit = st.IndentUnit()
	return d.generate(st)
}

// Update refreshes the indent unit and regenerates when the document or the
// viewport geometry changed.
func (d *Decorator) Update(u Update) error {
	if d.view == nil || u.State == nil {
		return nil
	}
	d.indentUnit = u.State.IndentUnit()
	if !u.DocChanged && !u.ViewportChanged {
		return nil
	}
	return d.generate(u.State)
}

// Detach drops the view. Pending measurements resolve as no-ops.
func (d *Decorator) Detach() {
	d.view = nil
	d.decorations = nil
}

func (d *Decorator) Decorations() DecorationSet { return d.decorations }

// InvalidatePadding forgets the cached line padding. The next generation
// pass requests a new measurement.
func (d *Decorator) InvalidatePadding() {
	d.padding = ""
	d.hasPadding = false
}

// Padding returns the cached host line padding.
func (d *Decorator) Padding() (string, bool) { return d.padding, d.hasPadding }

func (d *Decorator) generate(st State) error {
	if _, err := d.cfg.InitialIndentValue(st.TabSize(), d.indentUnit); err != nil {
		d.decorations = nil
		return err
	}

	if d.hasPadding {
		set, err := d.build(st)
		if err != nil {
			return err
		}
		d.decorations = set
		return nil
	}

	d.decorations = nil
	d.view.RequestMeasure(MeasureRequest{Key: d, Read: d.readPadding})
	return nil
}

func (d *Decorator) readPadding(s Surface) error {
	if d.view == nil || s == nil {
		return nil
	}
	padding, ok := s.LinePaddingLeft()
	if !ok {
		return nil
	}
	if padding == "" {
		return ErrPaddingUnavailable
	}
	d.padding = padding
	d.hasPadding = true

	set, err := d.build(d.view.State())
	if err != nil {
		return err
	}
	d.decorations = set
	return nil
}

func (d *Decorator) build(st State) (DecorationSet, error) {
	tabSize := st.TabSize()
	initial, err := d.cfg.InitialIndentValue(tabSize, d.indentUnit)
	if err != nil {
		return nil, err
	}

	lines := VisibleLines(st.Doc(), d.view.VisibleRanges())
	set := make(DecorationSet, 0, len(lines))
	for _, line := range lines {
		sp := Measure(line.Text, tabSize)
		set = append(set, lineDecoration(line, sp.Columns+initial, sp, d.padding, d.cfg.TabCorrectionPx))
	}
	sort.SliceStable(set, func(i, j int) bool { return set[i].From < set[j].From })
	return set, nil
}
