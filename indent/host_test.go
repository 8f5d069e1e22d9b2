package indent

import "strings"

type stubDoc struct {
	lines []Line
	n     int
}

func newStubDoc(text string) *stubDoc {
	d := &stubDoc{}
	from := 0
	for i, raw := range strings.Split(text, "\n") {
		runes := []rune(raw)
		d.lines = append(d.lines, Line{Number: i + 1, From: from, To: from + len(runes), Text: raw})
		from += len(runes) + 1
	}
	d.n = from - 1
	return d
}

func (d *stubDoc) Line(n int) Line {
	if n < 1 {
		n = 1
	}
	if n > len(d.lines) {
		n = len(d.lines)
	}
	return d.lines[n-1]
}

func (d *stubDoc) LineAt(pos int) Line {
	for _, l := range d.lines {
		if pos <= l.To {
			return l
		}
	}
	return d.lines[len(d.lines)-1]
}

func (d *stubDoc) Length() int { return d.n }

type stubState struct {
	doc        *stubDoc
	tabSize    int
	indentUnit int
}

func (s stubState) Doc() Document   { return s.doc }
func (s stubState) TabSize() int    { return s.tabSize }
func (s stubState) IndentUnit() int { return s.indentUnit }

type stubView struct {
	state   stubState
	ranges  []Range
	pending []MeasureRequest
}

func newStubView(text string, tabSize, indentUnit int) *stubView {
	doc := newStubDoc(text)
	return &stubView{
		state:  stubState{doc: doc, tabSize: tabSize, indentUnit: indentUnit},
		ranges: []Range{{From: 0, To: doc.Length()}},
	}
}

func (v *stubView) State() State           { return v.state }
func (v *stubView) VisibleRanges() []Range { return v.ranges }

func (v *stubView) RequestMeasure(req MeasureRequest) {
	for i, p := range v.pending {
		if req.Key != nil && p.Key == req.Key {
			v.pending[i] = req
			return
		}
	}
	v.pending = append(v.pending, req)
}

func (v *stubView) flush(s Surface) error {
	pending := v.pending
	v.pending = nil
	for _, req := range pending {
		if err := req.Read(s); err != nil {
			return err
		}
	}
	return nil
}

type stubSurface struct {
	padding  string
	rendered bool
}

func (s stubSurface) LinePaddingLeft() (string, bool) { return s.padding, s.rendered }
