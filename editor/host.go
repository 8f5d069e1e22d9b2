package editor

import (
	"fmt"

	"github.com/iw2rmb/wrapindent/buffer"
	"github.com/iw2rmb/wrapindent/indent"
)

// viewHost is the indent.View handed to plugins. It is shared by every copy
// of a Model.
type viewHost struct {
	buf *buffer.Buffer

	tabWidth   int
	indentUnit int

	ranges []indent.Range

	// Layout facts published after each render.
	basePadding int
	rendered    bool

	pending []indent.MeasureRequest
}

var _ indent.View = (*viewHost)(nil)

func (h *viewHost) State() indent.State {
	return hostState{doc: bufferDoc{buf: h.buf}, tabSize: h.tabWidth, indentUnit: h.indentUnit}
}

func (h *viewHost) VisibleRanges() []indent.Range {
	return append([]indent.Range(nil), h.ranges...)
}

// RequestMeasure queues req for the next measure pass. A request with the
// same non-nil key replaces the queued one.
func (h *viewHost) RequestMeasure(req indent.MeasureRequest) {
	if req.Read == nil {
		return
	}
	if req.Key != nil {
		for i, p := range h.pending {
			if p.Key == req.Key {
				h.pending[i] = req
				return
			}
		}
	}
	h.pending = append(h.pending, req)
}

func (h *viewHost) takePending() []indent.MeasureRequest {
	reqs := h.pending
	h.pending = nil
	return reqs
}

type hostSurface struct {
	h *viewHost
}

func (s hostSurface) LinePaddingLeft() (string, bool) {
	if !s.h.rendered {
		return "", false
	}
	return fmt.Sprintf("%dch", s.h.basePadding), true
}

type hostState struct {
	doc        bufferDoc
	tabSize    int
	indentUnit int
}

func (s hostState) Doc() indent.Document { return s.doc }
func (s hostState) TabSize() int         { return s.tabSize }
func (s hostState) IndentUnit() int      { return s.indentUnit }

type bufferDoc struct {
	buf *buffer.Buffer
}

func (d bufferDoc) Line(n int) indent.Line     { return toIndentLine(d.buf.Line(n)) }
func (d bufferDoc) LineAt(pos int) indent.Line { return toIndentLine(d.buf.LineAt(pos)) }
func (d bufferDoc) Length() int                { return d.buf.Len() }

func toIndentLine(l buffer.Line) indent.Line {
	return indent.Line{Number: l.Number, From: l.From, To: l.To, Text: l.Text}
}

func equalRanges(a, b []indent.Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
