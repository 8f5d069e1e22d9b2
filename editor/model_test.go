package editor

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/wrapindent/indent"
)

func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Line:    r.NewStyle().PaddingLeft(1),
		Indent:  r.NewStyle(),
		Text:    r.NewStyle(),
		Gutter:  r.NewStyle(),
		LineNum: r.NewStyle(),
	}
}

// runCmds feeds command results back into the model until it settles.
func runCmds(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 10 {
			t.Fatalf("commands did not settle")
		}
		m, cmd = m.Update(cmd())
	}
	return m
}

func newIndentedModel(t *testing.T, text string, width, height int, opts ...indent.Option) Model {
	t.Helper()
	m := New(Config{
		Text:       text,
		TabWidth:   4,
		Extensions: []indent.Extension{indent.IndentWrappedLines(opts...)},
		Style:      plainStyle(),
	})
	m = runCmds(t, m, m.Init())
	m, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return runCmds(t, m, cmd)
}

func renderedRows(m Model) []string {
	rows := strings.Split((&m).renderContent(), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	return rows
}

func TestNew_LineWrappingExtensionEnablesWrap(t *testing.T) {
	m := New(Config{Extensions: []indent.Extension{indent.IndentWrappedLines()}})
	if got := m.WrapMode(); got != WrapWord {
		t.Fatalf("wrap mode: got %v, want %v", got, WrapWord)
	}

	m = New(Config{Extensions: []indent.Extension{indent.IndentWrappedLines()}, WrapMode: WrapGrapheme})
	if got := m.WrapMode(); got != WrapGrapheme {
		t.Fatalf("explicit wrap mode: got %v, want %v", got, WrapGrapheme)
	}

	if got := New(Config{}).WrapMode(); got != WrapNone {
		t.Fatalf("default wrap mode: got %v, want %v", got, WrapNone)
	}
}

func TestModel_NoDecorationsBeforeFirstRender(t *testing.T) {
	m := New(Config{
		Text:       "\ta\n\tb",
		Extensions: []indent.Extension{indent.IndentWrappedLines()},
		Style:      plainStyle(),
	})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init returned no measure command")
	}
	m = runCmds(t, m, cmd)
	if got := m.Decorations().Len(); got != 0 {
		t.Fatalf("decorations before size: got %d, want 0", got)
	}

	m, cmd = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	if cmd == nil {
		t.Fatalf("resize did not request a measurement")
	}
	m = runCmds(t, m, cmd)
	if got := m.Decorations().Len(); got != 2 {
		t.Fatalf("decorations after measure: got %d, want 2", got)
	}
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
}

func TestModel_RendersHangingIndent(t *testing.T) {
	m := newIndentedModel(t, "\taaaa bbbb cccc", 12, 5)

	d, ok := m.Decorations().At(0)
	if !ok {
		t.Fatalf("missing decoration for line 1")
	}
	if got, want := d.Style(), "padding-left: calc(4ch + 1ch); text-indent: calc(-4ch - 1px);"; got != want {
		t.Fatalf("style: got %q, want %q", got, want)
	}

	want := []string{"     aaaa", "     bbbb", "     cccc"}
	got := renderedRows(m)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestModel_InitialIndentWidensContinuationRows(t *testing.T) {
	m := newIndentedModel(t, "aaaa bbbb cccc", 10, 5, indent.WithInitialIndent(1), indent.WithInitialIndentType(indent.IndentTab))

	want := []string{" aaaa bbbb", "     cccc"}
	got := renderedRows(m)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestModel_IndentWiderThanViewportKeepsText(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []indent.Option
		want string
	}{
		{name: "deep tabs", text: "\t\t\t\taaaa bbbb", want: "aaaabbbb"},
		{name: "large initial indent", text: "xx yy zz ww vv uu", opts: []indent.Option{indent.WithInitialIndent(20)}, want: "xxyyzzwwvvuu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newIndentedModel(t, tt.text, 12, 6, tt.opts...)
			rows := renderedRows(m)
			for i, row := range rows {
				if len(row) > 12 {
					t.Fatalf("row %d wider than the viewport: %q", i, row)
				}
			}
			if got := strings.ReplaceAll(strings.Join(rows, ""), " ", ""); got != tt.want {
				t.Fatalf("rendered text: got %q, want %q (rows %q)", got, tt.want, rows)
			}
		})
	}
}

func TestModel_UnknownIndentTypeSurfacesError(t *testing.T) {
	m := New(Config{
		Text:       "x",
		Extensions: []indent.Extension{indent.IndentWrappedLines(indent.WithInitialIndentType("half"))},
	})
	if !errors.Is(m.Err(), indent.ErrUnknownIndentType) {
		t.Fatalf("error: got %v, want %v", m.Err(), indent.ErrUnknownIndentType)
	}
}

func TestModel_ScrollRegeneratesForVisibleLines(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat(" ", i) + "x"
	}
	m := newIndentedModel(t, strings.Join(lines, "\n"), 40, 3)

	set := m.Decorations()
	if set.Len() != 3 || set[0].Line != 1 || set[2].Line != 3 {
		t.Fatalf("initial decorations: got %+v", set)
	}

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = runCmds(t, m, cmd)

	set = m.Decorations()
	if set.Len() != 3 || set[0].Line != 2 || set[2].Line != 4 {
		t.Fatalf("decorations after scroll: got %+v", set)
	}
	if got, want := set[0].Columns, 1; got != want {
		t.Fatalf("line 2 columns: got %d, want %d", got, want)
	}
	if st := m.ViewportState(); st.TopLine != 2 || st.TopVisualRow != 1 {
		t.Fatalf("viewport state: got %+v", st)
	}
}

func TestModel_TabWidthAloneDoesNotRegenerate(t *testing.T) {
	m := newIndentedModel(t, "\tx", 40, 3)
	if got := m.Decorations()[0].Columns; got != 4 {
		t.Fatalf("initial columns: got %d, want 4", got)
	}

	m = m.SetTabWidth(8)
	if got := m.Decorations()[0].Columns; got != 4 {
		t.Fatalf("columns after tab width change: got %d, want 4", got)
	}

	m = m.SetText("\ty")
	if got := m.Decorations()[0].Columns; got != 8 {
		t.Fatalf("columns after document change: got %d, want 8", got)
	}
}

func TestModel_IndentUnitPickedUpOnNextChange(t *testing.T) {
	m := newIndentedModel(t, "x", 40, 3, indent.WithInitialIndent(1), indent.WithInitialIndentType(indent.IndentUnitType))
	if got := m.Decorations()[0].Columns; got != defaultIndentUnit {
		t.Fatalf("initial columns: got %d, want %d", got, defaultIndentUnit)
	}

	m = m.SetIndentUnit(3)
	if got := m.Decorations()[0].Columns; got != defaultIndentUnit {
		t.Fatalf("columns after indent unit change: got %d, want %d", got, defaultIndentUnit)
	}

	m = m.SetText("y")
	if got := m.Decorations()[0].Columns; got != 3 {
		t.Fatalf("columns after document change: got %d, want 3", got)
	}
}

func TestModel_MeasureRequestsCoalesce(t *testing.T) {
	m := New(Config{
		Text:       "a\nb",
		Extensions: []indent.Extension{indent.IndentWrappedLines()},
		Style:      plainStyle(),
	})
	m = m.SetSize(10, 1)
	m = m.SetSize(10, 2)
	if got := len(m.host.pending); got != 1 {
		t.Fatalf("pending measures: got %d, want 1", got)
	}
}

func TestModel_CloseDropsPendingMeasure(t *testing.T) {
	m := New(Config{
		Text:       "a",
		Extensions: []indent.Extension{indent.IndentWrappedLines()},
		Style:      plainStyle(),
	})
	m = m.SetSize(10, 2)
	cmd := m.measureCmd()
	if cmd == nil {
		t.Fatalf("no pending measure")
	}

	m = m.Close()
	m, _ = m.Update(cmd())
	if got := m.Decorations().Len(); got != 0 {
		t.Fatalf("decorations after close: got %d, want 0", got)
	}
}

func TestModel_IgnoresForeignMeasureMsg(t *testing.T) {
	a := New(Config{Text: "a", Extensions: []indent.Extension{indent.IndentWrappedLines()}}).SetSize(10, 2)
	b := New(Config{Text: "b", Extensions: []indent.Extension{indent.IndentWrappedLines()}}).SetSize(10, 2)

	a, _ = a.Update(b.measureCmd()())
	if got := a.Decorations().Len(); got != 0 {
		t.Fatalf("decorations from foreign measure: got %d, want 0", got)
	}
	if got := len(a.host.pending); got != 1 {
		t.Fatalf("own pending measures: got %d, want 1", got)
	}
}

func TestModel_WithoutExtensionsUsesBasePadding(t *testing.T) {
	m := New(Config{Text: "\tab", Style: plainStyle()}).SetSize(10, 2)
	if got, want := renderedRows(m), []string{"     ab"}; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
	if m.Init() != nil {
		t.Fatalf("Init without plugins returned a command")
	}
}
