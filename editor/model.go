package editor

import (
	"sort"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wrapindent/buffer"
	"github.com/iw2rmb/wrapindent/indent"
)

// Model is a Bubble Tea component that renders a buffer and hosts view
// plugins.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	viewport viewport.Model

	host    *viewHost
	plugins []indent.Plugin
	layout  layout

	lastVersion uint64
	lastRanges  []indent.Range
	lastWidth   int

	err error
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	buf := buffer.New(cfg.Text)
	m := Model{
		cfg:      cfg,
		buf:      buf,
		viewport: viewport.New(0, 0),
		host: &viewHost{
			buf:         buf,
			tabWidth:    cfg.TabWidth,
			indentUnit:  cfg.IndentUnit,
			basePadding: cfg.Style.basePadding(),
		},
	}
	m.lastVersion = buf.Version()
	m.relayout()
	m.lastRanges = m.host.VisibleRanges()
	m.lastWidth = m.contentWidth()
	m.installExtensions()
	return m
}

func (m *Model) installExtensions() {
	for _, ext := range indent.Flatten(m.cfg.Extensions...) {
		vp, ok := ext.(indent.ViewPlugin)
		if !ok || vp.Create == nil {
			continue
		}
		p := vp.Create()
		if p == nil {
			continue
		}
		m.plugins = append(m.plugins, p)
		m.setErr(p.Attach(m.host))
	}
	m.relayout()
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) WrapMode() WrapMode { return m.cfg.WrapMode }

func (m Model) TabWidth() int { return m.host.tabWidth }

func (m Model) IndentUnit() int { return m.host.indentUnit }

// Err returns the first error reported by an installed plugin.
func (m Model) Err() error { return m.err }

// Decorations merges the decorations of every installed plugin.
func (m Model) Decorations() indent.DecorationSet {
	var set indent.DecorationSet
	for _, p := range m.plugins {
		src, ok := p.(indent.DecorationSource)
		if !ok {
			continue
		}
		set = append(set, src.Decorations()...)
	}
	sort.SliceStable(set, func(i, j int) bool { return set[i].From < set[j].From })
	return set
}

func (m Model) Init() tea.Cmd { return m.measureCmd() }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.sync(false)
	return m
}

// SetText replaces the document.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.sync(false)
	return m
}

// Replace substitutes the document offsets [from, to) with text.
func (m Model) Replace(from, to int, text string) Model {
	m.buf.Replace(from, to, text)
	m.sync(false)
	return m
}

// SetTabWidth changes the tab stop interval. Plugins are notified without a
// document or geometry change unless the new width rewraps the viewport.
func (m Model) SetTabWidth(n int) Model {
	if n <= 0 {
		n = defaultTabWidth
	}
	m.host.tabWidth = n
	m.sync(true)
	return m
}

// SetIndentUnit changes the indentation unit reported to plugins.
func (m Model) SetIndentUnit(n int) Model {
	if n <= 0 {
		n = defaultIndentUnit
	}
	m.host.indentUnit = n
	m.sync(true)
	return m
}

// Close detaches every plugin. Pending measurements are dropped.
func (m Model) Close() Model {
	for _, p := range m.plugins {
		p.Detach()
	}
	m.plugins = nil
	m.host.pending = nil
	m.relayout()
	return m
}

func (m Model) View() string { return m.viewport.View() }

// sync relayouts and notifies plugins of document and geometry changes.
// A second round runs when new decorations rewrap the viewport.
func (m *Model) sync(notify bool) {
	m.relayout()
	for round := 0; round < 2; round++ {
		ver := m.buf.Version()
		ranges := m.host.VisibleRanges()
		width := m.contentWidth()

		u := indent.Update{
			State:           m.host.State(),
			DocChanged:      ver != m.lastVersion,
			ViewportChanged: width != m.lastWidth || !equalRanges(ranges, m.lastRanges),
		}
		m.lastVersion, m.lastRanges, m.lastWidth = ver, ranges, width

		if !u.DocChanged && !u.ViewportChanged && !notify {
			return
		}
		notify = false
		for _, p := range m.plugins {
			m.setErr(p.Update(u))
		}
		m.relayout()
	}
}

func (m *Model) relayout() {
	m.layout = m.buildLayout()
	m.viewport.SetContent(m.renderContent())
	m.host.ranges = m.visibleRanges()
	m.host.basePadding = m.cfg.Style.basePadding()
	m.host.rendered = m.visibleRowCount() > 0 && len(m.layout.rows) > 0
}

func (m *Model) setErr(err error) {
	if err != nil && m.err == nil {
		m.err = err
	}
}
