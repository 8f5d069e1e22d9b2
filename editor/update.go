package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case measureMsg:
		if msg.host != m.host {
			return m, nil
		}
		m = m.runMeasure()
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m.viewport, _ = m.viewport.Update(msg)
		m.sync(false)
	default:
		// Hosts may mutate the buffer directly; pick the change up here.
		m.sync(false)
	}
	return m, m.measureCmd()
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	h := m.visibleRowCount()

	switch {
	case key.Matches(msg, km.Up):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, km.Down):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, km.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - maxInt(h, 1))
	case key.Matches(msg, km.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + maxInt(h, 1))
	case key.Matches(msg, km.Top):
		m.viewport.SetYOffset(0)
	case key.Matches(msg, km.Bottom):
		m.viewport.SetYOffset(len(m.layout.rows))
	default:
		return m
	}
	m.sync(false)
	return m
}
