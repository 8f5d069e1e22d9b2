package editor

import tea "github.com/charmbracelet/bubbletea"

// measureMsg runs queued plugin measurements. It is delivered through a
// command, so the frame for the current state has been rendered by the time
// it arrives.
type measureMsg struct {
	host *viewHost
}

func (m Model) measureCmd() tea.Cmd {
	if len(m.host.pending) == 0 {
		return nil
	}
	h := m.host
	return func() tea.Msg { return measureMsg{host: h} }
}

func (m Model) runMeasure() Model {
	reqs := m.host.takePending()
	if len(reqs) == 0 {
		return m
	}
	s := hostSurface{h: m.host}
	for _, req := range reqs {
		m.setErr(req.Read(s))
	}
	m.sync(false)
	return m
}
