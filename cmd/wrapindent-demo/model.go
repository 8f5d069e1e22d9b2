package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wrapindent/editor"
)

type model struct {
	editor editor.Model
	title  string
	status string
	err    error
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.editor = m.editor.Close()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		msg.Height = editorHeight(msg.Height)
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m.checkErr(cmd)
	case fileChangedMsg:
		data, err := os.ReadFile(msg.path)
		if err != nil {
			log.Printf("reload %s: %v", msg.path, err)
			m.status = fmt.Sprintf("reload failed: %v", err)
			return m, nil
		}
		from, to, text := reloadEdit(m.editor.Buffer().Text(), string(data))
		m.editor = m.editor.Replace(from, to, text)
		m.status = "reloaded"
		log.Printf("reloaded %s (%d bytes)", msg.path, len(data))
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(nil)
		return m.checkErr(cmd)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m.checkErr(cmd)
}

// checkErr stops the program on the first plugin error.
func (m model) checkErr(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if err := m.editor.Err(); err != nil {
		m.err = err
		m.editor = m.editor.Close()
		return m, tea.Quit
	}
	return m, cmd
}

func (m model) View() string {
	st := m.editor.ViewportState()
	header := fmt.Sprintf("%s | line %d | wrap %s | tab %d | unit %d | q quit",
		m.title, st.TopLine, st.WrapMode, m.editor.TabWidth(), m.editor.IndentUnit())
	if m.status != "" {
		header += " | " + m.status
	}
	return header + "\n" + m.editor.View()
}

// reloadEdit returns the smallest rune span [from, to) of old that, replaced
// by text, turns old into next.
func reloadEdit(old, next string) (from, to int, text string) {
	a, b := []rune(old), []rune(next)
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	s := 0
	for s < len(a)-p && s < len(b)-p && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}
	return p, len(a) - s, string(b[p : len(b)-s])
}

func editorHeight(total int) int {
	if total <= 1 {
		return 0
	}
	return total - 1
}
