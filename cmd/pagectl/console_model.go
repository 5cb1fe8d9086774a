package main

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/pagefs/internal/logger"
	"github.com/joshuapare/pagefs/shell"
)

// consoleModel is the terminal console: a scrolling transcript of everything
// the shell wrote, and an input line.
type consoleModel struct {
	sh     *shell.Shell
	screen *bytes.Buffer

	input    textinput.Model
	viewport viewport.Model
	keys     consoleKeys

	width    int
	height   int
	commands int
}

// newConsoleModel wraps a shell whose output goes to screen.
func newConsoleModel(sh *shell.Shell, screen *bytes.Buffer) consoleModel {
	ti := textinput.New()
	ti.Prompt = shell.Prompt
	ti.Placeholder = "LIST"
	ti.CharLimit = 256
	ti.Focus()

	m := consoleModel{
		sh:       sh,
		screen:   screen,
		input:    ti,
		viewport: viewport.New(0, 0),
		keys:     defaultConsoleKeys(),
	}
	m.refresh()
	return m
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(shell.Prompt)-1, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			logger.Info("console closed")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit echoes the input line into the transcript and runs it.
func (m consoleModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.screen.WriteString(line)
	m.screen.WriteByte('\n')
	if err := m.sh.Exec(line); err != nil {
		logger.Debug("console command", "line", line, "error", err)
	}
	m.commands++
	m.refresh()

	if m.sh.Halted() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *consoleModel) refresh() {
	m.viewport.SetContent(renderTranscript(m.screen.String()))
	m.viewport.GotoBottom()
}

func (m consoleModel) View() string {
	if m.sh.Halted() {
		return renderTranscript(m.screen.String()) + "\n"
	}
	status := statusStyle.Render(fmt.Sprintf("%d commands | pgup/pgdn scroll | ctrl+c quit", m.commands))
	return m.viewport.View() + "\n" + m.input.View() + "\n" + status
}
