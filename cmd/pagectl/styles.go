package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/pagefs/shell"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	echoStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(successColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
)

// styleLine colours one transcript line by what kind of response it is.
func styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, shell.Prompt):
		return echoStyle.Render(line)
	case line == shell.MsgOK:
		return okStyle.Render(line)
	case strings.HasPrefix(line, "ERR:"), strings.HasPrefix(line, "usage:"), line == shell.MsgUnknown:
		return errStyle.Render(line)
	default:
		return line
	}
}

// renderTranscript styles the shell output for the viewport. The trailing
// prompt is dropped because the input line draws its own.
func renderTranscript(text string) string {
	text = strings.TrimSuffix(text, shell.Prompt)
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = styleLine(l)
	}
	return strings.Join(lines, "\n")
}
