package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	divergenceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(16)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// painter applies styles only when writing to a terminal.
type painter struct {
	styled bool
}

func newPainter(w io.Writer) painter {
	f, ok := w.(*os.File)
	return painter{styled: ok && term.IsTerminal(int(f.Fd()))}
}

func (p painter) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// label pads plain output the way labelStyle pads styled output.
func (p painter) label(text string) string {
	if !p.styled {
		return text + ":"
	}
	return labelStyle.Render(text + ":")
}
