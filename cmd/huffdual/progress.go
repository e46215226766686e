package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// inputDoneMsg reports that one more input finished replaying.
type inputDoneMsg struct {
	done, total int
}

// replayDoneMsg ends the progress display.
type replayDoneMsg struct{}

type progressModel struct {
	bar   progress.Model
	done  int
	total int
	quit  bool
}

func newProgressModel() progressModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return progressModel{bar: bar}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inputDoneMsg:
		m.done, m.total = msg.done, msg.total
	case replayDoneMsg:
		m.quit = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = max(min(msg.Width-24, 60), 10)
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.quit {
		return ""
	}
	var pct float64
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	return fmt.Sprintf("%s %s\n", m.bar.ViewAs(pct), dimStyle.Render(fmt.Sprintf("%d/%d inputs", m.done, m.total)))
}

// progressUI shows replay progress on a terminal. Its zero value is a no-op.
type progressUI struct {
	prog *tea.Program
	done chan struct{}
}

// startProgress starts the display when w is a terminal.
func startProgress(w io.Writer) *progressUI {
	ui := &progressUI{}
	if !newPainter(w).styled {
		return ui
	}
	ui.prog = tea.NewProgram(newProgressModel(), tea.WithOutput(w),
		tea.WithInput(nil), tea.WithoutSignalHandler())
	ui.done = make(chan struct{})
	go func() {
		defer close(ui.done)
		_, _ = ui.prog.Run()
	}()
	return ui
}

// advance is the replay progress callback.
func (ui *progressUI) advance(done, total int) {
	if ui.prog != nil {
		ui.prog.Send(inputDoneMsg{done: done, total: total})
	}
}

// stop clears the display and waits for the program to exit.
func (ui *progressUI) stop() {
	if ui.prog == nil {
		return
	}
	ui.prog.Send(replayDoneMsg{})
	<-ui.done
}
