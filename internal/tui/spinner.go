package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nbaosullivan/lagoon/internal/style"
	"github.com/nbaosullivan/lagoon/internal/terminal"
)

// doneMsg signals that the awaited operation finished.
type doneMsg struct {
	result any
	err    error
}

type awaitModel struct {
	spinner  spinner.Model
	title    string
	done     bool
	err      error
	result   any
	run      func() (any, error)
	quitting bool
}

func newAwaitModel(title string, fn func() (any, error)) awaitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.SpinnerColor)

	return awaitModel{spinner: s, title: title, run: fn}
}

func (m awaitModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			result, err := m.run()
			return doneMsg{result: result, err: err}
		},
	)
}

func (m awaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case doneMsg:
		m.done = true
		m.err = msg.err
		m.result = msg.result
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m awaitModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "...\n"
}

// Await runs fn to completion, showing a spinner while it works. Outside a
// TTY (or in CI) it simply calls fn.
func Await(title string, fn func() (any, error)) (any, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) || terminal.IsCI() {
		return fn()
	}

	p := tea.NewProgram(newAwaitModel(title, fn))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(awaitModel)
	if m.quitting {
		return nil, fmt.Errorf("%s: interrupted", title)
	}
	return m.result, m.err
}
