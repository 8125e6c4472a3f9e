package components

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/base-agents/base-agents/internal/ui"
	"github.com/base-agents/base-agents/internal/ui/theme"
)

// ErrCancelled is returned when the user interrupts a prompt or spinner
var ErrCancelled = errors.New("cancelled")

type spinnerDoneMsg struct {
	err error
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
	theme   theme.Theme
}

func newSpinnerModel(message string) spinnerModel {
	th := theme.Current()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = th.Styles().Spinner

	return spinnerModel{
		spinner: s,
		message: message,
		theme:   th,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.theme.Styles().Muted.Render(m.message)
}

// RunWithSpinner runs fn while showing a spinner on out.
// Without a terminal it prints the message once and runs fn directly.
func RunWithSpinner[T any](message string, out io.Writer, fn func() (T, error)) (T, error) {
	if !ui.IsTTY(out) {
		fmt.Fprintf(out, "%s...\n", message)
		return fn()
	}

	var (
		result T
		fnErr  error
	)

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(out))

	go func() {
		result, fnErr = fn()
		p.Send(spinnerDoneMsg{err: fnErr})
	}()

	final, err := p.Run()
	if err != nil {
		return result, fmt.Errorf("spinner failed: %w", err)
	}
	if m, ok := final.(spinnerModel); ok && errors.Is(m.err, ErrCancelled) {
		return result, ErrCancelled
	}

	return result, fnErr
}
