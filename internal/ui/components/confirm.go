package components

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/base-agents/base-agents/internal/ui"
	"github.com/base-agents/base-agents/internal/ui/theme"
)

var (
	keyYes    = key.NewBinding(key.WithKeys("y", "Y"))
	keyNo     = key.NewBinding(key.WithKeys("n", "N"))
	keyToggle = key.NewBinding(key.WithKeys("left", "right", "tab"))
	keyAccept = key.NewBinding(key.WithKeys("enter"))
	keyCancel = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
)

// yesNo is a single-line yes/no toggle
type yesNo struct {
	question  string
	yes       bool
	finished  bool
	cancelled bool
}

func (m yesNo) Init() tea.Cmd {
	return nil
}

func (m yesNo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keyCancel):
		m.cancelled = true
	case key.Matches(k, keyYes):
		m.yes = true
	case key.Matches(k, keyNo):
		m.yes = false
	case key.Matches(k, keyToggle):
		m.yes = !m.yes
		return m, nil
	case key.Matches(k, keyAccept):
	default:
		return m, nil
	}

	m.finished = true
	return m, tea.Quit
}

func (m yesNo) View() string {
	if m.finished {
		return ""
	}
	styles := theme.Current().Styles()
	yes, no := styles.Muted.Render(" yes "), styles.Selected.Render("[no]")
	if m.yes {
		yes, no = styles.Selected.Render("[yes]"), styles.Muted.Render(" no ")
	}
	return m.question + " " + yes + no
}

// Confirm asks a yes/no question on the terminal
func Confirm(question string, defaultYes bool) (bool, error) {
	return ConfirmWithIO(question, defaultYes, os.Stdin, os.Stdout)
}

// ConfirmWithIO asks a yes/no question. When in or out is not a terminal the
// answer is read as a line: y/yes or n/no, anything else picks defaultYes.
func ConfirmWithIO(question string, defaultYes bool, in io.Reader, out io.Writer) (bool, error) {
	if !ui.IsTTY(out) || !ui.IsReaderTTY(in) {
		return readAnswer(question, defaultYes, in, out)
	}

	final, err := tea.NewProgram(yesNo{question: question, yes: defaultYes},
		tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, fmt.Errorf("confirm failed: %w", err)
	}

	m := final.(yesNo)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.yes, nil
}

func readAnswer(question string, defaultYes bool, in io.Reader, out io.Writer) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(out, "%s %s ", question, hint)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return defaultYes, nil
}
