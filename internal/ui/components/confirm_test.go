package components

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmFallback(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"garbage takes default", "maybe\n", false, false},
		{"eof takes default", "", true, true},
		{"answer without newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ConfirmWithIO("Reset configuration?", tt.defaultYes, strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("ConfirmWithIO() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfirmWithIO() = %v, want %v", got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Reset configuration?") {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestRunWithSpinnerWithoutTTY(t *testing.T) {
	var out bytes.Buffer
	got, err := RunWithSpinner("Cloning", &out, func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("RunWithSpinner() = %d, want 42", got)
	}
	if out.String() != "Cloning...\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestYesNoKeys(t *testing.T) {
	press := func(m yesNo, k tea.KeyMsg) yesNo {
		next, _ := m.Update(k)
		return next.(yesNo)
	}
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	m := press(yesNo{question: "Reset?"}, runes("y"))
	if !m.finished || !m.yes {
		t.Errorf("y: %+v", m)
	}

	m = press(yesNo{question: "Reset?", yes: true}, tea.KeyMsg{Type: tea.KeyTab})
	if m.finished || m.yes {
		t.Errorf("tab should toggle without finishing: %+v", m)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.finished || m.yes {
		t.Errorf("enter should accept the toggled answer: %+v", m)
	}

	m = press(yesNo{question: "Reset?", yes: true}, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.finished || !m.cancelled {
		t.Errorf("esc should cancel: %+v", m)
	}

	m = press(yesNo{question: "Reset?"}, runes("x"))
	if m.finished {
		t.Errorf("unbound keys should be ignored: %+v", m)
	}
}
