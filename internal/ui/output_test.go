package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/base-agents/base-agents/internal/ui/theme"
)

func TestOutputPlainWhenNotTTY(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewOutput(&out, &errOut)

	o.Success("installed")
	o.Info("next step")
	o.KeyValue(2, "Repo", "https://github.com/a/b")
	o.ListItem("•", "one")
	o.Error("boom")
	o.Warning("careful")

	want := "✓ installed\n→ next step\n  Repo: https://github.com/a/b\n  • one\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	if errOut.String() != "✗ boom\n! careful\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPlainOutputIsNotWrapped(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, &out)
	o.width = 10

	o.Info("a message much longer than ten columns")
	if strings.Count(out.String(), "\n") != 1 {
		t.Errorf("plain output was wrapped: %q", out.String())
	}
}

func TestWrapOnTerminal(t *testing.T) {
	o := &Output{theme: theme.Current(), width: 12}

	got := o.Wrap("sync claude into gemini and agents")
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Errorf("line %q longer than 12 columns", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "sync claude into gemini and agents" {
		t.Errorf("Wrap() changed the words: %q", got)
	}
}

func TestSection(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, &out)
	o.Section("Tools")
	if out.String() != "Tools\n-----\n" {
		t.Errorf("Section() = %q", out.String())
	}
}

func TestIsTTYForBuffers(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	if IsReaderTTY(strings.NewReader("")) {
		t.Error("a string reader is not a terminal")
	}
}

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NoColor() {
		t.Error("NoColor() = false with NO_COLOR set")
	}
}
