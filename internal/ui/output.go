package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/base-agents/base-agents/internal/ui/theme"
)

// Output provides styled terminal output.
// Styling and wrapping are dropped when the writer is not a terminal or NO_COLOR is set.
type Output struct {
	out   io.Writer
	err   io.Writer
	theme theme.Theme
	plain bool
	width int
}

// NewOutput creates a new styled output instance.
func NewOutput(out, err io.Writer) *Output {
	width := 80
	if w, _, e := term.GetSize(int(os.Stdout.Fd())); e == nil && w > 0 {
		width = w
	}
	return &Output{
		out:   out,
		err:   err,
		theme: theme.Current(),
		plain: !IsTTY(out) || NoColor(),
		width: width,
	}
}

// Wrap wraps text to the terminal width. Plain output is never wrapped.
func (o *Output) Wrap(text string) string {
	if o.plain || o.width <= 0 {
		return text
	}
	return wordwrap.String(text, o.width)
}

func (o *Output) style(s lipgloss.Style, text string) string {
	if o.plain {
		return text
	}
	return s.Render(text)
}

func (o *Output) line(w io.Writer, s lipgloss.Style, text string) {
	fmt.Fprintln(w, o.style(s, o.Wrap(text)))
}

// Success prints a success message with checkmark.
func (o *Output) Success(msg string) {
	o.line(o.out, o.theme.Styles().Success, o.theme.Symbols().Success+" "+msg)
}

// Error prints an error message to stderr.
func (o *Output) Error(msg string) {
	o.line(o.err, o.theme.Styles().Error, o.theme.Symbols().Error+" "+msg)
}

// Warning prints a warning message to stderr.
func (o *Output) Warning(msg string) {
	o.line(o.err, o.theme.Styles().Warning, o.theme.Symbols().Warning+" "+msg)
}

// Info prints an info message with arrow.
func (o *Output) Info(msg string) {
	o.line(o.out, o.theme.Styles().Info, o.theme.Symbols().Info+" "+msg)
}

// Header prints a bold header.
func (o *Output) Header(text string) {
	o.line(o.out, o.theme.Styles().Header, text)
}

// Section prints a section title with an underline.
func (o *Output) Section(title string) {
	styles := o.theme.Styles()
	rule := "-"
	if !o.plain {
		rule = "─"
	}
	o.line(o.out, styles.SubHeader, title)
	o.line(o.out, styles.Muted, strings.Repeat(rule, len([]rune(title))))
}

// Muted prints dim text.
func (o *Output) Muted(msg string) {
	o.line(o.out, o.theme.Styles().Muted, msg)
}

// Println prints a line to stdout.
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o.out, args...)
}

// Printf prints formatted output to stdout.
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.out, format, args...)
}

// Newline prints an empty line.
func (o *Output) Newline() {
	o.Println()
}

// KeyValue prints "key: value", indented by indent spaces.
func (o *Output) KeyValue(indent int, key, value string) {
	styles := o.theme.Styles()
	fmt.Fprintf(o.out, "%s%s %s\n", strings.Repeat(" ", indent),
		o.style(styles.Key, key+":"), o.style(styles.Value, value))
}

// ListItem prints a single list item with a custom prefix.
func (o *Output) ListItem(prefix, item string) {
	fmt.Fprintf(o.out, "  %s %s\n", o.style(o.theme.Styles().ListBullet, prefix), item)
}

// ErrorItem prints an error list item to stderr.
func (o *Output) ErrorItem(item string) {
	fmt.Fprintf(o.err, "  %s %s\n", o.style(o.theme.Styles().Error, o.theme.Symbols().Error), item)
}

// BoldText returns bold-styled text.
func (o *Output) BoldText(text string) string {
	return o.style(o.theme.Styles().Bold, text)
}

// MutedText returns muted-styled text.
func (o *Output) MutedText(text string) string {
	return o.style(o.theme.Styles().Muted, text)
}

// SuccessText returns success-styled text.
func (o *Output) SuccessText(text string) string {
	return o.style(o.theme.Styles().Success, text)
}

// Theme returns the current theme.
func (o *Output) Theme() theme.Theme {
	return o.theme
}
