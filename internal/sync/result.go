package sync

import (
	"fmt"
	"strings"

	"github.com/base-agents/base-agents/internal/tools"
)

// Result is the outcome of syncing one source tool into one target tool
type Result struct {
	Source      tools.ToolID
	Target      tools.ToolID
	FilesCopied int
	Skipped     int
	Errors      []string
}

// HasErrors returns true if anything went wrong for this pair
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AnyErrors returns true if any result carries an error
func AnyErrors(results []Result) bool {
	for i := range results {
		if results[i].HasErrors() {
			return true
		}
	}
	return false
}

// Summarize renders totals across all results, followed by every error
// prefixed with its source and target.
func Summarize(results []Result) string {
	var copied, skipped, errs int
	for _, r := range results {
		copied += r.FilesCopied
		skipped += r.Skipped
		errs += len(r.Errors)
	}

	var sb strings.Builder
	sb.WriteString("Sync Summary:\n")
	fmt.Fprintf(&sb, "  Files copied: %d\n", copied)
	fmt.Fprintf(&sb, "  Files skipped: %d\n", skipped)
	fmt.Fprintf(&sb, "  Errors: %d\n", errs)

	if errs > 0 {
		sb.WriteString("\nErrors:\n")
		for _, r := range results {
			for _, e := range r.Errors {
				fmt.Fprintf(&sb, "  %s → %s: %s\n", r.Source, r.Target, e)
			}
		}
	}

	return sb.String()
}
