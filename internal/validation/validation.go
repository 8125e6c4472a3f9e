// Package validation checks user-supplied repository URLs, branch names,
// template names and relative paths before they reach git or the filesystem.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	gitURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https://github\.com/[\w-]+/[\w.-]+\.git$`),
		regexp.MustCompile(`^https://github\.com/[\w-]+/[\w.-]+$`),
		regexp.MustCompile(`^git@github\.com:[\w-]+/[\w.-]+\.git$`),
		regexp.MustCompile(`^https?://.+\.(git|zip)$`),
	}

	kebabCase    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// Error describes an invalid input value
type Error struct {
	Field string
	Value string
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Msg)
}

// IsValidGitURL reports whether url is a GitHub HTTPS/SSH URL or any http(s) URL ending in .git or .zip
func IsValidGitURL(url string) bool {
	for _, p := range gitURLPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// GitURL returns an *Error when url is not an accepted repository URL
func GitURL(url string) error {
	if !IsValidGitURL(url) {
		return &Error{Field: "git repository URL", Value: url, Msg: "expected a GitHub URL or an http(s) URL ending in .git or .zip"}
	}
	return nil
}

// IsValidBranch applies the branch naming rules: word characters, '-', '.', '/'
// only; no leading '/'; no ".." or "/."; and no trailing ".<digits>".
func IsValidBranch(branch string) bool {
	if branch == "" || strings.HasPrefix(branch, "/") {
		return false
	}
	if strings.Contains(branch, "..") || strings.Contains(branch, "/.") {
		return false
	}
	for _, r := range branch {
		if !isBranchRune(r) {
			return false
		}
	}
	return !endsWithDotDigits(branch)
}

// Branch returns an *Error when branch is not a usable branch name
func Branch(branch string) error {
	if !IsValidBranch(branch) {
		return &Error{Field: "branch name", Value: branch, Msg: "use letters, digits, '-', '_', '.' and '/'"}
	}
	return nil
}

func isBranchRune(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	return r == '_' || r == '-' || r == '.' || r == '/' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func endsWithDotDigits(s string) bool {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return i < len(s) && i > 0 && s[i-1] == '.'
}

// IsValidTemplateName reports whether name is kebab-case
func IsValidTemplateName(name string) bool {
	return kebabCase.MatchString(name)
}

// SanitizeTemplateName lowercases name, collapses non-alphanumeric runs to '-'
// and trims leading and trailing dashes.
func SanitizeTemplateName(name string) string {
	s := nonAlnumRuns.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// IsSafePath rejects traversal and absolute paths. Backslashes count as separators.
func IsSafePath(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	return !strings.Contains(normalized, "..") && !strings.HasPrefix(normalized, "/")
}

// SafePath returns an *Error for paths that could escape their base directory
func SafePath(path string) error {
	if !IsSafePath(path) {
		return &Error{Field: "path", Value: path, Msg: "must be relative and must not contain '..'"}
	}
	return nil
}
