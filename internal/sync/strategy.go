// Package sync merges the common configuration categories of one tool into others.
package sync

import (
	"fmt"
	"strings"
)

// ConflictStrategy decides what happens when a target file already exists
type ConflictStrategy string

const (
	// StrategyAsk would prompt per conflict; runs are non-interactive so it behaves like StrategySkip.
	StrategyAsk ConflictStrategy = "ask"

	// StrategyOverwrite replaces existing target files.
	StrategyOverwrite ConflictStrategy = "overwrite"

	// StrategySkip leaves existing target files untouched.
	StrategySkip ConflictStrategy = "skip"
)

// AllStrategies returns the accepted strategies in display order
func AllStrategies() []ConflictStrategy {
	return []ConflictStrategy{StrategyAsk, StrategyOverwrite, StrategySkip}
}

// IsValid returns true if the strategy is recognized
func (s ConflictStrategy) IsValid() bool {
	switch s {
	case StrategyAsk, StrategyOverwrite, StrategySkip:
		return true
	default:
		return false
	}
}

func (s ConflictStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy
func (s ConflictStrategy) Description() string {
	switch s {
	case StrategyAsk:
		return "Ask before replacing existing files (skips when non-interactive)"
	case StrategyOverwrite:
		return "Replace existing target files"
	case StrategySkip:
		return "Keep existing target files"
	default:
		return "Unknown strategy"
	}
}

// overwrites reports whether an existing target file gets replaced.
// The zero value is treated as StrategyAsk.
func (s ConflictStrategy) overwrites() bool {
	return s == StrategyOverwrite
}

// ParseStrategy validates a strategy name from flags or config
func ParseStrategy(value string) (ConflictStrategy, error) {
	s := ConflictStrategy(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		names := make([]string, 0, 3)
		for _, v := range AllStrategies() {
			names = append(names, string(v))
		}
		return "", fmt.Errorf("invalid conflict strategy %q (valid: %s)", value, strings.Join(names, ", "))
	}
	return s, nil
}
