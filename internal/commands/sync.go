package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/sync"
)

// NewSyncCommand creates the sync command
func NewSyncCommand() *cobra.Command {
	var conflict string

	cmd := &cobra.Command{
		Use:   "sync <source> <target> [targets...]",
		Short: "Copy common configuration from one tool to others",
		Long: `Copy every category two tools have in common (skills, agents, ...) from the
source tool's installed bundle (<root>/<tool>, written by 'install') into each
target tool's config directory.

Conflict strategies:
  ask        ` + sync.StrategyAsk.Description() + `
  overwrite  ` + sync.StrategyOverwrite.Description() + `
  skip       ` + sync.StrategySkip.Description(),
		Example: `  base-agents sync claude gemini
  base-agents sync claude-code .agents cursor -c overwrite`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, args, conflict)
		},
	}

	cmd.Flags().StringVarP(&conflict, "conflict", "c", "", "Conflict strategy: ask, overwrite or skip (defaults to sync.conflictStrategy)")

	return cmd
}

func runSync(cmd *cobra.Command, args []string, conflict string) error {
	out := newOutput(cmd)

	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	ids, err := registry.ResolveAll(args)
	if err != nil {
		return err
	}
	if len(ids) < 2 {
		return errors.New("at least one target tool is required")
	}

	if conflict == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		conflict = cfg.ConflictStrategy()
	}
	strategy, err := sync.ParseStrategy(conflict)
	if err != nil {
		return err
	}

	source, targets := ids[0], ids[1:]
	targetNames := make([]string, len(targets))
	for i, t := range targets {
		targetNames[i] = string(t)
	}
	out.Info(fmt.Sprintf("Syncing %s → %s (%s)", source, strings.Join(targetNames, ", "), strategy))

	results := sync.New(registry).Sync(source, targets, strategy)

	for _, r := range results {
		if r.HasErrors() {
			out.ErrorItem(fmt.Sprintf("%s: %d copied, %d skipped, %d errors", r.Target, r.FilesCopied, r.Skipped, len(r.Errors)))
			continue
		}
		out.ListItem(out.Theme().Symbols().Success, fmt.Sprintf("%s: %d copied, %d skipped", r.Target, r.FilesCopied, r.Skipped))
	}

	out.Newline()
	out.Println(sync.Summarize(results))

	if sync.AnyErrors(results) {
		return errors.New("sync completed with errors")
	}
	return nil
}
