package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/config"
	"github.com/base-agents/base-agents/internal/state"
	"github.com/base-agents/base-agents/internal/tools"
	"github.com/base-agents/base-agents/internal/ui"
)

// newOutput creates styled output bound to the command's writers
func newOutput(cmd *cobra.Command) *ui.Output {
	return ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// printJSON writes v as indented JSON to the command's output
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// loadRegistry returns the registry for the current root, restored from disk when persisted
func loadRegistry() (*tools.Registry, error) {
	registry, err := tools.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tool registry: %w", err)
	}
	return registry, nil
}

// loadConfig returns the user configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// loadStore returns the installation state store
func loadStore() (*state.Store, error) {
	store, err := state.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open state: %w", err)
	}
	return store, nil
}
