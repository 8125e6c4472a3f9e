package commands

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/ui/components"
)

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change user configuration",
		Long: `Read and change the user configuration. Keys are dotted paths such as
preferences.defaultBranch or sync.conflictStrategy.`,
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigResetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print a configuration value, or the whole configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			value, ok := cfg.Get(key)
			if !ok {
				return fmt.Errorf("configuration key not found: %s", key)
			}
			if s, isString := value.(string); isString {
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}
			return printJSON(cmd, value)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value. The value is parsed as JSON when possible
(numbers, true/false, arrays, objects) and stored as a string otherwise.`,
		Example: `  base-agents config set preferences.defaultBranch develop
  base-agents config set git.depth 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.SetRaw(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			newOutput(cmd).Success(fmt.Sprintf("Set %s = %s", args[0], args[1]))
			return nil
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key and value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			flat := make(map[string]string)
			flatten("", cfg.All(), flat)

			keys := make([]string, 0, len(flat))
			for k := range flat {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			out := newOutput(cmd)
			for _, k := range keys {
				out.KeyValue(0, k, flat[k])
			}
			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configuration file location and contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := newOutput(cmd)
			status := "defaults (not saved)"
			if cfg.Exists() {
				status = "saved"
			}
			out.KeyValue(0, "Path", cfg.Path())
			out.KeyValue(0, "Status", status)
			out.Newline()
			return printJSON(cmd, cfg.All())
		},
	}
}

func newConfigResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := newOutput(cmd)

			if !yes {
				confirmed, err := components.ConfirmWithIO("Reset configuration to defaults?", false, cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if !confirmed {
					out.Info("Reset cancelled")
					return nil
				}
			}

			if err := cfg.Reset(); err != nil {
				return err
			}
			out.Success("Configuration reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// flatten writes every leaf of v into out under its dotted key
func flatten(prefix string, v any, out map[string]string) {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		out[prefix] = formatValue(v)
		return
	}
	for k, child := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flatten(key, child, out)
	}
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(string(data))
}
