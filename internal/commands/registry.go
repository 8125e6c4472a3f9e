package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/tools"
	"github.com/base-agents/base-agents/internal/validation"
)

// NewRegistryCommand creates the registry command and its subcommands
func NewRegistryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Change the tool registry",
	}

	cmd.AddCommand(newRegistryAddCommand())
	cmd.AddCommand(newRegistrySetRepoCommand())

	return cmd
}

func newRegistryAddCommand() *cobra.Command {
	var (
		file    string
		aliases []string
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add or replace a tool from a TOML manifest",
		Long: `Add a tool to the registry, or replace an existing one, from a TOML manifest:

  name = "My Tool"
  default_repo = "https://github.com/me/my-tool-configs"
  config_path = "~/.mytool"
  file_types = [".md"]
  aliases = ["mt"]

  [structure]
  skills = "skills"
  rules = ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := tools.LoadManifest(file)
			if err != nil {
				return err
			}

			id := tools.ToolID(args[0])
			if manifest.ID != "" && manifest.ID != args[0] {
				return fmt.Errorf("manifest id %q does not match %q", manifest.ID, args[0])
			}
			manifest.ID = args[0]

			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			_, existed := registry.Get(id)
			registry.AddTool(id, manifest.ToolConfig())

			all := slices.Concat(manifest.Aliases, aliases)
			if len(all) > 0 {
				registry.SetAliases(id, all)
			}
			if err := registry.Persist(); err != nil {
				return err
			}

			logger.Get().Info("tool added", "tool", id, "replaced", existed)
			out := newOutput(cmd)
			if existed {
				out.Success(fmt.Sprintf("Replaced tool %s", id))
			} else {
				out.Success(fmt.Sprintf("Added tool %s", id))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "TOML manifest describing the tool")
	cmd.Flags().StringArrayVar(&aliases, "alias", nil, "Extra alias (repeatable)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newRegistrySetRepoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-repo <tool> <url>",
		Short: "Change a tool's default repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.GitURL(args[1]); err != nil {
				return err
			}

			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			id, err := registry.MustResolve(args[0])
			if err != nil {
				return err
			}
			if !registry.UpdateRepositoryURL(id, args[1]) {
				return fmt.Errorf("%w: %s", tools.ErrUnknownTool, args[0])
			}
			if err := registry.Persist(); err != nil {
				return err
			}

			newOutput(cmd).Success(fmt.Sprintf("Repository for %s set to %s", id, args[1]))
			return nil
		},
	}
}
