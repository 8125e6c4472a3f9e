package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/cache"
	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/tools"
	"github.com/base-agents/base-agents/internal/utils"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the base-agents directories and default tool registry",
		Long: `Create the root and config directories and write the default tool registry.
An existing registry is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing registry with the defaults")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	out := newOutput(cmd)

	root, err := utils.GetRootDir()
	if err != nil {
		return err
	}
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return err
	}

	for _, dir := range []string{root, configDir} {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := cache.EnsureCacheDirs(); err != nil {
		return err
	}

	registry := tools.NewRegistry(root)
	if utils.FileExists(registry.SnapshotPath()) && !force {
		out.Info("Registry already exists at " + registry.SnapshotPath())
		out.Muted("Use --force to reset it to the defaults")
	} else {
		if err := registry.Persist(); err != nil {
			return err
		}
		out.Success("Wrote default registry to " + registry.SnapshotPath())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Exists() {
		if err := cfg.Save(); err != nil {
			return err
		}
		out.Success("Wrote default configuration to " + cfg.Path())
	}

	logger.Get().Info("initialized", "root", root, "force", force)

	out.Newline()
	out.KeyValue(0, "Root", root)
	out.KeyValue(0, "Config", configDir)
	out.Newline()
	out.Info("Run 'base-agents install <tool>' to install a tool bundle")
	return nil
}
