package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/buildinfo"
	"github.com/base-agents/base-agents/internal/commands"
	"github.com/base-agents/base-agents/internal/git"
	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/ui"
)

func main() {
	log := logger.Get()
	cwd, _ := os.Getwd()
	log.Info("command invoked", "version", buildinfo.Version, "command", strings.Join(os.Args[1:], " "), "cwd", cwd)

	rootCmd := &cobra.Command{
		Use:   "base-agents",
		Short: "base-agents - Manage configuration for AI coding assistants",
		Long: `base-agents installs configuration bundles (skills, rules, agents, MCP servers)
for AI coding assistants from git, keeps them in sync between tools, and copies
shared assets into projects.`,
		Version: buildinfo.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			git.SetSSHKeyPath(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().String("ssh-key", "",
		"Path to SSH private key file or key content for git operations (can also use BASE_AGENTS_SSH_KEY environment variable)")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewInstallCommand())
	rootCmd.AddCommand(commands.NewSyncCommand())
	rootCmd.AddCommand(commands.NewTemplateCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewRegistryCommand())
	rootCmd.AddCommand(commands.NewCopyToProjectCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		ui.NewOutput(os.Stdout, os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
