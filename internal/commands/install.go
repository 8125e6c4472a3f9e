package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/git"
	"github.com/base-agents/base-agents/internal/installer"
	"github.com/base-agents/base-agents/internal/ui/components"
)

// NewInstallCommand creates the install command
func NewInstallCommand() *cobra.Command {
	var opts installer.Options

	cmd := &cobra.Command{
		Use:   "install <tool>",
		Short: "Install a tool's configuration bundle from git",
		Long: `Clone (or update) the tool's configuration repository into the base-agents
root and copy it into the tool's config directory.`,
		Example: `  base-agents install claude
  base-agents install cursor -r https://github.com/me/cursor-rules -b dev`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Repo, "repo", "r", "", "Repository URL (defaults to the tool's repository)")
	cmd.Flags().StringVarP(&opts.Branch, "branch", "b", "", "Branch to install (defaults to preferences.defaultBranch)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Remove any existing installation first")

	return cmd
}

func runInstall(cmd *cobra.Command, name string, opts installer.Options) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	out := newOutput(cmd)

	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := loadStore()
	if err != nil {
		return err
	}

	id, err := registry.MustResolve(name)
	if err != nil {
		return err
	}
	if !registry.IsSupported(id) {
		out.Warning(fmt.Sprintf("%s is not fully supported yet", id))
	}

	if opts.Branch == "" {
		opts.Branch = cfg.DefaultBranch()
	}

	client := git.NewClient(git.WithDepth(cfg.GitDepth()), git.WithSingleBranch(cfg.SingleBranch()))
	inst := installer.New(registry, client, store)

	outcome, err := components.RunWithSpinner(fmt.Sprintf("Installing %s", id), cmd.OutOrStdout(),
		func() (*installer.Outcome, error) {
			return inst.Install(ctx, string(id), opts)
		})
	if err != nil {
		return err
	}

	out.Success(outcome.Git.Message)
	if outcome.CopyErr != nil {
		out.Warning(fmt.Sprintf("Could not copy to %s: %v", outcome.ConfigDir, outcome.CopyErr))
	}

	out.Newline()
	out.KeyValue(2, "Tool", outcome.Config.Name)
	out.KeyValue(2, "Repository", outcome.Repo)
	out.KeyValue(2, "Branch", outcome.Branch)
	if outcome.Git.Commit != "" {
		out.KeyValue(2, "Commit", outcome.Git.Commit)
	}
	out.KeyValue(2, "Version", outcome.Version)
	out.KeyValue(2, "Stored in", outcome.StorageDir)
	out.KeyValue(2, "Config dir", outcome.ConfigDir)
	return nil
}
