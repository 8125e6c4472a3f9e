package commands

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/project"
	"github.com/base-agents/base-agents/internal/ui"
	"github.com/base-agents/base-agents/internal/utils"
)

// NewCopyToProjectCommand creates the copy-to-project command
func NewCopyToProjectCommand() *cobra.Command {
	var skills, rules, agents, mcp, all bool

	cmd := &cobra.Command{
		Use:   "copy-to-project",
		Short: "Copy shared skills, rules, agents and MCP definitions into this project",
		Long: `Copy the shared asset tree ($BASE_AGENTS_SSOT, default ~/Desktop/base-agents)
into the current project:

  skills  → .claude/skills, .cursor/skills
  rules   → .cursor/rules, .claude/rules
  agents  → .claude/agents
  mcp     → .claude/mcp

Without flags every category is copied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var categories []project.Category
			if !all {
				if skills {
					categories = append(categories, project.Skills)
				}
				if rules {
					categories = append(categories, project.Rules)
				}
				if agents {
					categories = append(categories, project.Agents)
				}
				if mcp {
					categories = append(categories, project.MCP)
				}
			}
			return runCopyToProject(cmd, categories)
		},
	}

	cmd.Flags().BoolVar(&skills, "skills", false, "Copy skills")
	cmd.Flags().BoolVar(&rules, "rules", false, "Copy rules")
	cmd.Flags().BoolVar(&agents, "agents", false, "Copy agents")
	cmd.Flags().BoolVar(&mcp, "mcp", false, "Copy MCP definitions")
	cmd.Flags().BoolVar(&all, "all", false, "Copy every category")

	return cmd
}

func runCopyToProject(cmd *cobra.Command, categories []project.Category) error {
	out := newOutput(cmd)

	ssot, err := utils.GetSSOTDir()
	if err != nil {
		return err
	}
	if !utils.IsDirectory(ssot) {
		return fmt.Errorf("shared asset directory not found: %s", ssot)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	copier := &project.Copier{SSOT: ssot, ProjectRoot: cwd}
	plan := copier.Plan(categories)

	bar := progressbar.NewOptions(project.CountEntries(plan),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Copying"),
		progressbar.OptionSetVisibility(ui.IsTTY(cmd.ErrOrStderr())),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
	copier.OnEntry = func(project.Copy, string) {
		_ = bar.Add(1)
	}

	report, err := copier.Run(plan)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	for _, m := range report.Missing {
		out.Warning(fmt.Sprintf("No %s found in %s", m.Category, m.Source))
	}
	for _, c := range report.Copied {
		out.ListItem(out.Theme().Symbols().Success, fmt.Sprintf("%s → %s", c.Category, c.Dest))
	}

	out.Newline()
	out.Success(fmt.Sprintf("Copied %d entries from %d categories into %s", report.Entries, report.Categories(), cwd))
	return nil
}
