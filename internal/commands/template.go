package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/template"
	"github.com/base-agents/base-agents/internal/utils"
	"github.com/base-agents/base-agents/internal/validation"
)

// NewTemplateCommand creates the template command
func NewTemplateCommand() *cobra.Command {
	var opts template.Options

	cmd := &cobra.Command{
		Use:   "template <skill|agent|mcp|command> <name>",
		Short: "Scaffold a new skill, agent, MCP server or command",
		Long: `Generate a new definition file from a template. A file named
./templates/<type>-template.md replaces the built-in template.`,
		Example: `  base-agents template skill code-review -d "Reviews pull requests"
  base-agents template mcp github-server --tag github --tag api`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Description (defaults to \"A <name>\")")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author name")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tag (repeatable)")

	return cmd
}

func runTemplate(cmd *cobra.Command, typeName, name string, opts template.Options) error {
	out := newOutput(cmd)

	t, err := template.ParseType(typeName)
	if err != nil {
		return err
	}
	opts.Type = t

	if !validation.IsValidTemplateName(name) {
		sanitized := validation.SanitizeTemplateName(name)
		if sanitized == "" {
			return fmt.Errorf("invalid template name: %q", name)
		}
		out.Warning(fmt.Sprintf("Template name %q is not kebab-case, using %q", name, sanitized))
		name = sanitized
	}
	opts.Name = name

	root, err := utils.GetRootDir()
	if err != nil {
		return err
	}

	result, err := template.NewEngine(root).Generate(opts)
	if err != nil {
		return err
	}

	store, err := loadStore()
	if err != nil {
		return err
	}
	if err := store.RecordTemplate(string(t), name); err != nil {
		logger.Get().Warn("failed to record template", "name", name, "error", err)
	}

	out.Success(result.Message)
	out.KeyValue(2, "Path", result.Path)
	return nil
}
