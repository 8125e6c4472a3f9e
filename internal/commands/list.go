package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/state"
	"github.com/base-agents/base-agents/internal/tools"
	"github.com/base-agents/base-agents/internal/ui"
	"github.com/base-agents/base-agents/internal/utils"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [tool]",
		Short: "List known tools, or show details for one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			store, err := loadStore()
			if err != nil {
				return err
			}
			out := newOutput(cmd)

			if len(args) == 1 {
				id, err := registry.MustResolve(args[0])
				if err != nil {
					return err
				}
				return showTool(out, registry, store, id)
			}
			return listTools(out, registry)
		},
	}
}

func listTools(out *ui.Output, registry *tools.Registry) error {
	symbols := out.Theme().Symbols()

	out.Header("Available tools")
	out.Newline()

	ids := registry.IDs()
	for _, id := range ids {
		cfg, _ := registry.Get(id)

		marker := out.SuccessText(symbols.Success)
		if !cfg.Supported {
			marker = out.MutedText(symbols.Pending)
		}
		out.Printf("%s %s %s\n", marker, out.BoldText(string(id)), out.MutedText("("+cfg.Name+")"))

		out.KeyValue(4, "Repository", cfg.DefaultRepo)
		out.KeyValue(4, "Config path", cfg.ConfigPath)
		if aliases := registry.Aliases(id); len(aliases) > 0 {
			out.KeyValue(4, "Aliases", strings.Join(aliases, ", "))
		}
		if storage := registry.StorageDir(id); utils.IsDirectory(storage) {
			out.KeyValue(4, "Installed", storage)
		}
		out.Newline()
	}

	out.Muted(fmt.Sprintf("%d/%d tools supported", len(registry.SupportedTools()), len(ids)))
	return nil
}

func showTool(out *ui.Output, registry *tools.Registry, store *state.Store, id tools.ToolID) error {
	cfg, _ := registry.Get(id)

	out.Header(fmt.Sprintf("%s (%s)", cfg.Name, id))
	out.Newline()

	supported := "yes"
	if !cfg.Supported {
		supported = "no"
	}
	out.KeyValue(2, "Supported", supported)
	out.KeyValue(2, "Repository", cfg.DefaultRepo)
	out.KeyValue(2, "Config path", cfg.ConfigPath)
	if aliases := registry.Aliases(id); len(aliases) > 0 {
		out.KeyValue(2, "Aliases", strings.Join(aliases, ", "))
	}
	if len(cfg.FileTypes) > 0 {
		out.KeyValue(2, "File types", strings.Join(cfg.FileTypes, ", "))
	}

	out.Newline()
	out.Section("Structure")
	for _, c := range cfg.Structure {
		path := c.Path
		if path == "" {
			path = "(root)"
		}
		out.KeyValue(2, c.Name, path)
	}

	out.Newline()
	out.Section("Installation")
	info, err := store.Get(string(id))
	if err != nil {
		return err
	}
	storage := registry.StorageDir(id)
	if info == nil && !utils.IsDirectory(storage) {
		out.Muted("  Not installed")
		return nil
	}
	out.KeyValue(2, "Location", storage)
	if info != nil {
		out.KeyValue(2, "Repository", info.Repo)
		out.KeyValue(2, "Branch", info.Branch)
		if info.Commit != "" {
			out.KeyValue(2, "Commit", info.Commit)
		}
		out.KeyValue(2, "Version", info.Version)
		out.KeyValue(2, "Last update", info.LastUpdate.Format("2006-01-02 15:04:05"))
	}
	return nil
}
