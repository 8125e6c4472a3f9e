package sync

import "github.com/base-agents/base-agents/internal/tools"

// CommonCategories returns the categories both structures map to a dedicated
// sub-directory, in a's declaration order. Categories living at a tool's
// config root (empty path) are never merged.
func CommonCategories(a, b tools.Structure) []string {
	common := []string{}
	for _, c := range a {
		if c.Path == "" {
			continue
		}
		if path, ok := b.Get(c.Name); ok && path != "" {
			common = append(common, c.Name)
		}
	}
	return common
}
