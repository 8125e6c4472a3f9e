// Package project copies the shared asset tree into the current project's tool directories.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/utils"
)

// Category is a top-level directory of the shared asset tree
type Category string

const (
	Skills Category = "skills"
	Rules  Category = "rules"
	Agents Category = "agents"
	MCP    Category = "mcp"
)

// AllCategories returns every category in copy order
func AllCategories() []Category {
	return []Category{Skills, Rules, Agents, MCP}
}

// destinations lists, per category, the project-relative directories it is copied into
var destinations = map[Category][]string{
	Skills: {filepath.Join(".claude", "skills"), filepath.Join(".cursor", "skills")},
	Rules:  {filepath.Join(".cursor", "rules"), filepath.Join(".claude", "rules")},
	Agents: {filepath.Join(".claude", "agents")},
	MCP:    {filepath.Join(".claude", "mcp")},
}

// Destinations returns the project-relative directories a category is copied into
func Destinations(c Category) []string {
	return destinations[c]
}

// Copy is one source directory copied into one destination directory
type Copy struct {
	Category Category
	Source   string
	Dest     string
}

// Report summarizes a finished run
type Report struct {
	Copied  []Copy
	Missing []Copy
	Entries int
}

// Categories returns how many distinct categories had something copied
func (r *Report) Categories() int {
	seen := make(map[Category]bool)
	for _, c := range r.Copied {
		seen[c.Category] = true
	}
	return len(seen)
}

// Copier copies categories from the asset tree into a project
type Copier struct {
	SSOT        string
	ProjectRoot string

	// OnEntry is called after each top-level entry is copied
	OnEntry func(c Copy, name string)
}

// Plan lists the copies for the selected categories. An empty selection means all.
func (p *Copier) Plan(categories []Category) []Copy {
	if len(categories) == 0 {
		categories = AllCategories()
	}

	var plan []Copy
	for _, category := range categories {
		for _, dest := range destinations[category] {
			plan = append(plan, Copy{
				Category: category,
				Source:   filepath.Join(p.SSOT, string(category)),
				Dest:     filepath.Join(p.ProjectRoot, dest),
			})
		}
	}
	return plan
}

// CountEntries returns how many top-level entries the plan will copy
func CountEntries(plan []Copy) int {
	total := 0
	for _, c := range plan {
		names, err := entries(c.Source)
		if err == nil {
			total += len(names)
		}
	}
	return total
}

// Run executes plan. Missing source directories are reported, not treated as errors.
func (p *Copier) Run(plan []Copy) (*Report, error) {
	log := logger.Get()
	report := &Report{}

	for _, c := range plan {
		if !utils.IsDirectory(c.Source) {
			log.Warn("source not found", "category", c.Category, "source", c.Source)
			report.Missing = append(report.Missing, c)
			continue
		}

		n, err := p.copyEntries(c)
		report.Entries += n
		if err != nil {
			return report, fmt.Errorf("failed to copy %s: %w", c.Source, err)
		}
		report.Copied = append(report.Copied, c)
		log.Debug("copied category", "category", c.Category, "dest", c.Dest, "entries", n)
	}

	return report, nil
}

func (p *Copier) copyEntries(c Copy) (int, error) {
	if err := utils.EnsureDir(c.Dest); err != nil {
		return 0, err
	}

	names, err := entries(c.Source)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, name := range names {
		src := filepath.Join(c.Source, name)
		dst := filepath.Join(c.Dest, name)

		if utils.IsDirectory(src) {
			err = utils.CopyDir(src, dst)
		} else {
			err = utils.CopyFile(src, dst, true)
		}
		if err != nil {
			return copied, err
		}

		copied++
		if p.OnEntry != nil {
			p.OnEntry(c, name)
		}
	}
	return copied, nil
}

// entries lists a directory's top-level entries, leaving out README.md
func entries(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range dirEntries {
		if e.Name() == constants.ReadmeFile {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
