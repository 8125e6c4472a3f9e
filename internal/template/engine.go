// Package template scaffolds new skill, agent, command and MCP definition files.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/base-agents/base-agents/internal/utils"
)

// Frontmatter is the YAML header of generated markdown files
type Frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Result reports where a template was written
type Result struct {
	Path         string
	FromDefaults bool
	Message      string
}

// Engine renders templates into files
type Engine struct {
	// Root is the base-agents root used for default output paths
	Root string

	// TemplatesDir holds user overrides named <type>-template.md
	TemplatesDir string

	now func() time.Time
}

// NewEngine creates an engine writing under root and reading overrides from ./templates
func NewEngine(root string) *Engine {
	return &Engine{
		Root:         root,
		TemplatesDir: "templates",
		now:          time.Now,
	}
}

// OutputPath returns where a template of the given options is written
func (e *Engine) OutputPath(opts Options) string {
	if opts.Output != "" {
		return opts.Output
	}
	return filepath.Join(e.Root, opts.Type.dir(), opts.Name, opts.Type.fileName())
}

// Generate renders and writes the template described by opts
func (e *Engine) Generate(opts Options) (*Result, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}

	var (
		content      []byte
		fromDefaults bool
		err          error
	)

	override := filepath.Join(e.TemplatesDir, string(opts.Type)+"-template.md")
	if utils.FileExists(override) {
		raw, readErr := os.ReadFile(override)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", override, readErr)
		}
		content = []byte(e.fill(string(raw), opts))
		if bytes.HasPrefix(content, []byte("---\n")) {
			if _, _, err := ParseFrontmatter(content); err != nil {
				return nil, fmt.Errorf("template %s: %w", override, err)
			}
		}
	} else {
		fromDefaults = true
		content, err = e.renderDefault(opts)
		if err != nil {
			return nil, err
		}
	}

	outputPath := e.OutputPath(opts)
	if err := utils.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}

	msg := fmt.Sprintf("Template %q created successfully", opts.Name)
	if fromDefaults {
		msg = fmt.Sprintf("Template %q created from defaults", opts.Name)
	}
	return &Result{Path: outputPath, FromDefaults: fromDefaults, Message: msg}, nil
}

func (e *Engine) renderDefault(opts Options) ([]byte, error) {
	if opts.Type == MCP {
		return e.renderMCP(opts)
	}

	front, err := yaml.Marshal(Frontmatter{
		Name:        opts.Name,
		Description: opts.description(),
		Author:      opts.Author,
		Tags:        opts.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(front)
	buf.WriteString("---\n\n")
	buf.WriteString(e.fill(defaultBody(opts.Type), opts))
	return buf.Bytes(), nil
}

func (e *Engine) renderMCP(opts Options) ([]byte, error) {
	tags := opts.Tags
	if tags == nil {
		tags = []string{}
	}

	def := MCPDefinition{
		Name:        opts.Name,
		Description: opts.description(),
		Version:     "1.0.0",
		Author:      opts.Author,
		Tags:        tags,
		Created:     e.now().UTC().Format(time.RFC3339),
		Server: MCPServer{
			Command: "node",
			Args:    []string{"path/to/server.js"},
			Env:     map[string]string{},
		},
		Capabilities: MCPCapabilities{
			Resources: map[string]any{},
			Tools:     []string{},
			Prompts:   []string{},
		},
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render mcp definition: %w", err)
	}
	return append(data, '\n'), nil
}

// fill substitutes the {{NAME}}-style placeholders
func (e *Engine) fill(tmpl string, opts Options) string {
	now := e.now()
	r := strings.NewReplacer(
		"{{NAME}}", opts.Name,
		"{{DESCRIPTION}}", opts.description(),
		"{{AUTHOR}}", opts.Author,
		"{{DATE}}", now.UTC().Format(time.RFC3339),
		"{{YEAR}}", strconv.Itoa(now.Year()),
		"{{TAGS}}", strings.Join(opts.Tags, ", "),
	)
	return r.Replace(tmpl)
}

// ParseFrontmatter splits a markdown document into its YAML header and body
func ParseFrontmatter(data []byte) (*Frontmatter, string, error) {
	text := string(data)
	if !strings.HasPrefix(text, "---\n") {
		return nil, text, fmt.Errorf("missing frontmatter")
	}

	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, text, fmt.Errorf("unterminated frontmatter")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, text, fmt.Errorf("invalid frontmatter: %w", err)
	}

	body := strings.TrimPrefix(rest[end+len("\n---"):], "\n")
	return &fm, strings.TrimPrefix(body, "\n"), nil
}
