package template

import (
	"fmt"
	"strings"
)

// Type is the kind of configuration file a template produces
type Type string

const (
	Skill   Type = "skill"
	Agent   Type = "agent"
	MCP     Type = "mcp"
	Command Type = "command"
)

// AllTypes returns every template type in display order
func AllTypes() []Type {
	return []Type{Skill, Agent, MCP, Command}
}

// ParseType validates a template type name
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	names := make([]string, 0, 4)
	for _, t := range AllTypes() {
		names = append(names, string(t))
	}
	return "", fmt.Errorf("invalid template type: %s (valid types are: %s)", s, strings.Join(names, ", "))
}

// dir is the directory under the root that holds generated files of this type
func (t Type) dir() string {
	switch t {
	case Skill:
		return "skills"
	case Agent:
		return "agents"
	case MCP:
		return "mcp"
	default:
		return "commands"
	}
}

// fileName is the name of the generated file inside its directory
func (t Type) fileName() string {
	switch t {
	case Skill:
		return "SKILL.md"
	case Agent:
		return "AGENT.md"
	case MCP:
		return "mcp.json"
	default:
		return "COMMAND.md"
	}
}

// Options describe the file to generate
type Options struct {
	Type        Type
	Name        string
	Description string
	Author      string
	Tags        []string

	// Output overrides the default destination path
	Output string
}

func (o Options) description() string {
	if o.Description != "" {
		return o.Description
	}
	return "A " + o.Name
}
