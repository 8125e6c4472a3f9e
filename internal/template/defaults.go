package template

const skillBody = `# {{NAME}}

{{DESCRIPTION}}

## When to Use

Use this skill when:
- Working with {{NAME}}
- Need to {{NAME}}

## Instructions

1. First step
2. Second step
3. Third step

## Examples

### Example 1

Description of example 1.

` + "```" + `
Example code or usage
` + "```" + `

## Notes

Additional notes and considerations.
`

const agentBody = `# {{NAME}} Agent

{{DESCRIPTION}}

## Capabilities

- Capability 1
- Capability 2
- Capability 3

## Usage

` + "```bash" + `
base-agents run {{NAME}}
` + "```" + `

## Configuration

Add to your ` + "`AGENT.md`" + `:

` + "```markdown" + `
## {{NAME}}

Description of when this agent should be used.
` + "```" + `
`

const commandBody = `# {{NAME}} Command

{{DESCRIPTION}}

## Usage

` + "```bash" + `
base-agents {{NAME}} [options]
` + "```" + `

## Options

- ` + "`-h, --help`" + ` - Show help
- ` + "`-v, --version`" + ` - Show version

## Examples

` + "```bash" + `
# Example 1
base-agents {{NAME}}

# Example 2
base-agents {{NAME}} --option value
` + "```" + `

## Output

Description of what this command outputs.
`

func defaultBody(t Type) string {
	switch t {
	case Skill:
		return skillBody
	case Agent:
		return agentBody
	default:
		return commandBody
	}
}

// MCPServer describes how to launch an MCP server
type MCPServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// MCPCapabilities lists what an MCP server offers
type MCPCapabilities struct {
	Resources map[string]any `json:"resources"`
	Tools     []string       `json:"tools"`
	Prompts   []string       `json:"prompts"`
}

// MCPDefinition is the generated mcp.json document
type MCPDefinition struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Version      string          `json:"version"`
	Author       string          `json:"author"`
	Tags         []string        `json:"tags"`
	Created      string          `json:"created"`
	Server       MCPServer       `json:"server"`
	Capabilities MCPCapabilities `json:"capabilities"`
}
