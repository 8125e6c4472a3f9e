package tools

// DefaultTools returns the built-in tool table in declaration order
func DefaultTools() ([]ToolID, map[ToolID]ToolConfig) {
	order := []ToolID{Claude, Cursor, Gemini, OpenCode, Agents}

	configs := map[ToolID]ToolConfig{
		Claude: {
			Name:        "Claude Code",
			DefaultRepo: "https://github.com/anthropics/claude-code-configuration",
			ConfigPath:  "~/.claude",
			Structure: Structure{
				{Name: "skills", Path: "skills"},
				{Name: "agents", Path: "agents"},
				{Name: "commands", Path: "commands"},
				{Name: "mcp", Path: "mcp"},
			},
			FileTypes: []string{".md", ".json"},
			Supported: true,
		},
		Cursor: {
			Name:        "Cursor IDE",
			DefaultRepo: "https://github.com/PatrickJS/awesome-cursorrules",
			ConfigPath:  "~/.cursor/rules",
			Structure: Structure{
				{Name: "rules", Path: ""},
			},
			FileTypes: []string{".cursorrules", ".md"},
			Supported: true,
		},
		Gemini: {
			Name:        "Gemini Code Assist",
			DefaultRepo: "https://github.com/google/gemini-code-assist-configs",
			ConfigPath:  "~/.config/google-gemini-code-assist",
			Structure: Structure{
				{Name: "agents", Path: "agents"},
				{Name: "skills", Path: "skills"},
			},
			FileTypes: []string{".md"},
			Supported: true,
		},
		OpenCode: {
			Name:        "OpenCode",
			DefaultRepo: "https://github.com/opencode/opencode-configs",
			ConfigPath:  "~/.opencode",
			Structure: Structure{
				{Name: "skills", Path: "skills"},
				{Name: "agents", Path: "agents"},
				{Name: "rules", Path: "rules"},
			},
			FileTypes: []string{".md", ".json"},
			Supported: false,
		},
		Agents: {
			Name:        "Agents",
			DefaultRepo: "https://github.com/base-agents/agents-configs",
			ConfigPath:  "~/.agents",
			Structure: Structure{
				{Name: "agents", Path: "agents"},
				{Name: "skills", Path: "skills"},
				{Name: "prompts", Path: "prompts"},
			},
			FileTypes: []string{".md", ".json"},
			Supported: true,
		},
	}

	return order, configs
}

// DefaultAliases returns the built-in alias table in declaration order
func DefaultAliases() ([]ToolID, map[ToolID][]string) {
	order := []ToolID{Claude, Cursor, Gemini, OpenCode, Agents}
	aliases := map[ToolID][]string{
		Claude:   {".claude", "claude-code", "anthropic"},
		Cursor:   {".cursor", "cursor-ide"},
		Gemini:   {".gemini", "gemini-code", "google"},
		OpenCode: {".opencode", "open-code"},
		Agents:   {".agents", "agent"},
	}
	return order, aliases
}
