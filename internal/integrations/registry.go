package integrations

import (
	"strings"

	"github.com/aamad-labs/aamad/internal/convert"
)

// ToolName identifies a supported IDE integration.
type ToolName string

const (
	Cursor     ToolName = "cursor"
	ClaudeCode ToolName = "claude-code"
	VSCode     ToolName = "vscode"
)

// Default is the IDE installed when none is chosen.
const Default = Cursor

// ToolConfig describes how artifacts reach an IDE.
type ToolConfig struct {
	// Label is shown in menus.
	Label string
	// AgentsDir is where the IDE reads agent definitions.
	AgentsDir string
	// Converter produces the IDE's layout from the Cursor tree. Nil means the
	// bundle is used as extracted.
	Converter convert.Converter
}

// AllTools returns every supported IDE in menu order.
func AllTools() []ToolName {
	return []ToolName{Cursor, ClaudeCode, VSCode}
}

var toolRegistry = map[ToolName]ToolConfig{
	Cursor: {
		Label:     "Cursor",
		AgentsDir: ".cursor/agents/",
	},
	ClaudeCode: {
		Label:     "Claude Code",
		AgentsDir: ".claude/agents/",
		Converter: convert.ClaudeCode{},
	},
	VSCode: {
		Label:     "VS Code / GitHub Copilot",
		AgentsDir: ".github/agents/",
		Converter: convert.Copilot{},
	},
}

var aliases = map[string]ToolName{
	"claude_code": ClaudeCode,
	"copilot":     VSCode,
}

// ParseToolName converts a name or alias to a ToolName, returning false if
// it is not supported. Matching ignores case and surrounding space.
func ParseToolName(s string) (ToolName, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := aliases[s]; ok {
		return t, true
	}
	if _, ok := toolRegistry[ToolName(s)]; ok {
		return ToolName(s), true
	}
	return "", false
}

// Config returns the registry entry for t.
func Config(t ToolName) (ToolConfig, bool) {
	cfg, ok := toolRegistry[t]
	return cfg, ok
}

// Converter returns the converter for t, or nil when t installs the bundle as is.
func Converter(t ToolName) convert.Converter {
	return toolRegistry[t].Converter
}

// AgentsDirNote is the AGENTS.md pointer to t's agent definitions.
func AgentsDirNote(t ToolName) string {
	cfg, ok := toolRegistry[t]
	if !ok {
		cfg = toolRegistry[Default]
	}
	return "See `" + cfg.AgentsDir + "` for " + cfg.Label + " agent definitions."
}
