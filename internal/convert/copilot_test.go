package convert

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopilot_Run(t *testing.T) {
	dest := t.TempDir()

	created, err := Run(context.Background(), Copilot{}, Options{Source: fixture, Dest: dest, MergeSettings: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		".github/instructions/aamad-core.instructions.md",
		".github/instructions/development-workflow.instructions.md",
		".github/instructions/epics-index.instructions.md",
		".github/instructions/adapter-crewai.instructions.md",
		".github/agents/product-mgr.agent.md",
		".github/agents/backend-eng.agent.md",
		".github/agents/integration-eng.agent.md",
		".github/agents/qa-eng.agent.md",
		".github/prompts/phase-1-define.prompt.md",
		".vscode/settings.json",
	}, rel(t, dest, created))
}

func TestCopilot_Instructions(t *testing.T) {
	dest := t.TempDir()
	_, err := Copilot{}.ConvertRules(context.Background(), filepath.Join(fixture, ".cursor/rules"), dest, StyleSplit)
	require.NoError(t, err)

	tests := []struct {
		rule        string
		applyTo     string
		name        string
		description string
	}{
		{"aamad-core", "**", "AAMAD Core Rules", "Core, framework-agnostic rules for AAMAD; applies to all personas."},
		{"development-workflow", "project-context/**/*.md", "Development Workflow Rules", "Define → Build → Deliver workflow for AAMAD projects."},
		{"epics-index", "**", "Epics Index", "Maps epics to personas and actions."},
		{"adapter-crewai", "**", "Adapter Crewai Rules", ""},
	}
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			doc := parseOutput(t, filepath.Join(dest, ".github/instructions", tt.rule+".instructions.md"))
			assert.Equal(t, tt.applyTo, doc.Header["applyTo"])
			assert.Equal(t, tt.name, doc.Header["name"])
			assert.Equal(t, tt.description, doc.Header["description"])
			assert.NotContains(t, doc.Body, ".cursor/")
		})
	}
}

func TestCopilot_InstructionLinks(t *testing.T) {
	dest := t.TempDir()
	_, err := Copilot{}.ConvertRules(context.Background(), filepath.Join(fixture, ".cursor/rules"), dest, StyleSplit)
	require.NoError(t, err)

	raw := readFile(t, filepath.Join(dest, ".github/instructions/development-workflow.instructions.md"))
	assert.Contains(t, raw, "[epics](.github/instructions/epics-index.instructions.md)")
	assert.Contains(t, raw, "\n---\n\n## Workflow")

	core := readFile(t, filepath.Join(dest, ".github/instructions/aamad-core.instructions.md"))
	assert.Contains(t, core, "`.github/instructions/adapter-registry.instructions.md`")
	assert.True(t, strings.HasPrefix(core, "---\napplyTo: "), core)
}

func TestCopilot_Agents(t *testing.T) {
	dest := t.TempDir()
	created, err := Copilot{}.ConvertAgents(context.Background(), filepath.Join(fixture, ".cursor/agents"), dest)
	require.NoError(t, err)
	assert.Len(t, created, 4)
	assert.NoFileExists(t, filepath.Join(dest, ".github/agents/personas.agent.md"))

	backend := parseOutput(t, filepath.Join(dest, ".github/agents/backend-eng.agent.md"))
	assert.Equal(t, "Backend Developer", backend.Header["name"])
	assert.Equal(t, "Implements the MVP CrewAI backend.", backend.Header["description"])
	assert.Equal(t, []any{"editFiles", "terminalLastCommand", "search", "codebase"}, backend.Header["tools"])
	assert.NotContains(t, backend.Header, "handoffs")
	assert.Contains(t, backend.Body, ".github/instructions/adapter-crewai.instructions.md")

	product := parseOutput(t, filepath.Join(dest, ".github/agents/product-mgr.agent.md"))
	assert.Equal(t, "Product Mgr", product.Header["name"])
	assert.Contains(t, product.Header["tools"], "fetch")

	integration := parseOutput(t, filepath.Join(dest, ".github/agents/integration-eng.agent.md"))
	handoffs, ok := integration.Header["handoffs"].([]any)
	require.True(t, ok, "handoffs should be a list")
	require.Len(t, handoffs, 1)
	first, ok := handoffs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "qa-eng", first["agent"])
	assert.Equal(t, "→ Run QA Tests", first["label"])
	assert.Equal(t, false, first["send"])

	qa := parseOutput(t, filepath.Join(dest, ".github/agents/qa-eng.agent.md"))
	assert.Equal(t, "Qa Eng", qa.Header["name"])
	assert.Equal(t, "AAMAD agent persona.", qa.Header["description"])
}

func TestCopilot_AgentDescriptionVerbatim(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"backend-eng.md": "---\nagent:\n  id: backend-eng\n  role: \"Implements backend.\"\n---\nBody",
	})
	dest := t.TempDir()

	_, err := Copilot{}.ConvertAgents(context.Background(), src, dest)
	require.NoError(t, err)

	doc := parseOutput(t, filepath.Join(dest, ".github/agents/backend-eng.agent.md"))
	assert.Equal(t, "Implements backend.", doc.Header["description"])
	assert.NotContains(t, doc.Header["tools"], "fetch")
	assert.Equal(t, "Body", doc.Body)
}

func TestCopilot_Prompt(t *testing.T) {
	dest := t.TempDir()
	created, err := Copilot{}.ConvertPrompt(context.Background(), filepath.Join(fixture, ".cursor/prompts"), dest)
	require.NoError(t, err)
	require.Len(t, created, 1)

	raw := readFile(t, created[0])
	assert.Contains(t, raw, "agent: product-mgr\n---\nGenerate Market Research")

	doc := parseOutput(t, created[0])
	assert.Equal(t, phaseOneDescription, doc.Header["description"])
}

func TestCopilot_PromptMissing(t *testing.T) {
	created, err := Copilot{}.ConvertPrompt(context.Background(), t.TempDir(), t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, created)
}

func TestConvertPrompt_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, c := range []Converter{ClaudeCode{}, Copilot{}} {
		t.Run(c.Name(), func(t *testing.T) {
			dest := t.TempDir()
			created, err := c.ConvertPrompt(ctx, filepath.Join(fixture, ".cursor/prompts"), dest)
			assert.ErrorIs(t, err, context.Canceled)
			assert.Empty(t, created)
			assert.Zero(t, countFiles(t, dest))
		})
	}
}

func TestCopilot_Planned(t *testing.T) {
	paths := Copilot{}.Planned("/project", StyleSingle)
	assert.Len(t, paths, 5+7+2)
	assert.Equal(t, filepath.Join("/project", ".vscode/settings.json"), paths[len(paths)-1])
}
