package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/aamad-labs/aamad/internal/catalog"
	"github.com/aamad-labs/aamad/internal/frontmatter"
	"github.com/aamad-labs/aamad/internal/logger"
	"github.com/aamad-labs/aamad/internal/pathrewrite"
)

const (
	instructionsDir    = ".github/instructions"
	copilotAgentsDir   = ".github/agents"
	copilotPromptsDir  = ".github/prompts"
	vscodeSettingsPath = ".vscode/settings.json"

	instructionsExt = "instructions.md"
	copilotFetch    = "fetch"
)

// copilotTools is the default Copilot tool list, in the order it is emitted.
var copilotTools = []string{"editFiles", "terminalLastCommand", "search", "codebase", copilotFetch}

// copilotSettings are the values AAMAD owns in .vscode/settings.json, in the
// order they are appended to a new document.
var copilotSettings = []Setting{
	{Path: []string{"chat.agent.enabled"}, Value: true},
	{Path: []string{"chat.useAgentsMdFile"}, Value: true},
	{Path: []string{"chat.includeApplyingInstructions"}, Value: true},
	{Path: []string{"chat.includeReferencedInstructions"}, Value: true},
	{Path: []string{"chat.instructionsFilesLocations"}, Value: []string{instructionsDir}},
	{Path: []string{"chat.agentFilesLocations"}, Value: []string{copilotAgentsDir}},
}

var copilotRewriter = pathrewrite.New(
	catalog.RulesDir+"/", catalog.RuleExt,
	instructionsDir+"/", instructionsExt,
)

// Copilot converts to the VS Code / GitHub Copilot layout under .github/ and .vscode/.
type Copilot struct{}

var _ Converter = Copilot{}

// Name implements Converter.
func (Copilot) Name() string { return "vscode" }

// OutputRoots implements Converter. Only the subtrees AAMAD writes are
// checked, so an existing .github/workflows does not block a conversion.
func (Copilot) OutputRoots() []string {
	return []string{instructionsDir, copilotAgentsDir, copilotPromptsDir}
}

type instructionHeader struct {
	ApplyTo     string `yaml:"applyTo"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ConvertRules writes .github/instructions/<name>.instructions.md per rule.
// Copilot has a single layout, so style is ignored.
func (Copilot) ConvertRules(ctx context.Context, rulesDir, dest string, _ RuleStyle) ([]string, error) {
	var created []string

	for _, name := range catalog.Rules {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		text, ok, err := readSource(filepath.Join(rulesDir, name+"."+catalog.RuleExt))
		if err != nil {
			return created, err
		}
		if !ok {
			logger.L.WithField("rule", name).Debug("rule source missing, skipping")
			continue
		}

		doc := frontmatter.Parse(text)
		fm, err := marshalHeader(instructionHeader{
			ApplyTo:     frontmatter.ApplyTo(doc.Header),
			Name:        catalog.RuleDisplayName(name),
			Description: frontmatter.Description(doc.Header),
		})
		if err != nil {
			return created, fmt.Errorf("rule %s: %w", name, err)
		}

		out := filepath.Join(dest, instructionsDir, name+"."+instructionsExt)
		if err := writeFile(out, withHeader(fm, "\n", copilotRewriter.Rewrite(doc.Body))); err != nil {
			return created, err
		}
		created = append(created, out)
	}

	return created, nil
}

type copilotAgentHeader struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Tools       []string          `yaml:"tools"`
	Handoffs    []catalog.Handoff `yaml:"handoffs,omitempty"`
}

// agentTools returns the default tool list minus fetch for build personas.
func agentTools(id string) []string {
	tools := slices.Clone(copilotTools)
	if catalog.RestrictsFetch(id) {
		tools = slices.DeleteFunc(tools, func(t string) bool { return t == copilotFetch })
	}
	return tools
}

// ConvertAgents writes .github/agents/<id>.agent.md for every catalog agent found.
func (Copilot) ConvertAgents(ctx context.Context, agentsDir, dest string) ([]string, error) {
	var created []string

	for _, id := range catalog.Agents {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		text, ok, err := readSource(filepath.Join(agentsDir, id+"."+catalog.AgentExt))
		if err != nil {
			return created, err
		}
		if !ok {
			logger.L.WithField("agent", id).Debug("agent source missing, skipping")
			continue
		}

		doc := parseAgent(text, id)
		name := frontmatter.AgentName(doc.Header)
		if name == "" {
			name = catalog.TitleCase(id)
		}

		fm, err := marshalHeader(copilotAgentHeader{
			Name:        name,
			Description: frontmatter.AgentDescription(doc.Header),
			Tools:       agentTools(id),
			Handoffs:    catalog.Handoffs(id),
		})
		if err != nil {
			return created, fmt.Errorf("agent %s: %w", id, err)
		}

		out := filepath.Join(dest, copilotAgentsDir, id+".agent.md")
		if err := writeFile(out, withHeader(fm, "\n", copilotRewriter.Rewrite(doc.Body))); err != nil {
			return created, err
		}
		created = append(created, out)
	}

	return created, nil
}

// ConvertPrompt writes .github/prompts/phase-1-define.prompt.md.
func (Copilot) ConvertPrompt(ctx context.Context, promptsDir, dest string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, ok, err := readSource(filepath.Join(promptsDir, catalog.PromptSource))
	if err != nil || !ok {
		return nil, err
	}

	fm, err := marshalHeader(promptHeader{
		Description: phaseOneDescription,
		Agent:       catalog.PromptAgent,
	})
	if err != nil {
		return nil, err
	}

	out := filepath.Join(dest, copilotPromptsDir, catalog.PromptTarget+".prompt.md")
	if err := writeFile(out, withHeader(fm, "", text)); err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// WriteSettings writes or merges .vscode/settings.json.
func (Copilot) WriteSettings(dest string, merge bool) (string, error) {
	path := filepath.Join(dest, vscodeSettingsPath)
	if err := WriteSettings(path, copilotSettings, merge); err != nil {
		return "", err
	}
	return path, nil
}

// Planned implements Converter.
func (Copilot) Planned(dest string, _ RuleStyle) []string {
	var paths []string
	for _, name := range catalog.Rules {
		paths = append(paths, filepath.Join(dest, instructionsDir, name+"."+instructionsExt))
	}
	for _, id := range catalog.Agents {
		paths = append(paths, filepath.Join(dest, copilotAgentsDir, id+".agent.md"))
	}
	paths = append(paths,
		filepath.Join(dest, copilotPromptsDir, catalog.PromptTarget+".prompt.md"),
		filepath.Join(dest, vscodeSettingsPath),
	)
	return paths
}
