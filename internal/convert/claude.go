package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aamad-labs/aamad/internal/catalog"
	"github.com/aamad-labs/aamad/internal/frontmatter"
	"github.com/aamad-labs/aamad/internal/logger"
	"github.com/aamad-labs/aamad/internal/pathrewrite"
)

const (
	claudeDir = ".claude"

	// claudeTools is the tool list every Claude Code agent gets.
	claudeTools    = "Read, Edit, Write, Bash, Grep, Glob"
	claudeWebFetch = "WebFetch"

	phaseOneDescription = "AAMAD Phase 1: Generate Market Research and Product Requirements Document"
)

// claudeSettings are the values AAMAD owns in .claude/settings.json.
var claudeSettings = []Setting{
	{Path: []string{"permissions", "allow"}, Value: []string{
		"Bash(python *)",
		"Bash(pip *)",
		"Bash(crewai *)",
		"Bash(npm *)",
		"Bash(npx *)",
		"Read(**)",
		"Edit(**)",
	}},
	{Path: []string{"env", "AAMAD_ADAPTER"}, Value: "crewai"},
}

var claudeRewriter = pathrewrite.New(
	catalog.RulesDir+"/", catalog.RuleExt,
	claudeDir+"/rules/", "md",
)

// ClaudeCode converts to the Claude Code layout under .claude/.
type ClaudeCode struct{}

var _ Converter = ClaudeCode{}

// Name implements Converter.
func (ClaudeCode) Name() string { return "claude-code" }

// OutputRoots implements Converter.
func (ClaudeCode) OutputRoots() []string { return []string{claudeDir} }

// ConvertRules writes .claude/rules/<name>.md per rule plus a CLAUDE.md summary
// (split), or a single consolidated CLAUDE.md (single). CLAUDE.md is always
// written and is the last path returned.
func (ClaudeCode) ConvertRules(ctx context.Context, rulesDir, dest string, style RuleStyle) ([]string, error) {
	if style != StyleSplit && style != StyleSingle {
		return nil, fmt.Errorf("unknown rule style %q", style)
	}

	var created []string
	bodies := make(map[string]string, len(catalog.Rules))

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

		body := claudeRewriter.Rewrite(frontmatter.Parse(text).Body)
		bodies[name] = body

		if style == StyleSplit {
			out := filepath.Join(dest, claudeDir, "rules", name+".md")
			if err := writeFile(out, body); err != nil {
				return created, err
			}
			created = append(created, out)
		}
	}

	var content string
	if style == StyleSplit {
		content = claudeSummary(bodies)
	} else {
		content = claudeConsolidated(bodies)
	}

	out := filepath.Join(dest, claudeDir, "CLAUDE.md")
	if err := writeFile(out, content); err != nil {
		return created, err
	}
	return append(created, out), nil
}

func claudeSummary(bodies map[string]string) string {
	lines := []string{
		"# AAMAD Framework Rules",
		"",
		"This project uses the AAMAD multi-agent development framework.",
		"All rules are loaded from `.claude/rules/`.",
		"",
		"## Rule Files",
	}
	for _, name := range catalog.Rules {
		if _, ok := bodies[name]; ok {
			lines = append(lines, fmt.Sprintf("- [%s](.claude/rules/%s.md)", name, name))
		}
	}
	lines = append(lines,
		"",
		"---",
		"",
		"For detailed agent/epic/action mapping, see `.claude/rules/epics-index.md`.",
	)
	return strings.Join(lines, "\n")
}

func claudeConsolidated(bodies map[string]string) string {
	var sections []string
	for _, name := range catalog.Rules {
		if body, ok := bodies[name]; ok {
			sections = append(sections, "## "+catalog.RuleHeading(name)+"\n\n"+body)
		}
	}
	return strings.Join(sections, "\n\n---\n\n")
}

type claudeAgentHeader struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	Tools           string `yaml:"tools"`
	Model           string `yaml:"model"`
	DisallowedTools string `yaml:"disallowedTools,omitempty"`
}

// ConvertAgents writes .claude/agents/<id>.md for every catalog agent found.
func (ClaudeCode) ConvertAgents(ctx context.Context, agentsDir, dest string) ([]string, error) {
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
		header := claudeAgentHeader{
			Name:        id,
			Description: frontmatter.AgentDescription(doc.Header),
			Tools:       claudeTools,
			Model:       "inherit",
		}
		if catalog.RestrictsFetch(id) {
			header.DisallowedTools = claudeWebFetch
		}

		fm, err := marshalHeader(header)
		if err != nil {
			return created, fmt.Errorf("agent %s: %w", id, err)
		}

		out := filepath.Join(dest, claudeDir, "agents", id+".md")
		if err := writeFile(out, withHeader(fm, "", claudeRewriter.Rewrite(doc.Body))); err != nil {
			return created, err
		}
		created = append(created, out)
	}

	return created, nil
}

type promptHeader struct {
	Description string `yaml:"description"`
	Agent       string `yaml:"agent,omitempty"`
}

// ConvertPrompt writes .claude/commands/phase-1-define.md.
func (ClaudeCode) ConvertPrompt(ctx context.Context, promptsDir, dest string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, ok, err := readSource(filepath.Join(promptsDir, catalog.PromptSource))
	if err != nil || !ok {
		return nil, err
	}

	fm, err := marshalHeader(promptHeader{Description: phaseOneDescription})
	if err != nil {
		return nil, err
	}

	out := filepath.Join(dest, claudeDir, "commands", catalog.PromptTarget+".md")
	if err := writeFile(out, withHeader(fm, "\n", text)); err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// WriteSettings writes .claude/settings.json.
func (ClaudeCode) WriteSettings(dest string, merge bool) (string, error) {
	path := filepath.Join(dest, claudeDir, "settings.json")
	if err := WriteSettings(path, claudeSettings, merge); err != nil {
		return "", err
	}
	return path, nil
}

// Planned implements Converter.
func (ClaudeCode) Planned(dest string, style RuleStyle) []string {
	var paths []string
	if style != StyleSingle {
		for _, name := range catalog.Rules {
			paths = append(paths, filepath.Join(dest, claudeDir, "rules", name+".md"))
		}
	}
	paths = append(paths, filepath.Join(dest, claudeDir, "CLAUDE.md"))
	for _, id := range catalog.Agents {
		paths = append(paths, filepath.Join(dest, claudeDir, "agents", id+".md"))
	}
	paths = append(paths,
		filepath.Join(dest, claudeDir, "commands", catalog.PromptTarget+".md"),
		filepath.Join(dest, claudeDir, "settings.json"),
	)
	return paths
}
