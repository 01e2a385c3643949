package convert

import (
	"context"
	"fmt"
)

// RuleStyle selects how rules are laid out for targets that support more
// than one layout.
type RuleStyle string

const (
	// StyleSplit writes one file per rule plus a summary document.
	StyleSplit RuleStyle = "split"
	// StyleSingle consolidates every rule into one document.
	StyleSingle RuleStyle = "single"
)

// ParseRuleStyle validates a style name.
func ParseRuleStyle(s string) (RuleStyle, error) {
	switch RuleStyle(s) {
	case StyleSplit, StyleSingle:
		return RuleStyle(s), nil
	default:
		return "", fmt.Errorf("unknown rule style %q: expected %q or %q", s, StyleSplit, StyleSingle)
	}
}

// Converter produces one IDE's artifact layout.
type Converter interface {
	// Name is the IDE identifier used in messages.
	Name() string

	// OutputRoots are the destination-relative directories this converter
	// owns. Run refuses to write when any of them already holds a file.
	OutputRoots() []string

	// ConvertRules converts every catalog rule found in rulesDir.
	ConvertRules(ctx context.Context, rulesDir, dest string, style RuleStyle) ([]string, error)

	// ConvertAgents converts every catalog agent found in agentsDir.
	ConvertAgents(ctx context.Context, agentsDir, dest string) ([]string, error)

	// ConvertPrompt converts the phase-1 prompt, returning nothing when it is absent.
	ConvertPrompt(ctx context.Context, promptsDir, dest string) ([]string, error)

	// WriteSettings writes or merges the IDE settings document.
	WriteSettings(dest string, merge bool) (string, error)

	// Planned lists every path a full conversion into dest would write.
	Planned(dest string, style RuleStyle) []string
}
