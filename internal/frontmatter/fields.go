package frontmatter

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	// UniversalScope is the applyTo value for rules that apply everywhere.
	UniversalScope = "**"

	// DefaultAgentDescription is used when no header field describes the agent.
	DefaultAgentDescription = "AAMAD agent persona."

	maxInstructionLen = 200
)

// AgentBlock is the strict form of the nested "agent" header mapping.
type AgentBlock struct {
	ID               string `mapstructure:"id"`
	Name             string `mapstructure:"name"`
	Role             string `mapstructure:"role"`
	PrimaryObjective string `mapstructure:"primary_objective"`
	Mission          string `mapstructure:"mission"`
}

// Agent coerces header["agent"] into an AgentBlock. An absent or empty value
// counts as an empty mapping. ok is false only when the value is present but
// is not a mapping. Fields of the wrong shape are left empty.
func Agent(h map[string]any) (block AgentBlock, ok bool) {
	v := h["agent"]
	if isEmpty(v) {
		return AgentBlock{}, true
	}
	raw, ok := asMap(v)
	if !ok {
		return AgentBlock{}, false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &block,
	})
	if err != nil {
		return AgentBlock{}, true
	}
	// mapstructure keeps decoding after a bad field; the partial result is
	// what we want.
	_ = dec.Decode(raw)
	return block, true
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case map[any]any:
		return len(val) == 0
	default:
		return false
	}
}

// AgentID returns agent.id, or stem when it is missing or empty. Converters
// name output after the catalog id and use this only to report a mismatch.
func AgentID(h map[string]any, stem string) string {
	if a, ok := Agent(h); ok && a.ID != "" {
		return a.ID
	}
	return stem
}

// AgentName returns agent.name, or "" when absent.
func AgentName(h map[string]any) string {
	if a, ok := Agent(h); ok {
		return a.Name
	}
	return ""
}

// descriptionLink is one step of the description fallback chain.
type descriptionLink struct {
	field   string
	resolve func(h map[string]any, a AgentBlock, hasAgent bool) string
}

// descriptionChain is evaluated in order; the first non-empty value wins.
var descriptionChain = []descriptionLink{
	{"agent.role", func(_ map[string]any, a AgentBlock, ok bool) string { return agentField(ok, a.Role) }},
	{"agent.primary_objective", func(_ map[string]any, a AgentBlock, ok bool) string { return agentField(ok, a.PrimaryObjective) }},
	{"agent.mission", func(_ map[string]any, a AgentBlock, ok bool) string { return agentField(ok, a.Mission) }},
	{"instructions[0]", func(h map[string]any, _ AgentBlock, ok bool) string {
		if !ok {
			return ""
		}
		return firstInstruction(h)
	}},
}

func agentField(hasAgent bool, v string) string {
	if !hasAgent {
		return ""
	}
	return strings.TrimSpace(v)
}

// AgentDescription resolves the agent description: agent.role, then
// agent.primary_objective, then agent.mission, then the first instruction
// truncated to 200 characters, then DefaultAgentDescription. A header whose
// "agent" value is present but not a mapping goes straight to the default.
func AgentDescription(h map[string]any) string {
	a, ok := Agent(h)
	for _, link := range descriptionChain {
		if v := link.resolve(h, a, ok); v != "" {
			return v
		}
	}
	return DefaultAgentDescription
}

func firstInstruction(h map[string]any) string {
	list, ok := h["instructions"].([]any)
	if !ok || len(list) == 0 || list[0] == nil {
		return ""
	}
	s := scalarString(list[0])
	if r := []rune(s); len(r) > maxInstructionLen {
		s = string(r[:maxInstructionLen])
	}
	return strings.TrimSpace(s)
}

// ApplyTo derives a rule's scope selector. alwaysApply: true wins over any
// globs; otherwise the first non-empty glob is used; anything else is the
// universal scope. A plain string "globs" value is read as a comma-separated
// list.
func ApplyTo(h map[string]any) string {
	if always, ok := h["alwaysApply"].(bool); ok && always {
		return UniversalScope
	}

	var first any
	switch globs := h["globs"].(type) {
	case []any:
		if len(globs) > 0 {
			first = globs[0]
		}
	case string:
		first, _, _ = strings.Cut(globs, ",")
	}
	if first == nil {
		return UniversalScope
	}
	if s := strings.TrimSpace(scalarString(first)); s != "" {
		return s
	}
	return UniversalScope
}

// Description returns the top-level description field as a string.
func Description(h map[string]any) string {
	v, ok := h["description"]
	if !ok || v == nil {
		return ""
	}
	return scalarString(v)
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
