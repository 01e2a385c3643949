package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rules is the rule catalog in dependency order. It decides both the order
// of converted files and the order of the CLAUDE.md listing.
var Rules = []string{
	"aamad-core",
	"development-workflow",
	"epics-index",
	"adapter-registry",
	"adapter-crewai",
}

// Agents is the agent persona catalog. The personas index file is not part of
// it and is never converted.
var Agents = []string{
	"product-mgr",
	"system-arch",
	"project-mgr",
	"frontend-eng",
	"backend-eng",
	"integration-eng",
	"qa-eng",
}

const (
	// PersonasIndex is the stem of the agent index file under .cursor/agents.
	PersonasIndex = "personas"

	// PromptSource is the phase-1 prompt file under .cursor/prompts (no extension).
	PromptSource = "prompt-phase-1"

	// PromptTarget is the stem every convention uses for the converted prompt.
	PromptTarget = "phase-1-define"

	// PromptAgent is the agent the phase-1 prompt is addressed to.
	PromptAgent = "product-mgr"
)

// Source layout, relative to the project root.
const (
	CursorDir  = ".cursor"
	RulesDir   = ".cursor/rules"
	AgentsDir  = ".cursor/agents"
	PromptsDir = ".cursor/prompts"

	RuleExt  = "mdc"
	AgentExt = "md"
)

// buildPersonas must not reach the web; they lose the fetch capability in
// every convention.
var buildPersonas = []string{"backend-eng", "frontend-eng", "integration-eng", "qa-eng", "project-mgr"}

// RestrictsFetch reports whether the agent is denied web fetch tools.
func RestrictsFetch(agentID string) bool {
	return slices.Contains(buildPersonas, agentID)
}

// Handoff is a suggested follow-up from one agent to another.
type Handoff struct {
	Label  string `yaml:"label" json:"label"`
	Agent  string `yaml:"agent" json:"agent"`
	Prompt string `yaml:"prompt" json:"prompt"`
	Send   bool   `yaml:"send" json:"send"`
}

// handoffs walks Define → Build → Deliver.
var handoffs = map[string][]Handoff{
	"product-mgr": {
		{
			Label:  "→ Create Architecture",
			Agent:  "system-arch",
			Prompt: "Create the SAD using inputs from project-context/1.define/",
		},
	},
	"system-arch": {
		{
			Label:  "→ Start Build Phase",
			Agent:  "project-mgr",
			Prompt: "Scaffold the project based on the SAD in project-context/1.define/sad.md",
		},
	},
	"project-mgr": {
		{
			Label:  "→ Develop Frontend",
			Agent:  "frontend-eng",
			Prompt: "Build the MVP chat UI per project-context/2.build/setup.md and SAD.",
		},
		{
			Label:  "→ Develop Backend",
			Agent:  "backend-eng",
			Prompt: "Build the CrewAI backend per project-context/2.build/setup.md and SAD.",
		},
	},
	"integration-eng": {
		{
			Label:  "→ Run QA Tests",
			Agent:  "qa-eng",
			Prompt: "Run functional and smoke tests for the implementation in project-context/2.build/.",
		},
	},
}

// Handoffs returns a copy of the configured handoffs for an agent, or nil.
func Handoffs(agentID string) []Handoff {
	return slices.Clone(handoffs[agentID])
}

// TitleCase turns a catalog name into words: "backend-eng" → "Backend Eng".
func TitleCase(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

// headingOverrides replace TitleCase where the acronym matters.
var headingOverrides = map[string]string{
	"aamad-core": "AAMAD Core",
}

// RuleHeading is the section heading for a rule in a consolidated document.
func RuleHeading(name string) string {
	if h, ok := headingOverrides[name]; ok {
		return h
	}
	return TitleCase(name)
}

// RuleDisplayName is the human-readable rule name used in instruction
// headers, e.g. "aamad-core" → "AAMAD Core Rules",
// "adapter-crewai" → "Adapter Crewai Rules", "epics-index" → "Epics Index".
func RuleDisplayName(name string) string {
	if name == "aamad-core" {
		return "AAMAD Core Rules"
	}
	title := TitleCase(name)
	if strings.Contains(name, "adapter") || strings.Contains(name, "workflow") {
		return title + " Rules"
	}
	return title
}
