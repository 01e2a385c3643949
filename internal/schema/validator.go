package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/aamad-labs/aamad/internal/frontmatter"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Kind names a document kind with its own header schema.
type Kind string

const (
	ClaudeAgent        Kind = "claude-agent"
	ClaudeCommand      Kind = "claude-command"
	CopilotAgent       Kind = "copilot-agent"
	CopilotInstruction Kind = "copilot-instruction"
	CopilotPrompt      Kind = "copilot-prompt"
)

// Kinds lists every kind with an embedded schema.
func Kinds() []Kind {
	return []Kind{ClaudeAgent, ClaudeCommand, CopilotAgent, CopilotInstruction, CopilotPrompt}
}

var (
	compiled    map[Kind]*jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// Result is the outcome of validating one document.
type Result struct {
	Kind   Kind
	Issues []Issue
}

// Valid reports whether the document had no issues.
func (r *Result) Valid() bool { return len(r.Issues) == 0 }

// Issue is a single schema violation.
type Issue struct {
	Path    string // Instance location, e.g. "/tools/0"
	Message string
	Keyword string // Failing schema keyword
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchemas() (map[Kind]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for _, k := range Kinds() {
			name := string(k) + ".schema.json"
			data, err := schemaFS.ReadFile("schemas/" + name)
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("adding schema %s: %w", name, err)
				return
			}
		}

		out := make(map[Kind]*jsonschema.Schema, len(Kinds()))
		for _, k := range Kinds() {
			s, err := c.Compile(string(k) + ".schema.json")
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", k, err)
				return
			}
			out[k] = s
		}
		compiled = out
	})
	return compiled, compileErr
}

// ValidateDocument validates the header of an emitted document against the
// schema for kind. The error return is for unknown kinds and schema failures;
// violations are reported in the Result.
func ValidateDocument(kind Kind, text string) (*Result, error) {
	schemas, err := getSchemas()
	if err != nil {
		return nil, fmt.Errorf("loading schemas: %w", err)
	}
	s, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}

	header := frontmatter.Parse(text).Header
	jsonData, err := json.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("converting header to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing header for validation: %w", err)
	}

	result := &Result{Kind: kind}
	if err := s.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		result.Issues = extractIssues(ve)
	}

	if applyTo, ok := header["applyTo"].(string); ok && !validGlobs(applyTo) {
		result.Issues = append(result.Issues, Issue{
			Path:    "/applyTo",
			Message: printer.Sprintf("%q is not a valid glob pattern", applyTo),
			Keyword: "glob",
		})
	}
	return result, nil
}

// validGlobs accepts a single pattern or a comma-separated list.
func validGlobs(s string) bool {
	for _, p := range strings.Split(s, ",") {
		if !doublestar.ValidatePattern(strings.TrimSpace(p)) {
			return false
		}
	}
	return true
}

// extractIssues returns the leaf errors of the validation tree.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return dedupe(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword, msg := "", ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	*issues = append(*issues, Issue{Path: path, Message: msg, Keyword: keyword})
}

func dedupe(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var out []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			out = append(out, issue)
		}
	}
	return out
}

type treeEntry struct {
	pattern string
	kind    Kind
}

// trees maps a converter name to the files it emits.
var trees = map[string][]treeEntry{
	"claude-code": {
		{".claude/agents/*.md", ClaudeAgent},
		{".claude/commands/*.md", ClaudeCommand},
	},
	"vscode": {
		{".github/instructions/*.instructions.md", CopilotInstruction},
		{".github/agents/*.agent.md", CopilotAgent},
		{".github/prompts/*.prompt.md", CopilotPrompt},
	},
}

// ValidateTree validates every emitted document of a convention under dest
// and returns how many were checked. All violations and read failures are
// aggregated into the returned error.
func ValidateTree(convention, dest string) (int, error) {
	entries, ok := trees[convention]
	if !ok {
		return 0, fmt.Errorf("no schemas for %q", convention)
	}

	fsys := os.DirFS(dest)
	var merr *multierror.Error
	checked := 0

	for _, e := range entries {
		matches, err := doublestar.Glob(fsys, e.pattern)
		if err != nil {
			return checked, fmt.Errorf("matching %s: %w", e.pattern, err)
		}
		for _, m := range matches {
			data, err := fs.ReadFile(fsys, m)
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("reading %s: %w", m, err))
				continue
			}
			checked++

			res, err := ValidateDocument(e.kind, string(data))
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("%s: %w", m, err))
				continue
			}
			for _, issue := range res.Issues {
				merr = multierror.Append(merr, fmt.Errorf("%s: %s", m, issue))
			}
		}
	}

	return checked, merr.ErrorOrNil()
}
