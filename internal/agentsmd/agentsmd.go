// Package agentsmd renders AGENTS.md, the IDE-neutral bridge file that points
// agent runtimes at the installed persona definitions.
package agentsmd

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/aamad-labs/aamad/internal/branding"
)

// FileName is written at the project root.
const FileName = "AGENTS.md"

// ErrAlreadyExists is returned by Write when AGENTS.md exists and overwrite
// was not requested.
var ErrAlreadyExists = errors.New("AGENTS.md already exists")

//go:embed templates/AGENTS.md.tmpl
var agentsTemplate string

var tmpl = template.Must(template.New(FileName).Parse(agentsTemplate))

// Persona is one line of the persona listing.
type Persona struct {
	Handle  string
	Title   string
	Summary string
}

// Personas in workflow order.
var Personas = []Persona{
	{"@product-mgr", "Product Manager", "Orchestrates product vision and requirements"},
	{"@system.arch", "System Architect", "Produces SAD and SFS documents"},
	{"@project.mgr", "Project Manager", "Scaffolds project and environment"},
	{"@frontend.eng", "Frontend Developer", "Builds MVP chat interface"},
	{"@backend.eng", "Backend Developer", "Builds CrewAI backend"},
	{"@integration.eng", "Integration Engineer", "Connects frontend and backend"},
	{"@qa.eng", "QA Engineer", "Validates MVP functionality"},
}

// Data holds the template variables.
type Data struct {
	DisplayName   string
	Personas      []Persona
	AgentsDirNote string
}

// Render returns the AGENTS.md content with note as the agent definitions pointer.
func Render(note string) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, Data{
		DisplayName:   branding.DisplayName(),
		Personas:      Personas,
		AgentsDirNote: note,
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", FileName, err)
	}
	return buf.String(), nil
}

// Write renders AGENTS.md into dest and returns its path. With dryRun only the
// path is returned.
func Write(dest, note string, overwrite, dryRun bool) (string, error) {
	dest, err := filepath.Abs(dest)
	if err != nil {
		return "", fmt.Errorf("resolving destination %s: %w", dest, err)
	}
	path := filepath.Join(dest, FileName)
	if dryRun {
		return path, nil
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s: %w, use overwrite to replace it", path, ErrAlreadyExists)
		}
	}

	content, err := Render(note)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
