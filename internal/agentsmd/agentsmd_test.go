package agentsmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	out, err := Render("See `.claude/agents/` for Claude Code agent definitions.")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.HasPrefix(out, "# AAMAD Agent Framework\n") {
		t.Errorf("unexpected heading: %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "## Agent Personas\n- **@product-mgr** — Product Manager: Orchestrates product vision and requirements\n") {
		t.Error("persona listing should follow the heading directly")
	}
	if !strings.Contains(out, "- **@qa.eng** — QA Engineer: Validates MVP functionality\n\n## Workflow") {
		t.Error("persona listing should end before the workflow section")
	}
	if !strings.HasSuffix(out, "## Agent Definitions\nSee `.claude/agents/` for Claude Code agent definitions.\n") {
		t.Errorf("note not rendered at the end: %q", out[len(out)-80:])
	}
}

func TestWrite(t *testing.T) {
	dest := t.TempDir()

	path, err := Write(dest, "note", false, false)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if path != filepath.Join(dest, FileName) {
		t.Errorf("Write() path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("AGENTS.md not written: %v", err)
	}

	_, err = Write(dest, "note", false, false)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second Write() error = %v, want ErrAlreadyExists", err)
	}

	if _, err := Write(dest, "replaced", true, false); err != nil {
		t.Fatalf("Write() with overwrite error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasSuffix(string(data), "replaced\n") {
		t.Error("overwrite did not replace content")
	}
}

func TestWrite_DryRun(t *testing.T) {
	dest := t.TempDir()

	path, err := Write(dest, "note", false, true)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dry run should not write AGENTS.md")
	}
}
