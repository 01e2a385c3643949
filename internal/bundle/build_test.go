package bundle

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestBuild_RoundTrip(t *testing.T) {
	root := t.TempDir()
	for rel, content := range map[string]string{
		".cursor/rules/b.mdc":      "b",
		".cursor/rules/a.mdc":      "a",
		".cursor/agents/qa-eng.md": "qa",
		"README.md":                "readme",
		"notes/private.md":         "not bundled",
	} {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	out := filepath.Join(t.TempDir(), "data", "bundle.zip")

	members, err := Build(root, out, DefaultInclude)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []string{
		".cursor/agents/qa-eng.md",
		".cursor/rules/a.mdc",
		".cursor/rules/b.mdc",
		"README.md",
	}
	if !slices.Equal(members, want) {
		t.Errorf("Build() members = %v, want %v", members, want)
	}

	names, err := FromFile(out).Preview()
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if !slices.Equal(names, want) {
		t.Errorf("Preview() = %v, want %v", names, want)
	}
}

func TestBuild_ReplacesExisting(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("r"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "bundle.zip")
	if err := os.WriteFile(out, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Build(root, out, DefaultInclude); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	names, err := FromFile(out).Preview()
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if !slices.Equal(names, []string{"README.md"}) {
		t.Errorf("Preview() = %v", names)
	}
}
