package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

type member struct {
	name string
	body string
	mode os.FileMode
}

func makeZip(t *testing.T, members ...member) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range members {
		hdr := &zip.FileHeader{Name: m.name, Method: zip.Deflate}
		if m.mode != 0 {
			hdr.SetMode(m.mode)
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("creating member %s: %v", m.name, err)
		}
		if _, err := w.Write([]byte(m.body)); err != nil {
			t.Fatalf("writing member %s: %v", m.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

var sample = []member{
	{name: ".cursor/rules/aamad-core.mdc", body: "core"},
	{name: "project-context/"},
	{name: "project-context/1.define/README.md", body: "define"},
	{name: "README.md", body: "readme"},
}

func TestDefault_Preview(t *testing.T) {
	names, err := Default().Preview()
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	for _, want := range []string{
		".cursor/rules/aamad-core.mdc",
		".cursor/agents/backend-eng.md",
		".cursor/prompts/prompt-phase-1",
		"CHECKLIST.md",
		"README.md",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("embedded bundle missing %s", want)
		}
	}
}

func TestPreview_ArchiveOrder(t *testing.T) {
	names, err := FromBytes(makeZip(t, sample...)).Preview()
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	want := []string{".cursor/rules/aamad-core.mdc", "project-context/", "project-context/1.define/README.md", "README.md"}
	if !slices.Equal(names, want) {
		t.Errorf("Preview() = %v, want %v", names, want)
	}
}

func TestExtract(t *testing.T) {
	dest := t.TempDir()

	paths, err := FromBytes(makeZip(t, sample...)).Extract(context.Background(), dest, false, false)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Extract() returned %d paths, want 3: %v", len(paths), paths)
	}

	data, err := os.ReadFile(filepath.Join(dest, "project-context", "1.define", "README.md"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if string(data) != "define" {
		t.Errorf("content = %q, want %q", data, "define")
	}
}

func TestExtract_DryRun(t *testing.T) {
	dest := t.TempDir()

	paths, err := FromBytes(makeZip(t, sample...)).Extract(context.Background(), dest, false, true)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if want := filepath.Join(dest, ".cursor", "rules", "aamad-core.mdc"); paths[0] != want {
		t.Errorf("paths[0] = %s, want %s", paths[0], want)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries", len(entries))
	}
}

func TestExtract_RefusesExisting(t *testing.T) {
	dest := t.TempDir()
	existing := filepath.Join(dest, "README.md")
	if err := os.WriteFile(existing, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := FromBytes(makeZip(t, sample...)).Extract(context.Background(), dest, false, false)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Extract() error = %v, want ErrAlreadyExists", err)
	}
	if _, err := os.Stat(filepath.Join(dest, ".cursor")); !os.IsNotExist(err) {
		t.Error("nothing should be written when a target exists")
	}
}

func TestExtract_Overwrite(t *testing.T) {
	dest := t.TempDir()
	existing := filepath.Join(dest, "README.md")
	if err := os.WriteFile(existing, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := FromBytes(makeZip(t, sample...)).Extract(context.Background(), dest, true, false); err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	data, _ := os.ReadFile(existing)
	if string(data) != "readme" {
		t.Errorf("content = %q, want %q", data, "readme")
	}
}

func TestExtract_UnsafePaths(t *testing.T) {
	for _, name := range []string{"../evil.txt", "/etc/evil", "a/../../evil", `a\..\evil`} {
		t.Run(name, func(t *testing.T) {
			dest := t.TempDir()
			_, err := FromBytes(makeZip(t, member{name: name, body: "x"})).Extract(context.Background(), dest, false, false)
			if !errors.Is(err, ErrUnsafePath) {
				t.Fatalf("Extract() error = %v, want ErrUnsafePath", err)
			}
		})
	}
}

func TestExtract_ExecutableMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported")
	}
	dest := t.TempDir()
	archive := makeZip(t, member{name: "bin/setup.sh", body: "#!/bin/sh\n", mode: 0755})

	if _, err := FromBytes(archive).Extract(context.Background(), dest, false, false); err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dest, "bin", "setup.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
}

func TestExtract_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromBytes(makeZip(t, sample...)).Extract(ctx, t.TempDir(), false, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Extract() error = %v, want context.Canceled", err)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.zip")).Preview(); err == nil {
		t.Fatal("expected error for missing bundle")
	}
}
