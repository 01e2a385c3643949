package bundle

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultInclude are the top-level entries of an artifact tree that go into
// the bundle, in archive order.
var DefaultInclude = []string{".cursor", "project-context", "CHECKLIST.md", "README.md"}

// DefaultOutput is where the embedded bundle lives relative to the repository root.
const DefaultOutput = "internal/bundle/data/aamad_bundle.zip"

// Build zips the include entries of root into out, replacing any previous
// archive. Directories are walked in lexical order; missing entries are
// skipped. It returns the member names written.
func Build(root, out string, include []string) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", out, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("creating bundle %s: %w", out, err)
	}

	zw := zip.NewWriter(f)
	var members []string
	for _, name := range include {
		added, err := addEntry(zw, root, name)
		members = append(members, added...)
		if err != nil {
			zw.Close()
			f.Close()
			return members, err
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return members, fmt.Errorf("finalizing bundle %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return members, fmt.Errorf("closing bundle %s: %w", out, err)
	}
	return members, nil
}

func addEntry(zw *zip.Writer, root, name string) ([]string, error) {
	base := filepath.Join(root, name)
	info, err := os.Stat(base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", base, err)
	}
	if !info.IsDir() {
		if err := addFile(zw, base, filepath.Base(name), info); err != nil {
			return nil, err
		}
		return []string{filepath.Base(name)}, nil
	}

	var added []string
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		member := filepath.ToSlash(rel)
		if err := addFile(zw, p, member, info); err != nil {
			return err
		}
		added = append(added, member)
		return nil
	})
	if err != nil {
		return added, fmt.Errorf("adding %s: %w", base, err)
	}
	return added, nil
}

func addFile(zw *zip.Writer, src, member string, info fs.FileInfo) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("preparing header for %s: %w", src, err)
	}
	hdr.Name = member
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", member, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", member, err)
	}
	return nil
}
