package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aamad-labs/aamad/internal/logger"
	"github.com/aamad-labs/aamad/internal/platform"
)

//go:embed data/aamad_bundle.zip
var defaultBundle []byte

var (
	// ErrAlreadyExists is returned when extraction would replace an existing
	// file and overwrite was not requested.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrUnsafePath is returned for archive members that would land outside
	// the destination.
	ErrUnsafePath = errors.New("unsafe archive path")
)

// Installer reads a zip archive and extracts it into a destination.
type Installer struct {
	// Open returns a fresh reader over the archive.
	Open func() (*zip.Reader, error)
}

// Default returns an installer over the bundle embedded in the binary.
func Default() *Installer {
	return FromBytes(defaultBundle)
}

// FromBytes returns an installer over an in-memory archive.
func FromBytes(data []byte) *Installer {
	return &Installer{
		Open: func() (*zip.Reader, error) {
			// Insecure names are rejected per member by Extract.
			r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
			if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
				return nil, fmt.Errorf("opening bundle: %w", err)
			}
			return r, nil
		},
	}
}

// FromFile returns an installer over an archive on disk.
func FromFile(path string) *Installer {
	return &Installer{
		Open: func() (*zip.Reader, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading bundle %s: %w", path, err)
			}
			return FromBytes(data).Open()
		},
	}
}

// Preview lists member names in archive order.
func (i *Installer) Preview() ([]string, error) {
	r, err := i.Open()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// Extract writes every file member under dest and returns the written paths
// in archive order. With dryRun nothing is written and the planned paths are
// returned. Unless overwrite is set, any pre-existing target fails the whole
// extraction with ErrAlreadyExists before the first write.
func (i *Installer) Extract(ctx context.Context, dest string, overwrite, dryRun bool) ([]string, error) {
	dest, err := filepath.Abs(dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination %s: %w", dest, err)
	}

	r, err := i.Open()
	if err != nil {
		return nil, err
	}

	var (
		files   []*zip.File
		targets []string
	)
	for _, f := range r.File {
		target, err := memberTarget(dest, f.Name)
		if err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, f)
		targets = append(targets, target)
	}

	if dryRun {
		return targets, nil
	}

	if !overwrite {
		for _, target := range targets {
			if _, err := os.Lstat(target); err == nil {
				return nil, fmt.Errorf("%s: %w, use overwrite to replace it", target, ErrAlreadyExists)
			}
		}
	}

	written := make([]string, 0, len(files))
	for n, f := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := extractFile(f, targets[n]); err != nil {
			return written, err
		}
		written = append(written, targets[n])
	}

	logger.L.WithField("files", len(written)).Debug("bundle extracted")
	return written, nil
}

// memberTarget maps an archive member to its path under dest.
func memberTarget(dest, name string) (string, error) {
	clean := path.Clean(strings.TrimSuffix(name, "/"))
	if !fs.ValidPath(clean) || clean == "." || strings.Contains(clean, `\`) {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}
	return filepath.Join(dest, filepath.FromSlash(clean)), nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening member %s: %w", f.Name, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("reading member %s: %w", f.Name, err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	if err := platform.MakeExecutable(target, f.Mode()); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", target, err)
	}
	return nil
}
