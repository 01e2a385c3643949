package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aamad-labs/aamad/internal/branding"
	"go.yaml.in/yaml/v3"
)

const stampName = "install.yaml"

// ErrNoStamp is returned by ReadStamp when nothing was installed into a project.
var ErrNoStamp = errors.New("no install stamp")

// Stamp records what init installed into a project.
type Stamp struct {
	Version     string    `yaml:"version"`
	IDE         string    `yaml:"ide"`
	InstalledAt time.Time `yaml:"installed_at"`
	Files       []string  `yaml:"files"`
}

// StampPath returns the stamp location for a project root.
func StampPath(dest string) string {
	return filepath.Join(dest, branding.HomeDir(), stampName)
}

// WriteStamp writes s to the project's stamp file, replacing any previous one.
func WriteStamp(dest string, s Stamp) (string, error) {
	path := StampPath(dest)
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding install stamp: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ReadStamp loads the project's stamp. A project without one yields ErrNoStamp.
func ReadStamp(dest string) (*Stamp, error) {
	path := StampPath(dest)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoStamp)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var s Stamp
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}
