package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aamad-labs/aamad/internal/frontmatter"
	"github.com/aamad-labs/aamad/internal/logger"
	"go.yaml.in/yaml/v3"
)

// parseAgent parses a persona source stored under the catalog id. Output
// files are always named after id; a differing agent.id is only logged.
func parseAgent(text, id string) frontmatter.Document {
	doc := frontmatter.Parse(text)
	if declared := frontmatter.AgentID(doc.Header, id); declared != id {
		logger.L.WithField("agent", id).WithField("declared", declared).
			Debug("persona declares a different id, using the catalog id")
	}
	return doc
}

// readSource reads a catalog source file. ok is false when the file does
// not exist.
func readSource(path string) (content string, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// writeFile writes content in one call, creating parent directories.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// marshalHeader renders a header struct as block-style YAML with two-space
// indentation. Field order follows the struct.
func marshalHeader(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding header: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding header: %w", err)
	}
	return buf.String(), nil
}

// withHeader assembles "---\n<header>\n---\n<sep><body>".
func withHeader(header, sep, body string) string {
	return "---\n" + strings.TrimSpace(header) + "\n---\n" + sep + body
}
