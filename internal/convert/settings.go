package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aamad-labs/aamad/internal/logger"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Setting is one value AAMAD owns in a settings document. Path holds the
// object keys from the root down to the leaf; a key may itself contain dots.
type Setting struct {
	Path  []string
	Value any
}

// Key returns the dotted form of the path, for messages.
func (s Setting) Key() string { return strings.Join(s.Path, ".") }

var pathEscaper = strings.NewReplacer(`\`, `\\`, ".", `\.`, "*", `\*`, "?", `\?`)

func settingPath(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = pathEscaper.Replace(k)
	}
	return strings.Join(parts, ".")
}

// WriteSettings writes settings as a JSON object to path. With merge set and
// an existing JSON object at path, only the leaf of each setting is written:
// sibling keys at every level and the existing key order are kept, and new
// keys are appended. A non-object on the way to a leaf is replaced by an
// object. An unreadable or unparseable existing file counts as empty.
func WriteSettings(path string, settings []Setting, merge bool) error {
	doc := []byte("{}")
	if merge {
		doc = loadSettings(path)
	}

	for _, s := range settings {
		var err error
		doc, err = setLeaf(doc, s)
		if err != nil {
			return fmt.Errorf("encoding setting %s: %w", s.Key(), err)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, doc, "", "  "); err != nil {
		return fmt.Errorf("encoding settings %s: %w", path, err)
	}
	return writeFile(path, out.String())
}

func setLeaf(doc []byte, s Setting) ([]byte, error) {
	for i := 1; i < len(s.Path); i++ {
		parent := settingPath(s.Path[:i])
		if v := gjson.GetBytes(doc, parent); v.Exists() && !v.IsObject() {
			var err error
			if doc, err = sjson.DeleteBytes(doc, parent); err != nil {
				return nil, err
			}
		}
	}
	return sjson.SetBytes(doc, settingPath(s.Path), s.Value)
}

func loadSettings(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		return []byte("{}")
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		logger.L.WithField("path", path).Debug("existing settings unparseable, starting empty")
		return []byte("{}")
	}
	return data
}
