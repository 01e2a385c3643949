package frontmatter

import (
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// headerPattern matches an opening "---" line, the YAML payload, a closing
// "---" line, and the rest of the document.
var headerPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n(.*)$`)

// Document is a parsed markdown file: its decoded header and trimmed body.
type Document struct {
	Header map[string]any
	Body   string
}

// Parse splits text into header and body. Text without a recognizable header
// yields an empty header and the trimmed text as body. A header that fails to
// decode, or decodes to something other than a mapping, is treated as empty;
// the body is still taken from the original text.
func Parse(text string) Document {
	m := headerPattern.FindStringSubmatch(text)
	if m == nil {
		return Document{Header: map[string]any{}, Body: strings.TrimSpace(text)}
	}
	return Document{
		Header: decodeHeader(m[1]),
		Body:   strings.TrimSpace(m[2]),
	}
}

// decodeHeader is the only place raw YAML enters the package.
func decodeHeader(payload string) map[string]any {
	var raw any
	if err := yaml.Unmarshal([]byte(payload), &raw); err != nil {
		return map[string]any{}
	}
	h, ok := asMap(raw)
	if !ok {
		return map[string]any{}
	}
	return h
}

// asMap normalizes the two map shapes the YAML decoder can produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}
