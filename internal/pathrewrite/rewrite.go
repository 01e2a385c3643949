// Package pathrewrite rewrites cross-references between rule files when the
// rules move from one IDE convention to another, e.g.
// ".cursor/rules/aamad-core.mdc" to ".claude/rules/aamad-core.md".
//
// It is a text substitution over markdown bodies, not a path parser.
package pathrewrite

import (
	"regexp"
	"strings"
)

// Rewriter maps <sourceRoot><path>.<sourceExt> to <targetRoot><path>.<targetExt>.
type Rewriter struct {
	sourceRoot string
	targetRoot string
	pattern    *regexp.Regexp
	template   string
}

// New builds a Rewriter. Roots include their trailing slash; extensions omit
// the leading dot.
func New(sourceRoot, sourceExt, targetRoot, targetExt string) *Rewriter {
	return &Rewriter{
		sourceRoot: sourceRoot,
		targetRoot: targetRoot,
		pattern: regexp.MustCompile(
			regexp.QuoteMeta(sourceRoot) + `([^\s\)"']+)\.` + regexp.QuoteMeta(sourceExt),
		),
		template: escapeTemplate(targetRoot) + "${1}." + escapeTemplate(targetExt),
	}
}

// Rewrite applies the extension-aware rewrite first, then replaces any
// remaining source root (references without the tracked extension). The
// broad pass also hits the root inside unrelated text.
func (r *Rewriter) Rewrite(body string) string {
	body = r.pattern.ReplaceAllString(body, r.template)
	return strings.ReplaceAll(body, r.sourceRoot, r.targetRoot)
}

func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
