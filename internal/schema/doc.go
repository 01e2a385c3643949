// Package schema validates the frontmatter headers of converted artifacts
// against embedded JSON Schemas, one per document kind.
package schema
