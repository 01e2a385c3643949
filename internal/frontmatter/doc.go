// Package frontmatter splits Cursor-style markdown documents into a YAML
// header and a body, and resolves the handful of header fields the
// converters need (agent id, display name, description, rule scope).
//
// Nothing in this package returns an error for bad input. A document without
// a header, or with a header that does not decode as a YAML mapping, simply
// has an empty header. Field lookups fall back to documented defaults.
package frontmatter
