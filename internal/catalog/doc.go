// Package catalog holds the fixed, ordered lists of AAMAD artifacts that the
// converters know about: rules, agent personas, the phase-1 prompt, and the
// handoff table between agents. Iteration order everywhere in the tool comes
// from these lists, never from directory listings.
package catalog
