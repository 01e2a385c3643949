// Package integrations maps IDE names to their artifact conventions and runs
// a full install for one IDE: bundle extraction, conversion to the IDE's
// layout, the AGENTS.md bridge file and the install stamp.
package integrations
