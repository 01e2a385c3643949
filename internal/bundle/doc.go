// Package bundle ships the AAMAD artifact tree as an embedded zip archive and
// materializes it into a project. It also builds the archive from a source
// tree and records what was installed in a stamp file under .aamad/.
package bundle
