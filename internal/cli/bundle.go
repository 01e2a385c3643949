package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aamad-labs/aamad/internal/bundle"
	"github.com/aamad-labs/aamad/internal/integrations"
	"github.com/spf13/cobra"
)

var (
	bundleInfoIDE     string
	bundleInfoVerbose bool

	bundleBuildRoot string
	bundleBuildOut  string
)

func init() {
	bundleInfoCmd.Flags().StringVar(&bundleInfoIDE, "ide", string(integrations.Default), "Which layout to inspect: cursor, claude-code or vscode")
	bundleInfoCmd.Flags().BoolVar(&bundleInfoVerbose, "verbose", false, "Print one path per line instead of a summarized count")
	rootCmd.AddCommand(bundleInfoCmd)

	bundleBuildCmd.Flags().StringVar(&bundleBuildRoot, "root", "artifacts", "Artifact tree to bundle")
	bundleBuildCmd.Flags().StringVar(&bundleBuildOut, "out", bundle.DefaultOutput, "Archive to write")
	bundleCmd.AddCommand(bundleBuildCmd)
	rootCmd.AddCommand(bundleCmd)
}

var bundleInfoCmd = &cobra.Command{
	Use:   "bundle-info",
	Short: "Show the files bundled in the distribution",
	Long: `Show the files an install would produce for an IDE: the bundled Cursor tree,
followed for claude-code and vscode by the converted layout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := parseIDE(bundleInfoIDE)
		if err != nil {
			return err
		}

		files, err := bundledFiles(tool)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if bundleInfoVerbose {
			for _, f := range files {
				fmt.Fprintln(out, f)
			}
			return nil
		}
		fmt.Fprintf(out, "%d files bundled (%s)\n", len(files), tool)
		return nil
	},
}

// bundledFiles lists bundle members plus the converted layout, relative to the
// project root.
func bundledFiles(tool integrations.ToolName) ([]string, error) {
	files, err := bundle.Default().Preview()
	if err != nil {
		return nil, err
	}

	c := integrations.Converter(tool)
	if c == nil {
		return files, nil
	}
	style, err := ruleStyle("")
	if err != nil {
		return nil, err
	}
	for _, p := range c.Planned(".", style) {
		files = append(files, filepath.ToSlash(p))
	}
	return files, nil
}

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Work with the artifact bundle",
}

var bundleBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the artifact bundle from a source tree",
	Long: `Zip .cursor/, project-context/, CHECKLIST.md and README.md from --root into
--out. Missing entries are skipped. Rebuild the binary afterwards to embed it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := bundle.Build(bundleBuildRoot, bundleBuildOut, bundle.DefaultInclude)
		if err != nil {
			return fmt.Errorf("building bundle: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated bundle at %s (%d files)\n", bundleBuildOut, len(members))
		return nil
	},
}
