package cli

import (
	"fmt"

	"github.com/aamad-labs/aamad/internal/convert"
	"github.com/aamad-labs/aamad/internal/integrations"
	"github.com/spf13/cobra"
)

var (
	convertIDE       string
	convertSrc       string
	convertDest      string
	convertStyle     string
	convertOverwrite bool
	convertDryRun    bool
	convertNoMerge   bool
)

func init() {
	convertCmd.Flags().StringVar(&convertIDE, "ide", "", "Target IDE: claude-code or vscode (required)")
	convertCmd.Flags().StringVar(&convertSrc, "src", ".", "Project root containing .cursor/")
	convertCmd.Flags().StringVar(&convertDest, "dest", "", "Output root (defaults to --src)")
	convertCmd.Flags().StringVar(&convertStyle, "style", "", "Claude Code rule layout: split or single")
	convertCmd.Flags().BoolVar(&convertOverwrite, "overwrite", false, "Allow writing into populated output directories")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "List the files a conversion would write")
	convertCmd.Flags().BoolVar(&convertNoMerge, "no-merge-settings", false, "Replace IDE settings files instead of merging")
	_ = convertCmd.MarkFlagRequired("ide")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an existing .cursor/ tree to another IDE layout",
	Long: `Convert the Cursor rules, agents and phase-1 prompt under --src into the
Claude Code (.claude/) or VS Code / GitHub Copilot (.github/, .vscode/) layout.

Nothing is extracted from the bundle. Unless --overwrite is given, the command
refuses to write into an output directory that already holds files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := converterFor(convertIDE)
		if err != nil {
			return err
		}
		style, err := ruleStyle(convertStyle)
		if err != nil {
			return err
		}
		dest := convertDest
		if dest == "" {
			dest = convertSrc
		}

		if convertDryRun {
			printPaths(cmd.OutOrStdout(), true, c.Planned(dest, style))
			return nil
		}

		paths, err := convert.Run(cmd.Context(), c, convert.Options{
			Source:        convertSrc,
			Dest:          dest,
			Overwrite:     convertOverwrite,
			MergeSettings: mergeSettings(convertNoMerge),
			RuleStyle:     style,
		})
		if err != nil {
			return err
		}

		printPaths(cmd.OutOrStdout(), false, paths)
		return nil
	},
}

// converterFor parses an IDE name that has a conversion target.
func converterFor(name string) (convert.Converter, error) {
	tool, err := parseIDE(name)
	if err != nil {
		return nil, err
	}
	c := integrations.Converter(tool)
	if c == nil {
		return nil, fmt.Errorf("%s uses the .cursor/ tree as is; choose claude-code or vscode", tool)
	}
	return c, nil
}
