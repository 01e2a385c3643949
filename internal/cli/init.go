package cli

import (
	"fmt"

	"github.com/aamad-labs/aamad/internal/config"
	"github.com/aamad-labs/aamad/internal/convert"
	"github.com/aamad-labs/aamad/internal/integrations"
	"github.com/spf13/cobra"
)

var (
	initDest      string
	initIDE       string
	initStyle     string
	initOverwrite bool
	initDryRun    bool
	initNoMerge   bool
)

func init() {
	initCmd.Flags().StringVar(&initDest, "dest", ".", "Output directory")
	initCmd.Flags().StringVar(&initIDE, "ide", "", "Target IDE: cursor (default), claude-code or vscode")
	initCmd.Flags().StringVar(&initStyle, "style", "", "Claude Code rule layout: split or single")
	initCmd.Flags().BoolVar(&initOverwrite, "overwrite", false, "Allow overwriting existing files")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Preview the files without writing")
	initCmd.Flags().BoolVar(&initNoMerge, "no-merge-settings", false, "Replace IDE settings files instead of merging")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the framework artifacts into a project",
	Long: `Install the AAMAD artifacts into the destination folder.

The bundled Cursor tree (.cursor/, project-context/, CHECKLIST.md, README.md) is
always extracted. For claude-code and vscode it is then converted to that IDE's
layout. AGENTS.md and the install stamp .aamad/install.yaml are written last.

Without --ide, the configured default is used; on a terminal with no default
configured, a menu asks for the IDE.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := resolveIDE(initIDE, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		style, err := ruleStyle(initStyle)
		if err != nil {
			return err
		}

		paths, err := integrations.Install(cmd.Context(), tool, initDest, integrations.InstallOptions{
			Overwrite:     initOverwrite,
			DryRun:        initDryRun,
			MergeSettings: mergeSettings(initNoMerge),
			RuleStyle:     style,
			Version:       buildVersion,
		})
		if err != nil {
			return err
		}

		printPaths(cmd.OutOrStdout(), initDryRun, paths)
		return nil
	},
}

// ruleStyle resolves the flag value, falling back to the configured style.
func ruleStyle(flag string) (convert.RuleStyle, error) {
	if flag == "" {
		flag = config.Get(config.KeyRuleStyle)
	}
	if flag == "" {
		return convert.StyleSplit, nil
	}
	return convert.ParseRuleStyle(flag)
}

// mergeSettings is on unless disabled by flag or configuration.
func mergeSettings(noMerge bool) bool {
	return !noMerge && config.GetBool(config.KeyMergeSettings)
}

func fmtTool(t integrations.ToolName) string {
	cfg, ok := integrations.Config(t)
	if !ok {
		return string(t)
	}
	return fmt.Sprintf("%s (%s)", cfg.Label, t)
}
