package cli

import (
	"errors"
	"fmt"

	"github.com/aamad-labs/aamad/internal/schema"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

var (
	validateIDE  string
	validateDest string
)

func init() {
	validateCmd.Flags().StringVar(&validateIDE, "ide", "", "Layout to validate: claude-code or vscode (required)")
	validateCmd.Flags().StringVar(&validateDest, "dest", ".", "Project root")
	_ = validateCmd.MarkFlagRequired("ide")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check converted agent, instruction and prompt headers",
	Long: `Validate the frontmatter of every converted document under --dest against
the header schema of its kind. Every violation is reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := converterFor(validateIDE)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		checked, err := schema.ValidateTree(c.Name(), validateDest)
		if err == nil {
			okColor.Fprintf(out, "✓ %d documents valid\n", checked)
			return nil
		}

		var merr *multierror.Error
		if !errors.As(err, &merr) {
			return err
		}
		for _, e := range merr.Errors {
			failColor.Fprintf(out, "✗ %v\n", e)
		}
		return fmt.Errorf("%d problems in %d documents", len(merr.Errors), checked)
	},
}
