package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aamad-labs/aamad/internal/branding"
	"github.com/aamad-labs/aamad/internal/bundle"
	"github.com/aamad-labs/aamad/internal/integrations"
	"github.com/spf13/cobra"
)

var statusDest string

func init() {
	statusCmd.Flags().StringVar(&statusDest, "dest", ".", "Project root")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what was installed into a project",
	Long: `Read the install stamp of a project and report the IDE, the bundle version,
installed files that have since been removed, and whether this build of the
CLI carries a newer bundle.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		stamp, err := bundle.ReadStamp(statusDest)
		if errors.Is(err, bundle.ErrNoStamp) {
			fmt.Fprintf(out, "No %s install found in %s. Run '%s init'.\n", branding.DisplayName(), statusDest, branding.CLIName())
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "IDE:       %s\n", fmtTool(integrations.ToolName(stamp.IDE)))
		fmt.Fprintf(out, "Version:   %s\n", stamp.Version)
		fmt.Fprintf(out, "Installed: %s\n", stamp.InstalledAt.Local().Format(time.RFC1123))
		fmt.Fprintf(out, "Files:     %d\n", len(stamp.Files))

		missing := missingFiles(statusDest, stamp.Files)
		for _, f := range missing {
			warnColor.Fprintf(out, "! missing %s\n", f)
		}

		cmp, err := bundle.CompareVersions(stamp.Version, buildVersion)
		switch {
		case err != nil:
			fmt.Fprintf(out, "Cannot compare versions: %v\n", err)
		case cmp < 0:
			warnColor.Fprintf(out, "! A newer bundle is available (%s → %s). Run '%s init --overwrite'.\n",
				stamp.Version, buildVersion, branding.CLIName())
		case cmp > 0:
			warnColor.Fprintf(out, "! Installed by a newer %s (%s) than this one (%s).\n",
				branding.CLIName(), stamp.Version, buildVersion)
		case len(missing) == 0:
			okColor.Fprintln(out, "✓ Up to date")
		}
		return nil
	},
}

// missingFiles returns the stamped paths that no longer exist under dest.
func missingFiles(dest string, files []string) []string {
	var missing []string
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(f))); err != nil {
			missing = append(missing, f)
		}
	}
	return missing
}
