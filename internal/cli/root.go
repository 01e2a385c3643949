package cli

import (
	"fmt"
	"os"

	"github.com/aamad-labs/aamad/internal/branding"
	"github.com/aamad-labs/aamad/internal/config"
	"github.com/aamad-labs/aamad/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel  string
	logFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs the multi-agent framework artifacts (rules, agent personas,
prompts and project-context templates) into a project, converting them to the
layout of the chosen IDE: Cursor, Claude Code, or VS Code with GitHub Copilot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := config.Get(config.KeyLogLevel)
		if logLevel != "" {
			level = logLevel
		}
		if err := logger.SetLogLevel(level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}

		format := config.Get(config.KeyLogFormat)
		if logFormat != "" {
			format = logFormat
		}
		logger.SetLogFormat(format)
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
