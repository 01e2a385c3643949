package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aamad-labs/aamad/internal/config"
	"github.com/spf13/cobra"
)

// configKeys are the settings config set accepts.
var configKeys = []string{
	config.KeyIDE,
	config.KeyRuleStyle,
	config.KeyMergeSettings,
	config.KeyLogLevel,
	config.KeyLogFormat,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.aamad/config.yaml.

Keys: ` + strings.Join(configKeys, ", ") + `.
Each key can also be set through the environment, e.g. AAMAD_IDE=vscode.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !slices.Contains(configKeys, key) {
			return fmt.Errorf("unknown config key %q: expected one of %s", key, strings.Join(configKeys, ", "))
		}
		if key == config.KeyIDE {
			tool, err := parseIDE(value)
			if err != nil {
				return err
			}
			value = string(tool)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
