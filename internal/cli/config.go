package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gostack-labs/gostack/internal/branding"
	"github.com/gostack-labs/gostack/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write %s settings stored at ~/%s/config.yaml.

Keys:
  %s       username used in generated module paths (default: git user.name)
  %s       host used in generated module paths (default: %s)
  %s  semver constraint for the tailwindcss package (default: ^3)

Every key can be overridden from the environment, e.g. %s.`,
		branding.DisplayName(), branding.HomeDir(),
		config.KeyGitHubUser,
		config.KeyModuleHost, branding.ModuleHost(),
		config.KeyTailwindVersion,
		branding.EnvVar(config.KeyGitHubUser)),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
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
		if !knownKey(args[0]) {
			return fmt.Errorf("unknown config key %q (known keys: %v)", args[0], config.Keys())
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configuration value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}

func knownKey(key string) bool {
	for _, k := range config.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
