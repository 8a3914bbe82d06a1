package cli

import (
	"github.com/spf13/cobra"

	"github.com/gostack-labs/gostack/internal/branding"
	"github.com/gostack-labs/gostack/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Go web projects: an echo server with optional sessions,
Turso database, htmx, Tailwind CSS and air live reload, ready to run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
