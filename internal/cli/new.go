package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gostack-labs/gostack/internal/branding"
	"github.com/gostack-labs/gostack/internal/builder"
	"github.com/gostack-labs/gostack/internal/config"
	"github.com/gostack-labs/gostack/internal/project"
	"github.com/gostack-labs/gostack/internal/prompt"
	"github.com/gostack-labs/gostack/internal/recipe"
)

// newOptions holds the flags of the new command.
type newOptions struct {
	sessions  bool
	turso     bool
	htmx      bool
	tailwind  bool
	air       bool
	recipe    string
	outputDir string
	dryRun    bool
}

var newOpts newOptions

func init() {
	f := newCmd.Flags()
	f.BoolVar(&newOpts.sessions, recipe.FeatureSessions, false, "Use gorilla sessions")
	f.BoolVar(&newOpts.turso, recipe.FeatureTurso, false, "Use a Turso (libSQL) database")
	f.BoolVar(&newOpts.htmx, recipe.FeatureHTMX, false, "Use htmx")
	f.BoolVar(&newOpts.tailwind, recipe.FeatureTailwind, false, "Use Tailwind CSS")
	f.BoolVar(&newOpts.air, recipe.FeatureAir, false, "Use air for live reload")
	f.StringVar(&newOpts.recipe, "recipe", "", "Read the app name and features from a recipe file")
	f.StringVar(&newOpts.outputDir, "output-dir", "", "Directory to create the project in (default: current directory)")
	f.BoolVar(&newOpts.dryRun, "dry-run", false, "Print the plan without writing anything")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Generate a new Go web project",
	Long: fmt.Sprintf(`Generate a new Go web project in ./<name> and run the toolchain in it.

Without a name or recipe, %s asks for the name and every feature not given
as a flag. Feature flags override the features of a recipe.

Examples:
  %[2]s new blog --sessions --turso --htmx
  %[2]s new --recipe blog.yaml --output-dir ~/src
  %[2]s new shop --tailwind --air --dry-run`, branding.DisplayName(), branding.CLIName()),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newOpts.projectConfig(args, cmd.Flags().Changed, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		// The build is not cancellable once it starts.
		ctx := context.Background()
		b, err := builder.New(ctx, cfg, builder.Options{
			OutputDir: newOpts.outputDir,
			Settings:  config.Current(),
		})
		if err != nil {
			return err
		}

		if newOpts.dryRun {
			b.Describe(cmd.OutOrStdout())
			return nil
		}
		return b.Build(ctx, cmd.OutOrStdout())
	},
}

// projectConfig assembles the project configuration from, in order of
// precedence: explicit flags and the name argument, the recipe file, and
// the interactive prompts when neither a name nor a recipe is given. Feature
// flags given alongside the prompts answer their questions.
func (o newOptions) projectConfig(args []string, changed func(string) bool, in io.Reader, out io.Writer) (project.Config, error) {
	if len(args) == 0 && o.recipe == "" {
		return prompt.CollectPreset(in, out, o.preset(changed))
	}

	var base project.Config
	if o.recipe != "" {
		r, err := recipe.ParseFile(o.recipe)
		if err != nil {
			return project.Config{}, err
		}
		base = r.Config()
	}
	if len(args) == 1 {
		base.AppName = args[0]
	}
	if err := validateName(base.AppName); err != nil {
		return project.Config{}, err
	}

	values := map[string]bool{
		recipe.FeatureSessions: o.sessions,
		recipe.FeatureTurso:    o.turso,
		recipe.FeatureHTMX:     o.htmx,
		recipe.FeatureTailwind: o.tailwind,
		recipe.FeatureAir:      o.air,
	}
	pick := func(flag string, current bool) bool {
		if changed(flag) {
			return values[flag]
		}
		return current
	}

	return project.NewBuilder().
		AppName(base.AppName).
		Sessions(pick(recipe.FeatureSessions, base.Sessions)).
		Turso(pick(recipe.FeatureTurso, base.Turso)).
		HTMX(pick(recipe.FeatureHTMX, base.HTMX)).
		Tailwind(pick(recipe.FeatureTailwind, base.Tailwind)).
		Air(pick(recipe.FeatureAir, base.Air)).
		Build(), nil
}

// preset turns the feature flags given on the command line into answers the
// prompts skip.
func (o newOptions) preset(changed func(string) bool) prompt.Preset {
	flag := func(name string, value bool) *bool {
		if !changed(name) {
			return nil
		}
		return &value
	}
	return prompt.Preset{
		Sessions: flag(recipe.FeatureSessions, o.sessions),
		Turso:    flag(recipe.FeatureTurso, o.turso),
		HTMX:     flag(recipe.FeatureHTMX, o.htmx),
		Tailwind: flag(recipe.FeatureTailwind, o.tailwind),
		Air:      flag(recipe.FeatureAir, o.air),
	}
}

// validateName rejects names that cannot become a single directory and the
// derived identifiers.
func validateName(name string) error {
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid app name %q: must be a single directory name", name)
	}
	if !project.ValidAppName(name) {
		return fmt.Errorf("invalid app name %q: must start with a letter", name)
	}
	return nil
}
