package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gostack-labs/gostack/internal/branding"
	"github.com/gostack-labs/gostack/internal/config"
	"github.com/gostack-labs/gostack/internal/modpath"
	"github.com/gostack-labs/gostack/internal/project"
	"github.com/gostack-labs/gostack/internal/runner"
	"github.com/gostack-labs/gostack/internal/scaffold"
	"github.com/gostack-labs/gostack/internal/toolchain"
)

// Options configures an AppBuilder. Zero values select the defaults.
type Options struct {
	// OutputDir is the directory the project directory is created in.
	// Empty means the current working directory.
	OutputDir string

	// Settings carries the user settings. An empty module host falls back
	// to the branding default.
	Settings config.Settings

	// Runner executes external commands. Nil means runner.New().
	Runner runner.Runner

	// Resolver looks up the username for the module path. Nil means
	// modpath.Default with the configured user override.
	Resolver modpath.Resolver
}

// AppBuilder holds everything needed to generate one project. All derived
// values are computed once in New.
type AppBuilder struct {
	Config     project.Config
	Root       string
	ModulePath string
	Plan       *scaffold.Plan

	pipeline *toolchain.Pipeline
}

// New resolves the target directory and module path for cfg and plans the
// project. It touches nothing on disk.
func New(ctx context.Context, cfg project.Config, opts Options) (*AppBuilder, error) {
	parent, err := outputDir(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	run := opts.Runner
	if run == nil {
		run = runner.New()
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = modpath.Default(opts.Settings.GitHubUser, run, parent)
	}

	host := opts.Settings.ModuleHost
	if host == "" {
		host = branding.ModuleHost()
	}
	modulePath := modpath.Resolve(ctx, resolver, host, cfg.AppName)
	root := filepath.Join(parent, cfg.AppName)

	plan, err := scaffold.NewPlan(cfg, root, modulePath)
	if err != nil {
		return nil, err
	}

	pipeline, err := toolchain.New(run, modulePath, toolchain.Options{
		TailwindVersion: opts.Settings.TailwindVersion,
	})
	if err != nil {
		return nil, err
	}

	return &AppBuilder{
		Config:     cfg,
		Root:       root,
		ModulePath: modulePath,
		Plan:       plan,
		pipeline:   pipeline,
	}, nil
}

// outputDir returns the absolute parent directory for the project.
func outputDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory %s: %w", dir, err)
	}
	return abs, nil
}

// Build writes the planned tree and then runs the toolchain pipeline in it.
// The first failure stops the build; whatever was created stays on disk.
func (b *AppBuilder) Build(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "Creating %s in %s\n\n", b.Config.AppName, b.Root)
	if _, err := scaffold.Materialize(w, b.Plan); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRunning toolchain\n\n")
	if err := b.pipeline.Run(ctx, w, b.Root, b.Config); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nDone. Next steps:\n")
	fmt.Fprintf(w, "  cd %s\n", b.Config.AppName)
	if b.Config.Tailwind {
		fmt.Fprintf(w, "  make css\n")
	}
	if b.Config.Air {
		fmt.Fprintf(w, "  make dev\n")
	} else {
		fmt.Fprintf(w, "  make run\n")
	}
	return nil
}

// Describe prints what Build would do without doing it.
func (b *AppBuilder) Describe(w io.Writer) {
	fmt.Fprintf(w, "Project:     %s\n", b.Config.AppName)
	fmt.Fprintf(w, "Location:    %s\n", b.Root)
	fmt.Fprintf(w, "Module path: %s\n", b.ModulePath)

	fmt.Fprintf(w, "\nDirectories:\n")
	for _, dir := range b.Plan.Dirs {
		fmt.Fprintf(w, "  %s/\n", b.Plan.Rel(dir))
	}

	fmt.Fprintf(w, "\nFiles:\n")
	for _, file := range b.Plan.SortedFiles() {
		fmt.Fprintf(w, "  %s\n", b.Plan.Rel(file))
	}

	fmt.Fprintf(w, "\nCommands:\n")
	for _, step := range b.pipeline.Active(b.Config) {
		fmt.Fprintf(w, "  %s\n", step.CommandLine())
	}
}
