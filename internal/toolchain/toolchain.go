package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/gostack-labs/gostack/internal/project"
	"github.com/gostack-labs/gostack/internal/runner"
)

// DefaultTailwindVersion is the Tailwind constraint installed when none is
// configured. Tailwind 4 dropped the init command the pipeline relies on.
const DefaultTailwindVersion = "^3"

// ErrStepFailed is wrapped by every error returned from Pipeline.Run.
var ErrStepFailed = errors.New("toolchain step failed")

// Step is one external command of the pipeline.
type Step struct {
	Name    string
	Command string
	Args    []string

	// Feature names the flag that gates the step; empty for unconditional
	// steps. Enabled is nil for unconditional steps.
	Feature string
	Enabled func(project.Config) bool
}

// CommandLine returns the step as it would be typed in a shell.
func (s Step) CommandLine() string {
	return strings.TrimSpace(s.Command + " " + strings.Join(s.Args, " "))
}

// Active reports whether the step runs for cfg.
func (s Step) Active(cfg project.Config) bool {
	return s.Enabled == nil || s.Enabled(cfg)
}

// StepError describes a step that could not be started or exited non-zero.
type StepError struct {
	Step     string
	Command  string
	ExitCode int   // runner.NoExitCode when the process never reported one
	Err      error // spawn error, nil when the process ran
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Step, e.Command, e.Err)
	}
	return fmt.Sprintf("%s (%s) exited with code %d", e.Step, e.Command, e.ExitCode)
}

// Unwrap exposes ErrStepFailed and the spawn error, if any.
func (e *StepError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrStepFailed, e.Err}
	}
	return []error{ErrStepFailed}
}

// Options customizes the pipeline.
type Options struct {
	// TailwindVersion is a semver constraint for the tailwindcss package.
	// Empty selects DefaultTailwindVersion.
	TailwindVersion string
}

// Pipeline is the ordered list of toolchain steps for one project.
type Pipeline struct {
	runner runner.Runner
	steps  []Step
}

// New builds the pipeline for a project whose module path is modulePath.
// An invalid Tailwind constraint is rejected here, before anything runs.
func New(r runner.Runner, modulePath string, opts Options) (*Pipeline, error) {
	version := opts.TailwindVersion
	if version == "" {
		version = DefaultTailwindVersion
	}
	if _, err := semver.NewConstraint(version); err != nil {
		return nil, fmt.Errorf("invalid tailwind version %q: %w", version, err)
	}

	return &Pipeline{
		runner: r,
		steps:  defaultSteps(modulePath, "tailwindcss@"+version),
	}, nil
}

func tailwind(cfg project.Config) bool { return cfg.Tailwind }
func air(cfg project.Config) bool      { return cfg.Air }

func defaultSteps(modulePath, tailwindPackage string) []Step {
	return []Step{
		{Name: "module init", Command: "go", Args: []string{"mod", "init", modulePath}},
		{Name: "package init", Command: "pnpm", Args: []string{"init"}, Feature: "tailwind", Enabled: tailwind},
		{Name: "tailwind install", Command: "pnpm", Args: []string{"add", "-D", tailwindPackage}, Feature: "tailwind", Enabled: tailwind},
		{Name: "tailwind init", Command: "npx", Args: []string{"tailwindcss", "init"}, Feature: "tailwind", Enabled: tailwind},
		{Name: "air init", Command: "air", Args: []string{"init"}, Feature: "air", Enabled: air},
		{Name: "module tidy", Command: "go", Args: []string{"mod", "tidy"}},
		{Name: "format", Command: "go", Args: []string{"fmt", "./..."}},
	}
}

// Steps returns every step in execution order, including inactive ones.
func (p *Pipeline) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Active returns the steps that run for cfg, in execution order.
func (p *Pipeline) Active(cfg project.Config) []Step {
	var out []Step
	for _, s := range p.steps {
		if s.Active(cfg) {
			out = append(out, s)
		}
	}
	return out
}

// Run executes the active steps in dir and stops at the first failure.
// Captured stderr of a failing step is echoed to w.
func (p *Pipeline) Run(ctx context.Context, w io.Writer, dir string, cfg project.Config) error {
	for _, s := range p.steps {
		if !s.Active(cfg) {
			fmt.Fprintf(w, "  [SKIP] %s (%s not selected)\n", s.CommandLine(), s.Feature)
			continue
		}

		fmt.Fprintf(w, "  [RUN ] %s\n", s.CommandLine())
		out, err := p.runner.Run(ctx, dir, s.Command, s.Args...)
		if err != nil {
			return &StepError{Step: s.Name, Command: s.CommandLine(), ExitCode: runner.NoExitCode, Err: err}
		}
		if !out.Success() {
			code := runner.NoExitCode
			if out != nil {
				code = out.ExitCode
				echoStderr(w, out.Stderr)
			}
			return &StepError{Step: s.Name, Command: s.CommandLine(), ExitCode: code}
		}
	}
	return nil
}

func echoStderr(w io.Writer, stderr string) {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return
	}
	for _, line := range strings.Split(stderr, "\n") {
		fmt.Fprintf(w, "         %s\n", line)
	}
}
