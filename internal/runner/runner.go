package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// NoExitCode is reported when a process ended without a representable exit
// code, for example when it was killed by a signal.
const NoExitCode = -1

// Runner defines the interface for running an external command.
type Runner interface {
	// Run executes name with args in dir and blocks until it exits.
	// A process that runs and exits non-zero is not an error: the code is
	// reported in Output. The error return is for spawn failures only
	// (binary not found, dir missing, context canceled).
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}

// ExecRunner is the production Runner backed by os/exec. Output streams are
// captured in memory and never echoed.
type ExecRunner struct{}

// New returns an ExecRunner.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when the process was terminated by a signal.
			out.ExitCode = exitCode(exitErr.ExitCode())
			return out, nil
		}
		return out, fmt.Errorf("running %s: %w", name, err)
	}

	out.ExitCode = 0
	return out, nil
}

func exitCode(code int) int {
	if code < 0 {
		return NoExitCode
	}
	return code
}
