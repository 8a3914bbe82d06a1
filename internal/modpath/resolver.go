package modpath

import (
	"bufio"
	"context"
	"strings"

	"github.com/go-git/go-git/v5/config"

	"github.com/gostack-labs/gostack/internal/runner"
)

// usernameKey is the git configuration key searched for in `git config --list`.
const usernameKey = "user.name"

// Resolver looks up the username used to namespace the module path.
type Resolver interface {
	// Username returns the username and true, or "" and false when none
	// could be determined. It never fails loudly.
	Username(ctx context.Context) (string, bool)
}

// CommandResolver shells out to `git config --list` and searches the output
// for the user.name key.
type CommandResolver struct {
	Runner runner.Runner
	Dir    string // working directory for git; empty means the current one
}

// NewCommandResolver returns a CommandResolver backed by r.
func NewCommandResolver(r runner.Runner, dir string) *CommandResolver {
	return &CommandResolver{Runner: r, Dir: dir}
}

// Username runs git and parses its output.
func (c *CommandResolver) Username(ctx context.Context) (string, bool) {
	out, err := c.Runner.Run(ctx, c.Dir, "git", "config", "--list")
	if err != nil || !out.Success() {
		return "", false
	}
	return parseConfigList(out.Stdout)
}

// parseConfigList finds user.name in `git config --list` output. Git lists
// system, global, then local values, so the last occurrence is the one git
// itself would use.
func parseConfigList(output string) (string, bool) {
	var name string
	found := false

	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), usernameKey) {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		name, found = value, true
	}
	return name, found
}

// GitConfigResolver reads the user's global git configuration file directly.
// It covers machines where the git binary is not on PATH.
type GitConfigResolver struct {
	// Load returns the parsed configuration; tests replace it.
	Load func() (*config.Config, error)
}

// NewGitConfigResolver returns a resolver over the global git config.
func NewGitConfigResolver() *GitConfigResolver {
	return &GitConfigResolver{
		Load: func() (*config.Config, error) {
			return config.LoadConfig(config.GlobalScope)
		},
	}
}

// Username returns user.name from the global git config.
func (g *GitConfigResolver) Username(_ context.Context) (string, bool) {
	cfg, err := g.Load()
	if err != nil || cfg == nil {
		return "", false
	}
	name := strings.TrimSpace(cfg.User.Name)
	if name == "" {
		return "", false
	}
	return name, true
}

// StaticResolver returns a fixed username, typically from user settings.
// An empty Name resolves to nothing.
type StaticResolver struct {
	Name string
}

// Username returns the configured name.
func (s StaticResolver) Username(_ context.Context) (string, bool) {
	name := strings.TrimSpace(s.Name)
	return name, name != ""
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Resolver

// Username returns the first username any resolver in the chain produces.
func (c Chain) Username(ctx context.Context) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if name, ok := r.Username(ctx); ok {
			return name, true
		}
	}
	return "", false
}

// Default builds the production resolver chain: an explicit override first,
// then the git binary, then the global git config file.
func Default(override string, r runner.Runner, dir string) Resolver {
	return Chain{
		StaticResolver{Name: override},
		NewCommandResolver(r, dir),
		NewGitConfigResolver(),
	}
}
