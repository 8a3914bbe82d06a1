package modpath

import (
	"context"
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/config"

	"github.com/gostack-labs/gostack/internal/runner"
)

// stubRunner returns a canned result for every command and records calls.
type stubRunner struct {
	out   *runner.Output
	err   error
	calls [][]string
}

func (s *stubRunner) Run(_ context.Context, _ string, name string, args ...string) (*runner.Output, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	return s.out, s.err
}

func TestParseConfigList(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		wantName string
		wantOK   bool
	}{
		{"single entry", "core.editor=vim\nuser.name=octocat\nuser.email=o@example.com\n", "octocat", true},
		{"last wins", "user.name=system\nuser.name=global\n", "global", true},
		{"no key", "core.editor=vim\n", "", false},
		{"empty value ignored", "user.name=\n", "", false},
		{"empty output", "", "", false},
		{"similar key", "github.user.name.old=x\n", "", false},
		{"value with equals", "user.name=a=b\n", "a=b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseConfigList(tt.output)
			if got != tt.wantName || ok != tt.wantOK {
				t.Errorf("parseConfigList() = (%q, %v), want (%q, %v)", got, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestCommandResolver(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := &stubRunner{out: &runner.Output{Stdout: "user.name=octocat\n"}}
		name, ok := NewCommandResolver(r, "/tmp").Username(context.Background())
		if !ok || name != "octocat" {
			t.Errorf("Username() = (%q, %v), want (%q, true)", name, ok, "octocat")
		}
		if len(r.calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(r.calls))
		}
		want := []string{"git", "config", "--list"}
		for i, a := range want {
			if r.calls[0][i] != a {
				t.Errorf("call[%d] = %q, want %q", i, r.calls[0][i], a)
			}
		}
	})

	t.Run("binary missing", func(t *testing.T) {
		r := &stubRunner{err: errors.New("executable file not found")}
		if _, ok := NewCommandResolver(r, "").Username(context.Background()); ok {
			t.Error("expected no username when git is missing")
		}
	})

	t.Run("non-zero exit", func(t *testing.T) {
		r := &stubRunner{out: &runner.Output{ExitCode: 128, Stdout: "user.name=octocat\n"}}
		if _, ok := NewCommandResolver(r, "").Username(context.Background()); ok {
			t.Error("expected no username on non-zero exit")
		}
	})
}

func TestGitConfigResolver(t *testing.T) {
	t.Run("reads user name", func(t *testing.T) {
		g := &GitConfigResolver{Load: func() (*config.Config, error) {
			cfg := config.NewConfig()
			cfg.User.Name = "octocat"
			return cfg, nil
		}}
		name, ok := g.Username(context.Background())
		if !ok || name != "octocat" {
			t.Errorf("Username() = (%q, %v), want (%q, true)", name, ok, "octocat")
		}
	})

	t.Run("load error", func(t *testing.T) {
		g := &GitConfigResolver{Load: func() (*config.Config, error) {
			return nil, errors.New("no such file")
		}}
		if _, ok := g.Username(context.Background()); ok {
			t.Error("expected no username on load error")
		}
	})

	t.Run("blank name", func(t *testing.T) {
		g := &GitConfigResolver{Load: func() (*config.Config, error) {
			return config.NewConfig(), nil
		}}
		if _, ok := g.Username(context.Background()); ok {
			t.Error("expected no username for empty config")
		}
	})
}

func TestChain(t *testing.T) {
	missing := &stubRunner{err: errors.New("not found")}
	found := &stubRunner{out: &runner.Output{Stdout: "user.name=from-git\n"}}

	tests := []struct {
		name   string
		chain  Chain
		want   string
		wantOK bool
	}{
		{"override wins", Chain{StaticResolver{Name: "override"}, NewCommandResolver(found, "")}, "override", true},
		{"blank override falls through", Chain{StaticResolver{}, NewCommandResolver(found, "")}, "from-git", true},
		{"nil entries skipped", Chain{nil, NewCommandResolver(found, "")}, "from-git", true},
		{"nothing resolves", Chain{StaticResolver{}, NewCommandResolver(missing, "")}, "", false},
		{"empty chain", Chain{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.chain.Username(context.Background())
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Username() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
