package scaffold

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gostack-labs/gostack/internal/project"
)

const testModule = "github.com/octocat/blog"

// allConfigs returns the app name combined with every flag combination.
func allConfigs(appName string) []project.Config {
	var cfgs []project.Config
	for mask := 0; mask < 32; mask++ {
		cfgs = append(cfgs, project.NewBuilder().
			AppName(appName).
			Sessions(mask&1 != 0).
			Turso(mask&2 != 0).
			HTMX(mask&4 != 0).
			Tailwind(mask&8 != 0).
			Air(mask&16 != 0).
			Build())
	}
	return cfgs
}

func mustPlan(t *testing.T, cfg project.Config, root string) *Plan {
	t.Helper()
	p, err := NewPlan(cfg, root, testModule)
	if err != nil {
		t.Fatalf("NewPlan(%+v) error: %v", cfg, err)
	}
	return p
}

func relDirs(p *Plan) []string {
	out := make([]string, len(p.Dirs))
	for i, d := range p.Dirs {
		out[i] = p.Rel(d)
	}
	return out
}

func relFiles(p *Plan) []string {
	var out []string
	for _, f := range p.SortedFiles() {
		out = append(out, p.Rel(f))
	}
	return out
}

func TestPlanDirs_Baseline(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	p := mustPlan(t, project.Config{AppName: "blog"}, root)

	want := []string{".", "cmd", "cmd/blog", "internal", "internal/routes", "internal/bctx", "public"}
	assertStrings(t, relDirs(p), want)
	if p.Dirs[0] != root {
		t.Errorf("first dir = %q, want project root %q", p.Dirs[0], root)
	}
}

func TestPlanDirs_AllFlags(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	cfg := project.Config{AppName: "blog", Sessions: true, Turso: true, HTMX: true, Tailwind: true, Air: true}
	p := mustPlan(t, cfg, root)

	want := []string{
		".", "cmd", "cmd/blog", "internal", "internal/routes", "internal/bctx", "public",
		"internal/env", "internal/render", "testdb", "internal/db", "css",
	}
	assertStrings(t, relDirs(p), want)
}

func TestPlanDirs_GuardsAndUniqueness(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")

	for _, cfg := range allConfigs("blog") {
		p := mustPlan(t, cfg, root)
		dirs := relDirs(p)

		seen := make(map[string]int)
		for i, d := range dirs {
			if prev, dup := seen[d]; dup {
				t.Errorf("%+v: duplicate dir %q at %d and %d", cfg, d, prev, i)
			}
			seen[d] = i
		}

		guards := map[string]bool{
			"internal/env":    cfg.Sessions || cfg.Turso,
			"internal/render": cfg.HTMX,
			"testdb":          cfg.Turso,
			"internal/db":     cfg.Turso,
			"css":             cfg.Tailwind,
		}
		for dir, want := range guards {
			if _, got := seen[dir]; got != want {
				t.Errorf("%+v: dir %q present = %v, want %v", cfg, dir, got, want)
			}
		}

		// Parents always precede children.
		for i, d := range dirs {
			if d == "." {
				continue
			}
			parent := filepath.ToSlash(filepath.Dir(d))
			if j, ok := seen[parent]; !ok || j >= i {
				t.Errorf("%+v: parent %q of %q not created first", cfg, parent, d)
			}
		}
	}
}

func TestPlanFiles_KeySetFollowsFlags(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")

	for _, cfg := range allConfigs("blog") {
		p := mustPlan(t, cfg, root)

		want := []string{
			"main.go", "Makefile", ".gitignore", "cmd/blog/main.go",
			"internal/routes/root.go", "internal/bctx/bctx.go", "public/index.html",
		}
		if cfg.Sessions || cfg.Turso {
			want = append(want, ".env", "internal/env/env.go")
		}
		if cfg.HTMX {
			want = append(want, "internal/render/render.go")
		}
		if cfg.Turso {
			want = append(want, "internal/db/db.go", "testdb/testdb.db")
		}
		if cfg.Tailwind {
			want = append(want, "css/index.css")
		}
		sort.Strings(want)

		assertStrings(t, relFiles(p), want)
	}
}

func TestPlanFiles_Deterministic(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")

	for _, cfg := range allConfigs("blog") {
		a := mustPlan(t, cfg, root)
		b := mustPlan(t, cfg, root)
		if len(a.Files) != len(b.Files) {
			t.Fatalf("%+v: file count differs: %d vs %d", cfg, len(a.Files), len(b.Files))
		}
		for path, content := range a.Files {
			if other, ok := b.Files[path]; !ok || other != content {
				t.Errorf("%+v: %s differs between plans", cfg, path)
			}
		}
	}
}

func TestPlan_ContextIdentifiersForBlog(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	p := mustPlan(t, project.Config{AppName: "blog", Sessions: true, Turso: true}, root)

	ctxFile := filepath.Join(root, "internal", "bctx", "bctx.go")
	content, ok := p.Files[ctxFile]
	if !ok {
		t.Fatalf("missing %s in plan", ctxFile)
	}
	assertContains(t, content, "package bctx")
	assertContains(t, content, "type BCtx struct")
	assertContains(t, content, "Session *sessions.Session")
	assertContains(t, content, "DB *sql.DB")
	assertContains(t, content, `"database/sql"`)
	assertContains(t, content, `"github.com/gorilla/sessions"`)
}

func TestPlan_ContextWithoutOptionalHandles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	p := mustPlan(t, project.Config{AppName: "blog"}, root)

	content := p.Files[filepath.Join(root, "internal", "bctx", "bctx.go")]
	assertContains(t, content, `"github.com/labstack/echo/v4"`)
	assertNotContains(t, content, "sessions")
	assertNotContains(t, content, "sql")
}

func TestPlan_ModulePathSubstituted(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	p := mustPlan(t, project.Config{AppName: "blog"}, root)

	main := p.Files[filepath.Join(root, "main.go")]
	assertContains(t, main, `blog "github.com/octocat/blog/cmd/blog"`)
	assertContains(t, main, "blog.Run()")

	routes := p.Files[filepath.Join(root, "internal", "routes", "root.go")]
	assertContains(t, routes, `"github.com/octocat/blog/internal/bctx"`)
	assertContains(t, routes, `"Blog is up"`)
}

func TestPlan_BareModulePath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-blog")
	p, err := NewPlan(project.Config{AppName: "my-blog", Sessions: true}, root, "my-blog")
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}

	main := p.Files[filepath.Join(root, "main.go")]
	assertContains(t, main, `myblog "my-blog/cmd/my-blog"`)

	cmd := p.Files[filepath.Join(root, "cmd", "my-blog", "main.go")]
	assertContains(t, cmd, "package myblog")
	assertContains(t, cmd, `"my_blog_session"`)
	assertContains(t, cmd, `"my-blog/internal/mctx"`)
}

func TestPlan_ReservedAppNames(t *testing.T) {
	tests := []struct {
		app  string
		pkg  string
		impt string
	}{
		{"main", "appmain", `appmain "github.com/octocat/main/cmd/main"`},
		{"type", "apptype", `apptype "github.com/octocat/type/cmd/type"`},
		{"log", "applog", `applog "github.com/octocat/log/cmd/log"`},
	}
	for _, tt := range tests {
		t.Run(tt.app, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), tt.app)
			p, err := NewPlan(project.Config{AppName: tt.app}, root, "github.com/octocat/"+tt.app)
			if err != nil {
				t.Fatalf("NewPlan() error: %v", err)
			}
			main := p.Files[filepath.Join(root, "main.go")]
			assertContains(t, main, tt.impt)
			assertContains(t, main, tt.pkg+".Run()")

			cmd := p.Files[filepath.Join(root, "cmd", tt.app, "main.go")]
			assertContains(t, cmd, "package "+tt.pkg+"\n")
		})
	}
}

func TestPlan_NoUnsubstitutedPlaceholders(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")

	for _, cfg := range allConfigs("blog") {
		p := mustPlan(t, cfg, root)
		for path, content := range p.Files {
			for _, marker := range []string{"{{", "}}", "<no value>"} {
				if strings.Contains(content, marker) {
					t.Errorf("%+v: %s contains %q", cfg, p.Rel(path), marker)
				}
			}
		}
	}
}

func TestPlan_EmptyDatabasePlaceholder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	p := mustPlan(t, project.Config{AppName: "blog", Turso: true}, root)

	content, ok := p.Files[filepath.Join(root, "testdb", "testdb.db")]
	if !ok {
		t.Fatal("testdb/testdb.db missing from plan")
	}
	if content != "" {
		t.Errorf("testdb.db content = %q, want empty", content)
	}
}

func TestNewPlan_InvalidAppName(t *testing.T) {
	for _, name := range []string{"", "1blog", "-blog", "ébloge"} {
		_, err := NewPlan(project.Config{AppName: name}, t.TempDir(), name)
		if !errors.Is(err, ErrInvalidAppName) {
			t.Errorf("NewPlan(%q) error = %v, want ErrInvalidAppName", name, err)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %d entries %v, want %d entries %v", len(got), got, len(want), want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q\n--- content ---\n%s", substr, content)
	}
}
