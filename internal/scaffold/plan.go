package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/gostack-labs/gostack/internal/project"
)

// ErrInvalidAppName is returned when the app name cannot produce the derived
// context identifiers: it must be non-empty and start with an ASCII letter.
var ErrInvalidAppName = errors.New("app name must start with an ASCII letter")

// Plan is the complete, immutable description of a project on disk.
type Plan struct {
	Root       string
	ModulePath string
	Config     project.Config

	// Dirs lists absolute directory paths in creation order. Every entry's
	// parent is either pre-existing or appears earlier in the list.
	Dirs []string

	// Files maps absolute file paths to their final content.
	Files map[string]string
}

// plannedFile is one conditional entry of the file layout.
type plannedFile struct {
	rel     string
	enabled bool
	render  func() (string, error)
}

// NewPlan derives the directory list and file contents for cfg under root,
// which is the project directory itself (typically <cwd>/<app_name>).
func NewPlan(cfg project.Config, root, modulePath string) (*Plan, error) {
	if !project.ValidAppName(cfg.AppName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAppName, cfg.AppName)
	}

	p := &Plan{
		Root:       root,
		ModulePath: modulePath,
		Config:     cfg,
		Dirs:       plannedDirs(cfg, root),
		Files:      make(map[string]string),
	}

	for _, f := range plannedFiles(cfg, modulePath) {
		if !f.enabled {
			continue
		}
		content, err := f.render()
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.rel, err)
		}
		p.Files[filepath.Join(root, filepath.FromSlash(f.rel))] = content
	}

	return p, nil
}

// plannedDirs returns the ordered directory list. Conditional directories
// come after the baseline so that their parents already exist.
func plannedDirs(cfg project.Config, root string) []string {
	rels := []string{
		"",
		"cmd",
		"cmd/" + cfg.AppName,
		"internal",
		"internal/routes",
		"internal/" + cfg.ContextName(),
		"public",
	}
	if cfg.NeedsEnv() {
		rels = append(rels, "internal/env")
	}
	if cfg.HTMX {
		rels = append(rels, "internal/render")
	}
	if cfg.Turso {
		rels = append(rels, "testdb", "internal/db")
	}
	if cfg.Tailwind {
		rels = append(rels, "css")
	}

	dirs := make([]string, len(rels))
	for i, rel := range rels {
		dirs[i] = filepath.Join(root, filepath.FromSlash(rel))
	}
	return dirs
}

// plannedFiles returns every file the layout knows about, with its guard and
// renderer. Only enabled entries end up in a Plan.
func plannedFiles(cfg project.Config, modulePath string) []plannedFile {
	data := newTemplateData(cfg, modulePath)
	tmpl := func(name string) func() (string, error) {
		return func() (string, error) { return renderTemplate(name, data) }
	}
	text := func(fn func(project.Config) string) func() (string, error) {
		return func() (string, error) { return fn(cfg), nil }
	}
	ctx := cfg.ContextName()

	return []plannedFile{
		{"main.go", true, tmpl(tmplMain)},
		{"Makefile", true, text(makefileBody)},
		{".gitignore", true, text(gitignoreBody)},
		{"cmd/" + cfg.AppName + "/main.go", true, func() (string, error) {
			name, err := cmdVariant(cfg)
			if err != nil {
				return "", err
			}
			return renderTemplate(name, data)
		}},
		{"internal/routes/root.go", true, tmpl(tmplRoutes)},
		{"internal/" + ctx + "/" + ctx + ".go", true, tmpl(tmplContext)},
		{"public/index.html", true, text(landingPage)},
		{".env", cfg.NeedsEnv(), text(dotenv)},
		{"internal/env/env.go", cfg.NeedsEnv(), text(envHelper)},
		{"internal/render/render.go", cfg.HTMX, tmpl(tmplRender)},
		{"internal/db/db.go", cfg.Turso, tmpl(tmplDatabase)},
		{"testdb/testdb.db", cfg.Turso, text(func(project.Config) string { return "" })},
		{"css/index.css", cfg.Tailwind, tmpl(tmplCSS)},
	}
}

// SortedFiles returns the planned file paths in lexical order.
func (p *Plan) SortedFiles() []string {
	files := make([]string, 0, len(p.Files))
	for f := range p.Files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Rel returns path relative to the plan root, falling back to path itself.
func (p *Plan) Rel(path string) string {
	rel, err := filepath.Rel(p.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
