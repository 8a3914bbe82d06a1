package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/gostack-labs/gostack/internal/project"
)

//go:embed templates
var templateFS embed.FS

var templateCache sync.Map

// Template file names relative to the embedded templates directory.
const (
	tmplMain     = "main.go.tmpl"
	tmplRoutes   = "root.go.tmpl"
	tmplContext  = "ctx.go.tmpl"
	tmplDatabase = "db.go.tmpl"
	tmplRender   = "render.go.tmpl"
	tmplCSS      = "index.css.tmpl"
)

// templateData holds every placeholder available to the embedded templates.
// Placeholders that do not apply to the active flags are empty strings.
type templateData struct {
	AppName     string // e.g., "blog"
	ModulePath  string // e.g., "github.com/octocat/blog" or "blog"
	PackageName string // Go identifier for cmd/<app>, e.g., "myblog"
	Title       string // e.g., "My Blog"
	CtxName     string // e.g., "bctx"
	CtxType     string // e.g., "BCtx"

	Imports      string // import block body of the context file
	SessionField string // session handle field of the context type
	DBField      string // database handle field of the context type
}

// newTemplateData derives all placeholder values from cfg.
func newTemplateData(cfg project.Config, modulePath string) *templateData {
	d := &templateData{
		AppName:     cfg.AppName,
		ModulePath:  modulePath,
		PackageName: cfg.PackageName(),
		Title:       cfg.Title(),
		CtxName:     cfg.ContextName(),
		CtxType:     cfg.ContextType(),
	}

	var std, third []string
	if cfg.Turso {
		std = append(std, `"database/sql"`)
		d.DBField = "\tDB *sql.DB"
	}
	if cfg.Sessions {
		third = append(third, `"github.com/gorilla/sessions"`)
		d.SessionField = "\tSession *sessions.Session"
	}
	third = append(third, `"github.com/labstack/echo/v4"`)
	d.Imports = importBlock(std, third)

	return d
}

// importBlock renders tab-indented import lines, standard library first,
// groups separated by a blank line.
func importBlock(groups ...[]string) string {
	var parts []string
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		parts = append(parts, "\t"+strings.Join(g, "\n\t"))
	}
	return strings.Join(parts, "\n\n")
}

// loadTemplate parses an embedded template once and caches it.
func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(path.Base(name)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

// renderTemplate executes the named embedded template against data.
func renderTemplate(name string, data *templateData) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
