package project

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config is the feature-flag set of a project plus its app name.
type Config struct {
	AppName  string
	Sessions bool // gorilla sessions through echo-contrib
	Turso    bool // libSQL database client and a local test database
	HTMX     bool
	Tailwind bool
	Air      bool // live reload
}

// Builder accumulates optional values for a Config. Unset booleans default
// to false and an unset app name defaults to the empty string. The builder
// does not validate anything.
type Builder struct {
	appName  *string
	sessions *bool
	turso    *bool
	htmx     *bool
	tailwind *bool
	air      *bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AppName(name string) *Builder { b.appName = &name; return b }
func (b *Builder) Sessions(v bool) *Builder     { b.sessions = &v; return b }
func (b *Builder) Turso(v bool) *Builder        { b.turso = &v; return b }
func (b *Builder) HTMX(v bool) *Builder         { b.htmx = &v; return b }
func (b *Builder) Tailwind(v bool) *Builder     { b.tailwind = &v; return b }
func (b *Builder) Air(v bool) *Builder          { b.air = &v; return b }

// Build returns the Config with defaults applied for every unset field.
func (b *Builder) Build() Config {
	return Config{
		AppName:  valueOr(b.appName, ""),
		Sessions: valueOr(b.sessions, false),
		Turso:    valueOr(b.turso, false),
		HTMX:     valueOr(b.htmx, false),
		Tailwind: valueOr(b.tailwind, false),
		Air:      valueOr(b.air, false),
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// NeedsEnv reports whether the generated project gets an environment helper
// and a .env file. Sessions need a signing secret and Turso needs a database
// URL and token; a project with neither has nothing to load.
func (c Config) NeedsEnv() bool {
	return c.Sessions || c.Turso
}

// ValidAppName reports whether name can produce the derived context
// identifiers: it must be non-empty and start with an ASCII letter.
func ValidAppName(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// initial returns the first byte of the app name. Callers guarantee a
// non-empty name starting with an ASCII letter.
func (c Config) initial() string {
	return c.AppName[:1]
}

// ContextName returns the generated context package and variable name,
// e.g. "bctx" for app name "blog".
func (c Config) ContextName() string {
	return strings.ToLower(c.initial()) + "ctx"
}

// ContextType returns the generated context type name, e.g. "BCtx" for app
// name "blog".
func (c Config) ContextType() string {
	return strings.ToUpper(c.initial()) + "Ctx"
}

// PackageName returns a valid Go package identifier for cmd/<app_name>.
// Runes outside [a-z0-9] are dropped after lower-casing. Names that cannot
// be an importable package (leading digit, "main", Go keywords) or that would
// clash with the "log" import of the generated main.go get an "app" prefix.
func (c Config) PackageName() string {
	var sb strings.Builder
	for _, r := range strings.ToLower(c.AppName) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	switch {
	case name == "":
		return "app"
	case unicode.IsDigit(rune(name[0])), name == "main", name == "log", token.IsKeyword(name):
		return "app" + name
	}
	return name
}

// Title returns a human-readable title for the app, e.g. "My Blog" for
// "my-blog".
func (c Config) Title() string {
	words := strings.FieldsFunc(c.AppName, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
