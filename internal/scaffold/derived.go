package scaffold

import (
	"strings"

	"github.com/gostack-labs/gostack/internal/project"
)

// Fixed .gitignore blocks, appended base → database → stylesheet → live reload.
const (
	gitignoreBase = `# build output
bin/
*.exe
.env
`
	gitignoreDatabase = `# local database
testdb/*.db
testdb/*.db-*
`
	gitignoreStylesheet = `# node tooling
node_modules/
public/css/
`
	gitignoreLiveReload = `# air
tmp/
build-errors.log
`
)

// Fixed Makefile blocks, appended in the same order as the .gitignore ones.
const (
	makefileBase = `.PHONY: run build fmt
run:
	go run .
build:
	go build -o bin/{{APP_NAME}} .
fmt:
	go fmt ./...
`
	makefileDatabase = `.PHONY: db-reset
db-reset:
	rm -f testdb/testdb.db && touch testdb/testdb.db
`
	makefileStylesheet = `.PHONY: css css-watch
css:
	npx tailwindcss -i css/index.css -o public/css/index.css --minify
css-watch:
	npx tailwindcss -i css/index.css -o public/css/index.css --watch
`
	makefileLiveReload = `.PHONY: dev
dev:
	air
`
)

// appendBlocks joins the enabled blocks in order, each followed by a blank
// line.
func appendBlocks(blocks ...block) string {
	var sb strings.Builder
	for _, b := range blocks {
		if !b.enabled {
			continue
		}
		sb.WriteString(b.text)
		if !strings.HasSuffix(b.text, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type block struct {
	text    string
	enabled bool
}

// gitignoreBody assembles .gitignore for cfg.
func gitignoreBody(cfg project.Config) string {
	return appendBlocks(
		block{gitignoreBase, true},
		block{gitignoreDatabase, cfg.Turso},
		block{gitignoreStylesheet, cfg.Tailwind},
		block{gitignoreLiveReload, cfg.Air},
	)
}

// makefileBody assembles the Makefile for cfg.
func makefileBody(cfg project.Config) string {
	body := appendBlocks(
		block{makefileBase, true},
		block{makefileDatabase, cfg.Turso},
		block{makefileStylesheet, cfg.Tailwind},
		block{makefileLiveReload, cfg.Air},
	)
	return strings.ReplaceAll(body, "{{APP_NAME}}", cfg.AppName)
}

const envHelperBody = `package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env from the working directory into the process environment.
// Variables that are already set win; a missing file is ignored.
func Load() {
	_ = godotenv.Load()
}

// Get returns the value of key, or "" when it is unset.
func Get(key string) string {
	return os.Getenv(key)
}
{{SESSION_ACCESSORS}}{{DB_ACCESSORS}}`

const sessionAccessors = `
// SessionSecret returns the key used to sign session cookies.
func SessionSecret() string {
	return Get("SESSION_SECRET")
}
`

const dbAccessors = `
// DatabaseURL returns the libSQL connection URL.
func DatabaseURL() string {
	return Get("TURSO_DATABASE_URL")
}

// DatabaseToken returns the Turso auth token; empty for local files.
func DatabaseToken() string {
	return Get("TURSO_AUTH_TOKEN")
}
`

// envHelper renders internal/env/env.go for cfg.
func envHelper(cfg project.Config) string {
	return strings.NewReplacer(
		"{{SESSION_ACCESSORS}}", pick(cfg.Sessions, sessionAccessors),
		"{{DB_ACCESSORS}}", pick(cfg.Turso, dbAccessors),
	).Replace(envHelperBody)
}

const dotenvBody = `{{SESSION_VARS}}{{DB_VARS}}`

// dotenv renders .env for cfg.
func dotenv(cfg project.Config) string {
	return strings.NewReplacer(
		"{{SESSION_VARS}}", pick(cfg.Sessions, "SESSION_SECRET=change-me\n"),
		"{{DB_VARS}}", pick(cfg.Turso, "TURSO_DATABASE_URL=file:./testdb/testdb.db\nTURSO_AUTH_TOKEN=\n"),
	).Replace(dotenvBody)
}

const landingPageBody = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{TITLE}}</title>
{{STYLESHEET}}{{HTMX_SCRIPT}}</head>
<body{{BODY_CLASS}}>
  <h1>{{TITLE}}</h1>
{{HTMX_DEMO}}</body>
</html>
`

// landingPage renders public/index.html for cfg.
func landingPage(cfg project.Config) string {
	return strings.NewReplacer(
		"{{TITLE}}", cfg.Title(),
		"{{STYLESHEET}}", pick(cfg.Tailwind, `  <link rel="stylesheet" href="/css/index.css">`+"\n"),
		"{{HTMX_SCRIPT}}", pick(cfg.HTMX, `  <script src="https://unpkg.com/htmx.org@1.9.12"></script>`+"\n"),
		"{{BODY_CLASS}}", pick(cfg.Tailwind, ` class="min-h-screen p-8"`),
		"{{HTMX_DEMO}}", pick(cfg.HTMX, `  <button hx-get="/health" hx-target="#status">check status</button>
  <p id="status"></p>
`),
	).Replace(landingPageBody)
}

// pick returns text when on is set and "" otherwise.
func pick(on bool, text string) string {
	if on {
		return text
	}
	return ""
}
