package scaffold

import (
	"fmt"

	"github.com/gostack-labs/gostack/internal/project"
)

// variantKey is the normalized flag triple that selects a command entrypoint.
type variantKey struct {
	DB       bool
	Sessions bool
	CSS      bool
}

func (k variantKey) String() string {
	return fmt.Sprintf("{db:%t sessions:%t css:%t}", k.DB, k.Sessions, k.CSS)
}

func keyFor(cfg project.Config) variantKey {
	return variantKey{DB: cfg.Turso, Sessions: cfg.Sessions, CSS: cfg.Tailwind}
}

// cmdVariants maps every reachable flag triple to its pre-authored command
// entrypoint. Adding a flag to this axis doubles the catalog.
var cmdVariants = map[variantKey]string{
	{DB: false, Sessions: false, CSS: false}: "cmd/plain.go.tmpl",
	{DB: false, Sessions: false, CSS: true}:  "cmd/css.go.tmpl",
	{DB: false, Sessions: true, CSS: false}:  "cmd/sessions.go.tmpl",
	{DB: false, Sessions: true, CSS: true}:   "cmd/sessions_css.go.tmpl",
	{DB: true, Sessions: false, CSS: false}:  "cmd/db.go.tmpl",
	{DB: true, Sessions: false, CSS: true}:   "cmd/db_css.go.tmpl",
	{DB: true, Sessions: true, CSS: false}:   "cmd/db_sessions.go.tmpl",
	{DB: true, Sessions: true, CSS: true}:    "cmd/db_sessions_css.go.tmpl",
}

// cmdVariant returns the command entrypoint template for cfg.
func cmdVariant(cfg project.Config) (string, error) {
	key := keyFor(cfg)
	name, ok := cmdVariants[key]
	if !ok {
		return "", fmt.Errorf("no command entrypoint variant for %s", key)
	}
	return name, nil
}
