// Package scaffold turns a project.Config into a Plan: the ordered list of
// directories and the map of file path to final content for a new web
// service. It also writes a Plan to disk.
//
// Most bodies come from embedded templates rendered with text/template and
// the sprig function map. The command entrypoint is picked from a closed
// catalog of pre-authored variants, one per {database, sessions, stylesheet}
// combination. The Makefile, .gitignore, env helper, .env and landing page
// are assembled in code from fixed blocks and named placeholders.
package scaffold
