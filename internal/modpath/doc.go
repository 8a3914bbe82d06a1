// Package modpath resolves the Go module path embedded in generated source.
//
// The path is "<host>/<username>/<app>" when a version-control username can
// be found and the bare app name otherwise. Lookups are best-effort: every
// failure is swallowed and only changes the resulting identifier.
package modpath
