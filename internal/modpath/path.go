package modpath

import (
	"context"

	"golang.org/x/mod/module"
)

// Derive returns "<host>/<username>/<appName>". When the username is empty,
// or the joined path is not a valid Go module path (a username containing
// spaces, for instance), the bare app name is used instead.
func Derive(host, username, appName string) string {
	if username == "" || host == "" {
		return appName
	}
	candidate := host + "/" + username + "/" + appName
	if err := module.CheckPath(candidate); err != nil {
		return appName
	}
	return candidate
}

// Resolve asks r for a username and derives the module path from it.
func Resolve(ctx context.Context, r Resolver, host, appName string) string {
	if r == nil {
		return appName
	}
	name, ok := r.Username(ctx)
	if !ok {
		return appName
	}
	return Derive(host, name, appName)
}
