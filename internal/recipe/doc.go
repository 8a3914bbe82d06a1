// Package recipe loads project recipes: small YAML files naming an app and
// the features it opts into. Recipes are validated against an embedded JSON
// schema before they are turned into a project configuration.
package recipe
