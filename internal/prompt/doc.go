// Package prompt collects a project configuration interactively from a
// line-oriented reader, re-asking until each answer is acceptable.
package prompt
