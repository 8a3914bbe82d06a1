// Package cli defines the Cobra command tree for the gostack CLI. Each file
// in this package registers one top-level command with the root command.
// Commands delegate to internal packages for the work and only handle flag
// parsing, prompting and output.
package cli
