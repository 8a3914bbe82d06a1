// Package config manages user-level settings stored at ~/.gostack/config.yaml.
// Settings can be overridden with GOSTACK_* environment variables and cover
// the git hosting user, the module host and the Tailwind version constraint
// used for generated projects.
package config
