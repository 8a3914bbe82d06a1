// Package branding provides compile-time identity values for the CLI.
//
// Edit branding.yaml in this package to rename the binary or its home
// directory; Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	ModuleHost  string `yaml:"module_host"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "gostack",
			DisplayName: "GoStack",
			Description: "Scaffold Go web services",
			HomeDir:     ".gostack",
			EnvPrefix:   "GOSTACK",
			GoModule:    "github.com/gostack-labs/gostack",
			ModuleHost:  "github.com",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "gostack").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "GoStack").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".gostack").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GOSTACK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns this tool's own Go module path.
func GoModule() string { load(); return defaults.GoModule }

// ModuleHost returns the default host used in generated module paths.
func ModuleHost() string { load(); return defaults.ModuleHost }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "GOSTACK_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
