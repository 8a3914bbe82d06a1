package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
	"golang.org/x/mod/module"

	"github.com/gostack-labs/gostack/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyGitHubUser      = "github_user"
	KeyModuleHost      = "module_host"
	KeyTailwindVersion = "tailwind_version"
)

// validators holds every known key and the check its values must pass.
var validators = map[string]func(string) error{
	KeyGitHubUser: func(string) error { return nil },
	KeyModuleHost: func(v string) error {
		if v == "" {
			return fmt.Errorf("module host must not be empty")
		}
		if err := module.CheckPath(v + "/owner/app"); err != nil {
			return fmt.Errorf("invalid module host %q: %w", v, err)
		}
		return nil
	},
	KeyTailwindVersion: func(v string) error {
		if _, err := semver.NewConstraint(v); err != nil {
			return fmt.Errorf("invalid version constraint %q: %w", v, err)
		}
		return nil
	},
}

var v = viper.New()

// Settings is a snapshot of the effective user settings.
type Settings struct {
	GitHubUser      string
	ModuleHost      string
	TailwindVersion string
}

// Dir returns the path to the config directory (~/.gostack/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.gostack/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes settings from the config file, the environment and the
// built-in defaults. A missing config file is not an error.
func Load() {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyModuleHost, branding.ModuleHost())

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
}

// Keys returns every known setting key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(validators))
	for k := range validators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Current returns the effective settings.
func Current() Settings {
	return Settings{
		GitHubUser:      Get(KeyGitHubUser),
		ModuleHost:      Get(KeyModuleHost),
		TailwindVersion: Get(KeyTailwindVersion),
	}
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
