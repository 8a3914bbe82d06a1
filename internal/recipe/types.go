package recipe

import "github.com/gostack-labs/gostack/internal/project"

// Feature names accepted in a recipe's features list.
const (
	FeatureSessions = "sessions"
	FeatureTurso    = "turso"
	FeatureHTMX     = "htmx"
	FeatureTailwind = "tailwind"
	FeatureAir      = "air"
)

// Recipe is the parsed form of a recipe file.
type Recipe struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Features    []string `yaml:"features,omitempty"`
}

// Has reports whether the recipe enables feature.
func (r *Recipe) Has(feature string) bool {
	for _, f := range r.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// Config converts the recipe to a project configuration.
func (r *Recipe) Config() project.Config {
	return project.NewBuilder().
		AppName(r.Name).
		Sessions(r.Has(FeatureSessions)).
		Turso(r.Has(FeatureTurso)).
		HTMX(r.Has(FeatureHTMX)).
		Tailwind(r.Has(FeatureTailwind)).
		Air(r.Has(FeatureAir)).
		Build()
}
