package recipe

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrInvalid is wrapped by errors for recipes that fail schema validation.
var ErrInvalid = errors.New("invalid recipe")

// InvalidError lists the schema violations of a recipe.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", ErrInvalid, e.Source)
	for _, issue := range e.Issues {
		fmt.Fprintf(&sb, "\n  %s", issue)
	}
	return sb.String()
}

func (e *InvalidError) Unwrap() error { return ErrInvalid }

// Parse validates data and decodes it into a Recipe. source names the input
// in error messages.
func Parse(data []byte, source string) (*Recipe, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating recipe %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing recipe %s: %w", source, err)
	}
	return &r, nil
}

// ParseFile reads and parses the recipe at path.
func ParseFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data, path)
}
