package pattern

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	ErrEmptyCategory     = errors.New("category name cannot be empty")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrEmptyPattern      = errors.New("pattern cannot be empty")
)

// Validate checks the dictionary invariants: named categories, no duplicate
// category, no empty pattern.
func Validate(d Dictionary) error {
	seen := make(map[string]bool, len(d))
	for i, c := range d {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: category at index %d", ErrEmptyCategory, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, c.Name)
		}
		seen[c.Name] = true

		for j, p := range c.Patterns {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("%w: %s[%d]", ErrEmptyPattern, c.Name, j)
			}
		}
	}
	return nil
}

// LoadYAML reads a dictionary from an ordered YAML mapping of category name
// to pattern list, and validates it.
func LoadYAML(r io.Reader) (Dictionary, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode pattern file: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("pattern file must be a mapping of category to patterns")
	}

	dict := make(Dictionary, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var patterns []string
		if err := value.Decode(&patterns); err != nil {
			return nil, fmt.Errorf("category %s: %w", key.Value, err)
		}
		dict = append(dict, Category{Name: key.Value, Patterns: patterns})
	}

	if err := Validate(dict); err != nil {
		return nil, err
	}
	return dict, nil
}
