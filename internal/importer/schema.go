package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level structure of a catalog import file.
// JSON files parse too, since YAML is a superset.
type CatalogSchema struct {
	Defaults *DefaultsImport `yaml:"defaults,omitempty"`
	Items    []ItemImport    `yaml:"items"`
}

// DefaultsImport fills fields an item leaves empty.
type DefaultsImport struct {
	ContentType string `yaml:"content_type,omitempty"`
	Difficulty  string `yaml:"difficulty,omitempty"`
	Equipment   string `yaml:"equipment,omitempty"`
	Format      string `yaml:"format,omitempty"`
}

// ItemImport defines one workout or program in the import file.
type ItemImport struct {
	ID          string  `yaml:"id,omitempty"`
	Type        string  `yaml:"type,omitempty"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Difficulty  string  `yaml:"difficulty,omitempty"`
	DurationMin int     `yaml:"duration_min"`
	Equipment   string  `yaml:"equipment,omitempty"`
	Format      string  `yaml:"format,omitempty"`
	ImageURL    string  `yaml:"image_url,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Premium     bool    `yaml:"premium,omitempty"`
	Hidden      bool    `yaml:"hidden,omitempty"`
	CreatedAt   *string `yaml:"created_at,omitempty"`
}

// LoadCatalogSchema reads and parses a catalog import file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogSchema(data)
}

func ParseCatalogSchema(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
