package taxonomy

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Load reads a YAML taxonomy file and validates it.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML tables and validates them. Unknown keys are rejected.
func Parse(data []byte) (*Taxonomy, error) {
	var tables Tables
	if err := yaml.UnmarshalWithOptions(data, &tables, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	return New(tables)
}

// Marshal encodes the taxonomy tables as YAML, in the same shape Parse accepts.
func (t *Taxonomy) Marshal() ([]byte, error) {
	return yaml.MarshalWithOptions(t.Tables(),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}
