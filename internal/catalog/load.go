package catalog

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// supportedSchema is the semver constraint for catalog documents this
// build understands. Documents without a schemaVersion are accepted as 1.x.
const supportedSchema = "^1.0"

// Document is the on-disk catalog format: a schema version, the theme and
// barrier definitions, and the raw resource records.
type Document struct {
	SchemaVersion string       `json:"schemaVersion,omitempty"`
	Themes        []RawTheme   `json:"themes,omitempty"`
	Barriers      []RawBarrier `json:"barriers,omitempty"`
	Resources     []RawRecord  `json:"resources,omitempty"`
}

// RawTheme is a theme definition as it appears in the source document.
type RawTheme struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// RawBarrier is a barrier definition as it appears in the source document.
// Color is optional; when absent the barrier's color is derived from the
// parent theme.
type RawBarrier struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Theme string `json:"theme,omitempty"`
	Color string `json:"color,omitempty"`
}

// Load reads a catalog document from a YAML or JSON file and builds the
// immutable Catalog. This is the single one-shot I/O operation of the
// core; everything downstream of it is pure.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-specified catalog file
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a catalog document and builds the Catalog. YAML and JSON
// are both accepted.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := sigsyaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog document: %w", err)
	}

	if err := CheckSchemaVersion(doc.SchemaVersion); err != nil {
		return nil, err
	}

	return New(doc), nil
}

// CheckSchemaVersion verifies that a document schema version satisfies
// the supported constraint. An empty version is accepted.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid schemaVersion %q: %w", version, err)
	}

	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("unsupported schemaVersion %q: this build supports %s", version, supportedSchema)
	}

	return nil
}
