// Package manifest provides the delivery manifest data model and loader.
// A manifest declares, in order, the stages of a delivery and the artifacts
// each stage is expected to have produced.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTitle is used when a manifest does not declare its own title line.
const DefaultTitle = "Delivery Validation"

// Check is a single assertion that one named artifact exists at one path.
type Check struct {
	// Description is the human-readable name of the artifact.
	Description string `yaml:"description"`
	// Path is the artifact's location, relative to the stage base (if any)
	// and the validation root, unless absolute.
	Path string `yaml:"path"`
}

// Stage is a named, ordered group of checks representing one phase of a
// larger deliverable.
type Stage struct {
	Name string `yaml:"name"`
	// Base is an optional path prefix joined onto every check path in the
	// stage.
	Base   string  `yaml:"base,omitempty"`
	Checks []Check `yaml:"checks,omitempty"`
}

// TargetPath resolves a check's declared path against the stage base.
// Absolute check paths are returned unchanged.
func (s Stage) TargetPath(c Check) string {
	if filepath.IsAbs(c.Path) || s.Base == "" {
		return c.Path
	}
	return filepath.Join(s.Base, c.Path)
}

// Manifest is the declarative input describing which stages and checks to
// evaluate. It is read-only once loaded; evaluation never mutates it.
type Manifest struct {
	Title  string  `yaml:"title,omitempty"`
	Stages []Stage `yaml:"stages,omitempty"`
}

// EffectiveTitle returns the declared title, or DefaultTitle when absent.
func (m *Manifest) EffectiveTitle() string {
	if m.Title == "" {
		return DefaultTitle
	}
	return m.Title
}

// CheckCount returns the total number of checks across all stages.
func (m *Manifest) CheckCount() int {
	n := 0
	for _, s := range m.Stages {
		n += len(s.Checks)
	}
	return n
}

// Validate performs structural validation on the typed model. Schema
// validation catches most problems at decode time; this guards manifests
// constructed in code.
func (m *Manifest) Validate() error {
	for i, s := range m.Stages {
		if s.Name == "" {
			return fmt.Errorf("stage %d: name must not be empty", i+1)
		}
		for j, c := range s.Checks {
			if c.Description == "" {
				return fmt.Errorf("stage %q, check %d: description must not be empty", s.Name, j+1)
			}
			if c.Path == "" {
				return fmt.Errorf("stage %q, check %d: path must not be empty", s.Name, j+1)
			}
		}
	}
	return nil
}

// Load reads, schema-validates, and decodes a manifest file. A manifest that
// fails validation is a configuration error; no partial manifest is ever
// returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes raw manifest YAML, rejecting it eagerly if it violates the
// manifest schema.
func Parse(data []byte) (*Manifest, error) {
	if errs := ValidateManifestBytes(data); len(errs) > 0 {
		return nil, &SchemaError{Violations: errs}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshalling manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}
