// Package catalog serves the fixed list of example projects offered by the UI.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/devnunnez/Dev/internal/domain"
)

//go:embed templates.yaml
var templatesYAML []byte

// Catalog is an immutable list of project templates.
type Catalog struct {
	templates []domain.ProjectTemplate
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(templatesYAML)
}

// Parse builds a catalog from YAML, rejecting entries without an ID,
// duplicate IDs and unknown project types.
func Parse(data []byte) (*Catalog, error) {
	var templates []domain.ProjectTemplate
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(templates))
	for i, tmpl := range templates {
		if tmpl.ID == "" {
			return nil, fmt.Errorf("template %d: %w", i, errors.New("id is required"))
		}
		if _, dup := seen[tmpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", tmpl.ID)
		}
		if tmpl.Type.Normalize() != tmpl.Type {
			return nil, fmt.Errorf("template %q: unknown project type %q", tmpl.ID, tmpl.Type)
		}
		seen[tmpl.ID] = struct{}{}
	}

	return &Catalog{templates: templates}, nil
}

// List returns a copy of the templates in catalog order.
func (c *Catalog) List() []domain.ProjectTemplate {
	out := make([]domain.ProjectTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}
