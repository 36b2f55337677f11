// Package scaffold renders the static starter templates returned when every
// LLM provider in the fallback chain has failed.
package scaffold

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/devnunnez/Dev/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once; templates are immutable
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Renderer implements domain.TemplateRenderer.
type Renderer struct{}

// NewRenderer creates a template renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the starter code for projectType with prompt interpolated.
// Unknown project types render the component template.
func (r *Renderer) Render(projectType domain.ProjectType, prompt string) string {
	name := string(projectType.Normalize()) + ".tmpl"

	var sb strings.Builder
	data := struct{ Prompt string }{Prompt: prompt}
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		// Every template is parsed at init and only reads .Prompt.
		panic(fmt.Sprintf("scaffold: render %s: %v", name, err))
	}

	return sb.String()
}
