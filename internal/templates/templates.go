// Package templates provides template loading and rendering for generated files.
//
// Overview:
//   - Responsibility: Load and render the embedded template files that make
//     up generated project skeletons (processor stubs, scripts, docs)
//   - Key Types: Loader over an embedded file system
//   - Concurrency Model: Immutable embedded data, stateless rendering
//   - Error Semantics: Template errors carry the template path
//   - Performance Notes: Templates are compiled into the binary, no disk I/O
//
// Usage:
//
//	loader := templates.NewLoader()
//	content, err := loader.LoadAndRender("stubs/python_processor.py.tmpl", data)
package templates

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// Loader provides template loading and rendering functionality.
type Loader struct {
	templateDir string
}

// NewLoader creates a new template loader over the embedded templates.
//
// Returns:
//   - *Loader: Template loader instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func NewLoader() *Loader {
	return &Loader{
		templateDir: "templates",
	}
}

// LoadTemplate loads a template file from the embedded filesystem.
//
// Parameters:
//   - templatePath: Path to template file relative to the templates directory
//
// Returns:
//   - string: Template content
//   - error: Loading error if any
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Embedded file system access
func (l *Loader) LoadTemplate(templatePath string) (string, error) {
	fullPath := path.Join(l.templateDir, templatePath)

	content, err := templateFS.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", templatePath, err)
	}

	return string(content), nil
}

// RenderTemplate renders template content with the provided data.
//
// Parameters:
//   - templateContent: Template content
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: Rendering error if any
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Template parsing and rendering per call
func (l *Loader) RenderTemplate(templateContent string, data interface{}) (string, error) {
	funcMap := template.FuncMap{
		"ToUpper": strings.ToUpper,
		"ToLower": strings.ToLower,
	}

	tmpl, err := template.New("template").Funcs(funcMap).Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return result.String(), nil
}

// LoadAndRender loads a template and renders it with data.
//
// Parameters:
//   - templatePath: Path to template file
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: Loading or rendering error if any
func (l *Loader) LoadAndRender(templatePath string, data interface{}) (string, error) {
	content, err := l.LoadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	return l.RenderTemplate(content, data)
}

// ListTemplates lists all available template files.
//
// Returns:
//   - []string: Template file paths relative to the templates directory
//   - error: Listing error if any
func (l *Loader) ListTemplates() ([]string, error) {
	var templates []string

	err := l.walkTemplates("", func(p string) error {
		if strings.HasSuffix(p, ".tmpl") {
			templates = append(templates, p)
		}
		return nil
	})

	return templates, err
}

// walkTemplates walks through the embedded template directory.
func (l *Loader) walkTemplates(dir string, fn func(string) error) error {
	entries, err := templateFS.ReadDir(path.Join(l.templateDir, dir))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryPath := path.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := l.walkTemplates(entryPath, fn); err != nil {
				return err
			}
		} else {
			if err := fn(entryPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateAllTemplates checks that every embedded template parses.
//
// Returns:
//   - error: First template that fails to load or parse
func (l *Loader) ValidateAllTemplates() error {
	templates, err := l.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	for _, templatePath := range templates {
		content, err := l.LoadTemplate(templatePath)
		if err != nil {
			return err
		}
		if _, err := template.New(templatePath).Parse(content); err != nil {
			return fmt.Errorf("template validation failed for %s: %w", templatePath, err)
		}
	}

	return nil
}
