// Package compose renders container build artifacts for generated projects.
//
// Overview:
//   - Responsibility: Render the Dockerfile and docker-compose.yml from a
//     template's docker_services declaration and the project name
//   - Key Types: Renderer over a project file system
//   - Concurrency Model: Immutable rendering with sequential file writes
//   - Error Semantics: File system errors wrapped with the artifact name
//   - Performance Notes: String building, two file writes per render
//
// Usage:
//
//	renderer := compose.NewRenderer(fs)
//	err := renderer.Render(tpl, "my-project")
package compose

import (
	"fmt"
	"strings"

	"github.com/dialogchain/dialogchain/internal/projectfs"
	"github.com/dialogchain/dialogchain/internal/registry"
	"github.com/dialogchain/dialogchain/internal/templates"
	"github.com/dialogchain/dialogchain/internal/ui"
)

// supportImages maps known support service names to their canonical
// container images and published ports. The "app" service is special: it
// builds from the project directory under the project's own name.
var supportImages = map[string]struct {
	image string
	port  string
}{
	"mqtt":     {image: "eclipse-mosquitto:2", port: "1883:1883"},
	"redis":    {image: "redis:7-alpine", port: "6379:6379"},
	"postgres": {image: "postgres:15-alpine", port: "5432:5432"},
}

// Renderer provides container artifact rendering.
type Renderer struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
}

// NewRenderer creates a new compose renderer.
//
// Parameters:
//   - fs: Project file system
//
// Returns:
//   - *Renderer: Renderer instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func NewRenderer(fs *projectfs.ProjectFS) *Renderer {
	return &Renderer{
		fs:     fs,
		loader: templates.NewLoader(),
	}
}

// Render writes the Dockerfile and docker-compose.yml for a template.
//
// Parameters:
//   - tpl: Project template (docker_services and environment_vars)
//   - projectName: Project name used for the application service
//
// Returns:
//   - error: Rendering or file system error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - String assembly and two file writes
func (r *Renderer) Render(tpl *registry.ProjectTemplate, projectName string) error {
	dockerfile, err := r.loader.LoadTemplate("docker/Dockerfile.tmpl")
	if err != nil {
		return fmt.Errorf("failed to load Dockerfile template: %w", err)
	}
	if err := r.fs.WriteFile("Dockerfile", dockerfile, 0644); err != nil {
		return fmt.Errorf("failed to write Dockerfile: %w", err)
	}

	composeYAML := r.generateComposeYAML(tpl, projectName)
	if err := r.fs.WriteFile("docker-compose.yml", composeYAML, 0644); err != nil {
		return fmt.Errorf("failed to write docker-compose.yml: %w", err)
	}

	return nil
}

// generateComposeYAML assembles the multi-service compose document.
//
// Services render in the template's declared order. The application
// service builds from the project directory and depends on every declared
// support service; support services map to canonical images.
func (r *Renderer) generateComposeYAML(tpl *registry.ProjectTemplate, projectName string) string {
	var b strings.Builder

	b.WriteString("version: '3.8'\n\nservices:\n")

	var supportServices []string
	for _, service := range tpl.DockerServices {
		if service != "app" {
			supportServices = append(supportServices, service)
		}
	}

	for _, service := range tpl.DockerServices {
		if service == "app" {
			r.writeAppService(&b, tpl, projectName, supportServices)
			continue
		}
		r.writeSupportService(&b, service)
	}

	return b.String()
}

// writeAppService writes the application service block.
func (r *Renderer) writeAppService(b *strings.Builder, tpl *registry.ProjectTemplate, projectName string, dependsOn []string) {
	fmt.Fprintf(b, "  %s:\n", projectName)
	b.WriteString("    build: .\n")
	b.WriteString("    ports:\n")
	b.WriteString("      - \"8080:8080\"\n")

	if len(tpl.EnvironmentVars) > 0 {
		b.WriteString("    environment:\n")
		for _, env := range tpl.EnvironmentVars {
			fmt.Fprintf(b, "      - %s=%v\n", env.Key, env.Value)
		}
	}

	b.WriteString("    volumes:\n")
	b.WriteString("      - ./logs:/app/logs\n")
	b.WriteString("      - ./data:/app/data\n")

	if len(dependsOn) > 0 {
		b.WriteString("    depends_on:\n")
		for _, service := range dependsOn {
			fmt.Fprintf(b, "      - %s\n", service)
		}
	}
}

// writeSupportService writes one support service block.
func (r *Renderer) writeSupportService(b *strings.Builder, service string) {
	fmt.Fprintf(b, "  %s:\n", service)

	known, ok := supportImages[service]
	if !ok {
		// Unrecognized service names still get a block so the compose
		// file lists every declared service.
		ui.Warning("Unknown docker service %q, using image %s:latest", service, service)
		fmt.Fprintf(b, "    image: %s:latest\n", service)
		return
	}

	fmt.Fprintf(b, "    image: %s\n", known.image)
	b.WriteString("    ports:\n")
	fmt.Fprintf(b, "      - \"%s\"\n", known.port)
}
