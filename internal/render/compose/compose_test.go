package compose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dialogchain/dialogchain/internal/projectfs"
	"github.com/dialogchain/dialogchain/internal/registry"
)

func renderTemplate(t *testing.T, templateName, projectName string) (string, string) {
	t.Helper()

	tpl, err := registry.New().Lookup(templateName)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	root := t.TempDir()
	renderer := NewRenderer(projectfs.New(root))
	if err := renderer.Render(tpl, projectName); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	dockerfile, err := os.ReadFile(filepath.Join(root, "Dockerfile"))
	if err != nil {
		t.Fatalf("Dockerfile not written: %v", err)
	}
	composeYAML, err := os.ReadFile(filepath.Join(root, "docker-compose.yml"))
	if err != nil {
		t.Fatalf("docker-compose.yml not written: %v", err)
	}

	return string(dockerfile), string(composeYAML)
}

func TestRenderBasicTemplate(t *testing.T) {
	dockerfile, composeYAML := renderTemplate(t, "basic", "demo")

	if !strings.Contains(dockerfile, "FROM python:3.11-slim") {
		t.Error("Dockerfile missing base image")
	}
	if !strings.Contains(dockerfile, "requirements.txt") {
		t.Error("Dockerfile missing dependency install")
	}

	if !strings.Contains(composeYAML, "  demo:\n") {
		t.Error("Compose file missing application service under project name")
	}
	if !strings.Contains(composeYAML, "build: .") {
		t.Error("Application service must build from the project directory")
	}
	if !strings.Contains(composeYAML, "- LOG_LEVEL=INFO") {
		t.Error("Application service missing template environment variables")
	}
	if strings.Contains(composeYAML, "redis") {
		t.Error("Basic template declares only the app service")
	}
	if strings.Contains(composeYAML, "depends_on") {
		t.Error("App without support services must not declare depends_on")
	}
}

func TestRenderSecurityTemplate(t *testing.T) {
	_, composeYAML := renderTemplate(t, "security", "secdemo")

	for _, want := range []string{
		"  secdemo:\n",
		"  mqtt:\n",
		"    image: eclipse-mosquitto:2\n",
		"  redis:\n",
		"    image: redis:7-alpine\n",
		"    depends_on:\n",
		"      - mqtt\n",
		"      - redis\n",
	} {
		if !strings.Contains(composeYAML, want) {
			t.Errorf("Compose file missing %q", want)
		}
	}
}

func TestRenderUnknownService(t *testing.T) {
	tpl := &registry.ProjectTemplate{
		Name:           "custom",
		DockerServices: []string{"app", "kafka"},
	}

	root := t.TempDir()
	renderer := NewRenderer(projectfs.New(root))
	if err := renderer.Render(tpl, "custom"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "docker-compose.yml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "image: kafka:latest") {
		t.Error("Unknown service must still render a service block")
	}
}
