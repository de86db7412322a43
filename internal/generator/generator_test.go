package generator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dialogchain/dialogchain/internal/registry"
)

func generate(t *testing.T, projectName, templateName string, opts ...Option) string {
	t.Helper()

	outputDir := t.TempDir()
	gen := New(registry.New(), append([]Option{WithOutputDir(outputDir)}, opts...)...)

	result, err := gen.Generate(projectName, templateName)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.ProjectPath != filepath.Join(outputDir, projectName) {
		t.Errorf("Unexpected project path: %s", result.ProjectPath)
	}
	if len(result.NextSteps) == 0 {
		t.Error("Expected next-step instructions")
	}
	return result.ProjectPath
}

func TestGenerateDirectoryStructure(t *testing.T) {
	for _, templateName := range registry.New().Names() {
		t.Run(templateName, func(t *testing.T) {
			projectPath := generate(t, "demo", templateName)

			expected := []string{
				"processors", "scripts", "configs", "logs", "cache",
				"models", "data", "tests", "docs",
			}
			for _, dir := range expected {
				info, err := os.Stat(filepath.Join(projectPath, dir))
				if err != nil {
					t.Errorf("Missing directory %s: %v", dir, err)
					continue
				}
				if !info.IsDir() {
					t.Errorf("%s is not a directory", dir)
				}
			}
		})
	}
}

func TestGenerateProjectFiles(t *testing.T) {
	projectPath := generate(t, "demo", "basic")

	files := []string{
		"pipeline.yaml",
		"Dockerfile",
		"docker-compose.yml",
		"requirements.txt",
		".gitignore",
		"README.md",
		"scripts/dev.sh",
		"processors/main_processor.py",
	}
	for _, file := range files {
		if _, err := os.Stat(filepath.Join(projectPath, file)); err != nil {
			t.Errorf("Missing file %s: %v", file, err)
		}
	}

	// The developer script and processor stub must be executable.
	for _, file := range []string{"scripts/dev.sh", "processors/main_processor.py"} {
		info, err := os.Stat(filepath.Join(projectPath, file))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if info.Mode()&0111 == 0 {
			t.Errorf("%s is not executable", file)
		}
	}

	readme, err := os.ReadFile(filepath.Join(projectPath, "README.md"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(readme), "Simple HTTP to file pipeline") {
		t.Error("README missing template description")
	}
	if !strings.Contains(string(readme), "./scripts/dev.sh setup") {
		t.Error("README missing quick-start commands")
	}

	script, err := os.ReadFile(filepath.Join(projectPath, "scripts", "dev.sh"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, subcommand := range []string{`"setup"`, `"start"`, `"stop"`, `"logs"`, `"test"`} {
		if !strings.Contains(string(script), subcommand) {
			t.Errorf("Developer script missing %s subcommand", subcommand)
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	outputDir := t.TempDir()
	gen := New(registry.New(), WithOutputDir(outputDir))

	if _, err := gen.Generate("demo", "basic"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	first := map[string][]byte{}
	for _, file := range []string{"pipeline.yaml", "requirements.txt"} {
		data, err := os.ReadFile(filepath.Join(outputDir, "demo", file))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		first[file] = data
	}

	if _, err := gen.Generate("demo", "basic"); err != nil {
		t.Fatalf("Re-generation failed: %v", err)
	}

	for file, before := range first {
		after, err := os.ReadFile(filepath.Join(outputDir, "demo", file))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !bytes.Equal(before, after) {
			t.Errorf("%s differs after re-generation", file)
		}
	}
}

func TestGenerateUnknownTemplateFailsFast(t *testing.T) {
	outputDir := t.TempDir()
	gen := New(registry.New(), WithOutputDir(outputDir))

	_, err := gen.Generate("demo", "nonexistent")
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if !errors.Is(err, registry.ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}

	// No filesystem mutation may happen before template resolution.
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no filesystem mutations, found %d entries", len(entries))
	}
}

func TestGenerateInvalidProjectName(t *testing.T) {
	outputDir := t.TempDir()
	gen := New(registry.New(), WithOutputDir(outputDir))

	for _, name := range []string{"", "has space", "has/slash", ".."} {
		if _, err := gen.Generate(name, "basic"); err == nil {
			t.Errorf("Expected error for project name %q", name)
		}
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no filesystem mutations, found %d entries", len(entries))
	}
}

func TestGeneratePerTemplateStubs(t *testing.T) {
	tests := []struct {
		template string
		present  []string
		absent   []string
	}{
		{
			template: "security",
			present: []string{
				"processors/object_detection.py",
				"processors/threat_analysis/main.go",
				"processors/threat_analysis/go.mod",
			},
		},
		{
			template: "iot",
			present: []string{
				"processors/data_validation_wasm/README.md",
				"processors/anomaly_detection.py",
			},
			absent: []string{
				"processors/data_validation_wasm/main.rs",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			projectPath := generate(t, "demo", tt.template)

			for _, file := range tt.present {
				if _, err := os.Stat(filepath.Join(projectPath, file)); err != nil {
					t.Errorf("Missing %s: %v", file, err)
				}
			}
			for _, file := range tt.absent {
				if _, err := os.Stat(filepath.Join(projectPath, file)); !os.IsNotExist(err) {
					t.Errorf("Unexpected file %s", file)
				}
			}
		})
	}
}

func TestGenerateStrictModeRejectsUnknownTypes(t *testing.T) {
	reg := registry.NewWithTemplates(&registry.ProjectTemplate{
		Name:        "experimental",
		Description: "template with an unregistered processor type",
		Processors: []registry.Processor{
			{ID: "transform", Type: "cobol"},
		},
	})

	outputDir := t.TempDir()

	// Lenient mode skips the processor and completes.
	gen := New(reg, WithOutputDir(outputDir))
	if _, err := gen.Generate("lenient", "experimental"); err != nil {
		t.Fatalf("Lenient mode must not fail: %v", err)
	}

	// Strict mode aborts.
	strictGen := New(reg, WithOutputDir(outputDir), WithStrictTypes(true))
	if _, err := strictGen.Generate("strict", "experimental"); err == nil {
		t.Fatal("Strict mode must fail on unknown processor types")
	}
}

func TestGenerateWithGitInit(t *testing.T) {
	projectPath := generate(t, "demo", "basic", WithGitInit(true))

	if _, err := os.Stat(filepath.Join(projectPath, ".git")); err != nil {
		t.Fatalf("Expected git repository: %v", err)
	}

	// Re-generation over an existing repository must not fail.
	outputDir := filepath.Dir(projectPath)
	gen := New(registry.New(), WithOutputDir(outputDir), WithGitInit(true))
	if _, err := gen.Generate("demo", "basic"); err != nil {
		t.Fatalf("Re-generation with git init failed: %v", err)
	}
}
