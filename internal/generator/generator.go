// Package generator drives the generation of a project skeleton from a
// named template.
//
// Overview:
//   - Responsibility: Resolve the template, create the directory skeleton,
//     and invoke the serializer, stub synthesizer, compose renderer, and
//     dependency aggregator in a fixed order
//   - Key Types: Generator, Result
//   - Concurrency Model: Single-threaded, strictly ordered blocking writes;
//     concurrent invocations against the same project path are unsafe and
//     must be serialized by the caller
//   - Error Semantics: Unknown templates fail before any filesystem
//     mutation; filesystem errors abort the remaining steps and leave the
//     partial output in place (generation is re-runnable)
//   - Performance Notes: A handful of small file writes per invocation
//
// Usage:
//
//	gen := generator.New(registry.New())
//	result, err := gen.Generate("my-project", "basic")
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/dialogchain/dialogchain/internal/descriptor"
	"github.com/dialogchain/dialogchain/internal/manifest"
	"github.com/dialogchain/dialogchain/internal/projectfs"
	"github.com/dialogchain/dialogchain/internal/registry"
	"github.com/dialogchain/dialogchain/internal/render/compose"
	"github.com/dialogchain/dialogchain/internal/stubs"
	"github.com/dialogchain/dialogchain/internal/templates"
	"github.com/dialogchain/dialogchain/internal/ui"
)

// projectDirectories is the fixed subdirectory set created for every
// project, regardless of template content.
var projectDirectories = []string{
	"processors", "scripts", "configs", "logs", "cache",
	"models", "data", "tests", "docs",
}

// Generator generates project skeletons from registered templates.
type Generator struct {
	registry  *registry.Registry
	outputDir string
	strict    bool
	initGit   bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputDir sets the parent directory that project roots are created
// under. Defaults to the current directory.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithStrictTypes makes unknown processor types abort generation instead
// of being skipped.
func WithStrictTypes(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// WithGitInit initializes a git repository with an initial commit in the
// generated project.
func WithGitInit(enabled bool) Option {
	return func(g *Generator) {
		g.initGit = enabled
	}
}

// Result reports a completed generation.
type Result struct {
	// ProjectPath is the root directory of the generated project.
	ProjectPath string
	// Template is the name of the template that was applied.
	Template string
	// NextSteps are ordered instructions for the user.
	NextSteps []string
}

// New creates a generator over a template registry.
//
// Parameters:
//   - reg: Template registry to resolve template names against
//   - opts: Generator options
//
// Returns:
//   - *Generator: Generator instance
//
// Concurrency:
//   - Safe for concurrent use against distinct project paths
//
// Performance:
//   - Minimal initialization overhead
func New(reg *registry.Registry, opts ...Option) *Generator {
	g := &Generator{
		registry:  reg,
		outputDir: ".",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate materializes a project skeleton from a named template.
//
// The steps run in a fixed order: directory skeleton, pipeline descriptor,
// processor stubs, container artifacts, developer script, dependency
// manifest, ignore list and README. An unknown template name aborts before
// any filesystem mutation.
//
// Parameters:
//   - projectName: Project directory name (a single path segment)
//   - templateName: Registered template name
//
// Returns:
//   - *Result: Project path and next-step instructions
//   - error: registry.ErrTemplateNotFound, invalid project name, or the
//     first filesystem error
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Bounded by filesystem write latency
func (g *Generator) Generate(projectName, templateName string) (*Result, error) {
	if !isValidProjectName(projectName) {
		return nil, fmt.Errorf("invalid project name: %q", projectName)
	}

	// Resolve before touching the filesystem so unknown templates are
	// side-effect free.
	tpl, err := g.registry.Lookup(templateName)
	if err != nil {
		return nil, err
	}

	ui.Info("Generating DialogChain project: %s", projectName)

	projectPath := filepath.Join(g.outputDir, projectName)
	fs := projectfs.New(projectPath)

	if err := g.createDirectoryStructure(fs); err != nil {
		return nil, fmt.Errorf("step directory structure: %w", err)
	}

	if err := g.writeDescriptor(fs, tpl, projectName); err != nil {
		return nil, fmt.Errorf("step pipeline descriptor: %w", err)
	}

	if err := g.synthesizeProcessors(fs, tpl, projectName); err != nil {
		return nil, fmt.Errorf("step processor stubs: %w", err)
	}

	if err := compose.NewRenderer(fs).Render(tpl, projectName); err != nil {
		return nil, fmt.Errorf("step container artifacts: %w", err)
	}
	ui.Info("Docker configuration generated")

	if err := g.writeDevScript(fs, projectName); err != nil {
		return nil, fmt.Errorf("step developer script: %w", err)
	}

	if err := fs.WriteFile("requirements.txt", manifest.Aggregate(tpl), 0644); err != nil {
		return nil, fmt.Errorf("step dependency manifest: %w", err)
	}
	ui.Info("Requirements file generated")

	if err := g.writeProjectDocs(fs, tpl, projectName); err != nil {
		return nil, fmt.Errorf("step project docs: %w", err)
	}

	if g.initGit {
		if err := initRepository(projectPath, templateName); err != nil {
			return nil, fmt.Errorf("step git init: %w", err)
		}
	}

	ui.Success("Project %q generated successfully!", projectName)

	return &Result{
		ProjectPath: projectPath,
		Template:    templateName,
		NextSteps: []string{
			fmt.Sprintf("cd %s", projectPath),
			"./scripts/dev.sh setup",
			"./scripts/dev.sh start",
			`Test: curl -X POST http://localhost:8080/webhook -d '{"message":"test"}'`,
		},
	}, nil
}

// createDirectoryStructure creates the project root and its fixed
// subdirectory set. Pre-existing directories are not an error.
func (g *Generator) createDirectoryStructure(fs *projectfs.ProjectFS) error {
	if err := fs.CreateDirectory("."); err != nil {
		return err
	}
	for _, dir := range projectDirectories {
		if err := fs.CreateDirectory(dir); err != nil {
			return err
		}
	}
	ui.Info("Directory structure created")
	return nil
}

// writeDescriptor serializes and writes pipeline.yaml, overwriting any
// existing descriptor unconditionally.
func (g *Generator) writeDescriptor(fs *projectfs.ProjectFS, tpl *registry.ProjectTemplate, projectName string) error {
	data, err := descriptor.Serialize(tpl, projectName)
	if err != nil {
		return err
	}
	if err := fs.WriteFile("pipeline.yaml", string(data), 0644); err != nil {
		return err
	}
	ui.Info("Pipeline configuration generated")
	return nil
}

// synthesizeProcessors emits a stub for each processor record in order.
func (g *Generator) synthesizeProcessors(fs *projectfs.ProjectFS, tpl *registry.ProjectTemplate, projectName string) error {
	synth := stubs.NewSynthesizer(fs, stubs.WithStrictTypes(g.strict))

	total := len(tpl.Processors)
	for i, processor := range tpl.Processors {
		ui.Step(i+1, total, "Processor %s (%s)", processor.ID, processor.Type)
		if err := synth.Synthesize(projectName, processor); err != nil {
			return err
		}
	}
	ui.Info("Processors generated")
	return nil
}

// writeDevScript emits the developer control script.
func (g *Generator) writeDevScript(fs *projectfs.ProjectFS, projectName string) error {
	loader := templates.NewLoader()

	script, err := loader.LoadAndRender("scripts/dev.sh.tmpl", map[string]interface{}{
		"ProjectName": projectName,
	})
	if err != nil {
		return err
	}
	if err := fs.WriteFile("scripts/dev.sh", script, 0755); err != nil {
		return err
	}
	ui.Info("Development scripts generated")
	return nil
}

// writeProjectDocs emits the ignore list and the generated README.
func (g *Generator) writeProjectDocs(fs *projectfs.ProjectFS, tpl *registry.ProjectTemplate, projectName string) error {
	loader := templates.NewLoader()

	gitignore, err := loader.LoadTemplate("project/gitignore.tmpl")
	if err != nil {
		return err
	}
	if err := fs.WriteFile(".gitignore", gitignore, 0644); err != nil {
		return err
	}

	readme, err := loader.LoadAndRender("project/README.md.tmpl", map[string]interface{}{
		"ProjectTitle": projectTitle(projectName),
		"ProjectName":  projectName,
		"Description":  tpl.Description,
	})
	if err != nil {
		return err
	}
	return fs.WriteFile("README.md", readme, 0644)
}

// isValidProjectName reports whether name is usable as a single path
// segment for the project root.
func isValidProjectName(name string) bool {
	if name == "" || len(name) > 100 {
		return false
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

// projectTitle turns a project name into a document title, e.g.
// "my_pipeline" becomes "My Pipeline".
func projectTitle(name string) string {
	out := make([]rune, 0, len(name))
	upperNext := true
	for _, r := range name {
		if r == '_' || r == '-' {
			out = append(out, ' ')
			upperNext = true
			continue
		}
		if upperNext && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		upperNext = false
		out = append(out, r)
	}
	return string(out)
}
