package stubs

import (
	"path"
	"strings"

	"github.com/dialogchain/dialogchain/internal/projectfs"
	"github.com/dialogchain/dialogchain/internal/registry"
	"github.com/dialogchain/dialogchain/internal/templates"
)

// pythonStrategy emits a single executable script at processors/<id>.py.
//
// The script decodes a JSON record from stdin, injects processed_at and
// processor metadata, applies a user-extensible transform placeholder,
// and encodes the result to stdout. On failure it emits an error record
// with the original data and exits non-zero.
type pythonStrategy struct {
	loader *templates.Loader
}

func (s *pythonStrategy) Synthesize(fs *projectfs.ProjectFS, projectName string, processor registry.Processor) error {
	content, err := s.loader.LoadAndRender("stubs/python_processor.py.tmpl", map[string]interface{}{
		"ProcessorID": processor.ID,
		"DisplayName": displayName(processor.ID),
	})
	if err != nil {
		return err
	}

	return fs.WriteFile(path.Join("processors", processor.ID+".py"), content, 0755)
}

// goStrategy emits a module directory at processors/<id>/ with a main.go
// implementing the same stdin/stdout contract via encoding/json, plus a
// go.mod declaring the module identity and toolchain version.
type goStrategy struct {
	loader *templates.Loader
}

func (s *goStrategy) Synthesize(fs *projectfs.ProjectFS, projectName string, processor registry.Processor) error {
	dir := path.Join("processors", processor.ID)
	if err := fs.CreateDirectory(dir); err != nil {
		return err
	}

	mainGo, err := s.loader.LoadAndRender("stubs/go_main.go.tmpl", map[string]interface{}{
		"ProcessorID": processor.ID,
	})
	if err != nil {
		return err
	}
	if err := fs.WriteFile(path.Join(dir, "main.go"), mainGo, 0644); err != nil {
		return err
	}

	goMod, err := s.loader.LoadAndRender("stubs/go_mod.tmpl", map[string]interface{}{
		"ProjectName": projectName,
		"ProcessorID": processor.ID,
	})
	if err != nil {
		return err
	}
	return fs.WriteFile(path.Join(dir, "go.mod"), goMod, 0644)
}

// rustWASMStrategy emits only a placeholder directory processors/<id>_wasm.
//
// Generating working WASM source is deferred; the directory marks where
// the user's implementation goes.
type rustWASMStrategy struct {
	loader *templates.Loader
}

func (s *rustWASMStrategy) Synthesize(fs *projectfs.ProjectFS, projectName string, processor registry.Processor) error {
	dir := path.Join("processors", processor.ID+"_wasm")
	if err := fs.CreateDirectory(dir); err != nil {
		return err
	}

	readme, err := s.loader.LoadAndRender("stubs/wasm_readme.md.tmpl", map[string]interface{}{
		"ProcessorID": processor.ID,
	})
	if err != nil {
		return err
	}
	return fs.WriteFile(path.Join(dir, "README.md"), readme, 0644)
}

// displayName turns a processor id into a doc title, e.g. "main_processor"
// becomes "Main Processor".
func displayName(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	if len(parts) == 0 {
		return id
	}
	return strings.Join(parts, " ")
}
