// Package stubs synthesizes per-processor source stubs for generated projects.
//
// Overview:
//   - Responsibility: Map a processor's language/runtime type tag to a code
//     generation strategy and emit the stub files
//   - Key Types: Synthesizer (type-tag dispatch table), Strategy
//   - Concurrency Model: Sequential synthesis, stateless strategies
//   - Error Semantics: Unsupported types skip (lenient) or fail (strict)
//   - Performance Notes: Template-based emission, one or two files per stub
//
// Usage:
//
//	synth := stubs.NewSynthesizer(fs)
//	err := synth.Synthesize("my-project", processor)
//
// Adding a new processor language is a registration, not a branch edit:
//
//	synth.Register("node", myNodeStrategy)
package stubs

import (
	"fmt"

	"github.com/dialogchain/dialogchain/internal/projectfs"
	"github.com/dialogchain/dialogchain/internal/registry"
	"github.com/dialogchain/dialogchain/internal/templates"
	"github.com/dialogchain/dialogchain/internal/ui"
)

// Strategy synthesizes the stub files for one processor type.
//
// Implementations write one or more files under the project file system,
// each satisfying the processor I/O contract: read one structured record
// from stdin, write one structured record to stdout, signal failure with
// a non-zero exit status and an error record.
type Strategy interface {
	Synthesize(fs *projectfs.ProjectFS, projectName string, processor registry.Processor) error
}

// UnsupportedTypeError reports a processor whose type has no registered
// synthesis strategy. It is returned only in strict mode; the lenient
// default skips the processor.
type UnsupportedTypeError struct {
	ProcessorID string
	Type        string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported processor type %q for processor %q", e.Type, e.ProcessorID)
}

// Synthesizer dispatches processor records to synthesis strategies by
// their type tag.
type Synthesizer struct {
	fs         *projectfs.ProjectFS
	strategies map[string]Strategy
	strict     bool
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithStrictTypes makes unknown processor types a fatal error instead of
// a silent skip.
func WithStrictTypes(strict bool) Option {
	return func(s *Synthesizer) {
		s.strict = strict
	}
}

// NewSynthesizer creates a synthesizer with the built-in strategies for
// python, go, and rust_wasm processors registered.
//
// Parameters:
//   - fs: Project file system to write stubs into
//   - opts: Synthesizer options
//
// Returns:
//   - *Synthesizer: Synthesizer instance
//
// Concurrency:
//   - Not safe for concurrent Register calls; Synthesize is sequential
//
// Performance:
//   - Minimal initialization overhead
func NewSynthesizer(fs *projectfs.ProjectFS, opts ...Option) *Synthesizer {
	loader := templates.NewLoader()

	s := &Synthesizer{
		fs:         fs,
		strategies: make(map[string]Strategy),
	}
	s.Register("python", &pythonStrategy{loader: loader})
	s.Register("go", &goStrategy{loader: loader})
	s.Register("rust_wasm", &rustWASMStrategy{loader: loader})

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register installs a strategy for a processor type tag, replacing any
// existing registration for that tag.
//
// Parameters:
//   - typeTag: Processor type tag (e.g. "python")
//   - strategy: Strategy emitting stubs for that type
func (s *Synthesizer) Register(typeTag string, strategy Strategy) {
	s.strategies[typeTag] = strategy
}

// Synthesize emits the stub for one processor record.
//
// Parameters:
//   - projectName: Name of the project being generated
//   - processor: Processor record from the template
//
// Returns:
//   - error: Synthesis error, or UnsupportedTypeError in strict mode
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - One template render and one or two file writes per call
func (s *Synthesizer) Synthesize(projectName string, processor registry.Processor) error {
	strategy, ok := s.strategies[processor.Type]
	if !ok {
		if s.strict {
			return &UnsupportedTypeError{ProcessorID: processor.ID, Type: processor.Type}
		}
		ui.Warning("Skipping processor %s: no strategy for type %q", processor.ID, processor.Type)
		return nil
	}

	if err := strategy.Synthesize(s.fs, projectName, processor); err != nil {
		return fmt.Errorf("failed to synthesize processor %s: %w", processor.ID, err)
	}
	return nil
}
