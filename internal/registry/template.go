// Package registry holds the built-in project template definitions.
//
// Overview:
//   - Responsibility: Declarative template data model and named lookup
//   - Key Types: ProjectTemplate, Trigger, Processor, Output, Registry
//   - Concurrency Model: Templates are constructed once and never mutated;
//     safe for concurrent reads
//   - Error Semantics: ErrTemplateNotFound for unknown template names
//   - Performance Notes: Eager in-memory construction, no I/O
//
// Usage:
//
//	reg := registry.New()
//	tpl, err := reg.Lookup("basic")
package registry

import (
	"errors"
	"fmt"
	"time"
)

// ErrTemplateNotFound is returned by Lookup for unknown template names.
var ErrTemplateNotFound = errors.New("template not found")

// Param is a single named connection or configuration parameter.
//
// Parameters are kept as an ordered list rather than a map so that the
// serialized descriptor stays diffable across regenerations.
type Param struct {
	Key   string
	Value interface{}
}

// Params is an ordered sequence of parameters.
type Params []Param

// Get returns the value for key and whether it was present.
func (p Params) Get(key string) (interface{}, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Trigger declares an external event source feeding the pipeline.
type Trigger struct {
	ID      string
	Type    string
	Params  Params
	Enabled bool
}

// Processor declares a unit of data transformation with a language/runtime
// type tag, timing and retry policy, and ordering dependencies on other
// processors.
//
// DependsOn entries reference processor IDs within the same template and
// describe a dependency DAG. The generator does not detect cycles; ordering
// the graph is the job of the runtime that executes the pipeline.
type Processor struct {
	ID          string
	Type        string
	Params      Params
	Parallel    bool
	Timeout     time.Duration
	Retry       int
	DependsOn   []string
	Environment Params
}

// Output declares a destination for processed data.
type Output struct {
	ID     string
	Type   string
	Params Params
}

// EcosystemDeps lists package identifiers for one dependency ecosystem
// (e.g. "python", "go", "system"), in declared order.
type EcosystemDeps struct {
	Ecosystem string
	Packages  []string
}

// ProjectTemplate is a named, immutable declarative bundle describing a
// pipeline's triggers, processors, outputs, and dependency/environment
// metadata. Identified by Name.
type ProjectTemplate struct {
	Name            string
	Description     string
	Triggers        []Trigger
	Processors      []Processor
	Outputs         []Output
	Dependencies    []EcosystemDeps
	DockerServices  []string
	EnvironmentVars Params
}

// EcosystemPackages returns the declared package list for one ecosystem,
// or nil when the template declares none.
func (t *ProjectTemplate) EcosystemPackages(ecosystem string) []string {
	for _, deps := range t.Dependencies {
		if deps.Ecosystem == ecosystem {
			return deps.Packages
		}
	}
	return nil
}

// Validate checks the construction-time invariants of a template: IDs
// unique within each collection and every processor dependency resolving
// to a processor ID in the same template.
//
// Returns:
//   - error: First violated invariant, or nil
func (t *ProjectTemplate) Validate() error {
	triggerIDs := make(map[string]bool, len(t.Triggers))
	for _, trigger := range t.Triggers {
		if triggerIDs[trigger.ID] {
			return fmt.Errorf("template %s: duplicate trigger id %q", t.Name, trigger.ID)
		}
		triggerIDs[trigger.ID] = true
	}

	processorIDs := make(map[string]bool, len(t.Processors))
	for _, processor := range t.Processors {
		if processorIDs[processor.ID] {
			return fmt.Errorf("template %s: duplicate processor id %q", t.Name, processor.ID)
		}
		processorIDs[processor.ID] = true
	}

	for _, processor := range t.Processors {
		for _, dep := range processor.DependsOn {
			if !processorIDs[dep] {
				return fmt.Errorf("template %s: processor %q depends on unknown processor %q", t.Name, processor.ID, dep)
			}
		}
	}

	outputIDs := make(map[string]bool, len(t.Outputs))
	for _, output := range t.Outputs {
		if outputIDs[output.ID] {
			return fmt.Errorf("template %s: duplicate output id %q", t.Name, output.ID)
		}
		outputIDs[output.ID] = true
	}

	return nil
}
