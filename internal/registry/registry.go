package registry

import "fmt"

// Registry holds a fixed set of named project templates.
//
// The registry is populated eagerly and fully at construction; Lookup never
// partially loads a template. It is an explicit object rather than package
// state so that callers can inject custom template sets in tests.
type Registry struct {
	templates map[string]*ProjectTemplate
	names     []string
}

// New creates a registry populated with the built-in template set.
//
// Returns:
//   - *Registry: Registry with the basic, security, and iot templates
//
// Concurrency:
//   - The returned registry is read-only and safe for concurrent use
//
// Performance:
//   - Eager construction, no I/O
func New() *Registry {
	return NewWithTemplates(builtinTemplates()...)
}

// NewWithTemplates creates a registry over an explicit template set.
//
// Parameters:
//   - templates: Templates to register, in order
//
// Returns:
//   - *Registry: Registry holding exactly the given templates
func NewWithTemplates(templates ...*ProjectTemplate) *Registry {
	r := &Registry{
		templates: make(map[string]*ProjectTemplate, len(templates)),
	}
	for _, tpl := range templates {
		if _, exists := r.templates[tpl.Name]; exists {
			continue
		}
		r.templates[tpl.Name] = tpl
		r.names = append(r.names, tpl.Name)
	}
	return r
}

// Lookup resolves a template by name.
//
// Parameters:
//   - name: Template name
//
// Returns:
//   - *ProjectTemplate: The named template
//   - error: ErrTemplateNotFound when name is not registered
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1) map lookup, no side effects
func (r *Registry) Lookup(name string) (*ProjectTemplate, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrTemplateNotFound, name, r.names)
	}
	return tpl, nil
}

// Names returns the registered template names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
