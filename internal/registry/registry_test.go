package registry

import (
	"errors"
	"testing"
)

func TestLookupBuiltinTemplates(t *testing.T) {
	reg := New()

	expected := []string{"basic", "security", "iot"}
	names := reg.Names()

	if len(names) != len(expected) {
		t.Fatalf("Expected %d templates, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected template %d to be %q, got %q", i, name, names[i])
		}
	}

	for _, name := range expected {
		tpl, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", name, err)
		}
		if tpl.Name != name {
			t.Errorf("Expected template name %q, got %q", name, tpl.Name)
		}
		if tpl.Description == "" {
			t.Errorf("Template %q has no description", name)
		}
	}
}

func TestLookupUnknownTemplate(t *testing.T) {
	reg := New()

	_, err := reg.Lookup("nonexistent")
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
}

func TestBuiltinTemplateInvariants(t *testing.T) {
	reg := New()

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			tpl, err := reg.Lookup(name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if err := tpl.Validate(); err != nil {
				t.Errorf("Invariant violated: %v", err)
			}

			// Every processor dependency must resolve within the template.
			ids := make(map[string]bool)
			for _, proc := range tpl.Processors {
				if ids[proc.ID] {
					t.Errorf("Duplicate processor id %q", proc.ID)
				}
				ids[proc.ID] = true
			}
			for _, proc := range tpl.Processors {
				for _, dep := range proc.DependsOn {
					if !ids[dep] {
						t.Errorf("Processor %q depends on unknown processor %q", proc.ID, dep)
					}
				}
			}
		})
	}
}

func TestValidateRejectsBrokenTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template *ProjectTemplate
	}{
		{
			name: "duplicate processor id",
			template: &ProjectTemplate{
				Name: "broken",
				Processors: []Processor{
					{ID: "p1", Type: "python"},
					{ID: "p1", Type: "go"},
				},
			},
		},
		{
			name: "unresolved dependency",
			template: &ProjectTemplate{
				Name: "broken",
				Processors: []Processor{
					{ID: "p1", Type: "python", DependsOn: []string{"missing"}},
				},
			},
		},
		{
			name: "duplicate trigger id",
			template: &ProjectTemplate{
				Name: "broken",
				Triggers: []Trigger{
					{ID: "t1", Type: "http"},
					{ID: "t1", Type: "mqtt"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.template.Validate(); err == nil {
				t.Error("Expected validation error but got none")
			}
		})
	}
}

func TestEcosystemPackages(t *testing.T) {
	reg := New()

	tpl, err := reg.Lookup("basic")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	python := tpl.EcosystemPackages("python")
	expected := []string{"pyyaml", "requests", "fastapi", "uvicorn"}
	if len(python) != len(expected) {
		t.Fatalf("Expected %d python packages, got %d", len(expected), len(python))
	}
	for i, pkg := range expected {
		if python[i] != pkg {
			t.Errorf("Expected package %d to be %q, got %q", i, pkg, python[i])
		}
	}

	if got := tpl.EcosystemPackages("rust"); got != nil {
		t.Errorf("Expected nil for undeclared ecosystem, got %v", got)
	}
}
