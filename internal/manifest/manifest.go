// Package manifest aggregates dependency manifests for generated projects.
//
// Overview:
//   - Responsibility: Produce requirements.txt from the baseline package
//     set and a template's declared python dependencies
//   - Key Types: Aggregate function
//   - Concurrency Model: Stateless, safe for concurrent use
//   - Error Semantics: None (pure string assembly)
//   - Performance Notes: Single join over a small slice
package manifest

import (
	"strings"

	"github.com/dialogchain/dialogchain/internal/registry"
)

// baseline is the fixed set of packages every generated project needs:
// the serialization and HTTP-client libraries used by generated stubs.
var baseline = []string{
	"pyyaml>=6.0",
	"requests>=2.31.0",
}

// Baseline returns a copy of the fixed baseline package list.
func Baseline() []string {
	packages := make([]string, len(baseline))
	copy(packages, baseline)
	return packages
}

// Aggregate produces the dependency manifest text for a template.
//
// The baseline packages come first, followed by the template's python
// dependency list verbatim, preserving declared order. Entries are not
// deduplicated: a package listed twice in the template produces two
// manifest lines. This mirrors the runtime's documented behavior.
//
// Parameters:
//   - tpl: Project template
//
// Returns:
//   - string: Newline-joined manifest text
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) over the package count
func Aggregate(tpl *registry.ProjectTemplate) string {
	packages := Baseline()
	packages = append(packages, tpl.EcosystemPackages("python")...)
	return strings.Join(packages, "\n")
}
