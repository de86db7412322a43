// Package projectfs provides project file system operations for scaffolding.
//
// Overview:
//   - Responsibility: Create project directories and write generated files
//   - Key Types: ProjectFS rooted file system
//   - Concurrency Model: Sequential file operations
//   - Error Semantics: File system errors wrapped with the relative path
//   - Performance Notes: Idempotent directory creation, minimal file I/O
//
// Usage:
//
//	fs := projectfs.New("my-project")
//	err := fs.CreateDirectory("processors")
//	err = fs.WriteFile("pipeline.yaml", content, 0644)
package projectfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dialogchain/dialogchain/internal/ui"
)

// ProjectFS provides file system operations rooted at a project directory.
//
// All paths passed to its methods are interpreted relative to the root
// directory given at construction time.
type ProjectFS struct {
	rootDir string
	verbose bool
}

// New creates a new project file system rooted at rootDir.
//
// Parameters:
//   - rootDir: Root directory for all operations
//
// Returns:
//   - *ProjectFS: Project file system instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func New(rootDir string) *ProjectFS {
	return &ProjectFS{
		rootDir: rootDir,
	}
}

// SetVerbose enables or disables verbose output of file operations.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// Root returns the root directory of the project file system.
func (p *ProjectFS) Root() string {
	return p.rootDir
}

// CreateDirectory creates a directory if it doesn't exist.
//
// Pre-existing directories are not an error; generation is re-runnable.
//
// Parameters:
//   - path: Directory path relative to root
//
// Returns:
//   - error: File system error if any
//
// Concurrency:
//   - Single-threaded per directory
//
// Performance:
//   - O(1) directory creation
func (p *ProjectFS) CreateDirectory(path string) error {
	fullPath := filepath.Join(p.rootDir, path)

	if _, err := os.Stat(fullPath); err == nil {
		if p.verbose {
			ui.Debug("Directory already exists: %s", path)
		}
		return nil
	}

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	if p.verbose {
		ui.Debug("Created directory: %s", path)
	}

	return nil
}

// WriteFile writes content to a file, overwriting any existing file.
//
// Parameters:
//   - path: File path relative to root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - error: File system error if any
//
// Concurrency:
//   - Single-threaded per file
//
// Performance:
//   - Single write syscall per file
func (p *ProjectFS) WriteFile(path, content string, mode fs.FileMode) error {
	fullPath := filepath.Join(p.rootDir, path)

	parentDir := filepath.Dir(fullPath)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	// os.WriteFile does not change the mode of an existing file, which
	// would leave a re-generated script non-executable.
	if err := os.Chmod(fullPath, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}

	if p.verbose {
		ui.Debug("Written file: %s", path)
	}

	return nil
}

// FileExists checks whether a file exists relative to the root.
//
// Parameters:
//   - path: File path relative to root
//
// Returns:
//   - bool: True if the file exists
//   - error: File system error other than non-existence
func (p *ProjectFS) FileExists(path string) (bool, error) {
	fullPath := filepath.Join(p.rootDir, path)

	_, err := os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}
