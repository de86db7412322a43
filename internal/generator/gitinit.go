package generator

import (
	"errors"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/dialogchain/dialogchain/internal/ui"
)

// initRepository initializes a git repository in the generated project and
// records an initial commit of the skeleton.
//
// Re-running generation over an existing repository is not an error: the
// skeleton files were just rewritten and the user owns the history.
func initRepository(projectPath, templateName string) error {
	repo, err := git.PlainInit(projectPath, false)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			ui.Warning("Git repository already exists, skipping init")
			return nil
		}
		return fmt.Errorf("failed to init repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}

	message := fmt.Sprintf("Initial project skeleton from %s template", templateName)
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "DialogChain Generator",
			Email: "noreply@dialogchain.io",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit skeleton: %w", err)
	}

	ui.Info("Git repository initialized")
	return nil
}
