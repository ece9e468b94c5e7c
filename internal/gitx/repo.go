// Package gitx locates the enclosing git repository, which is the default
// project root when no --root is given.
package gitx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotInRepo indicates no .git entry was found above the start directory.
var ErrNotInRepo = errors.New("not in a git repository")

// Discover finds the git repository root by walking up from cwd looking for .git.
func Discover(cwd string) (string, error) {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if info, err := os.Stat(gitDir); err == nil {
			// .git can be a directory or a file (for worktrees/submodules)
			if info.IsDir() || info.Mode().IsRegular() {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotInRepo
		}
		current = parent
	}
}
