package gitx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	t.Run("finds repo from root", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
			t.Fatalf("failed to create .git: %v", err)
		}

		got, err := Discover(root)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if got != root {
			t.Errorf("Discover returned wrong root: got %s, want %s", got, root)
		}
	})

	t.Run("finds repo from subdirectory", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
			t.Fatalf("failed to create .git: %v", err)
		}
		sub := filepath.Join(root, "src", "content", "docs")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatalf("failed to create subdirectory: %v", err)
		}

		got, err := Discover(sub)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if got != root {
			t.Errorf("Discover returned wrong root: got %s, want %s", got, root)
		}
	})

	t.Run("accepts .git file for worktrees", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: /elsewhere\n"), 0644); err != nil {
			t.Fatalf("failed to create .git file: %v", err)
		}

		got, err := Discover(root)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if got != root {
			t.Errorf("Discover returned wrong root: got %s, want %s", got, root)
		}
	})
}

func TestDiscover_NotInRepo(t *testing.T) {
	dir := t.TempDir()
	// A .git higher up (e.g. the temp dir living inside a checkout) would
	// make this test meaningless.
	if _, err := Discover(dir); err == nil {
		t.Skip("temp directory is inside a git repository")
	} else if !errors.Is(err, ErrNotInRepo) {
		t.Errorf("Discover error = %v, want ErrNotInRepo", err)
	}
}
