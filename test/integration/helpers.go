package integration

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/mdxassets/internal/clock"
	"github.com/danieljhkim/mdxassets/internal/config"
	"github.com/danieljhkim/mdxassets/internal/engine"
	"github.com/danieljhkim/mdxassets/internal/fsops"
)

const contentDir = "src/content/docs/activities"

// testFS wraps the real filesystem and records every mutation
type testFS struct {
	*fsops.RealFS
	moves  []string
	writes []string
	mkdirs []string
}

func newTestFS() *testFS {
	return &testFS{RealFS: fsops.NewRealFS()}
}

func (fs *testFS) Move(src, dst string) error {
	fs.moves = append(fs.moves, src+" -> "+dst)
	return fs.RealFS.Move(src, dst)
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.writes = append(fs.writes, path)
	return fs.RealFS.AtomicWrite(path, data, perm)
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	fs.mkdirs = append(fs.mkdirs, path)
	return fs.RealFS.MkdirAll(path, perm)
}

func (fs *testFS) mutations() int {
	return len(fs.moves) + len(fs.writes) + len(fs.mkdirs)
}

// site is a project root in a temp directory
type site struct {
	t    *testing.T
	root string
}

func newSite(t *testing.T) *site {
	t.Helper()
	s := &site{t: t, root: t.TempDir()}
	if err := os.MkdirAll(s.path(contentDir), 0755); err != nil {
		t.Fatalf("failed to create content root: %v", err)
	}
	return s
}

func (s *site) path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func (s *site) write(rel, content string) {
	s.t.Helper()
	if err := os.MkdirAll(filepath.Dir(s.path(rel)), 0755); err != nil {
		s.t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(s.path(rel), []byte(content), 0644); err != nil {
		s.t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func (s *site) read(rel string) string {
	s.t.Helper()
	data, err := os.ReadFile(s.path(rel))
	if err != nil {
		s.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

func (s *site) exists(rel string) bool {
	_, err := os.Stat(s.path(rel))
	return err == nil
}

// snapshot maps every file and directory under the root to its content
func (s *site) snapshot() map[string]string {
	s.t.Helper()
	entries := make(map[string]string)
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(s.root, path)
		if d.IsDir() {
			entries[filepath.ToSlash(rel)+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		entries[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		s.t.Fatalf("failed to snapshot site: %v", err)
	}
	return entries
}

// setupTestEngine loads the site config and builds an engine over a recording FS
func setupTestEngine(t *testing.T, s *site) (*engine.Engine, *testFS) {
	t.Helper()
	cfg, err := config.Load(s.root)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	fs := newTestFS()
	clk := clock.NewFakeClock(time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC))
	return engine.New(fs, clk, *cfg), fs
}

func assertUnchanged(t *testing.T, before, after map[string]string) {
	t.Helper()
	for path, content := range before {
		got, ok := after[path]
		if !ok {
			t.Errorf("%s disappeared", path)
		} else if got != content {
			t.Errorf("%s changed", path)
		}
	}
	for path := range after {
		if _, ok := before[path]; !ok {
			t.Errorf("%s appeared", path)
		}
	}
}
