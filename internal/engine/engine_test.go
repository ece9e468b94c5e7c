package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/mdxassets/internal/clock"
	"github.com/danieljhkim/mdxassets/internal/config"
	"github.com/danieljhkim/mdxassets/internal/fsops"
)

// testProject is a site laid out in a temp directory
type testProject struct {
	t    *testing.T
	root string
	cfg  *config.Config
}

func newTestProject(t *testing.T) *testProject {
	t.Helper()
	root := t.TempDir()

	cfg, err := config.Load(root)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if err := os.MkdirAll(cfg.Paths.ContentRoot, 0755); err != nil {
		t.Fatalf("failed to create content root: %v", err)
	}
	return &testProject{t: t, root: root, cfg: cfg}
}

func (p *testProject) engine() *Engine {
	clk := clock.NewFakeClock(time.Date(2026, 2, 7, 23, 5, 13, 0, time.UTC))
	return New(fsops.NewRealFS(), clk, *p.cfg)
}

// write creates a file relative to the project root
func (p *testProject) write(rel, content string) string {
	p.t.Helper()
	abs := filepath.Join(p.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		p.t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		p.t.Fatalf("failed to write %s: %v", rel, err)
	}
	return abs
}

func (p *testProject) read(rel string) string {
	p.t.Helper()
	data, err := os.ReadFile(filepath.Join(p.root, filepath.FromSlash(rel)))
	if err != nil {
		p.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

func (p *testProject) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(p.root, filepath.FromSlash(rel)))
	return err == nil
}

// snapshot maps every file under the root to its content
func (p *testProject) snapshot() map[string]string {
	p.t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(p.root, path)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		p.t.Fatalf("failed to snapshot project: %v", err)
	}
	return files
}

func assertSnapshotEqual(t *testing.T, before, after map[string]string) {
	t.Helper()
	if len(before) != len(after) {
		t.Errorf("file count changed: %d -> %d", len(before), len(after))
	}
	for path, content := range before {
		got, ok := after[path]
		if !ok {
			t.Errorf("%s disappeared", path)
			continue
		}
		if got != content {
			t.Errorf("%s changed", path)
		}
	}
}

const contentDir = "src/content/docs/activities"
