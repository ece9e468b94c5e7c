package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/mdxassets/internal/clock"
	"github.com/danieljhkim/mdxassets/internal/config"
	"github.com/danieljhkim/mdxassets/internal/engine"
	"github.com/danieljhkim/mdxassets/internal/fsops"
	"github.com/danieljhkim/mdxassets/internal/gitx"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return engine.New(fsops.NewRealFS(), &clock.RealClock{}, *cfg), nil
}

// loadConfig resolves the project root and loads its settings.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	root, err := config.ResolveRoot(rootFlag, cwd, gitx.Discover)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if !jsonOutput {
		PrintDetail(fmt.Sprintf("project root: %s", cfg.Paths.Root))
		PrintDetail(fmt.Sprintf("content root: %s", cfg.Paths.ContentRoot))
	}
	return cfg, nil
}

// outputJSON outputs a value as JSON.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
