// Package engine provides the core business logic for mdxassets operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It scans documents, builds a migration plan and,
// when asked to, applies it.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Migrate: Relative Markdown images to figure components
//   - Organize: Inbox paths to canonical asset directories
//   - NewActivity: Blueprint-based activity scaffolding
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/mdxassets/internal/clock"
	"github.com/danieljhkim/mdxassets/internal/config"
	"github.com/danieljhkim/mdxassets/internal/fsops"
	"github.com/danieljhkim/mdxassets/internal/planner"
	"github.com/danieljhkim/mdxassets/internal/scanner"
)

// Engine orchestrates all mdxassets operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs    fsops.FS
	clock clock.Clock
	cfg   config.Config
}

// New creates a new Engine with the given dependencies. cfg is copied and
// not modified afterwards.
func New(fs fsops.FS, clk clock.Clock, cfg config.Config) *Engine {
	return &Engine{
		fs:    fs,
		clock: clk,
		cfg:   cfg,
	}
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// buildPlan scans every document under the content root in lexicographic
// order and plans it in the given mode.
func (e *Engine) buildPlan(ctx context.Context, mode planner.Mode, component string) (*planner.Plan, int, error) {
	paths := e.cfg.Paths
	if err := paths.CheckContentRoot(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrContentRootNotFound, err)
	}

	rels, err := scanner.Discover(os.DirFS(paths.ContentRoot), e.cfg.Settings.DocumentGlob)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to discover documents: %w", err)
	}

	builder := planner.NewBuilder(mode, planner.Options{
		Paths: paths,
		Filter: scanner.Filter{
			MigratedPrefixes: e.cfg.Settings.MigratedPrefixes,
			Extensions:       e.cfg.Settings.ImageExtensions,
		},
		InboxPrefix: e.cfg.Settings.InboxPrefix,
		Component:   component,
	}, e.fs)

	for _, rel := range rels {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		doc, err := scanner.Load(e.fs, paths.ContentRoot, rel)
		if err != nil {
			return nil, 0, err
		}
		if err := builder.Add(doc); err != nil {
			if errors.Is(err, planner.ErrTooManyConflicts) {
				return nil, 0, fmt.Errorf("%s: %w", rel, err)
			}
			return nil, 0, fmt.Errorf("failed to plan %s: %w", rel, err)
		}
	}

	return builder.Plan(), len(rels), nil
}
