package engine

import (
	"context"

	"github.com/danieljhkim/mdxassets/internal/mdx"
	"github.com/danieljhkim/mdxassets/internal/planner"
)

// Migrate rewrites relative Markdown images into figure components and moves
// the files into their canonical directories.
//
// The algorithm:
//  1. Discover documents in lexicographic order
//  2. Plan every candidate reference (nothing is touched)
//  3. Unless dry run, apply the plan per document
func (e *Engine) Migrate(ctx context.Context, req *MigrateRequest) (*RunResult, error) {
	component := mdx.ComponentFigure
	if req.Viewer {
		component = mdx.ComponentFigureViewer
	}

	plan, docs, err := e.buildPlan(ctx, planner.ModeMarkdown, component)
	if err != nil {
		return nil, err
	}

	return e.finish(ctx, plan, docs, req.Write)
}

// finish applies plan when write is set and assembles the result.
func (e *Engine) finish(ctx context.Context, plan *planner.Plan, docs int, write bool) (*RunResult, error) {
	result := &RunResult{
		Plan:      plan,
		Documents: docs,
		Rewritten: []string{},
		DryRun:    !write,
	}
	if !write || len(plan.Moves) == 0 {
		return result, nil
	}

	moved, rewritten, err := e.applyPlan(ctx, plan)
	result.Moved = moved
	if rewritten != nil {
		result.Rewritten = rewritten
	}
	return result, err
}
