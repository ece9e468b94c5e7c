package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/mdxassets/internal/planner"
)

// Organize moves inbox images referenced by documents into their canonical
// directories and rewrites every occurrence of the inbox path.
//
// With Strict, any missing inbox file fails the run with
// ErrMissingReferences before anything is written; the result still carries
// the plan for reporting.
func (e *Engine) Organize(ctx context.Context, req *OrganizeRequest) (*RunResult, error) {
	plan, docs, err := e.buildPlan(ctx, planner.ModeInbox, "")
	if err != nil {
		return nil, err
	}

	if req.Strict && plan.HasMissing() {
		return &RunResult{
			Plan:      plan,
			Documents: docs,
			Rewritten: []string{},
			DryRun:    !req.Write,
		}, fmt.Errorf("%w: %d inbox reference(s) not found", ErrMissingReferences, len(plan.Missing))
	}

	return e.finish(ctx, plan, docs, req.Write)
}
