package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/mdxassets/internal/fsops"
	"github.com/danieljhkim/mdxassets/internal/scaffold"
)

// NewActivity creates <content>/<slug>/index.mdx and an assets folder from
// the project blueprint, or the built-in one if the project has none.
func (e *Engine) NewActivity(ctx context.Context, req *NewActivityRequest) (*NewActivityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	activity := req.Activity
	if req.FromFile != "" {
		loaded, err := scaffold.LoadActivity(req.FromFile)
		if err != nil {
			return nil, err
		}
		activity = *loaded
	}
	if err := activity.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := fsops.ValidateIdentifier(activity.Slug); err != nil {
		return nil, fmt.Errorf("%w: slug %q: %v", ErrValidation, activity.Slug, err)
	}

	paths := e.cfg.Paths
	if err := paths.CheckContentRoot(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentRootNotFound, err)
	}

	dir := filepath.Join(paths.ContentRoot, activity.Slug)
	target := filepath.Join(dir, "index.mdx")
	exists, err := e.fs.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", target, err)
	}
	if exists && !req.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrActivityExists, target)
	}

	blueprint, err := e.loadBlueprint()
	if err != nil {
		return nil, err
	}

	if err := e.fs.MkdirAll(filepath.Join(dir, "assets"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create activity directory: %w", err)
	}
	content := scaffold.Render(blueprint, &activity, e.clock.Now())
	if err := e.fs.AtomicWrite(target, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write activity: %w", err)
	}

	rel, err := filepath.Rel(paths.Root, target)
	if err != nil {
		rel = target
	}
	return &NewActivityResult{
		Slug:        activity.Slug,
		Path:        target,
		RelPath:     filepath.ToSlash(rel),
		Overwritten: exists,
	}, nil
}

func (e *Engine) loadBlueprint() (string, error) {
	data, err := e.fs.ReadFile(e.cfg.Paths.Blueprint)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scaffold.DefaultBlueprint, nil
		}
		return "", fmt.Errorf("failed to read blueprint: %w", err)
	}
	return string(data), nil
}
