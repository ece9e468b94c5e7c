// Package config resolves the project layout and tool settings for one run.
//
// The result is an immutable Config value handed to the engine; nothing in
// this package keeps process-wide state. Settings come from built-in
// defaults, an optional .mdxassets.yaml in the project root, and
// MDXASSETS_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv overrides project root discovery.
const RootEnv = "MDXASSETS_ROOT"

// Paths contains all the filesystem paths used by mdxassets.
type Paths struct {
	// Root is the project root
	Root string

	// ContentRoot is the directory holding activity documents
	// (default: <root>/src/content/docs/activities)
	ContentRoot string

	// AssetRoot is the directory served at the site root (default: <root>/public)
	AssetRoot string

	// Blueprint is the template used to scaffold new activities
	Blueprint string
}

// NewPaths derives all paths from a project root and the settings.
func NewPaths(root string, s Settings) Paths {
	return Paths{
		Root:        root,
		ContentRoot: filepath.Join(root, filepath.FromSlash(s.ContentDir)),
		AssetRoot:   filepath.Join(root, filepath.FromSlash(s.PublicDir)),
		Blueprint:   filepath.Join(root, filepath.FromSlash(s.BlueprintPath)),
	}
}

// ImagesDir is the directory for canonical per-activity images.
func (p Paths) ImagesDir() string {
	return filepath.Join(p.AssetRoot, "images", "activities")
}

// DestinationDir returns <asset-root>/images/activities/<slug>/<stem>.
// It depends on slug and stem only.
func (p Paths) DestinationDir(slug, stem string) string {
	return filepath.Join(p.ImagesDir(), slug, stem)
}

// ResolveRoot picks the project root.
// Priority: explicit flag value, MDXASSETS_ROOT, the repository root
// found by discover, then cwd.
func ResolveRoot(flagRoot, cwd string, discover func(string) (string, error)) (string, error) {
	root := flagRoot
	if root == "" {
		root = os.Getenv(RootEnv)
	}
	if root == "" && discover != nil {
		if found, err := discover(cwd); err == nil {
			root = found
		}
	}
	if root == "" {
		root = cwd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	return abs, nil
}

// CheckContentRoot verifies that the content root is an existing directory.
func (p Paths) CheckContentRoot() error {
	info, err := os.Stat(p.ContentRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("content root not found: %s", p.ContentRoot)
		}
		return fmt.Errorf("failed to stat content root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content root is not a directory: %s", p.ContentRoot)
	}
	return nil
}
