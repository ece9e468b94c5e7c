package engine

import "github.com/danieljhkim/mdxassets/internal/planner"

// RunResult represents the result of a migrate or organize run.
type RunResult struct {
	// Plan is the computed plan
	Plan *planner.Plan `json:"plan"`

	// Documents is the number of scanned documents
	Documents int `json:"documents"`

	// Moved is the number of files relocated (0 for a dry run)
	Moved int `json:"moved"`

	// Rewritten lists the documents written back, relative to the content root
	Rewritten []string `json:"rewritten"`

	// DryRun indicates no changes were made
	DryRun bool `json:"dryRun"`
}

// NewActivityResult represents the result of scaffolding an activity.
type NewActivityResult struct {
	// Slug is the activity folder name
	Slug string `json:"slug"`

	// Path is the created index.mdx
	Path string `json:"path"`

	// RelPath is Path relative to the project root
	RelPath string `json:"relPath"`

	// Overwritten indicates an existing document was replaced
	Overwritten bool `json:"overwritten"`
}
