package engine

import "github.com/danieljhkim/mdxassets/internal/scaffold"

// MigrateRequest represents a request to migrate Markdown images.
type MigrateRequest struct {
	// Write applies the plan; otherwise the run is a dry run
	Write bool

	// Viewer emits the zoomable figure component
	Viewer bool
}

// OrganizeRequest represents a request to organize inbox images.
type OrganizeRequest struct {
	// Write applies the plan; otherwise the run is a dry run
	Write bool

	// Strict fails the run, before any write, if a reference is missing
	Strict bool
}

// NewActivityRequest represents a request to scaffold an activity.
type NewActivityRequest struct {
	// Activity holds the flag values; ignored when FromFile is set
	Activity scaffold.Activity

	// FromFile is an optional YAML activity description
	FromFile string

	// Force overwrites an existing index.mdx
	Force bool
}
