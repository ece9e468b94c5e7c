// Package planner handles the planning phase of asset migrations.
//
// The planner turns scanned image references into a deterministic Plan of
// MovePlans before anything on disk changes. Destinations are allocated
// against the pre-move filesystem plus every destination already claimed in
// the same run, so the plan stays valid while it is applied.
//
// Key responsibilities:
//   - Resolve activity slug and page stem for each document
//   - Allocate unique destination file names (-1 … -999 suffixes)
//   - Synthesize replacement text for each reference
//   - Collect missing and skipped references for the report
package planner
