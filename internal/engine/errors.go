package engine

import (
	"errors"

	"github.com/danieljhkim/mdxassets/internal/planner"
)

var (
	// ErrContentRootNotFound indicates the content root does not exist.
	ErrContentRootNotFound = errors.New("content root not found")

	// ErrMissingReferences indicates strict mode found unresolvable inbox references.
	ErrMissingReferences = errors.New("missing references")

	// ErrTooManyConflicts indicates a destination name could not be made unique.
	ErrTooManyConflicts = planner.ErrTooManyConflicts

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrActivityExists indicates the activity document already exists.
	ErrActivityExists = errors.New("activity already exists")
)
