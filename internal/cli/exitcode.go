package cli

import (
	"errors"

	"github.com/danieljhkim/mdxassets/internal/config"
	"github.com/danieljhkim/mdxassets/internal/engine"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitMissing   = 2
	ExitConfig    = 3
	ExitConflicts = 4
)

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, engine.ErrMissingReferences):
		return ExitMissing
	case errors.Is(err, engine.ErrContentRootNotFound), errors.Is(err, config.ErrInvalid):
		return ExitConfig
	case errors.Is(err, engine.ErrTooManyConflicts):
		return ExitConflicts
	default:
		return ExitError
	}
}
