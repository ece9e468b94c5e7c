package planner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/mdxassets/internal/fsops"
)

// MaxConflictSuffix is the highest numeric suffix tried for a destination.
const MaxConflictSuffix = 999

// ErrTooManyConflicts indicates every suffixed destination name is taken.
var ErrTooManyConflicts = errors.New("too many destination name conflicts")

// UniqueDest returns dst if it is free, otherwise the first free
// "<stem>-<n><ext>" sibling for n in 1..MaxConflictSuffix.
func UniqueDest(dst string, taken func(string) (bool, error)) (string, error) {
	used, err := taken(dst)
	if err != nil {
		return "", fmt.Errorf("failed to check destination %s: %w", dst, err)
	}
	if !used {
		return dst, nil
	}

	dir, base := filepath.Split(dst)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; i <= MaxConflictSuffix; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
		used, err := taken(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check destination %s: %w", candidate, err)
		}
		if !used {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w for %s", ErrTooManyConflicts, dst)
}

// DestinationAllocator hands out destination paths that are unique among
// existing files and all destinations claimed earlier in the run.
type DestinationAllocator struct {
	fs      fsops.FS
	claimed map[string]bool
}

// NewDestinationAllocator creates a new DestinationAllocator.
func NewDestinationAllocator(fs fsops.FS) *DestinationAllocator {
	return &DestinationAllocator{
		fs:      fs,
		claimed: make(map[string]bool),
	}
}

// Allocate claims and returns a free destination derived from dst.
func (a *DestinationAllocator) Allocate(dst string) (string, error) {
	got, err := UniqueDest(dst, a.taken)
	if err != nil {
		return "", err
	}
	a.claimed[got] = true
	return got, nil
}

// IsClaimed returns true if path was handed out by this allocator.
func (a *DestinationAllocator) IsClaimed(path string) bool {
	return a.claimed[path]
}

func (a *DestinationAllocator) taken(path string) (bool, error) {
	if a.claimed[path] {
		return true, nil
	}
	return a.fs.Exists(path)
}
