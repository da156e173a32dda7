package repo

import (
	"errors"
	"fmt"

	"github.com/aki/githelper/internal/core/git"
)

var (
	// ErrPathNotFound is returned when the repository path does not exist
	ErrPathNotFound = errors.New("repository path does not exist")
	// ErrNotARepository is returned when the path has no .git entry
	ErrNotARepository = errors.New("not a git repository")
	// ErrEmptyPath is returned by New for an empty path
	ErrEmptyPath = errors.New("repository path is empty")
)

// Validate checks that path exists and holds a .git entry.
func Validate(path string) error {
	if !git.PathExists(path) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if !git.HasMarker(path) {
		return fmt.Errorf("%w: %s", ErrNotARepository, path)
	}
	return nil
}
