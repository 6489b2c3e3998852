package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRoster indicates an operation that needs records found none
	ErrEmptyRoster = errors.New("roster is empty")

	// ErrNoMatches indicates a search query matched nothing
	ErrNoMatches = errors.New("no matches found")

	// ErrInvalidSelection indicates a selection outside the candidate range
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCancelled indicates the user cancelled a selection
	ErrCancelled = errors.New("selection cancelled")
)

// IndexError indicates a roster position outside the current bounds
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for roster of %d", e.Index, e.Len)
}
