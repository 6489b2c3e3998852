package store

import (
	"fmt"

	"github.com/inovacc/rostr/internal/model"
)

// Store defines the persistence operations used by the app.
type Store interface {
	// Load reads the full roster. A missing file is an empty roster. The
	// int reports how many malformed entries were rejected during decode.
	Load() ([]model.Student, int, error)

	// Save writes the full roster, overwriting the previous contents.
	Save(students []model.Student) error
}

// CorruptError reports a data file that exists but cannot be read as a
// roster list. Callers surface a warning and continue with an empty roster.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("data file %s is not a roster list: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}
