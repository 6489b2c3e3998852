package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/inovacc/rostr/internal/logger"
	"github.com/inovacc/rostr/internal/model"
	"github.com/rs/zerolog"
)

// record mirrors Student with pointer fields so a missing key is
// distinguishable from a zero value during decode.
type record struct {
	Name  *string  `json:"name"`
	Age   *int     `json:"age"`
	Grade *float64 `json:"grade"`
}

// FileStore keeps the roster in one JSON file. No file handle is held
// between calls.
type FileStore struct {
	path string
	log  zerolog.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, log: logger.Discard()}
}

// WithLogger sets the logger used for load diagnostics.
func (s *FileStore) WithLogger(log zerolog.Logger) *FileStore {
	s.log = log
	return s
}

// Path returns the data file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the data file. Entries that are not objects or that lack any
// of the name/age/grade keys are rejected and counted; values that are
// present but out of range load untouched, since constraints are enforced
// at write time only.
func (s *FileStore) Load() ([]model.Student, int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Student{}, 0, nil
		}
		return nil, 0, &CorruptError{Path: s.path, Err: err}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, 0, &CorruptError{Path: s.path, Err: err}
	}

	students := make([]model.Student, 0, len(entries))

	var skipped int

	for i, entry := range entries {
		var rec record

		err := json.Unmarshal(entry, &rec)
		if err != nil || rec.Name == nil || rec.Age == nil || rec.Grade == nil {
			skipped++
			s.log.Warn().Int("entry", i).Err(err).Msg("rejected malformed roster entry")

			continue
		}

		students = append(students, model.Student{
			Name:  *rec.Name,
			Age:   *rec.Age,
			Grade: *rec.Grade,
		})
	}

	return students, skipped, nil
}

// Save overwrites the data file with the full roster.
func (s *FileStore) Save(students []model.Student) error {
	if students == nil {
		students = []model.Student{}
	}

	data, err := json.MarshalIndent(students, "", "    ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	s.log.Debug().Int("students", len(students)).Str("path", s.path).Msg("roster saved")

	return nil
}
