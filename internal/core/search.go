package core

import (
	"strings"

	"github.com/inovacc/rostr/internal/model"
)

// Match pairs a record with its resolved index in the full roster.
type Match struct {
	Index   int
	Student model.Student
}

// Find returns the records whose name contains query, case-insensitively,
// in roster order. An empty query matches every record.
func Find(students []model.Student, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))

	var matches []Match

	for i, s := range students {
		if strings.Contains(strings.ToLower(s.Name), q) {
			matches = append(matches, Match{Index: i, Student: s})
		}
	}

	return matches
}
