package core

import (
	"github.com/inovacc/rostr/internal/model"
	"github.com/inovacc/rostr/internal/store"
)

// Roster is the owned collection of student records for one session. All
// mutations go through its API and persist immediately; there is no other
// writer.
type Roster struct {
	students []model.Student
	store    store.Store
}

// NewRoster wraps already-loaded records. Most callers want LoadRoster.
func NewRoster(st store.Store, students []model.Student) *Roster {
	return &Roster{students: students, store: st}
}

// LoadRoster reads the roster from st. The int reports malformed entries
// rejected during load. When the data file is corrupt the error is a
// *store.CorruptError and the returned roster is empty but usable, so the
// caller can warn and continue.
func LoadRoster(st store.Store) (*Roster, int, error) {
	students, skipped, err := st.Load()
	if err != nil {
		return NewRoster(st, []model.Student{}), 0, err
	}

	return NewRoster(st, students), skipped, nil
}

// Len returns the number of records.
func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns a copy of the records in store order.
func (r *Roster) Students() []model.Student {
	out := make([]model.Student, len(r.students))
	copy(out, r.students)

	return out
}

// Get returns the record at i.
func (r *Roster) Get(i int) (model.Student, error) {
	if i < 0 || i >= len(r.students) {
		return model.Student{}, &IndexError{Index: i, Len: len(r.students)}
	}

	return r.students[i], nil
}

// Add appends a record and persists. On a save failure the record stays in
// memory and the error is returned for reporting.
func (r *Roster) Add(s model.Student) error {
	r.students = append(r.students, s)

	return r.store.Save(r.students)
}

// Set replaces the record at i and persists, with the same failure
// semantics as Add.
func (r *Roster) Set(i int, s model.Student) error {
	if i < 0 || i >= len(r.students) {
		return &IndexError{Index: i, Len: len(r.students)}
	}

	r.students[i] = s

	return r.store.Save(r.students)
}

// Remove deletes the record at i, preserving the order of the rest, and
// persists. The removed record is returned for display.
func (r *Roster) Remove(i int) (model.Student, error) {
	if i < 0 || i >= len(r.students) {
		return model.Student{}, &IndexError{Index: i, Len: len(r.students)}
	}

	removed := r.students[i]
	r.students = append(r.students[:i], r.students[i+1:]...)

	return removed, r.store.Save(r.students)
}

// Find scans this roster's records. See the package-level Find.
func (r *Roster) Find(query string) []Match {
	return Find(r.students, query)
}

// AverageGrade returns the arithmetic mean grade, 0 for an empty roster.
func (r *Roster) AverageGrade() float64 {
	return AverageGrade(r.students)
}
