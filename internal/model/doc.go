// Package model defines the data structures used throughout rostr.
//
// This package contains the core domain model that represents the roster's
// data. The model is shared by the store, the operations layer, and the CLI,
// with validation enforced at construction time so every record written to
// disk satisfies the roster constraints.
//
// # Student
//
// The [Student] struct represents one roster entry:
//
//	type Student struct {
//	    Name  string  // Title-cased display name
//	    Age   int     // Whole years, 0 < age < 150
//	    Grade float64 // Grade on the 0.0 to 20.0 scale
//	}
//
// Records carry no identifier; a student's position in the roster is its
// only handle, and duplicate names are permitted.
//
// # Validation
//
// [ValidName], [ValidAge] and [ValidGrade] are the pure predicates behind
// [NewStudent]. [ParseAge] and [ParseGrade] convert user-entered text,
// keeping syntax failures distinct from range failures while folding both
// into the same sentinel for user-facing reporting.
package model
