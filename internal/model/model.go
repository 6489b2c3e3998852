package model

import "fmt"

type Student struct {
	// Name is the display name, stored in title case
	Name string `json:"name"`

	// Age in whole years
	Age int `json:"age"`

	// Grade on the 0.0 to 20.0 scale
	Grade float64 `json:"grade"`
}

// NewStudent builds a validated record. The name is trimmed and title-cased;
// age and grade must already be within their ranges.
func NewStudent(name string, age int, grade float64) (Student, error) {
	if !ValidName(name) {
		return Student{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !ValidAge(age) {
		return Student{}, fmt.Errorf("%w: %d", ErrInvalidAge, age)
	}
	if !ValidGrade(grade) {
		return Student{}, fmt.Errorf("%w: %g", ErrInvalidGrade, grade)
	}

	return Student{
		Name:  NormalizeName(name),
		Age:   age,
		Grade: grade,
	}, nil
}

// String renders the detail line used by selection lists and confirmations.
func (s Student) String() string {
	return fmt.Sprintf("%s - Age: %d, Grade: %.2f", s.Name, s.Age, s.Grade)
}
