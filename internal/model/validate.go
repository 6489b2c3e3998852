package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxAge   = 150
	minGrade = 0.0
	maxGrade = 20.0
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidAge   = errors.New("invalid age")
	ErrInvalidGrade = errors.New("invalid grade")
)

// ValidName reports whether the trimmed name is non-empty and not composed
// entirely of digits.
func ValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	for _, r := range name {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ValidAge reports whether age lies in the open interval (0, 150).
func ValidAge(age int) bool {
	return age > 0 && age < maxAge
}

// ValidGrade reports whether grade lies in the closed interval [0, 20].
func ValidGrade(grade float64) bool {
	return grade >= minGrade && grade <= maxGrade
}

// NormalizeName trims the name and capitalizes the first letter of each word.
func NormalizeName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// ParseAge converts user-entered text to an age. Text that is not an integer
// and an integer outside the valid range are distinct failures; both wrap
// ErrInvalidAge so they surface as one validation message.
func ParseAge(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAge, input)
	}
	if !ValidAge(age) {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidAge, age)
	}
	return age, nil
}

// ParseGrade converts user-entered text to a grade, mirroring ParseAge.
func ParseGrade(input string) (float64, error) {
	grade, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidGrade, input)
	}
	if !ValidGrade(grade) {
		return 0, fmt.Errorf("%w: %g is out of range", ErrInvalidGrade, grade)
	}
	return grade, nil
}
