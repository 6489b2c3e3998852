package core

import "github.com/inovacc/rostr/internal/model"

// Summary aggregates the roster for display.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// AverageGrade returns the arithmetic mean of all grades. The divisor is
// floored at one so an empty roster yields 0 instead of dividing by zero.
func AverageGrade(students []model.Student) float64 {
	var sum float64

	for _, s := range students {
		sum += s.Grade
	}

	return sum / float64(max(len(students), 1))
}

// Summarize computes the roster statistics in one pass.
func Summarize(students []model.Student) Summary {
	return Summary{
		Count:   len(students),
		Average: AverageGrade(students),
	}
}
