package cmd

import (
	"testing"

	"github.com/inovacc/rostr/internal/model"
)

func TestStudentRow(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		student  model.Student
		expected string
	}{
		{
			name:     "short name",
			n:        1,
			student:  model.Student{Name: "Ana", Age: 20, Grade: 15.5},
			expected: "[1] Ana                  | Age: 20  | Grade: 15.50",
		},
		{
			name:     "three digit age",
			n:        2,
			student:  model.Student{Name: "Bruno", Age: 103, Grade: 18},
			expected: "[2] Bruno                | Age: 103 | Grade: 18.00",
		},
		{
			name:     "name longer than the column",
			n:        3,
			student:  model.Student{Name: "Maximiliano Fernandez", Age: 30, Grade: 9.25},
			expected: "[3] Maximiliano Fernandez | Age: 30  | Grade: 9.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := studentRow(tt.n, tt.student)
			if result != tt.expected {
				t.Errorf("studentRow(%d, %v) = %q, want %q", tt.n, tt.student, result, tt.expected)
			}
		})
	}
}

func TestDefaultExportPath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		format   string
		expected string
	}{
		{
			name:     "csv keeps the configured path",
			base:     "students.csv",
			format:   "csv",
			expected: "students.csv",
		},
		{
			name:     "xlsx swaps the extension",
			base:     "students.csv",
			format:   "xlsx",
			expected: "students.xlsx",
		},
		{
			name:     "xlsx with a nested path",
			base:     "/data/out/roster.csv",
			format:   "xlsx",
			expected: "/data/out/roster.xlsx",
		},
		{
			name:     "base without extension",
			base:     "roster",
			format:   "xlsx",
			expected: "roster.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := defaultExportPath(tt.base, tt.format)
			if result != tt.expected {
				t.Errorf("defaultExportPath(%q, %q) = %q, want %q", tt.base, tt.format, result, tt.expected)
			}
		})
	}
}
