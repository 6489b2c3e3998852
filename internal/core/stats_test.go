package core

import (
	"testing"

	"github.com/inovacc/rostr/internal/model"
	"github.com/stretchr/testify/require"
)

func TestAverageGrade(t *testing.T) {
	tests := []struct {
		name     string
		students []model.Student
		want     float64
	}{
		{name: "empty roster yields zero", students: nil, want: 0},
		{name: "single record", students: []model.Student{{Grade: 15.5}}, want: 15.5},
		{
			name: "mean of several",
			students: []model.Student{
				{Grade: 10},
				{Grade: 20},
				{Grade: 12},
			},
			want: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, AverageGrade(tt.students), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]model.Student{{Grade: 10}, {Grade: 20}})
	require.Equal(t, 2, sum.Count)
	require.InDelta(t, 15.0, sum.Average, 1e-9)

	empty := Summarize(nil)
	require.Zero(t, empty.Count)
	require.Zero(t, empty.Average)
}
