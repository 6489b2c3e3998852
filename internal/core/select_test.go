package core

import (
	"testing"

	"github.com/inovacc/rostr/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSelectMatch(t *testing.T) {
	matches := []Match{
		{Index: 2, Student: model.Student{Name: "Ana"}},
		{Index: 5, Student: model.Student{Name: "Anand"}},
	}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "first candidate", input: "1", want: 2},
		{name: "second candidate", input: "2", want: 5},
		{name: "surrounding spaces", input: " 2 ", want: 5},
		{name: "zero cancels", input: "0", wantErr: ErrCancelled},
		{name: "past the end", input: "3", wantErr: ErrInvalidSelection},
		{name: "negative", input: "-1", wantErr: ErrInvalidSelection},
		{name: "not a number", input: "first", wantErr: ErrInvalidSelection},
		{name: "empty input", input: "", wantErr: ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectMatch(matches, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSelectMatch_ReturnsRosterIndex(t *testing.T) {
	// Selection positions count within the candidate list; the result is
	// always the index in the original roster.
	matches := []Match{{Index: 7, Student: model.Student{Name: "Solo"}}}

	got, err := SelectMatch(matches, "1")
	require.NoError(t, err)
	require.Equal(t, 7, got)
}

func TestSelectMatch_EmptyCandidates(t *testing.T) {
	_, err := SelectMatch(nil, "1")
	require.ErrorIs(t, err, ErrInvalidSelection)

	_, err = SelectMatch(nil, "0")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestCancelled(t *testing.T) {
	require.True(t, Cancelled(ErrCancelled))
	require.False(t, Cancelled(ErrInvalidSelection))
	require.False(t, Cancelled(nil))
}
