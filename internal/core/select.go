package core

import (
	"errors"
	"strconv"
	"strings"
)

// SelectMatch maps typed input over a candidate list to an index in the
// full roster. Input 0 cancels; 1..N picks a candidate; anything else
// (non-numeric, negative, out of range) is an invalid selection.
func SelectMatch(matches []Match, input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 || n > len(matches) {
		return 0, ErrInvalidSelection
	}

	if n == 0 {
		return 0, ErrCancelled
	}

	return matches[n-1].Index, nil
}

// Cancelled reports whether err is the user cancelling a selection, as
// opposed to an invalid one.
func Cancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
