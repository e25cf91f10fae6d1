package utils

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors shared by the reduction and estimation packages.
var (
	// ErrInvalidArgument indicates a scalar parameter outside its valid
	// domain (non-positive spacing, non-positive CPU count, ...).
	ErrInvalidArgument = errors.New("osiris: argument out of valid domain")

	// ErrShape indicates an array of the wrong rank. Matchable with
	// errors.Is; use errors.As with *ShapeError for the details.
	ErrShape = errors.New("osiris: array shape mismatch")
)

// ShapeError reports a rank precondition failure, detected before any
// computation runs.
type ShapeError struct {
	Op       string
	WantRank int
	GotShape []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("osiris: %s requires a %dD array, got shape %s",
		e.Op, e.WantRank, formatShape(e.GotShape))
}

func (e *ShapeError) Unwrap() error { return ErrShape }

func formatShape(shape []int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, n := range shape {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteByte(')')
	return b.String()
}
