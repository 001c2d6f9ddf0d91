// Package cubes defines the puzzle result type and sentinel errors
// for the word-from-letter-cubes assignment problem.
package cubes

import "errors"

// ErrMalformedPuzzle is returned by ReadPuzzle when the line-based
// puzzle input violates its format (bad count line, too few lines).
// The solver itself never returns it: a puzzle that merely cannot be
// spelled is a normal, infeasible result, not an error.
var ErrMalformedPuzzle = errors.New("cubes: malformed puzzle input")

// InfeasibleMarker is the value carried by the single-element
// assignment that signals "the word cannot be spelled".
const InfeasibleMarker = -1

// Assignment maps each letter position of the target word to the
// 0-based index of the cube covering it: position i of the word is
// spelled with cube Assignment[i]. An infeasible puzzle yields the
// single-element marker {-1}; an empty word yields an empty, feasible
// assignment.
type Assignment []int

// Infeasible returns the marker assignment for an unspellable word.
func Infeasible() Assignment { return Assignment{InfeasibleMarker} }

// Feasible reports whether a is a real cube-per-position assignment
// rather than the infeasibility marker.
func (a Assignment) Feasible() bool {
	return len(a) != 1 || a[0] != InfeasibleMarker
}
