package cubes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPuzzle parses the line-based puzzle format:
//
//	line 1        cube count N (non-negative integer)
//	lines 2..N+1  one cube letter set per line
//	line N+2      the target word
//
// Duplicate letters within a cube line are irrelevant; containment is
// tested per rune. Violations of the format — an unparsable or negative
// count, or fewer lines than declared — yield an error wrapping
// ErrMalformedPuzzle.
func ReadPuzzle(r io.Reader) (cubeSets []string, word string, err error) {
	sc := bufio.NewScanner(r)

	countLine, err := nextLine(sc, "cube count")
	if err != nil {
		return nil, "", err
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return nil, "", fmt.Errorf("%w: cube count %q is not an integer", ErrMalformedPuzzle, countLine)
	}
	if count < 0 {
		return nil, "", fmt.Errorf("%w: cube count %d is negative", ErrMalformedPuzzle, count)
	}

	cubeSets = make([]string, count)
	for i := 0; i < count; i++ {
		if cubeSets[i], err = nextLine(sc, fmt.Sprintf("cube %d", i)); err != nil {
			return nil, "", err
		}
	}

	if word, err = nextLine(sc, "target word"); err != nil {
		return nil, "", err
	}

	return cubeSets, word, nil
}

// nextLine returns the scanner's next line, or a wrapped
// ErrMalformedPuzzle naming the line that was expected.
func nextLine(sc *bufio.Scanner, what string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrMalformedPuzzle, what, err)
		}
		return "", fmt.Errorf("%w: missing %s line", ErrMalformedPuzzle, what)
	}

	return sc.Text(), nil
}

// WriteAssignment writes a as space-separated indices followed by a
// newline — the marker {-1} prints as "-1".
func WriteAssignment(w io.Writer, a Assignment) error {
	for i, idx := range a {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, idx); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}
