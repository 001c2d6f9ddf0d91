package cubes_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubeflow/cubes"
)

// TestReadPuzzle parses the canonical line format: count, cube lines,
// target word.
func TestReadPuzzle(t *testing.T) {
	in := strings.NewReader("3\nABC\nDEF\nGHI\nAEI\n")

	cubeSets, word, err := cubes.ReadPuzzle(in)
	require.NoError(t, err)
	require.Equal(t, []string{"ABC", "DEF", "GHI"}, cubeSets)
	require.Equal(t, "AEI", word)
}

// TestReadPuzzleZeroCubes accepts a zero count followed directly by the
// target word.
func TestReadPuzzleZeroCubes(t *testing.T) {
	cubeSets, word, err := cubes.ReadPuzzle(strings.NewReader("0\nHELLO\n"))
	require.NoError(t, err)
	require.Empty(t, cubeSets)
	require.Equal(t, "HELLO", word)
}

// TestReadPuzzleMalformed covers the format violations: unparsable or
// negative count, fewer cube lines than declared, missing word line.
func TestReadPuzzleMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"count not a number", "three\nABC\nA\n"},
		{"negative count", "-1\nA\n"},
		{"missing cube line", "2\nABC\n"},
		{"missing word line", "1\nABC\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := cubes.ReadPuzzle(strings.NewReader(tc.input))
			require.ErrorIs(t, err, cubes.ErrMalformedPuzzle)
		})
	}
}

// TestWriteAssignment renders space-separated indices with a trailing
// newline, and the marker as a bare "-1".
func TestWriteAssignment(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, cubes.WriteAssignment(&sb, cubes.Assignment{0, 2, 1}))
	require.Equal(t, "0 2 1\n", sb.String())

	sb.Reset()
	require.NoError(t, cubes.WriteAssignment(&sb, cubes.Infeasible()))
	require.Equal(t, "-1\n", sb.String())

	sb.Reset()
	require.NoError(t, cubes.WriteAssignment(&sb, cubes.Assignment{}))
	require.Equal(t, "\n", sb.String())
}

// TestFeasible pins down the marker semantics of Assignment.
func TestFeasible(t *testing.T) {
	require.True(t, cubes.Assignment{}.Feasible())
	require.True(t, cubes.Assignment{0}.Feasible())
	require.True(t, cubes.Assignment{0, 1}.Feasible())
	require.False(t, cubes.Infeasible().Feasible())
}
