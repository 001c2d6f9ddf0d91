// Package cubes solves the word-from-letter-cubes puzzle: given a fixed
// collection of cubes (each a set of letters) and a target word, decide
// whether the word can be spelled with each cube used for at most one
// letter position and each position covered by exactly one cube that
// carries its letter — and if it can, report which cube covers which
// position.
//
// # Model
//
// The puzzle is a bipartite matching problem, solved as max-flow on a
// three-layer network
//
//	source ──1──▶ cube_c ──1──▶ position_i ──1──▶ sink
//
// with a cube→position edge iff the cube's letter set contains the
// rune at that position. Every capacity is 1, so the max-flow value is
// the size of the largest valid assignment, and the word is spellable
// iff that value equals the word length (Hall/König via max-flow).
//
// # API
//
//	a, err := cubes.Solve([]string{"AB", "BC"}, "AC", flownet.DefaultOptions())
//	if a.Feasible() {
//	    // a[i] = index of the cube spelling position i
//	}
//
// Infeasibility is a first-class result — the single-element marker
// assignment {-1} — never an error. The only error Solve can return is
// a context cancellation from the options.
//
// ReadPuzzle and WriteAssignment implement the original line-based
// exchange format (count, cube lines, word / space-separated indices);
// they are thin glue kept apart from the solver, and a malformed stream
// yields a wrapped ErrMalformedPuzzle.
//
// Complexity: Solve runs in O(C · L²) time and O(C · L) memory for C
// cubes and a word of L runes; the augmentation loop terminates after
// at most L+1 searches.
package cubes
