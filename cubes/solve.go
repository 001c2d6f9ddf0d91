package cubes

import "github.com/katalvlaran/cubeflow/flownet"

// reversedUnit is the flow carried by the residual edge from a matched
// letter-position node back to the cube that supplied it. With unit
// capacities everywhere it is always exactly −1.
const reversedUnit = int64(-1)

// Solve decides whether word can be spelled from cubeSets — each cube
// covering at most one letter position, each position covered by
// exactly one cube containing its rune — and, if so, which cube covers
// which position.
//
// It returns:
//   - Assignment: cube index per position, or the {-1} marker when the
//     word cannot be spelled (a normal result, never an error)
//   - err: only a context cancellation error propagated from opts.Ctx
//
// Steps:
//  1. Build the three-layer flow network from (cubeSets, word) (O(C·L)).
//  2. Run flownet.MaxFlow source→sink (at most L+1 search rounds, since
//     every unit of flow saturates one position's unit edge to the sink).
//  3. Feasible iff the total flow equals the word length; if so, read
//     the assignment back out of the saturated edges.
//
// The verdict is deterministic: re-running yields the same feasibility
// and, with fixed input order, the same assignment.
// Complexity: O(C · L²) time worst case, O(C · L) memory.
func Solve(cubeSets []string, word string, opts flownet.Options) (Assignment, error) {
	p := buildNetwork(cubeSets, word)

	total, err := flownet.MaxFlow(p.net, p.source, p.sink, opts)
	if err != nil {
		return nil, err
	}
	if total != int64(len(p.positions)) {
		return Infeasible(), nil
	}

	return p.extract(), nil
}

// extract recovers the cube-per-position assignment from the converged
// network. Each saturated position node has exactly one outgoing
// residual edge carrying flow −1 — the reverse of the cube edge that
// supplied it; the role table maps that edge's head back to the cube
// index. Must only be called when max flow == number of positions.
func (p *puzzleNet) extract() Assignment {
	ans := make(Assignment, len(p.positions))
	for i, pos := range p.positions {
		for _, id := range p.net.Out(pos) {
			e := p.net.Edge(id)
			if e.Flow == reversedUnit {
				ans[i] = p.cubeOf[e.To]
				break
			}
		}
	}

	return ans
}
