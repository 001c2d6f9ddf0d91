package flownet

import (
	"context"
	"math"
)

// unbounded is the sentinel bottleneck assigned to the source: no path
// can be constrained by it, only by real residual capacities.
const unbounded = int64(math.MaxInt64)

// noEdge marks a previous-slot as "not reached on this run".
const noEdge = EdgeID(-1)

// augmentingPath runs one breadth-first search over the residual graph
// from source toward sink. previous has one slot per node and is filled
// with the edge handle used to reach that node on the discovered path;
// it is an out-parameter scoped to the driver's loop, reused across runs.
//
// A node counts as reached once its bottleneck becomes nonzero; an edge
// is usable iff its residual capacity is > 0 and its head is unreached.
// Reaching a node via edge e sets
//
//	bottleneck[head] = min(bottleneck[tail], Residual(e)).
//
// The traversal stops early once the sink is reached and returns
// bottleneck[sink] — 0 means no augmenting path remains, which is the
// driver's termination signal. Among equally valid paths the one found
// first in breadth-first, edge-insertion order wins; the max-flow value
// does not depend on the choice.
//
// Complexity: O(V + E) per run. Memory: O(V) for the bottleneck array.
func (n *Network) augmentingPath(ctx context.Context, source, sink NodeID, previous []EdgeID) (int64, error) {
	for i := range previous {
		previous[i] = noEdge
	}

	// bottleneck[v] = best flow known to reach v this run; 0 = unreached.
	bottleneck := make([]int64, n.NumNodes())
	bottleneck[source] = unbounded

	queue := make([]NodeID, 0, n.NumNodes())
	queue = append(queue, source)

	for len(queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]

		for _, id := range n.out[u] {
			v := n.edges[id].To
			if n.Residual(id) <= 0 || bottleneck[v] != 0 {
				continue
			}
			previous[v] = id
			bottleneck[v] = min(bottleneck[u], n.Residual(id))
			queue = append(queue, v)
		}

		// stop as soon as the sink has been reached
		if bottleneck[sink] != 0 {
			break
		}
	}

	return bottleneck[sink], nil
}
