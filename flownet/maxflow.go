package flownet

import "fmt"

// MaxFlow computes the maximum flow from source to sink using the
// Ford–Fulkerson method with breadth-first augmenting paths
// (Edmonds–Karp). Edge flows are updated in place; the caller reads the
// final edge states via Edge/Residual after it returns.
//
// It returns:
//   - total: the max-flow value
//   - err:   ErrNodeOutOfRange, ErrSameSourceSink, or a context
//     cancellation error from opts.Ctx
//
// Steps:
//  1. Normalize options; validate source and sink (O(1)).
//  2. Repeat: BFS for an augmenting path; if its bottleneck is 0,
//     stop — no path remains.
//  3. Otherwise walk previous backward from sink to source, push the
//     bottleneck onto every edge of the path (mirrored as −bottleneck
//     on the residual pairs), and add it to the total.
//
// Complexity:
//
//	Time:   O(V · E²) worst case; O(E · F) on integral networks where
//	        F is the max-flow value (unit capacities: F ≤ min cut).
//	Memory: O(V) for the previous and bottleneck arrays.
func MaxFlow(n *Network, source, sink NodeID, opts Options) (total int64, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if source < 0 || int(source) >= n.NumNodes() || sink < 0 || int(sink) >= n.NumNodes() {
		return 0, ErrNodeOutOfRange
	}
	if source == sink {
		return 0, ErrSameSourceSink
	}

	// previous[v] = edge used to reach v; allocated once, reused per run.
	previous := make([]EdgeID, n.NumNodes())

	for {
		if err = ctx.Err(); err != nil {
			return total, err
		}

		bottleneck, serr := n.augmentingPath(ctx, source, sink, previous)
		if serr != nil {
			return total, serr
		}
		if bottleneck == 0 {
			break // converged: no augmenting path remains
		}

		// Push the bottleneck along the discovered path, sink → source.
		for v := sink; v != source; v = n.edges[previous[v]].From {
			n.push(previous[v], bottleneck)
		}
		total += bottleneck

		if opts.Verbose {
			fmt.Printf("flownet: augmented by %d, total %d\n", bottleneck, total)
		}
	}

	return total, nil
}
