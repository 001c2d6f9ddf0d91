// Package flownet implements a residual flow network over a flat edge
// arena and computes maximum flow with breadth-first augmenting paths
// (the Ford–Fulkerson method in its Edmonds–Karp form).
//
// # Representation
//
// Nodes are dense integer handles (NodeID) issued by AddNode in creation
// order. Every AddEdge call appends two records to a flat arena: the
// forward edge at an even slot and its paired residual edge — endpoints
// reversed, capacity 0 — at the next odd slot, so the pair of any edge
// handle id is simply id^1. Pushing d units of flow on an edge is
// mirrored as −d on its pair; the pair's residual capacity
// (cap − flow) then turns positive, which is what lets a later
// augmentation reroute flow pushed earlier. No edge or node is ever
// removed once added.
//
// Adjacency lists keep insertion order, and the search iterates them in
// that order: which of several equally short augmenting paths wins is
// therefore deterministic, while the max-flow value itself never
// depends on the choice.
//
// # API
//
//	n := flownet.New(nodeHint, edgeHint)
//	s, t := n.AddNode(), n.AddNode()
//	n.AddEdge(s, t, 1)
//	total, err := flownet.MaxFlow(n, s, t, flownet.DefaultOptions())
//
// Options carries a context for cancellation and a Verbose flag that
// logs each augmentation.
//
// # Errors
//
//	ErrNodeOutOfRange   - a NodeID not issued by AddNode.
//	ErrNegativeCapacity - AddEdge with capacity < 0.
//	ErrLoopNotAllowed   - AddEdge with identical endpoints.
//	ErrSameSourceSink   - MaxFlow with source == sink.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
//
// Complexity: MaxFlow runs in O(V · E²) worst case and O(E · F) on
// integral networks with max-flow value F; memory is O(V + E).
package flownet
