package flownet

// Edge is a directed arc with an integer capacity and the flow currently
// routed through it. For every forward edge the arena holds a paired
// residual edge (endpoints reversed, capacity 0); pushing d units onto
// one decreases the flow on the other by d, which is the sole mechanism
// by which earlier flow can be undone during later augmentations.
//
// Invariant on forward edges: 0 ≤ Flow ≤ Cap. Residual edges carry
// Flow ≤ 0, so Residual = Cap − Flow stays ≥ 0 on both.
type Edge struct {
	// From is the tail node handle.
	From NodeID

	// To is the head node handle.
	To NodeID

	// Cap is the capacity of the edge (0 on residual edges).
	Cap int64

	// Flow is the amount currently routed through the edge.
	Flow int64
}

// Network is a directed flow network stored as a flat edge arena plus a
// per-node adjacency table. Edges are appended in pairs (forward at an
// even slot, its residual at the next odd slot), never removed, and the
// adjacency table preserves insertion order — the order augmenting-path
// search iterates edges, which decides tie-breaks between equally short
// paths but never the max-flow value.
//
// Network is not safe for concurrent use; the max-flow driver owns it
// exclusively for the duration of the algorithm.
type Network struct {
	edges []Edge     // flat arena; pair of id is id^1
	out   [][]EdgeID // out[u] = outgoing edge handles of u, insertion order
}

// New returns an empty Network pre-sized for nodeHint nodes and
// edgeHint forward edges. Hints may be zero.
// Complexity: O(1) amortized.
func New(nodeHint, edgeHint int) *Network {
	return &Network{
		edges: make([]Edge, 0, 2*edgeHint),
		out:   make([][]EdgeID, 0, nodeHint),
	}
}

// AddNode creates a node and returns its handle. Handles are issued
// densely in creation order starting at 0 and stay stable for the
// lifetime of the network.
// Complexity: O(1) amortized.
func (n *Network) AddNode() NodeID {
	n.out = append(n.out, nil)
	return NodeID(len(n.out) - 1)
}

// NumNodes reports how many nodes have been created.
func (n *Network) NumNodes() int { return len(n.out) }

// NumEdges reports how many arena slots are in use, counting both
// forward and residual edges.
func (n *Network) NumEdges() int { return len(n.edges) }

// AddEdge creates a forward edge u→v with the given capacity and zero
// flow, together with its paired residual edge v→u (capacity 0, flow 0),
// and appends both to the owning nodes' adjacency lists. It returns the
// forward edge's handle; the residual pair lives at Pair(id).
//
// Errors: ErrNodeOutOfRange if u or v was not issued by AddNode,
// ErrNegativeCapacity if capacity < 0, ErrLoopNotAllowed if u == v.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(u, v NodeID, capacity int64) (EdgeID, error) {
	if u < 0 || int(u) >= len(n.out) || v < 0 || int(v) >= len(n.out) {
		return 0, ErrNodeOutOfRange
	}
	if capacity < 0 {
		return 0, ErrNegativeCapacity
	}
	if u == v {
		return 0, ErrLoopNotAllowed
	}

	// Forward edge at an even slot, residual pair at the next odd slot.
	id := EdgeID(len(n.edges))
	n.edges = append(n.edges,
		Edge{From: u, To: v, Cap: capacity},
		Edge{From: v, To: u, Cap: 0},
	)
	n.out[u] = append(n.out[u], id)
	n.out[v] = append(n.out[v], id^1)

	return id, nil
}

// Edge returns a copy of the edge at handle id.
func (n *Network) Edge(id EdgeID) Edge { return n.edges[id] }

// Pair returns the handle of id's paired residual edge (and vice versa).
func (n *Network) Pair(id EdgeID) EdgeID { return id ^ 1 }

// Residual reports the residual capacity of the edge at id:
// Cap − Flow, the amount of additional flow it can still carry.
// An edge is traversable by the search iff this is > 0.
func (n *Network) Residual(id EdgeID) int64 {
	e := &n.edges[id]
	return e.Cap - e.Flow
}

// Out returns the outgoing edge handles of u in insertion order.
// The returned slice is owned by the network; callers must not mutate it.
func (n *Network) Out(u NodeID) []EdgeID { return n.out[u] }

// push routes d additional units through the edge at id and mirrors the
// change as −d on its residual pair.
func (n *Network) push(id EdgeID, d int64) {
	n.edges[id].Flow += d
	n.edges[id^1].Flow -= d
}
