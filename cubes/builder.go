package cubes

import (
	"strings"

	"github.com/katalvlaran/cubeflow/flownet"
)

// unitCapacity is the capacity of every edge in the puzzle network:
// one cube covers at most one position, one position needs exactly one
// cube.
const unitCapacity = int64(1)

// puzzleNet is the three-layer flow network built from one puzzle:
// source → cube nodes → letter-position nodes → sink. It keeps the
// role tables needed to read the solution back out of the edge states,
// so no arithmetic on node handles is ever required.
type puzzleNet struct {
	net       *flownet.Network
	source    flownet.NodeID
	sink      flownet.NodeID
	positions []flownet.NodeID       // one per word rune, word order
	cubeOf    map[flownet.NodeID]int // cube node → index into cubeSets
}

// buildNetwork maps (cubeSets, word) into a residual flow network.
//
// Construction order is fixed: source and sink first, then one node per
// letter position in word order (each with a unit edge to the sink),
// then one node per cube in input order — a unit edge to every position
// whose rune the cube's letter set contains, followed by the unit
// source→cube edge. The finished network has exactly 2+L+C nodes.
//
// A position matched by no cube simply has no incoming cube edge; flow
// to it is impossible and the puzzle comes out infeasible, which is the
// correct verdict.
//
// Hand-checked handles make AddEdge's error paths unreachable here, so
// they are discarded.
// Complexity: O(C · L) time and edges, O(L + C) nodes.
func buildNetwork(cubeSets []string, word string) *puzzleNet {
	letters := []rune(word)

	p := &puzzleNet{
		net:       flownet.New(2+len(letters)+len(cubeSets), len(letters)+len(cubeSets)*(1+len(letters))),
		positions: make([]flownet.NodeID, len(letters)),
		cubeOf:    make(map[flownet.NodeID]int, len(cubeSets)),
	}
	p.source = p.net.AddNode()
	p.sink = p.net.AddNode()

	// Letter-position layer: each position drains one unit into the sink.
	for i := range letters {
		pos := p.net.AddNode()
		p.positions[i] = pos
		_, _ = p.net.AddEdge(pos, p.sink, unitCapacity)
	}

	// Cube layer: a cube may feed any position whose rune it carries,
	// and receives one unit from the source.
	for c, set := range cubeSets {
		cube := p.net.AddNode()
		p.cubeOf[cube] = c
		for i, r := range letters {
			if strings.ContainsRune(set, r) {
				_, _ = p.net.AddEdge(cube, p.positions[i], unitCapacity)
			}
		}
		_, _ = p.net.AddEdge(p.source, cube, unitCapacity)
	}

	return p
}
