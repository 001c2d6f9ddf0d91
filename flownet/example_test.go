package flownet_test

import (
	"fmt"

	"github.com/katalvlaran/cubeflow/flownet"
)

// ExampleMaxFlow demonstrates max-flow on a small two-path network.
//
//	src ──5──▶ snk
//	src ──7──▶ mid ──4──▶ snk
func ExampleMaxFlow() {
	n := flownet.New(3, 3)
	src := n.AddNode()
	snk := n.AddNode()
	mid := n.AddNode()

	n.AddEdge(src, snk, 5)
	n.AddEdge(src, mid, 7)
	n.AddEdge(mid, snk, 4)

	total, _ := flownet.MaxFlow(n, src, snk, flownet.DefaultOptions())
	fmt.Println(total)
	// Output:
	// 9
}

// ExampleNetwork_Residual shows how pushing flow opens the paired
// residual edge for later rerouting.
func ExampleNetwork_Residual() {
	n := flownet.New(2, 1)
	src := n.AddNode()
	snk := n.AddNode()
	id, _ := n.AddEdge(src, snk, 3)

	flownet.MaxFlow(n, src, snk, flownet.DefaultOptions())

	fmt.Println(n.Residual(id), n.Residual(n.Pair(id)))
	// Output:
	// 0 3
}
