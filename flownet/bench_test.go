package flownet_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cubeflow/flownet"
)

// buildUnitBipartite constructs a source→left→right→sink network with
// unit capacities and roughly p probability of a left→right edge.
// The deterministic seed keeps runs reproducible.
func buildUnitBipartite(left, right int, p float64, seed int64) (*flownet.Network, flownet.NodeID, flownet.NodeID) {
	r := rand.New(rand.NewSource(seed))
	n := flownet.New(2+left+right, left+right+left*right)

	src, snk := n.AddNode(), n.AddNode()

	rights := make([]flownet.NodeID, right)
	for j := 0; j < right; j++ {
		rights[j] = n.AddNode()
		_, _ = n.AddEdge(rights[j], snk, 1)
	}
	for i := 0; i < left; i++ {
		u := n.AddNode()
		for j := 0; j < right; j++ {
			if r.Float64() < p {
				_, _ = n.AddEdge(u, rights[j], 1)
			}
		}
		_, _ = n.AddEdge(src, u, 1)
	}

	return n, src, snk
}

// BenchmarkMaxFlow measures the full augmentation loop on unit
// bipartite networks of increasing size.
func BenchmarkMaxFlow(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("bipartite_%dx%d", size, size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				n, src, snk := buildUnitBipartite(size, size, 0.1, 42)
				b.StartTimer()
				if _, err := flownet.MaxFlow(n, src, snk, flownet.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
