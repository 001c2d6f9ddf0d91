// Package flownet defines handles, options, and sentinel errors
// for the arena-based residual flow network.
package flownet

import (
	"context"
	"errors"
)

// Sentinel errors for network construction and max-flow execution.
var (
	// ErrNodeOutOfRange is returned when a NodeID was not issued by AddNode.
	ErrNodeOutOfRange = errors.New("flownet: node handle out of range")

	// ErrNegativeCapacity is returned when AddEdge receives a capacity < 0.
	ErrNegativeCapacity = errors.New("flownet: negative edge capacity")

	// ErrLoopNotAllowed is returned on a self-loop; apart from paired
	// residual edges the network must stay acyclic.
	ErrLoopNotAllowed = errors.New("flownet: self-loop not allowed")

	// ErrSameSourceSink is returned when MaxFlow is asked to route flow
	// from a node to itself.
	ErrSameSourceSink = errors.New("flownet: source and sink must differ")
)

// NodeID is a dense integer handle for a network node, assigned by
// AddNode in creation order (0..NumNodes-1). It doubles as an index
// into caller-side per-node arrays.
type NodeID int

// EdgeID is a dense integer handle into the edge arena. Forward edges
// occupy even slots; the paired residual edge of id is always id^1.
type EdgeID int

// Options configures MaxFlow.
//   - Ctx: cancellation / deadline for the augmentation loop
//     (defaults to context.Background()).
//   - Verbose: if true, logs each augmentation via fmt.Printf.
type Options struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns production-safe defaults:
// background context, no verbose logging.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// normalize fills unset fields so callers may pass a zero Options.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
