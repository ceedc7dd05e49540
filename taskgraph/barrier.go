package taskgraph

import "github.com/katalvlaran/taskgraph/gapi"

// GPUBarrier is a synchronization point protecting a single GPUResource
// between one producing task and one or more consuming tasks. Source
// fields are fixed the moment the barrier is created, from the
// producer's declared usage of the resource; destination fields start
// empty and are accumulated across every consumer during Build, once
// the full set of barriers protecting the same resource is known.
type GPUBarrier struct {
	resource  GPUResource
	SrcAccess gapi.AccessFlags
	DstAccess gapi.AccessFlags
	SrcStage  gapi.PipelineStage
	DstStage  gapi.PipelineStage
}

// NewGPUBarrier constructs a barrier over resource, deriving its source
// access and stage from the resource's own declared usage. It is passed
// to graph.CreateBarrierNodes as the barrier factory, never called
// directly outside this package.
func NewGPUBarrier(r GPUResource) GPUBarrier {
	return GPUBarrier{
		resource:  r,
		SrcAccess: r.Usage.Access(),
		SrcStage:  r.Stage,
	}
}

// Resource satisfies graph.Barrier[GPUResource].
func (b GPUBarrier) Resource() GPUResource {
	return b.resource
}
