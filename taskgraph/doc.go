// Package taskgraph is the GPU specialization of package graph: it binds
// the generic engine to GPUResource, GPUBarrier, and GPUTask, adds the
// synthetic source node every frame graph needs, and folds the maximal
// barrier set CreateBarrierNodes produces down to one barrier per
// distinct resource UID via Build.
//
// A GPUTaskGraph is built once per frame: passes are added with AddPass,
// then Build synthesizes and merges barriers, after which the graph is
// ready to be walked by a Recorder in topological order. Building many
// independent frames concurrently is package framepool's job; a single
// GPUTaskGraph is not safe for concurrent use, matching package graph.
//
// GPUTaskGraph carries gapi.ExecutionDomain as a plain field rather than
// a type parameter. The domain never changes the scheduling algorithm —
// it is opaque to every operation in this package and only surfaces at
// the Recorder boundary — so parameterizing the graph over it would only
// buy compile-time domain-mismatch checks at the cost of threading a
// generic GPUTaskGraph[D] through every signature in this package and
// framepool. A single concrete ExecutionDomain field gives callers the
// same information with far less ceremony.
package taskgraph
