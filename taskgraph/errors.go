package taskgraph

import "errors"

// Sentinel errors specific to this package. Errors originating from the
// generic engine (graph.ErrGraphHasCycle, graph.ErrIllegalTaskGraph) are
// returned and wrapped as-is; callers can still errors.Is against the
// graph package's sentinels.
var (
	// ErrNoSourceNode is returned by AddPass when the graph's recorded
	// source NodeID does not resolve to a node. A graph created by New
	// always has its source node.
	ErrNoSourceNode = errors.New("taskgraph: graph has no source node")

	// ErrUnknownNode is returned by Record when a node reachable from
	// the graph's topological order cannot be resolved, which signals a
	// bug in graph construction rather than a caller error.
	ErrUnknownNode = errors.New("taskgraph: unresolved node encountered during recording")
)
