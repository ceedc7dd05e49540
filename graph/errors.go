package graph

import "errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is; wrapping with fmt.Errorf("%w", ...) is expected at call
// sites that add context.
var (
	// ErrNodeNotFound is returned when a NodeID does not resolve to a
	// node currently present in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrGraphHasCycle is returned by AddTask when inserting a task
	// would close a dependency cycle. The task is inserted before the
	// cycle check runs; callers that want a clean graph on failure must
	// discard it and start over (spec section 4.2 deliberately leaves
	// rollback to the caller, since a cyclic graph is a programmer
	// error, not a recoverable runtime condition).
	ErrGraphHasCycle = errors.New("graph: task insertion would create a cycle")

	// ErrIllegalTaskGraph is returned when barrier merging discovers two
	// non-read consumers of the same resource with differing access,
	// which the original GAPI has no single barrier that can satisfy.
	ErrIllegalTaskGraph = errors.New("graph: illegal task graph")
)
