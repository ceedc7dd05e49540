// Package graph implements the generic task graph: a directed graph
// parameterized over a resource, a barrier, and a task abstraction, with
// dependency-edge inference on task insertion, cycle rejection, and
// maximal barrier-node synthesis.
//
// This is the engine component of the task-graph core (spec section
// 4.2); the concrete GPU specialization — the synthetic source node,
// barrier merging, and the recorder contract — lives in package
// taskgraph, which is the only instantiation of the generics here. Per
// spec section 9's design note, the abstraction boundary is kept thin on
// purpose: a second instantiation is never expected, but expressing the
// engine generically keeps dependency inference and barrier synthesis
// free of any GPU-specific vocabulary (access masks, pipeline stages),
// which is what lets package taskgraph own all of that instead.
//
// Node identity. Nodes are addressed by a monotonically-allocated string
// NodeID stored in a map, not a compactable vector index. Deleting a node
// only removes its map entry; every other NodeID remains valid for the
// lifetime of the Graph. This sidesteps the index-stability hazard the
// original design flagged around vector-backed graphs entirely, instead
// of requiring a slotmap or a post-compaction index translation pass.
//
// Concurrency. A Graph is not internally synchronized: construction and
// traversal of one instance is single-threaded and cooperative. Building
// independent graphs concurrently on different goroutines is fine (see
// package framepool); sharing one Graph across goroutines is not
// supported.
package graph
