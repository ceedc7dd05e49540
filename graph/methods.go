package graph

import "fmt"

const nodeIDPrefix = "n"

// addNode inserts n under a freshly allocated NodeID and returns it.
func (g *Graph[R, B, T]) addNode(n Node[R, B, T]) NodeID {
	g.nextID++
	id := NodeID(fmt.Sprintf("%s%d", nodeIDPrefix, g.nextID))
	g.nodes[id] = n
	g.order = append(g.order, id)
	g.out[id] = make(map[NodeID]string)
	g.in[id] = make(map[NodeID]string)

	return id
}

// Node returns the node stored at id.
func (g *Graph[R, B, T]) Node(id NodeID) (Node[R, B, T], bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// NumNodes reports how many nodes currently exist in the graph.
func (g *Graph[R, B, T]) NumNodes() int {
	return len(g.nodes)
}

// Nodes returns every live NodeID, in the order each was first inserted.
// Deleted IDs are filtered out rather than removed from the order slice,
// keeping deletion O(1) per node.
func (g *Graph[R, B, T]) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for _, id := range g.order {
		if _, ok := g.nodes[id]; ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// SetEdge records a directed edge from -> to labeled with a resource
// UID, overwriting any existing edge between the same pair — this
// package never needs more than one edge per ordered node pair.
func (g *Graph[R, B, T]) SetEdge(from, to NodeID, uid string) {
	g.out[from][to] = uid
	g.in[to][from] = uid
}

// removeEdge deletes the edge from -> to, if one exists.
func (g *Graph[R, B, T]) removeEdge(from, to NodeID) {
	delete(g.out[from], to)
	delete(g.in[to], from)
}

// HasEdge reports whether an edge from -> to exists.
func (g *Graph[R, B, T]) HasEdge(from, to NodeID) bool {
	_, ok := g.out[from][to]

	return ok
}

// EdgesFrom returns the outgoing edges of id as a map of target NodeID
// to the resource UID labeling that edge.
func (g *Graph[R, B, T]) EdgesFrom(id NodeID) map[NodeID]string {
	return g.out[id]
}

// EdgesTo returns the incoming edges of id as a map of source NodeID to
// the resource UID labeling that edge.
func (g *Graph[R, B, T]) EdgesTo(id NodeID) map[NodeID]string {
	return g.in[id]
}

// RemoveNodes deletes every node in ids along with all edges touching
// them, in a single batched pass. Used by barrier-merge compaction,
// where several barrier nodes are folded into one in the same step.
func (g *Graph[R, B, T]) RemoveNodes(ids []NodeID) {
	dead := make(map[NodeID]bool, len(ids))
	for _, id := range ids {
		dead[id] = true
	}

	for id := range dead {
		for to := range g.out[id] {
			delete(g.in[to], id)
		}
		for from := range g.in[id] {
			delete(g.out[from], id)
		}
		delete(g.out, id)
		delete(g.in, id)
		delete(g.nodes, id)
	}
}

// SetNode overwrites the node stored at an existing id, used to write
// back mutations made to a node's payload in place (e.g. appending to
// the synthetic source task's outputs, or writing accumulated barrier
// flags after a merge pass) without going through AddTask again.
func (g *Graph[R, B, T]) SetNode(id NodeID, n Node[R, B, T]) {
	g.nodes[id] = n
}
