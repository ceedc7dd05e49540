package graph

// AddTask inserts task as a new task node and infers dependency edges
// against every node already present: for each existing node, if one of
// the two tasks has an input whose UID matches one of the other's
// outputs, an edge is added from producer to consumer labeled with that
// UID. Only task-to-task pairs ever produce an edge — a barrier node
// never has inputs or outputs of its own, so it can neither depend on
// nor be depended on directly.
//
// The new node is inserted unconditionally, even if the resulting graph
// is cyclic; ErrGraphHasCycle signals that the caller must discard the
// graph and rebuild it rather than attempt incremental repair.
func (g *Graph[R, B, T]) AddTask(task T) (NodeID, error) {
	existing := g.Nodes()
	id := g.addNode(Node[R, B, T]{Kind: KindTask, Task: task})

	for _, other := range existing {
		node, ok := g.Node(other)
		if !ok || node.Kind != KindTask {
			continue
		}

		if uid, ok := firstDependency(node.Task, task); ok {
			g.SetEdge(other, id, uid)
		}
		if uid, ok := firstDependency(task, node.Task); ok {
			g.SetEdge(id, other, uid)
		}
	}

	if isCyclic(g) {
		return id, ErrGraphHasCycle
	}

	return id, nil
}

// firstDependency reports the UID of the first input of child that
// matches some output of parent, mirroring the "first input satisfied
// by any output" search the original dependency check performs.
func firstDependency[R Resource](parent, child Task[R]) (string, bool) {
	for _, input := range child.Inputs() {
		for _, output := range parent.Outputs() {
			if input.UID() == output.UID() {
				return input.UID(), true
			}
		}
	}

	return "", false
}
