package graph

// CreateBarrierNodes inserts one barrier node for every (producer,
// resource, consumer) triple found among the task nodes present at the
// time of the call: for each task P, for each output resource of P, for
// every other task node Q with an input matching that resource's UID, a
// fresh barrier wrapping the resource is created via newBarrier, wired
// P -> barrier -> Q, and any direct P -> Q edge that the barrier now
// makes redundant is removed.
//
// This produces the maximal, unmerged barrier set: an output consumed
// by three downstream tasks gets three separate barriers, one per
// consumer. Folding barriers that protect the same resource together is
// a GPU-specific concern (it depends on access-mask and read/write
// semantics this package has no vocabulary for) and is left to the
// caller — see taskgraph.GPUTaskGraph.Build.
//
// The task-node snapshot is taken once, before any barrier is inserted,
// so barriers created earlier in this same call are never mistaken for
// additional producers or consumers; a barrier node never satisfies a
// dependency lookup regardless.
func CreateBarrierNodes[R Resource, B Barrier[R], T Task[R]](
	g *Graph[R, B, T],
	newBarrier func(R) B,
) {
	producers := g.Nodes()

	for _, p := range producers {
		pNode, ok := g.Node(p)
		if !ok || pNode.Kind != KindTask {
			continue
		}

		for _, output := range pNode.Task.Outputs() {
			for _, q := range g.Nodes() {
				if q == p {
					continue
				}
				qNode, ok := g.Node(q)
				if !ok || qNode.Kind != KindTask {
					continue
				}
				if !consumes(qNode.Task, output) {
					continue
				}

				barrier := newBarrier(output)
				bID := g.addNode(Node[R, B, T]{Kind: KindBarrier, Barrier: barrier})
				g.SetEdge(p, bID, output.UID())
				g.SetEdge(bID, q, output.UID())
				g.removeEdge(p, q)
			}
		}
	}
}

// consumes reports whether task has an input matching resource's UID.
func consumes[R Resource](task Task[R], resource R) bool {
	for _, input := range task.Inputs() {
		if input.UID() == resource.UID() {
			return true
		}
	}

	return false
}
