package taskgraph

import "github.com/katalvlaran/taskgraph/graph"

// Recorder is the collaborator a built GPUTaskGraph hands its tasks and
// barriers to, in topological order: RecordBarrier for every Barrier
// node, then the owning Pass's Execute callback for every Task node.
// This package owns scheduling and synchronization only; translating a
// GPUBarrier into the handful of GAPI calls a real pipeline barrier
// requires is entirely up to the Recorder implementation a caller
// supplies (a real one backed by a GAPI command buffer, or a fake one
// used in tests).
type Recorder interface {
	// RecordBarrier is invoked once per barrier node, in topological
	// order, before any task that depends on it.
	RecordBarrier(b GPUBarrier) error
}

// Record walks g in topological order, invoking rec.RecordBarrier for
// every barrier node and the owning pass's Execute callback for every
// task node. Tasks with a nil Execute, such as the synthetic source, are
// skipped.
// It returns the first error encountered, stopping immediately.
func Record(g *GPUTaskGraph, rec Recorder) error {
	for _, id := range g.inner.TopologicalOrder() {
		node, ok := g.inner.Node(id)
		if !ok {
			return ErrUnknownNode
		}

		switch node.Kind {
		case graph.KindBarrier:
			if err := rec.RecordBarrier(node.Barrier); err != nil {
				return err
			}
		case graph.KindTask:
			if node.Task.Execute == nil {
				continue
			}
			if err := node.Task.Execute(rec); err != nil {
				return err
			}
		}
	}

	return nil
}
