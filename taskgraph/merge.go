package taskgraph

import (
	"fmt"

	"github.com/katalvlaran/taskgraph/gapi"
	"github.com/katalvlaran/taskgraph/graph"
)

type nodeGraph = graph.Graph[GPUResource, GPUBarrier, GPUTask]

// barrierDstResource returns the resource, as declared on the consuming
// task's input list, a barrier node delivers to its consumer. Every
// barrier has exactly one outgoing edge until mergeIdenticalBarriers
// runs, and every barrier created by the same merge group is already
// known to target the same resource UID, so the first outgoing edge is
// sufficient regardless of how many a barrier ends up with afterward.
func barrierDstResource(g *nodeGraph, id graph.NodeID) (GPUResource, error) {
	node, ok := g.Node(id)
	if !ok || node.Kind != graph.KindBarrier {
		return GPUResource{}, fmt.Errorf("taskgraph: barrierDstResource: %w", graph.ErrNodeNotFound)
	}

	var target graph.NodeID
	for to := range g.EdgesFrom(id) {
		target = to
		break
	}

	consumer, ok := g.Node(target)
	if !ok || consumer.Kind != graph.KindTask {
		return GPUResource{}, fmt.Errorf("taskgraph: barrierDstResource: %w", graph.ErrNodeNotFound)
	}

	for _, in := range consumer.Task.Inputs() {
		if in.UID() == node.Barrier.Resource().UID() {
			return in, nil
		}
	}

	return GPUResource{}, fmt.Errorf("taskgraph: barrierDstResource: %w", graph.ErrNodeNotFound)
}

// barrierSrcResource returns the resource, as declared on the producing
// task's input list, whose UID matches the barrier's resource. The
// producer is found through the barrier's single incoming edge, the same
// way barrierDstResource follows its outgoing one. Because a barrier
// protects one of the producer's outputs, a match exists only when the
// producer also lists that same UID among its inputs; otherwise
// ErrNodeNotFound is returned.
func barrierSrcResource(g *nodeGraph, id graph.NodeID) (GPUResource, error) {
	node, ok := g.Node(id)
	if !ok || node.Kind != graph.KindBarrier {
		return GPUResource{}, fmt.Errorf("taskgraph: barrierSrcResource: %w", graph.ErrNodeNotFound)
	}

	var source graph.NodeID
	for from := range g.EdgesTo(id) {
		source = from
		break
	}

	producer, ok := g.Node(source)
	if !ok || producer.Kind != graph.KindTask {
		return GPUResource{}, fmt.Errorf("taskgraph: barrierSrcResource: %w", graph.ErrNodeNotFound)
	}

	for _, in := range producer.Task.Inputs() {
		if in.UID() == node.Barrier.Resource().UID() {
			return in, nil
		}
	}

	return GPUResource{}, fmt.Errorf("taskgraph: barrierSrcResource: %w", graph.ErrNodeNotFound)
}

func barrierNodes(g *nodeGraph) []graph.NodeID {
	var ids []graph.NodeID
	for _, id := range g.Nodes() {
		if n, ok := g.Node(id); ok && n.Kind == graph.KindBarrier {
			ids = append(ids, id)
		}
	}

	return ids
}

type dstFlags struct {
	stage  gapi.PipelineStage
	access gapi.AccessFlags
}

// mergeIdenticalBarriers folds every group of barriers that protect the
// same resource UID into the earliest-visited barrier of that group: it
// absorbs the other members' outgoing edges and OR-accumulates their
// destination stage and access into its own, then deletes them. Two
// non-read consumers in the same group with differing access have no
// single GAPI barrier that can satisfy both and make the graph illegal.
func mergeIdenticalBarriers(g *nodeGraph) error {
	barriers := barrierNodes(g)

	toRemove := make(map[graph.NodeID]bool)
	type edgeSpec struct {
		from, to graph.NodeID
		uid      string
	}
	var edgesToAdd []edgeSpec
	flags := make(map[graph.NodeID]dstFlags)

	for _, node := range barriers {
		if toRemove[node] {
			continue
		}

		dst, err := barrierDstResource(g, node)
		if err != nil {
			return err
		}
		flags[node] = dstFlags{stage: dst.Stage, access: dst.Usage.Access()}

		nodeBarrier, _ := g.Node(node)

		for _, other := range barriers {
			if other == node || toRemove[node] {
				continue
			}

			otherBarrier, _ := g.Node(other)
			if otherBarrier.Barrier.Resource().UID() != nodeBarrier.Barrier.Resource().UID() {
				continue
			}

			otherDst, err := barrierDstResource(g, other)
			if err != nil {
				return err
			}

			if !otherDst.Usage.IsRead() && !dst.Usage.IsRead() && otherDst.Usage != dst.Usage {
				return fmt.Errorf("taskgraph: mergeIdenticalBarriers: %w", graph.ErrIllegalTaskGraph)
			}

			toRemove[other] = true

			var target graph.NodeID
			for to := range g.EdgesFrom(other) {
				target = to
				break
			}
			edgesToAdd = append(edgesToAdd, edgeSpec{from: node, to: target, uid: otherDst.UID()})

			cur := flags[node]
			flags[node] = dstFlags{
				stage:  cur.stage.Or(otherDst.Stage),
				access: cur.access.Or(otherDst.Usage.Access()),
			}
		}
	}

	for _, e := range edgesToAdd {
		g.SetEdge(e.from, e.to, e.uid)
	}

	for _, id := range barriers {
		if toRemove[id] {
			continue
		}
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		f := flags[id]
		n.Barrier.DstStage = f.stage
		n.Barrier.DstAccess = f.access
		g.SetNode(id, n)
	}

	removeList := make([]graph.NodeID, 0, len(toRemove))
	for id := range toRemove {
		removeList = append(removeList, id)
	}
	g.RemoveNodes(removeList)

	return nil
}
