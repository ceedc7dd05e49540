package dot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/taskgraph/graph"
	"github.com/katalvlaran/taskgraph/taskgraph"
)

const (
	taskFillColor    = "#5e6df7"
	barrierFillColor = "#f75e70"
)

// Render returns g's current node/edge set as GraphViz DOT text. Task
// nodes are filled taskFillColor; barrier nodes are filled
// barrierFillColor and drawn as boxes. Edge labels are always empty —
// the resource UID that induced an edge is already visible on the
// barrier node it passes through, or implicit for a direct task-to-task
// edge. Nodes and edges are iterated in a fixed, numerically-sorted
// order so two renders of the same graph produce byte-identical text.
func Render(g *taskgraph.GPUTaskGraph) string {
	var b strings.Builder
	b.WriteString("digraph taskgraph {\n")

	ids := sortedNodeIDs(g.TaskGraph())
	for _, id := range ids {
		node, ok := g.TaskGraph().Node(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %q [label=%q, %s];\n", id, nodeLabel(node), nodeAttrs(node))
	}

	for _, from := range ids {
		targets := make([]graph.NodeID, 0, len(g.TaskGraph().EdgesFrom(from)))
		for to := range g.TaskGraph().EdgesFrom(from) {
			targets = append(targets, to)
		}
		sort.Slice(targets, func(i, j int) bool { return nodeNum(targets[i]) < nodeNum(targets[j]) })
		for _, to := range targets {
			fmt.Fprintf(&b, "  %q -> %q [label=\"\"];\n", from, to)
		}
	}

	b.WriteString("}\n")

	return b.String()
}

func nodeLabel(n graph.Node[taskgraph.GPUResource, taskgraph.GPUBarrier, taskgraph.GPUTask]) string {
	if n.Kind == graph.KindTask {
		return n.Task.Identifier
	}

	barrier := n.Barrier

	return fmt.Sprintf("%s(%s => %s)/(%s => %s)",
		barrier.Resource().UID(),
		barrier.SrcAccess, barrier.DstAccess,
		barrier.SrcStage, barrier.DstStage,
	)
}

func nodeAttrs(n graph.Node[taskgraph.GPUResource, taskgraph.GPUBarrier, taskgraph.GPUTask]) string {
	if n.Kind == graph.KindTask {
		return fmt.Sprintf("style=filled, fillcolor=%q", taskFillColor)
	}

	return fmt.Sprintf("style=filled, fillcolor=%q, shape=box", barrierFillColor)
}

func sortedNodeIDs(g *graph.Graph[taskgraph.GPUResource, taskgraph.GPUBarrier, taskgraph.GPUTask]) []graph.NodeID {
	ids := g.Nodes()
	sort.Slice(ids, func(i, j int) bool { return nodeNum(ids[i]) < nodeNum(ids[j]) })

	return ids
}

// nodeNum extracts the numeric suffix of a NodeID (format "n<N>") for
// ordering; malformed IDs sort last, which never occurs in practice
// since every ID is allocated by package graph itself.
func nodeNum(id graph.NodeID) int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(id), "n"))
	if err != nil {
		return 1 << 30
	}

	return n
}
