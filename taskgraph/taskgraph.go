package taskgraph

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/taskgraph/gapi"
	"github.com/katalvlaran/taskgraph/graph"
	"github.com/katalvlaran/taskgraph/telemetry"
)

// sourceIdentifier names the synthetic task every GPUTaskGraph is
// seeded with. It produces every pass's initial (v0) inputs as its own
// outputs, giving start-of-frame synchronization a real producer node
// to hang a barrier off of instead of a special case in Build.
const sourceIdentifier = "_source"

// GPUTaskGraph is a single frame's worth of GPU work: a graph of tasks
// and barriers over GPUResource, scoped to one ExecutionDomain.
type GPUTaskGraph struct {
	domain  gapi.ExecutionDomain
	frameID string
	inner   *graph.Graph[GPUResource, GPUBarrier, GPUTask]
	source  graph.NodeID
	log     hclog.Logger
	metrics *telemetry.Metrics
}

// Option configures a GPUTaskGraph at construction time.
type Option func(*GPUTaskGraph)

// WithLogger attaches a logger used to trace pass/barrier counts and
// merge decisions at Trace/Debug level. The zero value logs nothing.
func WithLogger(l hclog.Logger) Option {
	return func(g *GPUTaskGraph) { g.log = l }
}

// WithMetrics attaches a Metrics sink observed during AddPass and Build.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *GPUTaskGraph) { g.metrics = m }
}

// WithFrameID sets the correlation ID threaded through this graph's log
// lines and metric labels. Callers building several frames (see package
// framepool) should supply a distinct ID per frame; New generates one
// via telemetry.NewFrameID when this option is omitted.
func WithFrameID(id string) Option {
	return func(g *GPUTaskGraph) { g.frameID = id }
}

// New returns a GPUTaskGraph targeting domain, seeded with its
// synthetic source node.
func New(domain gapi.ExecutionDomain, opts ...Option) *GPUTaskGraph {
	g := &GPUTaskGraph{
		domain: domain,
		inner:  graph.New[GPUResource, GPUBarrier, GPUTask](),
		log:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.frameID == "" {
		g.frameID = telemetry.NewFrameID()
	}
	g.log = g.log.With("frame_id", g.frameID)

	id, err := g.inner.AddTask(GPUTask{Identifier: sourceIdentifier})
	if err != nil {
		// A single-node graph can never contain a cycle.
		panic(fmt.Sprintf("taskgraph: unreachable: %v", err))
	}
	g.source = id

	return g
}

// Domain returns the execution domain this graph was created for.
func (g *GPUTaskGraph) Domain() gapi.ExecutionDomain {
	return g.domain
}

// FrameID returns this graph's correlation ID, threaded through every
// log line and metric observation it produces.
func (g *GPUTaskGraph) FrameID() string {
	return g.frameID
}

// Source returns the NodeID of the synthetic source task. It is stable
// for the lifetime of the graph: node identity in package graph is
// never invalidated by later insertions or deletions.
func (g *GPUTaskGraph) Source() graph.NodeID {
	return g.source
}

// NumNodes reports the current node count, including the source and
// any barrier nodes synthesized by Build.
func (g *GPUTaskGraph) NumNodes() int {
	return g.inner.NumNodes()
}

// TaskGraph exposes the underlying generic graph, for consumers such as
// package dot that only need to walk nodes and edges.
func (g *GPUTaskGraph) TaskGraph() *graph.Graph[GPUResource, GPUBarrier, GPUTask] {
	return g.inner
}

// AddPass adds pass as a task node, first registering every v0
// ("source") input it declares as an output of the synthetic source
// node, deduplicated by UID so two passes sharing the same initial
// input do not register it twice (which would otherwise make the
// source node a second, redundant producer competing with the first).
func (g *GPUTaskGraph) AddPass(pass Pass) (graph.NodeID, error) {
	sourceNode, ok := g.inner.Node(g.source)
	if !ok {
		return "", ErrNoSourceNode
	}

	known := make(map[string]bool, len(sourceNode.Task.out))
	for _, out := range sourceNode.Task.out {
		known[out.UID()] = true
	}

	for _, in := range pass.Inputs {
		if !in.Virtual.IsSource() || known[in.UID()] {
			continue
		}
		sourceNode.Task.out = append(sourceNode.Task.out, GPUResource{
			Virtual: in.Virtual,
			Usage:   gapi.UsageNothing,
			Stage:   gapi.StageTopOfPipe,
		})
		known[in.UID()] = true
	}
	g.inner.SetNode(g.source, sourceNode)

	id, err := g.inner.AddTask(GPUTask{
		Identifier: pass.Name,
		in:         pass.Inputs,
		out:        pass.Outputs,
		Execute:    pass.Execute,
	})
	if err != nil {
		g.log.Debug("add pass rejected", "pass", pass.Name, "error", err)

		return id, err
	}

	g.log.Trace("pass added", "pass", pass.Name, "inputs", len(pass.Inputs), "outputs", len(pass.Outputs))
	g.metrics.ObservePassAdded(g.domain.String(), g.frameID)

	return id, nil
}

// Build synthesizes the maximal barrier set and folds it down to one
// barrier per resource UID. After Build succeeds, the
// graph is ready to be walked by Record.
func (g *GPUTaskGraph) Build() error {
	started := time.Now()
	before := g.inner.NumNodes()

	graph.CreateBarrierNodes[GPUResource, GPUBarrier, GPUTask](g.inner, NewGPUBarrier)
	created := g.inner.NumNodes() - before
	g.metrics.ObserveBarriersCreated(g.domain.String(), g.frameID, created)

	if err := mergeIdenticalBarriers(g.inner); err != nil {
		g.log.Debug("build failed during barrier merge", "error", err)

		return err
	}

	merged := created - barrierCount(g.inner)
	g.metrics.ObserveBarriersMerged(g.domain.String(), g.frameID, merged)
	g.metrics.ObserveBuildDuration(g.domain.String(), g.frameID, time.Since(started))
	g.log.Debug("build complete", "barriers_created", created, "barriers_merged", merged, "nodes", g.inner.NumNodes())

	return nil
}

func barrierCount(g *nodeGraph) int {
	return len(barrierNodes(g))
}
