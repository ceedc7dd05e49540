package taskgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taskgraph/gapi"
	"github.com/katalvlaran/taskgraph/graph"
	"github.com/katalvlaran/taskgraph/resource"
	"github.com/katalvlaran/taskgraph/taskgraph"
)

func res(uid string) resource.Resource { return resource.New(uid) }

func noop(taskgraph.Recorder) error { return nil }

func TestNew_SeedsSourceNode(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)
	assert.Equal(t, 1, g.NumNodes())

	n, ok := g.TaskGraph().Node(g.Source())
	require.True(t, ok)
	assert.Equal(t, graph.KindTask, n.Kind)
	assert.Equal(t, "_source", n.Task.Identifier)
}

func TestAddPass_RegistersSourceInputsOnceEachDeduplicated(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	color := resource.New("color")

	_, err := g.AddPass(taskgraph.Pass{
		Name:    "geometry",
		Inputs:  []taskgraph.GPUResource{{Virtual: color, Usage: gapi.UsageShaderRead}},
		Outputs: []taskgraph.GPUResource{{Virtual: color.Upgrade(), Usage: gapi.UsageAttachment}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "shadow",
		Inputs:  []taskgraph.GPUResource{{Virtual: color, Usage: gapi.UsageShaderRead}},
		Outputs: []taskgraph.GPUResource{{Virtual: resource.New("shadowmap"), Usage: gapi.UsageAttachment}},
		Execute: noop,
	})
	require.NoError(t, err)

	sourceNode, ok := g.TaskGraph().Node(g.Source())
	require.True(t, ok)
	assert.Len(t, sourceNode.Task.Outputs(), 1, "color registered once despite two passes depending on it")
}

// TestBuild_SingleSourceConsumingPassGetsOneBarrier covers scenario S1
// (a single pass consuming one frame-start resource produces exactly one
// source->task barrier) and scenario S6 (the source node's synthesized
// output for that resource carries Usage=Nothing and Stage=TopOfPipe,
// never the consuming pass's own usage/stage).
func TestBuild_SingleSourceConsumingPassGetsOneBarrier(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	_, err := g.AddPass(taskgraph.Pass{
		Name:    "geometry",
		Inputs:  []taskgraph.GPUResource{{Virtual: res("color"), Usage: gapi.UsageShaderRead, Stage: gapi.StageFragmentShader}},
		Outputs: []taskgraph.GPUResource{{Virtual: res("color").Upgrade(), Usage: gapi.UsageAttachment, Stage: gapi.StageColorAttachmentOutput}},
		Execute: noop,
	})
	require.NoError(t, err)

	sourceNode, ok := g.TaskGraph().Node(g.Source())
	require.True(t, ok)
	require.Len(t, sourceNode.Task.Outputs(), 1)
	pushed := sourceNode.Task.Outputs()[0]
	assert.Equal(t, "color", pushed.UID())
	assert.Equal(t, gapi.UsageNothing, pushed.Usage)
	assert.Equal(t, gapi.StageTopOfPipe, pushed.Stage)

	require.NoError(t, g.Build())

	barriers := 0
	for _, id := range g.TaskGraph().Nodes() {
		n, _ := g.TaskGraph().Node(id)
		if n.Kind != graph.KindBarrier {
			continue
		}
		barriers++
		assert.Equal(t, "color", n.Barrier.Resource().UID())
		assert.True(t, g.TaskGraph().HasEdge(g.Source(), id), "barrier must be fed by the source node")
	}
	assert.Equal(t, 1, barriers, "exactly one barrier between the source node and the single consuming pass")
}

func TestBuild_LinearPassGetsOneBarrier(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	a := res("a")
	b := a.Upgrade()

	_, err := g.AddPass(taskgraph.Pass{
		Name:    "producer",
		Inputs:  []taskgraph.GPUResource{{Virtual: a, Usage: gapi.UsageShaderRead}},
		Outputs: []taskgraph.GPUResource{{Virtual: b, Usage: gapi.UsageAttachment}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "consumer",
		Inputs:  []taskgraph.GPUResource{{Virtual: b, Usage: gapi.UsageShaderRead}},
		Execute: noop,
	})
	require.NoError(t, err)

	require.NoError(t, g.Build())

	// The producer's v0 input "a" also gets a source->producer barrier;
	// only the barrier on b sits between producer and consumer.
	barriers := 0
	for _, id := range g.TaskGraph().Nodes() {
		n, _ := g.TaskGraph().Node(id)
		if n.Kind == graph.KindBarrier && n.Barrier.Resource().UID() == b.UID {
			barriers++
			assert.Equal(t, gapi.AccessColorAttachmentWrite, n.Barrier.SrcAccess)
			assert.Equal(t, gapi.AccessShaderRead, n.Barrier.DstAccess)
		}
	}
	assert.Equal(t, 1, barriers)
}

func TestBuild_FanOutMergesIntoOneBarrierWithTwoConsumers(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	// Outputs are declared as an upgraded version so the two readers'
	// inputs carry a sentinel and are not mistaken for frame-start
	// ("source") inputs — see the source-injection test above, which
	// covers the genuinely unversioned case.
	shared := res("shared").Upgrade()

	_, err := g.AddPass(taskgraph.Pass{
		Name:    "producer",
		Outputs: []taskgraph.GPUResource{{Virtual: shared, Usage: gapi.UsageAttachment}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "readerA",
		Inputs:  []taskgraph.GPUResource{{Virtual: shared, Usage: gapi.UsageShaderRead}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "readerB",
		Inputs:  []taskgraph.GPUResource{{Virtual: shared, Usage: gapi.UsageShaderRead}},
		Execute: noop,
	})
	require.NoError(t, err)

	require.NoError(t, g.Build())

	var barrierID graph.NodeID
	barrierCount := 0
	for _, id := range g.TaskGraph().Nodes() {
		n, _ := g.TaskGraph().Node(id)
		if n.Kind == graph.KindBarrier {
			barrierCount++
			barrierID = id
		}
	}
	require.Equal(t, 1, barrierCount, "the two barriers protecting the same resource must merge into one")
	assert.Len(t, g.TaskGraph().EdgesFrom(barrierID), 2, "the merged barrier keeps an edge to each consumer")
}

func TestBuild_ConflictingWritesOnSameResourceIsIllegal(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	shared := res("shared").Upgrade()

	_, err := g.AddPass(taskgraph.Pass{
		Name:    "producer",
		Outputs: []taskgraph.GPUResource{{Virtual: shared, Usage: gapi.UsageAttachment}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "writerA",
		Inputs:  []taskgraph.GPUResource{{Virtual: shared, Usage: gapi.UsageAttachment}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "writerB",
		Inputs:  []taskgraph.GPUResource{{Virtual: shared, Usage: gapi.UsageShaderWrite}},
		Execute: noop,
	})
	require.NoError(t, err)

	err = g.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrIllegalTaskGraph))
}

func TestAddPass_CyclicDependencyIsRejected(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	r1 := res("r1")
	r2 := res("r2")

	_, err := g.AddPass(taskgraph.Pass{
		Name:    "a",
		Inputs:  []taskgraph.GPUResource{{Virtual: r2}},
		Outputs: []taskgraph.GPUResource{{Virtual: r1}},
		Execute: noop,
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "b",
		Inputs:  []taskgraph.GPUResource{{Virtual: r1}},
		Outputs: []taskgraph.GPUResource{{Virtual: r2}},
		Execute: noop,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrGraphHasCycle))
}

func TestRecord_VisitsBarriersBeforeTheirConsumers(t *testing.T) {
	g := taskgraph.New(gapi.DomainGraphics)

	a := res("a")
	b := a.Upgrade()

	var order []string
	_, err := g.AddPass(taskgraph.Pass{
		Name:    "producer",
		Inputs:  []taskgraph.GPUResource{{Virtual: a, Usage: gapi.UsageShaderRead}},
		Outputs: []taskgraph.GPUResource{{Virtual: b, Usage: gapi.UsageAttachment}},
		Execute: func(taskgraph.Recorder) error { order = append(order, "producer"); return nil },
	})
	require.NoError(t, err)

	_, err = g.AddPass(taskgraph.Pass{
		Name:    "consumer",
		Inputs:  []taskgraph.GPUResource{{Virtual: b, Usage: gapi.UsageShaderRead}},
		Execute: func(taskgraph.Recorder) error { order = append(order, "consumer"); return nil },
	})
	require.NoError(t, err)

	require.NoError(t, g.Build())

	rec := &recordingRecorder{order: &order}
	require.NoError(t, taskgraph.Record(g, rec))

	// The source node has no Execute callback. The barrier on "a"
	// (source -> producer) and the one on "a+" (producer -> consumer)
	// are each recorded just before the task they feed.
	assert.Equal(t, []string{"barrier:a", "producer", "barrier:a+", "consumer"}, order)
	assert.Equal(t, 2, rec.barriers)
}

type recordingRecorder struct {
	barriers int
	order    *[]string
}

func (r *recordingRecorder) RecordBarrier(b taskgraph.GPUBarrier) error {
	r.barriers++
	*r.order = append(*r.order, "barrier:"+b.Resource().UID())
	return nil
}
