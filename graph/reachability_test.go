package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taskgraph/graph"
)

func TestReachable_VisitsDownstreamNodesInBFSOrder(t *testing.T) {
	g := graph.New[testResource, testBarrier, testTask]()

	a, err := g.AddTask(testTask{name: "A", out: []testResource{{uid: "r1"}}})
	require.NoError(t, err)
	b, err := g.AddTask(testTask{name: "B", in: []testResource{{uid: "r1"}}, out: []testResource{{uid: "r2"}}})
	require.NoError(t, err)
	c, err := g.AddTask(testTask{name: "C", in: []testResource{{uid: "r2"}}})
	require.NoError(t, err)

	res, err := graph.Reachable[testResource, testBarrier, testTask](g, a)
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{a, b, c}, res.Order)
	assert.Equal(t, 0, res.Depth[a])
	assert.Equal(t, 1, res.Depth[b])
	assert.Equal(t, 2, res.Depth[c])
}

func TestReachable_MaxDepthStopsExploration(t *testing.T) {
	g := graph.New[testResource, testBarrier, testTask]()

	a, err := g.AddTask(testTask{name: "A", out: []testResource{{uid: "r1"}}})
	require.NoError(t, err)
	b, err := g.AddTask(testTask{name: "B", in: []testResource{{uid: "r1"}}, out: []testResource{{uid: "r2"}}})
	require.NoError(t, err)
	_, err = g.AddTask(testTask{name: "C", in: []testResource{{uid: "r2"}}})
	require.NoError(t, err)

	res, err := graph.Reachable[testResource, testBarrier, testTask](g, a, graph.WithReachabilityMaxDepth(1))
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{a, b}, res.Order)
}

func TestReachable_UnknownStartIsNotFound(t *testing.T) {
	g := graph.New[testResource, testBarrier, testTask]()

	_, err := graph.Reachable[testResource, testBarrier, testTask](g, "n99")
	assert.True(t, errors.Is(err, graph.ErrNodeNotFound))
}
