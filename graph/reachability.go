package graph

import (
	"context"
	"fmt"
)

// ReachabilityOptions configures Reachable. The zero value runs an
// unbounded, uncancellable, unfiltered traversal.
type ReachabilityOptions struct {
	// Ctx allows cancellation; nil is treated as context.Background().
	Ctx context.Context

	// OnVisit is called once per visited node, in visit order. A
	// non-nil return aborts the traversal and is propagated by
	// Reachable.
	OnVisit func(id NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int
}

// ReachabilityOption mutates a ReachabilityOptions in place.
type ReachabilityOption func(*ReachabilityOptions)

// WithReachabilityContext sets the cancellation context for Reachable.
func WithReachabilityContext(ctx context.Context) ReachabilityOption {
	return func(o *ReachabilityOptions) { o.Ctx = ctx }
}

// WithReachabilityMaxDepth stops Reachable from exploring past depth d
// edges from the start node. d <= 0 means unbounded.
func WithReachabilityMaxDepth(d int) ReachabilityOption {
	return func(o *ReachabilityOptions) { o.MaxDepth = d }
}

// WithOnVisit registers a callback invoked once per visited node.
func WithOnVisit(fn func(id NodeID, depth int) error) ReachabilityOption {
	return func(o *ReachabilityOptions) { o.OnVisit = fn }
}

// ReachabilityResult is the outcome of a Reachable traversal: every node
// reached from the start, in visit order, alongside its distance in
// edges and the node it was first reached from.
type ReachabilityResult struct {
	Order  []NodeID
	Depth  map[NodeID]int
	Parent map[NodeID]NodeID
}

// Reachable performs a breadth-first traversal of g's out-edges starting
// at start, following SetEdge's producer-to-consumer direction. It
// reports every node downstream of start — the set of tasks and barriers
// that a change to start would affect.
//
// Returns ErrNodeNotFound if start does not exist in g.
func Reachable[R Resource, B Barrier[R], T Task[R]](g *Graph[R, B, T], start NodeID, opts ...ReachabilityOption) (*ReachabilityResult, error) {
	if _, ok := g.Node(start); !ok {
		return nil, ErrNodeNotFound
	}

	o := ReachabilityOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	res := &ReachabilityResult{
		Depth:  map[NodeID]int{start: 0},
		Parent: map[NodeID]NodeID{},
	}

	type item struct {
		id    NodeID
		depth int
	}
	queue := []item{{id: start, depth: 0}}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, cur.id)
		if o.OnVisit != nil {
			if err := o.OnVisit(cur.id, cur.depth); err != nil {
				return res, fmt.Errorf("graph: Reachable: OnVisit(%s): %w", cur.id, err)
			}
		}

		nextDepth := cur.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}

		for to := range g.EdgesFrom(cur.id) {
			if _, seen := res.Depth[to]; seen {
				continue
			}
			res.Depth[to] = nextDepth
			res.Parent[to] = cur.id
			queue = append(queue, item{id: to, depth: nextDepth})
		}
	}

	return res, nil
}
