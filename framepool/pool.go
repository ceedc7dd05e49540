package framepool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/taskgraph/config"
	"github.com/katalvlaran/taskgraph/taskgraph"
	"github.com/katalvlaran/taskgraph/telemetry"
)

// DefaultMaxConcurrency bounds BuildAll when Pool.MaxConcurrency is
// left at its zero value.
const DefaultMaxConcurrency = 4

// Pool builds multiple frames' task graphs concurrently, each on its
// own goroutine and its own GPUTaskGraph instance.
type Pool struct {
	// MaxConcurrency caps how many frames build at once. Zero or
	// negative uses DefaultMaxConcurrency.
	MaxConcurrency int
	Logger         func(name string) taskgraph.Option
	Metrics        *telemetry.Metrics
}

// BuildAll builds one GPUTaskGraph per already-loaded frame, running up
// to the concurrency limit at once, and returns the graphs in the same
// order frames were given. If any frame fails to convert or build,
// BuildAll returns the first error errgroup reports and a nil slice. The
// individual builds do not observe ctx, so cancelling it does not stop
// builds that have already started.
func (p *Pool) BuildAll(ctx context.Context, frames []*config.FrameConfig) ([]*taskgraph.GPUTaskGraph, error) {
	limit := p.MaxConcurrency
	if limit <= 0 {
		limit = DefaultMaxConcurrency
	}

	results := make([]*taskgraph.GPUTaskGraph, len(frames))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, frame := range frames {
		i, frame := i, frame
		g.Go(func() error {
			built, err := p.buildOne(frame)
			if err != nil {
				return fmt.Errorf("framepool: BuildAll: frame %d: %w", i, err)
			}
			results[i] = built

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Pool) buildOne(frame *config.FrameConfig) (*taskgraph.GPUTaskGraph, error) {
	passes, err := frame.ToPasses()
	if err != nil {
		return nil, err
	}

	var opts []taskgraph.Option
	if p.Logger != nil {
		opts = append(opts, p.Logger(frame.Domain))
	}
	if p.Metrics != nil {
		opts = append(opts, taskgraph.WithMetrics(p.Metrics))
	}

	g := taskgraph.New(frame.ExecutionDomain(), opts...)
	for _, pass := range passes {
		if _, err := g.AddPass(pass); err != nil {
			return nil, fmt.Errorf("pass %q: %w", pass.Name, err)
		}
	}

	if err := g.Build(); err != nil {
		return nil, err
	}

	return g, nil
}
