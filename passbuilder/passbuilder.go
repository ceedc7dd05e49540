package passbuilder

import (
	"github.com/katalvlaran/taskgraph/gapi"
	"github.com/katalvlaran/taskgraph/resource"
	"github.com/katalvlaran/taskgraph/taskgraph"
)

// PassBuilder accumulates a taskgraph.Pass's fields one Option at a time.
// Its zero value is not ready to use; construct one with New.
type PassBuilder struct {
	name    string
	inputs  []taskgraph.GPUResource
	outputs []taskgraph.GPUResource
	execute func(taskgraph.Recorder) error
}

// Option mutates a PassBuilder in place. Option constructors validate
// their arguments and panic on meaningless input (empty UID, nil
// function); Build itself never panics.
type Option func(*PassBuilder)

// New creates a PassBuilder named name and applies opts in order.
// Panics if name is empty.
func New(name string, opts ...Option) *PassBuilder {
	if name == "" {
		panic("passbuilder: New(\"\")")
	}

	b := &PassBuilder{name: name}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Reads declares a resource this pass consumes at stage via usage.
// Panics if uid is empty.
func Reads(uid string, usage gapi.Usage, stage gapi.PipelineStage) Option {
	if uid == "" {
		panic("passbuilder: Reads(\"\")")
	}

	return func(b *PassBuilder) {
		b.inputs = append(b.inputs, taskgraph.GPUResource{
			Virtual: resource.New(uid),
			Usage:   usage,
			Stage:   stage,
		})
	}
}

// Writes declares a resource this pass produces at stage via usage. The
// produced resource is always one version newer than uid so downstream
// readers are never mistaken for consumers of the frame's starting state;
// see resource.Resource.Upgrade.
// Panics if uid is empty.
func Writes(uid string, usage gapi.Usage, stage gapi.PipelineStage) Option {
	if uid == "" {
		panic("passbuilder: Writes(\"\")")
	}

	return func(b *PassBuilder) {
		b.outputs = append(b.outputs, taskgraph.GPUResource{
			Virtual: resource.New(uid).Upgrade(),
			Usage:   usage,
			Stage:   stage,
		})
	}
}

// WithExecute sets the callback invoked once this pass's surrounding
// barriers have been recorded. Panics if fn is nil.
func WithExecute(fn func(taskgraph.Recorder) error) Option {
	if fn == nil {
		panic("passbuilder: WithExecute(nil)")
	}

	return func(b *PassBuilder) {
		b.execute = fn
	}
}

// Build assembles the accumulated fields into a taskgraph.Pass.
// Returns ErrMissingExecute if WithExecute was never supplied; name is
// guaranteed non-empty because New panics on an empty name.
func (b *PassBuilder) Build() (taskgraph.Pass, error) {
	if b.execute == nil {
		return taskgraph.Pass{}, ErrMissingExecute
	}

	return taskgraph.Pass{
		Name:    b.name,
		Inputs:  b.inputs,
		Outputs: b.outputs,
		Execute: b.execute,
	}, nil
}
