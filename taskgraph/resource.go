package taskgraph

import (
	"github.com/katalvlaran/taskgraph/gapi"
	"github.com/katalvlaran/taskgraph/resource"
)

// GPUResource names a virtual resource together with how a single task
// uses it: a resource handle alone says nothing about synchronization,
// but paired with a Usage and the pipeline stage that usage occurs at,
// it carries everything a barrier needs to be derived from it.
type GPUResource struct {
	Virtual resource.Resource
	Usage   gapi.Usage
	Stage   gapi.PipelineStage
}

// UID satisfies graph.Resource. Two GPUResource values are considered
// the same dependency iff their underlying virtual resource UIDs match
// exactly — a consumer of resource.Resource's v1 is not automatically a
// consumer of its v0, by design (see resource.Resource.Upgrade).
func (r GPUResource) UID() string {
	return r.Virtual.UID
}
