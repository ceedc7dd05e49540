package taskgraph

// GPUTask is a single unit of recorded work: an identifier for
// debugging and dot output, the resources it reads and writes, and the
// callback that records its actual GAPI commands once the surrounding
// barriers have been synthesized.
type GPUTask struct {
	Identifier string
	in         []GPUResource
	out        []GPUResource
	Execute    func(Recorder) error
}

// Inputs satisfies graph.Task[GPUResource].
func (t GPUTask) Inputs() []GPUResource { return t.in }

// Outputs satisfies graph.Task[GPUResource].
func (t GPUTask) Outputs() []GPUResource { return t.out }

// Pass is the caller-facing description of one unit of work to add to a
// GPUTaskGraph. It is a plain value, not yet wired into the graph — see
// GPUTaskGraph.AddPass.
type Pass struct {
	Name    string
	Inputs  []GPUResource
	Outputs []GPUResource
	Execute func(Recorder) error
}
