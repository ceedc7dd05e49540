package gapi

import "strings"

// PipelineStage is a bitmask of pipeline stages a barrier's access occurs
// at, mirroring a Vulkan-family GAPI's VkPipelineStageFlags2.
type PipelineStage uint64

// Pipeline stage bits, ordered roughly as they occur in a graphics
// pipeline. TopOfPipe and BottomOfPipe are the degenerate stages used by
// the synthetic source node and Present respectively.
const (
	StageNone                  PipelineStage = 0
	StageTopOfPipe             PipelineStage = 1 << 0
	StageColorAttachmentOutput PipelineStage = 1 << 1
	StageFragmentShader        PipelineStage = 1 << 2
	StageComputeShader         PipelineStage = 1 << 3
	StageBottomOfPipe          PipelineStage = 1 << 4
)

// Or returns the union of s and other.
func (s PipelineStage) Or(other PipelineStage) PipelineStage {
	return s | other
}

// Has reports whether s contains every bit set in other.
func (s PipelineStage) Has(other PipelineStage) bool {
	return s&other == other
}

// String renders a human-readable, deterministically-ordered list of the
// set bits.
func (s PipelineStage) String() string {
	if s == StageNone {
		return "NONE"
	}
	var parts []string
	for _, f := range []struct {
		bit  PipelineStage
		name string
	}{
		{StageTopOfPipe, "TOP_OF_PIPE"},
		{StageColorAttachmentOutput, "COLOR_ATTACHMENT_OUTPUT"},
		{StageFragmentShader, "FRAGMENT_SHADER"},
		{StageComputeShader, "COMPUTE_SHADER"},
		{StageBottomOfPipe, "BOTTOM_OF_PIPE"},
	} {
		if s.Has(f.bit) {
			parts = append(parts, f.name)
		}
	}

	return strings.Join(parts, "|")
}
