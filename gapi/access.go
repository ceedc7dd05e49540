package gapi

import "strings"

// AccessFlags is a bitmask of memory access types a pipeline barrier must
// synchronize, mirroring a Vulkan-family GAPI's VkAccessFlags2.
type AccessFlags uint64

// Access mask bits. Values are bit-disjoint so they can be freely OR'd
// together when merging barriers (spec section 4.3, "Access union
// correctness").
const (
	AccessNone AccessFlags = 0
	// AccessColorAttachmentWrite marks a color-attachment write, as
	// produced by ResourceUsage Attachment.
	AccessColorAttachmentWrite AccessFlags = 1 << 0
	// AccessShaderRead marks a shader read, as produced by ShaderRead.
	AccessShaderRead AccessFlags = 1 << 1
	// AccessShaderWrite marks a shader write (e.g. a storage image or
	// buffer write), as produced by ShaderWrite.
	AccessShaderWrite AccessFlags = 1 << 2
)

// Or returns the union of a and b.
func (a AccessFlags) Or(b AccessFlags) AccessFlags {
	return a | b
}

// Has reports whether a contains every bit set in b.
func (a AccessFlags) Has(b AccessFlags) bool {
	return a&b == b
}

// String renders a human-readable, deterministically-ordered list of the
// set bits, used by the GraphViz renderer and by test failure messages.
func (a AccessFlags) String() string {
	if a == AccessNone {
		return "NONE"
	}
	var parts []string
	for _, f := range []struct {
		bit  AccessFlags
		name string
	}{
		{AccessColorAttachmentWrite, "COLOR_ATTACHMENT_WRITE"},
		{AccessShaderRead, "SHADER_READ"},
		{AccessShaderWrite, "SHADER_WRITE"},
	} {
		if a.Has(f.bit) {
			parts = append(parts, f.name)
		}
	}

	return strings.Join(parts, "|")
}
