package gapi

// Usage is a closed enumeration of the ways a task can use a GPU
// resource. It determines both the access mask a barrier must carry and
// whether the usage counts as a read for write-write conflict detection.
type Usage int

const (
	// UsageNothing is the usage of the synthetic source node's outputs:
	// no real access occurs, and it is treated as a read so it never
	// conflicts with a genuine writer of the same resource.
	UsageNothing Usage = iota
	// UsagePresent marks a resource handed off to the presentation
	// engine; it has no access bits of its own and is not a read.
	UsagePresent
	// UsageAttachment marks a color-attachment write target.
	UsageAttachment
	// UsageShaderRead marks a resource sampled or loaded by a shader.
	UsageShaderRead
	// UsageShaderWrite marks a resource written by a shader (storage
	// image or buffer).
	UsageShaderWrite
)

// Access returns the access mask produced by this usage, per spec
// section 3's Resource Usage table.
func (u Usage) Access() AccessFlags {
	switch u {
	case UsageNothing:
		return AccessNone
	case UsagePresent:
		return AccessNone
	case UsageAttachment:
		return AccessColorAttachmentWrite
	case UsageShaderRead:
		return AccessShaderRead
	case UsageShaderWrite:
		return AccessShaderWrite
	default:
		return AccessNone
	}
}

// IsRead reports whether this usage only reads the resource. Two
// concurrent non-read usages of the same resource with differing access
// are an illegal task graph (spec section 4.3).
func (u Usage) IsRead() bool {
	switch u {
	case UsageNothing, UsageShaderRead:
		return true
	default:
		return false
	}
}

// String renders the usage's canonical name, used by the dot renderer.
func (u Usage) String() string {
	switch u {
	case UsageNothing:
		return "Nothing"
	case UsagePresent:
		return "Present"
	case UsageAttachment:
		return "Attachment"
	case UsageShaderRead:
		return "ShaderRead"
	case UsageShaderWrite:
		return "ShaderWrite"
	default:
		return "Unknown"
	}
}
