package resource

import "strings"

// versionSentinel is appended to a resource UID once per "upgrade". It
// never appears anywhere but as a contiguous trailing suffix.
const versionSentinel = "+"

// Resource is a named, version-tagged handle for a GPU resource that
// exists only inside the task graph; it carries no allocation.
//
// Resource is a plain value type: copying it copies the UID string, which
// is cheap and avoids any aliasing between graph nodes that happen to
// reference "the same" logical resource at different versions.
type Resource struct {
	// UID uniquely identifies this resource version. The v0 form carries
	// no trailing sentinel; each Upgrade appends exactly one more.
	UID string
}

// New returns the resource whose UID is exactly uid. For a uid without
// trailing '+' characters that is the v0 (unversioned) form; a uid that
// already ends in sentinels is kept as given.
//
// uid should not itself contain trailing '+' characters; callers that
// need a specific version should use Upgrade instead of hand-constructing
// UIDs, to keep the "sentinels are a contiguous trailing suffix" invariant
// obviously true by construction.
func New(uid string) Resource {
	return Resource{UID: uid}
}

// Upgrade returns a new resource one version newer than r: its UID is r's
// UID with one more trailing sentinel appended. r is not modified.
func (r Resource) Upgrade() Resource {
	return Resource{UID: r.UID + versionSentinel}
}

// Name returns the stable identity of r across all its versions: the UID
// with every sentinel stripped.
func (r Resource) Name() string {
	return strings.ReplaceAll(r.UID, versionSentinel, "")
}

// IsSource reports whether r is the original (v0) form of its resource,
// i.e. carries no version sentinel.
func (r Resource) IsSource() bool {
	return !strings.HasSuffix(r.UID, versionSentinel)
}

// AreAssociated reports whether a and b are versions of the same logical
// resource: true iff the longer UID begins with the shorter one. A
// resource is always associated with itself.
func AreAssociated(a, b Resource) bool {
	longer, shorter := a.UID, b.UID
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}

	return strings.HasPrefix(longer, shorter)
}

// IsOlder reports whether a is a strictly earlier version of the same
// resource as b (fewer sentinels). Resources that are not associated, or
// that are the same version, compare as false.
func IsOlder(a, b Resource) bool {
	if !AreAssociated(a, b) {
		return false
	}

	return len(a.UID) < len(b.UID)
}

// IsYounger reports whether a is a strictly later version of the same
// resource as b (more sentinels). Resources that are not associated, or
// that are the same version, compare as false.
//
// IsYounger(a, b) is not simply !IsOlder(a, b): for the same exact
// version, and for unassociated resources, both IsOlder and IsYounger
// must report false.
func IsYounger(a, b Resource) bool {
	if !AreAssociated(a, b) {
		return false
	}

	return len(b.UID) < len(a.UID)
}

// String implements fmt.Stringer for debug output (dot rendering, logs).
func (r Resource) String() string {
	return r.UID
}
