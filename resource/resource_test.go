package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/taskgraph/resource"
)

func TestNew_IsSourceAndName(t *testing.T) {
	r := resource.New("color")
	assert.True(t, r.IsSource())
	assert.Equal(t, "color", r.Name())
	assert.Equal(t, "color", r.UID)
}

func TestUpgrade_AppendsSingleSentinel(t *testing.T) {
	r := resource.New("color")
	v1 := r.Upgrade()
	assert.Equal(t, "color+", v1.UID)
	assert.False(t, v1.IsSource())
	v2 := v1.Upgrade()
	assert.Equal(t, "color++", v2.UID)
}

// TestNameStability locks in property 2 from the task-graph spec: name is
// invariant across any number of upgrades.
func TestNameStability(t *testing.T) {
	r := resource.New("depth")
	cur := r
	for i := 0; i < 5; i++ {
		cur = cur.Upgrade()
		assert.Equal(t, "depth", cur.Name())
	}
}

func TestAreAssociated(t *testing.T) {
	a := resource.New("x")
	b := a.Upgrade()
	c := resource.New("y")

	assert.True(t, resource.AreAssociated(a, a)) // self-association
	assert.True(t, resource.AreAssociated(a, b))
	assert.True(t, resource.AreAssociated(b, a)) // symmetric
	assert.False(t, resource.AreAssociated(a, c))
}

func TestIsOlderIsYounger(t *testing.T) {
	v0 := resource.New("x")
	v1 := v0.Upgrade()
	v2 := v1.Upgrade()
	other := resource.New("y")

	assert.True(t, resource.IsOlder(v0, v1))
	assert.True(t, resource.IsOlder(v0, v2))
	assert.False(t, resource.IsOlder(v1, v0))
	assert.True(t, resource.IsYounger(v2, v1))
	assert.False(t, resource.IsYounger(v1, v2))

	// Same version: neither older nor younger.
	assert.False(t, resource.IsOlder(v1, v1))
	assert.False(t, resource.IsYounger(v1, v1))

	// Unassociated: neither older nor younger.
	assert.False(t, resource.IsOlder(v0, other))
	assert.False(t, resource.IsYounger(v0, other))
}

// TestAssociationClosure locks in property 1: upgrade^k(u) is associated
// with u for all k >= 0, and strictly younger iff k > 0.
func TestAssociationClosure(t *testing.T) {
	base := resource.New("img")
	cur := base
	for k := 0; k <= 6; k++ {
		assert.True(t, resource.AreAssociated(base, cur))
		if k > 0 {
			assert.True(t, resource.IsYounger(cur, base))
		} else {
			assert.False(t, resource.IsYounger(cur, base))
		}
		cur = cur.Upgrade()
	}
}

func TestEmptyUID(t *testing.T) {
	r := resource.New("")
	// Lexically permitted, even though callers should not produce it.
	assert.True(t, r.IsSource())
	assert.Equal(t, "", r.Name())
}
