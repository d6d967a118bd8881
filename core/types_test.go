package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spantree/core"
)

// TestEdge_Accessors checks that NewEdge stores fields with their orientation intact.
func TestEdge_Accessors(t *testing.T) {
	e := core.NewEdge(3, 1, 7)
	assert.Equal(t, core.NodeID(3), e.Source())
	assert.Equal(t, core.NodeID(1), e.Destination())
	assert.Equal(t, int64(7), e.Weight())
	assert.Equal(t, "3-1(7)", e.String())
}

// TestEdge_Equal compares all three fields, orientation included.
func TestEdge_Equal(t *testing.T) {
	a := core.NewEdge(0, 1, 5)

	assert.True(t, a.Equal(core.NewEdge(0, 1, 5)))
	assert.False(t, a.Equal(core.NewEdge(1, 0, 5)), "orientation matters")
	assert.False(t, a.Equal(core.NewEdge(0, 1, 6)), "weight matters")
	assert.True(t, a.Reverse().Equal(core.NewEdge(1, 0, 5)))
	assert.True(t, a == core.NewEdge(0, 1, 5), "Edge must be comparable")
}

// TestEdge_Sentinel verifies the unspecified-edge marker.
func TestEdge_Sentinel(t *testing.T) {
	s := core.SentinelEdge()
	assert.True(t, s.IsSentinel())
	assert.Equal(t, core.NodeID(core.Unset), s.Source())
	assert.Equal(t, core.NodeID(core.Unset), s.Destination())
	assert.Equal(t, int64(core.Unset), s.Weight())

	assert.False(t, core.NewEdge(0, 0, 0).IsSentinel())
	assert.False(t, core.NewEdge(-1, -1, 0).IsSentinel())
}

// TestEdge_PairAndLoop covers the directed pair view and loop detection.
func TestEdge_PairAndLoop(t *testing.T) {
	e := core.NewEdge(2, 4, 1)
	assert.Equal(t, core.Pair{From: 2, To: 4}, e.Pair())
	assert.NotEqual(t, e.Pair(), e.Reverse().Pair())
	assert.Equal(t, "(2,4)", e.Pair().String())

	assert.False(t, e.IsLoop())
	assert.True(t, core.NewEdge(3, 3, 1).IsLoop())
}
