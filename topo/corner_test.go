package topo_test

import (
	"testing"

	"github.com/chris-martin/delaunay/geom"
	"github.com/chris-martin/delaunay/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorner_SwingBeforeStitchingReturnsSelf(t *testing.T) {
	vs := vertices(geom.NewVec(0, 0), geom.NewVec(2, 0), geom.NewVec(0, 2))
	tri, err := topo.NewTriangle(vs[0], vs[1], vs[2])
	require.NoError(t, err)

	c := tri.Corners()[0]
	assert.Same(t, c, c.Swing(false))
	assert.Same(t, c, c.Swing(true))
	assert.Same(t, c, c.Unswing(false))
}

func TestCorner_SwingHonorsSuperFlag(t *testing.T) {
	vs := vertices(geom.NewVec(0, 0), geom.NewVec(2, 0), geom.NewVec(0, 2))
	tri, err := topo.NewTriangle(vs[0], vs[1], vs[2])
	require.NoError(t, err)

	c, other := tri.Corners()[0], tri.Corners()[1]
	c.SwingNext = other
	c.SwingNextSuper = true

	assert.Same(t, c, c.Swing(false), "super link must not be followed when sup=false")
	assert.Same(t, other, c.Swing(true), "super link must be followed when sup=true")
}
