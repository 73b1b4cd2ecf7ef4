package delaunay_test

import (
	"testing"

	"github.com/chris-martin/delaunay"
	"github.com/chris-martin/delaunay/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TooFewPoints(t *testing.T) {
	_, err := delaunay.New([]geom.Vec{geom.NewVec(0, 0), geom.NewVec(1, 0)})
	assert.ErrorIs(t, err, delaunay.ErrInvalidInput)
}

func TestNew_DuplicatePoints(t *testing.T) {
	_, err := delaunay.New([]geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(0, 0),
	})
	assert.ErrorIs(t, err, delaunay.ErrInvalidInput)
}

func TestNew_AllCollinear(t *testing.T) {
	_, err := delaunay.New([]geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(2, 0),
	})
	assert.ErrorIs(t, err, delaunay.ErrInvalidInput)
}

func TestNew_VerticesPreserveInputOrder(t *testing.T) {
	pts := []geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(0, 1),
		geom.NewVec(0.25, 0.25),
	}
	mesh, err := delaunay.New(pts)
	require.NoError(t, err)

	vs := mesh.Vertices()
	require.Len(t, vs, len(pts))
	for i, v := range vs {
		assert.Equal(t, i, v.Index)
		assert.True(t, v.Loc.Equal(pts[i]))
	}
}

func TestNew_EdgesAreDeduplicated(t *testing.T) {
	pts := []geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(0, 1),
		geom.NewVec(1, 1),
		geom.NewVec(0.5, 0.5),
	}
	mesh, err := delaunay.New(pts)
	require.NoError(t, err)

	edges := mesh.Edges()
	assert.Len(t, edges, 8)

	seen := map[[2]int]bool{}
	for _, e := range edges {
		key := [2]int{e.A.Index, e.B.Index}
		assert.False(t, seen[key], "duplicate edge %v", key)
		seen[key] = true
	}
}

func TestNew_WithTieBreakOption(t *testing.T) {
	pts := []geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(0, 1),
		geom.NewVec(1, 1),
	}
	mesh, err := delaunay.New(pts, delaunay.WithTieBreak(delaunay.TieBreakLast))
	require.NoError(t, err)
	assert.Len(t, mesh.Triangles(), 2)
}

func TestNew_TieBreakSelectsDifferentApexOnExactTie(t *testing.T) {
	// Same exact-tie configuration as front.TestBuild_TieBreakSelectsDifferentApexOnExactTie:
	// (0.5,1) at index 2 and (1.5,1) at index 3 are mirror images across
	// the perpendicular bisector of seed edge (0,0)-(2,0), so they tie on
	// Bulge.
	pts := []geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(2, 0),
		geom.NewVec(0.5, 1),
		geom.NewVec(1.5, 1),
	}

	apexIndex := func(tb delaunay.TieBreak) int {
		mesh, err := delaunay.New(pts, delaunay.WithTieBreak(tb))
		require.NoError(t, err)
		require.NotEmpty(t, mesh.Triangles())
		for _, v := range mesh.Triangles()[0].Vertices() {
			if v.Index != 0 && v.Index != 1 {
				return v.Index
			}
		}
		t.Fatal("seed triangle has no apex distinct from the seed edge")
		return -1
	}

	assert.Equal(t, 2, apexIndex(delaunay.TieBreakFirst), "TieBreakFirst must pick the lower-index candidate on an exact bulge tie")
	assert.Equal(t, 3, apexIndex(delaunay.TieBreakLast), "TieBreakLast must pick the higher-index candidate on an exact bulge tie")
}

func TestNew_CornerNavigation(t *testing.T) {
	pts := []geom.Vec{
		geom.NewVec(0, 0),
		geom.NewVec(1, 0),
		geom.NewVec(0, 1),
		geom.NewVec(1, 1),
		geom.NewVec(0.5, 0.5),
	}
	mesh, err := delaunay.New(pts)
	require.NoError(t, err)

	for _, tri := range mesh.Triangles() {
		for _, c := range tri.Corners() {
			assert.Same(t, c, c.Next().Next().Next())
			require.NotNil(t, c.Swing(true))
			require.NotNil(t, c.Unswing(true))
		}
	}
}
