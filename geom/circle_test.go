package geom_test

import (
	"testing"

	"github.com/chris-martin/delaunay/geom"
	"github.com/stretchr/testify/assert"
)

func TestCircle_IntersectDelegates(t *testing.T) {
	l := mustLine(t, geom.NewVec(-2, 0), geom.NewVec(2, 0))
	c := geom.NewCircle(geom.NewVec(0, 0), 1)
	pts := c.Intersect(l)
	assert.Len(t, pts, 2)
}
