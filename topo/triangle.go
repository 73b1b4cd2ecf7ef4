package topo

import (
	"sort"

	"github.com/chris-martin/delaunay/geom"
)

// Triangle is three Corners, stored in ascending order of their angle
// around the triangle's circumcenter: counter-clockwise with the y axis
// pointing up (the convention of geom.Vec.Rotate), clockwise on a y-down
// screen.
type Triangle struct {
	corners [3]*Corner
}

// NewTriangle builds a Triangle from three vertices. It computes the
// geometric circumcenter of (v0, v1, v2) and sorts the three vertices by
// ascending angle of (vertex.Loc - circumcenter); this yields a rotation
// direction that is consistent across every triangle in a mesh, which is
// what lets Corner.Next/Corner.Prev compose correctly with Corner.Swing
// (see the package doc). It returns geom.ErrCollinearPoints if the three
// points are collinear, since the circumcenter — and so the sort key — is
// then undefined.
//
// The first Corner built for any given Vertex becomes that Vertex's
// representative corner (Vertex.Corner).
func NewTriangle(v0, v1, v2 *Vertex) (*Triangle, error) {
	geomTri := geom.NewTriangle(v0.Loc, v1.Loc, v2.Loc)
	center, ok := geomTri.Circumcenter()
	if !ok {
		return nil, geom.ErrCollinearPoints
	}

	verts := [3]*Vertex{v0, v1, v2}
	sort.SliceStable(verts[:], func(i, j int) bool {
		return verts[i].Loc.Sub(center).Angle() < verts[j].Loc.Sub(center).Angle()
	})

	t := &Triangle{}
	for i, v := range verts {
		c := &Corner{triangle: t, vertex: v, idx: i}
		t.corners[i] = c
		v.setCorner(c)
	}
	return t, nil
}

// Corners returns the triangle's three corners in their stored
// (ascending-angle) order.
func (t *Triangle) Corners() [3]*Corner {
	return t.corners
}

// Vertices returns the triangle's three vertices in their corners' stored
// (ascending-angle) order.
func (t *Triangle) Vertices() [3]*Vertex {
	return [3]*Vertex{t.corners[0].vertex, t.corners[1].vertex, t.corners[2].vertex}
}

// Edges returns the triangle's three edges, edge i joining corner i and
// corner i+1 mod 3. Each is an unordered Edge, its endpoints in Edge's
// canonical (lower Index first) order.
func (t *Triangle) Edges() [3]Edge {
	var es [3]Edge
	for i := 0; i < 3; i++ {
		e, _ := NewEdge(t.corners[i].vertex, t.corners[(i+1)%3].vertex)
		es[i] = e
	}
	return es
}

// Equal reports whether t and o share the same set of three vertices,
// regardless of rotation.
func (t *Triangle) Equal(o *Triangle) bool {
	if o == nil {
		return false
	}
	ov := o.Vertices()
	for _, v := range t.Vertices() {
		found := false
		for _, w := range ov {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
