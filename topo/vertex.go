package topo

import "github.com/chris-martin/delaunay/geom"

// Vertex is one input point, plus a back-pointer to one of its incident
// Corners (the "representative" corner). Index preserves the input order
// so Mesh.Vertices can hand it back unchanged.
type Vertex struct {
	Index int
	Loc   geom.Vec

	corner *Corner
}

// NewVertex builds a Vertex at the given input index and location. It has
// no representative Corner until one is attached by setCorner during
// Triangle construction.
func NewVertex(index int, loc geom.Vec) *Vertex {
	return &Vertex{Index: index, Loc: loc}
}

// Corner returns the vertex's representative corner: an arbitrary one of
// its incident corners, or nil if the vertex belongs to no triangle (which
// cannot happen for a vertex that survived a successful Mesh construction).
func (v *Vertex) Corner() *Corner {
	return v.corner
}

// setCorner attaches c as v's representative corner if v does not already
// have one. Called for every Corner built on v; only the first call, made
// when the first Triangle incident to v is built, has an effect.
func (v *Vertex) setCorner(c *Corner) {
	if v.corner == nil {
		v.corner = c
	}
}
