package topo

import "github.com/chris-martin/delaunay/geom"

// Edge is an unordered pair of distinct vertices. A and B are stored in a
// canonical order (lower Index first) so that two Edges built from the
// same two vertices in either order compare equal with plain Go struct
// equality, and Edge can be used directly as a map key.
type Edge struct {
	A, B *Vertex
}

// NewEdge builds the Edge between a and b, canonicalizing their order. It
// returns ErrDegenerateEdge if a and b are the same vertex.
func NewEdge(a, b *Vertex) (Edge, error) {
	if a == b {
		return Edge{}, ErrDegenerateEdge
	}
	if a.Index <= b.Index {
		return Edge{A: a, B: b}, nil
	}
	return Edge{A: b, B: a}, nil
}

// Line returns the geometric line through the edge's two vertex locations.
// Mesh construction rejects duplicate input points, so the two locations
// are guaranteed distinct and the underlying geom.NewLine cannot fail.
func (e Edge) Line() geom.Line {
	l, _ := geom.NewLine(e.A.Loc, e.B.Loc)
	return l
}

// Has reports whether v is one of the edge's two endpoints.
func (e Edge) Has(v *Vertex) bool {
	return e.A == v || e.B == v
}

// Other returns the endpoint of e that is not v. Behavior is undefined if
// v is not an endpoint of e.
func (e Edge) Other(v *Vertex) *Vertex {
	if e.A == v {
		return e.B
	}
	return e.A
}
