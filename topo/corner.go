package topo

import "github.com/chris-martin/delaunay/geom"

// Corner is the (triangle, vertex) incidence: the fundamental navigation
// unit of the mesh.
//
// SwingNext/SwingPrev and their *Super flags are filled in by the
// swing-link post-pass (see package front) after every Triangle has been
// built; they are exported plain fields, in keeping with this package's
// role as a data model rather than an algorithm, and should be treated as
// read-only once the post-pass has run.
type Corner struct {
	triangle *Triangle
	vertex   *Vertex
	idx      int // position within triangle.corners, 0..2

	// SwingNext is the adjacent corner around Vertex, in the "next" swing
	// direction; SwingNextSuper is true iff reaching it crosses the
	// exterior of the mesh (a convex-hull wraparound link).
	SwingNext      *Corner
	SwingNextSuper bool

	// SwingPrev and SwingPrevSuper are the same, in the "prev" direction.
	SwingPrev      *Corner
	SwingPrevSuper bool
}

// Triangle returns the triangle this corner belongs to.
func (c *Corner) Triangle() *Triangle {
	return c.triangle
}

// Vertex returns the vertex this corner is incident to.
func (c *Corner) Vertex() *Vertex {
	return c.vertex
}

// Loc is shorthand for c.Vertex().Loc.
func (c *Corner) Loc() geom.Vec {
	return c.vertex.Loc
}

// Next returns the next corner within c's triangle, in the triangle's
// stored order (counter-clockwise with the y axis pointing up).
func (c *Corner) Next() *Corner {
	return c.triangle.corners[(c.idx+1)%3]
}

// Prev returns the previous corner within c's triangle (clockwise with the
// y axis pointing up).
func (c *Corner) Prev() *Corner {
	return c.triangle.corners[(c.idx+2)%3]
}

// Swing returns the next corner around c's vertex, across the edge shared
// with the adjacent triangle. If that hop is a super (boundary-wraparound)
// link and sup is false, Swing returns c itself, signalling "hit the
// boundary"; if sup is true, the super link is followed like any other.
//
// Before the swing-link post-pass has run, SwingNext is nil and Swing
// returns c regardless of sup.
func (c *Corner) Swing(sup bool) *Corner {
	if c.SwingNext == nil {
		return c
	}
	if c.SwingNextSuper && !sup {
		return c
	}
	return c.SwingNext
}

// Unswing is Swing in the reverse direction, with the same sup semantics.
func (c *Corner) Unswing(sup bool) *Corner {
	if c.SwingPrev == nil {
		return c
	}
	if c.SwingPrevSuper && !sup {
		return c
	}
	return c.SwingPrev
}
