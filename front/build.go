package front

import (
	"math"

	"github.com/chris-martin/delaunay/geom"
	"github.com/chris-martin/delaunay/topo"
	"gonum.org/v1/gonum/floats"
)

// Build triangulates vertices with the advancing-front algorithm (spec
// §4.3) and returns the triangles it produced plus every edge it
// encountered, in the order each was first opened, undeduplicated (the
// seed edge is opened twice over the mesh's lifetime only in the sense
// that it both opens and later closes; it appears once in the returned
// slice). Callers that want a deduplicated edge set should rely on
// topo.Edge's order-independent equality (see the root Mesh type).
//
// Build does not run StitchSwings; call it separately once every Triangle
// from every Build call that will share the returned corners has been
// produced.
func Build(vertices []*topo.Vertex, opts ...Option) ([]*topo.Triangle, []topo.Edge, error) {
	if len(vertices) < 2 {
		return nil, nil, ErrTooFewVertices
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a, b := seedEdge(vertices)
	seed, err := topo.NewEdge(a, b)
	if err != nil {
		return nil, nil, err
	}

	q := newOpenQueue()
	q.push(seed, nil)

	var triangles []*topo.Triangle
	edges := []topo.Edge{seed}

	for {
		e, prev, ok := q.pop()
		if !ok {
			break
		}
		line := e.Line()

		var candidates []*topo.Vertex
		if prev == nil {
			candidates = excluding(vertices, e)
		} else {
			if isBoundaryEdge(e, vertices, line) {
				continue
			}
			oppositeSide := -line.Side(prev.Loc)
			for _, v := range vertices {
				if e.Has(v) {
					continue
				}
				if line.Side(v.Loc) == oppositeSide {
					candidates = append(candidates, v)
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}

		apex := pickApex(line, candidates, cfg.tieBreak)
		tri, err := topo.NewTriangle(e.A, e.B, apex)
		if err != nil {
			return nil, nil, err
		}
		triangles = append(triangles, tri)

		for _, endpoints := range [2][2]*topo.Vertex{{e.A, e.B}, {e.B, e.A}} {
			u, w := endpoints[0], endpoints[1]
			next, err := topo.NewEdge(u, apex)
			if err != nil {
				return nil, nil, err
			}
			if q.closeIfOpen(next) {
				continue
			}
			edges = append(edges, next)
			q.push(next, w)
		}
	}

	return triangles, edges, nil
}

// seedEdge picks a convex-hull edge to start from: a is the vertex with
// minimum y (ties broken by minimum x), and b is the vertex, other than
// a, minimizing the polar angle of (b - a) from the positive x axis.
// Because a is extreme in y, every other vertex lies in the upper
// half-plane relative to a, which guarantees (a, b) lies on the hull.
func seedEdge(vertices []*topo.Vertex) (a, b *topo.Vertex) {
	a = vertices[0]
	for _, v := range vertices[1:] {
		if v.Loc.Y() < a.Loc.Y() || (v.Loc.Y() == a.Loc.Y() && v.Loc.X() < a.Loc.X()) {
			a = v
		}
	}

	bestAngle := math.Inf(1)
	for _, v := range vertices {
		if v == a {
			continue
		}
		angle := v.Loc.Sub(a.Loc).Angle()
		if angle < bestAngle {
			bestAngle = angle
			b = v
		}
	}
	return a, b
}

// isBoundaryEdge reports whether e is a convex-hull edge: true iff every
// vertex not on e maps to the same Line.Side of e.Line(). A vertex exactly
// on the line counts as side +1, like any point Side is given.
func isBoundaryEdge(e topo.Edge, all []*topo.Vertex, line geom.Line) bool {
	others := make([]geom.Vec, 0, len(all))
	for _, v := range all {
		if e.Has(v) {
			continue
		}
		others = append(others, v.Loc)
	}
	return line.SameSide(others...)
}

// excluding returns every vertex of all that is not an endpoint of e.
func excluding(all []*topo.Vertex, e topo.Edge) []*topo.Vertex {
	out := make([]*topo.Vertex, 0, len(all))
	for _, v := range all {
		if !e.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// pickApex returns the candidate minimizing line.Bulge, resolving exact
// ties per tb.
func pickApex(line geom.Line, candidates []*topo.Vertex, tb TieBreak) *topo.Vertex {
	bulges := make([]float64, len(candidates))
	for i, v := range candidates {
		bulges[i] = line.Bulge(v.Loc)
	}

	if tb == TieBreakLast {
		best := 0
		for i := 1; i < len(bulges); i++ {
			if bulges[i] <= bulges[best] {
				best = i
			}
		}
		return candidates[best]
	}

	return candidates[floats.MinIdx(bulges)]
}
