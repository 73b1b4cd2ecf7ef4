package front

import "github.com/chris-martin/delaunay/topo"

// StitchSwings runs the swing-link post-pass (spec §4.5) over every
// corner of every given triangle: it groups corners by vertex, links each
// corner to its neighbor across the shared edge inside an adjacent
// triangle, and closes each vertex's fan with a "super" link where the
// fan does not close on itself — i.e. at every convex-hull vertex.
//
// StitchSwings must run once, after every Triangle that will participate
// in the mesh has been built; it is not safe to call incrementally as
// triangles are produced, since it needs the complete corner list per
// vertex to find the one unfilled super link.
func StitchSwings(triangles []*topo.Triangle) {
	v2c := make(map[*topo.Vertex][]*topo.Corner)
	for _, t := range triangles {
		for _, c := range t.Corners() {
			v2c[c.Vertex()] = append(v2c[c.Vertex()], c)
		}
	}

	for _, cs := range v2c {
		for _, ci := range cs {
			for _, cj := range cs {
				if ci == cj {
					continue
				}
				if ci.Next().Vertex() == cj.Prev().Vertex() {
					cj.SwingNext, cj.SwingNextSuper = ci, false
					ci.SwingPrev, ci.SwingPrevSuper = cj, false
				}
			}
		}

		var supNext, supPrev *topo.Corner
		for _, c := range cs {
			if c.SwingNext == nil {
				supNext = c
			}
			if c.SwingPrev == nil {
				supPrev = c
			}
		}
		if supNext != nil && supPrev != nil {
			supNext.SwingNext, supNext.SwingNextSuper = supPrev, true
			supPrev.SwingPrev, supPrev.SwingPrevSuper = supNext, true
		}
	}
}
