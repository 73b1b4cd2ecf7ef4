// Package delaunay builds a 2-D Delaunay triangulation of a finite set of
// planar points using an incremental advancing-front algorithm, and
// exposes the result as a corner-table mesh with O(1) navigation between
// adjacent corners of adjacent triangles.
//
// What
//
//   - New triangulates a slice of points (at least 3, no two
//     coincident, not all collinear) and returns a Mesh owning every
//     Vertex, Triangle, and Corner it produced.
//   - Mesh.Triangles, Mesh.Vertices, and Mesh.Edges expose the result:
//     vertices in input order, edges deduplicated via topo.Edge's
//     order-independent equality.
//   - Every Triangle's circumscribed circle contains no other input point
//     in its interior (the defining Delaunay property), and every Corner
//     supports Next/Prev (within its triangle) and Swing/Unswing (around
//     its vertex, across adjacent triangles).
//
// Why
//
//   - The advancing-front construction and the swing-link post-pass live
//     in package front, over the plain mesh data model in package topo,
//     over the geometry kernel in package geom — each layer testable, and
//     reasoned about, independently of the others.
//   - A corner-table topology makes "triangles around this vertex" and
//     "the triangle across this edge" both O(1) queries, which an
//     interactive viewer or any other embedder needs for cursor navigation
//     without re-deriving adjacency from scratch.
//
// Determinism
//
//	Because the advancing-front loop pops the open-edge queue in strict
//	insertion order (see front.Build) and breaks bulge-comparator ties by
//	lowest input index by default (see front.WithTieBreak), the same input
//	slice always produces the same triangulation.
//
// Non-goals
//
//	Dynamic insertion or deletion of points after construction, constrained
//	Delaunay (forced edges), 3-D, exact/rational arithmetic, and
//	multi-threaded construction are all out of scope. The interactive
//	graphical viewer (point generation, rendering, keyboard navigation,
//	edge-flash animation) is a separate presentation layer, external to
//	this module, built against the read-only surface above.
package delaunay
