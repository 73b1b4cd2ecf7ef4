// Package front builds a Delaunay triangulation of a set of vertices using
// the incremental advancing-front algorithm: starting from a single
// convex-hull edge, it repeatedly closes the least-recently-opened open
// edge by attaching the Delaunay-optimal apex on its unresolved side,
// until no open edges remain. A second pass, StitchSwings, then wires the
// corner-table's swing links across every triangle built by Build.
//
// Build does not know about the user-facing Mesh type in the root package;
// it works directly in terms of topo.Vertex/topo.Edge/topo.Triangle so
// that the advancing-front algorithm and the swing-link post-pass can each
// be tested, and reasoned about, independently of mesh construction and
// input validation.
package front
