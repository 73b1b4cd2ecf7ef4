// Package geom is a numerically careful planar-geometry kernel: vectors,
// lines (doubling as segments), circles, and triangles, plus the line/line
// and line/circle intersection routines the Delaunay builder in package
// front is built on.
//
// Every type here is a plain value: no pointers are required to use Vec,
// Line, Circle, or Triangle, and none of the arithmetic mutates its
// receiver. Vec precomputes its angle and magnitude once, at
// construction (see Vec.Angle, Vec.Magnitude); a Line built from a point
// and an angle (see NewLineFromAngle) likewise synthesizes its second
// point eagerly rather than on first access. A value's observable fields
// never change after construction.
//
// Two numerical policies are deliberate, not oversights:
//
//   - Line.Side never returns zero. A point exactly on the line maps to
//     +1, so collinear points are treated as belonging to one fixed side
//     rather than as a third state.
//   - Parallel-line detection in IntersectLines compares Line.Ang() with
//     plain float64 equality, not a tolerance band.
//
// Both are preserved from the reference implementation and documented at
// the call sites below; an embedder that needs robustness against
// adversarial near-parallel input should pre-condition its data before
// calling into this package.
package geom
