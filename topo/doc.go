// Package topo is the mesh data model: Vertex, Edge, Triangle (mesh), and
// Corner, plus the swing-link navigation that lets a caller walk from any
// corner to its neighbors within a triangle (Next/Prev) or around a shared
// vertex across adjacent triangles (Swing/Unswing).
//
// Unlike package geom, these types are not plain values: a Triangle's
// Corners back-point to the Triangle and to each other, and a Vertex's
// representative Corner is filled in as triangles are built. Each Vertex,
// Triangle, and Corner is a separately allocated node linked by plain
// pointers; every one produced for a Mesh is built in the single pass of
// front.Build and reachable from the slices that Mesh holds.
//
// Corner.Swing and Corner.Unswing take an explicit sup bool rather than
// silently always following "super" (boundary-wraparound) links: sup=false
// is the conservative default that reports "hit the boundary" by returning
// the corner itself, and sup=true is an explicit opt-in to crossing the
// exterior of the mesh.
package topo
