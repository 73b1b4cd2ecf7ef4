package delaunay

import (
	"errors"
	"fmt"

	"github.com/chris-martin/delaunay/front"
	"github.com/chris-martin/delaunay/geom"
	"github.com/chris-martin/delaunay/topo"
)

// Mesh is a Delaunay triangulation of a fixed set of points. It owns every
// Vertex, Triangle, and Corner the builder produced; none of them are
// mutated after New returns.
type Mesh struct {
	vertices  []*topo.Vertex
	triangles []*topo.Triangle
}

// New triangulates points and returns the resulting Mesh. It returns
// ErrInvalidInput if points has fewer than 3 elements, contains two
// coincident points, or is entirely collinear (so no triangle, let alone a
// triangulation, can be built from it).
func New(points []geom.Vec, opts ...Option) (*Mesh, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidInput, len(points))
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Equal(points[j]) {
				return nil, fmt.Errorf("%w: duplicate point %v", ErrInvalidInput, points[i])
			}
		}
	}

	vertices := make([]*topo.Vertex, len(points))
	for i, p := range points {
		vertices[i] = topo.NewVertex(i, p)
	}

	triangles, _, err := front.Build(vertices, opts...)
	if err != nil {
		if errors.Is(err, geom.ErrCollinearPoints) {
			return nil, fmt.Errorf("%w: all input points are collinear", ErrInvalidInput)
		}
		return nil, err
	}
	front.StitchSwings(triangles)

	return &Mesh{vertices: vertices, triangles: triangles}, nil
}

// Triangles returns every triangle in the mesh, in build order.
func (m *Mesh) Triangles() []*topo.Triangle {
	return m.triangles
}

// Vertices returns every vertex in the mesh, in input order.
func (m *Mesh) Vertices() []*topo.Vertex {
	return m.vertices
}

// Edges returns the deduplicated set of edges appearing in at least one
// triangle, relying on topo.Edge's order-independent equality.
func (m *Mesh) Edges() []topo.Edge {
	seen := make(map[topo.Edge]struct{})
	var out []topo.Edge
	for _, t := range m.triangles {
		for _, e := range t.Edges() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}
