package topo

import "errors"

var (
	// ErrDegenerateEdge indicates an attempt to build an Edge from a vertex
	// paired with itself.
	ErrDegenerateEdge = errors.New("topo: cannot construct an edge from a vertex and itself")
)
