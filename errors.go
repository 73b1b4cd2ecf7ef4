package delaunay

import (
	"errors"

	"github.com/chris-martin/delaunay/geom"
	"github.com/chris-martin/delaunay/topo"
)

// ErrInvalidInput indicates New was given fewer than 3 points, two
// coincident points, or points that are all collinear.
var ErrInvalidInput = errors.New("delaunay: invalid input")

// Aliases for the lower-layer sentinel errors, so a caller inspecting an
// error from New with errors.Is need not import geom or topo
// directly.
var (
	ErrDegenerateLine  = geom.ErrDegenerateLine
	ErrCollinearPoints = geom.ErrCollinearPoints
	ErrDegenerateEdge  = topo.ErrDegenerateEdge
)
