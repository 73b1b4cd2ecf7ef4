package front

import "errors"

var (
	// ErrTooFewVertices indicates fewer than two vertices were given to
	// Build — not enough to even pick a seed edge.
	ErrTooFewVertices = errors.New("front: at least two vertices are required")
)
