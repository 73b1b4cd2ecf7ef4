package geom

import "errors"

// Sentinel errors returned by the geom package.
var (
	// ErrDegenerateLine indicates an attempt to build a Line from two
	// equal points, which leaves the line's direction undefined.
	ErrDegenerateLine = errors.New("geom: cannot construct a line from two equal points")

	// ErrCollinearPoints indicates a Triangle's three points are collinear,
	// so no circumcenter (and hence no circumcircle) exists.
	ErrCollinearPoints = errors.New("geom: points are collinear, circumcenter is undefined")
)
