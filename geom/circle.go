package geom

// Circle is a circle in the plane: a center and a nonnegative radius.
type Circle struct {
	Center Vec
	Radius float64
}

// NewCircle builds a Circle. Radius is not validated here. A negative
// radius is stored as given; IntersectLineCircle uses only its square, so
// such a circle intersects lines exactly like a circle of radius |radius|.
func NewCircle(center Vec, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Intersect returns the 0, 1, or 2 points where l crosses c, delegating
// to IntersectLineCircle.
func (c Circle) Intersect(l Line) []Vec {
	return IntersectLineCircle(l, c)
}
