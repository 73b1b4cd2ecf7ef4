package geom

// Triangle is three points in the plane, plus their circumcenter and
// circumscribed Circle, computed eagerly at construction time by
// intersecting the perpendicular bisectors of edges (p0,p1) and (p1,p2).
// Both are undefined (ok == false from Circumcenter/Circumcircle) when
// the three points are collinear, since parallel bisectors have no
// intersection.
type Triangle struct {
	p0, p1, p2 Vec

	circumcenter   Vec
	circumcircleOK bool
}

// NewTriangle builds a Triangle from three points, in the order given.
// Construction never fails — collinearity only affects whether
// Circumcenter/Circumcircle report ok == true.
func NewTriangle(p0, p1, p2 Vec) Triangle {
	t := Triangle{p0: p0, p1: p1, p2: p2}

	l1, err1 := NewLine(p0, p1)
	l2, err2 := NewLine(p1, p2)
	if err1 != nil || err2 != nil {
		return t
	}
	center, ok := IntersectLines(l1.Perp(), l2.Perp())
	t.circumcenter = center
	t.circumcircleOK = ok
	return t
}

// Points returns the triangle's three points in construction order.
func (t Triangle) Points() [3]Vec { return [3]Vec{t.p0, t.p1, t.p2} }

// Circumcenter returns the center of the circle through all three
// points, and false if the points are collinear.
func (t Triangle) Circumcenter() (Vec, bool) {
	return t.circumcenter, t.circumcircleOK
}

// Circumcircle returns the circle through all three points, and false if
// the points are collinear.
func (t Triangle) Circumcircle() (Circle, bool) {
	if !t.circumcircleOK {
		return Circle{}, false
	}
	r := t.circumcenter.Sub(t.p0).Magnitude()
	return NewCircle(t.circumcenter, r), true
}
