package geom

import "math"

// Line is two distinct points in the plane, a and b. Depending on the
// caller's intent it stands for either the infinite line through both
// points or the segment between them — Line itself does not distinguish
// the two uses; Ang, Side, Perp, and the intersection routines all treat
// it as infinite, while topo.Edge treats the same value as a segment.
//
// Both NewLine and NewLineFromAngle compute B and Ang eagerly at
// construction (the design notes for this kernel sanction eager
// computation as an alternative to lazy memoization), which keeps Line a
// plain value usable from any receiver context.
type Line struct {
	a, b  Vec
	angle float64 // direction mod pi
}

// NewLine builds the line through a and b. It returns ErrDegenerateLine
// if a and b are equal, since the direction would be undefined.
func NewLine(a, b Vec) (Line, error) {
	if a.Equal(b) {
		return Line{}, ErrDegenerateLine
	}
	return Line{a: a, b: b, angle: math.Mod(a.Sub(b).Angle(), math.Pi)}, nil
}

// NewLineFromAngle builds the line through a with the given direction
// (radians, any range — the stored Ang() is normalized to [0, pi)). Its
// second point is synthesized one unit from a along that direction,
// mirroring the reference implementation's lazy synthesis of an
// arbitrary second point, computed here eagerly instead.
func NewLineFromAngle(a Vec, angle float64) Line {
	angle = math.Mod(math.Mod(angle, math.Pi)+math.Pi, math.Pi)
	return Line{a: a, b: a.Add(NewVecPolar(angle, 1)), angle: angle}
}

// A returns the line's first point.
func (l Line) A() Vec { return l.a }

// B returns the line's second point.
func (l Line) B() Vec { return l.b }

// Ang returns the line's direction modulo pi (an undirected angle): two
// lines with the same Ang are parallel.
func (l Line) Ang() float64 { return l.angle }

// Translate returns l shifted by v.
func (l Line) Translate(v Vec) Line {
	return Line{a: l.a.Add(v), b: l.b.Add(v), angle: l.angle}
}

// Mid returns the midpoint of A and B.
func (l Line) Mid() Vec {
	return l.a.Add(l.b).Div(2)
}

// Perp returns the line through Mid() perpendicular to l.
func (l Line) Perp() Line {
	return NewLineFromAngle(l.Mid(), l.angle+math.Pi/2)
}

// Side returns -1 or +1 according to which halfplane p lies in. It never
// returns 0: a point exactly on the line deterministically maps to +1,
// because the underlying test is `cross(...) < 0`, and that comparison is
// false (hence side = +1) when the cross product is exactly zero.
//
// This is internally consistent — the same point always yields the same
// side, and two points yield the same side iff they lie in the same open
// halfplane, with on-line points folded into the "+1" side.
func (l Line) Side(p Vec) int {
	cross := p.Sub(l.a).Cross(l.b.Sub(l.a))
	if cross < 0 {
		return -1
	}
	return 1
}

// SameSide reports whether all of ps map to the same Side of l.
func (l Line) SameSide(ps ...Vec) bool {
	if len(ps) == 0 {
		return true
	}
	first := l.Side(ps[0])
	for _, p := range ps[1:] {
		if l.Side(p) != first {
			return false
		}
	}
	return true
}

// Bulge is the Delaunay advancing-front comparator: the signed
// circumradius of the triangle (A, B, p), oriented so that smaller values
// indicate a more Delaunay-preferred candidate apex p on a given side of
// l.
//
// Bulge computes the circumcircle C of (A, B, p) and returns
// C.Radius * l.Side(p) * l.Side(C.Center). Collinear (A, B, p) makes the
// circumcenter undefined; Bulge returns +Inf in that case so such a
// candidate is never selected by an argmin over Bulge.
func (l Line) Bulge(p Vec) float64 {
	tri := NewTriangle(l.a, l.b, p)
	c, ok := tri.Circumcircle()
	if !ok {
		return math.Inf(1)
	}
	return c.Radius * float64(l.Side(p)*l.Side(c.Center))
}

// IntersectLines returns the unique intersection of a and b, or false if
// they are parallel (same Ang(), compared with ordinary float64
// equality — see the package doc for why no tolerance band is used).
func IntersectLines(a, b Line) (Vec, bool) {
	if a.Ang() == b.Ang() {
		return Vec{}, false
	}
	x1, y1 := a.a.X(), a.a.Y()
	x2, y2 := a.b.X(), a.b.Y()
	x3, y3 := b.a.X(), b.a.Y()
	x4, y4 := b.b.X(), b.b.Y()

	d := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	x := ((x1*y2-y1*x2)*(x3-x4) - (x1-x2)*(x3*y4-y3*x4)) / d
	y := ((x1*y2-y1*x2)*(y3-y4) - (y1-y2)*(x3*y4-y3*x4)) / d
	return NewVec(x, y), true
}

// IntersectLineCircle returns the 0, 1, or 2 points where l crosses c.
func IntersectLineCircle(l Line, c Circle) []Vec {
	translated := l.Translate(c.Center.Scale(-1))
	p1, p2 := translated.A(), translated.B()
	dx := p2.X() - p1.X()
	dy := p2.Y() - p1.Y()
	dr := math.Sqrt(dx*dx + dy*dy)
	D := p1.X()*p2.Y() - p2.X()*p1.Y()

	delta := c.Radius*c.Radius*dr*dr - D*D
	if delta < 0 {
		return nil
	}
	sqrtDelta := math.Sqrt(delta)
	signDy := math.Copysign(1, dy)

	i1 := NewVec(
		(D*dy+signDy*dx*sqrtDelta)/(dr*dr),
		(-D*dx+math.Abs(dy)*sqrtDelta)/(dr*dr),
	).Add(c.Center)
	i2 := NewVec(
		(D*dy-signDy*dx*sqrtDelta)/(dr*dr),
		(-D*dx-math.Abs(dy)*sqrtDelta)/(dr*dr),
	).Add(c.Center)

	if i1.Equal(i2) {
		return []Vec{i1}
	}
	return []Vec{i1, i2}
}
