package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// pi2 is 2*pi, the period of Vec.Angle.
const pi2 = 2 * math.Pi

// Vec is a point or vector in the Euclidean plane.
//
// Angle and Magnitude are computed once, at construction, rather than
// lazily on first access: the design notes for this kernel sanction
// either choice, and eager computation keeps Vec a plain comparable-by-
// components value with no pointer-identity surprises for callers that
// copy it around (every arithmetic method below returns a fresh Vec via
// NewVec, so the derived fields are always in sync with X/Y).
//
// For the zero vector, Angle is NaN: a direction from the origin to
// itself is undefined.
type Vec struct {
	raw r2.Vec // underlying (X, Y) pair, gonum-shaped

	angle float64 // direction from +x axis, in [0, 2*pi); NaN at the origin
	mag   float64 // L2 norm, >= 0
}

// NewVec builds a Vec from Cartesian coordinates.
func NewVec(x, y float64) Vec {
	v := Vec{raw: r2.Vec{X: x, Y: y}}
	v.mag = math.Sqrt(x*x + y*y)
	if x == 0 && y == 0 {
		v.angle = math.NaN()
	} else {
		v.angle = math.Mod(math.Atan2(y, x)+pi2, pi2)
	}
	return v
}

// NewVecPolar builds a Vec of the given magnitude at the given angle
// (radians, any range — Angle() normalizes it to [0, 2*pi)).
func NewVecPolar(angle, mag float64) Vec {
	return NewVec(mag*math.Cos(angle), mag*math.Sin(angle))
}

// X returns the vector's x component.
func (v Vec) X() float64 { return v.raw.X }

// Y returns the vector's y component.
func (v Vec) Y() float64 { return v.raw.Y }

// Angle returns the direction of v measured from the positive x axis, in
// [0, 2*pi). For the zero vector, Angle returns NaN.
func (v Vec) Angle() float64 { return v.angle }

// Magnitude returns the vector's L2 norm.
func (v Vec) Magnitude() float64 { return v.mag }

// Equal reports whether v and o have identical components.
func (v Vec) Equal(o Vec) bool {
	return v.X() == o.X() && v.Y() == o.Y()
}

// Add returns the componentwise sum v + o, via r2.Add.
func (v Vec) Add(o Vec) Vec {
	raw := r2.Add(v.raw, o.raw)
	return NewVec(raw.X, raw.Y)
}

// Sub returns the componentwise difference v - o, via r2.Sub.
func (v Vec) Sub(o Vec) Vec {
	raw := r2.Sub(v.raw, o.raw)
	return NewVec(raw.X, raw.Y)
}

// Scale returns v multiplied by the scalar k, via r2.Scale. Direction is
// reversed iff k is negative.
func (v Vec) Scale(k float64) Vec {
	raw := r2.Scale(k, v.raw)
	return NewVec(raw.X, raw.Y)
}

// Div returns v divided by the scalar k.
func (v Vec) Div(k float64) Vec {
	return v.Scale(1 / k)
}

// Dot returns the dot product of v and o, via r2.Dot.
func (v Vec) Dot(o Vec) float64 {
	return r2.Dot(v.raw, o.raw)
}

// Cross returns the z-component of the 3-D cross product of v and o,
// treating both as lying in the z=0 plane. Line.Side is built on this.
// r2 has no cross-product function of its own (a 2-D cross product is a
// scalar, not an r2.Vec, so there is nothing in the package's Vec-to-Vec
// API to delegate to), so this one is hand-rolled.
func (v Vec) Cross(o Vec) float64 {
	return v.X()*o.Y() - v.Y()*o.X()
}

// Rotate returns v rotated counter-clockwise by theta radians. r2 has no
// rotation function either, so this is hand-rolled like Cross.
func (v Vec) Rotate(theta float64) Vec {
	sin, cos := math.Sincos(theta)
	return NewVec(
		v.X()*cos-v.Y()*sin,
		v.X()*sin+v.Y()*cos,
	)
}

// Unit returns v normalized to magnitude 1. Dividing the zero vector by
// its own (zero) magnitude is undefined; callers that might pass the zero
// vector should check Magnitude() first.
func (v Vec) Unit() Vec {
	return v.Div(v.Magnitude())
}
