package geom_test

import (
	"math"
	"testing"

	"github.com/chris-martin/delaunay/geom"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

func TestVec_Add(t *testing.T) {
	// S1: vec(1,2) + vec(5,11) == vec(6,13)
	got := geom.NewVec(1, 2).Add(geom.NewVec(5, 11))
	assert.InDelta(t, 6, got.X(), tol)
	assert.InDelta(t, 13, got.Y(), tol)
}

func TestVec_AddSubRoundTrip(t *testing.T) {
	u := geom.NewVec(3.5, -2.25)
	v := geom.NewVec(-1.1, 9.9)
	got := u.Add(v).Sub(v)
	assert.InDelta(t, u.X(), got.X(), tol)
	assert.InDelta(t, u.Y(), got.Y(), tol)
}

func TestVec_ScaleMagnitude(t *testing.T) {
	v := geom.NewVec(3, 4)
	for _, lambda := range []float64{2, -2, 0.5, -0.5} {
		got := v.Scale(lambda).Magnitude()
		want := math.Abs(lambda) * v.Magnitude()
		assert.InDelta(t, want, got, tol)
	}
}

func TestVec_RotateFullCircleIsIdentity(t *testing.T) {
	v := geom.NewVec(1, 0)
	got := v.Rotate(2 * math.Pi)
	assert.InDelta(t, v.X(), got.X(), tol)
	assert.InDelta(t, v.Y(), got.Y(), tol)
}

func TestVec_AngleZeroVectorIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(geom.NewVec(0, 0).Angle()))
}

func TestVec_AngleRange(t *testing.T) {
	for _, v := range []geom.Vec{
		geom.NewVec(1, 0),
		geom.NewVec(0, 1),
		geom.NewVec(-1, 0),
		geom.NewVec(0, -1),
		geom.NewVec(-1, -1),
	} {
		a := v.Angle()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2*math.Pi)
	}
}

func TestVec_Dot(t *testing.T) {
	assert.InDelta(t, 0, geom.NewVec(1, 0).Dot(geom.NewVec(0, 1)), tol)
	assert.InDelta(t, 11, geom.NewVec(2, 3).Dot(geom.NewVec(1, 3)), tol)
}

func TestVec_Unit(t *testing.T) {
	v := geom.NewVec(3, 4).Unit()
	assert.InDelta(t, 1, v.Magnitude(), tol)
}
