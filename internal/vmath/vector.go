package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec returns a 2D vector. Shorthand for mgl64.Vec2{x, y} at call sites that build many vectors.
func Vec(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

// ClampAxis snaps |v| < min to exactly 0, otherwise caps |v| at max keeping the sign.
// NaN collapses to 0 so a poisoned value cannot survive a step.
func ClampAxis(v, min, max float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	a := math.Abs(v)
	if a < min {
		return 0
	}
	if a > max {
		a = max
	}
	return math.Copysign(a, v)
}

// ClampComponents applies ClampAxis to each axis independently. The magnitude of the
// vector is never considered: a body can stop on one axis while still moving on the other.
func ClampComponents(v mgl64.Vec2, min, max float64) mgl64.Vec2 {
	return mgl64.Vec2{ClampAxis(v[0], min, max), ClampAxis(v[1], min, max)}
}

// IsZero reports whether both components are exactly zero.
func IsZero(v mgl64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// Sum adds every vector of vs to base and returns the total.
func Sum(base mgl64.Vec2, vs []mgl64.Vec2) mgl64.Vec2 {
	for _, v := range vs {
		base = base.Add(v)
	}
	return base
}

// MulComponents multiplies two vectors axis by axis.
func MulComponents(a, b mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{a[0] * b[0], a[1] * b[1]}
}
