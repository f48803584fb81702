package vmath

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned box. X, Y is the top-left corner; Y grows downward as on screen.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect returns the box with top-left corner pos and the given extent.
func NewRect(pos mgl64.Vec2, w, h float64) Rect {
	return Rect{X: pos[0], Y: pos[1], W: w, H: h}
}

// Min returns the top-left corner.
func (r Rect) Min() mgl64.Vec2 { return mgl64.Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() mgl64.Vec2 { return mgl64.Vec2{r.X + r.W, r.Y + r.H} }

// Center returns the middle of the box.
func (r Rect) Center() mgl64.Vec2 { return mgl64.Vec2{r.X + r.W*0.5, r.Y + r.H*0.5} }

// Intersects reports a strictly positive overlap on both axes. Boxes that only share
// an edge do not intersect, and an empty box never intersects anything.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ContainsPoint reports whether p lies inside the box, edges included.
func (r Rect) ContainsPoint(p mgl64.Vec2) bool {
	return p[0] >= r.X && p[0] <= r.X+r.W &&
		p[1] >= r.Y && p[1] <= r.Y+r.H
}

// ContainsRect reports whether o lies entirely inside the box, edges included.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
