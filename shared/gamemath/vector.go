package gamemath

import "math"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// LengthSq is the squared length; compare it against squared ranges to
// avoid a square root per candidate.
func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length is the euclidean length.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// DistanceSq returns the squared planar distance between a and b.
func DistanceSq(a, b Vector) float64 {
	return a.Sub(b).LengthSq()
}

// MoveToward steps from toward to by at most maxStep and reports whether to
// was reached.
func MoveToward(from, to Vector, maxStep float64) (Vector, bool) {
	diff := to.Sub(from)
	dist := diff.Length()
	if dist <= maxStep || dist == 0 {
		return to, true
	}
	return from.Add(diff.Scale(maxStep / dist)), false
}

// Lerp interpolates between a and b.
func Lerp(a, b Vector, t float64) Vector {
	return Vector{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
