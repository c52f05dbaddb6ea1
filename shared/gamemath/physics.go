// Package gamemath holds the plane-vector helpers shared by the behavior
// systems. The ground plane is X/Z, stored in math.Vec2 as X/Y.
package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Sub returns a - b.
func Sub(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Add returns a + b.
func Add(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Scale returns v * s.
func Scale(v math.Vec2, s float64) math.Vec2 {
	return math.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func Length(v math.Vec2) float64 {
	return stdmath.Hypot(v.X, v.Y)
}

// Distance returns the plane distance between a and b.
func Distance(a, b math.Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v math.Vec2) math.Vec2 {
	l := Length(v)
	if l == 0 {
		return math.Vec2{}
	}
	return math.Vec2{X: v.X / l, Y: v.Y / l}
}

// MoveTowards steps from toward target by at most maxStep.
// The second return is true once target is reached.
func MoveTowards(from, target math.Vec2, maxStep float64) (math.Vec2, bool) {
	delta := Sub(target, from)
	dist := Length(delta)
	if dist <= maxStep || dist == 0 {
		return target, true
	}
	return Add(from, Scale(delta, maxStep/dist)), false
}

// Approach moves value toward target by at most step.
func Approach(value, target, step float64) float64 {
	if value < target {
		return stdmath.Min(value+step, target)
	}
	return stdmath.Max(value-step, target)
}

// OrbitOffset returns the point on a circle of radius around center at angle.
func OrbitOffset(center math.Vec2, angle, radius float64) math.Vec2 {
	return math.Vec2{
		X: center.X + stdmath.Cos(angle)*radius,
		Y: center.Y + stdmath.Sin(angle)*radius,
	}
}

// RotateTowards turns the unit vector from toward to by at most maxAngle
// radians. A zero to leaves from unchanged.
func RotateTowards(from, to math.Vec2, maxAngle float64) math.Vec2 {
	if to.X == 0 && to.Y == 0 {
		return from
	}
	current := stdmath.Atan2(from.Y, from.X)
	desired := stdmath.Atan2(to.Y, to.X)

	diff := stdmath.Remainder(desired-current, 2*stdmath.Pi)
	if stdmath.Abs(diff) <= maxAngle {
		return Normalize(to)
	}
	if diff < 0 {
		maxAngle = -maxAngle
	}
	angle := current + maxAngle
	return math.Vec2{X: stdmath.Cos(angle), Y: stdmath.Sin(angle)}
}
