package mathutil

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the vector type shared with the ECS components.
type Vec2 = dmath.Vec2

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(a Vec2, s float64) Vec2 {
	return Vec2{X: a.X * s, Y: a.Y * s}
}

func Neg(a Vec2) Vec2 {
	return Vec2{X: -a.X, Y: -a.Y}
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func Length(a Vec2) float64 {
	return math.Hypot(a.X, a.Y)
}

// Normalize returns a unit vector in the direction of a, or the zero vector
// when a has no length.
func Normalize(a Vec2) Vec2 {
	l := Length(a)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: a.X / l, Y: a.Y / l}
}

// FromAngle returns the unit vector for an angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// DotWithin reports whether sign*dot(a, b) lies strictly inside
// (1-variance, 1+variance). With unit vectors and sign -1 this is true when a
// and b point in nearly opposite directions.
func DotWithin(a, b Vec2, sign, variance float64) bool {
	d := sign * Dot(a, b)
	return d > 1-variance && d < 1+variance
}

// IsCCW reports whether p1, p2, p3 wind counter-clockwise in a y-up frame.
func IsCCW(p1, p2, p3 Vec2) bool {
	return (p2.X-p1.X)*(p3.Y-p1.Y)-(p2.Y-p1.Y)*(p3.X-p1.X) > 0
}

// TriangleArea returns the unsigned area of the triangle p1 p2 p3.
func TriangleArea(p1, p2, p3 Vec2) float64 {
	return math.Abs((p2.X-p1.X)*(p3.Y-p1.Y)-(p2.Y-p1.Y)*(p3.X-p1.X)) / 2
}
