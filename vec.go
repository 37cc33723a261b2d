package canopy

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrDivideByZero is returned by Vec2.Div when the divisor is exactly zero.
var ErrDivideByZero = errors.New("canopy: divide by zero")

// DefaultTolerance is the per-component tolerance used by ApproxEqual.
const DefaultTolerance = 1e-6

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. It is a plain value: copying a Vec2 clones it.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// AddInPlace adds w to v.
func (v *Vec2) AddInPlace(w Vec2) {
	v.X += w.X
	v.Y += w.Y
}

// SubInPlace subtracts w from v.
func (v *Vec2) SubInPlace(w Vec2) {
	v.X -= w.X
	v.Y -= w.Y
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v divided by s. Dividing by exactly zero fails with
// ErrDivideByZero instead of producing infinities.
func (v Vec2) Div(s float64) (Vec2, error) {
	if s == 0 {
		return Vec2{}, ErrDivideByZero
	}
	return Vec2{v.X / s, v.Y / s}, nil
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar 2D cross product (the z component of v x w).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// AngleTo returns the unsigned angle in radians between v and w.
// The result is NaN when either vector has zero magnitude.
func (v Vec2) AngleTo(w Vec2) float64 {
	return math.Acos(v.Dot(w) / (v.Magnitude() * w.Magnitude()))
}

// Rotate returns v rotated counter-clockwise by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Distance returns the distance between the points v and w.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Magnitude()
}

// Project returns the projection of v onto the direction of onto.
// Projecting onto the zero vector yields the zero vector.
func (v Vec2) Project(onto Vec2) Vec2 {
	n := onto.Normalize()
	return n.Scale(v.Dot(n))
}

// Reflect returns v reflected across the line perpendicular to normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	n := normal.Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Lerp linearly interpolates from v toward w. t is not clamped: values
// outside [0, 1] extrapolate along the line through v and w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Limit returns v scaled down to max magnitude if it is longer than max.
func (v Vec2) Limit(max float64) Vec2 {
	if v.Magnitude() > max {
		return v.Normalize().Scale(max)
	}
	return v
}

// Equals reports whether each component of v is within tol of w.
func (v Vec2) Equals(w Vec2, tol float64) bool {
	return math.Abs(v.X-w.X) < tol && math.Abs(v.Y-w.Y) < tol
}

// ApproxEqual is Equals with DefaultTolerance.
func (v Vec2) ApproxEqual(w Vec2) bool {
	return v.Equals(w, DefaultTolerance)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

// Vec2FromAngle returns a vector of the given magnitude pointing at theta radians.
func Vec2FromAngle(theta, magnitude float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{magnitude * cos, magnitude * sin}
}

// RandomVec2 returns a vector of the given magnitude pointing in a uniformly
// random direction.
func RandomVec2(magnitude float64) Vec2 {
	return Vec2FromAngle(rand.Float64()*2*math.Pi, magnitude)
}
