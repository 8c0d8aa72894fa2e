package geom

import "fmt"

// Vec2 represents a 2D point or vector.
//
// When multiplied through a Mat3, a Vec2 passed to TransformPoint carries an
// implicit homogeneous coordinate of 1 (a position, affected by translation),
// while TransformVector treats it as a direction (translation ignored).
type Vec2[T Float] struct {
	X, Y T
}

// V2 is a convenience function to create a Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec2[T]) Normalize() Vec2[T] {
	length := v.Length()
	if length == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2[T]) Lerp(w Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Elem returns the i-th component (0=X, 1=Y).
// Panics if i is out of range.
func (v Vec2[T]) Elem(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("geom: Vec2 component index %d out of range", i))
}

// Approx returns true if two vectors are equal within Epsilon for T.
func (v Vec2[T]) Approx(w Vec2[T]) bool {
	return approxEqual(v.X, w.X) && approxEqual(v.Y, w.Y)
}

// String returns a readable representation like "(1, 2)".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
