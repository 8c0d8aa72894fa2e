package geom

import "fmt"

// Vec3 represents a 3D vector. Within this package it mostly appears as the
// column type of Mat3, where Z holds the homogeneous coordinate.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 is a convenience function to create a Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// V3FromV2 extends a Vec2 with an explicit third component.
func V3FromV2[T Float](v Vec2[T], z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the length (magnitude) of the vector.
func (v Vec3[T]) Length() T {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// XY returns the first two components as a Vec2.
// Used to truncate matrix columns to their 2D part.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Elem returns the i-th component (0=X, 1=Y, 2=Z).
// Panics if i is out of range.
func (v Vec3[T]) Elem(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("geom: Vec3 component index %d out of range", i))
}

// Approx returns true if two vectors are equal within Epsilon for T.
func (v Vec3[T]) Approx(w Vec3[T]) bool {
	return approxEqual(v.X, w.X) && approxEqual(v.Y, w.Y) && approxEqual(v.Z, w.Z)
}

// String returns a readable representation like "(1, 2, 3)".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
