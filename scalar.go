package geom

import "math"

// Float is the scalar constraint for every type in this package.
// The algorithms are identical for both precisions; pick float32 for
// GPU-facing code and float64 when accumulated error matters.
type Float interface {
	~float32 | ~float64
}

// singlePrecision reports whether T's underlying type is float32.
// The conversion collapses 1+1e-10 to exactly 1 in single precision, and
// unlike a type assertion it also covers defined types like
// "type coord float32".
func singlePrecision[T Float]() bool {
	return T(1+1e-10) == T(1)
}

// Epsilon returns the fuzzy-comparison tolerance for the scalar type T.
// Approx methods on vectors and matrices compare within this tolerance,
// as do the precondition checks on Reflection and InvertedEuclidean.
func Epsilon[T Float]() T {
	if singlePrecision[T]() {
		return T(1e-5)
	}
	return T(1e-12)
}

// approxEqual reports whether two scalars are equal within Epsilon.
func approxEqual[T Float](a, b T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon[T]()
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}
