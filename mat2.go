package geom

import "fmt"

// Mat2 is a 2x2 matrix stored column-major: m[i] is the i-th column.
// It is the rotation/scaling block of a 2D affine transform.
type Mat2[T Float] [2]Vec2[T]

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity[T Float]() Mat2[T] {
	return Mat2[T]{
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}
}

// Mat2FromCols builds a Mat2 from two column vectors.
func Mat2FromCols[T Float](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{c0, c1}
}

// At returns the element at the given row and column.
func (m Mat2[T]) At(row, col int) T {
	return m[col].Elem(row)
}

// Add returns the element-wise sum of two matrices.
func (m Mat2[T]) Add(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Add(n[0]), m[1].Add(n[1])}
}

// Sub returns the element-wise difference of two matrices.
func (m Mat2[T]) Sub(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Sub(n[0]), m[1].Sub(n[1])}
}

// MulScalar returns the matrix with every element multiplied by s.
func (m Mat2[T]) MulScalar(s T) Mat2[T] {
	return Mat2[T]{m[0].Mul(s), m[1].Mul(s)}
}

// Mul returns the matrix product m * n.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return m[0].Mul(v.X).Add(m[1].Mul(v.Y))
}

// Transposed returns the transposed matrix.
func (m Mat2[T]) Transposed() Mat2[T] {
	return Mat2[T]{
		{X: m[0].X, Y: m[1].X},
		{X: m[0].Y, Y: m[1].Y},
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat2[T]) Determinant() T {
	return m[0].X*m[1].Y - m[1].X*m[0].Y
}

// Approx returns true if two matrices are equal within Epsilon for T.
func (m Mat2[T]) Approx(n Mat2[T]) bool {
	return m[0].Approx(n[0]) && m[1].Approx(n[1])
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Mat2[T]) IsIdentity() bool {
	return m == Mat2Identity[T]()
}

// outer returns the outer product v * w^T.
func outer[T Float](v, w Vec2[T]) Mat2[T] {
	return Mat2[T]{
		{X: v.X * w.X, Y: v.Y * w.X},
		{X: v.X * w.Y, Y: v.Y * w.Y},
	}
}

// String formats the matrix row by row.
func (m Mat2[T]) String() string {
	return fmt.Sprintf("[%v %v; %v %v]", m[0].X, m[1].X, m[0].Y, m[1].Y)
}
