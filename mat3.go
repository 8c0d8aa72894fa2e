package geom

import (
	"fmt"
	"math"
)

// Mat3 is a 3x3 matrix stored column-major: m[i] is the i-th column.
//
// It is a general 3x3 matrix reused for 2D affine transforms by convention:
// the upper-left 2x2 block is the rotation/scaling part, the first two rows
// of column 2 are the translation part, and the last row is (0, 0, 1).
// The convention is not enforced at construction; only operations that
// depend on it (InvertedEuclidean) check their preconditions.
type Mat3[T Float] [3]Vec3[T]

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Float]() Mat3[T] {
	return Mat3Diag[T](1, 1, 1)
}

// Mat3Diag returns a diagonal matrix with the given diagonal entries,
// all other elements zero.
func Mat3Diag[T Float](x, y, z T) Mat3[T] {
	return Mat3[T]{
		{X: x},
		{Y: y},
		{Z: z},
	}
}

// Mat3FromCols builds a Mat3 from three column vectors.
func Mat3FromCols[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// Translation returns a 2D translation matrix: identity rotation/scaling
// block, translation column (v.X, v.Y, 1).
func Translation[T Float](v Vec2[T]) Mat3[T] {
	return Mat3[T]{
		{X: 1},
		{Y: 1},
		{X: v.X, Y: v.Y, Z: 1},
	}
}

// Scaling returns a 2D scaling matrix: diagonal (v.X, v.Y, 1).
func Scaling[T Float](v Vec2[T]) Mat3[T] {
	return Mat3Diag(v.X, v.Y, 1)
}

// Rotation returns a 2D rotation matrix. The angle is in radians and
// rotates counter-clockwise; any real value is accepted.
func Rotation[T Float](angle T) Mat3[T] {
	sin, cos := sincos(angle)
	return Mat3[T]{
		{X: cos, Y: sin},
		{X: -sin, Y: cos},
		{Z: 1},
	}
}

// Reflection returns a 2D reflection through the line whose normal is the
// given vector. The normal must be unit length: the rotation/scaling block
// is I - 2*n*n^T, the translation is zero.
//
// Panics with ErrInvalidNormal if the normal is not normalized within
// Epsilon for T.
func Reflection[T Float](normal Vec2[T]) Mat3[T] {
	if !approxEqual(normal.Dot(normal), 1) {
		panic(ErrInvalidNormal)
	}
	block := Mat2Identity[T]().Sub(outer(normal, normal).MulScalar(2))
	return Mat3From(block, Vec2[T]{})
}

// Projection returns a 2D projection matrix mapping a view of the given
// size onto the [-1, 1] normalized range. Equivalent to Scaling(2/size)
// with zero translation.
func Projection[T Float](size Vec2[T]) Mat3[T] {
	return Scaling(Vec2[T]{X: 2 / size.X, Y: 2 / size.Y})
}

// Mat3From composes a transformation matrix from an explicit
// rotation/scaling block and a translation vector. The last row is (0, 0, 1).
func Mat3From[T Float](rotationScaling Mat2[T], translation Vec2[T]) Mat3[T] {
	return Mat3[T]{
		V3FromV2(rotationScaling[0], 0),
		V3FromV2(rotationScaling[1], 0),
		V3FromV2(translation, 1),
	}
}

// At returns the element at the given row and column.
func (m Mat3[T]) At(row, col int) T {
	return m[col].Elem(row)
}

// Set sets the element at the given row and column.
func (m *Mat3[T]) Set(row, col int, v T) {
	switch row {
	case 0:
		m[col].X = v
	case 1:
		m[col].Y = v
	case 2:
		m[col].Z = v
	default:
		panic(fmt.Sprintf("geom: Mat3 row index %d out of range", row))
	}
}

// RotationScaling returns the rotation/scaling part of the matrix: the raw
// upper-left 2x2 block, columns 0 and 1 truncated to their 2D part.
func (m Mat3[T]) RotationScaling() Mat2[T] {
	return Mat2[T]{m[0].XY(), m[1].XY()}
}

// Rotation returns the rotation part of the matrix: the upper-left 2x2
// block with each column normalized to unit length, stripping any scale.
// The result is only meaningful if the block is a scaled rotation; for a
// general linear map it is not.
func (m Mat3[T]) Rotation() Mat2[T] {
	return Mat2[T]{
		m[0].XY().Normalize(),
		m[1].XY().Normalize(),
	}
}

// Right returns the right-pointing local axis: the first two elements of
// column 0.
func (m Mat3[T]) Right() Vec2[T] {
	return m[0].XY()
}

// SetRight replaces the first two elements of column 0 in place.
func (m *Mat3[T]) SetRight(v Vec2[T]) {
	m[0].X, m[0].Y = v.X, v.Y
}

// Up returns the up-pointing local axis: the first two elements of column 1.
func (m Mat3[T]) Up() Vec2[T] {
	return m[1].XY()
}

// SetUp replaces the first two elements of column 1 in place.
func (m *Mat3[T]) SetUp(v Vec2[T]) {
	m[1].X, m[1].Y = v.X, v.Y
}

// Translation returns the translation part of the matrix: the first two
// elements of column 2.
func (m Mat3[T]) Translation() Vec2[T] {
	return m[2].XY()
}

// SetTranslation replaces the translation part in place, leaving the rest
// of the matrix untouched.
func (m *Mat3[T]) SetTranslation(v Vec2[T]) {
	m[2].X, m[2].Y = v.X, v.Y
}

// Add returns the element-wise sum of two matrices.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Sub returns the element-wise difference of two matrices.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// MulScalar returns the matrix with every element multiplied by s.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	return Mat3[T]{m[0].Mul(s), m[1].Mul(s), m[2].Mul(s)}
}

// Mul returns the matrix product m * n. Applied to a point, the result
// performs n first, then m.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return m[0].Mul(v.X).Add(m[1].Mul(v.Y)).Add(m[2].Mul(v.Z))
}

// TransformPoint applies the transformation to a 2D point. The point is
// treated as an affine position with an implicit homogeneous coordinate
// of 1, so translation applies.
func (m Mat3[T]) TransformPoint(p Vec2[T]) Vec2[T] {
	return m.MulVec(V3FromV2(p, 1)).XY()
}

// TransformVector applies the transformation to a 2D direction: only the
// rotation/scaling block is used, translation is ignored.
func (m Mat3[T]) TransformVector(v Vec2[T]) Vec2[T] {
	return m.MulVec(V3FromV2(v, 0)).XY()
}

// Transposed returns the transposed matrix.
func (m Mat3[T]) Transposed() Mat3[T] {
	return Mat3[T]{
		{X: m[0].X, Y: m[1].X, Z: m[2].X},
		{X: m[0].Y, Y: m[1].Y, Z: m[2].Y},
		{X: m[0].Z, Y: m[1].Z, Z: m[2].Z},
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3[T]) Determinant() T {
	return m[0].X*(m[1].Y*m[2].Z-m[2].Y*m[1].Z) -
		m[1].X*(m[0].Y*m[2].Z-m[2].Y*m[0].Z) +
		m[2].X*(m[0].Y*m[1].Z-m[1].Y*m[0].Z)
}

// Inverted returns the general inverse computed from cofactors.
// Returns the identity matrix if the matrix is not invertible.
// For rigid transforms prefer InvertedEuclidean, which is faster and
// avoids the division entirely.
func (m Mat3[T]) Inverted() Mat3[T] {
	det := m.Determinant()
	if math.Abs(float64(det)) < float64(Epsilon[T]()) {
		return Mat3Identity[T]()
	}
	inv := 1 / det
	return Mat3[T]{
		{
			X: (m[1].Y*m[2].Z - m[2].Y*m[1].Z) * inv,
			Y: (m[2].Y*m[0].Z - m[0].Y*m[2].Z) * inv,
			Z: (m[0].Y*m[1].Z - m[1].Y*m[0].Z) * inv,
		},
		{
			X: (m[2].X*m[1].Z - m[1].X*m[2].Z) * inv,
			Y: (m[0].X*m[2].Z - m[2].X*m[0].Z) * inv,
			Z: (m[1].X*m[0].Z - m[0].X*m[1].Z) * inv,
		},
		{
			X: (m[1].X*m[2].Y - m[2].X*m[1].Y) * inv,
			Y: (m[2].X*m[0].Y - m[0].X*m[2].Y) * inv,
			Z: (m[0].X*m[1].Y - m[1].X*m[0].Y) * inv,
		},
	}
}

// IsEuclidean reports whether the matrix represents a Euclidean (rigid)
// transformation: last row (0, 0, 1) and an orthogonal rotation/scaling
// block. This is the non-panicking form of the InvertedEuclidean
// precondition, for callers that need to branch to a general inverse.
func (m Mat3[T]) IsEuclidean() bool {
	if m[0].Z != 0 || m[1].Z != 0 || m[2].Z != 1 {
		return false
	}
	rs := m.RotationScaling()
	return rs.Transposed().Mul(rs).Approx(Mat2Identity[T]())
}

// InvertedEuclidean returns the inverse of a Euclidean transformation:
// the transposed rotation block combined with the negated, rotated
// translation. No determinant and no division is involved, which makes
// this both faster and numerically safer than Inverted for the common
// case of rigid transforms chained in a scene graph.
//
// The matrix must have (0, 0, 1) as its last row and an orthogonal
// rotation/scaling block (pure rotation, no scale or shear); otherwise
// the call panics with ErrNotEuclidean.
func (m Mat3[T]) InvertedEuclidean() Mat3[T] {
	if m[0].Z != 0 || m[1].Z != 0 || m[2].Z != 1 {
		panic(ErrNotEuclidean)
	}
	inverseRotation := m.RotationScaling().Transposed()
	if !inverseRotation.Mul(m.RotationScaling()).Approx(Mat2Identity[T]()) {
		panic(ErrNotEuclidean)
	}
	return Mat3From(inverseRotation, inverseRotation.MulVec(m.Translation().Neg()))
}

// Approx returns true if two matrices are equal within Epsilon for T.
func (m Mat3[T]) Approx(n Mat3[T]) bool {
	return m[0].Approx(n[0]) && m[1].Approx(n[1]) && m[2].Approx(n[2])
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Mat3[T]) IsIdentity() bool {
	return m == Mat3Identity[T]()
}

// String formats the matrix as a 3x3 grid, row by row.
func (m Mat3[T]) String() string {
	return fmt.Sprintf("[%v %v %v; %v %v %v; %v %v %v]",
		m[0].X, m[1].X, m[2].X,
		m[0].Y, m[1].Y, m[2].Y,
		m[0].Z, m[1].Z, m[2].Z)
}
