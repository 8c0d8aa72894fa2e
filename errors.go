package geom

import "errors"

// Contract violations. These indicate a caller bug, not a runtime condition,
// so the operations that detect them panic with these values rather than
// returning an error. Recover is possible in tests; production code should
// treat them as fatal.
var (
	// ErrInvalidNormal is the panic value of Reflection when the supplied
	// normal is not unit length.
	ErrInvalidNormal = errors.New("geom: reflection normal must be normalized")

	// ErrNotEuclidean is the panic value of InvertedEuclidean when the
	// matrix has a projective last row or a non-orthogonal
	// rotation/scaling block.
	ErrNotEuclidean = errors.New("geom: matrix does not represent a Euclidean transformation")
)
