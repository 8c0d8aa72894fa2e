// Package geom provides generic 2D transform math for Go.
//
// # Overview
//
// geom is a pure Go library for composing and decomposing 2D affine
// transformations. It is a building block for scene graphs and renderers
// that chain transforms: translation, scaling, rotation, reflection and
// projection. All types are generic over the scalar type, so the same
// algorithms serve float32 pipelines (GPU-facing code) and float64
// pipelines (layout, physics) without conversion layers.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// Compose a rigid transform: rotate 90 degrees, then move by (10, 20).
//	m := geom.Translation(geom.V2(10.0, 20.0)).Mul(geom.Rotation(math.Pi / 2))
//
//	// Transform a point (implicit homogeneous w=1).
//	p := m.TransformPoint(geom.V2(1.0, 0.0))
//
//	// Invert cheaply: rigid transforms need no determinant or division.
//	inv := m.InvertedEuclidean()
//
// # Types
//
// The library is organized around four value types:
//   - Vec2, Vec3: fixed-size vectors with the usual arithmetic
//   - Mat2: the 2x2 rotation/scaling block of a 2D transform
//   - Mat3: the 3x3 transformation matrix, stored column-major
//
// Mat3 is a general 3x3 matrix reused for the affine convention: the
// upper-left 2x2 block holds rotation/scaling, the first two rows of the
// third column hold translation, and the last row is conventionally
// (0, 0, 1). Nothing enforces that convention at construction time; only
// the operations that rely on it (InvertedEuclidean) check it, so callers
// may build matrices incrementally.
//
// # Coordinate System
//
// Angles are in radians and rotate counter-clockwise. Matrices are stored
// column-major: m[i] is the i-th column, matching the memory layout GPUs
// and most graphics APIs expect.
//
// # Subpackages
//
//   - scene: a 2D transform hierarchy with cached world transforms
//   - warp: applies a Mat3 to images via golang.org/x/image/draw
//   - config: loads transform stacks from YAML files
//
// # Errors
//
// Violating an operation's documented precondition (a non-unit reflection
// normal, a non-rigid matrix passed to InvertedEuclidean) is a caller bug
// and panics with ErrInvalidNormal or ErrNotEuclidean. Recoverable
// conditions (file input, image bounds) return errors in the usual way.
package geom
