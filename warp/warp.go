// Package warp applies geom transforms to images.
//
// It bridges geom.Mat3 to the affine rasterizers in golang.org/x/image/draw:
// the matrix maps source pixel coordinates to destination coordinates, the
// same convention the x/image interpolators use. Quality and compositing
// are selected with functional options.
package warp

import (
	"errors"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/geom"
)

// ErrNotAffine is returned when a matrix cannot be applied to an image
// because its last row is not (0, 0, 1).
var ErrNotAffine = errors.New("warp: matrix last row is not (0, 0, 1)")

// Aff3 converts a Mat3 to the 2x3 row-major form used by
// golang.org/x/image/draw, dropping the homogeneous row. The row must be
// (0, 0, 1); a projective matrix has no 2x3 representation.
func Aff3(m geom.Mat3[float64]) (f64.Aff3, error) {
	if m.At(2, 0) != 0 || m.At(2, 1) != 0 || m.At(2, 2) != 1 {
		return f64.Aff3{}, ErrNotAffine
	}
	return f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}, nil
}

// Option configures a Draw call.
type Option func(*options)

type options struct {
	interp xdraw.Interpolator
	op     xdraw.Op
}

func defaultOptions() options {
	return options{
		interp: xdraw.BiLinear,
		op:     xdraw.Src,
	}
}

// WithInterpolator selects the resampling quality. The x/image
// interpolators in increasing quality and cost:
// xdraw.NearestNeighbor, xdraw.ApproxBiLinear, xdraw.BiLinear,
// xdraw.CatmullRom. The default is xdraw.BiLinear.
func WithInterpolator(i xdraw.Interpolator) Option {
	return func(o *options) {
		o.interp = i
	}
}

// WithOp selects the compositing operator: xdraw.Src replaces destination
// pixels (the default), xdraw.Over blends onto them.
func WithOp(op xdraw.Op) Option {
	return func(o *options) {
		o.op = op
	}
}

// Draw applies the transform to src and writes the result into dst.
// A source pixel at p lands at m.TransformPoint(p) in dst; pixels mapping
// outside dst are clipped.
func Draw(dst draw.Image, m geom.Mat3[float64], src image.Image, opts ...Option) error {
	aff, err := Aff3(m)
	if err != nil {
		return err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.interp.Transform(dst, aff, src, src.Bounds(), o.op, nil)
	return nil
}
