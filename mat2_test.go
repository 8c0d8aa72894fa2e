package geom

import (
	"math"
	"testing"
)

func TestMat2MulVec(t *testing.T) {
	// Column-major: first column (1, 2), second column (3, 4).
	m := Mat2FromCols(V2(1.0, 2.0), V2(3.0, 4.0))
	if got := m.MulVec(V2(1.0, 0.0)); got != V2(1.0, 2.0) {
		t.Errorf("MulVec(e0) = %v, want first column (1, 2)", got)
	}
	if got := m.MulVec(V2(0.0, 1.0)); got != V2(3.0, 4.0) {
		t.Errorf("MulVec(e1) = %v, want second column (3, 4)", got)
	}
	if got := m.MulVec(V2(1.0, 1.0)); got != V2(4.0, 6.0) {
		t.Errorf("MulVec(1, 1) = %v, want (4, 6)", got)
	}
}

func TestMat2Transposed(t *testing.T) {
	m := Mat2FromCols(V2(1.0, 2.0), V2(3.0, 4.0))
	mt := m.Transposed()
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if m.At(row, col) != mt.At(col, row) {
				t.Errorf("Transposed: element (%d, %d) mismatch", row, col)
			}
		}
	}
	if got := mt.Transposed(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}
}

func TestMat2OrthogonalRotation(t *testing.T) {
	for _, angle := range []float64{0, 0.5, math.Pi / 2, -2.1} {
		r := Rotation(angle).RotationScaling()
		if got := r.Transposed().Mul(r); !got.Approx(Mat2Identity[float64]()) {
			t.Errorf("R^T * R for angle %v = %v, want identity", angle, got)
		}
		if got := r.Determinant(); !approxEqual(got, 1) {
			t.Errorf("rotation determinant = %v, want 1", got)
		}
	}
}

func TestMat2Outer(t *testing.T) {
	n := V2(0.6, -0.8)
	o := outer(n, n)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			want := n.Elem(row) * n.Elem(col)
			if got := o.At(row, col); !approxEqual(got, want) {
				t.Errorf("outer(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
}
