package geom

import (
	"errors"
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2[float64]
	}{
		{"zero", V2(0.0, 0.0)},
		{"positive", V2(3.0, 1.0)},
		{"negative", V2(-5.5, -0.25)},
		{"mixed", V2(1e3, -2e-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Translation(tt.v)
			if got := m.Translation(); got != tt.v {
				t.Errorf("Translation(%v).Translation() = %v, want %v", tt.v, got, tt.v)
			}
			if got := m.RotationScaling(); !got.IsIdentity() {
				t.Errorf("Translation(%v).RotationScaling() = %v, want identity", tt.v, got)
			}
			if m[0].Z != 0 || m[1].Z != 0 || m[2].Z != 1 {
				t.Errorf("Translation(%v) last row = (%v, %v, %v), want (0, 0, 1)",
					tt.v, m[0].Z, m[1].Z, m[2].Z)
			}
		})
	}
}

func TestScaling(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2[float64]
	}{
		{"uniform", V2(2.0, 2.0)},
		{"non-uniform", V2(3.0, 0.5)},
		{"negative", V2(-1.0, 4.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Scaling(tt.v)
			rs := m.RotationScaling()
			want := Mat2[float64]{{X: tt.v.X}, {Y: tt.v.Y}}
			if rs != want {
				t.Errorf("Scaling(%v).RotationScaling() = %v, want %v", tt.v, rs, want)
			}
			if got := m.Translation(); !got.IsZero() {
				t.Errorf("Scaling(%v).Translation() = %v, want zero", tt.v, got)
			}
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	angles := []float64{0, math.Pi / 6, math.Pi / 4, math.Pi / 2, math.Pi, 2 * math.Pi, -1.3, 17.5}
	for _, angle := range angles {
		m := Rotation(angle)
		// The rotation accessor must reproduce the block: the columns are
		// already unit length, so normalization is a no-op.
		if got, want := m.Rotation(), m.RotationScaling(); !got.Approx(want) {
			t.Errorf("Rotation(%v).Rotation() = %v, want %v", angle, got, want)
		}
		if got := m.Mul(Rotation(-angle)); !got.Approx(Mat3Identity[float64]()) {
			t.Errorf("Rotation(%v) * Rotation(%v) = %v, want identity", angle, -angle, got)
		}
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	// Counter-clockwise convention: a quarter turn maps +X onto +Y.
	got := Rotation(math.Pi / 2).TransformPoint(V2(1.0, 0.0))
	if !got.Approx(V2(0.0, 1.0)) {
		t.Errorf("Rotation(pi/2).TransformPoint(1, 0) = %v, want (0, 1)", got)
	}
}

func TestReflection(t *testing.T) {
	tests := []struct {
		name   string
		normal Vec2[float64]
	}{
		{"x axis", V2(1.0, 0.0)},
		{"y axis", V2(0.0, 1.0)},
		{"diagonal", V2(math.Sqrt2/2, math.Sqrt2/2)},
		{"arbitrary", V2(0.6, -0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Reflection(tt.normal)
			if got := m.Mul(m); !got.Approx(Mat3Identity[float64]()) {
				t.Errorf("Reflection(%v) applied twice = %v, want identity", tt.normal, got)
			}
			if got := m.TransformVector(tt.normal); !got.Approx(tt.normal.Neg()) {
				t.Errorf("Reflection(%v) maps its normal to %v, want %v",
					tt.normal, got, tt.normal.Neg())
			}
			if got := m.Translation(); !got.IsZero() {
				t.Errorf("Reflection(%v).Translation() = %v, want zero", tt.normal, got)
			}
		})
	}
}

func TestReflectionInvalidNormal(t *testing.T) {
	for _, normal := range []Vec2[float64]{V2(2.0, 0.0), V2(0.5, 0.5), V2(0.0, 0.0)} {
		func() {
			defer func() {
				if r := recover(); !errors.Is(asErr(r), ErrInvalidNormal) {
					t.Errorf("Reflection(%v) panic = %v, want ErrInvalidNormal", normal, r)
				}
			}()
			Reflection(normal)
			t.Errorf("Reflection(%v) did not panic", normal)
		}()
	}
}

func TestProjection(t *testing.T) {
	// A 2x2 view maps onto [-1, 1] with unit scale.
	got := Projection(V2(2.0, 2.0))
	want := Scaling(V2(1.0, 1.0))
	if got != want {
		t.Errorf("Projection(2, 2) = %v, want %v", got, want)
	}

	got = Projection(V2(4.0, 8.0))
	if rs := got.RotationScaling(); !rs.Approx(Mat2[float64]{{X: 0.5}, {Y: 0.25}}) {
		t.Errorf("Projection(4, 8).RotationScaling() = %v, want diag(0.5, 0.25)", rs)
	}
	if tr := got.Translation(); !tr.IsZero() {
		t.Errorf("Projection(4, 8).Translation() = %v, want zero", tr)
	}
}

func TestMat3From(t *testing.T) {
	rs := Mat2FromCols(V2(1.0, 2.0), V2(3.0, 4.0))
	tr := V2(5.0, 6.0)
	m := Mat3From(rs, tr)
	if got := m.RotationScaling(); got != rs {
		t.Errorf("Mat3From.RotationScaling() = %v, want %v", got, rs)
	}
	if got := m.Translation(); got != tr {
		t.Errorf("Mat3From.Translation() = %v, want %v", got, tr)
	}
	if m[0].Z != 0 || m[1].Z != 0 || m[2].Z != 1 {
		t.Errorf("Mat3From last row = (%v, %v, %v), want (0, 0, 1)", m[0].Z, m[1].Z, m[2].Z)
	}
}

func TestInvertedEuclidean(t *testing.T) {
	tests := []struct {
		name        string
		angle       float64
		translation Vec2[float64]
	}{
		{"identity", 0, V2(0.0, 0.0)},
		{"pure translation", 0, V2(10.0, -20.0)},
		{"pure rotation", math.Pi / 3, V2(0.0, 0.0)},
		{"rigid", 1.1, V2(4.0, 5.0)},
		{"rigid negative angle", -2.7, V2(-0.5, 3.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Translation(tt.translation).Mul(Rotation(tt.angle))
			inv := m.InvertedEuclidean()
			if got := m.Mul(inv); !got.Approx(Mat3Identity[float64]()) {
				t.Errorf("M * M.InvertedEuclidean() = %v, want identity", got)
			}
			if got := inv.InvertedEuclidean(); !got.Approx(m) {
				t.Errorf("double InvertedEuclidean() = %v, want %v", got, m)
			}
		})
	}
}

func TestInvertedEuclideanMatchesInverted(t *testing.T) {
	m := Translation(V2(7.0, -2.0)).Mul(Rotation(0.8))
	if got, want := m.InvertedEuclidean(), m.Inverted(); !got.Approx(want) {
		t.Errorf("InvertedEuclidean() = %v, general Inverted() = %v", got, want)
	}
}

func TestInvertedEuclideanNotEuclidean(t *testing.T) {
	badRow := Mat3Identity[float64]()
	badRow.Set(2, 0, 1)

	projective := Mat3Identity[float64]()
	projective.Set(2, 2, 2)

	tests := []struct {
		name string
		m    Mat3[float64]
	}{
		{"scaled block", Scaling(V2(2.0, 2.0))},
		{"sheared block", Mat3From(Mat2FromCols(V2(1.0, 0.0), V2(1.0, 1.0)), V2(0.0, 0.0))},
		{"nonzero last row", badRow},
		{"projective weight", projective},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); !errors.Is(asErr(r), ErrNotEuclidean) {
					t.Errorf("InvertedEuclidean() panic = %v, want ErrNotEuclidean", r)
				}
			}()
			tt.m.InvertedEuclidean()
			t.Error("InvertedEuclidean() did not panic")
		})
	}
}

func TestIsEuclidean(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3[float64]
		want bool
	}{
		{"identity", Mat3Identity[float64](), true},
		{"rigid", Translation(V2(1.0, 2.0)).Mul(Rotation(0.4)), true},
		{"reflection", Reflection(V2(0.0, 1.0)), true},
		{"scaled", Scaling(V2(2.0, 1.0)), false},
		{"zero", Mat3[float64]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsEuclidean(); got != tt.want {
				t.Errorf("IsEuclidean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvertedGeneral(t *testing.T) {
	m := Mat3FromCols(
		V3(2.0, 0.0, 1.0),
		V3(-1.0, 3.0, 0.0),
		V3(4.0, 5.0, 1.0),
	)
	if got := m.Mul(m.Inverted()); !got.Approx(Mat3Identity[float64]()) {
		t.Errorf("M * M.Inverted() = %v, want identity", got)
	}
}

func TestInvertedSingular(t *testing.T) {
	singular := Mat3FromCols(
		V3(1.0, 2.0, 3.0),
		V3(2.0, 4.0, 6.0),
		V3(0.0, 1.0, 0.0),
	)
	if got := singular.Inverted(); !got.IsIdentity() {
		t.Errorf("singular.Inverted() = %v, want identity", got)
	}
}

func TestRotationAccessorStripsScale(t *testing.T) {
	angle := 0.7
	m := Rotation(angle).Mul(Scaling(V2(3.0, 3.0)))
	if got, want := m.Rotation(), Rotation(angle).RotationScaling(); !got.Approx(want) {
		t.Errorf("scaled rotation: Rotation() = %v, want %v", got, want)
	}
}

func TestAxisAccessors(t *testing.T) {
	m := Mat3From(Mat2FromCols(V2(1.0, 2.0), V2(3.0, 4.0)), V2(5.0, 6.0))
	if got := m.Right(); got != V2(1.0, 2.0) {
		t.Errorf("Right() = %v, want (1, 2)", got)
	}
	if got := m.Up(); got != V2(3.0, 4.0) {
		t.Errorf("Up() = %v, want (3, 4)", got)
	}

	m.SetRight(V2(-1.0, -2.0))
	m.SetUp(V2(-3.0, -4.0))
	m.SetTranslation(V2(9.0, 10.0))
	if got := m.Right(); got != V2(-1.0, -2.0) {
		t.Errorf("after SetRight: Right() = %v", got)
	}
	if got := m.Up(); got != V2(-3.0, -4.0) {
		t.Errorf("after SetUp: Up() = %v", got)
	}
	if got := m.Translation(); got != V2(9.0, 10.0) {
		t.Errorf("after SetTranslation: Translation() = %v", got)
	}
	// Mutators must leave the homogeneous row untouched.
	if m[0].Z != 0 || m[1].Z != 0 || m[2].Z != 1 {
		t.Errorf("mutators disturbed last row: (%v, %v, %v)", m[0].Z, m[1].Z, m[2].Z)
	}
}

func TestTransformPointVsVector(t *testing.T) {
	m := Translation(V2(10.0, 20.0)).Mul(Rotation(math.Pi / 2))
	p := V2(1.0, 0.0)
	if got := m.TransformPoint(p); !got.Approx(V2(10.0, 21.0)) {
		t.Errorf("TransformPoint = %v, want (10, 21)", got)
	}
	// Directions ignore translation.
	if got := m.TransformVector(p); !got.Approx(V2(0.0, 1.0)) {
		t.Errorf("TransformVector = %v, want (0, 1)", got)
	}
}

func TestMat3Float32(t *testing.T) {
	m := Translation(V2[float32](1, 2)).Mul(Rotation[float32](math.Pi / 4))
	if got := m.Mul(m.InvertedEuclidean()); !got.Approx(Mat3Identity[float32]()) {
		t.Errorf("float32 rigid round-trip = %v, want identity", got)
	}
}

func TestMat3NamedScalar(t *testing.T) {
	// A defined float32 type must get single-precision tolerance: a
	// normalized normal is unit length only within float32 rounding, so
	// Reflection would reject it under the float64 tolerance.
	n := V2[coord32](1, 1).Normalize()
	m := Reflection(n)
	if got := m.Mul(m); !got.Approx(Mat3Identity[coord32]()) {
		t.Errorf("coord32 reflection applied twice = %v, want identity", got)
	}
	if got := m.TransformVector(n); !got.Approx(n.Neg()) {
		t.Errorf("coord32 reflection maps its normal to %v, want %v", got, n.Neg())
	}

	r := Translation(V2[coord32](1, 2)).Mul(Rotation[coord32](math.Pi / 4))
	if got := r.Mul(r.InvertedEuclidean()); !got.Approx(Mat3Identity[coord32]()) {
		t.Errorf("coord32 rigid round-trip = %v, want identity", got)
	}
}

// asErr converts a recovered panic value to an error for errors.Is checks.
func asErr(r any) error {
	err, _ := r.(error)
	return err
}
