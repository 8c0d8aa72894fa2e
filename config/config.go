// Package config loads 2D transform definitions from YAML files.
//
// A definition is a list of steps composed in order: the first step applies
// to a point first, each following step applies on top. This keeps hand
// written files readable top to bottom:
//
//	transforms:
//	  - op: scale
//	    x: 2
//	    y: 2
//	  - op: rotate
//	    angle: 90
//	    deg: true
//	  - op: translate
//	    x: 100
//	    y: 50
//
// The matrix step takes nine values in column-major order, the same layout
// geom.Mat3 uses for its text encoding.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom"
)

// ErrUnknownOp is wrapped into the error returned for a step whose op
// field names no known transform.
var ErrUnknownOp = errors.New("config: unknown transform op")

// Step is one transform in a definition file. Which fields matter depends
// on Op; unused fields are ignored.
type Step struct {
	Op string `yaml:"op"`

	// translate, scale, reflect
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// rotate
	Angle float64 `yaml:"angle"`
	Deg   bool    `yaml:"deg"`

	// project
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`

	// matrix: nine values, column-major
	Values []float64 `yaml:"values"`
}

// File is the top-level document layout.
type File struct {
	Transforms []Step `yaml:"transforms"`
}

// Load reads a YAML definition file and composes it into a single matrix.
func Load(path string) (geom.Mat3[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geom.Mat3[float64]{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return geom.Mat3[float64]{}, fmt.Errorf("config: %s: %w", path, err)
	}
	geom.Logger().Info("config: transform file loaded",
		slog.String("path", path))
	return m, nil
}

// Parse composes a YAML definition into a single matrix. An empty
// transform list yields the identity.
func Parse(data []byte) (geom.Mat3[float64], error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return geom.Mat3[float64]{}, fmt.Errorf("config: parse: %w", err)
	}

	m := geom.Mat3Identity[float64]()
	for i, step := range f.Transforms {
		sm, err := step.Matrix()
		if err != nil {
			return geom.Mat3[float64]{}, fmt.Errorf("config: step %d: %w", i, err)
		}
		// Later steps apply after earlier ones.
		m = sm.Mul(m)
	}
	return m, nil
}

// Matrix builds the matrix for a single step.
func (s Step) Matrix() (geom.Mat3[float64], error) {
	switch s.Op {
	case "translate":
		return geom.Translation(geom.V2(s.X, s.Y)), nil
	case "scale":
		return geom.Scaling(geom.V2(s.X, s.Y)), nil
	case "rotate":
		angle := s.Angle
		if s.Deg {
			angle = angle * math.Pi / 180
		}
		return geom.Rotation(angle), nil
	case "reflect":
		n := geom.V2(s.X, s.Y)
		if n.IsZero() {
			return geom.Mat3[float64]{}, errors.New("reflect: normal must be nonzero")
		}
		// Files are written by hand; normalize instead of demanding an
		// exact unit normal.
		return geom.Reflection(n.Normalize()), nil
	case "project":
		if s.W == 0 || s.H == 0 {
			return geom.Mat3[float64]{}, errors.New("project: view size must be nonzero")
		}
		return geom.Projection(geom.V2(s.W, s.H)), nil
	case "matrix":
		if len(s.Values) != 9 {
			return geom.Mat3[float64]{}, fmt.Errorf("matrix: expected 9 values, got %d", len(s.Values))
		}
		var m geom.Mat3[float64]
		for i, v := range s.Values {
			m.Set(i%3, i/3, v)
		}
		return m, nil
	default:
		return geom.Mat3[float64]{}, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
}
