package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Text round-trip for Mat3: nine scalars in column-major order, separated
// by single spaces. The format is shared with the generic 3x3 layout, so a
// value survives any configuration store that keeps strings intact
// (YAML, JSON, flat files).

func bitSize[T Float]() int {
	if singlePrecision[T]() {
		return 32
	}
	return 64
}

// MarshalText implements encoding.TextMarshaler. The output lists the nine
// elements column by column.
func (m Mat3[T]) MarshalText() ([]byte, error) {
	var b strings.Builder
	bits := bitSize[T]()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(float64(m.At(row, col)), 'g', -1, bits))
		}
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly
// nine whitespace-separated scalars in column-major order.
func (m *Mat3[T]) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 9 {
		return fmt.Errorf("geom: Mat3 expects 9 elements, got %d", len(fields))
	}
	bits := bitSize[T]()
	var parsed Mat3[T]
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, bits)
		if err != nil {
			return fmt.Errorf("geom: Mat3 element %d: %w", i, err)
		}
		parsed.Set(i%3, i/3, T(v))
	}
	*m = parsed
	return nil
}
