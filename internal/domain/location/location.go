// Package location splits coordinate arrays into separate axis values.
package location

import (
	"math"

	"github.com/riskibarqy/football-analytics/internal/domain/coerce"
)

// Unpack returns the x and y of a location. Absent, NaN or empty values give
// (nil, nil); a one-element list gives (x, nil); elements past the second are
// ignored.
func Unpack(v any) (x, y *float64) {
	x, y, _ = Unpack3(v)
	return x, y
}

// Unpack3 is Unpack with the z component exposed.
func Unpack3(v any) (x, y, z *float64) {
	items := elements(v)
	if len(items) > 0 {
		x = coerce.Float(items[0])
	}
	if len(items) > 1 {
		y = coerce.Float(items[1])
	}
	if len(items) > 2 {
		z = coerce.Float(items[2])
	}
	return x, y, z
}

func elements(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	case float64:
		if math.IsNaN(t) {
			return nil
		}
	}
	return nil
}

// Point is an unpacked 2D pitch location.
type Point struct {
	X float64
	Y float64
}

// PointOf returns the location when both axes are present.
func PointOf(v any) (Point, bool) {
	x, y := Unpack(v)
	if x == nil || y == nil {
		return Point{}, false
	}
	return Point{X: *x, Y: *y}, true
}
