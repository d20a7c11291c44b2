package location

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		wantX *float64
		wantY *float64
	}{
		{name: "pair", in: []any{json.Number("60.5"), json.Number("40")}, wantX: f(60.5), wantY: f(40)},
		{name: "float slice", in: []float64{1, 2}, wantX: f(1), wantY: f(2)},
		{name: "nil", in: nil},
		{name: "nan", in: math.NaN()},
		{name: "empty", in: []any{}},
		{name: "single", in: []any{7.0}, wantX: f(7)},
		{name: "triple drops z", in: []any{118.0, 40.0, 2.1}, wantX: f(118), wantY: f(40)},
		{name: "non numeric", in: []any{"a", 3.0}, wantY: f(3)},
		{name: "scalar", in: "60,40"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Unpack(tc.in)
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}
}

func TestUnpack3(t *testing.T) {
	x, y, z := Unpack3([]any{json.Number("120"), json.Number("38.2"), json.Number("1.4")})
	require.NotNil(t, x)
	require.NotNil(t, y)
	require.NotNil(t, z)
	assert.Equal(t, 1.4, *z)

	_, _, z = Unpack3([]any{120.0, 38.0})
	assert.Nil(t, z)
}

func TestPointOf(t *testing.T) {
	p, ok := PointOf([]any{100.0, 40.0})
	require.True(t, ok)
	assert.Equal(t, Point{X: 100, Y: 40}, p)

	_, ok = PointOf([]any{100.0})
	assert.False(t, ok)
}

func f(v float64) *float64 {
	return &v
}
