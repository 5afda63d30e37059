package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.5, 0.5},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"below", -0.3, 0},
		{"above", 1.7, 1},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clamp01(tt.in))
		})
	}
}

func TestClamp01Idempotent(t *testing.T) {
	for _, v := range []float64{-2, -0.0001, 0, 0.25, 0.9999, 1, 1.5, math.NaN()} {
		once := clamp01(v)
		assert.Equal(t, once, clamp01(once), "clamping twice must equal clamping once for %v", v)
	}
}

func TestScale255Truncates(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127}, // 127.5 truncates down
		{0.25, 63},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scale255(tt.in), "scale255(%v)", tt.in)
	}
}

func TestDisplayDigits(t *testing.T) {
	tests := []struct {
		in   float64
		want [4]int
	}{
		{0, [4]int{0, 0, 0, 0}},
		{1, [4]int{9, 9, 9, 9}}, // 10000 clamps to 9999
		{0.12345, [4]int{1, 2, 3, 4}},
		{0.5, [4]int{5, 0, 0, 0}},
		{0.99999, [4]int{9, 9, 9, 9}},
		{-0.5, [4]int{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayDigits(tt.in), "displayDigits(%v)", tt.in)
	}
}
