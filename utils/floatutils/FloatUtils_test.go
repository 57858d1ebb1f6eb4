package floatutils

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.1, 0.0, 1.0, 0.0},
		{1.3, 0.0, 1.0, 1.0},
		{0.0, 0.0, 1.0, 0.0},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.expected {
			t.Errorf("clip(%v, %v, %v) = %v, expected %v", test.value,
				test.min, test.max, got, test.expected)
		}
	}

	interval := r1.Interval{Min: 0.0, Max: 1.0}
	if got := ClipInterval(-0.5, interval); got != 0.0 {
		t.Errorf("clipInterval(-0.5, [0, 1]) = %v, expected 0", got)
	}
}

func TestMaxSlice(t *testing.T) {
	max, indices := MaxSlice([]float64{-0.7, -0.65, -0.65})

	if max != -0.65 {
		t.Errorf("max = %v, expected -0.65", max)
	}
	if len(indices) != 2 || indices[0] != 1 || indices[1] != 2 {
		t.Errorf("indices = %v, expected [1 2]", indices)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(0.3, -0.2, 0.9); got != -0.2 {
		t.Errorf("min = %v, expected -0.2", got)
	}
	if got := Max(0.3, -0.2, 0.9); got != 0.9 {
		t.Errorf("max = %v, expected 0.9", got)
	}
}
