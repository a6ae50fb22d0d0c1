package events

import (
	"math"
	"testing"
)

func TestWrap180(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{179, 179},
		{180, 180},
		{181, -179},
		{-180, 180},
		{360, 0},
		{-540, 180},
		{725, 5},
	}
	for _, tt := range tests {
		if got := wrap180(tt.in); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("wrap180(%g) = %g, expected %g", tt.in, got, tt.expected)
		}
	}
}

func TestWrap360(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-1, 359},
		{721, 1},
	}
	for _, tt := range tests {
		if got := wrap360(tt.in); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("wrap360(%g) = %g, expected %g", tt.in, got, tt.expected)
		}
	}
}
