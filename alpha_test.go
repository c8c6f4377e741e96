package xfermode

import (
	"math"
	"testing"
)

func TestNormalizeAlphaExactEndpoints(t *testing.T) {
	if got := NormalizeAlpha(255); got != 1.0 {
		t.Errorf("NormalizeAlpha(255) = %v, want exactly 1.0", got)
	}
	if math.Float32bits(NormalizeAlpha(255)) != math.Float32bits(1.0) {
		t.Error("NormalizeAlpha(255) is not bit-identical to 1.0")
	}
	if got := NormalizeAlpha(0); got != 0.0 {
		t.Errorf("NormalizeAlpha(0) = %v, want 0.0", got)
	}
}

func TestNormalizeAlpha(t *testing.T) {
	tests := []struct {
		alpha int
		want  float64
	}{
		{1, 1.0 / 255},
		{64, 0.25098},
		{128, 0.50196},
		{254, 254.0 / 255},
	}
	for _, tt := range tests {
		got := NormalizeAlpha(tt.alpha)
		if math.Abs(float64(got)-tt.want) > 1e-5 {
			t.Errorf("NormalizeAlpha(%d) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestNormalizeAlphaMonotonic(t *testing.T) {
	prev := NormalizeAlpha(0)
	for a := 1; a <= 255; a++ {
		got := NormalizeAlpha(a)
		if got <= prev || got > 1 {
			t.Fatalf("NormalizeAlpha(%d) = %v, previous %v", a, got, prev)
		}
		prev = got
	}
}

func TestNormalizeAlphaOutOfRangePanics(t *testing.T) {
	for _, alpha := range []int{-1, 256, 1000} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NormalizeAlpha(%d) did not panic", alpha)
				}
			}()
			NormalizeAlpha(alpha)
		}()
	}
}
