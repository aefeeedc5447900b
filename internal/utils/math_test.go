package utils

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-180, 180},
		{-720, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSmoothStepEndpoints(t *testing.T) {
	if SmoothStep(0) != 0 || SmoothStep(1) != 1 || SmoothStep(0.5) != 0.5 {
		t.Fatalf("smoothstep endpoints off: %v %v %v", SmoothStep(0), SmoothStep(0.5), SmoothStep(1))
	}
	if SmoothStep(-1) != 0 || SmoothStep(2) != 1 {
		t.Fatal("smoothstep must clamp its input")
	}
}

func TestDegreesRadiansRoundTrip(t *testing.T) {
	if got := Degrees(math.Pi); got != 180 {
		t.Fatalf("Degrees(pi) = %v", got)
	}
	if got := Radians(90); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("Radians(90) = %v", got)
	}
}

func TestPRNGServiceSeedIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() || a.Intn(4) != b.Intn(4) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Fatal("zero seed must be replaced by a time based one")
	}
}
