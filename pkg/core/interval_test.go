package core

import (
	"math"
	"testing"
)

func TestEmptyInterval(t *testing.T) {
	empty := EmptyInterval()
	if !math.IsInf(empty.Min, 1) || !math.IsInf(empty.Max, -1) {
		t.Fatalf("Expected [+inf, -inf], got [%v, %v]", empty.Min, empty.Max)
	}
	for _, x := range []float64{-1e300, 0, 1e300} {
		if empty.Contains(x) || empty.Surrounds(x) {
			t.Errorf("Empty interval should not contain %v", x)
		}
	}
	if empty.Size() >= 0 {
		t.Errorf("Empty interval should have negative size, got %v", empty.Size())
	}
}

func TestInterval_ContainsSurrounds(t *testing.T) {
	i := NewInterval(1, 2)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1, true, false},
		{1.5, true, true},
		{2, true, false},
		{2.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%v) = %v, expected %v", tt.x, got, tt.contains)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%v) = %v, expected %v", tt.x, got, tt.surrounds)
		}
	}
}

func TestInterval_Clamp(t *testing.T) {
	i := NewInterval(0, 0.999)
	if got := i.Clamp(-0.5); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := i.Clamp(0.25); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
	if got := i.Clamp(1.0); got != 0.999 {
		t.Errorf("Expected 0.999, got %v", got)
	}
}

func TestUniverseInterval(t *testing.T) {
	u := UniverseInterval()
	if !u.Surrounds(0) || !u.Surrounds(-1e308) || !u.Surrounds(1e308) {
		t.Error("Universe interval should surround every finite value")
	}
}
