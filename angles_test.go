package gassist

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormalizeAngle(t *testing.T) {
	for _, tc := range []struct{ θ, exp float64 }{
		{0, 0},
		{1, 1},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{2 * math.Pi, 0},
		{10, 10 - 4*math.Pi},
		{-10, -10 + 4*math.Pi},
	} {
		if got := NormalizeAngle(tc.θ); !floats.EqualWithinAbs(got, tc.exp, 1e-12) {
			t.Fatalf("normalize(%f) got: %f\nexp:%f", tc.θ, got, tc.exp)
		}
	}
}

func TestNormalizeAngleIdempotent(t *testing.T) {
	for θ := -50.0; θ <= 50; θ += 0.37 {
		n := NormalizeAngle(θ)
		if n < -math.Pi || n >= math.Pi {
			t.Fatalf("normalize(%f)=%f out of range", θ, n)
		}
		if NormalizeAngle(n) != n {
			t.Fatalf("normalize is not idempotent for %f", θ)
		}
	}
}

func TestAngularSeparation(t *testing.T) {
	for _, tc := range []struct {
		a1, a2    float64
		clockwise bool
		exp       float64
	}{
		{0, math.Pi / 2, true, math.Pi / 2},
		{math.Pi / 2, 0, true, 3 * math.Pi / 2},
		{math.Pi / 2, 0, false, math.Pi / 2},
		{-3, 3, false, 2*math.Pi - 6},
		{-3, 3, true, 6},
		{3, -3, true, 2*math.Pi - 6},
		{1, 1, true, 0},
		{3 * math.Pi / 2, math.Pi / 2, true, math.Pi},
	} {
		if got := AngularSeparation(tc.a1, tc.a2, tc.clockwise); !floats.EqualWithinAbs(got, tc.exp, 1e-12) {
			t.Fatalf("separation(%f, %f, %v) got: %f\nexp:%f", tc.a1, tc.a2, tc.clockwise, got, tc.exp)
		}
	}
	for a := -4.0; a < 4; a += 0.3 {
		for b := -4.0; b < 4; b += 0.7 {
			if AngularSeparation(a, b, false) != AngularSeparation(b, a, false) {
				t.Fatalf("separation of %f and %f is not symmetric", a, b)
			}
			if s := AngularSeparation(a, b, false); s < 0 || s > math.Pi {
				t.Fatalf("smaller separation of %f and %f out of range: %f", a, b, s)
			}
		}
	}
}

func TestDegRad(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(-90), -math.Pi/2, 1e-15) {
		t.Fatal("incorrect conversion for -90")
	}
	if !floats.EqualWithinAbs(Rad2deg(Deg2rad(123.4)), 123.4, 1e-12) {
		t.Fatal("incorrect round trip for 123.4")
	}
}
