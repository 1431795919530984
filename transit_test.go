package gassist

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

var earthOrbit = OrbitParameters{Eccentricity: 0, SemiMajorAxis: AU, CentralMass: Sun.Mass}

func TestTransitCircular(t *testing.T) {
	rslt, err := Transit(earthOrbit, 0, math.Pi/2, 1000, G)
	if err != nil {
		t.Fatal(err)
	}
	if rslt.Steps != 1000 {
		t.Fatalf("steps got: %d\nexp:1000", rslt.Steps)
	}
	arc := AU * math.Pi / 2
	if !floats.EqualWithinRel(rslt.Distance, arc, 1e-6) {
		t.Fatalf("distance got: %f\nexp:%f", rslt.Distance, arc)
	}
	v := math.Sqrt(Sun.GM(G) / AU)
	if !floats.EqualWithinRel(rslt.Time, rslt.Distance/v, 1e-12) {
		t.Fatalf("time got: %f\nexp:%f", rslt.Time, rslt.Distance/v)
	}
	// Both angle conventions are accepted.
	r1, _ := Transit(earthOrbit, 3*math.Pi/2, math.Pi/2, 1000, G)
	r2, _ := Transit(earthOrbit, -math.Pi/2, math.Pi/2, 1000, G)
	if !floats.EqualWithinRel(r1.Distance, r2.Distance, 1e-12) || !floats.EqualWithinRel(r1.Time, r2.Time, 1e-12) {
		t.Fatalf("[0, 2π) and [-π, π) disagree: %s vs %s", r1, r2)
	}
	if !floats.EqualWithinRel(r1.Distance, AU*math.Pi, 1e-6) {
		t.Fatalf("half orbit distance got: %f", r1.Distance)
	}
}

func TestTransitHalfEllipse(t *testing.T) {
	orbit := OrbitParameters{Eccentricity: 0.5, SemiMajorAxis: AU, CentralMass: Sun.Mass}
	halfPeriod := math.Pi * math.Sqrt(math.Pow(AU, 3)/orbit.GM(G))
	rslt, err := Transit(orbit, 0, math.Pi, 10000, G)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinRel(rslt.Time, halfPeriod, 1e-4) {
		t.Fatalf("time got: %f\nexp:%f", rslt.Time, halfPeriod)
	}
	// Increasing the divisions increases the accuracy.
	coarse, _ := Transit(orbit, 0, math.Pi, 100, G)
	if math.Abs(coarse.Time-halfPeriod) <= math.Abs(rslt.Time-halfPeriod) {
		t.Fatal("more divisions should be more accurate")
	}
}

func TestTransitHyperbola(t *testing.T) {
	e, a, ν := 2.0, AU, 1.0
	orbit := OrbitParameters{Eccentricity: e, SemiMajorAxis: a, CentralMass: Sun.Mass}
	// Time from periapsis via the hyperbolic anomaly.
	F := 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(ν/2))
	exp := (e*math.Sinh(F) - F) * math.Sqrt(math.Pow(a, 3)/orbit.GM(G))
	rslt, err := Transit(orbit, 0, ν, 10000, G)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinRel(rslt.Time, exp, 1e-4) {
		t.Fatalf("time got: %f\nexp:%f", rslt.Time, exp)
	}
	// The arc crosses the asymptote.
	if _, err = Transit(orbit, 0, math.Pi, 100, G); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}

func TestTransitSingleDivision(t *testing.T) {
	orbit := OrbitParameters{Eccentricity: 0.0167, SemiMajorAxis: AU, CentralMass: Sun.Mass}
	rslt, err := Transit(orbit, 0, 0.01, 1, G)
	if err != nil {
		t.Fatal(err)
	}
	if rslt.Steps != 1 || !(rslt.Distance > 0) || !(rslt.Time > 0) || math.IsInf(rslt.Distance, 0) || math.IsInf(rslt.Time, 0) {
		t.Fatalf("invalid single division: %+v", rslt)
	}
	r1, _ := orbit.Radius(0)
	r2, _ := orbit.Radius(0.01)
	chord := math.Sqrt(r1*r1 + r2*r2 - 2*r1*r2*math.Cos(0.01))
	v, _ := VisVivaSpeed(orbit.GM(G), r1, AU, true)
	if !floats.EqualWithinRel(rslt.Distance, chord, 1e-14) || !floats.EqualWithinRel(rslt.Time, chord/v, 1e-14) {
		t.Fatalf("single division got: %s", rslt)
	}
}

func TestTransitFromRadii(t *testing.T) {
	orbit := OrbitParameters{Eccentricity: 0.5, SemiMajorAxis: AU, CentralMass: Sun.Mass}
	r, _ := orbit.Radius(1)
	// Incoming at ν=-1, outgoing at ν=1.
	fromRadii, err := TransitFromRadii(orbit, r, false, r, true, 1000, G)
	if err != nil {
		t.Fatal(err)
	}
	fromAngles, _ := Transit(orbit, -1, 1, 1000, G)
	if !floats.EqualWithinRel(fromRadii.Distance, fromAngles.Distance, 1e-8) || !floats.EqualWithinRel(fromRadii.Time, fromAngles.Time, 1e-8) {
		t.Fatalf("radii: %s\nangles: %s", fromRadii, fromAngles)
	}
	if _, err = TransitFromRadii(earthOrbit, AU, true, AU, false, 10, G); !errors.Is(err, ErrCircularRadius) {
		t.Fatalf("expected ErrCircularRadius, got %v", err)
	}
	if _, err = TransitFromRadii(orbit, 10*AU, true, r, false, 10, G); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}

func TestTransitInvalid(t *testing.T) {
	for _, tc := range []struct {
		name      string
		orbit     OrbitParameters
		divisions int
		exp       error
	}{
		{"parabola", OrbitParameters{1, AU, Sun.Mass}, 10, ErrParabolic},
		{"zero divisions", earthOrbit, 0, ErrInvalidConfig},
		{"negative sma", OrbitParameters{0.1, -AU, Sun.Mass}, 10, ErrInvalidConfig},
		{"zero mass", OrbitParameters{0.1, AU, 0}, 10, ErrInvalidConfig},
		{"negative eccentricity", OrbitParameters{-0.1, AU, Sun.Mass}, 10, ErrInvalidConfig},
	} {
		if _, err := Transit(tc.orbit, 0, 1, tc.divisions, G); !errors.Is(err, tc.exp) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.exp, err)
		}
	}
	if _, err := Transit(earthOrbit, math.NaN(), 1, 10, G); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NaN angle: expected ErrInvalidConfig, got %v", err)
	}
	// Same angles: nothing to travel.
	if rslt, err := Transit(earthOrbit, 1, 1, 10, G); err != nil || rslt.Distance != 0 || rslt.Time != 0 {
		t.Fatalf("same angles got: %s (%v)", rslt, err)
	}
}
