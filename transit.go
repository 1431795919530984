package gassist

import (
	"fmt"
	"math"
)

// OrbitParameters defines a planar Keplerian orbit. For hyperbolas, SemiMajorAxis is
// the magnitude of the semi major axis.
type OrbitParameters struct {
	Eccentricity  float64
	SemiMajorAxis float64 // m
	CentralMass   float64 // kg
}

// IsEllipse returns whether this orbit is closed (circles included).
func (o OrbitParameters) IsEllipse() bool {
	return o.Eccentricity < 1
}

// GM returns μ of the central body.
func (o OrbitParameters) GM(g float64) float64 {
	return g * o.CentralMass
}

// SemiParameter returns the semi latus rectum p.
func (o OrbitParameters) SemiParameter() float64 {
	return math.Abs(o.SemiMajorAxis * (1 - o.Eccentricity*o.Eccentricity))
}

// Radius returns the radius at true anomaly ν.
func (o OrbitParameters) Radius(ν float64) (float64, error) {
	return RadiusAtAngle(ν, o.Eccentricity, o.SemiMajorAxis, o.IsEllipse())
}

// Validate checks the orbit is supported.
func (o OrbitParameters) Validate() error {
	if o.Eccentricity == 1 {
		return ErrParabolic
	}
	if o.Eccentricity < 0 || math.IsNaN(o.Eccentricity) {
		return invalidf("eccentricity must be positive, got %g", o.Eccentricity)
	}
	if !(o.SemiMajorAxis > 0) {
		return invalidf("semi major axis must be positive, got %g", o.SemiMajorAxis)
	}
	if !(o.CentralMass > 0) {
		return invalidf("central mass must be positive, got %g", o.CentralMass)
	}
	return nil
}

func (o OrbitParameters) String() string {
	kind := "ellipse"
	if !o.IsEllipse() {
		kind = "hyperbola"
	}
	return fmt.Sprintf("%s a=%.1f e=%.4f M=%g", kind, o.SemiMajorAxis, o.Eccentricity, o.CentralMass)
}

// ArcSample is a point of the orbit.
type ArcSample struct {
	Angle  float64
	Radius float64
}

// IntegrationResult is the distance and time travelled along an arc.
type IntegrationResult struct {
	Distance float64 // m
	Time     float64 // s
	Steps    int
	Step     float64 // angular step in radians
}

func (r IntegrationResult) String() string {
	return fmt.Sprintf("distance=%.4f m\ttime=%.4f s", r.Distance, r.Time)
}

// transitStep returns the normalized angles, the angular span in the direction of motion and
// the angular step.
func transitStep(orbit OrbitParameters, from, to float64, divisions int) (float64, float64, float64, error) {
	if err := orbit.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if divisions <= 0 {
		return 0, 0, 0, invalidf("divisions must be positive, got %d", divisions)
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		return 0, 0, 0, invalidf("angles must be finite")
	}
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)
	span := AngularSeparation(from, to, true)
	return from, span, span / float64(divisions), nil
}

// Transit approximates the orbit between the true anomalies from and to by triangles of
// angle Δθ = span/divisions and returns the distance and time travelled. The cost is
// linear in the number of divisions.
func Transit(orbit OrbitParameters, from, to float64, divisions int, g float64) (IntegrationResult, error) {
	from, span, Δθ, err := transitStep(orbit, from, to, divisions)
	if err != nil {
		return IntegrationResult{}, err
	}
	rslt := IntegrationResult{Step: Δθ}
	if Δθ == 0 {
		return rslt, nil
	}
	μ := orbit.GM(g)
	cosΔθ := math.Cos(Δθ)
	prev := ArcSample{Angle: from}
	if prev.Radius, err = orbit.Radius(from); err != nil {
		return rslt, err
	}
	for traversed := 0.0; span-traversed > Δθ/2; traversed += Δθ {
		next := ArcSample{Angle: from + traversed + Δθ}
		if next.Radius, err = orbit.Radius(next.Angle); err != nil {
			return rslt, err
		}
		r1, r2 := prev.Radius, next.Radius
		chord := math.Sqrt(r1*r1 + r2*r2 - 2*r1*r2*cosΔθ)
		v, err := VisVivaSpeed(μ, r1, orbit.SemiMajorAxis, orbit.IsEllipse())
		if err != nil {
			return rslt, err
		}
		rslt.Distance += chord
		rslt.Time += chord / v
		rslt.Steps++
		prev = next
	}
	return rslt, nil
}

// TransitFromRadii is like Transit but the arc is defined by two radii and the sign of the
// radial speed at each of them.
func TransitFromRadii(orbit OrbitParameters, rFrom float64, outFrom bool, rTo float64, outTo bool, divisions int, g float64) (IntegrationResult, error) {
	from, to, err := AnglesFromRadii(orbit, rFrom, outFrom, rTo, outTo)
	if err != nil {
		return IntegrationResult{}, err
	}
	return Transit(orbit, from, to, divisions, g)
}

// AnglesFromRadii returns the true anomalies of both radii.
func AnglesFromRadii(orbit OrbitParameters, rFrom float64, outFrom bool, rTo float64, outTo bool) (from, to float64, err error) {
	if err = orbit.Validate(); err != nil {
		return
	}
	if from, err = AngleAtRadius(rFrom, orbit.Eccentricity, orbit.SemiMajorAxis, orbit.IsEllipse(), outFrom); err != nil {
		return 0, 0, fmt.Errorf("initial radius: %w", err)
	}
	if to, err = AngleAtRadius(rTo, orbit.Eccentricity, orbit.SemiMajorAxis, orbit.IsEllipse(), outTo); err != nil {
		return 0, 0, fmt.Errorf("final radius: %w", err)
	}
	return
}
