package gassist

import (
	"math"
)

// orbitSign returns +1 for ellipses and -1 for hyperbolas, which is the sign applied
// to a(1-e²) in the orbit equation.
func orbitSign(isEllipse bool) float64 {
	if isEllipse {
		return 1
	}
	return -1
}

// VisVivaSpeed returns the orbital speed at radius r of an orbit of semi major axis a.
// For hyperbolas, a is the magnitude of the semi major axis.
func VisVivaSpeed(μ, r, a float64, isEllipse bool) (float64, error) {
	s := 1.0
	if isEllipse {
		s = -1
	}
	v2 := μ * (2/r + s/a)
	if v2 < 0 || math.IsNaN(v2) {
		return 0, domainErr("vis-viva", v2)
	}
	return math.Sqrt(v2), nil
}

// RadiusAtAngle returns the radius at true anomaly ν.
func RadiusAtAngle(ν, e, a float64, isEllipse bool) (float64, error) {
	r := orbitSign(isEllipse) * a * (1 - e*e) / (1 + e*math.Cos(ν))
	if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		// Beyond the asymptotes of a hyperbola.
		return 0, domainErr("radius at angle", ν)
	}
	return r, nil
}

// AngleAtRadius returns the true anomaly at which the orbit reaches radius r.
// The angle is negative when the object is moving towards the body (negative radial speed).
func AngleAtRadius(r, e, a float64, isEllipse, radialSpeedPositive bool) (float64, error) {
	if e == 0 {
		return 0, ErrCircularRadius
	}
	cosν := (orbitSign(isEllipse)*a*(1-e*e)/r - 1) / e
	if cosν < -1 || cosν > 1 || math.IsNaN(cosν) {
		return 0, domainErr("angle at radius", cosν)
	}
	ν := math.Acos(cosν)
	if !radialSpeedPositive {
		ν *= -1
	}
	return ν, nil
}

// HyperbolicEccentricity returns the eccentricity of a flyby hyperbola from the
// excess speed and the radius of periapsis.
func HyperbolicEccentricity(vInf, rP, μ float64) float64 {
	return 1 + vInf*vInf*rP/μ
}

// TurnAngle returns the deflection of the excess velocity of a flyby hyperbola.
func TurnAngle(e float64) (float64, error) {
	if e < 1 || math.IsNaN(e) {
		return 0, domainErr("turn angle", e)
	}
	return 2 * math.Asin(1/e), nil
}

// CircularSpeed returns the speed of a circular orbit of radius r.
func CircularSpeed(μ, r float64) (float64, error) {
	if r <= 0 || μ/r < 0 {
		return 0, domainErr("circular speed", r)
	}
	return math.Sqrt(μ / r), nil
}
