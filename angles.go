package gassist

import "math"

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// NormalizeAngle returns the equivalent of θ in [-π, π).
// Angles already in range are returned untouched.
func NormalizeAngle(θ float64) float64 {
	if θ >= -math.Pi && θ < math.Pi {
		return θ
	}
	θ = math.Mod(θ+math.Pi, twoPi)
	if θ < 0 {
		θ += twoPi
	}
	θ -= math.Pi
	// Rounding of the modulo may land on the open end.
	if θ >= math.Pi {
		θ -= twoPi
	} else if θ < -math.Pi {
		θ += twoPi
	}
	return θ
}

// AngularSeparation returns the separation between a1 and a2, both normalized first.
// If clockwise is set, it is the angle travelled from a1 to a2 in the direction of
// motion, otherwise the smaller of both arcs.
func AngularSeparation(a1, a2 float64, clockwise bool) float64 {
	a1 = NormalizeAngle(a1)
	a2 = NormalizeAngle(a2)
	swapped := false
	if a1 > a2 {
		a1, a2 = a2, a1
		swapped = true
	}
	Δ := a2 - a1
	if clockwise {
		if swapped {
			return twoPi - Δ
		}
		return Δ
	}
	if Δ > math.Pi {
		return twoPi - Δ
	}
	return Δ
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}
