package gassist

import (
	"math"

	"github.com/ChristopherRabotin/ode"
)

// arcIntegrable is an ode.Integrable of the time and distance travelled along an orbit.
// The state is [ν, t, s]; the independent variable is the angle travelled.
type arcIntegrable struct {
	orbit     OrbitParameters
	p, h      float64
	state     []float64
	steps     int
	divisions int
	err       error
}

// GetState implements the ode.Integrable interface.
func (a *arcIntegrable) GetState() []float64 {
	s := make([]float64, len(a.state))
	copy(s, a.state)
	return s
}

// SetState implements the ode.Integrable interface.
func (a *arcIntegrable) SetState(t float64, s []float64) {
	a.state = s
	a.steps++
}

// Stop implements the ode.Integrable interface.
func (a *arcIntegrable) Stop(t float64) bool {
	return a.err != nil || a.steps >= a.divisions
}

// Func implements the ode.Integrable interface.
func (a *arcIntegrable) Func(t float64, f []float64) []float64 {
	ν := f[0]
	r, err := a.orbit.Radius(ν)
	if err != nil {
		if a.err == nil {
			a.err = err
		}
		return []float64{0, 0, 0}
	}
	drdν := r * r * a.orbit.Eccentricity * math.Sin(ν) / a.p
	return []float64{1, r * r / a.h, math.Sqrt(r*r + drdν*drdν)}
}

// TransitRK4 integrates the same arc as Transit with a fourth order Runge Kutta over the
// true anomaly, using dt/dν = r²/h and ds/dν = sqrt(r² + (dr/dν)²).
func TransitRK4(orbit OrbitParameters, from, to float64, divisions int, g float64) (IntegrationResult, error) {
	from, _, Δθ, err := transitStep(orbit, from, to, divisions)
	if err != nil {
		return IntegrationResult{}, err
	}
	rslt := IntegrationResult{Step: Δθ}
	if Δθ == 0 {
		return rslt, nil
	}
	if _, err = orbit.Radius(from); err != nil {
		return rslt, err
	}
	p := orbit.SemiParameter()
	arc := &arcIntegrable{orbit: orbit, p: p, h: math.Sqrt(orbit.GM(g) * p), state: []float64{from, 0, 0}, divisions: divisions}
	ode.NewRK4(0, Δθ, arc).Solve() // Blocking.
	if arc.err != nil {
		return rslt, arc.err
	}
	rslt.Time = arc.state[1]
	rslt.Distance = arc.state[2]
	rslt.Steps = arc.steps
	return rslt, nil
}
