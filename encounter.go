package gassist

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Objective defines which scalar of the post-encounter state is targeted.
type Objective uint8

const (
	// Speed targets the heliocentric speed after the encounter.
	Speed Objective = iota + 1
	// Apoapsis targets the apoapsis of the heliocentric orbit after the encounter.
	Apoapsis
)

func (o Objective) String() string {
	switch o {
	case Speed:
		return "speed"
	case Apoapsis:
		return "apoapsis"
	}
	return "unknown"
}

// Unit returns the unit of the objective value.
func (o Objective) Unit() string {
	if o == Apoapsis {
		return "m"
	}
	return "m/s"
}

// ObjectiveFromString returns the objective from its name.
func ObjectiveFromString(name string) (Objective, error) {
	switch name {
	case "speed", "":
		return Speed, nil
	case "apoapsis":
		return Apoapsis, nil
	}
	return 0, invalidf("unknown objective '%s'", name)
}

// Encounter defines the fixed geometry of a flyby at closest approach.
// Incoming speeds are relative to the flyby body and expressed in the orbital plane.
type Encounter struct {
	IncomingRadial  float64 // m/s
	IncomingAngular float64 // m/s
	ExcessSpeed     float64 // v∞ in m/s
	BodyGM          float64 // μ of the flyby body
	PrimaryGM       float64 // μ of the body orbited by the flyby body
	BodyOrbitRadius float64 // m
	BodyRadius      float64 // m
}

// NewEncounter returns the encounter of a flyby of body around primary.
func NewEncounter(vR, vAng, vInf float64, body, primary Body, c PhysicalConstants) Encounter {
	return Encounter{
		IncomingRadial:  vR,
		IncomingAngular: vAng,
		ExcessSpeed:     vInf,
		BodyGM:          body.GM(c.G),
		PrimaryGM:       primary.GM(c.G),
		BodyOrbitRadius: body.Orbit,
		BodyRadius:      body.Radius,
	}
}

// JupiterEncounter is the Jupiter flyby of the Earth to Saturn transfer.
func JupiterEncounter(c PhysicalConstants) Encounter {
	jupiter, sun := c.Bodies["jupiter"], c.Bodies["sun"]
	return NewEncounter(3565.7818, 5609.1811, 5609.1811, jupiter, sun, c)
}

// JupiterTargetSpeed is the heliocentric speed needed after the Jupiter flyby to reach Saturn.
const JupiterTargetSpeed = 16019.4180

// Validate checks the encounter can be evaluated.
func (enc Encounter) Validate() error {
	if enc.BodyGM <= 0 || enc.PrimaryGM <= 0 {
		return invalidf("gravitational parameters must be positive")
	}
	if enc.BodyOrbitRadius <= 0 {
		return invalidf("orbit radius of the flyby body must be positive")
	}
	return nil
}

// EncounterOutcome is the state after the flyby, relative to the primary.
type EncounterOutcome struct {
	Radius       float64 // periapsis radius
	TurnSign     int
	Eccentricity float64 // of the flyby hyperbola
	TurnAngle    float64 // signed, in radians
	Radial       float64 // m/s
	Angular      float64 // m/s, includes the speed of the flyby body
	Speed        float64 // m/s
	// Heliocentric orbit after the flyby, only set for the Apoapsis objective.
	// An escape trajectory has no semi major axis and an infinite apoapsis.
	Escape            bool
	SemiMajorAxis     float64
	OrbitEccentricity float64
	Apoapsis          float64
	Value             float64 // the targeted scalar
}

// Height returns the altitude of the periapsis above the surface.
func (o EncounterOutcome) Height(bodyRadius float64) float64 {
	return o.Radius - bodyRadius
}

// rotate rotates the 2D vector v by δ in the orbital plane.
func rotate(δ float64, v []float64) []float64 {
	s, c := math.Sincos(δ)
	m := mat64.NewDense(2, 2, []float64{c, -s, s, c})
	var rVec mat64.Vector
	rVec.MulVec(m, mat64.NewVector(2, v))
	return []float64{rVec.At(0, 0), rVec.At(1, 0)}
}

// Evaluate computes the post-encounter state for the provided periapsis radius and turn sign.
func (enc Encounter) Evaluate(rP float64, σ int, obj Objective) (o EncounterOutcome, err error) {
	if rP <= 0 || math.IsNaN(rP) {
		return o, invalidf("periapsis radius must be positive, got %g", rP)
	}
	if σ != 1 && σ != -1 {
		return o, invalidf("turn sign must be +1 or -1, got %d", σ)
	}
	o.Radius = rP
	o.TurnSign = σ
	o.Eccentricity = HyperbolicEccentricity(enc.ExcessSpeed, rP, enc.BodyGM)
	δ, err := TurnAngle(o.Eccentricity)
	if err != nil {
		return o, err
	}
	o.TurnAngle = float64(σ) * δ
	bodySpeed, err := CircularSpeed(enc.PrimaryGM, enc.BodyOrbitRadius)
	if err != nil {
		return o, err
	}
	V := rotate(o.TurnAngle, []float64{enc.IncomingRadial, enc.IncomingAngular})
	o.Radial = V[0]
	o.Angular = V[1] + bodySpeed
	o.Speed = math.Sqrt(o.Radial*o.Radial + o.Angular*o.Angular)
	switch obj {
	case Speed:
		o.Value = o.Speed
	case Apoapsis:
		if err = enc.apoapsis(&o); err != nil {
			return o, err
		}
		o.Value = o.Apoapsis
	default:
		return o, invalidf("unknown objective %d", obj)
	}
	return o, nil
}

// apoapsis sets the heliocentric orbit of the outcome.
func (enc Encounter) apoapsis(o *EncounterOutcome) error {
	inv := 2/enc.BodyOrbitRadius - o.Speed*o.Speed/enc.PrimaryGM
	if math.IsNaN(inv) {
		return domainErr("semi major axis", inv)
	}
	if inv <= 0 {
		o.Escape = true
		o.Apoapsis = math.Inf(1)
		return nil
	}
	o.SemiMajorAxis = 1 / inv
	h := o.Angular * enc.BodyOrbitRadius
	e2 := 1 - h*h/(enc.PrimaryGM*o.SemiMajorAxis)
	if e2 < 0 {
		return domainErr("orbit eccentricity", e2)
	}
	o.OrbitEccentricity = math.Sqrt(e2)
	o.Apoapsis = o.SemiMajorAxis * (1 + o.OrbitEccentricity)
	return nil
}
