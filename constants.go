package gassist

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// G is the gravitational constant in N·m²/kg².
	G = 6.67e-11
	// AU is the Earth orbit radius in meters, used as the astronomical unit.
	AU = 1.496e11
)

// Body holds the few constants of a planet (or star) needed by the solvers.
type Body struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // m
	Orbit  float64 // m, heliocentric orbit radius (zero for the Sun)
}

// GM returns μ given the gravitational constant.
func (b Body) GM(g float64) float64 {
	return g * b.Mass
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// PhysicalConstants is the read-only set of constants handed to the solvers.
type PhysicalConstants struct {
	G      float64
	AU     float64
	Bodies map[string]Body
	// Mission radii
	OrbitToSaturn  float64
	OrbitToJupiter float64
	OrbitInSaturn  float64
}

/* Definitions */

// Sun is the primary of every heliocentric orbit.
var Sun = Body{"Sun", 1.989e30, 6.957e8, 0}

// Earth is where the transfer starts, on a 1 AU circular orbit.
var Earth = Body{"Earth", 5.976e24, 6.378e6, AU}

// Jupiter is the flyby body of the transfer.
var Jupiter = Body{"Jupiter", 1.8982e27, 7.1492e7, 5.20 * AU}

// Saturn is the destination of the transfer.
var Saturn = Body{"Saturn", 5.6834e26, 6.033e7, 9.54 * AU}

// DefaultConstants returns the constants used throughout the Earth to Saturn mission.
func DefaultConstants() PhysicalConstants {
	return PhysicalConstants{
		G:  G,
		AU: AU,
		Bodies: map[string]Body{
			"sun":     Sun,
			"earth":   Earth,
			"jupiter": Jupiter,
			"saturn":  Saturn,
		},
		OrbitToSaturn:  10.5 * AU,
		OrbitToJupiter: 5.5 * AU,
		OrbitInSaturn:  4.5e8 + Saturn.Radius,
	}
}

// Body returns the body from its name, case insensitive.
func (c PhysicalConstants) Body(name string) (Body, error) {
	if b, ok := c.Bodies[strings.ToLower(name)]; ok {
		return b, nil
	}
	known := make([]string, 0, len(c.Bodies))
	for k := range c.Bodies {
		known = append(known, k)
	}
	sort.Strings(known)
	return Body{}, fmt.Errorf("undefined body '%s' (known: %s)", name, strings.Join(known, ", "))
}
