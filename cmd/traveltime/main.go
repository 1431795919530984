package main

import (
	"flag"
	"log"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/vaero/gassist"
)

// This tool computes the time it takes to complete part of an orbit (circular, elliptical
// or hyperbolic) given two angles or two radii. The zero angle is at periapsis and increases
// with the motion. Both [-π, π) and [0, 2π) are accepted.

var (
	ecc, sma, mass float64
	from, to       float64
	rFrom, rTo     float64
	outFrom, outTo bool
	divisions      int
	withRK4        bool
)

func init() {
	flag.Float64Var(&ecc, "e", -1, "orbit eccentricity")
	flag.Float64Var(&sma, "a", 0, "orbit semi-major axis (m)")
	flag.Float64Var(&mass, "mass", 0, "main body mass (kg)")
	flag.Float64Var(&from, "from", 0, "initial angle (rad)")
	flag.Float64Var(&to, "to", 0, "final angle (rad)")
	flag.Float64Var(&rFrom, "rfrom", 0, "initial radius (m), replaces -from")
	flag.Float64Var(&rTo, "rto", 0, "final radius (m), replaces -to")
	flag.BoolVar(&outFrom, "outfrom", true, "radial speed is positive at the initial radius")
	flag.BoolVar(&outTo, "outto", true, "radial speed is positive at the final radius")
	flag.IntVar(&divisions, "divisions", 0, "number of divisions")
	flag.BoolVar(&withRK4, "rk4", false, "also integrate with RK4 as a reference")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "tool", "traveltime")

	conf, err := gassist.ConfigFromEnv()
	if err != nil {
		log.Fatalf("could not load configuration: %s", err)
	}
	tc := conf.Transit
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "e":
			tc.Orbit.Eccentricity = ecc
		case "a":
			tc.Orbit.SemiMajorAxis = sma
		case "mass":
			tc.Orbit.CentralMass = mass
		case "from":
			tc.From = from
		case "to":
			tc.To = to
		case "divisions":
			tc.Divisions = divisions
		}
	})

	// Radii only make sense on non circular orbits.
	if rFrom > 0 && rTo > 0 {
		if tc.From, tc.To, err = gassist.AnglesFromRadii(tc.Orbit, rFrom, outFrom, rTo, outTo); err != nil {
			log.Fatalf("invalid radii: %s", err)
		}
		logger.Log("level", "info", "from(rad)", tc.From, "to(rad)", tc.To, "message", "angles used")
	}

	logger.Log("level", "info", "orbit", tc.Orbit, "divisions", tc.Divisions)
	rslt, err := gassist.Transit(tc.Orbit, tc.From, tc.To, tc.Divisions, conf.Constants.G)
	if err != nil {
		log.Fatalf("integration failed: %s", err)
	}
	if err := gassist.WriteTransitReport(os.Stdout, rslt); err != nil {
		log.Fatal(err)
	}
	if withRK4 {
		ref, err := gassist.TransitRK4(tc.Orbit, tc.From, tc.To, tc.Divisions, conf.Constants.G)
		if err != nil {
			log.Fatalf("RK4 integration failed: %s", err)
		}
		logger.Log("level", "notice", "method", "rk4", "distance(m)", ref.Distance, "time(s)", ref.Time,
			"Δdistance(m)", ref.Distance-rslt.Distance, "Δtime(s)", ref.Time-rslt.Time)
	}
}
