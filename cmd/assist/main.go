package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/vaero/gassist"
)

// This tool searches for the periapsis radius of the Jupiter flyby needed to reach Saturn.
// Every flag overrides the scenario (or the defaults if no scenario is given).

const defaultScenario = "~~unset~~"

var (
	scenario  string
	minR      float64
	maxR      float64
	precision float64
	verbose   bool
	both      bool
	capIter   int
	apoapsis  bool
	csvPath   string
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file (defaults to $GASSIST_CONFIG/conf.toml)")
	flag.Float64Var(&minR, "min", 0, "minimum value for the radius (m)")
	flag.Float64Var(&maxR, "max", 0, "maximum value for the radius (m)")
	flag.Float64Var(&precision, "precision", 0, "precision of the target (m/s or m)")
	flag.BoolVar(&verbose, "verbose", false, "output computations")
	flag.BoolVar(&both, "both", false, "search with both turn directions")
	flag.IntVar(&capIter, "cap", 0, "maximum number of iterations per search (required with -both)")
	flag.BoolVar(&apoapsis, "apoapsis", false, "target the apoapsis after the encounter instead of the speed")
	flag.StringVar(&csvPath, "csv", "", "write the iterations to this CSV file")
}

func loadConfig() (gassist.Config, error) {
	if scenario == defaultScenario {
		return gassist.ConfigFromEnv()
	}
	name := strings.TrimSuffix(filepath.Base(scenario), filepath.Ext(scenario))
	return gassist.LoadConfig(filepath.Dir(scenario), name)
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "tool", "assist")

	conf, err := loadConfig()
	if err != nil {
		log.Fatalf("could not load configuration: %s", err)
	}
	precisionSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min":
			conf.Search.Min = minR
		case "max":
			conf.Search.Max = maxR
		case "precision":
			conf.Search.Precision = precision
			precisionSet = true
		case "verbose":
			conf.Search.Verbose = verbose
		case "both":
			conf.Search.BothSigns = both
		case "cap":
			conf.Search.MaxIterations = capIter
		case "apoapsis":
			if apoapsis {
				conf.Encounter.Objective = gassist.Apoapsis
				conf.Encounter.Target = conf.Constants.OrbitToSaturn
			}
		}
	})
	if apoapsis && !precisionSet {
		// The speed precision is meaningless for distances: 1 km on the apoapsis, 1 mm on the radius.
		conf.Search.Resolution = conf.Search.Precision
		conf.Search.Precision = 1e3
	}

	solver, err := conf.NewSolver()
	if err != nil {
		log.Fatalf("invalid encounter: %s", err)
	}
	// The trace is streamed rather than kept in the result.
	solver.Verbose = false
	var tracers []gassist.Tracer
	if conf.Search.Verbose {
		tracers = append(tracers, gassist.NewLogTracer(logger))
	}
	var csvTracer *gassist.CSVTracer
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		csvTracer = gassist.NewCSVTracer(f)
		tracers = append(tracers, csvTracer)
	}
	if len(tracers) > 0 {
		solver.Tracer = gassist.TracerFunc(func(rec gassist.IterationRecord) {
			for _, t := range tracers {
				t.Trace(rec)
			}
		})
	}

	interval := conf.Interval()
	resolution := solver.Resolution
	if resolution <= 0 {
		resolution = solver.Precision
	}
	logger.Log("level", "info", "objective", solver.Objective, "target", solver.Target, "interval", interval,
		"precision", solver.Precision, "expected", gassist.ExpectedIterations(interval, resolution))

	var rslts []gassist.SearchResult
	switch {
	case conf.Search.BothSigns:
		if conf.Search.MaxIterations <= 0 {
			log.Fatal("searching both turn directions requires an iteration cap (-cap)")
		}
		pair, err := solver.SolveBothSigns(interval, conf.Search.MaxIterations)
		if err != nil {
			log.Fatalf("search failed: %s", err)
		}
		rslts = pair[:]
	case conf.Search.MaxIterations > 0:
		rslt, err := solver.SolveCapped(interval, 1, conf.Search.MaxIterations)
		if err != nil {
			log.Fatalf("search failed: %s", err)
		}
		rslts = append(rslts, rslt)
	default:
		rslt, err := solver.Solve(interval, 1)
		if err != nil {
			log.Fatalf("search failed: %s", err)
		}
		rslts = append(rslts, rslt)
	}
	if csvTracer != nil {
		if err := csvTracer.Flush(); err != nil {
			log.Fatalf("could not write %s: %s", csvPath, err)
		}
	}

	body, _ := conf.Constants.Body(conf.Encounter.Body)
	for _, rslt := range rslts {
		logger.Log("level", "notice", "sign", rslt.TurnSign, "status", rslt.Status, "radius(m)", rslt.Radius, "iterations", rslt.Iterations)
		if err := gassist.WriteSearchReport(os.Stdout, rslt, body.Radius, conf.Constants.AU); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println()
}
