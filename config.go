package gassist

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of the configuration file.
const ConfigEnv = "GASSIST_CONFIG"

// Config holds the parameters of both solvers.
type Config struct {
	Constants PhysicalConstants
	Encounter EncounterConfig
	Search    SearchConfig
	Transit   TransitConfig
}

// EncounterConfig defines the flyby to solve for.
type EncounterConfig struct {
	Body, Primary string
	Radial        float64 // m/s, relative to the flyby body
	Angular       float64 // m/s, relative to the flyby body
	ExcessSpeed   float64 // m/s
	Objective     Objective
	Target        float64
}

// SearchConfig defines the bisection parameters.
type SearchConfig struct {
	Min, Max      float64
	Precision     float64
	Resolution    float64 // zero uses the precision
	MaxIterations int     // zero uses the unbounded search
	BothSigns     bool
	Verbose       bool
	Monotonicity  Monotonicity
}

// TransitConfig defines the orbit arc to integrate.
type TransitConfig struct {
	Orbit     OrbitParameters
	From, To  float64 // rad
	Divisions int
}

func setDefaults(v *viper.Viper) {
	c := DefaultConstants()
	v.SetDefault("constants.G", c.G)
	v.SetDefault("constants.AU", c.AU)
	for name, b := range c.Bodies {
		v.SetDefault(fmt.Sprintf("constants.%s.mass", name), b.Mass)
		v.SetDefault(fmt.Sprintf("constants.%s.radius", name), b.Radius)
		v.SetDefault(fmt.Sprintf("constants.%s.orbit", name), b.Orbit)
	}
	v.SetDefault("encounter.body", "jupiter")
	v.SetDefault("encounter.primary", "sun")
	v.SetDefault("encounter.radial", 3565.7818)
	v.SetDefault("encounter.angular", 5609.1811)
	v.SetDefault("encounter.vinf", 5609.1811)
	v.SetDefault("encounter.objective", "speed")
	v.SetDefault("encounter.target", JupiterTargetSpeed)
	v.SetDefault("search.min", Jupiter.Radius)
	v.SetDefault("search.max", 1e16)
	v.SetDefault("search.precision", 0.001)
	v.SetDefault("search.resolution", 0.0)
	v.SetDefault("search.maxIterations", 0)
	v.SetDefault("search.bothSigns", false)
	v.SetDefault("search.verbose", false)
	v.SetDefault("search.decreasing", false)
	v.SetDefault("transit.eccentricity", 0.0)
	v.SetDefault("transit.semiMajorAxis", AU)
	v.SetDefault("transit.centralMass", Sun.Mass)
	v.SetDefault("transit.from", 0.0)
	v.SetDefault("transit.to", 3.14159)
	v.SetDefault("transit.divisions", 1000)
}

// DefaultConfig returns the configuration of the Earth to Saturn mission.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	conf, err := configFromViper(v)
	if err != nil {
		panic(fmt.Errorf("invalid default configuration: %s", err))
	}
	return conf
}

// LoadConfig reads the configuration file `name` (without extension) from dir. Any key
// missing from the file keeps its default value.
func LoadConfig(dir, name string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(name)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/%s: %w", dir, name, err)
	}
	return configFromViper(v)
}

// ConfigFromEnv loads `conf` from the directory in GASSIST_CONFIG, or returns the
// default configuration if the variable is empty.
func ConfigFromEnv() (Config, error) {
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(confPath, "conf")
}

func configFromViper(v *viper.Viper) (conf Config, err error) {
	conf.Constants = DefaultConstants()
	conf.Constants.G = v.GetFloat64("constants.G")
	conf.Constants.AU = v.GetFloat64("constants.AU")
	for name, b := range conf.Constants.Bodies {
		b.Mass = v.GetFloat64(fmt.Sprintf("constants.%s.mass", name))
		b.Radius = v.GetFloat64(fmt.Sprintf("constants.%s.radius", name))
		b.Orbit = v.GetFloat64(fmt.Sprintf("constants.%s.orbit", name))
		conf.Constants.Bodies[name] = b
	}

	conf.Encounter = EncounterConfig{
		Body:        v.GetString("encounter.body"),
		Primary:     v.GetString("encounter.primary"),
		Radial:      v.GetFloat64("encounter.radial"),
		Angular:     v.GetFloat64("encounter.angular"),
		ExcessSpeed: v.GetFloat64("encounter.vinf"),
		Target:      v.GetFloat64("encounter.target"),
	}
	if conf.Encounter.Objective, err = ObjectiveFromString(v.GetString("encounter.objective")); err != nil {
		return
	}

	conf.Search = SearchConfig{
		Min:           v.GetFloat64("search.min"),
		Max:           v.GetFloat64("search.max"),
		Precision:     v.GetFloat64("search.precision"),
		Resolution:    v.GetFloat64("search.resolution"),
		MaxIterations: v.GetInt("search.maxIterations"),
		BothSigns:     v.GetBool("search.bothSigns"),
		Verbose:       v.GetBool("search.verbose"),
	}
	if v.GetBool("search.decreasing") {
		conf.Search.Monotonicity = Decreasing
	}

	conf.Transit = TransitConfig{
		Orbit: OrbitParameters{
			Eccentricity:  v.GetFloat64("transit.eccentricity"),
			SemiMajorAxis: v.GetFloat64("transit.semiMajorAxis"),
			CentralMass:   v.GetFloat64("transit.centralMass"),
		},
		From:      v.GetFloat64("transit.from"),
		To:        v.GetFloat64("transit.to"),
		Divisions: v.GetInt("transit.divisions"),
	}
	return
}

// NewEncounter returns the encounter of this configuration.
func (c Config) NewEncounter() (Encounter, error) {
	body, err := c.Constants.Body(c.Encounter.Body)
	if err != nil {
		return Encounter{}, err
	}
	primary, err := c.Constants.Body(c.Encounter.Primary)
	if err != nil {
		return Encounter{}, err
	}
	enc := NewEncounter(c.Encounter.Radial, c.Encounter.Angular, c.Encounter.ExcessSpeed, body, primary, c.Constants)
	return enc, enc.Validate()
}

// NewSolver returns the solver of this configuration.
func (c Config) NewSolver() (Solver, error) {
	enc, err := c.NewEncounter()
	if err != nil {
		return Solver{}, err
	}
	return Solver{
		Encounter:    enc,
		Objective:    c.Encounter.Objective,
		Target:       c.Encounter.Target,
		Precision:    c.Search.Precision,
		Resolution:   c.Search.Resolution,
		Verbose:      c.Search.Verbose,
		Monotonicity: c.Search.Monotonicity,
	}, nil
}

// Interval returns the search interval of this configuration.
func (c Config) Interval() SearchInterval {
	return SearchInterval{c.Search.Min, c.Search.Max}
}
