package gassist

import (
	"fmt"
	"math"
)

// safetyMargin is added to the expected iteration count to bound unbounded searches.
const safetyMargin = 16

// SearchStatus is the outcome of a search.
type SearchStatus uint8

const (
	// StatusConverged means the target was reached within the precision.
	StatusConverged SearchStatus = iota + 1
	// StatusNoRoot means the interval shrank below the precision without reaching the target.
	StatusNoRoot
	// StatusIterationCap means the explicit iteration cap was exhausted.
	StatusIterationCap
	// StatusSafetyBound means an uncapped search exceeded its safety bound.
	StatusSafetyBound
)

func (s SearchStatus) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusNoRoot:
		return "no root in interval at this precision"
	case StatusIterationCap:
		return "iteration cap exhausted"
	case StatusSafetyBound:
		return "exceeded safety bound"
	}
	return "unknown"
}

// Monotonicity is the assumed variation of the objective with the periapsis radius.
type Monotonicity uint8

const (
	// Increasing assumes the objective grows with the radius.
	Increasing Monotonicity = iota
	// Decreasing assumes the objective shrinks as the radius grows.
	Decreasing
)

// SearchInterval is the periapsis radius interval being searched.
type SearchInterval struct {
	Min, Max float64
}

// Width returns the width of the interval.
func (i SearchInterval) Width() float64 {
	return i.Max - i.Min
}

// Mid returns the middle of the interval.
func (i SearchInterval) Mid() float64 {
	return (i.Max-i.Min)/2 + i.Min
}

func (i SearchInterval) String() string {
	return fmt.Sprintf("[%.4f m, %.4f m]", i.Min, i.Max)
}

// IterationRecord is a snapshot of one bisection iteration.
type IterationRecord struct {
	Index     int
	Expected  int
	TurnSign  int
	Interval  SearchInterval
	Candidate float64
	Value     float64
	Target    float64
	Residual  float64
	Precision float64
}

// SearchResult is the result of a search. When the search did not converge, Radius is
// the last evaluated radius, i.e. the closest approximation found, except when no root
// exists: it is then the interval endpoint beyond which the target lies.
type SearchResult struct {
	Radius     float64
	Converged  bool
	Status     SearchStatus
	Iterations int // number of times the interval was narrowed
	Expected   int
	TurnSign   int
	Target     float64
	Objective  Objective
	Outcome    EncounterOutcome
	Trace      []IterationRecord
}

// Residual returns the distance between the final value and the target.
func (r SearchResult) Residual() float64 {
	return math.Abs(r.Outcome.Value - r.Target)
}

// ExpectedIterations returns ⌈log2(width/precision)⌉, the number of halvings for the
// interval to shrink below the precision.
func ExpectedIterations(interval SearchInterval, precision float64) int {
	n := math.Ceil(math.Log2(interval.Width() / precision))
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Solver searches for the periapsis radius at which the encounter reaches the target.
type Solver struct {
	Encounter Encounter
	Objective Objective
	Target    float64
	Precision float64
	// Resolution is the interval width below which no root is deemed to exist.
	// Defaults to Precision.
	Resolution float64
	// Verbose stores every iteration in the result trace.
	Verbose bool
	// Tracer, if set, receives each iteration as it happens.
	Tracer Tracer
	// MaxIterations is the safety bound of Solve; defaults to the expected count plus a margin.
	MaxIterations int
	Monotonicity  Monotonicity
}

func (s Solver) validate(interval SearchInterval) error {
	if !(s.Precision > 0) {
		return invalidf("precision must be positive, got %g", s.Precision)
	}
	if !(interval.Min > 0) || math.IsInf(interval.Max, 0) {
		return invalidf("interval %s must be positive and finite", interval)
	}
	if !(interval.Min < interval.Max) {
		return invalidf("interval min (%g) must be less than max (%g)", interval.Min, interval.Max)
	}
	if s.Objective != Speed && s.Objective != Apoapsis {
		return invalidf("unknown objective %d", s.Objective)
	}
	if s.Resolution < 0 {
		return invalidf("resolution must be positive, got %g", s.Resolution)
	}
	return s.Encounter.Validate()
}

func (s Solver) resolution() float64 {
	if s.Resolution > 0 {
		return s.Resolution
	}
	return s.Precision
}

// Solve bisects the interval until the target is reached or the interval is smaller
// than the precision. The iteration count is only bounded by MaxIterations.
func (s Solver) Solve(interval SearchInterval, σ int) (SearchResult, error) {
	if err := s.validate(interval); err != nil {
		return SearchResult{}, err
	}
	guard := s.MaxIterations
	if guard <= 0 {
		guard = ExpectedIterations(interval, s.resolution()) + safetyMargin
	}
	return s.bisect(interval, σ, guard, StatusSafetyBound)
}

// SolveCapped is the same bisection as Solve but stops after maxIter iterations.
func (s Solver) SolveCapped(interval SearchInterval, σ, maxIter int) (SearchResult, error) {
	if maxIter <= 0 {
		return SearchResult{}, invalidf("iteration cap must be positive, got %d", maxIter)
	}
	if err := s.validate(interval); err != nil {
		return SearchResult{}, err
	}
	return s.bisect(interval, σ, maxIter, StatusIterationCap)
}

// SolveBothSigns runs a capped search for each turn direction, +1 first.
func (s Solver) SolveBothSigns(interval SearchInterval, maxIter int) ([2]SearchResult, error) {
	var rslts [2]SearchResult
	for i, σ := range []int{1, -1} {
		rslt, err := s.SolveCapped(interval, σ, maxIter)
		if err != nil {
			return rslts, fmt.Errorf("turn sign %+d: %w", σ, err)
		}
		rslts[i] = rslt
	}
	return rslts, nil
}

func (s Solver) bisect(interval SearchInterval, σ, limit int, exhausted SearchStatus) (SearchResult, error) {
	rslt := SearchResult{
		Expected:  ExpectedIterations(interval, s.resolution()),
		TurnSign:  σ,
		Target:    s.Target,
		Objective: s.Objective,
	}
	resolution := s.resolution()
	for iter := 0; ; iter++ {
		if iter >= limit {
			rslt.Status = exhausted
			rslt.Iterations = iter
			return rslt, nil
		}
		r := interval.Mid()
		out, err := s.Encounter.Evaluate(r, σ, s.Objective)
		if err != nil {
			return rslt, fmt.Errorf("iteration %d at radius %g m: %w", iter, r, err)
		}
		residual := math.Abs(out.Value - s.Target)
		rslt.Radius = r
		rslt.Outcome = out
		rslt.Iterations = iter
		if s.Verbose || s.Tracer != nil {
			rec := IterationRecord{iter, rslt.Expected, σ, interval, r, out.Value, s.Target, residual, s.Precision}
			if s.Verbose {
				rslt.Trace = append(rslt.Trace, rec)
			}
			if s.Tracer != nil {
				s.Tracer.Trace(rec)
			}
		}
		if residual <= s.Precision {
			rslt.Converged = true
			rslt.Status = StatusConverged
			return rslt, nil
		}
		// The root is above the candidate when the value is too low on an increasing function.
		// An escape (infinite apoapsis) is above any target.
		up := (out.Value < s.Target) == (s.Monotonicity == Increasing)
		if math.Abs(interval.Max-interval.Min) < resolution {
			rslt.Status = StatusNoRoot
			return s.closestEndpoint(rslt, interval, up)
		}
		if up {
			interval.Min = r
		} else {
			interval.Max = r
		}
	}
}

// closestEndpoint reports the bound of the exhausted interval the target lies beyond.
func (s Solver) closestEndpoint(rslt SearchResult, interval SearchInterval, up bool) (SearchResult, error) {
	r := interval.Min
	if up {
		r = interval.Max
	}
	out, err := s.Encounter.Evaluate(r, rslt.TurnSign, s.Objective)
	if err != nil {
		return rslt, fmt.Errorf("endpoint at radius %g m: %w", r, err)
	}
	rslt.Radius = r
	rslt.Outcome = out
	return rslt, nil
}

// CheckMonotonic samples the objective over the interval and returns whether it follows
// the solver's monotonicity within the precision.
func (s Solver) CheckMonotonic(interval SearchInterval, σ, samples int) (bool, error) {
	if samples < 2 {
		return false, invalidf("at least two samples are needed, got %d", samples)
	}
	if err := s.validate(interval); err != nil {
		return false, err
	}
	step := interval.Width() / float64(samples-1)
	prev := math.NaN()
	for i := 0; i < samples; i++ {
		r := interval.Min + float64(i)*step
		if i == samples-1 {
			r = interval.Max
		}
		out, err := s.Encounter.Evaluate(r, σ, s.Objective)
		if err != nil {
			return false, err
		}
		if !math.IsNaN(prev) {
			Δ := out.Value - prev
			if s.Monotonicity == Decreasing {
				Δ = -Δ
			}
			if Δ < -s.Precision {
				return false, nil
			}
		}
		prev = out.Value
	}
	return true, nil
}
