package gassist

import (
	"fmt"
	"io"
)

// WriteEncounter writes the breakdown of an encounter outcome. Distances of the
// heliocentric orbit are also given in the provided unit (e.g. AU).
func WriteEncounter(w io.Writer, o EncounterOutcome, unit float64) error {
	_, err := fmt.Fprintf(w, "turn sign: \t%+d\ndelta angle: \t%.4f deg\nradial speed: \t%.4f m/s\nangular speed: \t%.4f m/s\ntotal speed: \t%.4f m/s\n",
		o.TurnSign, Rad2deg(o.TurnAngle), o.Radial, o.Angular, o.Speed)
	if err != nil || o.Apoapsis == 0 {
		return err
	}
	if o.Escape {
		_, err = fmt.Fprint(w, "apoapsis: \tnone (escape trajectory)\n")
		return err
	}
	_, err = fmt.Fprintf(w, "semi major axis: \t%.4f AU\neccentricity: \t%.6f\napoapsis: \t%.4f AU\n",
		o.SemiMajorAxis/unit, o.OrbitEccentricity, o.Apoapsis/unit)
	return err
}

// WriteSearchReport writes the result of a search. On failure, the closest radius found
// is reported along with the reason.
func WriteSearchReport(w io.Writer, r SearchResult, bodyRadius, unit float64) error {
	header := "\n\nCOMPUTATION SUCCESSFUL\n"
	if !r.Converged {
		header = fmt.Sprintf("\n\nCOMPUTATION FAILED\nreason: \t%s\nclosest radius found below.\n", r.Status)
	}
	if _, err := fmt.Fprintf(w, "%sradius: \t%.4f m\nheight: \t%.4f m\niterations: \t%d / %d expected\n",
		header, r.Radius, r.Outcome.Height(bodyRadius), r.Iterations, r.Expected); err != nil {
		return err
	}
	if err := WriteEncounter(w, r.Outcome, unit); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "target %s: \t%.4f %s\n", r.Objective, r.Target, r.Objective.Unit())
	return err
}

// WriteTransitReport writes the distance and time travelled.
func WriteTransitReport(w io.Writer, r IntegrationResult) error {
	_, err := fmt.Fprintf(w, "\n\n\nRESULTS:\n\ndistance: \t%.4f m\ntime: \t\t%.4f s\n\n", r.Distance, r.Time)
	return err
}
