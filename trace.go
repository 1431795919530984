package gassist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	kitlog "github.com/go-kit/kit/log"
)

// Tracer receives every iteration of a search, before its termination is evaluated.
type Tracer interface {
	Trace(rec IterationRecord)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(rec IterationRecord)

// Trace implements the Tracer interface.
func (f TracerFunc) Trace(rec IterationRecord) {
	f(rec)
}

// LogTracer logs each iteration as key/value pairs.
type LogTracer struct {
	logger kitlog.Logger
}

// NewLogTracer returns a tracer logging to the provided logger.
func NewLogTracer(logger kitlog.Logger) *LogTracer {
	return &LogTracer{kitlog.With(logger, "subsys", "bisect")}
}

// Trace implements the Tracer interface.
func (t *LogTracer) Trace(rec IterationRecord) {
	t.logger.Log("level", "debug", "iter", fmt.Sprintf("%d/%d", rec.Index, rec.Expected), "sign", rec.TurnSign,
		"min(m)", rec.Interval.Min, "max(m)", rec.Interval.Max, "radius(m)", rec.Candidate,
		"value", rec.Value, "target", rec.Target, "residual", rec.Residual, "precision", rec.Precision)
}

// CSVTracer writes each iteration as a CSV record. Call Flush once the search is over.
type CSVTracer struct {
	w      *csv.Writer
	header bool
	err    error
}

// NewCSVTracer returns a tracer writing to w.
func NewCSVTracer(w io.Writer) *CSVTracer {
	return &CSVTracer{w: csv.NewWriter(w)}
}

var csvTraceHeader = []string{"iteration", "expected", "sign", "min", "max", "radius", "value", "target", "residual", "precision"}

// Trace implements the Tracer interface.
func (t *CSVTracer) Trace(rec IterationRecord) {
	if t.err != nil {
		return
	}
	if !t.header {
		t.header = true
		if t.err = t.w.Write(csvTraceHeader); t.err != nil {
			return
		}
	}
	t.err = t.w.Write([]string{
		strconv.Itoa(rec.Index),
		strconv.Itoa(rec.Expected),
		strconv.Itoa(rec.TurnSign),
		formatFloat(rec.Interval.Min),
		formatFloat(rec.Interval.Max),
		formatFloat(rec.Candidate),
		formatFloat(rec.Value),
		formatFloat(rec.Target),
		formatFloat(rec.Residual),
		formatFloat(rec.Precision),
	})
}

// Flush flushes the underlying writer and returns the first error encountered.
func (t *CSVTracer) Flush() error {
	t.w.Flush()
	if t.err != nil {
		return t.err
	}
	return t.w.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
