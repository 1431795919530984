package gassist

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
)

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	s := jupiterSolver()
	s.Tracer = NewLogTracer(kitlog.NewLogfmtLogger(&buf))
	rslt, err := s.Solve(plusInterval, 1)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != rslt.Iterations+1 {
		t.Fatalf("%d lines logged for %d iterations", len(lines), rslt.Iterations)
	}
	for _, exp := range []string{"subsys=bisect", "level=debug", "iter=0/43", "sign=1"} {
		if !strings.Contains(lines[0], exp) {
			t.Fatalf("`%s` not in `%s`", exp, lines[0])
		}
	}
}

func TestCSVTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewCSVTracer(&buf)
	s := jupiterSolver()
	s.Verbose = true
	s.Tracer = tracer
	rslt, err := s.Solve(plusInterval, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err = tracer.Flush(); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(rslt.Trace)+1 {
		t.Fatalf("%d records for %d iterations", len(records), len(rslt.Trace))
	}
	if records[0][0] != "iteration" || records[1][0] != "0" {
		t.Fatalf("unexpected records %v", records[:2])
	}
	if last := records[len(records)-1]; last[5] != formatFloat(rslt.Radius) {
		t.Fatalf("last radius got: %s\nexp:%s", last[5], formatFloat(rslt.Radius))
	}
}
