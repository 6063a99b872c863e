package report

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func sampleResult() *Result {
	return &Result{
		Problem:     "sphere",
		Algorithm:   "lde",
		Seed:        7,
		BestX:       []float64{0.01, -0.02},
		BestY:       []float64{0.0005},
		Evaluations: 4000,
		Iterations:  200,
		Stopped:     "evaluations",
		Timestamp:   time.Unix(1700000000, 0).UTC(),
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	res := sampleResult()

	if err := Write(path, res); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Problem != res.Problem || got.Algorithm != res.Algorithm || got.Seed != res.Seed {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, res)
	}
	if len(got.BestX) != len(res.BestX) {
		t.Errorf("BestX length mismatch: got %v, want %v", got.BestX, res.BestX)
	}
}

func TestWriteRejectsInvalidResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	res := &Result{} // missing everything
	if err := Write(path, res); err == nil {
		t.Fatal("expected validation error for an empty Result")
	}
}

func TestReadMissingFileReturnsNotFoundError(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %T, want *NotFoundError", err)
	}
}

func TestValidateCatchesEachRequiredField(t *testing.T) {
	base := sampleResult()

	missingProblem := *base
	missingProblem.Problem = ""
	if err := missingProblem.Validate(); err == nil {
		t.Error("expected error for empty Problem")
	}

	badAlgorithm := *base
	badAlgorithm.Algorithm = "bogus"
	if err := badAlgorithm.Validate(); err == nil {
		t.Error("expected error for invalid Algorithm")
	}

	emptyBestX := *base
	emptyBestX.BestX = nil
	if err := emptyBestX.Validate(); err == nil {
		t.Error("expected error for empty BestX")
	}

	zeroTimestamp := *base
	zeroTimestamp.Timestamp = time.Time{}
	if err := zeroTimestamp.Validate(); err == nil {
		t.Error("expected error for zero Timestamp")
	}
}

func TestTraceWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")

	tw, err := NewTraceWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	entries := []TraceEntry{
		{Iteration: 1, BestY: []float64{10}, Timestamp: time.Unix(1, 0).UTC()},
		{Iteration: 2, BestY: []float64{5}, Timestamp: time.Unix(2, 0).UTC()},
	}
	for _, e := range entries {
		if err := tw.Write(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTrace(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i, e := range got {
		if e.Iteration != entries[i].Iteration {
			t.Errorf("entry %d: iteration = %d, want %d", i, e.Iteration, entries[i].Iteration)
		}
	}
}

func TestReadTraceMissingFile(t *testing.T) {
	_, err := ReadTrace(filepath.Join(t.TempDir(), "missing.jsonl"))
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %T, want *NotFoundError", err)
	}
}
