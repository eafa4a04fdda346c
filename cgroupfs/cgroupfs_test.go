package cgroupfs

import (
	"path/filepath"
	"testing"

	"github.com/oracle/adaptived/model"
)

func TestGetSetLLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.high")

	if err := SetLL(path, 1536000, SetFlagValidate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := GetLL(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1536000 {
		t.Fatalf("GetLL = %d, want 1536000", got)
	}
}

func TestGetLLMissingFile(t *testing.T) {
	_, err := GetLL(filepath.Join(t.TempDir(), "does-not-exist"))
	if model.CodeOf(err) != model.CodeIOFailure {
		t.Fatalf("expected IOFailure reading a missing file, got %v", err)
	}
}

func TestGetStringSetString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.max")

	if err := SetString(path, "max"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := GetString(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "max" {
		t.Fatalf("GetString = %q, want %q", got, "max")
	}
}

func TestParsePSILine(t *testing.T) {
	pl, isFull, ok := parsePSILine("some avg10=1.50 avg60=2.25 avg300=0.00 total=9000")
	if !ok || isFull {
		t.Fatalf("expected a parsed 'some' line, got ok=%v isFull=%v", ok, isFull)
	}
	if pl.Avg10 != 1.50 || pl.Avg60 != 2.25 || pl.Total != 9000 {
		t.Fatalf("unexpected parsed line: %+v", pl)
	}

	_, isFull, ok = parsePSILine("full avg10=0.00 avg60=0.00 avg300=0.00 total=0")
	if !ok || !isFull {
		t.Fatalf("expected a parsed 'full' line, got ok=%v isFull=%v", ok, isFull)
	}
}
