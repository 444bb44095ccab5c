package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/minio/fpconv-go"
)

func TestParsePrecisions(t *testing.T) {
	got, err := parsePrecisions(" 1, 17,,50 ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 17, 50}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := parsePrecisions("0"); !errors.Is(err, fpconv.ErrPrecision) {
		t.Errorf("got error %v", err)
	}
	if _, err := parsePrecisions("x"); err == nil {
		t.Error("no error for non-numeric precision")
	}
	if _, err := parsePrecisions(","); err == nil {
		t.Error("no error for empty list")
	}
}

func TestCheck(t *testing.T) {
	values := randomValues(5000, 7)
	values = append(values, 5e-324, math.MaxFloat64, -0.1, 1e23)
	precs := []int{1, 5, 17, 25}
	rep := check(values, precs, 3, 100)
	if rep.FailureCount != 0 {
		t.Fatalf("%d failures, first: %+v", rep.FailureCount, rep.Failures)
	}
	if rep.Values != len(values) || rep.RoundTrip.Checked != len(values) {
		t.Errorf("checked %d of %d values", rep.RoundTrip.Checked, rep.Values)
	}
	for i, p := range rep.Precisions {
		if p.Digits != precs[i] || p.Checked != len(values) {
			t.Errorf("precision %d: %+v", precs[i], p)
		}
	}

	// Merging in input order makes the report independent of the worker count.
	if diff := cmp.Diff(rep, check(values, precs, 1, 1000)); diff != "" {
		t.Errorf("report depends on scheduling (-3 workers +1 worker):\n%s", diff)
	}
}

func TestCorpus(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "corpus.bin")
	values := randomValues(2000, 3)
	if err := writeCorpus(name, values); err != nil {
		t.Fatal(err)
	}
	if err := verifyCorpus(logr.Discard(), name); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, b[:len(b)/2], 0o644); err != nil {
		t.Fatal(err)
	}
	if err := verifyCorpus(logr.Discard(), name); err == nil {
		t.Error("truncated corpus verified")
	}
}

func TestReadValues(t *testing.T) {
	name := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(name, []byte("1.5\n0\n\n-2e-300\nNaN\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readValues(name)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1.5, -2e-300, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
