package main

import (
	"bytes"
	"math"
	"sync"

	"github.com/minio/fpconv-go"
)

// maxReportedFailures limits the failures kept in a report.
const maxReportedFailures = 20

type report struct {
	CPU          string           `json:"cpu"`
	Workers      int              `json:"workers"`
	Values       int              `json:"values"`
	Precisions   []precisionStats `json:"precisions"`
	RoundTrip    roundTripStats   `json:"roundTrip"`
	FailureCount int              `json:"failureCount"`
	Failures     []failure        `json:"failures,omitempty"`
}

type precisionStats struct {
	Digits         int `json:"digits"`
	Checked        int `json:"checked"`
	GrisuFallbacks int `json:"grisuFallbacks"`
	Mismatches     int `json:"mismatches"`
}

type roundTripStats struct {
	Checked             int `json:"checked"`
	Failures            int `json:"failures"`
	IdempotenceFailures int `json:"idempotenceFailures"`
}

type failure struct {
	Value  float64 `json:"value"`
	Digits int     `json:"digits"`
	Reason string  `json:"reason"`
}

// batchResult holds the outcome of checking one batch of values.
type batchResult struct {
	precisions []precisionStats
	roundTrip  roundTripStats
	failures   []failure
}

func (r *report) add(b batchResult) {
	for i, p := range b.precisions {
		r.Precisions[i].Checked += p.Checked
		r.Precisions[i].GrisuFallbacks += p.GrisuFallbacks
		r.Precisions[i].Mismatches += p.Mismatches
	}
	r.RoundTrip.Checked += b.roundTrip.Checked
	r.RoundTrip.Failures += b.roundTrip.Failures
	r.RoundTrip.IdempotenceFailures += b.roundTrip.IdempotenceFailures
	r.FailureCount += len(b.failures)
	for _, f := range b.failures {
		if len(r.Failures) < maxReportedFailures {
			r.Failures = append(r.Failures, f)
		}
	}
}

// check runs all checks over values with the given number of workers.
// Batches are merged in input order, so the reported failures do not
// depend on scheduling.
func check(values []float64, precs []int, workers, batch int) report {
	rep := report{Values: len(values), Precisions: make([]precisionStats, len(precs))}
	for i, p := range precs {
		rep.Precisions[i].Digits = p
	}
	if batch <= 0 {
		batch = 4096
	}

	queue := make(chan chan batchResult, workers)
	var done sync.WaitGroup
	done.Add(1)
	go func() {
		// Merge finished batches in order.
		defer done.Done()
		for items := range queue {
			rep.add(<-items)
		}
	}()

	sem := make(chan struct{}, workers)
	for start := 0; start < len(values); start += batch {
		end := start + batch
		if end > len(values) {
			end = len(values)
		}
		result := make(chan batchResult, 1)
		queue <- result
		sem <- struct{}{}
		go func(values []float64) {
			defer func() { <-sem }()
			result <- checkBatch(values, precs)
		}(values[start:end])
	}
	close(queue)
	done.Wait()
	return rep
}

func checkBatch(values []float64, precs []int) batchResult {
	res := batchResult{precisions: make([]precisionStats, len(precs))}
	fail := func(v float64, digits int, reason string) {
		res.failures = append(res.failures, failure{Value: v, Digits: digits, Reason: reason})
	}
	for _, v := range values {
		for i, p := range precs {
			st := &res.precisions[i]
			st.Checked++
			exact := fpconv.Dragon4(v, p)
			fast, ok := fpconv.TryGrisu3(v, p)
			if !ok {
				st.GrisuFallbacks++
				continue
			}
			if fast.Scale != exact.Scale || !bytes.Equal(fast.Digits(), exact.Digits()) {
				st.Mismatches++
				fail(v, p, "grisu3 "+fast.String()+" != dragon4 "+exact.String())
			}
		}

		res.roundTrip.Checked++
		n, err := fpconv.FormatDouble(v, 17)
		if err != nil {
			fail(v, 17, err.Error())
			continue
		}
		if got := n.Float64(); math.Float64bits(got) != math.Float64bits(v) {
			res.roundTrip.Failures++
			fail(v, 17, "round trip via "+n.String())
		}

		// 15 digits survive decimal -> double -> decimal for normal values.
		if math.Abs(v) < 0x1p-1022 {
			continue
		}
		n15, err := fpconv.FormatDouble(v, 15)
		if err != nil {
			fail(v, 15, err.Error())
			continue
		}
		back := n15.Float64()
		if math.IsInf(back, 0) {
			// Rounded past the largest double.
			continue
		}
		again, err := fpconv.FormatDouble(back, 15)
		if err != nil {
			fail(v, 15, err.Error())
			continue
		}
		if again.Scale != n15.Scale || !bytes.Equal(again.Digits(), n15.Digits()) {
			res.roundTrip.IdempotenceFailures++
			fail(v, 15, "reformat "+n15.String()+" -> "+again.String())
		}
	}
	return res
}
