// Command fpcheck cross-checks the Grisu3 and Dragon4 digit generators and
// the decimal to double conversion on random doubles.
//
// Usage:
//
//	fpcheck [flags]
//
// Numbers can also be read from a newline delimited file with -input,
// or from a serialized corpus written by an earlier run with -corpus.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/cpuid/v2"

	"github.com/minio/fpconv-go"
)

var (
	count     = flag.Int("n", 100000, "number of random doubles to check")
	precs     = flag.String("prec", "1,2,5,10,15,16,17,20,25,50", "comma separated digit counts to check")
	seed      = flag.Int64("seed", 1, "random seed")
	workers   = flag.Int("workers", 0, "number of workers, 0 uses all logical cores")
	batch     = flag.Int("batch", 4096, "values per work item")
	jsonOut   = flag.Bool("json", false, "write the report as JSON to stdout")
	input     = flag.String("input", "", "check newline delimited decimal numbers from this file instead of random values")
	corpusOut = flag.String("corpus", "", "write the checked values as a serialized 17 digit corpus to this file")
	verifyIn  = flag.String("verify", "", "verify a serialized corpus instead of generating values")
	verbosity = flag.Int("v", 0, "log verbosity")
)

func main() {
	flag.Parse()
	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	if err := run(logger); err != nil {
		logger.Error(err, "check failed")
		os.Exit(1)
	}
}

func run(logger logr.Logger) error {
	prec, err := parsePrecisions(*precs)
	if err != nil {
		return err
	}
	w := *workers
	if w <= 0 {
		w = cpuid.CPU.LogicalCores
	}
	if w <= 0 {
		w = runtime.NumCPU()
	}
	logger.Info("starting", "cpu", cpuid.CPU.BrandName, "workers", w, "precisions", prec)
	logger.V(1).Info("cpu features", "features", strings.Join(cpuid.CPU.FeatureSet(), ","))

	var values []float64
	switch {
	case *verifyIn != "":
		return verifyCorpus(logger, *verifyIn)
	case *input != "":
		values, err = readValues(*input)
		if err != nil {
			return err
		}
	default:
		values = randomValues(*count, *seed)
	}
	logger.V(1).Info("values ready", "count", len(values))

	rep := check(values, prec, w, *batch)
	rep.CPU = cpuid.CPU.BrandName
	rep.Workers = w

	if *corpusOut != "" {
		if err := writeCorpus(*corpusOut, values); err != nil {
			return err
		}
		logger.Info("corpus written", "file", *corpusOut, "numbers", len(values))
	}

	if *jsonOut {
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	}
	for _, p := range rep.Precisions {
		logger.Info("precision", "digits", p.Digits, "checked", p.Checked,
			"grisuFallbacks", p.GrisuFallbacks, "mismatches", p.Mismatches)
	}
	logger.Info("round trip", "checked", rep.RoundTrip.Checked, "failures", rep.RoundTrip.Failures,
		"idempotenceFailures", rep.RoundTrip.IdempotenceFailures)
	for _, f := range rep.Failures {
		logger.Info("failure", "value", f.Value, "digits", f.Digits, "reason", f.Reason)
	}
	if len(rep.Failures) > 0 || rep.FailureCount > 0 {
		return fmt.Errorf("%d failures", rep.FailureCount)
	}
	return nil
}

func parsePrecisions(s string) ([]int, error) {
	var res []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		p, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("precision %q: %w", f, err)
		}
		if p < 1 || p > fpconv.MaxDigits {
			return nil, fmt.Errorf("precision %d: %w", p, fpconv.ErrPrecision)
		}
		res = append(res, p)
	}
	if len(res) == 0 {
		return nil, errors.New("no precisions given")
	}
	return res, nil
}

// randomValues returns n finite, non-zero doubles with uniformly random bits.
func randomValues(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, 0, n)
	for len(values) < n {
		v := math.Float64frombits(rng.Uint64())
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	return values
}

func readValues(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res := make(chan fpconv.Stream, 4)
	fpconv.ParseNDStream(f, res, nil)
	var values []float64
	for r := range res {
		if r.Error != nil {
			if r.Error == io.EOF {
				break
			}
			return nil, fmt.Errorf("%s: %w", name, r.Error)
		}
		for _, v := range r.Values {
			if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			values = append(values, v)
		}
	}
	return values, nil
}
