package main

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/go-logr/logr"

	"github.com/minio/fpconv-go"
)

// writeCorpus formats values with 17 digits and writes them serialized to name.
func writeCorpus(name string, values []float64) error {
	nums := make([]fpconv.Number, len(values))
	for i, v := range values {
		if err := nums[i].SetFloat64(v, 17); err != nil {
			return err
		}
	}
	s := fpconv.NewSerializer()
	s.CompressMode(fpconv.CompressBest)
	return os.WriteFile(name, s.Serialize(nil, nums), 0o644)
}

// verifyCorpus reads a serialized corpus and checks that every number
// converts to a double that formats back to the same digits.
func verifyCorpus(logger logr.Logger, name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	nums, err := fpconv.NewSerializer().Deserialize(b, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	failures := 0
	for i := range nums {
		n := &nums[i]
		if n.IsNaN() || n.IsInf() || n.IsZero() {
			continue
		}
		v := n.Float64()
		if math.IsInf(v, 0) {
			failures++
			logger.Info("overflow", "index", i, "number", n.String())
			continue
		}
		again, err := fpconv.FormatDouble(v, n.Precision)
		if err != nil {
			return fmt.Errorf("number %d: %w", i, err)
		}
		if again.Scale != n.Scale || !bytes.Equal(again.Digits(), n.Digits()) {
			failures++
			logger.Info("mismatch", "index", i, "stored", n.String(), "reformatted", again.String())
		}
	}
	logger.Info("corpus verified", "file", name, "numbers", len(nums), "failures", failures)
	if failures > 0 {
		return fmt.Errorf("%d corpus failures", failures)
	}
	return nil
}
