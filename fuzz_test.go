//go:build go1.18
// +build go1.18

/*
 * MinIO Cloud Storage, (C) 2022 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fpconv

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func FuzzFormat(f *testing.F) {
	for _, v := range []float64{0, 1, 0.1, 1e23, 5e-324, math.MaxFloat64, 0x1p-1022, 9007199254740993, -2.5} {
		for _, prec := range []int{1, 2, 15, 17, 25} {
			f.Add(math.Float64bits(v), prec)
		}
	}
	f.Fuzz(func(t *testing.T, b uint64, prec int) {
		v := math.Float64frombits(b)
		if prec < 1 || prec > MaxDigits {
			if _, err := FormatDouble(v, prec); !errors.Is(err, ErrPrecision) {
				t.Fatalf("precision %d: got error %v", prec, err)
			}
			return
		}
		n, err := FormatDouble(v, prec)
		if err != nil {
			t.Fatal(err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			return
		}
		if len(n.Digits()) != prec {
			t.Fatalf("%v: got %d digits, want %d", v, len(n.Digits()), prec)
		}
		want := Dragon4(math.Abs(v), prec)
		if g, ok := TryGrisu3(math.Abs(v), prec); ok {
			if diff := cmp.Diff(want, g, numberCmp); diff != "" {
				t.Fatalf("%v, %d: grisu3 mismatch (-dragon4 +grisu3):\n%s", v, prec, diff)
			}
		}
		if prec >= roundTripPrecision {
			if got := n.Float64(); got != v {
				t.Fatalf("%v, %d: %s parsed back as %v", v, prec, n.String(), got)
			}
		}
	})
}

func FuzzParseNumber(f *testing.F) {
	for _, test := range atoftests {
		f.Add([]byte(test.in))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := ParseFloat(data)
		if err != nil {
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("%q: unexpected error %v", data, err)
			}
			return
		}
		if math.IsNaN(v) {
			return
		}
		ref, refErr := strconv.ParseFloat(string(data), 64)
		if refErr != nil && !errors.Is(refErr, strconv.ErrRange) {
			t.Fatalf("%q: parsed as %v, strconv reported %v", data, v, refErr)
		}
		if !math.IsInf(v, 0) && !math.IsInf(ref, 0) && math.Abs(ref) >= 0x1p-1022 {
			if math.Abs(v-ref) > math.Abs(ref)*1e-14 {
				t.Fatalf("%q: got %v, strconv got %v", data, v, ref)
			}
		}

		s, err := FormatFloat(v, 'r', 0)
		if err != nil {
			t.Fatal(err)
		}
		if math.IsInf(v, 0) {
			return
		}
		back, err := ParseFloat([]byte(s))
		if err != nil || back != v {
			t.Fatalf("%q: %v formatted as %s, parsed back as %v, %v", data, v, s, back, err)
		}
	})
}
