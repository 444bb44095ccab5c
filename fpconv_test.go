/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var numberCmp = cmp.AllowUnexported(Number{})

func mustFormat(t testing.TB, v float64, precision int, opts ...FormatOption) Number {
	t.Helper()
	n, err := FormatDouble(v, precision, opts...)
	if err != nil {
		t.Fatalf("FormatDouble(%v, %d): %v", v, precision, err)
	}
	return n
}

func TestFormatDoubleSpecial(t *testing.T) {
	for _, tc := range []struct {
		name  string
		value float64
		opts  []FormatOption
		scale int
		neg   bool
		nd    int
	}{
		{name: "zero", value: 0},
		{name: "negative zero", value: math.Copysign(0, -1), neg: true},
		{name: "zero digits", value: 0, opts: []FormatOption{WithZeroDigits(true)}, nd: 5},
		{name: "NaN", value: math.NaN(), scale: ScaleNaN},
		{name: "+Inf", value: math.Inf(1), scale: ScaleInf},
		{name: "-Inf", value: math.Inf(-1), scale: ScaleInf, neg: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n := mustFormat(t, tc.value, 5, tc.opts...)
			if n.Scale != tc.scale || n.Neg != tc.neg || len(n.Digits()) != tc.nd || n.Precision != 5 {
				t.Errorf("got %+v", n)
			}
			for _, c := range n.Digits() {
				if c != '0' {
					t.Errorf("zero digit %q", c)
				}
			}
		})
	}
	if n := mustFormat(t, math.NaN(), 3); !n.IsNaN() || n.IsInf() {
		t.Error("NaN not reported")
	}
	if n := mustFormat(t, math.Inf(-1), 3); !n.IsInf() || n.IsNaN() {
		t.Error("Inf not reported")
	}
}

func TestFormatDoublePrecision(t *testing.T) {
	for _, p := range []int{-1, 0, MaxDigits + 1} {
		if _, err := FormatDouble(1, p); !errors.Is(err, ErrPrecision) {
			t.Errorf("precision %d: got error %v", p, err)
		}
	}
	for _, p := range []int{1, MaxDigits} {
		if _, err := FormatDouble(1, p); err != nil {
			t.Errorf("precision %d: %v", p, err)
		}
	}
}

func TestFormatDouble(t *testing.T) {
	for _, tc := range []struct {
		value  float64
		count  int
		digits string
		scale  int
	}{
		{1.0, 1, "1", 1},
		{100.0, 3, "100", 3},
		{1e300, 1, "1", 301},
		{2.5, 1, "2", 1},
		{3.5, 1, "4", 1},
		{0.125, 2, "12", 0},
		{0.375, 2, "38", 0},
		{9.5, 1, "1", 2},
		{99.5, 2, "10", 3},
		{0.5, 1, "5", 0},
		{0.1, 17, "10000000000000001", 0},
		{0.1, 20, "10000000000000000555", 0},
		{5e-324, 1, "5", -323},
		{5e-324, 17, "49406564584124654", -323},
		{math.MaxFloat64, 17, "17976931348623157", 309},
		{-math.MaxFloat64, 17, "17976931348623157", 309},
		{123.456, 5, "12346", 3},
		{1e23, 17, "99999999999999992", 23},
		{0.3, 15, "300000000000000", 0},
	} {
		for _, fast := range []bool{true, false} {
			n := mustFormat(t, tc.value, tc.count, WithFastPath(fast))
			if string(n.Digits()) != tc.digits || n.Scale != tc.scale || n.Neg != (tc.value < 0) {
				t.Errorf("FormatDouble(%v, %d, fast=%v) = %s, want 0.%se%d", tc.value, tc.count, fast, n.String(), tc.digits, tc.scale)
			}
		}
	}
}

func TestGrisu3AgreesWithDragon4(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 20000
	if testing.Short() {
		n = 2000
	}
	counts := []int{1, 2, 5, 10, 15, 16, 17, 18, 25, 50}
	succeeded := 0
	for i := 0; i < n; i++ {
		v := math.Float64frombits(rng.Uint64())
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		for _, count := range counts {
			fast, ok := TryGrisu3(v, count)
			if !ok {
				continue
			}
			succeeded++
			exact := Dragon4(v, count)
			if diff := cmp.Diff(exact, fast, numberCmp); diff != "" {
				t.Fatalf("%v with %d digits: (-dragon4 +grisu3):\n%s", v, count, diff)
			}
		}
	}
	if succeeded == 0 {
		t.Fatal("grisu3 never succeeded")
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := 50000
	if testing.Short() {
		n = 5000
	}
	for i := 0; i < n; i++ {
		b := rng.Uint64()
		if i%8 == 0 {
			// Denormals.
			b &= 1<<63 | doubleSignificandMask
		}
		v := math.Float64frombits(b)
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		for _, count := range []int{17, 18, 20} {
			num := mustFormat(t, v, count)
			if got := num.Float64(); math.Float64bits(got) != math.Float64bits(v) {
				t.Fatalf("%v with %d digits: %s parsed back as %v", v, count, num.String(), got)
			}
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		v := math.Float64frombits(rng.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) < 0x1p-1022 {
			continue
		}
		for _, count := range []int{15, 17} {
			first := mustFormat(t, v, count)
			again := mustFormat(t, first.Float64(), count)
			if diff := cmp.Diff(first, again, numberCmp); diff != "" {
				t.Fatalf("%v with %d digits (-first +again):\n%s", v, count, diff)
			}
		}
	}
}

func TestNumberReuse(t *testing.T) {
	var n Number
	if err := n.SetFloat64(math.Pi, 20); err != nil {
		t.Fatal(err)
	}
	if err := n.SetFloat64(2, 3); err != nil {
		t.Fatal(err)
	}
	want := mustFormat(t, 2, 3)
	if diff := cmp.Diff(want, n, numberCmp); diff != "" {
		t.Errorf("reused Number differs (-want +got):\n%s", diff)
	}
}
