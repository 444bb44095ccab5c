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
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// strconvDigits returns count correctly rounded digits of v and the scale,
// computed by strconv.
func strconvDigits(v float64, count int) (string, int) {
	s := strconv.FormatFloat(math.Abs(v), 'e', count-1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		panic(err)
	}
	return strings.Replace(mant, ".", "", 1), e + 1
}

func TestDragon4(t *testing.T) {
	for _, tc := range []struct {
		value  float64
		count  int
		digits string
		scale  int
	}{
		{1.0, 1, "1", 1},
		{0.5, 1, "5", 0},
		// Exact ties round to even.
		{2.5, 1, "2", 1},
		{3.5, 1, "4", 1},
		{0.125, 2, "12", 0},
		{0.375, 2, "38", 0},
		// Carry through all nines.
		{9.5, 1, "1", 2},
		{99.5, 2, "10", 3},
		{0.1, 17, "10000000000000001", 0},
		{0.1, 20, "10000000000000000555", 0},
		{5e-324, 1, "5", -323},
		{5e-324, 17, "49406564584124654", -323},
		{math.MaxFloat64, 17, "17976931348623157", 309},
		{123.456, 5, "12346", 3},
		{1e23, 17, "99999999999999992", 23},
		{0.3, 15, "300000000000000", 0},
		{-0.3, 15, "300000000000000", 0},
		{1 << 60, 3, "115", 19},
	} {
		n := Dragon4(tc.value, tc.count)
		if string(n.Digits()) != tc.digits || n.Scale != tc.scale || n.Neg != (tc.value < 0) {
			t.Errorf("Dragon4(%v, %d) = %s, want 0.%se%d", tc.value, tc.count, n.String(), tc.digits, tc.scale)
		}
	}
}

func TestDragon4MatchesStrconv(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 20000
	if testing.Short() {
		n = 2000
	}
	for i := 0; i < n; i++ {
		v := math.Float64frombits(rng.Uint64())
		if i%4 == 0 {
			// Denormals.
			v = math.Float64frombits(rng.Uint64() & doubleSignificandMask)
		}
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		count := 1 + rng.Intn(MaxDigits)
		want, wantScale := strconvDigits(v, count)
		got := Dragon4(v, count)
		if string(got.Digits()) != want || got.Scale != wantScale {
			t.Fatalf("Dragon4(%v, %d) = %s, want 0.%se%d", v, count, got.String(), want, wantScale)
		}
	}
}

func TestDragon4Powers(t *testing.T) {
	// Values close to powers of ten stress the scale estimate.
	for e := -323; e <= 308; e++ {
		p, err := strconv.ParseFloat("1e"+strconv.Itoa(e), 64)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range []float64{p, math.Nextafter(p, 0), math.Nextafter(p, math.Inf(1))} {
			if v == 0 || math.IsInf(v, 0) {
				continue
			}
			for _, count := range []int{1, 17, 25} {
				want, wantScale := strconvDigits(v, count)
				got := Dragon4(v, count)
				if string(got.Digits()) != want || got.Scale != wantScale {
					t.Fatalf("Dragon4(%v, %d) = %s, want 0.%se%d", v, count, got.String(), want, wantScale)
				}
			}
		}
	}
}

func TestDragon4Panics(t *testing.T) {
	for _, v := range []float64{0, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Dragon4(%v) did not panic", v)
				}
			}()
			Dragon4(v, 5)
		}()
	}
}
