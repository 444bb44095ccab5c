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
	"math/bits"
	"testing"
)

// mul64Precise returns a * b rounded to the top 64 bits and normalized,
// and the exponent adjustment.
func mul64Precise(a, b uint64) (uint64, int) {
	hi, lo := bits.Mul64(a, b)
	if lo>>63 != 0 {
		hi++
	}
	if hi>>63 == 0 {
		return hi << 1, -1
	}
	return hi, 0
}

// checkChain verifies that table[i] == table[i-1] * base, rounded and
// normalized, and that exponents accumulate accordingly.
func checkChain(t *testing.T, name string, sig []uint64, exp []int, base uint64, baseExp int) {
	t.Helper()
	if sig[0] != base || exp[0] != baseExp {
		t.Fatalf("%s[0] = %#x*2^%d, want %#x*2^%d", name, sig[0], exp[0], base, baseExp)
	}
	v, e := base, baseExp
	for i := 1; i < len(sig); i++ {
		var adj int
		v, adj = mul64Precise(v, base)
		e += baseExp + adj
		if sig[i] != v || exp[i] != e {
			t.Errorf("%s[%d] = %#x*2^%d, want %#x*2^%d", name, i, sig[i], exp[i], v, e)
		}
	}
}

func negExponents(exp []int) []int {
	res := make([]int, len(exp))
	for i, e := range exp {
		res[i] = -e + 1
	}
	return res
}

func TestNumberToDoubleTables(t *testing.T) {
	checkChain(t, "pow10", pow10Significands[:], pow10Exponents[:], 0xa000000000000000, 4)
	checkChain(t, "negPow10", negPow10Significands[:], negExponents(pow10Exponents[:]), 0xcccccccccccccccd, -3)

	// The 16th power in each small chain is the base of the large chain.
	v16, e16 := pow10Significands[14], pow10Exponents[14]
	adj := 0
	v16, adj = mul64Precise(v16, pow10Significands[0])
	e16 += pow10Exponents[0] + adj
	checkChain(t, "pow10By16", pow10By16Significands[:], pow10By16Exponents[:], v16, e16)

	n16, ne16 := negPow10Significands[14], -pow10Exponents[14]+1
	n16, adj = mul64Precise(n16, negPow10Significands[0])
	ne16 += -pow10Exponents[0] + 1 + adj
	checkChain(t, "negPow10By16", negPow10By16Significands[:], negExponents(pow10By16Exponents[:]), n16, ne16)
}

func TestMul64Lossy(t *testing.T) {
	for _, tc := range []struct {
		a, b uint64
		want uint64
		adj  int
	}{
		{1 << 63, 1 << 63, 1 << 63, -1},
		{0xffffffffffffffff, 0xffffffffffffffff, 0xfffffffffffffffd, 0},
		{0xa000000000000000, 0xcccccccccccccccd, 0x8000000000000000, 0},
	} {
		got, adj := mul64Lossy(tc.a, tc.b)
		if got != tc.want || adj != tc.adj {
			t.Errorf("mul64Lossy(%#x, %#x) = %#x, %d, want %#x, %d", tc.a, tc.b, got, adj, tc.want, tc.adj)
		}
	}
}

func TestParseDigits(t *testing.T) {
	for _, tc := range []struct {
		digits string
		scale  int
		neg    bool
		want   float64
	}{
		{"17976931348623157", 309, false, math.MaxFloat64},
		{"17976931348623157", 309, true, -math.MaxFloat64},
		{"17976931348623159", 309, false, math.Inf(1)},
		{"0", 0, false, 0},
		{"", 0, true, math.Copysign(0, -1)},
		{"000", 5, false, 0},
		{"1", 1, false, 1},
		{"001", 1, false, 1},
		{"15", 0, false, 0.15},
		{"5", 0, false, 0.5},
		{"24703282292062328", -323, false, 5e-324},
		{"49406564584124654", -323, false, 5e-324},
		{"1", -323, false, 0},
		{"1", 400, false, math.Inf(1)},
		{"1", 400, true, math.Inf(-1)},
		{"1", -400, false, 0},
		{"123456789012345678", 18, false, 1.2345678901234568e17},
		{"30000000000000004", 0, false, 0.30000000000000004},
		{"1", 24, false, 1e23},
		{"22250738585072014", -307, false, 0x1p-1022},
	} {
		got, err := ParseDigits([]byte(tc.digits), tc.scale, tc.neg)
		if err != nil {
			t.Errorf("ParseDigits(%q, %d): %v", tc.digits, tc.scale, err)
			continue
		}
		if math.Float64bits(got) != math.Float64bits(tc.want) {
			t.Errorf("ParseDigits(%q, %d, %v) = %v, want %v", tc.digits, tc.scale, tc.neg, got, tc.want)
		}
	}
}

func TestParseDigitsSyntax(t *testing.T) {
	for _, d := range []string{"12a", "-1", "1.5", " 1"} {
		if _, err := ParseDigits([]byte(d), 1, false); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseDigits(%q): got error %v", d, err)
		}
	}
}

func TestNumberFloat64Special(t *testing.T) {
	n := mustFormat(t, math.NaN(), 1)
	if !math.IsNaN(n.Float64()) {
		t.Error("NaN did not convert back")
	}
	n = mustFormat(t, math.Inf(-1), 1)
	if !math.IsInf(n.Float64(), -1) {
		t.Error("-Inf did not convert back")
	}
	n = mustFormat(t, math.Copysign(0, -1), 1)
	if v := n.Float64(); v != 0 || !math.Signbit(v) {
		t.Errorf("-0 converted to %v", v)
	}
}
