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
	"fmt"
	"math"
)

// MaxDigits is the largest number of significant digits a Number holds.
const MaxDigits = 50

const (
	// ScaleNaN is the Scale of a Number holding NaN.
	ScaleNaN = math.MinInt32
	// ScaleInf is the Scale of a Number holding an infinity.
	ScaleInf = math.MaxInt32
)

// Number is a decimal floating point value 0.d1d2...dn * 10^Scale.
// Digits are ASCII '0' to '9'. A zero value has no digits.
type Number struct {
	// Precision is the number of significant digits requested
	// when the Number was produced.
	Precision int
	// Scale is the decimal exponent, or ScaleNaN/ScaleInf.
	Scale int
	// Neg is set for negative values, including negative zero.
	Neg bool

	digits [MaxDigits + 1]byte
	nd     int
}

// Digits returns the significant digits.
// The returned slice is only valid until n is modified.
func (n *Number) Digits() []byte {
	return n.digits[:n.nd]
}

// SetDigits replaces the digits of n.
// Up to MaxDigits characters in '0' to '9' are accepted.
func (n *Number) SetDigits(d []byte) error {
	if len(d) > MaxDigits {
		return fmt.Errorf("%d digits: %w", len(d), ErrPrecision)
	}
	for _, c := range d {
		if c < '0' || c > '9' {
			return fmt.Errorf("digit %q: %w", c, ErrSyntax)
		}
	}
	n.nd = copy(n.digits[:], d)
	for i := n.nd; i < len(n.digits); i++ {
		n.digits[i] = 0
	}
	return nil
}

// IsNaN reports whether n holds NaN.
func (n *Number) IsNaN() bool {
	return n.Scale == ScaleNaN && n.nd == 0
}

// IsInf reports whether n holds an infinity.
func (n *Number) IsInf() bool {
	return n.Scale == ScaleInf && n.nd == 0
}

// IsZero reports whether n has no significant digits and is finite.
func (n *Number) IsZero() bool {
	if n.IsNaN() || n.IsInf() {
		return false
	}
	for _, c := range n.Digits() {
		if c != '0' {
			return false
		}
	}
	return true
}

// Round rounds n to pos significant digits, rounding half up on the
// digit following pos. Trailing zeros are removed. A result without
// digits, including any pos < 0, is an unsigned zero.
func (n *Number) Round(pos int) {
	if n.IsNaN() || n.IsInf() {
		return
	}
	i := 0
	for i < pos && i < n.nd {
		i++
	}
	if i == pos && i < n.nd && n.digits[i] >= '5' {
		for i > 0 && n.digits[i-1] == '9' {
			i--
		}
		if i > 0 {
			n.digits[i-1]++
		} else {
			n.Scale++
			n.digits[0] = '1'
			i = 1
		}
	} else {
		for i > 0 && n.digits[i-1] == '0' {
			i--
		}
	}
	if i == 0 {
		n.Scale = 0
		n.Neg = false
	}
	for j := i; j < n.nd; j++ {
		n.digits[j] = 0
	}
	n.nd = i
}

// String returns n in the form [-]0.<digits>e<scale>.
func (n *Number) String() string {
	sign := ""
	if n.Neg {
		sign = "-"
	}
	switch {
	case n.IsNaN():
		return "NaN"
	case n.IsInf():
		return sign + "Inf"
	}
	return fmt.Sprintf("%s0.%se%d", sign, n.Digits(), n.Scale)
}

func (n *Number) reset(precision int, neg bool) {
	*n = Number{Precision: precision, Neg: neg}
}
