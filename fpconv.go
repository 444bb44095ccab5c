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

// Package fpconv converts between IEEE 754 doubles and decimal digit
// sequences with a requested number of significant digits.
//
// Formatting tries the Grisu3 algorithm on 64-bit integers first and falls
// back to Dragon4 on arbitrary precision integers when Grisu3 cannot prove
// its result. Parsing converts up to 18 significant digits with a pair of
// table driven 64-bit multiplications.
package fpconv

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSyntax is returned for input that is not a decimal number.
	ErrSyntax = errors.New("fpconv: invalid syntax")
	// ErrPrecision is returned for a digit count outside [1, MaxDigits].
	ErrPrecision = errors.New("fpconv: precision out of range")
)

// FormatDouble returns value rounded to precision significant decimal digits.
//
// Finite non-zero values get exactly precision digits, correctly rounded
// with ties to even. Zero gets no digits and scale 0. NaN and infinities
// get no digits and a Scale of ScaleNaN or ScaleInf. The sign is always
// taken from the sign bit.
func FormatDouble(value float64, precision int, opts ...FormatOption) (Number, error) {
	var n Number
	err := n.SetFloat64(value, precision, opts...)
	return n, err
}

// SetFloat64 sets n to value rounded to precision significant digits.
// See FormatDouble.
func (n *Number) SetFloat64(value float64, precision int, opts ...FormatOption) error {
	if precision < 1 || precision > MaxDigits {
		return fmt.Errorf("precision %d: %w", precision, ErrPrecision)
	}
	cfg, err := newFormatConfig(opts)
	if err != nil {
		return err
	}
	neg := math.Signbit(value)
	switch {
	case math.IsNaN(value):
		n.reset(precision, neg)
		n.Scale = ScaleNaN
	case math.IsInf(value, 0):
		n.reset(precision, neg)
		n.Scale = ScaleInf
	case value == 0:
		n.reset(precision, neg)
		if cfg.zeroDigits {
			for i := 0; i < precision; i++ {
				n.digits[i] = '0'
			}
			n.nd = precision
		}
	default:
		if !cfg.fastPath || !grisu3(value, precision, n) {
			dragon4(value, precision, n)
		}
	}
	return nil
}

// TryGrisu3 formats value with the Grisu3 algorithm only.
// It reports false when Grisu3 cannot guarantee correctly rounded digits.
// It panics if value is zero or not finite, or precision is out of range.
func TryGrisu3(value float64, precision int) (Number, bool) {
	checkFormatArgs(value, precision)
	var n Number
	ok := grisu3(value, precision, &n)
	return n, ok
}

// Dragon4 formats value with the exact Dragon4 algorithm.
// It panics if value is zero or not finite, or precision is out of range.
func Dragon4(value float64, precision int) Number {
	checkFormatArgs(value, precision)
	var n Number
	dragon4(value, precision, &n)
	return n
}

func checkFormatArgs(value float64, precision int) {
	if precision < 1 || precision > MaxDigits {
		panic(fmt.Errorf("precision %d: %w", precision, ErrPrecision))
	}
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("fpconv: cannot format %v", value))
	}
}
