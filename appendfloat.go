// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Modified for rendering decimal Numbers in fixed, scientific,
// general and round-trip formats.

package fpconv

import "fmt"

const (
	// doublePrecision is the number of digits that always survive a
	// decimal -> double -> decimal round trip.
	doublePrecision = 15
	// roundTripPrecision is the number of digits that always survive a
	// double -> decimal -> double round trip.
	roundTripPrecision = 17

	defaultExponentPrecision = 6
	defaultFixedPrecision    = 2
)

// FormatFloat renders v according to format and prec. See AppendFloat.
func FormatFloat(v float64, format byte, prec int) (string, error) {
	b, err := AppendFloat(make([]byte, 0, 32), v, format, prec)
	return string(b), err
}

// AppendFloat appends the decimal rendering of v to dst.
//
//	'e', 'E'  -d.ddddde+ddd with prec digits after the point (default 6).
//	'f', 'F'  -ddd.ddd with prec digits after the point (default 2),
//	          from 15 significant digits.
//	'g', 'G'  the shorter of fixed and scientific with prec significant
//	          digits (default 15) and trailing zeros removed.
//	'r', 'R'  like 'g' with 15 digits when those parse back to v,
//	          otherwise 17.
//
// NaN renders as "NaN" and infinities as "Infinity" and "-Infinity".
func AppendFloat(dst []byte, v float64, format byte, prec int) ([]byte, error) {
	var n Number
	var err error
	switch format {
	case 'e', 'E':
		if prec < 0 {
			prec = defaultExponentPrecision
		}
		if prec+1 > MaxDigits {
			return dst, fmt.Errorf("format %q precision %d: %w", format, prec, ErrPrecision)
		}
		if err = n.SetFloat64(v, prec+1, WithZeroDigits(true)); err != nil {
			return dst, err
		}
		if special, ok := appendSpecial(dst, &n); ok {
			return special, nil
		}
		return fmtE(dst, &n, prec, format), nil

	case 'f', 'F':
		if prec < 0 {
			prec = defaultFixedPrecision
		}
		if err = n.SetFloat64(v, doublePrecision); err != nil {
			return dst, err
		}
		if special, ok := appendSpecial(dst, &n); ok {
			return special, nil
		}
		n.Round(n.Scale + prec)
		return fmtF(dst, &n, prec), nil

	case 'g', 'G':
		if prec <= 0 {
			prec = doublePrecision
		}
		if prec > MaxDigits {
			return dst, fmt.Errorf("format %q precision %d: %w", format, prec, ErrPrecision)
		}
		if err = n.SetFloat64(v, prec); err != nil {
			return dst, err
		}
		if special, ok := appendSpecial(dst, &n); ok {
			return special, nil
		}
		n.Round(prec)
		return fmtG(dst, &n, prec, format-'g'+'e'), nil

	case 'r', 'R':
		if err = n.SetFloat64(v, doublePrecision); err != nil {
			return dst, err
		}
		if special, ok := appendSpecial(dst, &n); ok {
			return special, nil
		}
		n.Round(doublePrecision)
		if n.Float64() != v {
			if err = n.SetFloat64(v, roundTripPrecision); err != nil {
				return dst, err
			}
			n.Round(roundTripPrecision)
		}
		return fmtG(dst, &n, n.Precision, format-'r'+'e'), nil
	}
	return dst, fmt.Errorf("format %q: %w", format, ErrSyntax)
}

func appendSpecial(dst []byte, n *Number) ([]byte, bool) {
	switch {
	case n.IsNaN():
		return append(dst, "NaN"...), true
	case n.IsInf():
		if n.Neg {
			dst = append(dst, '-')
		}
		return append(dst, "Infinity"...), true
	}
	return dst, false
}

// %e: -d.ddddde+ddd
func fmtE(dst []byte, n *Number, prec int, format byte) []byte {
	// sign
	if n.Neg {
		dst = append(dst, '-')
	}

	d := n.Digits()
	// first digit
	ch := byte('0')
	if len(d) != 0 {
		ch = d[0]
	}
	dst = append(dst, ch)

	// .moredigits
	if prec > 0 {
		dst = append(dst, '.')
		for i := 1; i <= prec; i++ {
			ch := byte('0')
			if i < len(d) {
				ch = d[i]
			}
			dst = append(dst, ch)
		}
	}

	exp := n.Scale - 1
	if n.IsZero() {
		exp = 0
	}
	return appendExponent(dst, format, exp, 3)
}

// %f: -ddddddd.ddddd
func fmtF(dst []byte, n *Number, prec int) []byte {
	// sign
	if n.Neg {
		dst = append(dst, '-')
	}

	d := n.Digits()
	dp := n.Scale
	// integer, padded with zeros as needed.
	if dp > 0 {
		m := min(len(d), dp)
		dst = append(dst, d[:m]...)
		for ; m < dp; m++ {
			dst = append(dst, '0')
		}
	} else {
		dst = append(dst, '0')
	}

	// fraction
	if prec > 0 {
		dst = append(dst, '.')
		for i := 0; i < prec; i++ {
			ch := byte('0')
			if j := dp + i; 0 <= j && j < len(d) {
				ch = d[j]
			}
			dst = append(dst, ch)
		}
	}

	return dst
}

// %g: the digits of n without trailing zeros, in scientific notation when
// the exponent is below -4 or not less than maxDigits.
func fmtG(dst []byte, n *Number, maxDigits int, expChar byte) []byte {
	if n.Neg {
		dst = append(dst, '-')
	}
	d := n.Digits()
	if len(d) == 0 {
		return append(dst, '0')
	}

	dp := n.Scale
	scientific := false
	if dp > maxDigits || dp < -3 {
		dp = 1
		scientific = true
	}

	if dp > 0 {
		m := min(len(d), dp)
		dst = append(dst, d[:m]...)
		for ; m < dp; m++ {
			dst = append(dst, '0')
		}
	} else {
		dst = append(dst, '0')
	}

	if frac := max(dp, 0); frac < len(d) {
		dst = append(dst, '.')
		for ; dp < 0; dp++ {
			dst = append(dst, '0')
		}
		dst = append(dst, d[frac:]...)
	}

	if scientific {
		dst = appendExponent(dst, expChar, n.Scale-1, 2)
	}
	return dst
}

// appendExponent appends expChar, the sign and at least minDigits
// digits of exp.
func appendExponent(dst []byte, expChar byte, exp, minDigits int) []byte {
	dst = append(dst, expChar)
	ch := byte('+')
	if exp < 0 {
		ch = '-'
		exp = -exp
	}
	dst = append(dst, ch)

	var buf [8]byte
	i := len(buf)
	for exp > 0 || len(buf)-i < minDigits {
		i--
		buf[i] = byte(exp%10) + '0'
		exp /= 10
	}
	return append(dst, buf[i:]...)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
