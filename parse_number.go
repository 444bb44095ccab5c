package fpconv

import (
	"bytes"
	"fmt"
)

// maxExponent bounds the accumulated exponent. Anything larger
// already saturates to zero or infinity.
const maxExponent = 1000000

var (
	nanSymbol      = []byte("nan")
	infSymbol      = []byte("inf")
	infinitySymbol = []byte("infinity")
)

// ParseNumber parses a decimal number of the form
//
//	[+-]digits[.digits][(e|E)[+-]digits]
//
// or one of NaN, Inf and Infinity (case insensitive, optionally signed).
// At least one digit is required in the mantissa. Up to MaxDigits
// significant digits are kept; further digits only affect the scale.
// Trailing zeros are removed and the Precision of the result is the
// number of digits kept.
func ParseNumber(s []byte) (Number, error) {
	var n Number
	if err := n.parse(s); err != nil {
		return Number{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return n, nil
}

// ParseFloat parses s with ParseNumber and returns the nearest double.
// Values out of range return a signed infinity or zero without error.
func ParseFloat(s []byte) (float64, error) {
	n, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	return n.Float64(), nil
}

func (n *Number) parse(s []byte) error {
	*n = Number{}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		n.Neg = s[i] == '-'
		i++
	}

	switch rest := s[i:]; {
	case bytes.EqualFold(rest, nanSymbol):
		n.Neg = false
		n.Scale = ScaleNaN
		return nil
	case bytes.EqualFold(rest, infSymbol), bytes.EqualFold(rest, infinitySymbol):
		n.Scale = ScaleInf
		return nil
	}

	sawDigits := false
	for ; i < len(s) && isDigit(s[i]); i++ {
		sawDigits = true
		switch {
		case s[i] == '0' && n.nd == 0:
		case n.nd < MaxDigits:
			n.digits[n.nd] = s[i]
			n.nd++
			n.Scale++
		default:
			n.Scale++
		}
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			sawDigits = true
			switch {
			case s[i] == '0' && n.nd == 0:
				n.Scale--
			case n.nd < MaxDigits:
				n.digits[n.nd] = s[i]
				n.nd++
			}
		}
	}
	if !sawDigits {
		return ErrSyntax
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return ErrSyntax
		}
		for ; i < len(s) && isDigit(s[i]); i++ {
			if exp < maxExponent {
				exp = exp*10 + int(s[i]-'0')
			}
		}
		if expNeg {
			exp = -exp
		}
	}
	if i != len(s) {
		return ErrSyntax
	}

	if n.nd == 0 {
		n.Scale = 0
		return nil
	}
	n.Scale += exp
	for n.nd > 0 && n.digits[n.nd-1] == '0' {
		n.nd--
		n.digits[n.nd] = 0
	}
	n.Precision = n.nd
	return nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
