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
	"math/bits"
)

const (
	// scaleLimit bounds the decimal scale that can produce a finite,
	// non-zero double from at most 18 significant digits.
	scaleLimit = 352

	doubleInfBits = uint64(0x7ff) << doubleSignificandSize
)

// ParseDigits returns the double nearest to 0.digits * 10^scale.
// Only the first 18 significant digits are used.
// Overflow returns an infinity and underflow a zero of the requested sign.
func ParseDigits(digits []byte, scale int, neg bool) (float64, error) {
	for i, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("digit %q at offset %d: %w", c, i, ErrSyntax)
		}
	}
	return math.Float64frombits(numberToDoubleBits(digits, scale, neg)), nil
}

// Float64 returns the double nearest to n.
func (n *Number) Float64() float64 {
	switch {
	case n.IsNaN():
		return math.NaN()
	case n.IsInf():
		if n.Neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return math.Float64frombits(numberToDoubleBits(n.Digits(), n.Scale, n.Neg))
}

// digitsToInt returns the integer value of digits.
func digitsToInt(digits []byte) uint32 {
	var v uint32
	for _, c := range digits {
		v = v*10 + uint32(c-'0')
	}
	return v
}

// mul64Lossy returns the top 64 bits of a * b, ignoring the low product
// of the bottom halves, and the exponent adjustment for normalization.
func mul64Lossy(a, b uint64) (uint64, int) {
	aHi, aLo := a>>32, a&0xffffffff
	bHi, bLo := b>>32, b&0xffffffff
	v := aHi*bHi + (aHi*bLo)>>32 + (aLo*bHi)>>32
	if v&(1<<63) == 0 {
		return v << 1, -1
	}
	return v, 0
}

func numberToDoubleBits(digits []byte, scale int, neg bool) uint64 {
	var sign uint64
	if neg {
		sign = 1 << 63
	}
	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return sign
	}

	total := len(digits)
	remaining := total

	count := remaining
	if count > 9 {
		count = 9
	}
	remaining -= count
	val := uint64(digitsToInt(digits[:count]))

	if remaining > 0 {
		count = remaining
		if count > 9 {
			count = 9
		}
		remaining -= count
		mult := uint32(pow10Significands[count-1] >> (64 - pow10Exponents[count-1]))
		val = val*uint64(mult) + uint64(digitsToInt(digits[9:9+count]))
	}

	scale -= total - remaining
	absScale := scale
	if absScale < 0 {
		absScale = -absScale
	}
	if absScale >= scaleLimit {
		if scale > 0 {
			return sign | doubleInfBits
		}
		return sign
	}

	exp := 64
	shift := bits.LeadingZeros64(val)
	val <<= uint(shift)
	exp -= shift

	if idx := absScale & 15; idx != 0 {
		me := pow10Exponents[idx-1]
		mult := pow10Significands[idx-1]
		if scale < 0 {
			me = -me + 1
			mult = negPow10Significands[idx-1]
		}
		exp += me
		var adj int
		val, adj = mul64Lossy(val, mult)
		exp += adj
	}

	if idx := absScale >> 4; idx != 0 {
		me := pow10By16Exponents[idx-1]
		mult := pow10By16Significands[idx-1]
		if scale < 0 {
			me = -me + 1
			mult = negPow10By16Significands[idx-1]
		}
		exp += me
		var adj int
		val, adj = mul64Lossy(val, mult)
		exp += adj
	}

	// Round to nearest even on bit 10.
	if val&(1<<10) != 0 {
		tmp := val + (1<<10 - 1) + (val >> 11 & 1)
		if tmp < val {
			tmp = tmp>>1 | 1<<63
			exp++
		}
		val = tmp
	}

	exp += 0x3fe
	switch {
	case exp <= 0:
		if exp == -52 && val >= 0x8000000000000058 {
			// The smallest denormal.
			val = 1
		} else if exp <= -52 {
			val = 0
		} else {
			val >>= uint(-exp + 12)
		}
	case exp >= 0x7ff:
		val = doubleInfBits
	default:
		val = uint64(exp)<<doubleSignificandSize + (val>>11)&doubleSignificandMask
	}
	return val | sign
}
