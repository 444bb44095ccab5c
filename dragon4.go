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

import "math"

const (
	log10V2 = 0.30102999566398119521373889472449
	// driftFactor biases the scale estimate downwards so that it is
	// never more than one too small and never too large.
	driftFactor = 0.69
)

// dragon4 writes count correctly rounded digits of value to n.
// The last digit is rounded half to even on the exact value.
func dragon4(value float64, count int, n *Number) {
	b := math.Float64bits(value)
	neg := b>>63 != 0
	mantissa := b & doubleSignificandMask
	exponent := int(b >> doubleSignificandSize & 0x7ff)
	if exponent == 0x7ff {
		panic("fpconv: dragon4 of non-finite value")
	}

	var f uint64
	var e, hb int
	if exponent != 0 {
		f = mantissa | doubleHiddenBit
		e = exponent - doubleExponentBias
		hb = doubleSignificandSize
	} else {
		if mantissa == 0 {
			panic("fpconv: dragon4 of zero")
		}
		f = mantissa
		e = doubleDenormalExp
		hb = logBase2Uint64(f)
	}

	// value = r / s * 10^k after the scaling below.
	k := int(math.Ceil(float64(float64(hb+e)*log10V2) - driftFactor))

	var r, s bigNum
	if e >= 0 {
		shiftLeftUint64(f, uint(e), &r)
		s.setUint32(1)
	} else {
		r.setUint64(f)
		shiftLeftUint64(1, uint(-e), &s)
	}

	var pow bigNum
	if k > 0 {
		pow10Big(k, &pow)
		s.multiply(&pow)
	} else if k < 0 {
		pow10Big(-k, &pow)
		r.multiply(&pow)
	}

	// The estimate is at most one too small.
	if compareBig(&r, &s) >= 0 {
		k++
	} else {
		r.multiply10()
	}

	n.reset(count, neg)
	dec := k - 1

	prepareHeuristicDivide(&r, &s)

	digits := 0
	var cur uint32
	for {
		cur = heuristicDivide(&r, &s)
		if r.isZero() || digits+1 == count {
			break
		}
		n.digits[digits] = byte('0' + cur)
		digits++
		r.multiply10()
	}

	// Compare the remainder against half of the divisor.
	r.shiftLeft(1)
	cmp := compareBig(&r, &s)
	roundDown := cmp < 0
	if cmp == 0 {
		roundDown = cur&1 == 0
	}

	switch {
	case roundDown:
		n.digits[digits] = byte('0' + cur)
		digits++
	case cur == 9:
		for {
			if digits == 0 {
				n.digits[0] = '1'
				digits = 1
				dec++
				break
			}
			digits--
			if n.digits[digits] != '9' {
				n.digits[digits]++
				digits++
				break
			}
		}
	default:
		n.digits[digits] = byte('0' + cur + 1)
		digits++
	}

	for digits < count {
		n.digits[digits] = '0'
		digits++
	}
	n.nd = count
	n.Scale = dec + 1
}
