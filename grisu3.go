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
	grisuMinimalTargetExponent = -59
	grisuMaximalTargetExponent = -32

	cachedPowersOffset          = 348
	cachedPowersDecimalDistance = 8

	d1Log210 = 0.30102999566398114
)

type cachedPower struct {
	significand     uint64
	binaryExponent  int16
	decimalExponent int16
}

var smallPowersOfTen = [...]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// kComp returns the decimal exponent k such that a cached power 10^-k
// brings a value with binary exponent e into the target exponent range.
func kComp(e int) int {
	return int(math.Ceil(float64(grisuMinimalTargetExponent-e+diyFpSignificandSize-1) * d1Log210))
}

// cachedPowerFor returns the cached power 10^-k' with k' >= k
// and its decimal exponent.
func cachedPowerFor(k int) (diyFp, int) {
	idx := (cachedPowersOffset+k-1)/cachedPowersDecimalDistance + 1
	c := &cachedPowers[idx]
	return diyFp{f: c.significand, e: int(c.binaryExponent)}, int(c.decimalExponent)
}

// grisu3 writes count digits of value to n.
// It reports false when the result cannot be guaranteed correct.
func grisu3(value float64, count int, n *Number) bool {
	neg := false
	if value < 0 {
		value = -value
		neg = true
	}
	w := newNormalizedDiyFp(value)
	mk := kComp(w.e + diyFpSignificandSize)
	cmk, decimalExponent := cachedPowerFor(mk)
	scaled := w.mul(cmk)
	if scaled.e < grisuMinimalTargetExponent || scaled.e > grisuMaximalTargetExponent {
		panic("fpconv: cached power out of target range")
	}

	var buf [MaxDigits]byte
	length, kappa, ok := grisuDigitGen(scaled, count, buf[:])
	if !ok {
		return false
	}
	n.reset(count, neg)
	for i := 0; i < length; i++ {
		n.digits[i] = '0' + buf[i]
	}
	n.nd = length
	n.Scale = length - decimalExponent + kappa
	return true
}

// grisuDigitGen generates count digits of mp into buf as values 0 to 9.
func grisuDigitGen(mp diyFp, count int, buf []byte) (length, kappa int, ok bool) {
	ulp := uint64(1)
	shift := uint(-mp.e)
	one := uint64(1) << shift
	p1 := uint32(mp.f >> shift)
	p2 := mp.f & (one - 1)

	// A fractional part of zero cannot be weeded when the integral
	// part has fewer digits than requested.
	if p2 == 0 && (count >= 11 || p1 < smallPowersOfTen[count-1]) {
		return 0, 0, false
	}

	var div uint32
	div, kappa = biggestPowerTen(p1, diyFpSignificandSize-int(shift))
	kappa++

	for kappa > 0 {
		buf[length] = byte(p1 / div)
		length++
		count--
		p1 %= div
		kappa--
		if count == 0 {
			break
		}
		div /= 10
	}

	if count == 0 {
		rest := uint64(p1)<<shift + p2
		kappa, ok = roundWeed(buf[:length], rest, uint64(div)<<shift, ulp, kappa)
		return length, kappa, ok
	}

	for count > 0 && p2 > ulp {
		p2 *= 10
		buf[length] = byte(p2 >> shift)
		length++
		count--
		p2 &= one - 1
		kappa--
		ulp *= 10
	}
	if count != 0 {
		return length, kappa, false
	}
	kappa, ok = roundWeed(buf[:length], p2, one, ulp, kappa)
	return length, kappa, ok
}

// roundWeed rounds the last digit of buf given the remainder rest,
// the current unit tenKappa and the error bound ulp.
// It reports false when the direction is ambiguous.
func roundWeed(buf []byte, rest, tenKappa, ulp uint64, kappa int) (int, bool) {
	if ulp >= tenKappa || tenKappa-ulp <= ulp {
		return kappa, false
	}
	if tenKappa-rest > rest && tenKappa-2*rest >= 2*ulp {
		return kappa, true
	}
	if rest > ulp && (tenKappa <= rest-ulp || tenKappa-(rest-ulp) <= rest-ulp) {
		last := len(buf) - 1
		buf[last]++
		for i := last; i > 0; i-- {
			if buf[i] != 10 {
				break
			}
			buf[i] = 0
			buf[i-1]++
		}
		if buf[0] == 10 {
			buf[0] = 1
			kappa++
		}
		return kappa, true
	}
	return kappa, false
}

// biggestPowerTen returns the largest power of ten not above number and
// its exponent. number must fit in numberBits bits.
// For number == 0 the exponent is -1.
func biggestPowerTen(number uint32, numberBits int) (power uint32, exponent int) {
	switch {
	case numberBits >= 30:
		exponent = 9
	case numberBits >= 27:
		exponent = 8
	case numberBits >= 24:
		exponent = 7
	case numberBits >= 20:
		exponent = 6
	case numberBits >= 17:
		exponent = 5
	case numberBits >= 14:
		exponent = 4
	case numberBits >= 10:
		exponent = 3
	case numberBits >= 7:
		exponent = 2
	case numberBits >= 4:
		exponent = 1
	case numberBits >= 1:
		exponent = 0
	default:
		return 0, -1
	}
	for exponent >= 0 && smallPowersOfTen[exponent] > number {
		exponent--
	}
	if exponent < 0 {
		return 0, -1
	}
	return smallPowersOfTen[exponent], exponent
}
