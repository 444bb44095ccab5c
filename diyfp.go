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
	"math/bits"
)

const (
	diyFpSignificandSize  = 64
	doubleSignificandSize = 52
	doubleExponentBias    = 0x3ff + doubleSignificandSize
	doubleHiddenBit       = uint64(1) << doubleSignificandSize
	doubleSignificandMask = doubleHiddenBit - 1
	doubleDenormalExp     = -doubleExponentBias + 1
)

// diyFp is an extended precision floating point value f * 2^e.
type diyFp struct {
	f uint64
	e int
}

// newDiyFp returns the exact value of a positive finite double.
func newDiyFp(v float64) diyFp {
	b := math.Float64bits(v)
	f := b & doubleSignificandMask
	exp := int(b >> doubleSignificandSize & 0x7ff)
	if exp == 0 {
		return diyFp{f: f, e: doubleDenormalExp}
	}
	return diyFp{f: f + doubleHiddenBit, e: exp - doubleExponentBias}
}

// newNormalizedDiyFp returns v with the highest significand bit set.
func newNormalizedDiyFp(v float64) diyFp {
	if !(v > 0) || math.IsInf(v, 0) {
		panic("fpconv: value must be positive and finite")
	}
	fp := newDiyFp(v)
	shift := bits.LeadingZeros64(fp.f)
	return diyFp{f: fp.f << uint(shift), e: fp.e - shift}
}

// mul returns x * y rounded to 64 bits.
func (x diyFp) mul(y diyFp) diyFp {
	hi, lo := bits.Mul64(x.f, y.f)
	return diyFp{f: hi + lo>>63, e: x.e + y.e + diyFpSignificandSize}
}

// minus returns x - y. Both must share an exponent and x.f >= y.f.
func (x diyFp) minus(y diyFp) diyFp {
	if x.e != y.e || x.f < y.f {
		panic("fpconv: invalid diyFp subtraction")
	}
	return diyFp{f: x.f - y.f, e: x.e}
}
