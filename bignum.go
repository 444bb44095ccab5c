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

import "math/bits"

// bigNumCapacity is the number of 32-bit blocks a bigNum can hold.
// The largest intermediate is a 53-bit significand scaled by 10^340.
const bigNumCapacity = 40

// bigNum is a fixed capacity unsigned integer.
// Blocks are stored little endian, and blocks[n-1] is never zero.
// A bigNum with n == 0 is zero.
type bigNum struct {
	n      int
	blocks [bigNumCapacity]uint32
}

func (b *bigNum) setUint32(v uint32) {
	if v == 0 {
		b.setZero()
		return
	}
	b.blocks[0] = v
	b.n = 1
}

func (b *bigNum) setUint64(v uint64) {
	if v <= 0xffffffff {
		b.setUint32(uint32(v))
		return
	}
	b.blocks[0] = uint32(v)
	b.blocks[1] = uint32(v >> 32)
	b.n = 2
}

func (b *bigNum) setZero() {
	b.n = 0
}

func (b *bigNum) isZero() bool {
	return b.n == 0
}

// compareBig returns -1, 0 or 1 as lhs is less than, equal to or greater than rhs.
func compareBig(lhs, rhs *bigNum) int {
	if lhs.n != rhs.n {
		if lhs.n < rhs.n {
			return -1
		}
		return 1
	}
	for i := lhs.n - 1; i >= 0; i-- {
		if lhs.blocks[i] != rhs.blocks[i] {
			if lhs.blocks[i] < rhs.blocks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// shiftLeft shifts b left by shift bits in place.
func (b *bigNum) shiftLeft(shift uint) {
	if b.n == 0 || shift == 0 {
		return
	}
	shiftBlocks := int(shift / 32)
	shiftBits := shift % 32
	in := b.n - 1
	out := in + shiftBlocks
	if out >= bigNumCapacity {
		panic("fpconv: bigNum shift overflow")
	}

	if shiftBits == 0 {
		for ; in >= 0; in-- {
			b.blocks[in+shiftBlocks] = b.blocks[in]
		}
		b.n += shiftBlocks
	} else {
		out++
		if out >= bigNumCapacity {
			panic("fpconv: bigNum shift overflow")
		}
		b.n = out + 1
		low := 32 - shiftBits
		var high uint32
		block := b.blocks[in]
		lowBits := block >> low
		for in > 0 {
			b.blocks[out] = high | lowBits
			high = block << shiftBits
			in--
			out--
			block = b.blocks[in]
			lowBits = block >> low
		}
		b.blocks[out] = high | lowBits
		b.blocks[out-1] = block << shiftBits
		if b.blocks[b.n-1] == 0 {
			b.n--
		}
	}
	for i := 0; i < shiftBlocks; i++ {
		b.blocks[i] = 0
	}
}

// shiftLeftUint64 sets out to input << shift.
func shiftLeftUint64(input uint64, shift uint, out *bigNum) {
	shiftBlocks := int(shift / 32)
	shiftBits := shift % 32
	if shiftBlocks+3 > bigNumCapacity {
		panic("fpconv: bigNum shift overflow")
	}
	for i := 0; i < shiftBlocks; i++ {
		out.blocks[i] = 0
	}
	lo := uint32(input)
	hi := uint32(input >> 32)
	if shiftBits == 0 {
		out.blocks[shiftBlocks] = lo
		out.blocks[shiftBlocks+1] = hi
		out.n = shiftBlocks + 2
	} else {
		out.blocks[shiftBlocks] = lo << shiftBits
		out.blocks[shiftBlocks+1] = hi<<shiftBits | lo>>(32-shiftBits)
		out.blocks[shiftBlocks+2] = hi >> (32 - shiftBits)
		out.n = shiftBlocks + 3
	}
	for out.n > 0 && out.blocks[out.n-1] == 0 {
		out.n--
	}
}

// mulUint32 sets result to lhs * v. result must not alias lhs.
func mulUint32(lhs *bigNum, v uint32, result *bigNum) {
	if lhs.n == 0 || v == 0 {
		result.setZero()
		return
	}
	if v == 1 {
		*result = *lhs
		return
	}
	var carry uint32
	for i := 0; i < lhs.n; i++ {
		hi, lo := bits.Mul32(lhs.blocks[i], v)
		lo, c := bits.Add32(lo, carry, 0)
		result.blocks[i] = lo
		carry = hi + c
	}
	result.n = lhs.n
	if carry != 0 {
		if lhs.n == bigNumCapacity {
			panic("fpconv: bigNum multiply overflow")
		}
		result.blocks[lhs.n] = carry
		result.n++
	}
}

// mulBig sets result to lhs * rhs. result must not alias either operand.
func mulBig(lhs, rhs, result *bigNum) {
	if lhs.n == 0 || rhs.n == 0 {
		result.setZero()
		return
	}
	large, small := lhs, rhs
	if large.n < small.n {
		large, small = small, large
	}
	if small.n == 1 {
		mulUint32(large, small.blocks[0], result)
		return
	}
	maxLen := large.n + small.n
	if maxLen > bigNumCapacity {
		panic("fpconv: bigNum multiply overflow")
	}
	for i := 0; i < maxLen; i++ {
		result.blocks[i] = 0
	}
	for i := 0; i < small.n; i++ {
		m := small.blocks[i]
		if m == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < large.n; j++ {
			p := uint64(result.blocks[i+j]) + uint64(large.blocks[j])*uint64(m) + carry
			carry = p >> 32
			result.blocks[i+j] = uint32(p)
		}
		result.blocks[i+large.n] = uint32(carry)
	}
	result.n = maxLen
	if result.blocks[maxLen-1] == 0 {
		result.n--
	}
}

func (b *bigNum) multiplyUint32(v uint32) {
	var tmp bigNum
	mulUint32(b, v, &tmp)
	*b = tmp
}

func (b *bigNum) multiply(v *bigNum) {
	var tmp bigNum
	mulBig(b, v, &tmp)
	*b = tmp
}

// multiply10 computes b = (b << 3) + (b << 1).
func (b *bigNum) multiply10() {
	if b.n == 0 {
		return
	}
	var carry uint32
	for i := 0; i < b.n; i++ {
		block := b.blocks[i]
		lo, c := bits.Add32(block<<3, block<<1, 0)
		lo, c2 := bits.Add32(lo, carry, 0)
		b.blocks[i] = lo
		carry = block>>29 + block>>31 + c + c2
	}
	if carry != 0 {
		if b.n == bigNumCapacity {
			panic("fpconv: bigNum multiply overflow")
		}
		b.blocks[b.n] = carry
		b.n++
	}
}

// pow10Big sets result to 10^exp.
func pow10Big(exp int, result *bigNum) {
	if exp < 0 {
		panic("fpconv: negative power of ten")
	}
	result.setUint32(pow10UInt32Table[exp&7])
	exp >>= 3
	for idx := 0; exp != 0; idx++ {
		if exp&1 != 0 {
			if idx >= len(pow10BigNumTable) {
				panic("fpconv: power of ten out of range")
			}
			result.multiply(&pow10BigNumTable[idx])
		}
		exp >>= 1
	}
}

// prepareHeuristicDivide shifts dividend and divisor so that the top block
// of divisor lies in [8, 429496729], keeping the quotient estimate of
// heuristicDivide off by at most one.
func prepareHeuristicDivide(dividend, divisor *bigNum) {
	top := divisor.blocks[divisor.n-1]
	if top < 8 || top > 429496729 {
		shift := uint(32+27-logBase2(top)) % 32
		dividend.shiftLeft(shift)
		divisor.shiftLeft(shift)
	}
}

// heuristicDivide returns the quotient of dividend / divisor and replaces
// dividend with the remainder. The quotient must fit in a single digit.
func heuristicDivide(dividend, divisor *bigNum) uint32 {
	n := divisor.n
	if dividend.n < n {
		return 0
	}
	final := n - 1
	quotient := dividend.blocks[final] / (divisor.blocks[final] + 1)

	if quotient != 0 {
		var borrow, carry uint64
		for i := 0; i < n; i++ {
			product := uint64(divisor.blocks[i])*uint64(quotient) + carry
			carry = product >> 32
			diff := uint64(dividend.blocks[i]) - (product & 0xffffffff) - borrow
			borrow = diff >> 32 & 1
			dividend.blocks[i] = uint32(diff)
		}
		for dividend.n > 0 && dividend.blocks[dividend.n-1] == 0 {
			dividend.n--
		}
	}

	if compareBig(dividend, divisor) >= 0 {
		quotient++
		var borrow uint64
		for i := 0; i < n; i++ {
			diff := uint64(dividend.blocks[i]) - uint64(divisor.blocks[i]) - borrow
			borrow = diff >> 32 & 1
			dividend.blocks[i] = uint32(diff)
		}
		for dividend.n > 0 && dividend.blocks[dividend.n-1] == 0 {
			dividend.n--
		}
	}
	return quotient
}

// logBase2 returns the index of the highest set bit of v.
func logBase2(v uint32) int {
	if v == 0 {
		panic("fpconv: logarithm of zero")
	}
	return bits.Len32(v) - 1
}

func logBase2Uint64(v uint64) int {
	if v == 0 {
		panic("fpconv: logarithm of zero")
	}
	return bits.Len64(v) - 1
}
