/*
 * Flow Integers - Overflow-checked integer types for Go
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package integers

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"

	"github.com/onflow/integers/errors"
	"github.com/onflow/integers/format"
)

// UInt128

type UInt128 struct {
	hi, lo uint64
}

var _ FixedWidthInteger[UInt128, UInt128] = UInt128{}
var _ UnsignedInteger[UInt128] = UInt128{}
var _ Number = UInt128{}

func NewUInt128(hi, lo uint64) UInt128 {
	return UInt128{hi: hi, lo: lo}
}

func NewUInt128FromUint64(v uint64) UInt128 {
	return UInt128{lo: v}
}

// NewUInt128FromBigInt reports false if b is negative or does not fit
// in 128 bits.
func NewUInt128FromBigInt(b *big.Int) (UInt128, bool) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return UInt128{}, false
	}
	return UInt128{
		hi: new(big.Int).Rsh(b, 64).Uint64(),
		lo: new(big.Int).And(b, uint64MaxBig).Uint64(),
	}, true
}

// Big returns the value as a new big.Int.
func (v UInt128) Big() *big.Int {
	b := new(big.Int).SetUint64(v.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(v.lo))
}

func (v UInt128) String() string {
	return format.BigInt(v.Big())
}

func (v UInt128) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}

func (v UInt128) Sign() int {
	if v.IsZero() {
		return 0
	}
	return 1
}

func (UInt128) IsSigned() bool {
	return false
}

func (UInt128) BitWidth() int {
	return 128
}

func (UInt128) SignBitIndex() int {
	return 127
}

func (v UInt128) Equal(other UInt128) bool {
	return v == other
}

func (v UInt128) Less(other UInt128) bool {
	return v.hi < other.hi || (v.hi == other.hi && v.lo < other.lo)
}

func (v UInt128) Plus(other UInt128) UInt128 {
	return trapPlus(v, other)
}

func (v UInt128) Minus(other UInt128) UInt128 {
	return trapMinus(v, other)
}

func (v UInt128) Mul(other UInt128) UInt128 {
	return trapMul(v, other)
}

func (v UInt128) Div(other UInt128) UInt128 {
	return trapDiv(v, other)
}

func (v UInt128) Mod(other UInt128) UInt128 {
	return trapMod(v, other)
}

func (v UInt128) DivMod(other UInt128) (UInt128, UInt128) {
	// INT33-C
	if other.IsZero() {
		panic(&DivisionByZeroError{})
	}
	return udivmod128(v, other)
}

func (v UInt128) PlusWithOverflow(other UInt128) (UInt128, bool) {
	lo, carry := bits.Add64(v.lo, other.lo, 0)
	hi, carry := bits.Add64(v.hi, other.hi, carry)
	return UInt128{hi: hi, lo: lo}, carry != 0
}

func (v UInt128) MinusWithOverflow(other UInt128) (UInt128, bool) {
	lo, borrow := bits.Sub64(v.lo, other.lo, 0)
	hi, borrow := bits.Sub64(v.hi, other.hi, borrow)
	return UInt128{hi: hi, lo: lo}, borrow != 0
}

func (v UInt128) MulWithOverflow(other UInt128) (UInt128, bool) {
	hi, lo := umul256(v, other)
	return lo, !hi.IsZero()
}

func (v UInt128) DivWithOverflow(other UInt128) (UInt128, bool) {
	if other.IsZero() {
		return v, true
	}
	q, _ := udivmod128(v, other)
	return q, false
}

func (v UInt128) ModWithOverflow(other UInt128) (UInt128, bool) {
	if other.IsZero() {
		return v, true
	}
	_, r := udivmod128(v, other)
	return r, false
}

func (UInt128) Min() UInt128 {
	return UInt128{}
}

func (UInt128) Max() UInt128 {
	return UInt128{hi: math.MaxUint64, lo: math.MaxUint64}
}

func (v UInt128) Magnitude() UInt128 {
	return v
}

func (v UInt128) MulWide(other UInt128) (UInt128, UInt128) {
	return umul256(v, other)
}

func (v UInt128) BitwiseAnd(other UInt128) UInt128 {
	return UInt128{hi: v.hi & other.hi, lo: v.lo & other.lo}
}

func (v UInt128) BitwiseOr(other UInt128) UInt128 {
	return UInt128{hi: v.hi | other.hi, lo: v.lo | other.lo}
}

func (v UInt128) BitwiseXor(other UInt128) UInt128 {
	return UInt128{hi: v.hi ^ other.hi, lo: v.lo ^ other.lo}
}

func (v UInt128) WrappingShiftLeft(count Word) UInt128 {
	return v.shl(uint(count & 127))
}

func (v UInt128) WrappingShiftRight(count Word) UInt128 {
	return v.shr(uint(count & 127))
}

func (v UInt128) Word(n int) Word {
	switch {
	case n < 0:
		panic(errors.NewUnreachableError())
	case n == 0:
		return Word(v.lo)
	case n == 1:
		return Word(v.hi)
	default:
		return 0
	}
}

func (UInt128) FromWords(words []Word) UInt128 {
	return uint128FromWords(words)
}

func (UInt128) FromBits(pattern Word) UInt128 {
	return UInt128{lo: uint64(pattern)}
}

func (v UInt128) ToBigEndianBytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], v.hi)
	binary.BigEndian.PutUint64(b[8:], v.lo)
	return b
}

// internal 128-bit mechanics, shared with Int128

// uint128FromWords interprets words as a little-endian two's-complement
// pattern: shorter patterns are sign-extended, longer ones truncated to
// the low 128 bits.
func uint128FromWords(words []Word) UInt128 {
	var v UInt128
	switch len(words) {
	case 0:
	case 1:
		v.lo = uint64(words[0])
		if int64(words[0]) < 0 {
			v.hi = math.MaxUint64
		}
	default:
		v.lo = uint64(words[0])
		v.hi = uint64(words[1])
	}
	return v
}

func (v UInt128) wrappingAdd(o UInt128) UInt128 {
	lo, carry := bits.Add64(v.lo, o.lo, 0)
	hi, _ := bits.Add64(v.hi, o.hi, carry)
	return UInt128{hi: hi, lo: lo}
}

func (v UInt128) wrappingSub(o UInt128) UInt128 {
	lo, borrow := bits.Sub64(v.lo, o.lo, 0)
	hi, _ := bits.Sub64(v.hi, o.hi, borrow)
	return UInt128{hi: hi, lo: lo}
}

// mul64 returns the low 128 bits of v * n.
func (v UInt128) mul64(n uint64) UInt128 {
	hi, lo := bits.Mul64(v.lo, n)
	return UInt128{hi: hi + v.hi*n, lo: lo}
}

func (v UInt128) shl(n uint) UInt128 {
	switch {
	case n == 0:
		return v
	case n >= 64:
		return UInt128{hi: v.lo << (n - 64)}
	default:
		return UInt128{
			hi: v.hi<<n | v.lo>>(64-n),
			lo: v.lo << n,
		}
	}
}

func (v UInt128) shr(n uint) UInt128 {
	switch {
	case n == 0:
		return v
	case n >= 64:
		return UInt128{lo: v.hi >> (n - 64)}
	default:
		return UInt128{
			hi: v.hi >> n,
			lo: v.lo>>n | v.hi<<(64-n),
		}
	}
}

// umul256 returns the exact 256-bit product as a (hi, lo) pair of
// 128-bit halves, by schoolbook accumulation of the four 64-bit
// partial products.
func umul256(v, o UInt128) (hi, lo UInt128) {
	h1, l1 := bits.Mul64(v.lo, o.lo)
	h2, l2 := bits.Mul64(v.lo, o.hi)
	h3, l3 := bits.Mul64(v.hi, o.lo)
	h4, l4 := bits.Mul64(v.hi, o.hi)

	w1, c1 := bits.Add64(h1, l2, 0)
	w1, c2 := bits.Add64(w1, l3, 0)
	w2, c3 := bits.Add64(h2, h3, c1)
	w2, c4 := bits.Add64(w2, l4, c2)
	w3 := h4 + c3 + c4

	return UInt128{hi: w3, lo: w2}, UInt128{hi: w1, lo: l1}
}

// udivmod128 returns the truncating quotient and remainder for a
// non-zero divisor. Single-word divisors take two 128-by-64 steps;
// two-word divisors follow Hacker's Delight 9-5: normalize, estimate
// with a 128-by-64 division, and correct the at-most-off-by-one
// quotient.
func udivmod128(u, by UInt128) (q, r UInt128) {
	if by.hi == 0 {
		var qhi uint64
		rem := u.hi
		if u.hi >= by.lo {
			qhi = u.hi / by.lo
			rem = u.hi % by.lo
		}
		qlo, rlo := bits.Div64(rem, u.lo, by.lo)
		return UInt128{hi: qhi, lo: qlo}, UInt128{lo: rlo}
	}

	s := uint(bits.LeadingZeros64(by.hi))
	byn := by.shl(s)
	un := u.shr(1)
	tq, _ := bits.Div64(un.hi, un.lo, byn.hi)
	tq >>= 63 - s
	if tq != 0 {
		tq--
	}

	q = UInt128{lo: tq}
	r = u.wrappingSub(by.mul64(tq))
	if !r.Less(by) {
		q = q.wrappingAdd(UInt128{lo: 1})
		r = r.wrappingSub(by)
	}
	return q, r
}
