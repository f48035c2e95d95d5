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

var (
	uint64MaxBig = new(big.Int).SetUint64(math.MaxUint64)

	int128MinBig = new(big.Int).Lsh(big.NewInt(-1), 127)
	int128MaxBig = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Int128

// Int128 is a two's-complement 128-bit integer held as two unsigned
// halves.
type Int128 struct {
	hi, lo uint64
}

var _ FixedWidthInteger[Int128, UInt128] = Int128{}
var _ SignedInteger[Int128, UInt128] = Int128{}
var _ Number = Int128{}

func NewInt128(hi int64, lo uint64) Int128 {
	return Int128{hi: uint64(hi), lo: lo}
}

func NewInt128FromInt64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return Int128{hi: hi, lo: uint64(v)}
}

// NewInt128FromBigInt reports false if b does not fit in a signed
// 128-bit integer.
func NewInt128FromBigInt(b *big.Int) (Int128, bool) {
	if b.Cmp(int128MinBig) < 0 || b.Cmp(int128MaxBig) > 0 {
		return Int128{}, false
	}
	abs := b
	if b.Sign() < 0 {
		abs = new(big.Int).Neg(b)
	}
	u, _ := NewUInt128FromBigInt(abs)
	v := Int128(u)
	if b.Sign() < 0 {
		v = v.neg()
	}
	return v, true
}

// Big returns the value as a new big.Int.
func (v Int128) Big() *big.Int {
	if int64(v.hi) < 0 {
		b := UInt128(v.neg()).Big()
		return b.Neg(b)
	}
	return UInt128(v).Big()
}

func (v Int128) String() string {
	return format.BigInt(v.Big())
}

func (v Int128) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}

func (v Int128) Sign() int {
	switch {
	case int64(v.hi) < 0:
		return -1
	case v.hi == 0 && v.lo == 0:
		return 0
	default:
		return 1
	}
}

func (Int128) IsSigned() bool {
	return true
}

func (Int128) BitWidth() int {
	return 128
}

func (Int128) SignBitIndex() int {
	return 127
}

func (v Int128) Equal(other Int128) bool {
	return v == other
}

func (v Int128) Less(other Int128) bool {
	return int64(v.hi) < int64(other.hi) ||
		(v.hi == other.hi && v.lo < other.lo)
}

func (v Int128) Negate() Int128 {
	// INT32-C
	if v == v.Min() {
		panic(&OverflowError{})
	}
	return v.neg()
}

func (v Int128) Plus(other Int128) Int128 {
	return trapPlus(v, other)
}

func (v Int128) Minus(other Int128) Int128 {
	return trapMinus(v, other)
}

func (v Int128) Mul(other Int128) Int128 {
	return trapMul(v, other)
}

func (v Int128) Div(other Int128) Int128 {
	return trapDiv(v, other)
}

func (v Int128) Mod(other Int128) Int128 {
	return trapMod(v, other)
}

func (v Int128) DivMod(other Int128) (Int128, Int128) {
	// INT33-C
	// https://golang.org/ref/spec#Integer_operators
	if other.IsZero() {
		panic(&DivisionByZeroError{})
	}
	if v == v.Min() && other == int128MinusOne {
		panic(&OverflowError{})
	}
	q, r := udivmod128(v.Magnitude(), other.Magnitude())
	qs := Int128(q)
	if (v.Sign() < 0) != (other.Sign() < 0) {
		qs = qs.neg()
	}
	rs := Int128(r)
	if v.Sign() < 0 {
		rs = rs.neg()
	}
	return qs, rs
}

func (v Int128) PlusWithOverflow(other Int128) (Int128, bool) {
	r := Int128(UInt128(v).wrappingAdd(UInt128(other)))
	overflow := v.hi>>63 == other.hi>>63 && r.hi>>63 != v.hi>>63
	return r, overflow
}

func (v Int128) MinusWithOverflow(other Int128) (Int128, bool) {
	r := Int128(UInt128(v).wrappingSub(UInt128(other)))
	overflow := v.hi>>63 != other.hi>>63 && r.hi>>63 != v.hi>>63
	return r, overflow
}

func (v Int128) MulWithOverflow(other Int128) (Int128, bool) {
	hi, lo := v.MulWide(other)
	r := Int128(lo)
	// the product is exact iff the high half is the sign extension
	// of the low half
	var expect Int128
	if int64(r.hi) < 0 {
		expect = int128MinusOne
	}
	return r, hi != expect
}

func (v Int128) DivWithOverflow(other Int128) (Int128, bool) {
	if other.IsZero() {
		return v, true
	}
	if v == v.Min() && other == int128MinusOne {
		return v, true
	}
	q, _ := v.DivMod(other)
	return q, false
}

func (v Int128) ModWithOverflow(other Int128) (Int128, bool) {
	if other.IsZero() {
		return v, true
	}
	if v == v.Min() && other == int128MinusOne {
		return Int128{}, false
	}
	_, r := v.DivMod(other)
	return r, false
}

func (Int128) Min() Int128 {
	return Int128{hi: 1 << 63}
}

func (Int128) Max() Int128 {
	return Int128{hi: math.MaxInt64, lo: math.MaxUint64}
}

func (v Int128) Magnitude() UInt128 {
	if int64(v.hi) < 0 {
		return UInt128(v.neg())
	}
	return UInt128(v)
}

func (v Int128) MulWide(other Int128) (Int128, UInt128) {
	hi, lo := umul256(UInt128(v), UInt128(other))
	// each negative operand contributes a 2^128 excess to the
	// unsigned high half (Hacker's Delight 8-3)
	if int64(v.hi) < 0 {
		hi = hi.wrappingSub(UInt128(other))
	}
	if int64(other.hi) < 0 {
		hi = hi.wrappingSub(UInt128(v))
	}
	return Int128(hi), lo
}

func (v Int128) BitwiseAnd(other Int128) Int128 {
	return Int128{hi: v.hi & other.hi, lo: v.lo & other.lo}
}

func (v Int128) BitwiseOr(other Int128) Int128 {
	return Int128{hi: v.hi | other.hi, lo: v.lo | other.lo}
}

func (v Int128) BitwiseXor(other Int128) Int128 {
	return Int128{hi: v.hi ^ other.hi, lo: v.lo ^ other.lo}
}

func (v Int128) WrappingShiftLeft(count Word) Int128 {
	return Int128(UInt128(v).shl(uint(count & 127)))
}

func (v Int128) WrappingShiftRight(count Word) Int128 {
	return Int128(UInt128(v).sar(uint(count & 127)))
}

func (v Int128) Word(n int) Word {
	switch {
	case n < 0:
		panic(errors.NewUnreachableError())
	case n == 0:
		return Word(v.lo)
	case n == 1:
		return Word(v.hi)
	case int64(v.hi) < 0:
		return ^Word(0)
	default:
		return 0
	}
}

func (Int128) FromWords(words []Word) Int128 {
	return Int128(uint128FromWords(words))
}

func (Int128) FromBits(pattern Word) Int128 {
	return Int128{lo: uint64(pattern)}
}

func (v Int128) ToBigEndianBytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], v.hi)
	binary.BigEndian.PutUint64(b[8:], v.lo)
	return b
}

var int128MinusOne = Int128{hi: math.MaxUint64, lo: math.MaxUint64}

func (v Int128) neg() Int128 {
	lo, borrow := bits.Sub64(0, v.lo, 0)
	hi, _ := bits.Sub64(0, v.hi, borrow)
	return Int128{hi: hi, lo: lo}
}

// sar is an arithmetic right shift of the two's-complement pattern.
func (v UInt128) sar(n uint) UInt128 {
	switch {
	case n == 0:
		return v
	case n >= 64:
		return UInt128{
			hi: uint64(int64(v.hi) >> 63),
			lo: uint64(int64(v.hi) >> (n - 64)),
		}
	default:
		return UInt128{
			hi: uint64(int64(v.hi) >> n),
			lo: v.lo>>n | v.hi<<(64-n),
		}
	}
}
