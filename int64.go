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
	"math/bits"

	"github.com/onflow/integers/format"
)

// Int64

type Int64 int64

var _ FixedWidthInteger[Int64, UInt64] = Int64(0)
var _ SignedInteger[Int64, UInt64] = Int64(0)
var _ Number = Int64(0)

func (v Int64) String() string {
	return format.Int(int64(v))
}

func (v Int64) IsZero() bool {
	return v == 0
}

func (v Int64) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (Int64) IsSigned() bool {
	return true
}

func (Int64) BitWidth() int {
	return 64
}

func (Int64) SignBitIndex() int {
	return 63
}

func (v Int64) Equal(other Int64) bool {
	return v == other
}

func (v Int64) Less(other Int64) bool {
	return v < other
}

func (v Int64) Negate() Int64 {
	// INT32-C
	if v == math.MinInt64 {
		panic(&OverflowError{})
	}
	return -v
}

func (v Int64) Plus(other Int64) Int64 {
	return trapPlus(v, other)
}

func (v Int64) Minus(other Int64) Int64 {
	return trapMinus(v, other)
}

func (v Int64) Mul(other Int64) Int64 {
	return trapMul(v, other)
}

func (v Int64) Div(other Int64) Int64 {
	return trapDiv(v, other)
}

func (v Int64) Mod(other Int64) Int64 {
	return trapMod(v, other)
}

func (v Int64) DivMod(other Int64) (Int64, Int64) {
	// INT33-C
	// https://golang.org/ref/spec#Integer_operators
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if v == math.MinInt64 && other == -1 {
		panic(&OverflowError{})
	}
	return v / other, v % other
}

func (v Int64) PlusWithOverflow(other Int64) (Int64, bool) {
	return addOverflowSigned(v, other)
}

func (v Int64) MinusWithOverflow(other Int64) (Int64, bool) {
	return subOverflowSigned(v, other)
}

func (v Int64) MulWithOverflow(other Int64) (Int64, bool) {
	return mulOverflowSigned(v, other)
}

func (v Int64) DivWithOverflow(other Int64) (Int64, bool) {
	return divOverflowSigned(v, other, math.MinInt64)
}

func (v Int64) ModWithOverflow(other Int64) (Int64, bool) {
	return modOverflow(v, other)
}

func (Int64) Min() Int64 {
	return math.MinInt64
}

func (Int64) Max() Int64 {
	return math.MaxInt64
}

func (v Int64) Magnitude() UInt64 {
	if v < 0 {
		return UInt64(-uint64(v))
	}
	return UInt64(v)
}

func (v Int64) MulWide(other Int64) (Int64, UInt64) {
	hi, lo := bits.Mul64(uint64(v), uint64(other))
	// each negative operand contributes a 2^64 excess to the unsigned
	// high half (Hacker's Delight 8-3)
	if v < 0 {
		hi -= uint64(other)
	}
	if other < 0 {
		hi -= uint64(v)
	}
	return Int64(hi), UInt64(lo)
}

func (v Int64) BitwiseAnd(other Int64) Int64 {
	return v & other
}

func (v Int64) BitwiseOr(other Int64) Int64 {
	return v | other
}

func (v Int64) BitwiseXor(other Int64) Int64 {
	return v ^ other
}

func (v Int64) WrappingShiftLeft(count Word) Int64 {
	return v << (count & 63)
}

func (v Int64) WrappingShiftRight(count Word) Int64 {
	return v >> (count & 63)
}

func (v Int64) Word(n int) Word {
	return signedWord(int64(v), n)
}

func (Int64) FromWords(words []Word) Int64 {
	return Int64(wordsToUint64(words))
}

func (Int64) FromBits(pattern Word) Int64 {
	return Int64(pattern)
}

func (v Int64) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
