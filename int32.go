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

	"github.com/onflow/integers/format"
)

// Int32

type Int32 int32

var _ FixedWidthInteger[Int32, UInt32] = Int32(0)
var _ SignedInteger[Int32, UInt32] = Int32(0)
var _ Number = Int32(0)

func (v Int32) String() string {
	return format.Int(int64(v))
}

func (v Int32) IsZero() bool {
	return v == 0
}

func (v Int32) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (Int32) IsSigned() bool {
	return true
}

func (Int32) BitWidth() int {
	return 32
}

func (Int32) SignBitIndex() int {
	return 31
}

func (v Int32) Equal(other Int32) bool {
	return v == other
}

func (v Int32) Less(other Int32) bool {
	return v < other
}

func (v Int32) Negate() Int32 {
	// INT32-C
	if v == math.MinInt32 {
		panic(&OverflowError{})
	}
	return -v
}

func (v Int32) Plus(other Int32) Int32 {
	return trapPlus(v, other)
}

func (v Int32) Minus(other Int32) Int32 {
	return trapMinus(v, other)
}

func (v Int32) Mul(other Int32) Int32 {
	return trapMul(v, other)
}

func (v Int32) Div(other Int32) Int32 {
	return trapDiv(v, other)
}

func (v Int32) Mod(other Int32) Int32 {
	return trapMod(v, other)
}

func (v Int32) DivMod(other Int32) (Int32, Int32) {
	// INT33-C
	// https://golang.org/ref/spec#Integer_operators
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if v == math.MinInt32 && other == -1 {
		panic(&OverflowError{})
	}
	return v / other, v % other
}

func (v Int32) PlusWithOverflow(other Int32) (Int32, bool) {
	return addOverflowSigned(v, other)
}

func (v Int32) MinusWithOverflow(other Int32) (Int32, bool) {
	return subOverflowSigned(v, other)
}

func (v Int32) MulWithOverflow(other Int32) (Int32, bool) {
	return mulOverflowSigned(v, other)
}

func (v Int32) DivWithOverflow(other Int32) (Int32, bool) {
	return divOverflowSigned(v, other, math.MinInt32)
}

func (v Int32) ModWithOverflow(other Int32) (Int32, bool) {
	return modOverflow(v, other)
}

func (Int32) Min() Int32 {
	return math.MinInt32
}

func (Int32) Max() Int32 {
	return math.MaxInt32
}

func (v Int32) Magnitude() UInt32 {
	if v < 0 {
		return UInt32(-uint32(v))
	}
	return UInt32(v)
}

func (v Int32) MulWide(other Int32) (Int32, UInt32) {
	p := int64(v) * int64(other)
	return Int32(p >> 32), UInt32(p)
}

func (v Int32) BitwiseAnd(other Int32) Int32 {
	return v & other
}

func (v Int32) BitwiseOr(other Int32) Int32 {
	return v | other
}

func (v Int32) BitwiseXor(other Int32) Int32 {
	return v ^ other
}

func (v Int32) WrappingShiftLeft(count Word) Int32 {
	return v << (count & 31)
}

func (v Int32) WrappingShiftRight(count Word) Int32 {
	return v >> (count & 31)
}

func (v Int32) Word(n int) Word {
	return signedWord(int64(v), n)
}

func (Int32) FromWords(words []Word) Int32 {
	return Int32(wordsToUint64(words))
}

func (Int32) FromBits(pattern Word) Int32 {
	return Int32(pattern)
}

func (v Int32) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
