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
	"math"

	"github.com/onflow/integers/format"
)

// Int8

type Int8 int8

var _ FixedWidthInteger[Int8, UInt8] = Int8(0)
var _ SignedInteger[Int8, UInt8] = Int8(0)
var _ Number = Int8(0)

func (v Int8) String() string {
	return format.Int(int64(v))
}

func (v Int8) IsZero() bool {
	return v == 0
}

func (v Int8) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (Int8) IsSigned() bool {
	return true
}

func (Int8) BitWidth() int {
	return 8
}

func (Int8) SignBitIndex() int {
	return 7
}

func (v Int8) Equal(other Int8) bool {
	return v == other
}

func (v Int8) Less(other Int8) bool {
	return v < other
}

func (v Int8) Negate() Int8 {
	// INT32-C
	if v == math.MinInt8 {
		panic(&OverflowError{})
	}
	return -v
}

func (v Int8) Plus(other Int8) Int8 {
	return trapPlus(v, other)
}

func (v Int8) Minus(other Int8) Int8 {
	return trapMinus(v, other)
}

func (v Int8) Mul(other Int8) Int8 {
	return trapMul(v, other)
}

func (v Int8) Div(other Int8) Int8 {
	return trapDiv(v, other)
}

func (v Int8) Mod(other Int8) Int8 {
	return trapMod(v, other)
}

func (v Int8) DivMod(other Int8) (Int8, Int8) {
	// INT33-C
	// https://golang.org/ref/spec#Integer_operators
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if v == math.MinInt8 && other == -1 {
		panic(&OverflowError{})
	}
	return v / other, v % other
}

func (v Int8) PlusWithOverflow(other Int8) (Int8, bool) {
	return addOverflowSigned(v, other)
}

func (v Int8) MinusWithOverflow(other Int8) (Int8, bool) {
	return subOverflowSigned(v, other)
}

func (v Int8) MulWithOverflow(other Int8) (Int8, bool) {
	return mulOverflowSigned(v, other)
}

func (v Int8) DivWithOverflow(other Int8) (Int8, bool) {
	return divOverflowSigned(v, other, math.MinInt8)
}

func (v Int8) ModWithOverflow(other Int8) (Int8, bool) {
	return modOverflow(v, other)
}

func (Int8) Min() Int8 {
	return math.MinInt8
}

func (Int8) Max() Int8 {
	return math.MaxInt8
}

func (v Int8) Magnitude() UInt8 {
	if v < 0 {
		return UInt8(-uint8(v))
	}
	return UInt8(v)
}

func (v Int8) MulWide(other Int8) (Int8, UInt8) {
	p := int16(v) * int16(other)
	return Int8(p >> 8), UInt8(p)
}

func (v Int8) BitwiseAnd(other Int8) Int8 {
	return v & other
}

func (v Int8) BitwiseOr(other Int8) Int8 {
	return v | other
}

func (v Int8) BitwiseXor(other Int8) Int8 {
	return v ^ other
}

func (v Int8) WrappingShiftLeft(count Word) Int8 {
	return v << (count & 7)
}

func (v Int8) WrappingShiftRight(count Word) Int8 {
	return v >> (count & 7)
}

func (v Int8) Word(n int) Word {
	return signedWord(int64(v), n)
}

func (Int8) FromWords(words []Word) Int8 {
	return Int8(wordsToUint64(words))
}

func (Int8) FromBits(pattern Word) Int8 {
	return Int8(pattern)
}

func (v Int8) ToBigEndianBytes() []byte {
	return []byte{byte(v)}
}
