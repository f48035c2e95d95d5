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

// Int16

type Int16 int16

var _ FixedWidthInteger[Int16, UInt16] = Int16(0)
var _ SignedInteger[Int16, UInt16] = Int16(0)
var _ Number = Int16(0)

func (v Int16) String() string {
	return format.Int(int64(v))
}

func (v Int16) IsZero() bool {
	return v == 0
}

func (v Int16) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (Int16) IsSigned() bool {
	return true
}

func (Int16) BitWidth() int {
	return 16
}

func (Int16) SignBitIndex() int {
	return 15
}

func (v Int16) Equal(other Int16) bool {
	return v == other
}

func (v Int16) Less(other Int16) bool {
	return v < other
}

func (v Int16) Negate() Int16 {
	// INT32-C
	if v == math.MinInt16 {
		panic(&OverflowError{})
	}
	return -v
}

func (v Int16) Plus(other Int16) Int16 {
	return trapPlus(v, other)
}

func (v Int16) Minus(other Int16) Int16 {
	return trapMinus(v, other)
}

func (v Int16) Mul(other Int16) Int16 {
	return trapMul(v, other)
}

func (v Int16) Div(other Int16) Int16 {
	return trapDiv(v, other)
}

func (v Int16) Mod(other Int16) Int16 {
	return trapMod(v, other)
}

func (v Int16) DivMod(other Int16) (Int16, Int16) {
	// INT33-C
	// https://golang.org/ref/spec#Integer_operators
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if v == math.MinInt16 && other == -1 {
		panic(&OverflowError{})
	}
	return v / other, v % other
}

func (v Int16) PlusWithOverflow(other Int16) (Int16, bool) {
	return addOverflowSigned(v, other)
}

func (v Int16) MinusWithOverflow(other Int16) (Int16, bool) {
	return subOverflowSigned(v, other)
}

func (v Int16) MulWithOverflow(other Int16) (Int16, bool) {
	return mulOverflowSigned(v, other)
}

func (v Int16) DivWithOverflow(other Int16) (Int16, bool) {
	return divOverflowSigned(v, other, math.MinInt16)
}

func (v Int16) ModWithOverflow(other Int16) (Int16, bool) {
	return modOverflow(v, other)
}

func (Int16) Min() Int16 {
	return math.MinInt16
}

func (Int16) Max() Int16 {
	return math.MaxInt16
}

func (v Int16) Magnitude() UInt16 {
	if v < 0 {
		return UInt16(-uint16(v))
	}
	return UInt16(v)
}

func (v Int16) MulWide(other Int16) (Int16, UInt16) {
	p := int32(v) * int32(other)
	return Int16(p >> 16), UInt16(p)
}

func (v Int16) BitwiseAnd(other Int16) Int16 {
	return v & other
}

func (v Int16) BitwiseOr(other Int16) Int16 {
	return v | other
}

func (v Int16) BitwiseXor(other Int16) Int16 {
	return v ^ other
}

func (v Int16) WrappingShiftLeft(count Word) Int16 {
	return v << (count & 15)
}

func (v Int16) WrappingShiftRight(count Word) Int16 {
	return v >> (count & 15)
}

func (v Int16) Word(n int) Word {
	return signedWord(int64(v), n)
}

func (Int16) FromWords(words []Word) Int16 {
	return Int16(wordsToUint64(words))
}

func (Int16) FromBits(pattern Word) Int16 {
	return Int16(pattern)
}

func (v Int16) ToBigEndianBytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}
