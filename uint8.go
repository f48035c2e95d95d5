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

// UInt8

type UInt8 uint8

var _ FixedWidthInteger[UInt8, UInt8] = UInt8(0)
var _ UnsignedInteger[UInt8] = UInt8(0)
var _ Number = UInt8(0)

func (v UInt8) String() string {
	return format.Uint(uint64(v))
}

func (v UInt8) IsZero() bool {
	return v == 0
}

func (v UInt8) Sign() int {
	if v == 0 {
		return 0
	}
	return 1
}

func (UInt8) IsSigned() bool {
	return false
}

func (UInt8) BitWidth() int {
	return 8
}

func (UInt8) SignBitIndex() int {
	return 7
}

func (v UInt8) Equal(other UInt8) bool {
	return v == other
}

func (v UInt8) Less(other UInt8) bool {
	return v < other
}

func (v UInt8) Plus(other UInt8) UInt8 {
	return trapPlus(v, other)
}

func (v UInt8) Minus(other UInt8) UInt8 {
	return trapMinus(v, other)
}

func (v UInt8) Mul(other UInt8) UInt8 {
	return trapMul(v, other)
}

func (v UInt8) Div(other UInt8) UInt8 {
	return trapDiv(v, other)
}

func (v UInt8) Mod(other UInt8) UInt8 {
	return trapMod(v, other)
}

func (v UInt8) DivMod(other UInt8) (UInt8, UInt8) {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other, v % other
}

func (v UInt8) PlusWithOverflow(other UInt8) (UInt8, bool) {
	return addOverflowUnsigned(v, other)
}

func (v UInt8) MinusWithOverflow(other UInt8) (UInt8, bool) {
	return subOverflowUnsigned(v, other)
}

func (v UInt8) MulWithOverflow(other UInt8) (UInt8, bool) {
	return mulOverflowUnsigned(v, other)
}

func (v UInt8) DivWithOverflow(other UInt8) (UInt8, bool) {
	return divOverflowUnsigned(v, other)
}

func (v UInt8) ModWithOverflow(other UInt8) (UInt8, bool) {
	return modOverflow(v, other)
}

func (UInt8) Min() UInt8 {
	return 0
}

func (UInt8) Max() UInt8 {
	return math.MaxUint8
}

func (v UInt8) Magnitude() UInt8 {
	return v
}

func (v UInt8) MulWide(other UInt8) (UInt8, UInt8) {
	p := uint16(v) * uint16(other)
	return UInt8(p >> 8), UInt8(p)
}

func (v UInt8) BitwiseAnd(other UInt8) UInt8 {
	return v & other
}

func (v UInt8) BitwiseOr(other UInt8) UInt8 {
	return v | other
}

func (v UInt8) BitwiseXor(other UInt8) UInt8 {
	return v ^ other
}

func (v UInt8) WrappingShiftLeft(count Word) UInt8 {
	return v << (count & 7)
}

func (v UInt8) WrappingShiftRight(count Word) UInt8 {
	return v >> (count & 7)
}

func (v UInt8) Word(n int) Word {
	return unsignedWord(uint64(v), n)
}

func (UInt8) FromWords(words []Word) UInt8 {
	return UInt8(wordsToUint64(words))
}

func (UInt8) FromBits(pattern Word) UInt8 {
	return UInt8(pattern)
}

func (v UInt8) ToBigEndianBytes() []byte {
	return []byte{byte(v)}
}
