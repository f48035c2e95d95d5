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

// UInt16

type UInt16 uint16

var _ FixedWidthInteger[UInt16, UInt16] = UInt16(0)
var _ UnsignedInteger[UInt16] = UInt16(0)
var _ Number = UInt16(0)

func (v UInt16) String() string {
	return format.Uint(uint64(v))
}

func (v UInt16) IsZero() bool {
	return v == 0
}

func (v UInt16) Sign() int {
	if v == 0 {
		return 0
	}
	return 1
}

func (UInt16) IsSigned() bool {
	return false
}

func (UInt16) BitWidth() int {
	return 16
}

func (UInt16) SignBitIndex() int {
	return 15
}

func (v UInt16) Equal(other UInt16) bool {
	return v == other
}

func (v UInt16) Less(other UInt16) bool {
	return v < other
}

func (v UInt16) Plus(other UInt16) UInt16 {
	return trapPlus(v, other)
}

func (v UInt16) Minus(other UInt16) UInt16 {
	return trapMinus(v, other)
}

func (v UInt16) Mul(other UInt16) UInt16 {
	return trapMul(v, other)
}

func (v UInt16) Div(other UInt16) UInt16 {
	return trapDiv(v, other)
}

func (v UInt16) Mod(other UInt16) UInt16 {
	return trapMod(v, other)
}

func (v UInt16) DivMod(other UInt16) (UInt16, UInt16) {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other, v % other
}

func (v UInt16) PlusWithOverflow(other UInt16) (UInt16, bool) {
	return addOverflowUnsigned(v, other)
}

func (v UInt16) MinusWithOverflow(other UInt16) (UInt16, bool) {
	return subOverflowUnsigned(v, other)
}

func (v UInt16) MulWithOverflow(other UInt16) (UInt16, bool) {
	return mulOverflowUnsigned(v, other)
}

func (v UInt16) DivWithOverflow(other UInt16) (UInt16, bool) {
	return divOverflowUnsigned(v, other)
}

func (v UInt16) ModWithOverflow(other UInt16) (UInt16, bool) {
	return modOverflow(v, other)
}

func (UInt16) Min() UInt16 {
	return 0
}

func (UInt16) Max() UInt16 {
	return math.MaxUint16
}

func (v UInt16) Magnitude() UInt16 {
	return v
}

func (v UInt16) MulWide(other UInt16) (UInt16, UInt16) {
	p := uint32(v) * uint32(other)
	return UInt16(p >> 16), UInt16(p)
}

func (v UInt16) BitwiseAnd(other UInt16) UInt16 {
	return v & other
}

func (v UInt16) BitwiseOr(other UInt16) UInt16 {
	return v | other
}

func (v UInt16) BitwiseXor(other UInt16) UInt16 {
	return v ^ other
}

func (v UInt16) WrappingShiftLeft(count Word) UInt16 {
	return v << (count & 15)
}

func (v UInt16) WrappingShiftRight(count Word) UInt16 {
	return v >> (count & 15)
}

func (v UInt16) Word(n int) Word {
	return unsignedWord(uint64(v), n)
}

func (UInt16) FromWords(words []Word) UInt16 {
	return UInt16(wordsToUint64(words))
}

func (UInt16) FromBits(pattern Word) UInt16 {
	return UInt16(pattern)
}

func (v UInt16) ToBigEndianBytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}
