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

// UInt32

type UInt32 uint32

var _ FixedWidthInteger[UInt32, UInt32] = UInt32(0)
var _ UnsignedInteger[UInt32] = UInt32(0)
var _ Number = UInt32(0)

func (v UInt32) String() string {
	return format.Uint(uint64(v))
}

func (v UInt32) IsZero() bool {
	return v == 0
}

func (v UInt32) Sign() int {
	if v == 0 {
		return 0
	}
	return 1
}

func (UInt32) IsSigned() bool {
	return false
}

func (UInt32) BitWidth() int {
	return 32
}

func (UInt32) SignBitIndex() int {
	return 31
}

func (v UInt32) Equal(other UInt32) bool {
	return v == other
}

func (v UInt32) Less(other UInt32) bool {
	return v < other
}

func (v UInt32) Plus(other UInt32) UInt32 {
	return trapPlus(v, other)
}

func (v UInt32) Minus(other UInt32) UInt32 {
	return trapMinus(v, other)
}

func (v UInt32) Mul(other UInt32) UInt32 {
	return trapMul(v, other)
}

func (v UInt32) Div(other UInt32) UInt32 {
	return trapDiv(v, other)
}

func (v UInt32) Mod(other UInt32) UInt32 {
	return trapMod(v, other)
}

func (v UInt32) DivMod(other UInt32) (UInt32, UInt32) {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other, v % other
}

func (v UInt32) PlusWithOverflow(other UInt32) (UInt32, bool) {
	return addOverflowUnsigned(v, other)
}

func (v UInt32) MinusWithOverflow(other UInt32) (UInt32, bool) {
	return subOverflowUnsigned(v, other)
}

func (v UInt32) MulWithOverflow(other UInt32) (UInt32, bool) {
	return mulOverflowUnsigned(v, other)
}

func (v UInt32) DivWithOverflow(other UInt32) (UInt32, bool) {
	return divOverflowUnsigned(v, other)
}

func (v UInt32) ModWithOverflow(other UInt32) (UInt32, bool) {
	return modOverflow(v, other)
}

func (UInt32) Min() UInt32 {
	return 0
}

func (UInt32) Max() UInt32 {
	return math.MaxUint32
}

func (v UInt32) Magnitude() UInt32 {
	return v
}

func (v UInt32) MulWide(other UInt32) (UInt32, UInt32) {
	p := uint64(v) * uint64(other)
	return UInt32(p >> 32), UInt32(p)
}

func (v UInt32) BitwiseAnd(other UInt32) UInt32 {
	return v & other
}

func (v UInt32) BitwiseOr(other UInt32) UInt32 {
	return v | other
}

func (v UInt32) BitwiseXor(other UInt32) UInt32 {
	return v ^ other
}

func (v UInt32) WrappingShiftLeft(count Word) UInt32 {
	return v << (count & 31)
}

func (v UInt32) WrappingShiftRight(count Word) UInt32 {
	return v >> (count & 31)
}

func (v UInt32) Word(n int) Word {
	return unsignedWord(uint64(v), n)
}

func (UInt32) FromWords(words []Word) UInt32 {
	return UInt32(wordsToUint64(words))
}

func (UInt32) FromBits(pattern Word) UInt32 {
	return UInt32(pattern)
}

func (v UInt32) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
