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

// UInt64

type UInt64 uint64

var _ FixedWidthInteger[UInt64, UInt64] = UInt64(0)
var _ UnsignedInteger[UInt64] = UInt64(0)
var _ Number = UInt64(0)

func (v UInt64) String() string {
	return format.Uint(uint64(v))
}

func (v UInt64) IsZero() bool {
	return v == 0
}

func (v UInt64) Sign() int {
	if v == 0 {
		return 0
	}
	return 1
}

func (UInt64) IsSigned() bool {
	return false
}

func (UInt64) BitWidth() int {
	return 64
}

func (UInt64) SignBitIndex() int {
	return 63
}

func (v UInt64) Equal(other UInt64) bool {
	return v == other
}

func (v UInt64) Less(other UInt64) bool {
	return v < other
}

func (v UInt64) Plus(other UInt64) UInt64 {
	return trapPlus(v, other)
}

func (v UInt64) Minus(other UInt64) UInt64 {
	return trapMinus(v, other)
}

func (v UInt64) Mul(other UInt64) UInt64 {
	return trapMul(v, other)
}

func (v UInt64) Div(other UInt64) UInt64 {
	return trapDiv(v, other)
}

func (v UInt64) Mod(other UInt64) UInt64 {
	return trapMod(v, other)
}

func (v UInt64) DivMod(other UInt64) (UInt64, UInt64) {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other, v % other
}

func (v UInt64) PlusWithOverflow(other UInt64) (UInt64, bool) {
	sum, carry := bits.Add64(uint64(v), uint64(other), 0)
	return UInt64(sum), carry != 0
}

func (v UInt64) MinusWithOverflow(other UInt64) (UInt64, bool) {
	diff, borrow := bits.Sub64(uint64(v), uint64(other), 0)
	return UInt64(diff), borrow != 0
}

func (v UInt64) MulWithOverflow(other UInt64) (UInt64, bool) {
	hi, lo := bits.Mul64(uint64(v), uint64(other))
	return UInt64(lo), hi != 0
}

func (v UInt64) DivWithOverflow(other UInt64) (UInt64, bool) {
	return divOverflowUnsigned(v, other)
}

func (v UInt64) ModWithOverflow(other UInt64) (UInt64, bool) {
	return modOverflow(v, other)
}

func (UInt64) Min() UInt64 {
	return 0
}

func (UInt64) Max() UInt64 {
	return math.MaxUint64
}

func (v UInt64) Magnitude() UInt64 {
	return v
}

func (v UInt64) MulWide(other UInt64) (UInt64, UInt64) {
	hi, lo := bits.Mul64(uint64(v), uint64(other))
	return UInt64(hi), UInt64(lo)
}

func (v UInt64) BitwiseAnd(other UInt64) UInt64 {
	return v & other
}

func (v UInt64) BitwiseOr(other UInt64) UInt64 {
	return v | other
}

func (v UInt64) BitwiseXor(other UInt64) UInt64 {
	return v ^ other
}

func (v UInt64) WrappingShiftLeft(count Word) UInt64 {
	return v << (count & 63)
}

func (v UInt64) WrappingShiftRight(count Word) UInt64 {
	return v >> (count & 63)
}

func (v UInt64) Word(n int) Word {
	return unsignedWord(uint64(v), n)
}

func (UInt64) FromWords(words []Word) UInt64 {
	return UInt64(wordsToUint64(words))
}

func (UInt64) FromBits(pattern Word) UInt64 {
	return UInt64(pattern)
}

func (v UInt64) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
