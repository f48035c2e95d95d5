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
	"fmt"
)

// Word

// Word is one machine-word-sized chunk of a value's two's-complement
// representation. It is 64 bits wide on all platforms, so word streams
// produced by Integer conformances are portable.
type Word uint64

// WordBits is the number of bits in a Word.
const WordBits = 64

// wordsNeeded returns the number of words that fully determine a value
// of the given bit width, including a word carrying the sign.
func wordsNeeded(bitWidth int) int {
	return bitWidth/WordBits + 1
}

// Arithmetic

// Arithmetic is the minimal capability every number-like type satisfies:
// homogeneous addition, subtraction, multiplication, and division.
//
// The zero value of a conforming type is the additive identity.
// All operations return new values; a value is never mutated in place.
// The failure policy is the conforming type's: every type in this
// package traps, i.e. panics with one of the typed errors in errors.go.
type Arithmetic[T any] interface {
	IsZero() bool
	Equal(other T) bool
	Plus(other T) T
	Minus(other T) T
	Mul(other T) T
	Div(other T) T
}

// SignedArithmetic adds unary negation to Arithmetic.
// Unsigned types do not implement Negate,
// so conforming one is rejected at compile time.
type SignedArithmetic[T any] interface {
	Arithmetic[T]
	Negate() T
}

// Integer

// Integer is the contract generic algorithms are written against.
//
// Beyond arithmetic and ordering it exposes just enough structure
// to operate across different conforming types:
// word-granular access to the two's-complement representation,
// the sign-bit index, and remainder operations.
// An arbitrary-precision integer is buildable on this contract alone,
// with no special-casing (see BigInt and BigUInt).
type Integer[T any] interface {
	Arithmetic[T]

	Less(other T) bool

	// Sign returns -1, 0, or 1 if the value is negative, zero, or positive.
	Sign() int
	IsSigned() bool

	// BitWidth returns the width of the representation in bits.
	// For non-fixed-width types it is the minimal two's-complement
	// width of the current value, i.e. SignBitIndex() + 1.
	BitWidth() int

	// SignBitIndex returns the index of the least-significant bit
	// above which all bits equal the sign: -1 for zero,
	// BitWidth() - 1 for fixed-width types.
	SignBitIndex() int

	// Word returns the n-th little-endian Word of the two's-complement
	// representation. Out-of-range n yields an all-0 or all-1 word
	// consistent with the value's sign. Negative n is a programming
	// error and panics with errors.NewUnreachableError().
	Word(n int) Word

	// FromWords interprets words as a little-endian
	// 64*len(words)-bit two's-complement pattern
	// and constructs the value congruent to it modulo 2^BitWidth.
	// An empty slice yields zero.
	// The receiver only selects the type; it is otherwise unused.
	FromWords(words []Word) T

	// Mod returns the remainder of truncating division:
	// it has the same sign as the receiver, or is zero.
	Mod(other T) T
	// DivMod returns the truncating quotient and remainder,
	// with v == q*other + r.
	DivMod(other T) (quotient, remainder T)
}

// FixedWidth

// FixedWidth is the fixed-width integer contract the operator layer
// dispatches on: bounds, overflow-reporting arithmetic, bitwise and
// masking-shift primitives, and word construction. FixedWidthInteger
// additionally carries the magnitude type.
type FixedWidth[T any] interface {
	Integer[T]

	Min() T
	Max() T

	// The overflow-reporting primitives return the operation's result
	// reduced modulo 2^BitWidth, and true iff the mathematically exact
	// result differs from it. They are total: division by zero reports
	// (receiver, true) instead of trapping.
	PlusWithOverflow(other T) (T, bool)
	MinusWithOverflow(other T) (T, bool)
	MulWithOverflow(other T) (T, bool)
	DivWithOverflow(other T) (T, bool)
	ModWithOverflow(other T) (T, bool)

	BitwiseAnd(other T) T
	BitwiseOr(other T) T
	BitwiseXor(other T) T

	// The masking shifts reduce count modulo BitWidth before applying.
	// Right shift is arithmetic for signed types, logical for unsigned.
	WrappingShiftLeft(count Word) T
	WrappingShiftRight(count Word) T

	// FromBits constructs the value from the low BitWidth bits of the
	// given word. The receiver only selects the type.
	FromBits(pattern Word) T
}

// FixedWidthInteger is the full fixed-width contract. M is the
// magnitude type: an unsigned conforming type capable of holding the
// absolute value of every T, T itself for unsigned types.
//
// MulWide returns the exact 2*BitWidth-bit product of the receiver and
// other, split into a high half carrying the sign and an unsigned low
// half. It is the one primitive schoolbook long multiplication needs
// to never overflow a fixed-width accumulator.
type FixedWidthInteger[T any, M any] interface {
	FixedWidth[T]

	Magnitude() M
	MulWide(other T) (hi T, lo M)
}

// SignedInteger marks the signed family and restates the magnitude
// type for contract-level reasoning. M's IsSigned() is false, and
// every value of T has a representable magnitude in M.
type SignedInteger[T any, M any] interface {
	Integer[T]
	SignedArithmetic[T]

	Magnitude() M
}

// UnsignedInteger marks the unsigned family. The magnitude type of an
// unsigned type is the type itself.
type UnsignedInteger[T any] interface {
	Integer[T]

	Magnitude() T
}

// Number

// Number is the dynamic, non-generic view of a value, satisfied by
// every concrete type in this package. The encoding package operates
// on Numbers.
type Number interface {
	fmt.Stringer

	IsZero() bool
	Sign() int
	IsSigned() bool
	BitWidth() int
	SignBitIndex() int
	Word(n int) Word

	// ToBigEndianBytes returns the value as big-endian bytes:
	// fixed-length for fixed-width types, minimal-length two's
	// complement (unsigned magnitude for BigUInt) otherwise.
	ToBigEndianBytes() []byte
}
