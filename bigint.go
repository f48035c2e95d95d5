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
	"math/big"

	"github.com/onflow/integers/errors"
	"github.com/onflow/integers/format"
)

// BigInt and BigUInt hold their big.Int by value and never mutate it:
// every operation allocates a fresh result, and the Big accessor
// returns a copy. The zero value is the additive identity.

// BigInt

type BigInt struct {
	v big.Int
}

var _ SignedInteger[BigInt, BigUInt] = BigInt{}
var _ Number = BigInt{}

func NewBigIntFromInt64(v int64) BigInt {
	return BigInt{v: *big.NewInt(v)}
}

// NewBigIntFromBig copies b.
func NewBigIntFromBig(b *big.Int) BigInt {
	return BigInt{v: *new(big.Int).Set(b)}
}

// Big returns the value as a new big.Int.
func (v BigInt) Big() *big.Int {
	return new(big.Int).Set(&v.v)
}

func (v BigInt) String() string {
	return format.BigInt(&v.v)
}

func (v BigInt) IsZero() bool {
	return v.v.Sign() == 0
}

func (v BigInt) Sign() int {
	return v.v.Sign()
}

func (BigInt) IsSigned() bool {
	return true
}

func (v BigInt) BitWidth() int {
	return v.SignBitIndex() + 1
}

func (v BigInt) SignBitIndex() int {
	switch v.v.Sign() {
	case 0:
		return -1
	case 1:
		return v.v.BitLen()
	default:
		return new(big.Int).Not(&v.v).BitLen()
	}
}

func (v BigInt) Equal(other BigInt) bool {
	return v.v.Cmp(&other.v) == 0
}

func (v BigInt) Less(other BigInt) bool {
	return v.v.Cmp(&other.v) < 0
}

func (v BigInt) Negate() BigInt {
	return BigInt{v: *new(big.Int).Neg(&v.v)}
}

func (v BigInt) Plus(other BigInt) BigInt {
	return BigInt{v: *new(big.Int).Add(&v.v, &other.v)}
}

func (v BigInt) Minus(other BigInt) BigInt {
	return BigInt{v: *new(big.Int).Sub(&v.v, &other.v)}
}

func (v BigInt) Mul(other BigInt) BigInt {
	return BigInt{v: *new(big.Int).Mul(&v.v, &other.v)}
}

func (v BigInt) Div(other BigInt) BigInt {
	// INT33-C
	if other.v.Sign() == 0 {
		panic(&DivisionByZeroError{})
	}
	return BigInt{v: *new(big.Int).Quo(&v.v, &other.v)}
}

func (v BigInt) Mod(other BigInt) BigInt {
	// INT33-C
	if other.v.Sign() == 0 {
		panic(&DivisionByZeroError{})
	}
	return BigInt{v: *new(big.Int).Rem(&v.v, &other.v)}
}

// DivMod truncates towards zero, so the remainder has the sign of the
// dividend.
func (v BigInt) DivMod(other BigInt) (BigInt, BigInt) {
	// INT33-C
	if other.v.Sign() == 0 {
		panic(&DivisionByZeroError{})
	}
	q, r := new(big.Int).QuoRem(&v.v, &other.v, new(big.Int))
	return BigInt{v: *q}, BigInt{v: *r}
}

func (v BigInt) Magnitude() BigUInt {
	return BigUInt{v: *new(big.Int).Abs(&v.v)}
}

func (v BigInt) Word(n int) Word {
	return bigWord(&v.v, n)
}

func (BigInt) FromWords(words []Word) BigInt {
	return BigInt{v: *bigFromWords(words)}
}

func (v BigInt) ToBigEndianBytes() []byte {
	return signedBigEndianBytes(&v.v)
}

// BigUInt

type BigUInt struct {
	v big.Int
}

var _ UnsignedInteger[BigUInt] = BigUInt{}
var _ Number = BigUInt{}

func NewBigUIntFromUint64(v uint64) BigUInt {
	return BigUInt{v: *new(big.Int).SetUint64(v)}
}

// NewBigUIntFromBig copies b, and panics with UnderflowError if b is
// negative.
func NewBigUIntFromBig(b *big.Int) BigUInt {
	if b.Sign() < 0 {
		panic(&UnderflowError{})
	}
	return BigUInt{v: *new(big.Int).Set(b)}
}

// Big returns the value as a new big.Int.
func (v BigUInt) Big() *big.Int {
	return new(big.Int).Set(&v.v)
}

func (v BigUInt) String() string {
	return format.BigInt(&v.v)
}

func (v BigUInt) IsZero() bool {
	return v.v.Sign() == 0
}

func (v BigUInt) Sign() int {
	return v.v.Sign()
}

func (BigUInt) IsSigned() bool {
	return false
}

func (v BigUInt) BitWidth() int {
	return v.SignBitIndex() + 1
}

func (v BigUInt) SignBitIndex() int {
	if v.v.Sign() == 0 {
		return -1
	}
	return v.v.BitLen()
}

func (v BigUInt) Equal(other BigUInt) bool {
	return v.v.Cmp(&other.v) == 0
}

func (v BigUInt) Less(other BigUInt) bool {
	return v.v.Cmp(&other.v) < 0
}

func (v BigUInt) Plus(other BigUInt) BigUInt {
	return BigUInt{v: *new(big.Int).Add(&v.v, &other.v)}
}

func (v BigUInt) Minus(other BigUInt) BigUInt {
	res := new(big.Int).Sub(&v.v, &other.v)
	if res.Sign() < 0 {
		panic(&UnderflowError{})
	}
	return BigUInt{v: *res}
}

func (v BigUInt) Mul(other BigUInt) BigUInt {
	return BigUInt{v: *new(big.Int).Mul(&v.v, &other.v)}
}

func (v BigUInt) Div(other BigUInt) BigUInt {
	// INT33-C
	if other.v.Sign() == 0 {
		panic(&DivisionByZeroError{})
	}
	return BigUInt{v: *new(big.Int).Quo(&v.v, &other.v)}
}

func (v BigUInt) Mod(other BigUInt) BigUInt {
	// INT33-C
	if other.v.Sign() == 0 {
		panic(&DivisionByZeroError{})
	}
	return BigUInt{v: *new(big.Int).Rem(&v.v, &other.v)}
}

func (v BigUInt) DivMod(other BigUInt) (BigUInt, BigUInt) {
	// INT33-C
	if other.v.Sign() == 0 {
		panic(&DivisionByZeroError{})
	}
	q, r := new(big.Int).QuoRem(&v.v, &other.v, new(big.Int))
	return BigUInt{v: *q}, BigUInt{v: *r}
}

func (v BigUInt) Magnitude() BigUInt {
	return v
}

func (v BigUInt) Word(n int) Word {
	return bigWord(&v.v, n)
}

// FromWords panics with UnderflowError if the pattern's sign bit is
// set: a negative pattern has no unsigned interpretation at any width.
func (BigUInt) FromWords(words []Word) BigUInt {
	b := bigFromWords(words)
	if b.Sign() < 0 {
		panic(&UnderflowError{})
	}
	return BigUInt{v: *b}
}

func (v BigUInt) ToBigEndianBytes() []byte {
	return unsignedBigEndianBytes(&v.v)
}

// shared big.Int mechanics

// bigWord extracts the n-th word of the two's-complement
// representation. Rsh floors negative values, which is exactly
// arithmetic shift, and And uses two's-complement bit semantics.
func bigWord(b *big.Int, n int) Word {
	if n < 0 {
		panic(errors.NewUnreachableError())
	}
	w := new(big.Int).Rsh(b, uint(n)*WordBits)
	w.And(w, uint64MaxBig)
	return Word(w.Uint64())
}

// bigFromWords interprets words as a little-endian two's-complement
// pattern of 64*len(words) bits.
func bigFromWords(words []Word) *big.Int {
	b := new(big.Int)
	if len(words) == 0 {
		return b
	}
	for i := len(words) - 1; i >= 0; i-- {
		b.Lsh(b, WordBits)
		b.Or(b, new(big.Int).SetUint64(uint64(words[i])))
	}
	if words[len(words)-1]>>(WordBits-1) != 0 {
		b.Sub(b, new(big.Int).Lsh(bigOne, uint(len(words))*WordBits))
	}
	return b
}

var bigOne = big.NewInt(1)

func signedBigEndianBytes(b *big.Int) []byte {
	switch b.Sign() {
	case -1:
		// encode as two's complement
		twosComplement := new(big.Int).Neg(b)
		twosComplement.Sub(twosComplement, bigOne)
		bytes := twosComplement.Bytes()
		for i := range bytes {
			bytes[i] ^= 0xff
		}
		// pad with 0xFF to prevent misinterpretation as positive
		if len(bytes) == 0 || bytes[0]&0x80 == 0 {
			return append([]byte{0xff}, bytes...)
		}
		return bytes

	case 0:
		return []byte{0}

	case 1:
		bytes := b.Bytes()
		// pad with 0x0 to prevent misinterpretation as negative
		if len(bytes) > 0 && bytes[0]&0x80 != 0 {
			return append([]byte{0x0}, bytes...)
		}
		return bytes

	default:
		panic(errors.NewUnreachableError())
	}
}

func unsignedBigEndianBytes(b *big.Int) []byte {
	switch b.Sign() {
	case -1:
		panic(errors.NewUnreachableError())

	case 0:
		return []byte{0}

	case 1:
		return b.Bytes()

	default:
		panic(errors.NewUnreachableError())
	}
}
