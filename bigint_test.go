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
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigIntArithmetic(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("operations match big.Int", prop.ForAll(
		func(a, b BigInt) bool {
			return a.Plus(b).Big().Cmp(new(big.Int).Add(a.Big(), b.Big())) == 0 &&
				a.Minus(b).Big().Cmp(new(big.Int).Sub(a.Big(), b.Big())) == 0 &&
				a.Mul(b).Big().Cmp(new(big.Int).Mul(a.Big(), b.Big())) == 0 &&
				a.Negate().Big().Cmp(new(big.Int).Neg(a.Big())) == 0
		},
		genBigInt, genBigInt,
	))

	properties.TestingRun(t)
}

func TestBigUIntArithmetic(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("operations match big.Int", prop.ForAll(
		func(a, b BigUInt) bool {
			if a.Plus(b).Big().Cmp(new(big.Int).Add(a.Big(), b.Big())) != 0 {
				return false
			}
			if a.Mul(b).Big().Cmp(new(big.Int).Mul(a.Big(), b.Big())) != 0 {
				return false
			}
			if a.Less(b) {
				a, b = b, a
			}
			return a.Minus(b).Big().Cmp(new(big.Int).Sub(a.Big(), b.Big())) == 0
		},
		genBigUInt, genBigUInt,
	))

	properties.TestingRun(t)
}

func TestBigUIntUnderflow(t *testing.T) {

	t.Parallel()

	assert.PanicsWithError(t, "underflow", func() {
		NewBigUIntFromUint64(1).Minus(NewBigUIntFromUint64(2))
	})
	assert.PanicsWithError(t, "underflow", func() {
		NewBigUIntFromBig(big.NewInt(-1))
	})
	assert.PanicsWithError(t, "underflow", func() {
		BigUInt{}.FromWords([]Word{math.MaxUint64})
	})

	// an equal subtraction is still fine
	assert.True(t, NewBigUIntFromUint64(7).Minus(NewBigUIntFromUint64(7)).IsZero())
}

func TestBigIntSignBitIndex(t *testing.T) {

	t.Parallel()

	cases := []struct {
		value int64
		index int
	}{
		{0, -1},
		{1, 1},
		{2, 2},
		{5, 3},
		{127, 7},
		{128, 8},
		{255, 8},
		{-1, 0},
		{-2, 1},
		{-127, 7},
		{-128, 7},
		{-129, 8},
	}

	for _, tc := range cases {
		v := NewBigIntFromInt64(tc.value)
		assert.Equal(t, tc.index, v.SignBitIndex(), "SignBitIndex of %d", tc.value)
		assert.Equal(t, tc.index+1, v.BitWidth(), "BitWidth of %d", tc.value)
	}

	big65 := NewBigIntFromBig(new(big.Int).Lsh(bigOne, 64))
	assert.Equal(t, 65, big65.SignBitIndex())

	assert.Equal(t, -1, BigUInt{}.SignBitIndex())
	assert.Equal(t, 1, NewBigUIntFromUint64(1).SignBitIndex())
	assert.Equal(t, 8, NewBigUIntFromUint64(255).SignBitIndex())
}

// The index is the position every type's Word stream starts repeating
// the sign at, so a value round-trips through exactly
// wordsNeeded(BitWidth) words.
func TestBigIntWordRoundTrip(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("FromWords inverts Word", prop.ForAll(
		func(v BigInt) bool {
			n := wordsNeeded(v.BitWidth())
			words := make([]Word, n)
			for i := 0; i < n; i++ {
				words[i] = v.Word(i)
			}
			return BigInt{}.FromWords(words).Equal(v)
		},
		genBigInt,
	))

	properties.Property("unsigned FromWords inverts Word", prop.ForAll(
		func(v BigUInt) bool {
			n := wordsNeeded(v.BitWidth())
			words := make([]Word, n)
			for i := 0; i < n; i++ {
				words[i] = v.Word(i)
			}
			return BigUInt{}.FromWords(words).Equal(v)
		},
		genBigUInt,
	))

	properties.TestingRun(t)
}

func TestBigIntWords(t *testing.T) {

	t.Parallel()

	v := NewBigIntFromBig(new(big.Int).Neg(new(big.Int).Lsh(bigOne, 64)))

	// -2^64 is ...FFFF 0000000000000000
	assert.Equal(t, Word(0), v.Word(0))
	assert.Equal(t, Word(math.MaxUint64), v.Word(1))
	assert.Equal(t, Word(math.MaxUint64), v.Word(2))

	small := NewBigIntFromInt64(5)
	assert.Equal(t, Word(5), small.Word(0))
	assert.Equal(t, Word(0), small.Word(1))

	u := NewBigUIntFromBig(new(big.Int).Add(new(big.Int).Lsh(bigOne, 64), big.NewInt(7)))
	assert.Equal(t, Word(7), u.Word(0))
	assert.Equal(t, Word(1), u.Word(1))
	assert.Equal(t, Word(0), u.Word(2))

	assert.Equal(t, "-1", BigInt{}.FromWords([]Word{math.MaxUint64}).String())
	assert.Equal(t,
		"18446744073709551615",
		BigUInt{}.FromWords([]Word{math.MaxUint64, 0}).String(),
	)
}

func TestBigIntToBigEndianBytes(t *testing.T) {

	t.Parallel()

	signed := []struct {
		value    int64
		expected []byte
	}{
		{0, []byte{0x00}},
		{42, []byte{0x2A}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x80}},
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{-129, []byte{0xFF, 0x7F}},
		{-256, []byte{0xFF, 0x00}},
	}

	for _, tc := range signed {
		assert.Equal(t,
			tc.expected,
			NewBigIntFromInt64(tc.value).ToBigEndianBytes(),
			"bytes of %d", tc.value,
		)
	}

	unsigned := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{42, []byte{0x2A}},
		{128, []byte{0x80}},
		{255, []byte{0xFF}},
		{256, []byte{0x01, 0x00}},
	}

	for _, tc := range unsigned {
		assert.Equal(t,
			tc.expected,
			NewBigUIntFromUint64(tc.value).ToBigEndianBytes(),
			"bytes of %d", tc.value,
		)
	}
}

func TestBigIntImmutability(t *testing.T) {

	t.Parallel()

	t.Run("accessor returns a copy", func(t *testing.T) {
		t.Parallel()

		v := NewBigIntFromInt64(10)
		v.Big().SetInt64(99)
		assert.Equal(t, "10", v.String())

		u := NewBigUIntFromUint64(10)
		u.Big().SetInt64(99)
		assert.Equal(t, "10", u.String())
	})

	t.Run("constructor copies its argument", func(t *testing.T) {
		t.Parallel()

		b := big.NewInt(10)
		v := NewBigIntFromBig(b)
		b.SetInt64(99)
		assert.Equal(t, "10", v.String())
	})

	t.Run("operations leave their operands intact", func(t *testing.T) {
		t.Parallel()

		a := NewBigIntFromInt64(100)
		b := NewBigIntFromInt64(-7)

		a.Plus(b)
		a.Minus(b)
		a.Mul(b)
		a.DivMod(b)
		a.Negate()
		a.Magnitude()

		assert.Equal(t, "100", a.String())
		assert.Equal(t, "-7", b.String())
	})
}

func TestBigIntZeroValue(t *testing.T) {

	t.Parallel()

	var v BigInt
	assert.True(t, v.IsZero())
	assert.Equal(t, "0", v.String())
	assert.Equal(t, NewBigIntFromInt64(7), v.Plus(NewBigIntFromInt64(7)))
	assert.Equal(t, -1, v.SignBitIndex())
	assert.Equal(t, []byte{0x00}, v.ToBigEndianBytes())

	var u BigUInt
	assert.True(t, u.IsZero())
	assert.Equal(t, "0", u.String())
	require.True(t, u.Mul(NewBigUIntFromUint64(3)).IsZero())
}

func TestBigIntMagnitude(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "42", NewBigIntFromInt64(-42).Magnitude().String())
	assert.Equal(t, "42", NewBigIntFromInt64(42).Magnitude().String())
	assert.True(t, BigInt{}.Magnitude().IsZero())

	u := NewBigUIntFromUint64(42)
	assert.True(t, u.Magnitude().Equal(u))
}
