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
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUInt128FromBigInt(t *testing.T) {

	t.Parallel()

	t.Run("in range", func(t *testing.T) {
		t.Parallel()

		v, ok := NewUInt128FromBigInt(big.NewInt(0))
		require.True(t, ok)
		assert.True(t, v.IsZero())

		v, ok = NewUInt128FromBigInt(big.NewInt(42))
		require.True(t, ok)
		assert.Equal(t, NewUInt128FromUint64(42), v)

		max := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 128), bigOne)
		v, ok = NewUInt128FromBigInt(max)
		require.True(t, ok)
		assert.Equal(t, UInt128{}.Max(), v)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		_, ok := NewUInt128FromBigInt(big.NewInt(-1))
		assert.False(t, ok)

		_, ok = NewUInt128FromBigInt(new(big.Int).Lsh(bigOne, 128))
		assert.False(t, ok)
	})
}

func TestUInt128BigRoundTrip(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("Big and NewUInt128FromBigInt invert each other", prop.ForAll(
		func(v UInt128) bool {
			r, ok := NewUInt128FromBigInt(v.Big())
			return ok && r.Equal(v)
		},
		genUInt128,
	))

	properties.TestingRun(t)
}

func TestUInt128String(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0", UInt128{}.String())
	assert.Equal(t, "42", NewUInt128FromUint64(42).String())
	assert.Equal(t, "18446744073709551616", NewUInt128(1, 0).String())
	assert.Equal(t,
		"340282366920938463463374607431768211455",
		UInt128{}.Max().String(),
	)
}

func TestUInt128Arithmetic(t *testing.T) {

	properties := gopter.NewProperties(nil)

	uint128Max := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 128), bigOne)

	properties.Property("addition matches big.Int", prop.ForAll(
		func(a, b UInt128) bool {
			exact := new(big.Int).Add(a.Big(), b.Big())
			if exact.Cmp(uint128Max) > 0 {
				return true
			}
			return a.Plus(b).Big().Cmp(exact) == 0
		},
		genUInt128, genUInt128,
	))

	properties.Property("subtraction matches big.Int", prop.ForAll(
		func(a, b UInt128) bool {
			if a.Less(b) {
				return true
			}
			exact := new(big.Int).Sub(a.Big(), b.Big())
			return a.Minus(b).Big().Cmp(exact) == 0
		},
		genUInt128, genUInt128,
	))

	properties.Property("64x64 multiplication matches big.Int", prop.ForAll(
		func(a, b UInt64) bool {
			exact := new(big.Int).Mul(uint64Big(a), uint64Big(b))
			product := NewUInt128FromUint64(uint64(a)).Mul(NewUInt128FromUint64(uint64(b)))
			return product.Big().Cmp(exact) == 0
		},
		genUInt64, genUInt64,
	))

	properties.TestingRun(t)
}

// genUInt128Pattern builds operands from four independent words so the
// generated values populate both halves, unlike genUInt128's uniform
// spread, which almost never produces a small high half.
var genUInt128Pattern = gopter.CombineGens(
	gen.UInt64(), gen.OneConstOf(uint64(0), uint64(1), uint64(math.MaxUint64)),
).Map(func(vs []interface{}) UInt128 {
	return UInt128{hi: vs[1].(uint64), lo: vs[0].(uint64)}
})

func TestUInt128Division(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("quotient and remainder match big.Int on every path", prop.ForAll(
		func(a, b UInt128) bool {
			if b.IsZero() {
				return true
			}
			expectedQ, expectedR := new(big.Int).QuoRem(a.Big(), b.Big(), new(big.Int))
			q, r := a.DivMod(b)
			return q.Big().Cmp(expectedQ) == 0 && r.Big().Cmp(expectedR) == 0
		},
		genUInt128Pattern, genUInt128Pattern,
	))

	properties.TestingRun(t)
}

func TestUInt128DivisionPaths(t *testing.T) {

	t.Parallel()

	t.Run("both operands in one word", func(t *testing.T) {
		t.Parallel()

		q, r := NewUInt128FromUint64(100).DivMod(NewUInt128FromUint64(7))
		assert.Equal(t, NewUInt128FromUint64(14), q)
		assert.Equal(t, NewUInt128FromUint64(2), r)
	})

	t.Run("one-word divisor, high half below it", func(t *testing.T) {
		t.Parallel()

		// 2^64 / 3
		q, r := NewUInt128(1, 0).DivMod(NewUInt128FromUint64(3))
		assert.Equal(t, NewUInt128FromUint64(6148914691236517205), q)
		assert.Equal(t, NewUInt128FromUint64(1), r)
	})

	t.Run("one-word divisor, high half at or above it", func(t *testing.T) {
		t.Parallel()

		// (10 * 2^64 + 5) / 3
		q, r := NewUInt128(10, 5).DivMod(NewUInt128FromUint64(3))
		assert.Equal(t, NewUInt128(3, 6148914691236517207), q)
		assert.True(t, r.IsZero())
	})

	t.Run("two-word divisor", func(t *testing.T) {
		t.Parallel()

		// (2^128 - 1) / 2^64
		q, r := UInt128{}.Max().DivMod(NewUInt128(1, 0))
		assert.Equal(t, NewUInt128FromUint64(math.MaxUint64), q)
		assert.Equal(t, NewUInt128FromUint64(math.MaxUint64), r)
	})

	t.Run("dividend below divisor", func(t *testing.T) {
		t.Parallel()

		q, r := NewUInt128(1, 0).DivMod(NewUInt128(2, 0))
		assert.True(t, q.IsZero())
		assert.Equal(t, NewUInt128(1, 0), r)
	})

	t.Run("equal operands", func(t *testing.T) {
		t.Parallel()

		v := NewUInt128(math.MaxUint64, 42)
		q, r := v.DivMod(v)
		assert.Equal(t, NewUInt128FromUint64(1), q)
		assert.True(t, r.IsZero())
	})

	t.Run("quotient estimate needs correction", func(t *testing.T) {
		t.Parallel()

		// divisors just above a power of two stress the estimate step
		q, r := UInt128{}.Max().DivMod(NewUInt128(1, 1))
		expectedQ, expectedR := new(big.Int).QuoRem(
			UInt128{}.Max().Big(),
			NewUInt128(1, 1).Big(),
			new(big.Int),
		)
		assert.Equal(t, expectedQ.String(), q.String())
		assert.Equal(t, expectedR.String(), r.String())
	})
}

func TestUInt128Shifts(t *testing.T) {

	t.Parallel()

	one := NewUInt128FromUint64(1)

	// word-boundary counts exercise every internal branch
	assert.Equal(t, one, one.WrappingShiftLeft(0))
	assert.Equal(t, NewUInt128FromUint64(1<<63), one.WrappingShiftLeft(63))
	assert.Equal(t, NewUInt128(1, 0), one.WrappingShiftLeft(64))
	assert.Equal(t, NewUInt128(1<<63, 0), one.WrappingShiftLeft(127))

	max := UInt128{}.Max()
	assert.Equal(t, max, max.WrappingShiftRight(0))
	assert.Equal(t, NewUInt128(1, math.MaxUint64), max.WrappingShiftRight(63))
	assert.Equal(t, NewUInt128FromUint64(math.MaxUint64), max.WrappingShiftRight(64))
	assert.Equal(t, one, max.WrappingShiftRight(127))

	// crossing shifts carry bits between the halves
	v := NewUInt128(0, math.MaxUint64)
	assert.Equal(t, NewUInt128(math.MaxUint64>>32, math.MaxUint64>>32<<32), v.WrappingShiftLeft(32))
	w := NewUInt128(math.MaxUint64, 0)
	assert.Equal(t, NewUInt128(math.MaxUint64>>32, math.MaxUint64>>32<<32), w.WrappingShiftRight(32))
}

func TestUInt128Words(t *testing.T) {

	t.Parallel()

	v := NewUInt128(7, 42)
	assert.Equal(t, Word(42), v.Word(0))
	assert.Equal(t, Word(7), v.Word(1))

	// unsigned values extend with zero words
	assert.Equal(t, Word(0), v.Word(2))
	assert.Equal(t, Word(0), UInt128{}.Max().Word(5))

	assert.Equal(t, v, UInt128{}.FromWords([]Word{42, 7}))
	assert.True(t, UInt128{}.FromWords(nil).IsZero())

	// a single word with its top bit set fills the high half
	assert.Equal(t,
		UInt128{}.Max(),
		UInt128{}.FromWords([]Word{math.MaxUint64}),
	)

	// extra words beyond the width are discarded
	assert.Equal(t,
		NewUInt128(2, 1),
		UInt128{}.FromWords([]Word{1, 2, 3, 4}),
	)

	assert.Equal(t, NewUInt128FromUint64(42), UInt128{}.FromBits(42))
	assert.Equal(t, NewUInt128FromUint64(math.MaxUint64), UInt128{}.FromBits(math.MaxUint64))
}

func TestUInt128ToBigEndianBytes(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		make([]byte, 16),
		UInt128{}.ToBigEndianBytes(),
	)
	assert.Equal(t,
		[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42},
		NewUInt128FromUint64(42).ToBigEndianBytes(),
	)
	assert.Equal(t,
		[]byte{
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		},
		UInt128{}.Max().ToBigEndianBytes(),
	)
	assert.Equal(t,
		[]byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		NewUInt128(1, 0).ToBigEndianBytes(),
	)
}
