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

// testOverflowReporting checks every overflow-reporting primitive of a
// fixed-width type against exact big.Int arithmetic: the flag is set
// iff the exact result is out of range, and the partial value is the
// exact result reduced modulo 2^BitWidth.
func testOverflowReporting[T FixedWidth[T]](
	t *testing.T,
	name string,
	genT gopter.Gen,
	toBig func(T) *big.Int,
) {
	var zero T
	width := uint(zero.BitWidth())
	signed := zero.IsSigned()
	minBig := toBig(zero.Min())
	maxBig := toBig(zero.Max())

	inRange := func(exact *big.Int) bool {
		return exact.Cmp(minBig) >= 0 && exact.Cmp(maxBig) <= 0
	}

	properties := gopter.NewProperties(nil)

	properties.Property(name+" PlusWithOverflow matches exact arithmetic", prop.ForAll(
		func(a, b T) bool {
			r, ovf := a.PlusWithOverflow(b)
			exact := new(big.Int).Add(toBig(a), toBig(b))
			return ovf != inRange(exact) &&
				toBig(r).Cmp(wrapToWidth(exact, width, signed)) == 0
		},
		genT, genT,
	))

	properties.Property(name+" MinusWithOverflow matches exact arithmetic", prop.ForAll(
		func(a, b T) bool {
			r, ovf := a.MinusWithOverflow(b)
			exact := new(big.Int).Sub(toBig(a), toBig(b))
			return ovf != inRange(exact) &&
				toBig(r).Cmp(wrapToWidth(exact, width, signed)) == 0
		},
		genT, genT,
	))

	properties.Property(name+" MulWithOverflow matches exact arithmetic", prop.ForAll(
		func(a, b T) bool {
			r, ovf := a.MulWithOverflow(b)
			exact := new(big.Int).Mul(toBig(a), toBig(b))
			return ovf != inRange(exact) &&
				toBig(r).Cmp(wrapToWidth(exact, width, signed)) == 0
		},
		genT, genT,
	))

	properties.Property(name+" DivWithOverflow matches exact arithmetic", prop.ForAll(
		func(a, b T) bool {
			r, ovf := a.DivWithOverflow(b)
			if b.IsZero() {
				return ovf && r.Equal(a)
			}
			exact := new(big.Int).Quo(toBig(a), toBig(b))
			if !inRange(exact) {
				return ovf && r.Equal(a)
			}
			return !ovf && toBig(r).Cmp(exact) == 0
		},
		genT, genT,
	))

	properties.Property(name+" ModWithOverflow matches exact arithmetic", prop.ForAll(
		func(a, b T) bool {
			r, ovf := a.ModWithOverflow(b)
			if b.IsZero() {
				return ovf && r.Equal(a)
			}
			exact := new(big.Int).Rem(toBig(a), toBig(b))
			return !ovf && toBig(r).Cmp(exact) == 0
		},
		genT, genT,
	))

	properties.TestingRun(t)
}

func TestInt8OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "Int8", genInt8, int8Big)
}

func TestInt16OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "Int16", genInt16, int16Big)
}

func TestInt32OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "Int32", genInt32, int32Big)
}

func TestInt64OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "Int64", genInt64, int64Big)
}

func TestInt128OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "Int128", genInt128, int128Big)
}

func TestUInt8OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "UInt8", genUInt8, uint8Big)
}

func TestUInt16OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "UInt16", genUInt16, uint16Big)
}

func TestUInt32OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "UInt32", genUInt32, uint32Big)
}

func TestUInt64OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "UInt64", genUInt64, uint64Big)
}

func TestUInt128OverflowReporting(t *testing.T) {
	testOverflowReporting(t, "UInt128", genUInt128, uint128Big)
}

func TestOverflowReportingEdges(t *testing.T) {

	t.Parallel()

	t.Run("signed addition at the bounds", func(t *testing.T) {
		t.Parallel()

		r, ovf := Int8(math.MaxInt8).PlusWithOverflow(1)
		assert.True(t, ovf)
		assert.Equal(t, Int8(math.MinInt8), r)

		r, ovf = Int8(math.MinInt8).PlusWithOverflow(-1)
		assert.True(t, ovf)
		assert.Equal(t, Int8(math.MaxInt8), r)

		r, ovf = Int8(math.MaxInt8).PlusWithOverflow(-1)
		assert.False(t, ovf)
		assert.Equal(t, Int8(math.MaxInt8-1), r)
	})

	t.Run("unsigned subtraction below zero", func(t *testing.T) {
		t.Parallel()

		r, ovf := UInt16(0).MinusWithOverflow(1)
		assert.True(t, ovf)
		assert.Equal(t, UInt16(math.MaxUint16), r)
	})

	t.Run("signed multiplication of min by minus one", func(t *testing.T) {
		t.Parallel()

		r, ovf := Int32(math.MinInt32).MulWithOverflow(-1)
		assert.True(t, ovf)
		assert.Equal(t, Int32(math.MinInt32), r)

		r128, ovf := Int128{}.Min().MulWithOverflow(int128MinusOne)
		assert.True(t, ovf)
		assert.Equal(t, Int128{}.Min(), r128)
	})

	t.Run("division by zero reports the receiver", func(t *testing.T) {
		t.Parallel()

		r, ovf := Int64(42).DivWithOverflow(0)
		require.True(t, ovf)
		assert.Equal(t, Int64(42), r)

		r, ovf = Int64(42).ModWithOverflow(0)
		require.True(t, ovf)
		assert.Equal(t, Int64(42), r)

		u, ovf := UInt128{}.Max().DivWithOverflow(UInt128{})
		require.True(t, ovf)
		assert.Equal(t, UInt128{}.Max(), u)
	})

	t.Run("min divided by minus one", func(t *testing.T) {
		t.Parallel()

		r, ovf := Int16(math.MinInt16).DivWithOverflow(-1)
		assert.True(t, ovf)
		assert.Equal(t, Int16(math.MinInt16), r)

		r128, ovf := Int128{}.Min().DivWithOverflow(int128MinusOne)
		assert.True(t, ovf)
		assert.Equal(t, Int128{}.Min(), r128)
	})

	t.Run("min mod minus one is zero, not an overflow", func(t *testing.T) {
		t.Parallel()

		r, ovf := Int16(math.MinInt16).ModWithOverflow(-1)
		assert.False(t, ovf)
		assert.Equal(t, Int16(0), r)

		r128, ovf := Int128{}.Min().ModWithOverflow(int128MinusOne)
		assert.False(t, ovf)
		assert.Equal(t, Int128{}, r128)
	})
}
