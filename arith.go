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
	"golang.org/x/exp/constraints"

	"github.com/onflow/integers/errors"
)

// Overflow-reporting arithmetic on machine integers.
// The returned value is always the exact result reduced modulo
// 2^bitWidth; the flag is true iff the exact result differs from it.
// Signed detection relies on Go's defined two's-complement wraparound.

func addOverflowSigned[T constraints.Signed](v, o T) (T, bool) {
	r := v + o
	return r, (r > v) != (o > 0)
}

func addOverflowUnsigned[T constraints.Unsigned](v, o T) (T, bool) {
	r := v + o
	return r, r < v
}

func subOverflowSigned[T constraints.Signed](v, o T) (T, bool) {
	r := v - o
	return r, (r < v) != (o > 0)
}

func subOverflowUnsigned[T constraints.Unsigned](v, o T) (T, bool) {
	r := v - o
	return r, o > v
}

func mulOverflowSigned[T constraints.Signed](v, o T) (T, bool) {
	if v == 0 || o == 0 {
		return 0, false
	}
	r := v * o
	// min * -1 wraps back to min, which the quotient check cannot detect
	if (v < 0) == (o < 0) && r < 0 {
		return r, true
	}
	return r, r/o != v
}

func mulOverflowUnsigned[T constraints.Unsigned](v, o T) (T, bool) {
	r := v * o
	return r, o != 0 && r/o != v
}

func divOverflowSigned[T constraints.Signed](v, o, min T) (T, bool) {
	if o == 0 {
		return v, true
	}
	if o == -1 && v == min {
		return min, true
	}
	return v / o, false
}

func divOverflowUnsigned[T constraints.Unsigned](v, o T) (T, bool) {
	if o == 0 {
		return v, true
	}
	return v / o, false
}

// modOverflow covers both families: Go defines min % -1 as 0,
// so the only reportable case is a zero divisor.
func modOverflow[T constraints.Integer](v, o T) (T, bool) {
	if o == 0 {
		return v, true
	}
	return v % o, false
}

// Word access for values no wider than one word.

// signedWord returns the n-th little-endian word of the infinite
// sign-extended two's-complement representation of v.
func signedWord(v int64, n int) Word {
	if n < 0 {
		panic(errors.NewUnreachableError())
	}
	if n > 0 {
		if v < 0 {
			return ^Word(0)
		}
		return 0
	}
	return Word(v)
}

func unsignedWord(v uint64, n int) Word {
	if n < 0 {
		panic(errors.NewUnreachableError())
	}
	if n > 0 {
		return 0
	}
	return Word(v)
}

// wordsToUint64 returns the low 64 bits of the two's-complement
// pattern carried by words. An empty slice is zero.
func wordsToUint64(words []Word) uint64 {
	if len(words) == 0 {
		return 0
	}
	return uint64(words[0])
}
