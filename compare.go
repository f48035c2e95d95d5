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

// Heterogeneous comparison: the operands may be any two Integer
// conforming types, of different widths and signedness. Values compare
// by mathematical value, so the order is total, symmetric, and
// transitive across every type mix. Same-type operands take the
// contract-method fast path.

func Equal[T Integer[T], U Integer[U]](a T, b U) bool {
	if bt, ok := any(b).(T); ok {
		return a.Equal(bt)
	}
	return compareValues(a, b) == 0
}

func NotEqual[T Integer[T], U Integer[U]](a T, b U) bool {
	return !Equal(a, b)
}

func Less[T Integer[T], U Integer[U]](a T, b U) bool {
	if bt, ok := any(b).(T); ok {
		return a.Less(bt)
	}
	return compareValues(a, b) < 0
}

func LessEqual[T Integer[T], U Integer[U]](a T, b U) bool {
	return !Greater(a, b)
}

func Greater[T Integer[T], U Integer[U]](a T, b U) bool {
	if bt, ok := any(b).(T); ok {
		return bt.Less(a)
	}
	return compareValues(a, b) > 0
}

func GreaterEqual[T Integer[T], U Integer[U]](a T, b U) bool {
	return !Less(a, b)
}

// Compare returns -1, 0, or 1 if a is less than, equal to, or greater
// than b.
func Compare[T Integer[T], U Integer[U]](a T, b U) int {
	return compareValues(a, b)
}

// compareValues compares two values of different conforming types
// without materializing a wider type: a sign comparison first, then
// the sign-extended words from the most significant end. Word-wise
// unsigned comparison is order-correct for equal-sign two's-complement
// patterns of equal virtual width.
func compareValues[T Integer[T], U Integer[U]](a T, b U) int {
	as, bs := a.Sign(), b.Sign()
	if as != bs {
		if as < bs {
			return -1
		}
		return 1
	}

	n := wordsNeeded(a.BitWidth())
	if m := wordsNeeded(b.BitWidth()); m > n {
		n = m
	}
	for i := n - 1; i >= 0; i-- {
		aw, bw := a.Word(i), b.Word(i)
		if aw != bw {
			if aw < bw {
				return -1
			}
			return 1
		}
	}
	return 0
}
