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

// Shift dispatch: the shifted operand must be fixed-width, the shift
// amount may be any Integer conforming type of any width and
// signedness. Right shift is arithmetic for signed types and logical
// for unsigned types.

// ShiftLeft traps with NegativeShiftError if count is negative and
// with ShiftOutOfRangeError if count >= v.BitWidth().
func ShiftLeft[T FixedWidth[T], U Integer[U]](v T, count U) T {
	return v.WrappingShiftLeft(checkedShiftAmount(v, count))
}

// ShiftRight traps like ShiftLeft.
func ShiftRight[T FixedWidth[T], U Integer[U]](v T, count U) T {
	return v.WrappingShiftRight(checkedShiftAmount(v, count))
}

// WrappingShiftLeft reduces count to its non-negative residue modulo
// v's bit width and never traps.
func WrappingShiftLeft[T FixedWidth[T], U Integer[U]](v T, count U) T {
	return v.WrappingShiftLeft(maskedShiftAmount(v, count))
}

// WrappingShiftRight reduces count like WrappingShiftLeft.
func WrappingShiftRight[T FixedWidth[T], U Integer[U]](v T, count U) T {
	return v.WrappingShiftRight(maskedShiftAmount(v, count))
}

func checkedShiftAmount[T FixedWidth[T], U Integer[U]](v T, count U) Word {
	if count.Sign() < 0 {
		panic(&NegativeShiftError{})
	}
	for i := wordsNeeded(count.BitWidth()) - 1; i > 0; i-- {
		if count.Word(i) != 0 {
			panic(&ShiftOutOfRangeError{})
		}
	}
	w := count.Word(0)
	if w >= Word(v.BitWidth()) {
		panic(&ShiftOutOfRangeError{})
	}
	return w
}

// maskedShiftAmount returns count's non-negative residue modulo v's
// bit width. All conforming widths are powers of two, so the low word
// carries the full residue even for negative counts.
func maskedShiftAmount[T FixedWidth[T], U Integer[U]](v T, count U) Word {
	return count.Word(0) & Word(v.BitWidth()-1)
}
