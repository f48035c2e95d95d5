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

// Cross-type conversion, three policies. The target type is explicit
// at the call site: Convert[Int8](v).

// Convert produces the exact value of v in T. It traps with
// OverflowError or UnderflowError when the value is outside T's
// representable range.
func Convert[T Integer[T], U Integer[U]](v U) T {
	res := ConvertTruncating[T](v)
	if !Equal(res, v) {
		if v.Sign() < 0 {
			panic(&UnderflowError{})
		}
		panic(&OverflowError{})
	}
	return res
}

// ConvertTruncating reinterprets v's two's-complement representation
// in T: a narrower source is sign-extended, a wider one truncated to
// T's low bits. This is a raw bit-pattern operation, not a
// value-preserving one, and it never traps for fixed-width targets.
func ConvertTruncating[T Integer[T], U Integer[U]](v U) T {
	var zero T
	n := wordsNeeded(v.BitWidth())
	words := make([]Word, n)
	for i := 0; i < n; i++ {
		words[i] = v.Word(i)
	}
	return zero.FromWords(words)
}

// ConvertClamping produces the exact value when representable and
// T.Min() or T.Max() otherwise, by the source's sign.
func ConvertClamping[T FixedWidth[T], U Integer[U]](v U) T {
	res := ConvertTruncating[T](v)
	if Equal(res, v) {
		return res
	}
	if v.Sign() < 0 {
		return res.Min()
	}
	return res.Max()
}
