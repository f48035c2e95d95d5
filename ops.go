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

// The homogeneous operator layer: free generic functions mapping each
// operator to contract methods. The trapping family panics on overflow
// and division by zero; the wrapping family adopts the two's-complement
// partial value; the saturating family clamps to the bound in the
// overflow direction.

// Trapping

func Plus[T Arithmetic[T]](a, b T) T {
	return a.Plus(b)
}

func Minus[T Arithmetic[T]](a, b T) T {
	return a.Minus(b)
}

func Mul[T Arithmetic[T]](a, b T) T {
	return a.Mul(b)
}

func Div[T Arithmetic[T]](a, b T) T {
	return a.Div(b)
}

func Negate[T SignedArithmetic[T]](v T) T {
	return v.Negate()
}

func Mod[T Integer[T]](a, b T) T {
	return a.Mod(b)
}

func DivMod[T Integer[T]](a, b T) (T, T) {
	return a.DivMod(b)
}

// Wrapping

func WrappingPlus[T FixedWidth[T]](a, b T) T {
	res, _ := a.PlusWithOverflow(b)
	return res
}

func WrappingMinus[T FixedWidth[T]](a, b T) T {
	res, _ := a.MinusWithOverflow(b)
	return res
}

func WrappingMul[T FixedWidth[T]](a, b T) T {
	res, _ := a.MulWithOverflow(b)
	return res
}

// Saturating

func SaturatingPlus[T FixedWidth[T]](a, b T) T {
	res, overflow := a.PlusWithOverflow(b)
	if overflow {
		if b.Sign() < 0 {
			return a.Min()
		}
		return a.Max()
	}
	return res
}

func SaturatingMinus[T FixedWidth[T]](a, b T) T {
	res, overflow := a.MinusWithOverflow(b)
	if overflow {
		if b.Sign() > 0 {
			return a.Min()
		}
		return a.Max()
	}
	return res
}

func SaturatingMul[T FixedWidth[T]](a, b T) T {
	res, overflow := a.MulWithOverflow(b)
	if overflow {
		if (a.Sign() < 0) == (b.Sign() < 0) {
			return a.Max()
		}
		return a.Min()
	}
	return res
}

// SaturatingDiv still traps on a zero divisor:
// there is no bound to clamp to.
func SaturatingDiv[T FixedWidth[T]](a, b T) T {
	// INT33-C
	if b.IsZero() {
		panic(&DivisionByZeroError{})
	}
	res, overflow := a.DivWithOverflow(b)
	if overflow {
		return a.Max()
	}
	return res
}

// Bitwise

func BitwiseAnd[T FixedWidth[T]](a, b T) T {
	return a.BitwiseAnd(b)
}

func BitwiseOr[T FixedWidth[T]](a, b T) T {
	return a.BitwiseOr(b)
}

func BitwiseXor[T FixedWidth[T]](a, b T) T {
	return a.BitwiseXor(b)
}

// Trap helpers shared by the trapping methods of every fixed-width
// type: call the overflow-reporting primitive, trap if it overflowed,
// otherwise adopt the partial value. The operands' signs decide
// between OverflowError and UnderflowError.

func trapPlus[T FixedWidth[T]](v, o T) T {
	res, overflow := v.PlusWithOverflow(o)
	if overflow {
		if o.Sign() < 0 {
			panic(&UnderflowError{})
		}
		panic(&OverflowError{})
	}
	return res
}

func trapMinus[T FixedWidth[T]](v, o T) T {
	res, overflow := v.MinusWithOverflow(o)
	if overflow {
		if o.Sign() > 0 {
			panic(&UnderflowError{})
		}
		panic(&OverflowError{})
	}
	return res
}

func trapMul[T FixedWidth[T]](v, o T) T {
	res, overflow := v.MulWithOverflow(o)
	if overflow {
		if (v.Sign() < 0) != (o.Sign() < 0) {
			panic(&UnderflowError{})
		}
		panic(&OverflowError{})
	}
	return res
}

func trapDiv[T FixedWidth[T]](v, o T) T {
	// INT33-C
	if o.IsZero() {
		panic(&DivisionByZeroError{})
	}
	res, overflow := v.DivWithOverflow(o)
	if overflow {
		panic(&OverflowError{})
	}
	return res
}

func trapMod[T FixedWidth[T]](v, o T) T {
	// INT33-C
	if o.IsZero() {
		panic(&DivisionByZeroError{})
	}
	res, _ := v.ModWithOverflow(o)
	return res
}
