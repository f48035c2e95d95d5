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
	"github.com/onflow/integers/errors"
)

// The trapping operator family panics with the typed errors below.
// Each trap is avoidable: the overflow-reporting primitives, the
// Wrapping/Saturating variants, and the truncating/clamping conversions
// turn every would-be trap into a defined value.

// OverflowError

type OverflowError struct{}

var _ errors.UserError = &OverflowError{}

func (*OverflowError) IsUserError() {}

func (e *OverflowError) Error() string {
	return "overflow"
}

// UnderflowError

type UnderflowError struct{}

var _ errors.UserError = &UnderflowError{}

func (*UnderflowError) IsUserError() {}

func (e *UnderflowError) Error() string {
	return "underflow"
}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ errors.UserError = &DivisionByZeroError{}

func (*DivisionByZeroError) IsUserError() {}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// NegativeShiftError

type NegativeShiftError struct{}

var _ errors.UserError = &NegativeShiftError{}

func (*NegativeShiftError) IsUserError() {}

func (e *NegativeShiftError) Error() string {
	return "negative shift"
}

// ShiftOutOfRangeError

type ShiftOutOfRangeError struct{}

var _ errors.UserError = &ShiftOutOfRangeError{}

func (*ShiftOutOfRangeError) IsUserError() {}

func (e *ShiftOutOfRangeError) Error() string {
	return "shift out of range"
}
