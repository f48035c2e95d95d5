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

package encoding

import (
	"bytes"
	"io"
	"math"
	"math/big"
	goRuntime "runtime"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/integers"
	"github.com/onflow/integers/errors"
)

// Each number type is encoded as a CBOR tag wrapping the most compact
// native CBOR representation of the value, so that the concrete type
// survives a round trip.

// !!! *WARNING* !!!
//
// Only add new types by:
// - replacing existing placeholders (`_`) with new types
// - appending new types
//
// Only remove types by:
// - replace existing types with a placeholder `_`
//
// DO *NOT* REPLACE EXISTING TYPES!
// DO *NOT* ADD NEW TYPES IN BETWEEN!

const CBORTagBase = 192

const (
	// Int*
	CBORTagBigIntValue = CBORTagBase + iota
	CBORTagInt8Value
	CBORTagInt16Value
	CBORTagInt32Value
	CBORTagInt64Value
	CBORTagInt128Value
	_ // future: Int256
	_

	// UInt*
	CBORTagBigUIntValue
	CBORTagUInt8Value
	CBORTagUInt16Value
	CBORTagUInt32Value
	CBORTagUInt64Value
	CBORTagUInt128Value
	_ // future: UInt256
	_

	// ADD NEW TYPES *BEFORE* THIS WARNING.
	// DO *NOT* ADD NEW TYPES AFTER THIS LINE!
	CBORTag_Count
)

// CBORTagSize is the size of the tag head preceding each encoded value:
// the initial byte 0xd8 plus a 1-byte tag number.
const CBORTagSize = 2

var bigOne = big.NewInt(1)

func GetBigIntCBORSize(v *big.Int) uint32 {
	sign := v.Sign()
	if sign < 0 {
		v = new(big.Int).Abs(v)
		v.Sub(v, bigOne)
	}

	// tag number + bytes
	return 1 + GetBytesCBORSize(v.Bytes())
}

func GetIntCBORSize(v int64) uint32 {
	if v < 0 {
		return GetUintCBORSize(uint64(-v - 1))
	}
	return GetUintCBORSize(uint64(v))
}

func GetUintCBORSize(v uint64) uint32 {
	if v <= 23 {
		return 1
	}
	if v <= math.MaxUint8 {
		return 2
	}
	if v <= math.MaxUint16 {
		return 3
	}
	if v <= math.MaxUint32 {
		return 5
	}
	return 9
}

func GetBytesCBORSize(b []byte) uint32 {
	length := len(b)
	if length == 0 {
		return 1
	}
	return GetUintCBORSize(uint64(length)) + uint32(length)
}

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	options.BigIntConvert = cbor.BigIntConvertNone
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// An Encoder converts integer values into CBOR-encoded bytes.
type Encoder struct {
	enc *cbor.StreamEncoder
}

// Encode returns the CBOR-encoded representation of the given value.
func Encode(value integers.Number) ([]byte, error) {
	var w bytes.Buffer

	enc := NewEncoder(&w)
	defer enc.enc.Close()

	err := enc.Encode(value)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncode returns the CBOR-encoded representation of the given
// value, or panics if the value cannot be encoded.
func MustEncode(value integers.Number) []byte {
	b, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return b
}

// NewEncoder initializes an Encoder that will write CBOR-encoded bytes
// to the given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		enc: CBOREncMode.NewStreamEncoder(w),
	}
}

// Encode writes the CBOR-encoded representation of the given value to
// this encoder's io.Writer.
//
// This function returns an error if the given value's type is not
// supported by the encoder.
func (e *Encoder) Encode(value integers.Number) (err error) {
	// capture panics
	defer func() {
		if r := recover(); r != nil {
			// Don't recover Go errors, internal errors, or non-errors.
			switch r := r.(type) {
			case goRuntime.Error, errors.InternalError:
				panic(r)
			case error:
				err = r
			default:
				panic(r)
			}
		}

		if err != nil {
			err = errors.NewDefaultUserError(
				"failed to encode value (type %T): %w",
				value,
				err,
			)
		}
	}()

	switch value := value.(type) {

	// Int*

	case integers.BigInt:
		err = e.encodeBigInt(value)

	case integers.Int8:
		err = e.encodeInt8(value)

	case integers.Int16:
		err = e.encodeInt16(value)

	case integers.Int32:
		err = e.encodeInt32(value)

	case integers.Int64:
		err = e.encodeInt64(value)

	case integers.Int128:
		err = e.encodeInt128(value)

	// UInt*

	case integers.BigUInt:
		err = e.encodeBigUInt(value)

	case integers.UInt8:
		err = e.encodeUInt8(value)

	case integers.UInt16:
		err = e.encodeUInt16(value)

	case integers.UInt32:
		err = e.encodeUInt32(value)

	case integers.UInt64:
		err = e.encodeUInt64(value)

	case integers.UInt128:
		err = e.encodeUInt128(value)

	default:
		return errors.NewDefaultUserError(
			"unsupported value: %T",
			value,
		)
	}
	if err != nil {
		return err
	}

	return e.enc.Flush()
}

// encodeBigInt encodes BigInt as
// cbor.Tag{
//		Number:  CBORTagBigIntValue,
//		Content: *big.Int,
// }
func (e *Encoder) encodeBigInt(v integers.BigInt) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagBigIntValue,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeBigInt(v.Big())
}

// encodeInt8 encodes Int8 as
// cbor.Tag{
//		Number:  CBORTagInt8Value,
//		Content: int8(v),
// }
func (e *Encoder) encodeInt8(v integers.Int8) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagInt8Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeInt8(int8(v))
}

// encodeInt16 encodes Int16 as
// cbor.Tag{
//		Number:  CBORTagInt16Value,
//		Content: int16(v),
// }
func (e *Encoder) encodeInt16(v integers.Int16) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagInt16Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeInt16(int16(v))
}

// encodeInt32 encodes Int32 as
// cbor.Tag{
//		Number:  CBORTagInt32Value,
//		Content: int32(v),
// }
func (e *Encoder) encodeInt32(v integers.Int32) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagInt32Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeInt32(int32(v))
}

// encodeInt64 encodes Int64 as
// cbor.Tag{
//		Number:  CBORTagInt64Value,
//		Content: int64(v),
// }
func (e *Encoder) encodeInt64(v integers.Int64) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagInt64Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeInt64(int64(v))
}

// encodeInt128 encodes Int128 as
// cbor.Tag{
//		Number:  CBORTagInt128Value,
//		Content: *big.Int,
// }
func (e *Encoder) encodeInt128(v integers.Int128) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagInt128Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeBigInt(v.Big())
}

// encodeBigUInt encodes BigUInt as
// cbor.Tag{
//		Number:  CBORTagBigUIntValue,
//		Content: *big.Int,
// }
func (e *Encoder) encodeBigUInt(v integers.BigUInt) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagBigUIntValue,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeBigInt(v.Big())
}

// encodeUInt8 encodes UInt8 as
// cbor.Tag{
//		Number:  CBORTagUInt8Value,
//		Content: uint8(v),
// }
func (e *Encoder) encodeUInt8(v integers.UInt8) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagUInt8Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeUint8(uint8(v))
}

// encodeUInt16 encodes UInt16 as
// cbor.Tag{
//		Number:  CBORTagUInt16Value,
//		Content: uint16(v),
// }
func (e *Encoder) encodeUInt16(v integers.UInt16) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagUInt16Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeUint16(uint16(v))
}

// encodeUInt32 encodes UInt32 as
// cbor.Tag{
//		Number:  CBORTagUInt32Value,
//		Content: uint32(v),
// }
func (e *Encoder) encodeUInt32(v integers.UInt32) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagUInt32Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeUint32(uint32(v))
}

// encodeUInt64 encodes UInt64 as
// cbor.Tag{
//		Number:  CBORTagUInt64Value,
//		Content: uint64(v),
// }
func (e *Encoder) encodeUInt64(v integers.UInt64) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagUInt64Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeUint64(uint64(v))
}

// encodeUInt128 encodes UInt128 as
// cbor.Tag{
//		Number:  CBORTagUInt128Value,
//		Content: *big.Int,
// }
func (e *Encoder) encodeUInt128(v integers.UInt128) error {
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagUInt128Value,
	})
	if err != nil {
		return err
	}
	return e.enc.EncodeBigInt(v.Big())
}
