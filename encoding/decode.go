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
	"fmt"
	"math"
	"math/big"
	goRuntime "runtime"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/integers"
	"github.com/onflow/integers/errors"
)

// CBORDecMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
//
// Security Considerations in Section 10 of RFC 8949 states:
//
//	"Hostile input may be constructed to overrun buffers, to overflow or underflow integer arithmetic,
//	or to cause other decoding disruption. CBOR data items might have lengths or sizes that are
//	intentionally extremely large or too short. Resource exhaustion attacks might attempt to lure a
//	decoder into allocating very big data items (strings, arrays, maps, or even arbitrary precision numbers)
//	or exhaust the stack depth by setting up deeply nested items. Decoders need to have appropriate resource
//	management to mitigate these attacks."
var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength:     cbor.IndefLengthForbidden,
		IntDec:          cbor.IntDecConvertNone,
		MaxNestedLevels: math.MaxInt16,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

type UnsupportedTagDecodingError struct {
	Tag uint64
}

func (e UnsupportedTagDecodingError) Error() string {
	return fmt.Sprintf(
		"unsupported decoded tag: %d",
		e.Tag,
	)
}

var (
	int128MinBig  = integers.Int128{}.Min().Big()
	int128MaxBig  = integers.Int128{}.Max().Big()
	uint128MaxBig = integers.UInt128{}.Max().Big()
)

// A Decoder decodes CBOR-encoded representations of integer values.
type Decoder struct {
	dec *cbor.StreamDecoder
}

// Decode returns an integer value decoded from its CBOR-encoded
// representation.
//
// This function returns an error if the bytes are malformed, use an
// unsupported tag, or carry a value outside the tagged type's range.
func Decode(b []byte) (integers.Number, error) {
	dec := NewDecoder(b)

	v, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	if dec.dec.NumBytesDecoded() != len(b) {
		return nil, errors.NewDefaultUserError(
			"failed to decode: decoded %d bytes, received %d bytes",
			dec.dec.NumBytesDecoded(),
			len(b),
		)
	}

	return v, nil
}

// MustDecode returns an integer value decoded from its CBOR-encoded
// representation, or panics if the bytes cannot be decoded.
func MustDecode(b []byte) integers.Number {
	v, err := Decode(b)
	if err != nil {
		panic(err)
	}
	return v
}

// NewDecoder initializes a Decoder that will decode CBOR-encoded bytes
// from the given bytes.
//
// NOTE: encoded data is not copied by the decoder.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{
		dec: CBORDecMode.NewByteStreamDecoder(b),
	}
}

// Decode reads CBOR-encoded bytes and decodes them to an integer value.
func (d *Decoder) Decode() (value integers.Number, err error) {
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
			value = nil
			err = errors.NewDefaultUserError("failed to decode: %w", err)
		}
	}()

	num, err := d.dec.DecodeTagNumber()
	if err != nil {
		return nil, err
	}

	switch num {

	// Int*

	case CBORTagBigIntValue:
		value, err = d.decodeBigInt()

	case CBORTagInt8Value:
		value, err = d.decodeInt8()

	case CBORTagInt16Value:
		value, err = d.decodeInt16()

	case CBORTagInt32Value:
		value, err = d.decodeInt32()

	case CBORTagInt64Value:
		value, err = d.decodeInt64()

	case CBORTagInt128Value:
		value, err = d.decodeInt128()

	// UInt*

	case CBORTagBigUIntValue:
		value, err = d.decodeBigUInt()

	case CBORTagUInt8Value:
		value, err = d.decodeUInt8()

	case CBORTagUInt16Value:
		value, err = d.decodeUInt16()

	case CBORTagUInt32Value:
		value, err = d.decodeUInt32()

	case CBORTagUInt64Value:
		value, err = d.decodeUInt64()

	case CBORTagUInt128Value:
		value, err = d.decodeUInt128()

	default:
		return nil, UnsupportedTagDecodingError{
			Tag: num,
		}
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}

func (d *Decoder) decodeBig() (*big.Int, error) {
	return d.dec.DecodeBigInt()
}

func (d *Decoder) decodeBigInt() (integers.BigInt, error) {
	bigInt, err := d.decodeBig()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return integers.BigInt{}, fmt.Errorf(
				"invalid BigInt encoding: %s",
				e.ActualType.String(),
			)
		}
		return integers.BigInt{}, err
	}

	return integers.NewBigIntFromBig(bigInt), nil
}

func (d *Decoder) decodeInt8() (integers.Int8, error) {
	v, err := d.dec.DecodeInt64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown Int8 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	const min = math.MinInt8
	const max = math.MaxInt8

	if v < min {
		return 0, fmt.Errorf("invalid Int8: got %d, expected min %d", v, min)
	}

	if v > max {
		return 0, fmt.Errorf("invalid Int8: got %d, expected max %d", v, max)
	}

	return integers.Int8(v), nil
}

func (d *Decoder) decodeInt16() (integers.Int16, error) {
	v, err := d.dec.DecodeInt64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown Int16 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	const min = math.MinInt16
	const max = math.MaxInt16

	if v < min {
		return 0, fmt.Errorf("invalid Int16: got %d, expected min %d", v, min)
	}

	if v > max {
		return 0, fmt.Errorf("invalid Int16: got %d, expected max %d", v, max)
	}

	return integers.Int16(v), nil
}

func (d *Decoder) decodeInt32() (integers.Int32, error) {
	v, err := d.dec.DecodeInt64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown Int32 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	const min = math.MinInt32
	const max = math.MaxInt32

	if v < min {
		return 0, fmt.Errorf("invalid Int32: got %d, expected min %d", v, min)
	}

	if v > max {
		return 0, fmt.Errorf("invalid Int32: got %d, expected max %d", v, max)
	}

	return integers.Int32(v), nil
}

func (d *Decoder) decodeInt64() (integers.Int64, error) {
	v, err := d.dec.DecodeInt64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown Int64 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	return integers.Int64(v), nil
}

func (d *Decoder) decodeInt128() (integers.Int128, error) {
	bigInt, err := d.decodeBig()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return integers.Int128{}, fmt.Errorf(
				"invalid Int128 encoding: %s",
				e.ActualType.String(),
			)
		}
		return integers.Int128{}, err
	}

	v, ok := integers.NewInt128FromBigInt(bigInt)
	if !ok {
		if bigInt.Sign() < 0 {
			return integers.Int128{}, fmt.Errorf(
				"invalid Int128: got %s, expected min %s",
				bigInt,
				int128MinBig,
			)
		}
		return integers.Int128{}, fmt.Errorf(
			"invalid Int128: got %s, expected max %s",
			bigInt,
			int128MaxBig,
		)
	}

	return v, nil
}

func (d *Decoder) decodeBigUInt() (integers.BigUInt, error) {
	bigInt, err := d.decodeBig()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return integers.BigUInt{}, fmt.Errorf(
				"invalid BigUInt encoding: %s",
				e.ActualType.String(),
			)
		}
		return integers.BigUInt{}, err
	}

	if bigInt.Sign() < 0 {
		return integers.BigUInt{}, fmt.Errorf(
			"invalid BigUInt: got %s, expected positive",
			bigInt,
		)
	}

	return integers.NewBigUIntFromBig(bigInt), nil
}

func (d *Decoder) decodeUInt8() (integers.UInt8, error) {
	v, err := d.dec.DecodeUint64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown UInt8 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	const max = math.MaxUint8

	if v > max {
		return 0, fmt.Errorf("invalid UInt8: got %d, expected max %d", v, max)
	}

	return integers.UInt8(v), nil
}

func (d *Decoder) decodeUInt16() (integers.UInt16, error) {
	v, err := d.dec.DecodeUint64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown UInt16 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	const max = math.MaxUint16

	if v > max {
		return 0, fmt.Errorf("invalid UInt16: got %d, expected max %d", v, max)
	}

	return integers.UInt16(v), nil
}

func (d *Decoder) decodeUInt32() (integers.UInt32, error) {
	v, err := d.dec.DecodeUint64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown UInt32 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	const max = math.MaxUint32

	if v > max {
		return 0, fmt.Errorf("invalid UInt32: got %d, expected max %d", v, max)
	}

	return integers.UInt32(v), nil
}

func (d *Decoder) decodeUInt64() (integers.UInt64, error) {
	v, err := d.dec.DecodeUint64()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return 0, fmt.Errorf("unknown UInt64 encoding: %s", e.ActualType.String())
		}
		return 0, err
	}

	return integers.UInt64(v), nil
}

func (d *Decoder) decodeUInt128() (integers.UInt128, error) {
	bigInt, err := d.decodeBig()
	if err != nil {
		if e, ok := err.(*cbor.WrongTypeError); ok {
			return integers.UInt128{}, fmt.Errorf(
				"invalid UInt128 encoding: %s",
				e.ActualType.String(),
			)
		}
		return integers.UInt128{}, err
	}

	if bigInt.Sign() < 0 {
		return integers.UInt128{}, fmt.Errorf(
			"invalid UInt128: got %s, expected positive",
			bigInt,
		)
	}

	v, ok := integers.NewUInt128FromBigInt(bigInt)
	if !ok {
		return integers.UInt128{}, fmt.Errorf(
			"invalid UInt128: got %s, expected max %s",
			bigInt,
			uint128MaxBig,
		)
	}

	return v, nil
}
