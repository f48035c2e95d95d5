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
	"github.com/onflow/integers"
)

// Codec is the interface any number codec must implement.
type Codec interface {
	Encode(integers.Number) ([]byte, error)
	MustEncode(integers.Number) []byte

	Decode([]byte) (integers.Number, error)
	MustDecode([]byte) integers.Number
}

// CBORCodec implements Codec with the tagged CBOR encoding
// of this package.
type CBORCodec struct{}

var _ Codec = CBORCodec{}

func (CBORCodec) Encode(value integers.Number) ([]byte, error) {
	return Encode(value)
}

func (CBORCodec) MustEncode(value integers.Number) []byte {
	return MustEncode(value)
}

func (CBORCodec) Decode(b []byte) (integers.Number, error) {
	return Decode(b)
}

func (CBORCodec) MustDecode(b []byte) integers.Number {
	return MustDecode(b)
}
