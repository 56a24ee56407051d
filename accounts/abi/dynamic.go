// Copyright 2026 The ethcodec Authors
// This file is part of the ethcodec library.
//
// The ethcodec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ethcodec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ethcodec library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"unicode/utf8"

	"github.com/ethcodec/ethcodec/common"
)

// BytesType is the dynamic ABI bytes type.
type BytesType struct{}

func (BytesType) Kind() Kind      { return BytesTy }
func (BytesType) String() string  { return "bytes" }
func (BytesType) IsDynamic() bool { return true }
func (BytesType) StaticSize() int { return wordSize }

func (t BytesType) New(v interface{}) (Value, error) {
	if val, ok := v.(BytesValue); ok {
		return val, nil
	}
	b, ok := toBytes(v)
	if !ok {
		return nil, typeError(t, v, "")
	}
	return BytesValue(common.CopyBytes(b)), nil
}

func (BytesType) Decode(r Reader) (Value, error) {
	b, err := readPayload(r)
	if err != nil {
		return nil, err
	}
	return BytesValue(common.CopyBytes(b)), nil
}

// BytesValue is a dynamic byte string.
type BytesValue []byte

func (BytesValue) Type() Type               { return TypeBytes }
func (BytesValue) IsDynamic() bool          { return true }
func (v BytesValue) Size() int              { return payloadSize(len(v)) }
func (v BytesValue) EncodeTo(w Writer)      { writePayload(w, v) }
func (v BytesValue) Interface() interface{} { return []byte(v) }

// StringType is the dynamic ABI string type. Strings must be valid UTF-8.
type StringType struct{}

func (StringType) Kind() Kind      { return StringTy }
func (StringType) String() string  { return "string" }
func (StringType) IsDynamic() bool { return true }
func (StringType) StaticSize() int { return wordSize }

func (t StringType) New(v interface{}) (Value, error) {
	var s string
	switch v := v.(type) {
	case StringValue:
		s = string(v)
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return nil, typeError(t, v, "")
	}
	if !utf8.ValidString(s) {
		return nil, typeError(t, v, "string is not valid UTF-8")
	}
	return StringValue(s), nil
}

func (StringType) Decode(r Reader) (Value, error) {
	b, err := readPayload(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return StringValue(b), nil
}

// StringValue is a dynamic UTF-8 string.
type StringValue string

func (StringValue) Type() Type               { return TypeString }
func (StringValue) IsDynamic() bool          { return true }
func (v StringValue) Size() int              { return payloadSize(len(v)) }
func (v StringValue) EncodeTo(w Writer)      { writePayload(w, []byte(v)) }
func (v StringValue) Interface() interface{} { return string(v) }

// payloadSize is the encoded size of a length-prefixed, word-padded byte string.
func payloadSize(n int) int {
	return wordSize + n + padding(n)
}

func writePayload(w Writer, b []byte) {
	writeUint(w, uint64(len(b)))
	w.Write(b)
	writeZeros(w, padding(len(b)))
}

// readPayload reads a length-prefixed byte string and skips its padding.
func readPayload(r Reader) ([]byte, error) {
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	b, err := r.Read(n)
	if err != nil {
		return nil, err
	}
	pad, err := r.Read(padding(n))
	if err != nil {
		return nil, err
	}
	if !isZero(pad) {
		return nil, formatError("non-zero padding after %d byte payload", n)
	}
	return b, nil
}
