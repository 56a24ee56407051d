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

// Encode returns the binary encoding of v.
func Encode(v Value) []byte {
	w := NewBytesWriter(v.Size())
	v.EncodeTo(w)
	return w.Bytes()
}

// EncodeHex returns the encoding of v as hex text, with a "0x" prefix if
// prefix is set.
func EncodeHex(v Value, prefix bool) string {
	w := NewHexWriter(v.Size(), prefix)
	v.EncodeTo(w)
	return w.String()
}

// Decode decodes a value of type t from the start of data. Bytes after the
// value are ignored.
func Decode(t Type, data []byte) (Value, error) {
	return t.Decode(NewReader(data))
}

// DecodeHex decodes a value of type t from hex text with an optional "0x"
// prefix.
func DecodeHex(t Type, text string) (Value, error) {
	r, err := NewHexReader(text)
	if err != nil {
		return nil, err
	}
	return t.Decode(r)
}
