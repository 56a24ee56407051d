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

/*
Package rlp implements the RLP serialization format.

RLP (Recursive Length Prefix) encodes nested arrays of binary data. A value is
either a byte string or a list of values. Integers are encoded as big-endian
byte strings without leading zeros, so zero is the empty string.

The Item type holds such a tree. Encode and Decode convert between Items and
their encoding, EncodeToBytes builds Items from Go values, and the Split
functions in raw.go walk encoded data without building a tree.

Decoding is strict: sizes must use the shortest encoding, a single byte below
0x80 must be its own encoding, and list contents must consume exactly the
declared list size.
*/
package rlp

import "errors"

// Kind is the kind of an RLP value.
type Kind int

const (
	Byte Kind = iota
	String
	List
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

var (
	ErrExpectedString   = errors.New("rlp: expected String or Byte")
	ErrExpectedList     = errors.New("rlp: expected List")
	ErrCanonInt         = errors.New("rlp: non-canonical integer format")
	ErrCanonSize        = errors.New("rlp: non-canonical size information")
	ErrElemTooLarge     = errors.New("rlp: element is larger than containing list")
	ErrValueTooLarge    = errors.New("rlp: value size exceeds available input length")
	ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")

	errUintOverflow   = errors.New("rlp: uint overflow")
	errNegativeBigInt = errors.New("rlp: cannot encode negative big.Int")
	errEmptyInput     = errors.New("rlp: empty input")
	errNilPointer     = errors.New("rlp: cannot encode nil pointer")
)
