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

import "github.com/ethcodec/ethcodec/common"

// EncodePacked returns the non-standard packed encoding used by Solidity's
// abi.encodePacked. Values take their natural width, dynamic values are not
// length prefixed and array elements are padded to 32 bytes. The result cannot
// be decoded unambiguously.
func EncodePacked(values ...Value) ([]byte, error) {
	var out []byte
	for _, v := range values {
		var err error
		if out, err = appendPacked(out, v, false); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func appendPacked(out []byte, v Value, inArray bool) ([]byte, error) {
	switch v := v.(type) {
	case BoolValue:
		b := byte(0)
		if v {
			b = 1
		}
		if inArray {
			out = append(out, zeroWord[:wordSize-1]...)
		}
		return append(out, b), nil
	case *UintValue:
		word := v.v.Bytes32()
		return appendWord(out, word[:], v.typ.bits/8, inArray), nil
	case *IntValue:
		word := v.v.Bytes32()
		return appendWord(out, word[:], v.typ.bits/8, inArray), nil
	case AddressValue:
		if inArray {
			out = append(out, zeroWord[:wordSize-common.AddressLength]...)
		}
		return append(out, v[:]...), nil
	case *FixedBytesValue:
		if inArray {
			return append(out, v.b[:]...), nil
		}
		return append(out, v.b[:v.typ.size]...), nil
	case BytesValue:
		if inArray {
			return nil, errPackedArray
		}
		return append(out, v...), nil
	case StringValue:
		if inArray {
			return nil, errPackedArray
		}
		return append(out, v...), nil
	case *ArrayValue:
		return appendPackedElems(out, v.elems)
	case *SliceValue:
		return appendPackedElems(out, v.elems)
	case *TupleValue:
		return nil, errPackedTuple
	}
	return nil, &TypeError{Type: v.Type().String(), Value: v, Reason: "no packed encoding"}
}

// appendWord appends the low n bytes of a big-endian word, or the whole word
// inside arrays.
func appendWord(out []byte, word []byte, n int, inArray bool) []byte {
	if inArray {
		return append(out, word...)
	}
	return append(out, word[wordSize-n:]...)
}

func appendPackedElems(out []byte, elems []Value) ([]byte, error) {
	for _, e := range elems {
		var err error
		if out, err = appendPacked(out, e, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}
