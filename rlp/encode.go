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

package rlp

import (
	"github.com/ethcodec/ethcodec/common/hexutil"
)

// Encode returns the RLP encoding of it.
func Encode(it Item) []byte {
	return appendItem(make([]byte, 0, it.EncodedSize()), it)
}

// EncodeHex returns the encoding of it as hex text, with a "0x" prefix if
// prefix is set.
func EncodeHex(it Item, prefix bool) string {
	text := hexutil.Encode(Encode(it))
	if !prefix {
		return text[2:]
	}
	return text
}

func appendItem(buf []byte, it Item) []byte {
	if it.list {
		buf = appendHeader(buf, it.size, 0xC0, 0xF7)
		for _, c := range it.items {
			buf = appendItem(buf, c)
		}
		return buf
	}
	if len(it.str) == 1 && it.str[0] < 0x80 {
		return append(buf, it.str[0])
	}
	buf = appendHeader(buf, it.size, 0x80, 0xB7)
	return append(buf, it.str...)
}

// appendHeader appends a string or list header for a payload of the given size.
// Payloads below 56 bytes use the short form smallTag+size. Longer ones use
// largeTag+len(size) followed by the big-endian size.
func appendHeader(buf []byte, size uint64, smallTag, largeTag byte) []byte {
	if size < 56 {
		return append(buf, smallTag+byte(size))
	}
	n := intsize(size)
	buf = append(buf, largeTag+byte(n))
	var sizebuf [8]byte
	putint(sizebuf[:n], size)
	return append(buf, sizebuf[:n]...)
}

// headSize returns the size of a string or list header for a payload of the
// given size.
func headSize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) (size int) {
	for size = 0; i > 0; size++ {
		i >>= 8
	}
	return size
}

// putint writes i big-endian into the first intsize(i) bytes of b and returns
// that size.
func putint(b []byte, i uint64) int {
	n := intsize(i)
	for j := n - 1; j >= 0; j-- {
		b[j] = byte(i)
		i >>= 8
	}
	return n
}

// EncodeToBytes returns the RLP encoding of a Go value. Supported are Items,
// byte slices and arrays, strings, bools, unsigned integers, big and uint256
// integers, addresses and hashes, and slices, arrays and structs of those,
// which encode as lists.
func EncodeToBytes(val interface{}) ([]byte, error) {
	it, err := ToItem(val)
	if err != nil {
		return nil, err
	}
	return Encode(it), nil
}

// EncodeToHex is like EncodeToBytes but returns hex text.
func EncodeToHex(val interface{}, prefix bool) (string, error) {
	it, err := ToItem(val)
	if err != nil {
		return "", err
	}
	return EncodeHex(it, prefix), nil
}
