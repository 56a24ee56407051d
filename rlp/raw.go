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

import "io"

// RawValue is a complete, already encoded RLP value.
type RawValue []byte

// ListSize returns the encoded size of a list with the given content size.
func ListSize(contentSize uint64) uint64 {
	return uint64(headSize(contentSize)) + contentSize
}

// IntSize returns the encoded size of the integer x.
func IntSize(x uint64) int {
	if x < 0x80 {
		return 1
	}
	return 1 + intsize(x)
}

// Split returns the content of the first RLP value in b and any bytes after
// it.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	k, ts, cs, err := readKind(b)
	if err != nil {
		return 0, nil, b, err
	}
	return k, b[ts : ts+cs], b[ts+cs:], nil
}

// SplitString splits b into the content of an RLP string and any remaining
// bytes after the string.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k == List {
		return nil, b, ErrExpectedString
	}
	return content, rest, nil
}

// SplitUint64 decodes an integer at the beginning of b. It also returns the
// remaining data after the integer in 'rest'.
func SplitUint64(b []byte) (x uint64, rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return 0, b, err
	}
	switch n := len(content); n {
	case 0:
		return 0, rest, nil
	case 1:
		if content[0] == 0 {
			return 0, b, ErrCanonInt
		}
		return uint64(content[0]), rest, nil
	default:
		if n > 8 {
			return 0, b, errUintOverflow
		}
		if content[0] == 0 {
			return 0, b, ErrCanonInt
		}
		for _, c := range content {
			x = x<<8 | uint64(c)
		}
		return x, rest, nil
	}
}

// SplitList splits b into the content of a list and any remaining bytes after
// the list.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k != List {
		return nil, b, ErrExpectedList
	}
	return content, rest, nil
}

// CountValues counts the number of encoded values in b.
func CountValues(b []byte) (int, error) {
	i := 0
	for ; len(b) > 0; i++ {
		_, tagsize, size, err := readKind(b)
		if err != nil {
			return 0, err
		}
		b = b[tagsize+size:]
	}
	return i, nil
}

// readKind classifies the lead byte of buf and returns the header and content
// sizes of the value it starts.
func readKind(buf []byte) (k Kind, tagsize, contentsize uint64, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, io.ErrUnexpectedEOF
	}
	b := buf[0]
	switch {
	case b < 0x80:
		k, tagsize, contentsize = Byte, 0, 1
	case b < 0xB8:
		k, tagsize, contentsize = String, 1, uint64(b-0x80)
		// A single byte below 0x80 is its own encoding.
		if contentsize == 1 && len(buf) > 1 && buf[1] < 0x80 {
			return 0, 0, 0, ErrCanonSize
		}
	case b < 0xC0:
		k, tagsize = String, uint64(b-0xB7)+1
		contentsize, err = readSize(buf[1:], b-0xB7)
	case b < 0xF8:
		k, tagsize, contentsize = List, 1, uint64(b-0xC0)
	default:
		k, tagsize = List, uint64(b-0xF7)+1
		contentsize, err = readSize(buf[1:], b-0xF7)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	if contentsize > uint64(len(buf))-tagsize {
		return 0, 0, 0, ErrValueTooLarge
	}
	return k, tagsize, contentsize, nil
}

// readSize reads a big-endian size of slen bytes. The size must not have
// leading zero bytes and must be at least 56, below which the short form
// applies.
func readSize(b []byte, slen byte) (uint64, error) {
	if int(slen) > len(b) {
		return 0, io.ErrUnexpectedEOF
	}
	if b[0] == 0 {
		return 0, ErrCanonSize
	}
	var s uint64
	for _, c := range b[:slen] {
		s = s<<8 | uint64(c)
	}
	if s < 56 {
		return 0, ErrCanonSize
	}
	return s, nil
}

// AppendUint64 appends the RLP encoding of i to b, and returns the resulting slice.
func AppendUint64(b []byte, i uint64) []byte {
	switch {
	case i == 0:
		return append(b, 0x80)
	case i < 0x80:
		return append(b, byte(i))
	}
	n := intsize(i)
	b = append(b, 0x80+byte(n))
	var buf [8]byte
	putint(buf[:n], i)
	return append(b, buf[:n]...)
}
