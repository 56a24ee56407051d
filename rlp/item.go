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
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/holiman/uint256"
)

// Item is an RLP value: a byte string or a list of items. The zero Item is the
// empty string. Items are immutable.
type Item struct {
	list  bool
	str   []byte
	items []Item
	size  uint64 // payload size; for lists the total size of the child encodings
}

// NewString creates a string item. The item keeps a copy of b.
func NewString(b []byte) Item {
	return Item{str: append([]byte(nil), b...), size: uint64(len(b))}
}

// NewList creates a list item.
func NewList(items ...Item) Item {
	it := Item{list: true, items: append([]Item(nil), items...)}
	for _, c := range it.items {
		it.size += c.EncodedSize()
	}
	return it
}

// Uint creates the canonical string item of an unsigned integer. Zero is the
// empty string.
func Uint(n uint64) Item {
	b := make([]byte, intsize(n))
	putint(b, n)
	return Item{str: b, size: uint64(len(b))}
}

// BigInt creates the canonical string item of a non-negative big integer.
func BigInt(n *big.Int) (Item, error) {
	if n.Sign() < 0 {
		return Item{}, errNegativeBigInt
	}
	b := n.Bytes()
	return Item{str: b, size: uint64(len(b))}, nil
}

// Uint256 creates the canonical string item of a 256 bit integer.
func Uint256(n *uint256.Int) Item {
	if n.IsZero() {
		return Item{}
	}
	b := n.Bytes()
	return Item{str: b, size: uint64(len(b))}
}

// Kind returns String or List.
func (it Item) Kind() Kind {
	if it.list {
		return List
	}
	return String
}

// IsList reports whether the item is a list.
func (it Item) IsList() bool { return it.list }

// Bytes returns the content of a string item and nil for lists.
func (it Item) Bytes() []byte { return it.str }

// Items returns the children of a list item and nil for strings.
func (it Item) Items() []Item { return it.items }

// Len returns the number of children of a list or the length of a string.
func (it Item) Len() int {
	if it.list {
		return len(it.items)
	}
	return len(it.str)
}

// EncodedSize returns the size of the item's encoding.
func (it Item) EncodedSize() uint64 {
	if !it.list && len(it.str) == 1 && it.str[0] < 0x80 {
		return 1
	}
	return uint64(headSize(it.size)) + it.size
}

// Uint64 decodes a string item as a canonical unsigned integer.
func (it Item) Uint64() (uint64, error) {
	if it.list {
		return 0, ErrExpectedString
	}
	switch {
	case len(it.str) > 8:
		return 0, errUintOverflow
	case len(it.str) > 0 && it.str[0] == 0:
		return 0, ErrCanonInt
	}
	var n uint64
	for _, b := range it.str {
		n = n<<8 | uint64(b)
	}
	return n, nil
}

// Big decodes a string item as a canonical non-negative big integer.
func (it Item) Big() (*big.Int, error) {
	if it.list {
		return nil, ErrExpectedString
	}
	if len(it.str) > 0 && it.str[0] == 0 {
		return nil, ErrCanonInt
	}
	return new(big.Int).SetBytes(it.str), nil
}

// Uint256 decodes a string item as a canonical 256 bit integer.
func (it Item) Uint256() (*uint256.Int, error) {
	if len(it.str) > 32 {
		return nil, errUintOverflow
	}
	if _, err := it.Big(); err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(it.str), nil
}

// String renders the item as an indented tree. Strings print as hex, followed
// by a quoted form when they are printable text.
func (it Item) String() string {
	var sb strings.Builder
	it.format(&sb, 0)
	return sb.String()
}

func (it Item) format(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	if !it.list {
		sb.WriteString(hexutil.Encode(it.str))
		if len(it.str) > 0 && isPrintable(it.str) {
			sb.WriteString(" ")
			sb.WriteString(strconv.Quote(string(it.str)))
		}
		return
	}
	if len(it.items) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteString("[\n")
	for _, c := range it.items {
		c.format(sb, depth+1)
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString("]")
}

func isPrintable(b []byte) bool {
	for _, r := range string(b) {
		if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
