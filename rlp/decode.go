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
	"errors"

	"github.com/ethcodec/ethcodec/common/hexutil"
)

// Decode decodes data, which must hold exactly one RLP value.
func Decode(data []byte) (Item, error) {
	if len(data) == 0 {
		return Item{}, errEmptyInput
	}
	it, rest, err := decodeItem(data)
	if err != nil {
		return Item{}, err
	}
	if len(rest) > 0 {
		return Item{}, ErrMoreThanOneValue
	}
	return it, nil
}

// DecodeHex decodes hex text with an optional "0x" prefix.
func DecodeHex(text string) (Item, error) {
	if !hexutil.Has0xPrefix(text) {
		text = "0x" + text
	}
	data, err := hexutil.Decode(text)
	if err != nil {
		return Item{}, err
	}
	return Decode(data)
}

// decodeItem decodes the value at the start of b and returns the bytes after it.
func decodeItem(b []byte) (Item, []byte, error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return Item{}, b, err
	}
	if k != List {
		return NewString(content), rest, nil
	}
	var children []Item
	for len(content) > 0 {
		var child Item
		child, content, err = decodeItem(content)
		if errors.Is(err, ErrValueTooLarge) {
			err = ErrElemTooLarge
		}
		if err != nil {
			return Item{}, b, err
		}
		children = append(children, child)
	}
	return NewList(children...), rest, nil
}
