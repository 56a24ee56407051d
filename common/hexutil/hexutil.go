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

// Package hexutil implements the 0x-prefixed hex text used for byte data on
// the command line and in JSON. An empty byte slice encodes as "0x".
package hexutil

import (
	"encoding/hex"
	"errors"
)

var (
	ErrEmptyString   = errors.New("empty hex string")
	ErrMissingPrefix = errors.New("missing 0x prefix for hex data")
	ErrSyntax        = errors.New("invalid hex")
	ErrOddLength     = errors.New("hex string has odd length")
)

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !Has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Has0xPrefix reports whether input starts with "0x" or "0X".
func Has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// mapError converts encoding/hex errors to the errors of this package.
func mapError(err error) error {
	var invalid hex.InvalidByteError
	switch {
	case errors.As(err, &invalid):
		return ErrSyntax
	case errors.Is(err, hex.ErrLength):
		return ErrOddLength
	}
	return err
}
