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

// Package abi implements the Ethereum contract ABI head/tail encoding.
//
// Every ABI type is described by a Type, which is immutable and safe for
// concurrent use. A Type builds Values from Go data (Type.New) and decodes
// them from a Reader. Values report whether they are dynamic and how many bytes
// they occupy, and write themselves to a Writer. Composite values (tuples, fixed
// arrays and dynamic arrays) lay their children out as a head region of static
// values and 32 byte offsets, followed by a tail region holding the dynamic
// children. Offsets are relative to the start of the enclosing container.
//
// Binary and hex cursors share the same encoding code, so every layer can target
// either representation. The hex form carries a "0x" prefix only when asked for
// by the outermost call.
package abi

import (
	"errors"
	"fmt"
)

var (
	// ErrBounds is returned when a read runs past the end of the input or an
	// offset points outside of it.
	ErrBounds = errors.New("abi: out of bounds")

	// ErrFormat is returned when the input is long enough but its content is not
	// a valid encoding of the expected type.
	ErrFormat = errors.New("abi: malformed input")

	ErrInvalidBool = fmt.Errorf("%w: improperly encoded boolean value", ErrFormat)
	ErrInvalidUTF8 = fmt.Errorf("%w: string is not valid UTF-8", ErrFormat)

	// ErrSelectorMismatch is matched by errors.Is for *SelectorMismatchError.
	ErrSelectorMismatch = errors.New("abi: function selector mismatch")

	errPackedTuple = errors.New("abi: packed encoding of tuples is not supported")
	errPackedArray = errors.New("abi: packed encoding of dynamic values inside arrays is not supported")
)

// BoundsError reports a read of Need bytes at Offset in an input of Len bytes.
type BoundsError struct {
	Offset int
	Need   int
	Len    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("abi: cannot read %d bytes at offset %d, input length %d", e.Need, e.Offset, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrBounds }

// SelectorMismatchError is returned when calldata does not start with the
// selector of the function it is decoded against.
type SelectorMismatchError struct {
	Want Selector
	Have Selector
}

func (e *SelectorMismatchError) Error() string {
	return fmt.Sprintf("abi: selector mismatch: want %s, have %s", e.Want, e.Have)
}

func (e *SelectorMismatchError) Unwrap() error { return ErrSelectorMismatch }

// TypeError is returned when a Go value cannot be converted to an ABI type.
type TypeError struct {
	Type   string
	Value  interface{}
	Reason string
}

func (e *TypeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("abi: cannot use %T as type %s", e.Value, e.Type)
	}
	return fmt.Sprintf("abi: cannot use %T as type %s: %s", e.Value, e.Type, e.Reason)
}

func typeError(t Type, v interface{}, format string, args ...interface{}) error {
	return &TypeError{Type: t.String(), Value: v, Reason: fmt.Sprintf(format, args...)}
}

func formatError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}
