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
	"bytes"

	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/ethcodec/ethcodec/crypto"
)

// SelectorLength is the length of a function selector in bytes.
const SelectorLength = 4

// Selector is the first four bytes of the keccak256 hash of a function
// signature.
type Selector [SelectorLength]byte

// Hex returns the 0x-prefixed hex form of the selector.
func (s Selector) Hex() string { return hexutil.Encode(s[:]) }

func (s Selector) String() string { return s.Hex() }

// Function frames calldata as a selector followed by the encoded input tuple.
type Function struct {
	Name    string
	Inputs  *TupleType
	Outputs *TupleType

	hasher crypto.Hasher
}

// NewFunction creates a function. Nil inputs or outputs mean an empty tuple.
func NewFunction(name string, inputs, outputs *TupleType) *Function {
	if inputs == nil {
		inputs = NewTuple()
	}
	if outputs == nil {
		outputs = NewTuple()
	}
	return &Function{Name: name, Inputs: inputs, Outputs: outputs}
}

// WithHasher returns a copy of f that derives its selector with h instead of
// keccak256.
func (f *Function) WithHasher(h crypto.Hasher) *Function {
	cpy := *f
	cpy.hasher = h
	return &cpy
}

// Sig returns the canonical signature, e.g. "transfer(address,uint256)".
func (f *Function) Sig() string {
	return f.Name + f.Inputs.String()
}

// Selector returns the function selector.
func (f *Function) Selector() Selector {
	var sel Selector
	h := crypto.OrDefault(f.hasher).Hash([]byte(f.Sig()))
	copy(sel[:], h[:SelectorLength])
	return sel
}

// String returns a readable form including parameter names.
func (f *Function) String() string {
	s := "function " + f.Name + formatParams(f.Inputs)
	if f.Outputs.Len() > 0 {
		s += " returns" + formatParams(f.Outputs)
	}
	return s
}

// Pack converts args to the input types and encodes them as calldata.
func (f *Function) Pack(args ...interface{}) ([]byte, error) {
	v, err := f.Inputs.New(args)
	if err != nil {
		return nil, err
	}
	return f.PackValues(v.(*TupleValue))
}

// PackValues encodes an input tuple as calldata.
func (f *Function) PackValues(v *TupleValue) ([]byte, error) {
	if err := f.checkInputs(v); err != nil {
		return nil, err
	}
	sel := f.Selector()
	w := NewBytesWriter(SelectorLength + v.Size())
	w.Write(sel[:])
	v.EncodeTo(w)
	return w.Bytes(), nil
}

// EncodeHex encodes an input tuple as hex calldata.
func (f *Function) EncodeHex(v *TupleValue, prefix bool) (string, error) {
	if err := f.checkInputs(v); err != nil {
		return "", err
	}
	sel := f.Selector()
	w := NewHexWriter(SelectorLength+v.Size(), prefix)
	w.Write(sel[:])
	v.EncodeTo(w)
	return w.String(), nil
}

func (f *Function) checkInputs(v *TupleValue) error {
	if !sameType(v.Type(), f.Inputs) {
		return &TypeError{Type: f.Inputs.String(), Value: v, Reason: "argument type " + v.Type().String()}
	}
	return nil
}

// Unpack checks the selector at the start of calldata and decodes the inputs
// that follow it.
func (f *Function) Unpack(data []byte) (*TupleValue, error) {
	return f.unpack(NewReader(data))
}

// UnpackHex is like Unpack for hex calldata with an optional "0x" prefix.
func (f *Function) UnpackHex(text string) (*TupleValue, error) {
	r, err := NewHexReader(text)
	if err != nil {
		return nil, err
	}
	return f.unpack(r)
}

func (f *Function) unpack(r Reader) (*TupleValue, error) {
	have, err := r.Read(SelectorLength)
	if err != nil {
		return nil, err
	}
	want := f.Selector()
	if !bytes.Equal(have, want[:]) {
		e := &SelectorMismatchError{Want: want}
		copy(e.Have[:], have)
		return nil, e
	}
	v, err := f.Inputs.Decode(r)
	if err != nil {
		return nil, err
	}
	return v.(*TupleValue), nil
}

// UnpackOutputs decodes return data.
func (f *Function) UnpackOutputs(data []byte) (*TupleValue, error) {
	v, err := f.Outputs.Decode(NewReader(data))
	if err != nil {
		return nil, err
	}
	return v.(*TupleValue), nil
}
