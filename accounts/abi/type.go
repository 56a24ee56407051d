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
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/common/math"
	"github.com/holiman/uint256"
)

// Kind enumerates the families of ABI types.
type Kind uint8

const (
	BoolTy Kind = iota
	UintTy
	IntTy
	AddressTy
	FixedBytesTy
	BytesTy
	StringTy
	ArrayTy
	SliceTy
	TupleTy
)

var kindNames = [...]string{
	BoolTy:       "bool",
	UintTy:       "uint",
	IntTy:        "int",
	AddressTy:    "address",
	FixedBytesTy: "fixed bytes",
	BytesTy:      "bytes",
	StringTy:     "string",
	ArrayTy:      "array",
	SliceTy:      "slice",
	TupleTy:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind" + strconv.Itoa(int(k))
}

// Type describes an ABI type and creates Values of it.
type Type interface {
	Kind() Kind
	// String returns the canonical type name used in function signatures.
	String() string
	// IsDynamic reports whether the encoded size depends on the value.
	IsDynamic() bool
	// StaticSize returns the size of the type's head slot: the whole encoding
	// of a static type or one offset word for a dynamic one.
	StaticSize() int
	// New converts a Go value into a Value of this type.
	New(v interface{}) (Value, error)
	// Decode reads a value at the cursor position. Dynamic types expect the
	// cursor to point at their tail, not at the offset word.
	Decode(r Reader) (Value, error)
}

// Value is a typed ABI value. Values are immutable once constructed.
type Value interface {
	Type() Type
	IsDynamic() bool
	// Size returns the number of bytes EncodeTo writes.
	Size() int
	EncodeTo(w Writer)
	// Interface returns the value as plain Go data.
	Interface() interface{}
}

// sameType reports whether two types have the same canonical form.
func sameType(a, b Type) bool {
	return a == b || a.String() == b.String()
}

// asValue returns v if it already is a Value of type t.
func asValue(t Type, v interface{}) (Value, bool) {
	val, ok := v.(Value)
	if !ok || !sameType(val.Type(), t) {
		return nil, false
	}
	return val, true
}

// Shared instances of the common types.
var (
	TypeBool    = BoolType{}
	TypeAddress = AddressType{}
	TypeBytes   = BytesType{}
	TypeString  = StringType{}
	TypeUint256 = NewUint(256)
	TypeInt256  = NewInt(256)
	TypeBytes32 = NewFixedBytes(32)
)

var (
	uintTypes       = makeSizedTypes(func(n int) *UintType { return &UintType{bits: 8 * n} })
	intTypes        = makeSizedTypes(func(n int) *IntType { return &IntType{bits: 8 * n} })
	fixedBytesTypes = makeSizedTypes(func(n int) *FixedBytesType { return &FixedBytesType{size: n} })
)

// makeSizedTypes builds the 32 instances of a type parameterized by a size of
// 1..32 bytes.
func makeSizedTypes[T any](mk func(n int) T) (types [32]T) {
	for i := range types {
		types[i] = mk(i + 1)
	}
	return types
}

// BoolType is the ABI bool type.
type BoolType struct{}

func (BoolType) Kind() Kind      { return BoolTy }
func (BoolType) String() string  { return "bool" }
func (BoolType) IsDynamic() bool { return false }
func (BoolType) StaticSize() int { return wordSize }

func (t BoolType) New(v interface{}) (Value, error) {
	switch v := v.(type) {
	case bool:
		return BoolValue(v), nil
	case BoolValue:
		return v, nil
	}
	return nil, typeError(t, v, "")
}

func (BoolType) Decode(r Reader) (Value, error) {
	word, err := r.Read(wordSize)
	if err != nil {
		return nil, err
	}
	if !isZero(word[:wordSize-1]) {
		return nil, ErrInvalidBool
	}
	switch word[wordSize-1] {
	case 0:
		return BoolValue(false), nil
	case 1:
		return BoolValue(true), nil
	}
	return nil, ErrInvalidBool
}

// BoolValue is a bool.
type BoolValue bool

func (BoolValue) Type() Type               { return TypeBool }
func (BoolValue) IsDynamic() bool          { return false }
func (BoolValue) Size() int                { return wordSize }
func (v BoolValue) Interface() interface{} { return bool(v) }

func (v BoolValue) EncodeTo(w Writer) {
	var word [wordSize]byte
	if v {
		word[wordSize-1] = 1
	}
	w.Write(word[:])
}

// UintType is uintN for N in 8, 16, ..., 256.
type UintType struct {
	bits int
}

// NewUint returns the uintN type. It panics if bits is not a multiple of 8 in
// the range 8..256.
func NewUint(bits int) *UintType {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("abi: invalid uint size %d", bits))
	}
	return uintTypes[bits/8-1]
}

// Bits returns N.
func (t *UintType) Bits() int       { return t.bits }
func (t *UintType) Kind() Kind      { return UintTy }
func (t *UintType) String() string  { return "uint" + strconv.Itoa(t.bits) }
func (t *UintType) IsDynamic() bool { return false }
func (t *UintType) StaticSize() int { return wordSize }

// FromUint256 creates a value, checking that v fits into N bits.
func (t *UintType) FromUint256(v *uint256.Int) (*UintValue, error) {
	if v.BitLen() > t.bits {
		return nil, typeError(t, v, "value %v overflows %d bits", v.ToBig(), t.bits)
	}
	return &UintValue{typ: t, v: *v}, nil
}

// FromBig creates a value, checking that v is non-negative and fits into N bits.
func (t *UintType) FromBig(v *big.Int) (*UintValue, error) {
	if v.Sign() < 0 {
		return nil, typeError(t, v, "negative value %v", v)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return nil, typeError(t, v, "value %v overflows %d bits", v, t.bits)
	}
	return t.FromUint256(u)
}

// FromUint64 creates a value, checking that v fits into N bits.
func (t *UintType) FromUint64(v uint64) (*UintValue, error) {
	return t.FromUint256(uint256.NewInt(v))
}

func (t *UintType) New(v interface{}) (Value, error) {
	if val, ok := asValue(t, v); ok {
		return val, nil
	}
	n, ok := toBig(v)
	if !ok {
		return nil, typeError(t, v, "")
	}
	return t.FromBig(n)
}

func (t *UintType) Decode(r Reader) (Value, error) {
	word, err := r.Read(wordSize)
	if err != nil {
		return nil, err
	}
	val := &UintValue{typ: t}
	val.v.SetBytes32(word)
	if val.v.BitLen() > t.bits {
		return nil, formatError("value %s overflows %s", val.v.Hex(), t)
	}
	return val, nil
}

// UintValue is an unsigned integer of a UintType.
type UintValue struct {
	typ *UintType
	v   uint256.Int
}

func (v *UintValue) Type() Type      { return v.typ }
func (v *UintValue) IsDynamic() bool { return false }
func (v *UintValue) Size() int       { return wordSize }

func (v *UintValue) EncodeTo(w Writer) {
	word := v.v.Bytes32()
	w.Write(word[:])
}

// Uint256 returns a copy of the value.
func (v *UintValue) Uint256() *uint256.Int { return new(uint256.Int).Set(&v.v) }

// Big returns the value as a big integer.
func (v *UintValue) Big() *big.Int { return v.v.ToBig() }

func (v *UintValue) Interface() interface{} { return v.Big() }

// IntType is intN for N in 8, 16, ..., 256, in two's complement.
type IntType struct {
	bits int
}

// NewInt returns the intN type. It panics if bits is not a multiple of 8 in the
// range 8..256.
func NewInt(bits int) *IntType {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("abi: invalid int size %d", bits))
	}
	return intTypes[bits/8-1]
}

// Bits returns N.
func (t *IntType) Bits() int       { return t.bits }
func (t *IntType) Kind() Kind      { return IntTy }
func (t *IntType) String() string  { return "int" + strconv.Itoa(t.bits) }
func (t *IntType) IsDynamic() bool { return false }
func (t *IntType) StaticSize() int { return wordSize }

// fits reports whether -2^(N-1) <= v < 2^(N-1).
func (t *IntType) fits(v *big.Int) bool {
	if v.Sign() >= 0 {
		return v.BitLen() < t.bits
	}
	abs := new(big.Int).Neg(v)
	return abs.Sub(abs, big.NewInt(1)).BitLen() < t.bits
}

// FromBig creates a value, checking that v fits into N bits.
func (t *IntType) FromBig(v *big.Int) (*IntValue, error) {
	if !t.fits(v) {
		return nil, typeError(t, v, "value %v overflows %d bits", v, t.bits)
	}
	val := &IntValue{typ: t}
	val.v.SetFromBig(math.U256(new(big.Int).Set(v)))
	return val, nil
}

// FromInt64 creates a value, checking that v fits into N bits.
func (t *IntType) FromInt64(v int64) (*IntValue, error) {
	return t.FromBig(big.NewInt(v))
}

func (t *IntType) New(v interface{}) (Value, error) {
	if val, ok := asValue(t, v); ok {
		return val, nil
	}
	n, ok := toBig(v)
	if !ok {
		return nil, typeError(t, v, "")
	}
	return t.FromBig(n)
}

func (t *IntType) Decode(r Reader) (Value, error) {
	word, err := r.Read(wordSize)
	if err != nil {
		return nil, err
	}
	val := &IntValue{typ: t}
	val.v.SetBytes32(word)
	if !t.fits(val.Big()) {
		return nil, formatError("value %s is not a sign-extended %s", val.v.Hex(), t)
	}
	return val, nil
}

// IntValue is a signed integer of an IntType.
type IntValue struct {
	typ *IntType
	v   uint256.Int // two's complement
}

func (v *IntValue) Type() Type      { return v.typ }
func (v *IntValue) IsDynamic() bool { return false }
func (v *IntValue) Size() int       { return wordSize }

func (v *IntValue) EncodeTo(w Writer) {
	word := v.v.Bytes32()
	w.Write(word[:])
}

// Big returns the signed value.
func (v *IntValue) Big() *big.Int { return math.S256(v.v.ToBig()) }

func (v *IntValue) Interface() interface{} { return v.Big() }

// AddressType is the ABI address type.
type AddressType struct{}

func (AddressType) Kind() Kind      { return AddressTy }
func (AddressType) String() string  { return "address" }
func (AddressType) IsDynamic() bool { return false }
func (AddressType) StaticSize() int { return wordSize }

func (t AddressType) New(v interface{}) (Value, error) {
	switch v := v.(type) {
	case AddressValue:
		return v, nil
	case common.Address:
		return AddressValue(v), nil
	case *common.Address:
		if v != nil {
			return AddressValue(*v), nil
		}
	case string:
		if !common.IsHexAddress(v) {
			return nil, typeError(t, v, "invalid hex address %q", v)
		}
		return AddressValue(common.HexToAddress(v)), nil
	default:
		if b, ok := toBytes(v); ok {
			if len(b) != common.AddressLength {
				return nil, typeError(t, v, "need %d bytes, have %d", common.AddressLength, len(b))
			}
			return AddressValue(common.BytesToAddress(b)), nil
		}
	}
	return nil, typeError(t, v, "")
}

func (AddressType) Decode(r Reader) (Value, error) {
	word, err := r.Read(wordSize)
	if err != nil {
		return nil, err
	}
	if !isZero(word[:wordSize-common.AddressLength]) {
		return nil, formatError("address word has non-zero upper bytes")
	}
	return AddressValue(common.BytesToAddress(word)), nil
}

// AddressValue is a 20 byte account address.
type AddressValue common.Address

func (AddressValue) Type() Type               { return TypeAddress }
func (AddressValue) IsDynamic() bool          { return false }
func (AddressValue) Size() int                { return wordSize }
func (v AddressValue) Interface() interface{} { return common.Address(v) }

func (v AddressValue) EncodeTo(w Writer) {
	w.Write(zeroWord[:wordSize-common.AddressLength])
	w.Write(v[:])
}

// FixedBytesType is bytesN for N in 1..32.
type FixedBytesType struct {
	size int
}

// NewFixedBytes returns the bytesN type. It panics if size is not in 1..32.
func NewFixedBytes(size int) *FixedBytesType {
	if size <= 0 || size > wordSize {
		panic(fmt.Sprintf("abi: invalid fixed bytes size %d", size))
	}
	return fixedBytesTypes[size-1]
}

// Len returns N.
func (t *FixedBytesType) Len() int        { return t.size }
func (t *FixedBytesType) Kind() Kind      { return FixedBytesTy }
func (t *FixedBytesType) String() string  { return "bytes" + strconv.Itoa(t.size) }
func (t *FixedBytesType) IsDynamic() bool { return false }
func (t *FixedBytesType) StaticSize() int { return wordSize }

func (t *FixedBytesType) New(v interface{}) (Value, error) {
	if val, ok := asValue(t, v); ok {
		return val, nil
	}
	b, ok := toBytes(v)
	if !ok {
		return nil, typeError(t, v, "")
	}
	if len(b) != t.size {
		return nil, typeError(t, v, "need %d bytes, have %d", t.size, len(b))
	}
	val := &FixedBytesValue{typ: t}
	copy(val.b[:], b)
	return val, nil
}

func (t *FixedBytesType) Decode(r Reader) (Value, error) {
	word, err := r.Read(wordSize)
	if err != nil {
		return nil, err
	}
	if !isZero(word[t.size:]) {
		return nil, formatError("%s word has non-zero padding", t)
	}
	val := &FixedBytesValue{typ: t}
	copy(val.b[:], word)
	return val, nil
}

// FixedBytesValue is a value of a FixedBytesType.
type FixedBytesValue struct {
	typ *FixedBytesType
	b   [wordSize]byte // right padded
}

func (v *FixedBytesValue) Type() Type        { return v.typ }
func (v *FixedBytesValue) IsDynamic() bool   { return false }
func (v *FixedBytesValue) Size() int         { return wordSize }
func (v *FixedBytesValue) EncodeTo(w Writer) { w.Write(v.b[:]) }

// Bytes returns a copy of the N value bytes.
func (v *FixedBytesValue) Bytes() []byte { return common.CopyBytes(v.b[:v.typ.size]) }

func (v *FixedBytesValue) Interface() interface{} { return v.Bytes() }
