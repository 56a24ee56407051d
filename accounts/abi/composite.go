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
	"reflect"
	"strconv"
	"strings"

	"github.com/ethcodec/ethcodec/common/math"
)

// head is one slot of a container's head region.
type head struct {
	value  Value
	offset int // tail position relative to the container start, dynamic values only
}

// layout is the head/tail arrangement of a container's children, computed once
// when the container value is built.
type layout struct {
	elems []Value
	heads []head
	tails []Value
	size  int
}

func newLayout(elems []Value) layout {
	l := layout{elems: elems, heads: make([]head, len(elems))}
	offset := 0
	for _, e := range elems {
		if e.IsDynamic() {
			offset += wordSize
		} else {
			offset += e.Size()
		}
	}
	for i, e := range elems {
		l.heads[i].value = e
		if e.IsDynamic() {
			l.heads[i].offset = offset
			l.tails = append(l.tails, e)
			offset += e.Size()
		}
	}
	l.size = offset
	return l
}

func (l *layout) encodeTo(w Writer) {
	for _, h := range l.heads {
		if h.value.IsDynamic() {
			writeUint(w, uint64(h.offset))
		} else {
			h.value.EncodeTo(w)
		}
	}
	for _, t := range l.tails {
		t.EncodeTo(w)
	}
}

func (l *layout) interfaces() []interface{} {
	out := make([]interface{}, len(l.elems))
	for i, e := range l.elems {
		out[i] = e.Interface()
	}
	return out
}

// decodeElems reads n children whose head region starts at the cursor. Dynamic
// children are read through a scratch cursor at start+offset. On return the
// cursor sits at the container end, the furthest of the head end and every
// scratch end.
func decodeElems(r Reader, n int, typeAt func(int) Type) ([]Value, error) {
	var (
		start = r.Offset()
		end   = start
		elems = make([]Value, n)
	)
	for i := 0; i < n; i++ {
		t := typeAt(i)
		if !t.IsDynamic() {
			v, err := t.Decode(r)
			if err != nil {
				return nil, err
			}
			elems[i] = v
			continue
		}
		pos := r.Offset()
		offset, err := readLength(r)
		if err != nil {
			return nil, err
		}
		if offset > r.Len()-start {
			return nil, fmt.Errorf("%w: offset %d at position %d points past input length %d", ErrBounds, offset, pos, r.Len())
		}
		scratch, err := r.Fork(start + offset)
		if err != nil {
			return nil, err
		}
		v, err := t.Decode(scratch)
		if err != nil {
			return nil, err
		}
		elems[i] = v
		if scratch.Offset() > end {
			end = scratch.Offset()
		}
	}
	if r.Offset() > end {
		end = r.Offset()
	}
	return elems, r.Seek(end)
}

// convertElems converts a Go slice, array or []Value into n values of the
// types returned by typeAt.
func convertElems(t Type, v interface{}, n int, typeAt func(int) Type) ([]Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, typeError(t, v, "")
	}
	if n >= 0 && rv.Len() != n {
		return nil, typeError(t, v, "need %d elements, have %d", n, rv.Len())
	}
	elems := make([]Value, rv.Len())
	for i := range elems {
		e, err := typeAt(i).New(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = e
	}
	return elems, nil
}

func checkElems(t Type, elems []Value, n int, typeAt func(int) Type) error {
	if n >= 0 && len(elems) != n {
		return typeError(t, elems, "need %d elements, have %d", n, len(elems))
	}
	for i, e := range elems {
		if want := typeAt(i); !sameType(e.Type(), want) {
			return typeError(t, elems, "element %d has type %s, want %s", i, e.Type(), want)
		}
	}
	return nil
}

// TupleType is a heterogeneous sequence of types.
type TupleType struct {
	elems   []Type
	names   []string
	dynamic bool
	size    int
}

// NewTuple creates a tuple of the given element types.
func NewTuple(elems ...Type) *TupleType {
	return newTuple(elems, nil)
}

func newTuple(elems []Type, names []string) *TupleType {
	size, ok := tupleSize(elems)
	if !ok {
		panic(fmt.Sprintf("abi: tuple of %d elements too large", len(elems)))
	}
	t := &TupleType{elems: elems, names: names, size: size}
	for _, e := range elems {
		t.dynamic = t.dynamic || e.IsDynamic()
	}
	return t
}

// tupleSize sums the head slots of elems, failing when the sum overflows an int.
func tupleSize(elems []Type) (int, bool) {
	var (
		size     uint64
		overflow bool
	)
	for _, e := range elems {
		size, overflow = math.SafeAdd(size, uint64(e.StaticSize()))
		if overflow || size > uint64(maxInt) {
			return 0, false
		}
	}
	return int(size), true
}

// Elems returns the element types.
func (t *TupleType) Elems() []Type { return append([]Type(nil), t.elems...) }

// Names returns the element names given in the parsed signature, if any.
func (t *TupleType) Names() []string { return append([]string(nil), t.names...) }

func (t *TupleType) Len() int        { return len(t.elems) }
func (t *TupleType) Kind() Kind      { return TupleTy }
func (t *TupleType) IsDynamic() bool { return t.dynamic }

func (t *TupleType) StaticSize() int {
	if t.dynamic {
		return wordSize
	}
	return t.size
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (t *TupleType) elem(i int) Type { return t.elems[i] }

// NewValue builds a tuple from values of the element types.
func (t *TupleType) NewValue(elems ...Value) (*TupleValue, error) {
	if err := checkElems(t, elems, len(t.elems), t.elem); err != nil {
		return nil, err
	}
	return &TupleValue{typ: t, layout: newLayout(append([]Value(nil), elems...))}, nil
}

// New accepts a slice or array with one entry per element, or a struct whose
// exported fields match the elements in order.
func (t *TupleType) New(v interface{}) (Value, error) {
	if val, ok := asValue(t, v); ok {
		return val, nil
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() == reflect.Struct {
		var fields []interface{}
		for i := 0; i < rv.NumField(); i++ {
			if rv.Type().Field(i).IsExported() {
				fields = append(fields, rv.Field(i).Interface())
			}
		}
		v = fields
	}
	elems, err := convertElems(t, v, len(t.elems), t.elem)
	if err != nil {
		return nil, err
	}
	return &TupleValue{typ: t, layout: newLayout(elems)}, nil
}

func (t *TupleType) Decode(r Reader) (Value, error) {
	elems, err := decodeElems(r, len(t.elems), t.elem)
	if err != nil {
		return nil, err
	}
	return &TupleValue{typ: t, layout: newLayout(elems)}, nil
}

// TupleValue is a value of a TupleType.
type TupleValue struct {
	typ *TupleType
	layout
}

func (v *TupleValue) Type() Type             { return v.typ }
func (v *TupleValue) IsDynamic() bool        { return v.typ.dynamic }
func (v *TupleValue) Size() int              { return v.size }
func (v *TupleValue) EncodeTo(w Writer)      { v.encodeTo(w) }
func (v *TupleValue) Interface() interface{} { return v.interfaces() }

// Len returns the number of elements.
func (v *TupleValue) Len() int { return len(v.elems) }

// Elem returns the i'th element.
func (v *TupleValue) Elem(i int) Value { return v.elems[i] }

// Elems returns the elements.
func (v *TupleValue) Elems() []Value { return append([]Value(nil), v.elems...) }

// ArrayType is T[N], a fixed-length array. It is dynamic iff T is.
type ArrayType struct {
	elem Type
	n    int
}

// NewArray creates the type elem[n]. It panics if n is negative or if the
// head region of the array does not fit an int.
func NewArray(elem Type, n int) *ArrayType {
	if n < 0 {
		panic(fmt.Sprintf("abi: negative array length %d", n))
	}
	if _, ok := headSize(elem, n); !ok {
		panic(fmt.Sprintf("abi: array length %d of %s too large", n, elem))
	}
	return &ArrayType{elem: elem, n: n}
}

// maxZeroSizeElems is how many elements that encode to nothing a fixed array
// may decode beyond the remaining input length.
const maxZeroSizeElems = 1024

const maxInt = int(^uint(0) >> 1)

// headSize returns the size of n consecutive head slots of elem, failing
// when it overflows an int.
func headSize(elem Type, n int) (int, bool) {
	size, overflow := math.SafeMul(uint64(n), uint64(elem.StaticSize()))
	if overflow || size > uint64(maxInt) {
		return 0, false
	}
	return int(size), true
}

// Elem returns the element type.
func (t *ArrayType) Elem() Type      { return t.elem }
func (t *ArrayType) Len() int        { return t.n }
func (t *ArrayType) Kind() Kind      { return ArrayTy }
func (t *ArrayType) String() string  { return t.elem.String() + "[" + strconv.Itoa(t.n) + "]" }
func (t *ArrayType) IsDynamic() bool { return t.elem.IsDynamic() }

func (t *ArrayType) StaticSize() int {
	if t.IsDynamic() {
		return wordSize
	}
	return t.n * t.elem.StaticSize()
}

func (t *ArrayType) elemType(int) Type { return t.elem }

// NewValue builds an array from exactly N values of the element type.
func (t *ArrayType) NewValue(elems ...Value) (*ArrayValue, error) {
	if err := checkElems(t, elems, t.n, t.elemType); err != nil {
		return nil, err
	}
	return &ArrayValue{typ: t, layout: newLayout(append([]Value(nil), elems...))}, nil
}

func (t *ArrayType) New(v interface{}) (Value, error) {
	if val, ok := asValue(t, v); ok {
		return val, nil
	}
	elems, err := convertElems(t, v, t.n, t.elemType)
	if err != nil {
		return nil, err
	}
	return &ArrayValue{typ: t, layout: newLayout(elems)}, nil
}

func (t *ArrayType) Decode(r Reader) (Value, error) {
	pos := r.Offset()
	remaining := r.Len() - pos
	if least := t.elem.StaticSize(); (least > 0 && t.n > remaining/least) || (least == 0 && t.n > remaining+maxZeroSizeElems) {
		return nil, fmt.Errorf("%w: %d elements of %s at position %d exceed input length %d", ErrBounds, t.n, t.elem, pos, r.Len())
	}
	elems, err := decodeElems(r, t.n, t.elemType)
	if err != nil {
		return nil, err
	}
	return &ArrayValue{typ: t, layout: newLayout(elems)}, nil
}

// ArrayValue is a value of an ArrayType.
type ArrayValue struct {
	typ *ArrayType
	layout
}

func (v *ArrayValue) Type() Type             { return v.typ }
func (v *ArrayValue) IsDynamic() bool        { return v.typ.IsDynamic() }
func (v *ArrayValue) Size() int              { return v.size }
func (v *ArrayValue) EncodeTo(w Writer)      { v.encodeTo(w) }
func (v *ArrayValue) Interface() interface{} { return v.interfaces() }

// Len returns the number of elements.
func (v *ArrayValue) Len() int { return len(v.elems) }

// Elem returns the i'th element.
func (v *ArrayValue) Elem(i int) Value { return v.elems[i] }

// Elems returns the elements.
func (v *ArrayValue) Elems() []Value { return append([]Value(nil), v.elems...) }

// SliceType is T[], a dynamic array encoded as an element count followed by
// the elements laid out like a tuple.
type SliceType struct {
	elem Type
}

// NewSlice creates the type elem[].
func NewSlice(elem Type) *SliceType {
	return &SliceType{elem: elem}
}

// Elem returns the element type.
func (t *SliceType) Elem() Type      { return t.elem }
func (t *SliceType) Kind() Kind      { return SliceTy }
func (t *SliceType) String() string  { return t.elem.String() + "[]" }
func (t *SliceType) IsDynamic() bool { return true }
func (t *SliceType) StaticSize() int { return wordSize }

func (t *SliceType) elemType(int) Type { return t.elem }

// NewValue builds a dynamic array from values of the element type.
func (t *SliceType) NewValue(elems ...Value) (*SliceValue, error) {
	if err := checkElems(t, elems, -1, t.elemType); err != nil {
		return nil, err
	}
	return &SliceValue{typ: t, layout: newLayout(append([]Value(nil), elems...))}, nil
}

func (t *SliceType) New(v interface{}) (Value, error) {
	if val, ok := asValue(t, v); ok {
		return val, nil
	}
	elems, err := convertElems(t, v, -1, t.elemType)
	if err != nil {
		return nil, err
	}
	return &SliceValue{typ: t, layout: newLayout(elems)}, nil
}

func (t *SliceType) Decode(r Reader) (Value, error) {
	pos := r.Offset()
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	// Every element occupies at least its head slot, which bounds the count
	// before anything is allocated.
	remaining := r.Len() - r.Offset()
	if least := t.elem.StaticSize(); (least > 0 && n > remaining/least) || (least == 0 && n > remaining) {
		return nil, fmt.Errorf("%w: %d elements of %s at position %d exceed input length %d", ErrBounds, n, t.elem, pos, r.Len())
	}
	elems, err := decodeElems(r, n, t.elemType)
	if err != nil {
		return nil, err
	}
	return &SliceValue{typ: t, layout: newLayout(elems)}, nil
}

// SliceValue is a value of a SliceType.
type SliceValue struct {
	typ *SliceType
	layout
}

func (v *SliceValue) Type() Type             { return v.typ }
func (v *SliceValue) IsDynamic() bool        { return true }
func (v *SliceValue) Size() int              { return wordSize + v.size }
func (v *SliceValue) Interface() interface{} { return v.interfaces() }

func (v *SliceValue) EncodeTo(w Writer) {
	writeUint(w, uint64(len(v.elems)))
	v.encodeTo(w)
}

// Len returns the number of elements.
func (v *SliceValue) Len() int { return len(v.elems) }

// Elem returns the i'th element.
func (v *SliceValue) Elem(i int) Value { return v.elems[i] }

// Elems returns the elements.
func (v *SliceValue) Elems() []Value { return append([]Value(nil), v.elems...) }
