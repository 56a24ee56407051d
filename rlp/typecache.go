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
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

var (
	typeCacheMutex sync.RWMutex
	typeCache      = make(map[typekey]*typeinfo)
)

// converter turns a Go value into an Item.
type converter func(reflect.Value) (Item, error)

type typeinfo struct {
	conv    converter
	convErr error // error from makeConverter
}

// tags represents struct tags.
type tags struct {
	// rlp:"nil", "nilString" and "nilList" choose how a nil pointer encodes.
	nilKind Kind
	// rlp:"-" ignores fields.
	ignored bool
	// rlp:"?" leaves a nil pointer field out of the list.
	omittedIfNil bool
}

// typekey is the key of a type in typeCache. It includes the struct tags because
// they might generate a different converter.
type typekey struct {
	reflect.Type
	tags
}

var (
	itemType     = reflect.TypeOf(Item{})
	rawValueType = reflect.TypeOf(RawValue{})
	bigInt       = reflect.TypeOf(big.Int{})
	u256Int      = reflect.TypeOf(uint256.Int{})
)

// ToItem converts a Go value into an Item. See EncodeToBytes for the supported
// types. A nil interface converts to the empty list.
func ToItem(val interface{}) (Item, error) {
	if val == nil {
		return NewList(), nil
	}
	rval := reflect.ValueOf(val)
	conv, err := cachedConverter(rval.Type())
	if err != nil {
		return Item{}, err
	}
	return conv(rval)
}

func cachedConverter(typ reflect.Type) (converter, error) {
	info := cachedTypeInfo(typ, tags{})
	return info.convert, info.convErr
}

// convert calls the converter through the typeinfo so that recursive types
// see the converter once it has been generated.
func (i *typeinfo) convert(v reflect.Value) (Item, error) {
	return i.conv(v)
}

func cachedTypeInfo(typ reflect.Type, tags tags) *typeinfo {
	typeCacheMutex.RLock()
	info := typeCache[typekey{typ, tags}]
	typeCacheMutex.RUnlock()
	if info != nil {
		return info
	}
	typeCacheMutex.Lock()
	defer typeCacheMutex.Unlock()
	return cachedTypeInfo1(typ, tags)
}

func cachedTypeInfo1(typ reflect.Type, tags tags) *typeinfo {
	key := typekey{typ, tags}
	if info := typeCache[key]; info != nil {
		// another goroutine got the write lock first
		return info
	}
	// Store a placeholder before generating so that recursive types find it
	// instead of recursing.
	info := new(typeinfo)
	typeCache[key] = info
	info.conv, info.convErr = makeConverter(typ, tags)
	return info
}

type field struct {
	index int
	name  string
	tags  tags
	info  *typeinfo
}

func structFields(typ reflect.Type) (fields []field, err error) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tags, err := parseStructTag(typ, i)
		if err != nil {
			return nil, err
		}
		if tags.ignored {
			continue
		}
		fields = append(fields, field{index: i, name: f.Name, tags: tags, info: cachedTypeInfo1(f.Type, tags)})
	}
	return fields, nil
}

type structFieldError struct {
	typ   reflect.Type
	field string
	err   error
}

func (e structFieldError) Error() string {
	return fmt.Sprintf("%v (struct field %v.%s)", e.err, e.typ, e.field)
}

func (e structFieldError) Unwrap() error { return e.err }

type structTagError struct {
	typ             reflect.Type
	field, tag, err string
}

func (e structTagError) Error() string {
	return fmt.Sprintf("rlp: invalid struct tag %q for %v.%s (%s)", e.tag, e.typ, e.field, e.err)
}

func parseStructTag(typ reflect.Type, fi int) (tags, error) {
	f := typ.Field(fi)
	var ts tags
	if f.Type.Kind() == reflect.Ptr {
		ts.nilKind = defaultNilKind(f.Type.Elem())
	}
	for _, t := range strings.Split(f.Tag.Get("rlp"), ",") {
		switch t = strings.TrimSpace(t); t {
		case "":
		case "-":
			ts.ignored = true
		case "nil", "nilString", "nilList", "?":
			if f.Type.Kind() != reflect.Ptr {
				return ts, structTagError{typ, f.Name, t, "field is not a pointer"}
			}
			switch t {
			case "nilString":
				ts.nilKind = String
			case "nilList":
				ts.nilKind = List
			case "?":
				ts.omittedIfNil = true
			}
		default:
			return ts, fmt.Errorf("rlp: unknown struct tag %q on %v.%s", t, typ, f.Name)
		}
	}
	return ts, nil
}

// defaultNilKind determines whether a nil pointer to typ encodes as an empty
// string or an empty list.
func defaultNilKind(typ reflect.Type) Kind {
	k := typ.Kind()
	if isUint(k) || k == reflect.String || k == reflect.Bool || isByteArray(typ) || typ == bigInt || typ == u256Int {
		return String
	}
	return List
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isByte(typ reflect.Type) bool {
	return typ.Kind() == reflect.Uint8
}

func isByteArray(typ reflect.Type) bool {
	return typ.Kind() == reflect.Array && isByte(typ.Elem())
}

func makeConverter(typ reflect.Type, ts tags) (converter, error) {
	kind := typ.Kind()
	switch {
	case typ == itemType:
		return func(v reflect.Value) (Item, error) { return v.Interface().(Item), nil }, nil
	case typ == rawValueType:
		return func(v reflect.Value) (Item, error) { return Decode(v.Bytes()) }, nil
	case typ == reflect.PtrTo(bigInt):
		return convertBigIntPtr, nil
	case typ == bigInt:
		return func(v reflect.Value) (Item, error) {
			n := v.Interface().(big.Int)
			return BigInt(&n)
		}, nil
	case typ == reflect.PtrTo(u256Int):
		return convertU256Ptr, nil
	case typ == u256Int:
		return func(v reflect.Value) (Item, error) {
			n := v.Interface().(uint256.Int)
			return Uint256(&n), nil
		}, nil
	case kind == reflect.Ptr:
		return makePtrConverter(typ, ts)
	case isUint(kind):
		return func(v reflect.Value) (Item, error) { return Uint(v.Uint()), nil }, nil
	case kind == reflect.Bool:
		return convertBool, nil
	case kind == reflect.String:
		return func(v reflect.Value) (Item, error) { return NewString([]byte(v.String())), nil }, nil
	case kind == reflect.Slice && isByte(typ.Elem()):
		return func(v reflect.Value) (Item, error) { return NewString(v.Bytes()), nil }, nil
	case isByteArray(typ):
		return convertByteArray, nil
	case kind == reflect.Slice || kind == reflect.Array:
		return makeListConverter(typ)
	case kind == reflect.Struct:
		return makeStructConverter(typ)
	case kind == reflect.Interface:
		return convertInterface, nil
	default:
		return nil, fmt.Errorf("rlp: type %v is not RLP-serializable", typ)
	}
}

func convertBigIntPtr(v reflect.Value) (Item, error) {
	if v.IsNil() {
		return Item{}, nil
	}
	return BigInt(v.Interface().(*big.Int))
}

func convertU256Ptr(v reflect.Value) (Item, error) {
	if v.IsNil() {
		return Item{}, nil
	}
	return Uint256(v.Interface().(*uint256.Int)), nil
}

func convertBool(v reflect.Value) (Item, error) {
	if v.Bool() {
		return Uint(1), nil
	}
	return Uint(0), nil
}

func convertByteArray(v reflect.Value) (Item, error) {
	b := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(b), v)
	return Item{str: b, size: uint64(len(b))}, nil
}

func convertInterface(v reflect.Value) (Item, error) {
	if v.IsNil() {
		return NewList(), nil
	}
	elem := v.Elem()
	conv, err := cachedConverter(elem.Type())
	if err != nil {
		return Item{}, err
	}
	return conv(elem)
}

func makePtrConverter(typ reflect.Type, ts tags) (converter, error) {
	nilKind := ts.nilKind
	if ts == (tags{}) {
		nilKind = defaultNilKind(typ.Elem())
	}
	elem := cachedTypeInfo1(typ.Elem(), tags{})
	if elem.convErr != nil {
		return nil, elem.convErr
	}
	return func(v reflect.Value) (Item, error) {
		if v.IsNil() {
			if nilKind == List {
				return NewList(), nil
			}
			return Item{}, nil
		}
		return elem.convert(v.Elem())
	}, nil
}

func makeListConverter(typ reflect.Type) (converter, error) {
	elem := cachedTypeInfo1(typ.Elem(), tags{})
	if elem.convErr != nil {
		return nil, elem.convErr
	}
	return func(v reflect.Value) (Item, error) {
		items := make([]Item, v.Len())
		for i := range items {
			it, err := elem.convert(v.Index(i))
			if err != nil {
				return Item{}, err
			}
			items[i] = it
		}
		return NewList(items...), nil
	}, nil
}

func makeStructConverter(typ reflect.Type) (converter, error) {
	fields, err := structFields(typ)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if f.info.convErr != nil {
			return nil, structFieldError{typ, f.name, f.info.convErr}
		}
	}
	return func(v reflect.Value) (Item, error) {
		items := make([]Item, 0, len(fields))
		for _, f := range fields {
			fv := v.Field(f.index)
			if f.tags.omittedIfNil && fv.IsNil() {
				continue
			}
			it, err := f.info.convert(fv)
			if err != nil {
				return Item{}, structFieldError{typ, f.name, err}
			}
			items = append(items, it)
		}
		return NewList(items...), nil
	}, nil
}
