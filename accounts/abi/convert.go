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
	"math/big"
	"reflect"

	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/ethcodec/ethcodec/common/math"
	"github.com/holiman/uint256"
)

// toBig converts Go integers, big and uint256 integers and decimal or 0x hex
// strings into a big integer.
func toBig(v interface{}) (*big.Int, bool) {
	switch v := v.(type) {
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return new(big.Int).Set(v), true
	case big.Int:
		return new(big.Int).Set(&v), true
	case *uint256.Int:
		if v == nil {
			return nil, false
		}
		return v.ToBig(), true
	case uint256.Int:
		return v.ToBig(), true
	case *math.HexOrDecimal256:
		if v == nil {
			return nil, false
		}
		return new(big.Int).Set((*big.Int)(v)), true
	case string:
		return parseSignedBig(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	return nil, false
}

func parseSignedBig(s string) (*big.Int, bool) {
	if len(s) > 0 && s[0] == '-' {
		n, ok := math.ParseBig256(s[1:])
		if !ok {
			return nil, false
		}
		return n.Neg(n), true
	}
	return math.ParseBig256(s)
}

// toBytes converts byte slices, byte arrays, hexutil.Bytes and 0x-prefixed hex
// strings into a byte slice.
func toBytes(v interface{}) ([]byte, bool) {
	switch v := v.(type) {
	case []byte:
		return v, true
	case hexutil.Bytes:
		return v, true
	case common.Hash:
		return v[:], true
	case common.Address:
		return v[:], true
	case string:
		b, err := hexutil.Decode(v)
		return b, err == nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return b, true
	}
	return nil, false
}
