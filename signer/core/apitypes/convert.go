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

package apitypes

import (
	"encoding/json"
	"math/big"
	"reflect"

	"github.com/ethcodec/ethcodec/common/hexutil"
)

// parseInteger turns the number forms produced by encoding/json into values
// accepted by the abi integer types. Other values are passed through.
func parseInteger(v interface{}) (interface{}, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case json.Number:
		return string(v), true
	case float64:
		// JSON numbers beyond 2^53 lose precision, so only exact
		// integers are accepted.
		if v != float64(int64(v)) {
			return nil, false
		}
		return big.NewInt(int64(v)), true
	}
	return v, true
}

// parseBytes accepts byte slices, byte arrays and 0x-prefixed hex strings.
func parseBytes(v interface{}) ([]byte, bool) {
	switch v := v.(type) {
	case []byte:
		return v, true
	case hexutil.Bytes:
		return v, true
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

// asList returns the elements of a slice or array value.
func asList(v interface{}) ([]interface{}, bool) {
	if list, ok := v.([]interface{}); ok {
		return list, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	list := make([]interface{}, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
