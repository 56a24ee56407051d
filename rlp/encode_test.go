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
	"strings"
	"testing"

	"github.com/ethcodec/ethcodec/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func unhex(str string) []byte {
	return common.FromHex(strings.ReplaceAll(str, " ", ""))
}

var encTests = []struct {
	val    interface{}
	output string
	error  string
}{
	// booleans
	{val: true, output: "01"},
	{val: false, output: "80"},

	// integers
	{val: uint32(0), output: "80"},
	{val: uint32(127), output: "7F"},
	{val: uint32(128), output: "8180"},
	{val: uint32(256), output: "820100"},
	{val: uint32(1024), output: "820400"},
	{val: uint32(0xFFFFFF), output: "83FFFFFF"},
	{val: uint64(0xFFFFFFFFFFFFFFFF), output: "88FFFFFFFFFFFFFFFF"},

	// big integers
	{val: big.NewInt(0), output: "80"},
	{val: big.NewInt(1), output: "01"},
	{val: big.NewInt(0xFFFFFF), output: "83FFFFFF"},
	{val: new(big.Int).Lsh(big.NewInt(1), 64), output: "89010000000000000000"},
	{val: *big.NewInt(0xFFFF), output: "82FFFF"},
	{val: (*big.Int)(nil), output: "80"},
	{val: big.NewInt(-1), error: "rlp: cannot encode negative big.Int"},
	{val: uint256.NewInt(0), output: "80"},
	{val: uint256.NewInt(1024), output: "820400"},
	{val: *uint256.NewInt(0xFFFF), output: "82FFFF"},

	// byte strings
	{val: []byte{}, output: "80"},
	{val: []byte{0x7E}, output: "7E"},
	{val: []byte{0x7F}, output: "7F"},
	{val: []byte{0x80}, output: "8180"},
	{val: []byte{1, 2, 3}, output: "83010203"},
	{val: [3]byte{1, 2, 3}, output: "83010203"},
	{val: common.HexToAddress("0x0102030405060708090a0b0c0d0e0f1011121314"), output: "940102030405060708090a0b0c0d0e0f1011121314"},

	// strings
	{val: "", output: "80"},
	{val: "\x7E", output: "7E"},
	{val: "\x80", output: "8180"},
	{val: "dog", output: "83646F67"},
	{val: strings.Repeat("a", 55), output: "B7" + strings.Repeat("61", 55)},
	{val: "Lorem ipsum dolor sit amet, consectetur adipisicing elit", output: "B838" + common.Bytes2Hex([]byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit"))},
	{val: strings.Repeat("a", 1024), output: "B90400" + strings.Repeat("61", 1024)},

	// lists
	{val: []uint{}, output: "C0"},
	{val: []uint{1, 2, 3}, output: "C3010203"},
	{val: []string{"cat", "dog"}, output: "C88363617483646F67"},
	{val: []interface{}{[]interface{}{}, []interface{}{[]interface{}{}}, []interface{}{[]interface{}{}, []interface{}{[]interface{}{}}}}, output: "C7C0C1C0C3C0C1C0"},
	{val: []interface{}{uint(1), "x", []byte{}, nil}, output: "C40178 80 C0"},
	{val: make([]string, 20), output: "D4" + strings.Repeat("80", 20)},
	{val: []string{strings.Repeat("dog", 19)}, output: "F83BB839" + strings.Repeat("646F67", 19)},

	// structs
	{val: simpleStruct{A: 1, B: "x"}, output: "C20178"},
	{val: &simpleStruct{A: 2}, output: "C20280"},
	{val: (*simpleStruct)(nil), output: "C0"},
	{val: taggedStruct{A: 1, Skip: 9}, output: "C20180"},
	{val: taggedStruct{A: 1, B: new(uint), C: &simpleStruct{}}, output: "C501 80 C28080"},
	{val: &recursiveStruct{Val: 1, Child: &recursiveStruct{Val: 2}}, output: "C401C202C0"},

	// items and raw values
	{val: NewList(NewString([]byte("cat")), Uint(0)), output: "C58363617480"},
	{val: []RawValue{unhex("83646F67"), unhex("C0")}, output: "C583646F67C0"},

	// unsupported
	{val: int(-1), error: "rlp: type int is not RLP-serializable"},
	{val: map[string]uint{}, error: "rlp: type map[string]uint is not RLP-serializable"},
}

type simpleStruct struct {
	A uint
	B string
}

type taggedStruct struct {
	A    uint
	Skip uint          `rlp:"-"`
	B    *uint         `rlp:"nil"`
	C    *simpleStruct `rlp:"?"`
	D    *simpleStruct `rlp:"?"`
	hide int
}

type recursiveStruct struct {
	Val   uint
	Child *recursiveStruct `rlp:"nil"`
}

func TestEncodeToBytes(t *testing.T) {
	for i, test := range encTests {
		output, err := EncodeToBytes(test.val)
		if test.error != "" {
			require.EqualError(t, err, test.error, "test %d", i)
			continue
		}
		require.NoError(t, err, "test %d", i)
		require.Equal(t, unhex(test.output), output, "test %d: %v", i, test.val)
	}
}

func TestEncodeItems(t *testing.T) {
	for _, test := range []struct {
		item Item
		want string
	}{
		{NewString([]byte("dog")), "83646f67"},
		{NewList(NewString([]byte("cat")), NewString([]byte("dog"))), "c88363617483646f67"},
		{NewString(nil), "80"},
		{Item{}, "80"},
		{NewList(), "c0"},
		{Uint(0), "80"},
		{Uint(1024), "820400"},
		{Uint(15), "0f"},
		{Uint256(uint256.NewInt(1024)), "820400"},
	} {
		require.Equal(t, test.want, EncodeHex(test.item, false))
		require.Equal(t, "0x"+test.want, EncodeHex(test.item, true))
		require.Equal(t, uint64(len(test.want)/2), test.item.EncodedSize())
	}
}

func TestStructTagErrors(t *testing.T) {
	type badTag struct {
		A uint `rlp:"nil"`
	}
	type unknownTag struct {
		A uint `rlp:"foo"`
	}
	_, err := EncodeToBytes(badTag{})
	require.EqualError(t, err, `rlp: invalid struct tag "nil" for rlp.badTag.A (field is not a pointer)`)
	_, err = EncodeToBytes(unknownTag{})
	require.EqualError(t, err, `rlp: unknown struct tag "foo" on rlp.unknownTag.A`)
}

func TestEncodeToHex(t *testing.T) {
	text, err := EncodeToHex([]uint{1024}, true)
	require.NoError(t, err)
	require.Equal(t, "0xc3820400", text)
}
