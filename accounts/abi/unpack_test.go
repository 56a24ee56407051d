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
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	t.Parallel()
	for i, test := range []struct {
		typ  string
		enc  []byte
		want interface{}
	}{
		{"bool", words(word("1")), true},
		{"uint8", words(word("ff")), big.NewInt(255)},
		{"int8", words(ffWord), big.NewInt(-1)},
		{"int16", words(strings.Repeat("f", 60) + "ff80"), big.NewInt(-128)},
		{"address", words(word("ff")), common.HexToAddress("0xff")},
		{"bytes2", words(rword("abcd")), []byte{0xab, 0xcd}},
		{"bytes", words(word("3"), rword("010203")), []byte{1, 2, 3}},
		{"string", words(word("0")), ""},
		{"string", words(word("2"), rword("c3a9")), "é"},
		{"uint256[]", words(word("0")), []interface{}{}},
		{"uint256[0]", nil, []interface{}{}},
		{"()", nil, []interface{}{}},
		{"uint256[]", words(word("2"), word("1"), word("2")), []interface{}{big.NewInt(1), big.NewInt(2)}},
		{"string[2]", words(word("40"), word("80"), word("1"), rword("61"), word("1"), rword("62")), []interface{}{"a", "b"}},
		{"(uint256,bytes)", words(word("1"), word("40"), word("2"), rword("1234")), []interface{}{big.NewInt(1), []byte{0x12, 0x34}}},
		// Trailing bytes after the value are ignored.
		{"bool", words(word("0"), word("5")), false},
	} {
		typ := MustParseType(test.typ)
		v, err := Decode(typ, test.enc)
		require.NoError(t, err, "test %d (%s)", i, test.typ)
		require.Equal(t, test.want, v.Interface(), "test %d (%s)", i, test.typ)

		hv, err := DecodeHex(typ, hexutil.Encode(test.enc))
		require.NoError(t, err, "test %d (%s): hex", i, test.typ)
		require.Equal(t, test.want, hv.Interface(), "test %d (%s): hex", i, test.typ)
	}
}

// Solidity documentation example: g(uint256[][],string[]) with
// ([[1, 2], [3]], ["one", "two", "three"]).
var nestedArgs = words(
	word("40"),
	word("140"),
	word("2"),
	word("40"),
	word("a0"),
	word("2"),
	word("1"),
	word("2"),
	word("1"),
	word("3"),
	word("3"),
	word("60"),
	word("a0"),
	word("e0"),
	word("3"),
	rword("6f6e65"),
	word("3"),
	rword("74776f"),
	word("5"),
	rword("7468726565"),
)

func TestNestedDynamic(t *testing.T) {
	typ := MustParseType("(uint256[][],string[])")
	v, err := typ.New([]interface{}{
		[][]int{{1, 2}, {3}},
		[]string{"one", "two", "three"},
	})
	require.NoError(t, err)
	require.Equal(t, nestedArgs, Encode(v))

	dec, err := Decode(typ, nestedArgs)
	require.NoError(t, err)
	require.Equal(t, v.Interface(), dec.Interface())
}

func TestDecodeEndPosition(t *testing.T) {
	// The cursor ends after the furthest tail, not after the heads.
	r := NewReader(nestedArgs)
	_, err := MustParseType("(uint256[][],string[])").Decode(r)
	require.NoError(t, err)
	require.Equal(t, len(nestedArgs), r.Offset())

	// Static containers end right after their heads.
	data := words(word("1"), word("2"), word("3"))
	r = NewReader(data)
	_, err = MustParseType("(uint256,uint256)").Decode(r)
	require.NoError(t, err)
	require.Equal(t, 64, r.Offset())
}

func TestUnpackErrors(t *testing.T) {
	t.Parallel()
	overflowing := "1" + strings.Repeat("0", 63)
	for i, test := range []struct {
		typ  string
		enc  []byte
		want error
	}{
		{"bool", nil, ErrBounds},
		{"bool", words(word("1"))[:31], ErrBounds},
		{"bool", words(word("2")), ErrInvalidBool},
		{"bool", words("01" + strings.Repeat("0", 62)), ErrInvalidBool},
		{"uint8", words(word("100")), ErrFormat},
		{"int8", words(word("80")), ErrFormat},
		{"address", words(word("1" + strings.Repeat("0", 40))), ErrFormat},
		{"bytes1", words(word("1")), ErrFormat},
		{"bytes", words(word("5")), ErrBounds},
		{"bytes", words(word("3"), rword("010203"))[:40], ErrBounds},
		{"bytes", words(word("1"), word("101")), ErrFormat},
		{"bytes", words(overflowing), ErrBounds},
		{"string", words(word("2"), rword("fffe")), ErrInvalidUTF8},
		{"string", words(word("2"), rword("fffe")), ErrFormat},
		{"uint256[]", words(word("3"), word("1")), ErrBounds},
		{"uint256[]", words(ffWord), ErrBounds},
		{"()[]", words(word("40")), ErrBounds},
		{"(uint256,bytes)", words(word("1"), word("a0")), ErrBounds},
		{"(uint256,bytes)", words(word("1"), overflowing), ErrBounds},
		{"(uint256,bytes)", words(word("1"), word("40")), ErrBounds},
		{"string[2]", words(word("40"), word("80"), word("1"), rword("61")), ErrBounds},
		{"uint256[16777216]", words(word("1")), ErrBounds},
		{"string[16777216]", words(word("20")), ErrBounds},
		{"(uint256,bool[16777216])", words(word("1"), word("1")), ErrBounds},
		{"uint256[0][16777216]", nil, ErrBounds},
	} {
		_, err := Decode(MustParseType(test.typ), test.enc)
		require.ErrorIs(t, err, test.want, "test %d (%s)", i, test.typ)
	}
}

func TestDecodeEmptyFixedArrays(t *testing.T) {
	v, err := Decode(MustParseType("uint256[0][2]"), nil)
	require.NoError(t, err)
	require.Equal(t, 2, v.(*ArrayValue).Len())

	v, err = Decode(MustParseType("(uint256,()[3])"), words(word("7")))
	require.NoError(t, err)
	require.Equal(t, 2, v.(*TupleValue).Len())
}

func TestBoundsError(t *testing.T) {
	_, err := Decode(TypeBool, make([]byte, 10))
	var bounds *BoundsError
	require.True(t, errors.As(err, &bounds))
	require.Equal(t, BoundsError{Offset: 0, Need: 32, Len: 10}, *bounds)
}

func TestDecodeHexInput(t *testing.T) {
	_, err := DecodeHex(TypeBool, "0x123")
	require.ErrorIs(t, err, hexutil.ErrOddLength)

	_, err = DecodeHex(TypeBool, "0x"+strings.Repeat("zz", 32))
	require.ErrorIs(t, err, ErrFormat)

	v, err := DecodeHex(TypeBool, word("1"))
	require.NoError(t, err)
	require.Equal(t, true, v.Interface())

	v, err = DecodeHex(TypeString, "0X"+word("1")+rword("61"))
	require.NoError(t, err)
	require.Equal(t, "a", v.Interface())
}
