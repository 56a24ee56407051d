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
	"testing"

	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/crypto"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		sig, selector string
	}{
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"baz(uint32,bool)", "0xcdcd77c0"},
		{"sam(bytes,bool,uint256[])", "0xa5643bf2"},
		{"f(uint256,uint32[],bytes10,bytes)", "0x8be65246"},
		{"g(uint256[][],string[])", "0x2289b18c"},
		{"transfer(address to, uint int)", "0xa9059cbb"},
	} {
		fn := MustParseSignature(test.sig)
		require.Equal(t, test.selector, fn.Selector().Hex(), test.sig)
	}
}

func TestFunctionPack(t *testing.T) {
	fn := MustParseSignature("baz(uint32 x, bool y)")
	data, err := fn.Pack(69, true)
	require.NoError(t, err)
	require.Equal(t, common.Hex2Bytes("cdcd77c0"+word("45")+word("1")), data)

	_, err = fn.Pack(69)
	require.Error(t, err)
	_, err = fn.Pack(int64(1)<<40, true)
	require.Error(t, err)
}

func TestFunctionRoundTrip(t *testing.T) {
	fn := MustParseSignature("f(uint256,uint32[],bytes10,bytes)")
	want := common.Hex2Bytes("8be65246" +
		word("123") +
		word("80") +
		rword("31323334353637383930") +
		word("e0") +
		word("2") +
		word("456") +
		word("789") +
		word("d") +
		rword("48656c6c6f2c20776f726c6421"))

	data, err := fn.Pack(0x123, []uint32{0x456, 0x789}, []byte("1234567890"), []byte("Hello, world!"))
	require.NoError(t, err)
	require.Equal(t, want, data)

	args, err := fn.Unpack(data)
	require.NoError(t, err)
	require.Equal(t, 4, args.Len())
	require.Equal(t, []byte("Hello, world!"), args.Elem(3).Interface())

	text, err := fn.EncodeHex(args, true)
	require.NoError(t, err)
	require.Equal(t, "0x"+common.Bytes2Hex(want), text)

	bare, err := fn.EncodeHex(args, false)
	require.NoError(t, err)
	require.Equal(t, common.Bytes2Hex(want), bare)

	for _, input := range []string{text, bare} {
		hv, err := fn.UnpackHex(input)
		require.NoError(t, err)
		require.Equal(t, args.Interface(), hv.Interface())
	}
}

func TestFunctionSelectorMismatch(t *testing.T) {
	transfer := MustParseSignature("transfer(address,uint256)")
	approve := MustParseSignature("approve(address,uint256)")

	data, err := approve.Pack(common.HexToAddress("0x01"), 1)
	require.NoError(t, err)

	_, err = transfer.Unpack(data)
	require.ErrorIs(t, err, ErrSelectorMismatch)
	var mismatch *SelectorMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, transfer.Selector(), mismatch.Want)
	require.Equal(t, approve.Selector(), mismatch.Have)

	_, err = transfer.Unpack(data[:3])
	require.ErrorIs(t, err, ErrBounds)

	_, err = transfer.UnpackHex("0x" + common.Bytes2Hex(data))
	require.ErrorIs(t, err, ErrSelectorMismatch)
}

func TestFunctionWithHasher(t *testing.T) {
	fn := MustParseSignature("transfer(address,uint256)")
	var seen string
	fixed := fn.WithHasher(crypto.HasherFunc(func(data ...[]byte) common.Hash {
		seen = string(data[0])
		return common.HexToHash("0x0102030400000000000000000000000000000000000000000000000000000000")
	}))
	require.Equal(t, Selector{1, 2, 3, 4}, fixed.Selector())
	require.Equal(t, "transfer(address,uint256)", seen)
	require.Equal(t, "0xa9059cbb", fn.Selector().Hex())
}

func TestFunctionPackValuesType(t *testing.T) {
	fn := MustParseSignature("f(uint256)")
	other, err := NewTuple(TypeBool).NewValue(BoolValue(true))
	require.NoError(t, err)
	_, err = fn.PackValues(other)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestUnpackOutputs(t *testing.T) {
	fn := MustParseSignature("name() returns (string)")
	out, err := fn.UnpackOutputs(words(word("20"), word("3"), rword("666f6f")))
	require.NoError(t, err)
	require.Equal(t, []interface{}{"foo"}, out.Interface())
}
