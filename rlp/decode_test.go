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
	"io"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	for i, test := range []struct {
		input string
		want  Item
	}{
		{"83646f67", NewString([]byte("dog"))},
		{"c88363617483646f67", NewList(NewString([]byte("cat")), NewString([]byte("dog")))},
		{"80", NewString(nil)},
		{"c0", NewList()},
		{"820400", Uint(1024)},
		{"00", NewString([]byte{0})},
		{"7f", NewString([]byte{0x7f})},
		{"8180", NewString([]byte{0x80})},
		{"c7c0c1c0c3c0c1c0", NewList(NewList(), NewList(NewList()), NewList(NewList(), NewList(NewList())))},
	} {
		it, err := Decode(unhex(test.input))
		require.NoError(t, err, "test %d", i)
		require.Equal(t, Encode(test.want), Encode(it), "test %d", i)
		require.Equal(t, test.want.Kind(), it.Kind(), "test %d", i)
		require.Equal(t, test.want.Len(), it.Len(), "test %d", i)

		hit, err := DecodeHex("0x" + test.input)
		require.NoError(t, err, "test %d", i)
		require.Equal(t, Encode(it), Encode(hit), "test %d", i)

		hit, err = DecodeHex(test.input)
		require.NoError(t, err, "test %d", i)
		require.Equal(t, Encode(it), Encode(hit), "test %d", i)
	}
}

func TestDecodeErrors(t *testing.T) {
	for i, test := range []struct {
		input string
		err   error
	}{
		{"", errEmptyInput},
		// sizes with leading zero bytes
		{"b800", ErrCanonSize},
		{"b90000", ErrCanonSize},
		{"b9002000", ErrCanonSize},
		{"f800", ErrCanonSize},
		// long form for sizes below 56
		{"b801", ErrCanonSize},
		{"b837" + "00", ErrCanonSize},
		{"f837", ErrCanonSize},
		// single bytes below 0x80 carrying a prefix
		{"8100", ErrCanonSize},
		{"817f", ErrCanonSize},
		// truncated input
		{"b8", io.ErrUnexpectedEOF},
		{"83646f", ErrValueTooLarge},
		{"c1", ErrValueTooLarge},
		{"b838", ErrValueTooLarge},
		// children overrunning their list
		{"c3836361", ErrElemTooLarge},
		{"c1c3", ErrElemTooLarge},
		// trailing data
		{"8080", ErrMoreThanOneValue},
		{"c08080", ErrMoreThanOneValue},
	} {
		_, err := Decode(unhex(test.input))
		require.ErrorIs(t, err, test.err, "test %d: %s", i, test.input)
	}
	_, err := DecodeHex("0x8")
	require.Error(t, err)
	_, err = DecodeHex("zz")
	require.Error(t, err)
}

func TestItemIntegers(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 255, 256, 1 << 32, ^uint64(0)} {
		it, err := Decode(Encode(Uint(n)))
		require.NoError(t, err)
		got, err := it.Uint64()
		require.NoError(t, err)
		require.Equal(t, n, got)

		big, err := it.Big()
		require.NoError(t, err)
		require.Equal(t, n, big.Uint64())

		u, err := it.Uint256()
		require.NoError(t, err)
		require.Equal(t, n, u.Uint64())
	}

	_, err := NewString([]byte{0, 1}).Uint64()
	require.ErrorIs(t, err, ErrCanonInt)
	_, err = NewString(make([]byte, 9)).Uint64()
	require.Error(t, err)
	_, err = NewList().Uint64()
	require.ErrorIs(t, err, ErrExpectedString)
	_, err = NewString([]byte{0}).Big()
	require.ErrorIs(t, err, ErrCanonInt)
	_, err = NewString(make([]byte, 33)).Uint256()
	require.Error(t, err)
}

func TestItemString(t *testing.T) {
	it := NewList(
		NewString([]byte("cat")),
		NewList(),
		NewList(Uint(1024), NewString([]byte{0xff})),
	)
	want := `[
  0x636174 "cat"
  []
  [
    0x0400
    0xff
  ]
]`
	require.Equal(t, want, it.String())
	require.Equal(t, "0x", Item{}.String())
}

type fuzzValue struct {
	Nonce  uint64
	Flag   bool
	Data   []byte
	Name   string
	Values []uint32
	Nested []fuzzChild
	Key    [32]byte
	Blobs  [][]byte
}

type fuzzChild struct {
	Tag   string
	Items []uint16
}

func TestRoundTripFuzz(t *testing.T) {
	f := fuzz.NewWithSeed(3).NilChance(0.1).NumElements(0, 70)
	for i := 0; i < 300; i++ {
		var v fuzzValue
		f.Fuzz(&v)
		enc, err := EncodeToBytes(v)
		require.NoError(t, err, "value %d", i)

		it, err := Decode(enc)
		require.NoError(t, err, "value %d", i)
		require.Equal(t, enc, Encode(it), "value %d", i)
		require.Equal(t, uint64(len(enc)), it.EncodedSize(), "value %d", i)

		n, err := CountValues(enc)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
}

func TestDecodeFuzzedInput(t *testing.T) {
	f := fuzz.NewWithSeed(4).NilChance(0).NumElements(0, 64)
	for i := 0; i < 2000; i++ {
		var data []byte
		f.Fuzz(&data)
		require.NotPanics(t, func() {
			it, err := Decode(data)
			if err == nil {
				require.Equal(t, data, Encode(it))
			}
		})
	}
}
