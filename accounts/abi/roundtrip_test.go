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
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

type fuzzRecord struct {
	Flag    bool
	Small   uint8
	Count   uint64
	Delta   int32
	Owner   [20]byte
	Tag     [4]byte
	Payload []byte
	Label   string
	Values  []uint16
	Pair    [2]int64
	Names   []string
}

const fuzzRecordType = "(bool,uint8,uint64,int32,address,bytes4,bytes,string,uint16[],int64[2],string[])"

type fuzzInner struct {
	Note    string
	Amounts []uint32
}

type fuzzFlag struct {
	On   bool
	Data []byte
}

type fuzzNested struct {
	Inner []fuzzInner
	Roots [2][32]byte
	Flags [1]fuzzFlag
}

const fuzzNestedType = "((string,uint32[])[],bytes32[2],(bool,bytes)[1])"

// roundTrip checks that v decodes back to a value with the same encoding, in
// both the binary and the hex form.
func roundTrip(t *testing.T, v Value) {
	t.Helper()
	enc := Encode(v)
	require.Len(t, enc, v.Size())

	dec, err := Decode(v.Type(), enc)
	require.NoError(t, err)
	require.Equal(t, enc, Encode(dec))
	require.Equal(t, v.Size(), dec.Size())

	hdec, err := DecodeHex(v.Type(), EncodeHex(v, true))
	require.NoError(t, err)
	require.Equal(t, enc, Encode(hdec))
	checkLayout(t, dec)
}

func TestRoundTripFuzz(t *testing.T) {
	f := fuzz.NewWithSeed(1).NilChance(0.1).NumElements(0, 5)
	recordType := MustParseType(fuzzRecordType)
	nestedType := MustParseType(fuzzNestedType)
	for i := 0; i < 200; i++ {
		var rec fuzzRecord
		f.Fuzz(&rec)
		v, err := recordType.New(rec)
		require.NoError(t, err, "record %d", i)
		roundTrip(t, v)

		var nested fuzzNested
		f.Fuzz(&nested)
		v, err = nestedType.New(&nested)
		require.NoError(t, err, "nested %d", i)
		roundTrip(t, v)
	}
}

func TestDecodeFuzzedInput(t *testing.T) {
	// Random input must produce values or errors, never panics.
	f := fuzz.NewWithSeed(2).NilChance(0).NumElements(0, 300)
	types := []Type{
		MustParseType(fuzzRecordType),
		MustParseType(fuzzNestedType),
		MustParseType("(bytes[],string)"),
	}
	for i := 0; i < 500; i++ {
		var data []byte
		f.Fuzz(&data)
		for _, typ := range types {
			require.NotPanics(t, func() { Decode(typ, data) })
		}
	}
}
