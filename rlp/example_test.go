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

package rlp_test

import (
	"fmt"

	"github.com/ethcodec/ethcodec/rlp"
)

func ExampleEncode() {
	// Encode [4, [5, 6]].
	it := rlp.NewList(rlp.Uint(4), rlp.NewList(rlp.Uint(5), rlp.Uint(6)))
	fmt.Printf("%X\n", rlp.Encode(it))
	// Output:
	// C404C20506
}

func ExampleDecodeHex() {
	it, err := rlp.DecodeHex("0xc88363617483646f67")
	if err != nil {
		panic(err)
	}
	fmt.Println(it)
	// Output:
	// [
	//   0x636174 "cat"
	//   0x646f67 "dog"
	// ]
}

func ExampleEncodeToBytes() {
	type account struct {
		Nonce   uint64
		Balance uint64
		Code    []byte
	}
	enc, err := rlp.EncodeToBytes(account{Nonce: 1, Balance: 1024})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", enc)
	// Output:
	// c50182040080
}
