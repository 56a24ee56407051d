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

// Package crypto provides the hash and signature primitives the codecs are
// built on: keccak-256 and a thin secp256k1 adapter.
package crypto

import (
	"hash"

	"github.com/ethcodec/ethcodec/common"
	"golang.org/x/crypto/sha3"
)

// DigestLength sets the signature digest exact length
const DigestLength = 32

// KeccakState wraps sha3.state. In addition to the usual hash methods, it also supports
// Read to get a variable amount of data from the hash state. Read is faster than Sum
// because it doesn't copy the internal state, but also modifies the internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState creates a new KeccakState
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// HashData hashes the provided data using the KeccakState and returns a 32 byte hash
func HashData(kh KeccakState, data []byte) (h common.Hash) {
	kh.Reset()
	kh.Write(data)
	kh.Read(h[:])
	return h
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(b)
	return b
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(h[:])
	return h
}

// Hasher is the hash capability handed to the codecs that need one (function
// selectors, EIP-712). Implementations must be safe for concurrent use.
type Hasher interface {
	Hash(data ...[]byte) common.Hash
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(data ...[]byte) common.Hash

// Hash implements Hasher.
func (f HasherFunc) Hash(data ...[]byte) common.Hash { return f(data...) }

// Keccak256Hasher is the default Hasher.
var Keccak256Hasher Hasher = HasherFunc(Keccak256Hash)

// OrDefault returns h, or Keccak256Hasher when h is nil.
func OrDefault(h Hasher) Hasher {
	if h == nil {
		return Keccak256Hasher
	}
	return h
}
