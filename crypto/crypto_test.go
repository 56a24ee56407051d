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

package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/stretchr/testify/require"
)

var (
	testAddrHex = "970e8128ab834e8eac17ab8e3812f010678cf791"
	testPrivHex = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
)

// These tests are sanity checks.
// They should ensure that we don't e.g. use Sha3-224 instead of Sha3-256
// and that the sha3 library uses keccak-f permutation.
func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hexutil.Decode("0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := Keccak256Hash(in); return h[:] }, msg, exp)
	checkhash(t, "Sha3-256", func(in []byte) []byte { return Keccak256(in) }, msg, exp)
}

func TestKeccak256Empty(t *testing.T) {
	exp := common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.Equal(t, exp, Keccak256Hash())
	require.Equal(t, exp, Keccak256Hasher.Hash())
	require.Equal(t, exp, HashData(NewKeccakState(), nil))
}

func TestOrDefault(t *testing.T) {
	require.NotNil(t, OrDefault(nil))

	fixed := HasherFunc(func(...[]byte) common.Hash { return common.Hash{1} })
	require.Equal(t, common.Hash{1}, OrDefault(fixed).Hash([]byte("x")))
}

func TestSign(t *testing.T) {
	key, err := HexToPrivateKey(testPrivHex)
	require.NoError(t, err)
	addr := common.HexToAddress(testAddrHex)

	msg := Keccak256([]byte("foo"))
	sig, err := Sign(msg, key)
	if err != nil {
		t.Errorf("Sign error: %s", err)
	}
	recoveredPub, err := Ecrecover(msg, sig)
	if err != nil {
		t.Errorf("ECRecover error: %s", err)
	}
	pubKey, _ := UnmarshalPubkey(recoveredPub)
	recoveredAddr := PubkeyToAddress(pubKey)
	if addr != recoveredAddr {
		t.Errorf("Address mismatch: want: %x have: %x", addr, recoveredAddr)
	}

	// should be equal to SigToPub
	recoveredPub2, err := SigToPub(msg, sig)
	if err != nil {
		t.Errorf("ECRecover error: %s", err)
	}
	recoveredAddr2 := PubkeyToAddress(recoveredPub2)
	if addr != recoveredAddr2 {
		t.Errorf("Address mismatch: want: %x have: %x", addr, recoveredAddr2)
	}
}

func TestSignRejectsShortDigest(t *testing.T) {
	key, err := HexToPrivateKey(testPrivHex)
	require.NoError(t, err)
	_, err = Sign([]byte("short"), key)
	require.Error(t, err)
}

func TestInvalidSign(t *testing.T) {
	if _, err := Sign(make([]byte, 1), nil); err == nil {
		t.Errorf("expected sign with hash 1 byte to error")
	}
	if _, err := Sign(make([]byte, 33), nil); err == nil {
		t.Errorf("expected sign with hash 33 byte to error")
	}
}

func TestHexToPrivateKey(t *testing.T) {
	for _, test := range []struct {
		input string
		err   string
	}{
		{"0000000000000000000000000000000000000000000000000000000000000000", "invalid private key"},
		{"0x1111111111111111111111111111111111111111111111111111111111111111", "invalid hex character 'x' in private key"},
		{"1111111111111111111111111111111111111111111111111111111111111111", ""},
		{"11", "invalid length, need 256 bits"},
	} {
		_, err := HexToPrivateKey(test.input)
		if test.err == "" {
			require.NoError(t, err, test.input)
			continue
		}
		require.EqualError(t, err, test.err, test.input)
	}
}

func TestLoadPrivateKey(t *testing.T) {
	key, err := LoadPrivateKey(strings.NewReader(testPrivHex + "\n"))
	require.NoError(t, err)
	require.Equal(t, common.Hex2Bytes(testPrivHex), FromPrivateKey(key))
}

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}
