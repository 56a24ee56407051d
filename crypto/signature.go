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
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred_ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethcodec/ethcodec/common"
)

// SignatureLength indicates the byte length required to carry a signature with recovery id.
const SignatureLength = 64 + 1 // 64 bytes ECDSA signature + 1 byte recovery id

// RecoveryIDOffset points to the byte offset within the signature that contains the recovery id.
const RecoveryIDOffset = 64

var errInvalidPubkey = errors.New("invalid secp256k1 public key")

type (
	// PrivateKey is a secp256k1 private key.
	PrivateKey = secp256k1.PrivateKey
	// PublicKey is a secp256k1 public key.
	PublicKey = secp256k1.PublicKey
)

// GenerateKey generates a new private key.
func GenerateKey() (*PrivateKey, error) {
	return secp256k1.GeneratePrivateKeyFromRand(rand.Reader)
}

// ToPrivateKey creates a private key with the given D value. The input must
// be exactly 32 bytes and a valid scalar.
func ToPrivateKey(d []byte) (*PrivateKey, error) {
	if len(d) != 32 {
		return nil, fmt.Errorf("invalid length, need 256 bits")
	}
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(d); overflow || k.IsZero() {
		return nil, errors.New("invalid private key")
	}
	return secp256k1.NewPrivateKey(&k), nil
}

// FromPrivateKey exports a private key into a binary dump.
func FromPrivateKey(prv *PrivateKey) []byte {
	if prv == nil {
		return nil
	}
	return prv.Serialize()
}

// HexToPrivateKey parses a secp256k1 private key.
func HexToPrivateKey(hexkey string) (*PrivateKey, error) {
	b, err := hex.DecodeString(hexkey)
	if byteErr, ok := err.(hex.InvalidByteError); ok {
		return nil, fmt.Errorf("invalid hex character %q in private key", byte(byteErr))
	} else if err != nil {
		return nil, errors.New("invalid hex data for private key")
	}
	return ToPrivateKey(b)
}

// LoadPrivateKey loads a hex-encoded secp256k1 private key from r.
func LoadPrivateKey(r io.Reader) (*PrivateKey, error) {
	buf := make([]byte, 64)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return HexToPrivateKey(string(buf))
}

// Sign calculates an ECDSA signature.
//
// This function is susceptible to chosen plaintext attacks that can leak
// information about the private key that is used for signing. Callers must
// be aware that the given digest cannot be chosen by an adversary. Common
// solution is to hash any input before calculating the signature.
//
// The produced signature is in the [R || S || V] format where V is 0 or 1.
func Sign(hash []byte, prv *PrivateKey) ([]byte, error) {
	if len(hash) != DigestLength {
		return nil, fmt.Errorf("hash is required to be exactly %d bytes (%d)", DigestLength, len(hash))
	}
	if prv == nil {
		return nil, errors.New("private key is nil")
	}
	sig := decred_ecdsa.SignCompact(prv, hash, false)

	// Convert to Ethereum signature format with 'recovery id' v at the end.
	v := sig[0] - 27
	copy(sig, sig[1:])
	sig[RecoveryIDOffset] = v
	return sig, nil
}

// Ecrecover returns the uncompressed public key that created the given signature.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	pub, err := sigToPub(hash, sig)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// SigToPub returns the public key that created the given signature.
func SigToPub(hash, sig []byte) (*PublicKey, error) {
	return sigToPub(hash, sig)
}

func sigToPub(hash, sig []byte) (*PublicKey, error) {
	if len(sig) != SignatureLength {
		return nil, errors.New("invalid signature")
	}
	// Convert to secp256k1 input format with 'recovery id' v at the beginning.
	btcsig := make([]byte, SignatureLength)
	btcsig[0] = sig[RecoveryIDOffset] + 27
	copy(btcsig[1:], sig)

	pub, _, err := decred_ecdsa.RecoverCompact(btcsig, hash)
	return pub, err
}

// UnmarshalPubkey converts bytes to a secp256k1 public key.
func UnmarshalPubkey(pub []byte) (*PublicKey, error) {
	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, errInvalidPubkey
	}
	return key, nil
}

// PubkeyToAddress returns the address belonging to p: the last 20 bytes of the
// keccak-256 hash of the uncompressed key without its 0x04 marker.
func PubkeyToAddress(p *PublicKey) common.Address {
	pubBytes := p.SerializeUncompressed()
	return common.BytesToAddress(Keccak256(pubBytes[1:])[12:])
}
