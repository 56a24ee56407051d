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
	"errors"
	"fmt"

	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/crypto"
)

// SignTypedData signs EIP712 conformant typed data
// hash = keccak256("\x19\x01" ‖ domainSeparator ‖ hashStruct(message))
//
// Note, the produced signature conforms to the secp256k1 curve R, S and V values,
// where the V value will be 27 or 28 for legacy reasons.
func SignTypedData(key *crypto.PrivateKey, typedData TypedData) ([]byte, error) {
	sighash, _, err := TypedDataAndHash(typedData)
	if err != nil {
		return nil, err
	}
	signature, err := crypto.Sign(sighash, key)
	if err != nil {
		return nil, err
	}
	signature[crypto.RecoveryIDOffset] += 27 // Transform V from 0/1 to 27/28 according to the yellow paper
	return signature, nil
}

// RecoverTypedDataSigner returns the address that produced sig over typedData.
// V may be 0/1 or 27/28.
func RecoverTypedDataSigner(typedData TypedData, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("apitypes: signature must be %d bytes long", crypto.SignatureLength)
	}
	sig = common.CopyBytes(sig)
	switch sig[crypto.RecoveryIDOffset] {
	case 27, 28:
		sig[crypto.RecoveryIDOffset] -= 27 // Transform yellow paper V from 27/28 to 0/1
	case 0, 1:
	default:
		return common.Address{}, errors.New("apitypes: invalid signature recovery id")
	}
	sighash, _, err := TypedDataAndHash(typedData)
	if err != nil {
		return common.Address{}, err
	}
	pub, err := crypto.SigToPub(sighash, sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(pub), nil
}
