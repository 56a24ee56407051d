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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mailTypedData = `{
  "types": {
    "EIP712Domain": [
      {"name": "name", "type": "string"},
      {"name": "version", "type": "string"},
      {"name": "chainId", "type": "uint256"},
      {"name": "verifyingContract", "type": "address"}
    ],
    "Person": [
      {"name": "name", "type": "string"},
      {"name": "wallet", "type": "address"}
    ],
    "Mail": [
      {"name": "from", "type": "Person"},
      {"name": "to", "type": "Person"},
      {"name": "contents", "type": "string"}
    ]
  },
  "primaryType": "Mail",
  "domain": {
    "name": "Ether Mail",
    "version": "1",
    "chainId": 1,
    "verifyingContract": "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"
  },
  "message": {
    "from": {"name": "Cow", "wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"},
    "to": {"name": "Bob", "wallet": "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"},
    "contents": "Hello, Bob!"
  }
}`

const mailHashes = "domain:  0xf2cee375fa42b42143804025fc449deafd50cc031ca257e0b194a650a912090f\n" +
	"message: 0xc52c0ee5d84264471806290a3f2c4cecfc5490626bf912d01f240d7a274b371e\n" +
	"digest:  0xbe609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd2\n"

func TestEIP712Hash(t *testing.T) {
	file := writeFile(t, "mail.json", mailTypedData)
	out, err := runApp(t, "eip712", "hash", file)
	require.NoError(t, err)
	assert.Equal(t, mailHashes, out)
}

func TestEIP712HashStdin(t *testing.T) {
	app := newApp()
	var stdout bytes.Buffer
	app.Reader = strings.NewReader(mailTypedData)
	app.Writer = &stdout
	app.ErrWriter = new(bytes.Buffer)
	require.NoError(t, app.Run([]string{"ethcodec", "eip712", "hash", "-"}))
	assert.Equal(t, mailHashes, stdout.String())
}

func TestEIP712DefaultChainID(t *testing.T) {
	noChain := strings.Replace(mailTypedData, `"chainId": 1,`, "", 1)
	file := writeFile(t, "mail.json", noChain)

	out, err := runApp(t, "eip712", "hash", "--chainid", "1", file)
	require.NoError(t, err)
	assert.Equal(t, mailHashes, out)

	// The domain type declares chainId, so leaving it out fails.
	_, err = runApp(t, "eip712", "hash", file)
	assert.Error(t, err)

	// An explicit chain id wins over the flag.
	file = writeFile(t, "mail.json", mailTypedData)
	out, err = runApp(t, "eip712", "hash", "--chainid", "5", file)
	require.NoError(t, err)
	assert.Equal(t, mailHashes, out)
}

func TestEIP712HashErrors(t *testing.T) {
	tests := map[string]string{
		"extra field":   strings.Replace(mailTypedData, `"contents": "Hello, Bob!"`, `"contents": "Hello, Bob!", "cc": "Alice"`, 1),
		"missing field": strings.Replace(mailTypedData, `, "wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"`, "", 1),
		"unknown type":  strings.Replace(mailTypedData, `"type": "Person"}`, `"type": "Persona"}`, 1),
		"bad json":      mailTypedData[:100],
	}
	for name, input := range tests {
		file := writeFile(t, "mail.json", input)
		_, err := runApp(t, "eip712", "hash", file)
		assert.Error(t, err, name)
	}
	_, err := runApp(t, "eip712", "hash", "/does/not/exist.json")
	assert.Error(t, err)
}

func TestEIP712SignRecover(t *testing.T) {
	file := writeFile(t, "mail.json", mailTypedData)
	keyfile := writeFile(t, "key", "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032")

	out, err := runApp(t, "eip712", "sign", "--keyfile", keyfile, file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	sig := strings.TrimPrefix(lines[0], "signature: ")
	signer := strings.TrimPrefix(lines[1], "signer:    ")
	assert.Len(t, sig, 2+2*65)

	out, err = runApp(t, "eip712", "recover", file, sig)
	require.NoError(t, err)
	assert.Equal(t, signer+"\n", out)

	_, err = runApp(t, "eip712", "sign", file)
	assert.Error(t, err, "missing keyfile")
	_, err = runApp(t, "eip712", "recover", file, "0x1234")
	assert.Error(t, err, "short signature")
}
