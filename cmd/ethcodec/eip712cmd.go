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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/ethcodec/ethcodec/common/math"
	"github.com/ethcodec/ethcodec/crypto"
	"github.com/ethcodec/ethcodec/internal/flags"
	"github.com/ethcodec/ethcodec/log"
	"github.com/ethcodec/ethcodec/signer/core/apitypes"
	"github.com/urfave/cli/v2"
)

var (
	chainIDFlag = &flags.BigFlag{
		Name:     "chainid",
		Usage:    "Chain id for domains that do not set one",
		Category: flags.EIP712Category,
	}
	keyFileFlag = &flags.PathFlag{
		Name:     "keyfile",
		Usage:    "File holding a hex encoded secp256k1 private key",
		Category: flags.EIP712Category,
	}

	eip712Command = &cli.Command{
		Name:  "eip712",
		Usage: "EIP-712 typed data hashing and signing",
		Subcommands: []*cli.Command{
			{
				Name:      "hash",
				Usage:     "Hash typed data",
				ArgsUsage: "<file|->",
				Action:    eip712Hash,
				Flags:     []cli.Flag{chainIDFlag},
				Description: `
Reads typed data JSON from a file, or from stdin when the file is "-", and prints
the domain separator, the message hash and the signing digest.`,
			},
			{
				Name:      "sign",
				Usage:     "Sign typed data",
				ArgsUsage: "<file|->",
				Action:    eip712Sign,
				Flags:     []cli.Flag{chainIDFlag, keyFileFlag},
			},
			{
				Name:      "recover",
				Usage:     "Recover the signer of typed data",
				ArgsUsage: "<file|-> <signature>",
				Action:    eip712Recover,
				Flags:     []cli.Flag{chainIDFlag},
			},
		},
	}
)

// loadTypedData reads and validates the typed data named by the first
// argument, filling in configured domain defaults.
func loadTypedData(ctx *cli.Context) (*apitypes.TypedData, error) {
	if ctx.NArg() < 1 {
		return nil, errors.New("need a typed data file")
	}
	var (
		data []byte
		err  error
	)
	if file := ctx.Args().First(); file == "-" {
		data, err = io.ReadAll(ctx.App.Reader)
	} else {
		data, err = os.ReadFile(flags.ExpandPath(file))
	}
	if err != nil {
		return nil, err
	}
	td := new(apitypes.TypedData)
	if err := json.Unmarshal(data, td); err != nil {
		return nil, err
	}
	applyDomainDefaults(ctx, td)
	log.Debug("Loaded typed data", "primary", td.PrimaryType, "types", len(td.Types))
	dump(ctx, td)
	return td, nil
}

// applyDomainDefaults sets the chain id and name of a domain that leaves them
// out, provided the domain type has those fields.
func applyDomainDefaults(ctx *cli.Context, td *apitypes.TypedData) {
	cfg := config(ctx).EIP712
	chainID := cfg.ChainID
	if ctx.IsSet(chainIDFlag.Name) {
		chainID = flags.GlobalBig(ctx, chainIDFlag.Name)
	}
	if td.Domain.ChainId == nil && chainID != nil && hasDomainField(td, "chainId") {
		td.Domain.ChainId = (*math.HexOrDecimal256)(new(big.Int).Set(chainID))
		log.Info("Using default chain id", "chainid", chainID)
	}
	if td.Domain.Name == "" && cfg.DefaultDomainName != "" && hasDomainField(td, "name") {
		td.Domain.Name = cfg.DefaultDomainName
		log.Info("Using default domain name", "name", cfg.DefaultDomainName)
	}
}

func hasDomainField(td *apitypes.TypedData, name string) bool {
	fields, ok := td.Types["EIP712Domain"]
	if !ok {
		// The implicit domain type has name, version, chainId and verifyingContract.
		return name != "salt"
	}
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func eip712Hash(ctx *cli.Context) error {
	td, err := loadTypedData(ctx)
	if err != nil {
		return err
	}
	domain, err := td.HashDomain()
	if err != nil {
		return fmt.Errorf("domain: %w", err)
	}
	message, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return fmt.Errorf("message: %w", err)
	}
	digest, _, err := apitypes.TypedDataAndHash(*td)
	if err != nil {
		return err
	}
	prefix := config(ctx).HexPrefix
	output(ctx, "domain:  %s", encodeHex(domain, prefix))
	output(ctx, "message: %s", encodeHex(message, prefix))
	output(ctx, "digest:  %s", encodeHex(digest, prefix))
	return nil
}

func eip712Sign(ctx *cli.Context) error {
	keyfile := ctx.String(keyFileFlag.Name)
	if keyfile == "" {
		return errors.New("need a --keyfile")
	}
	td, err := loadTypedData(ctx)
	if err != nil {
		return err
	}
	f, err := os.Open(flags.ExpandPath(keyfile))
	if err != nil {
		return err
	}
	defer f.Close()
	key, err := crypto.LoadPrivateKey(f)
	if err != nil {
		return fmt.Errorf("invalid key file: %w", err)
	}
	sig, err := apitypes.SignTypedData(key, *td)
	if err != nil {
		return err
	}
	signer := crypto.PubkeyToAddress(key.PubKey())
	log.Debug("Signed typed data", "signer", signer)
	prefix := config(ctx).HexPrefix
	output(ctx, "signature: %s", encodeHex(sig, prefix))
	output(ctx, "signer:    %s", signer.Hex())
	return nil
}

func eip712Recover(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("need a typed data file and a signature")
	}
	td, err := loadTypedData(ctx)
	if err != nil {
		return err
	}
	sig, err := hexutil.Decode(ctx.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}
	signer, err := apitypes.RecoverTypedDataSigner(*td, sig)
	if err != nil {
		return err
	}
	output(ctx, "%s", signer.Hex())
	return nil
}
