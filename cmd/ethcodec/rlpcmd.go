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
	"strings"

	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/ethcodec/ethcodec/common/math"
	"github.com/ethcodec/ethcodec/log"
	"github.com/ethcodec/ethcodec/rlp"
	"github.com/urfave/cli/v2"
)

var rlpCommand = &cli.Command{
	Name:  "rlp",
	Usage: "Recursive length prefix encoding",
	Subcommands: []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode a JSON value",
			ArgsUsage: "<json>",
			Action:    rlpEncode,
			Description: `
Encodes a JSON value. Arrays become lists, 0x-prefixed strings become byte strings,
other strings are taken as text and non-negative integers are encoded canonically.`,
		},
		{
			Name:      "decode",
			Usage:     "Decode hex data",
			ArgsUsage: "<hex>",
			Action:    rlpDecode,
		},
	},
}

func rlpEncode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need a JSON value")
	}
	dec := json.NewDecoder(strings.NewReader(ctx.Args().First()))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	it, err := jsonToItem(v)
	if err != nil {
		return err
	}
	log.Debug("Encoding item", "kind", it.Kind(), "size", it.EncodedSize())
	output(ctx, "%s", rlp.EncodeHex(it, config(ctx).HexPrefix))
	return nil
}

func rlpDecode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need hex data")
	}
	it, err := rlp.DecodeHex(strings.TrimSpace(ctx.Args().First()))
	if err != nil {
		return err
	}
	log.Debug("Decoded item", "kind", it.Kind(), "size", it.EncodedSize())
	dump(ctx, it)
	output(ctx, "%s", it)
	return nil
}

func jsonToItem(v interface{}) (rlp.Item, error) {
	switch v := v.(type) {
	case string:
		if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
			b, err := hexutil.Decode(v)
			if err != nil {
				return rlp.Item{}, fmt.Errorf("invalid hex string %q: %w", v, err)
			}
			return rlp.NewString(b), nil
		}
		return rlp.NewString([]byte(v)), nil
	case json.Number:
		n, ok := math.ParseBig256(v.String())
		if !ok {
			return rlp.Item{}, fmt.Errorf("invalid integer %s", v)
		}
		return rlp.BigInt(n)
	case []interface{}:
		items := make([]rlp.Item, len(v))
		for i := range v {
			var err error
			if items[i], err = jsonToItem(v[i]); err != nil {
				return rlp.Item{}, err
			}
		}
		return rlp.NewList(items...), nil
	}
	return rlp.Item{}, fmt.Errorf("cannot encode JSON value of type %T", v)
}
