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
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethcodec/ethcodec/accounts/abi"
	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/ethcodec/ethcodec/internal/flags"
	"github.com/ethcodec/ethcodec/log"
	"github.com/urfave/cli/v2"
)

var (
	packedFlag = &cli.BoolFlag{
		Name:     "packed",
		Usage:    "Use the non-standard packed encoding",
		Category: flags.ABICategory,
	}
	noSelectorFlag = &cli.BoolFlag{
		Name:     "noselector",
		Usage:    "Encode or decode a function's arguments without the selector",
		Category: flags.ABICategory,
	}

	abiCommand = &cli.Command{
		Name:  "abi",
		Usage: "Contract ABI encoding",
		Subcommands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode arguments",
				ArgsUsage: "<signature> [args...]",
				Action:    abiEncode,
				Flags:     []cli.Flag{packedFlag, noSelectorFlag},
				Description: `
Encodes the arguments for a function signature such as "transfer(address,uint256)"
or a parameter list such as "(uint256,string)". Array and tuple arguments are
given as JSON, e.g. '[1,2,3]' or '["0x01", [true]]'.`,
			},
			{
				Name:      "decode",
				Usage:     "Decode hex data",
				ArgsUsage: "<signature> <hex>",
				Action:    abiDecode,
				Flags:     []cli.Flag{noSelectorFlag},
				Description: `
Decodes calldata for a function signature, checking the selector, or the encoding
of a parameter list.`,
			},
			{
				Name:      "selector",
				Usage:     "Print a function selector",
				ArgsUsage: "<signature>",
				Action:    abiSelector,
			},
		},
	}
)

// parseSignature parses a function signature, or a parameter list when the
// text starts with "(". The function is nil for parameter lists.
func parseSignature(sig string) (*abi.Function, *abi.TupleType, error) {
	sig = strings.TrimSpace(sig)
	if strings.HasPrefix(sig, "(") {
		t, err := abi.ParseType(sig)
		if err != nil {
			return nil, nil, err
		}
		tuple, ok := t.(*abi.TupleType)
		if !ok {
			return nil, nil, fmt.Errorf("%s is not a parameter list", t)
		}
		return nil, tuple, nil
	}
	fn, err := abi.ParseSignature(sig)
	if err != nil {
		return nil, nil, err
	}
	return fn, fn.Inputs, nil
}

func abiEncode(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("need a signature")
	}
	if err := flags.CheckExclusive(ctx, packedFlag, noSelectorFlag); err != nil {
		return err
	}
	fn, params, err := parseSignature(ctx.Args().First())
	if err != nil {
		return err
	}
	args := ctx.Args().Tail()
	if len(args) != params.Len() {
		return fmt.Errorf("%s takes %d arguments, have %d", params, params.Len(), len(args))
	}
	elems := make([]abi.Value, len(args))
	for i, arg := range args {
		if elems[i], err = parseArg(params.Elems()[i], arg); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	log.Debug("Encoding arguments", "type", params, "args", len(args))

	prefix := config(ctx).HexPrefix
	if ctx.Bool(packedFlag.Name) {
		enc, err := abi.EncodePacked(elems...)
		if err != nil {
			return err
		}
		output(ctx, "%s", encodeHex(enc, prefix))
		return nil
	}
	v, err := params.NewValue(elems...)
	if err != nil {
		return err
	}
	dump(ctx, v.Interface())
	if fn == nil || ctx.Bool(noSelectorFlag.Name) {
		output(ctx, "%s", abi.EncodeHex(v, prefix))
		return nil
	}
	enc, err := fn.EncodeHex(v, prefix)
	if err != nil {
		return err
	}
	log.Debug("Encoded calldata", "selector", fn.Selector(), "sig", fn.Sig())
	output(ctx, "%s", enc)
	return nil
}

func abiDecode(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("need a signature and hex data")
	}
	fn, params, err := parseSignature(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	data := strings.TrimSpace(ctx.Args().Get(1))

	var v *abi.TupleValue
	if fn == nil || ctx.Bool(noSelectorFlag.Name) {
		val, err := abi.DecodeHex(params, data)
		if err != nil {
			return err
		}
		v = val.(*abi.TupleValue)
	} else if v, err = fn.UnpackHex(data); err != nil {
		return err
	}
	log.Debug("Decoded arguments", "type", params, "values", v.Len())
	dump(ctx, v.Interface())

	names := params.Names()
	for i := 0; i < v.Len(); i++ {
		label := strconv.Itoa(i)
		if i < len(names) && names[i] != "" {
			label = names[i]
		}
		output(ctx, "%s %s: %s", label, params.Elems()[i], formatValue(v.Elem(i)))
	}
	return nil
}

func abiSelector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need a function signature")
	}
	fn, err := abi.ParseSignature(ctx.Args().First())
	if err != nil {
		return err
	}
	sel := fn.Selector()
	log.Debug("Computed selector", "sig", fn.Sig())
	output(ctx, "%s %s", encodeHex(sel[:], config(ctx).HexPrefix), fn.Sig())
	return nil
}

// parseArg converts a command line argument to a value of type t. Composite
// types are read as JSON, booleans as true or false and everything else is
// passed to the type as text.
func parseArg(t abi.Type, arg string) (abi.Value, error) {
	switch t.Kind() {
	case abi.ArrayTy, abi.SliceTy, abi.TupleTy:
		dec := json.NewDecoder(strings.NewReader(arg))
		dec.UseNumber()
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("invalid JSON for %s: %w", t, err)
		}
		return t.New(fromJSON(v))
	case abi.BoolTy:
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", arg)
		}
		return t.New(b)
	}
	return t.New(arg)
}

// fromJSON turns JSON numbers into strings so integer types can parse them
// without loss of precision.
func fromJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case json.Number:
		return v.String()
	case []interface{}:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = fromJSON(v[i])
		}
		return out
	}
	return v
}

// formatValue renders a decoded value for display.
func formatValue(v abi.Value) string {
	switch v := v.(type) {
	case *abi.TupleValue:
		return "(" + formatElems(v.Elems()) + ")"
	case *abi.ArrayValue:
		return "[" + formatElems(v.Elems()) + "]"
	case *abi.SliceValue:
		return "[" + formatElems(v.Elems()) + "]"
	case abi.AddressValue:
		return common.Address(v).Hex()
	case abi.BytesValue:
		return hexutil.Encode(v)
	case *abi.FixedBytesValue:
		return hexutil.Encode(v.Bytes())
	case abi.StringValue:
		return strconv.Quote(string(v))
	}
	return fmt.Sprint(v.Interface())
}

func formatElems(elems []abi.Value) string {
	var buf bytes.Buffer
	for i, e := range elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(formatValue(e))
	}
	return buf.String()
}

func encodeHex(b []byte, prefix bool) string {
	if prefix {
		return hexutil.Encode(b)
	}
	return common.Bytes2Hex(b)
}
