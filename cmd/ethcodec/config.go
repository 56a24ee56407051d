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
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"reflect"

	"github.com/ethcodec/ethcodec/internal/flags"
	"github.com/ethcodec/ethcodec/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

// Environment variables overriding the configuration file.
const (
	envVerbosity = "ETHCODEC_VERBOSITY"
	envHexPrefix = "ETHCODEC_HEXPREFIX"
)

var dumpConfigCommand = &cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Show configuration values",
	ArgsUsage:   "",
	Description: `The dumpconfig command shows configuration values.`,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type eip712Config struct {
	// ChainID is used for typed data whose domain has no chainId.
	ChainID *big.Int `toml:",omitempty"`
	// DefaultDomainName is used for typed data whose domain has no name.
	DefaultDomainName string `toml:",omitempty"`
}

type ethcodecConfig struct {
	HexPrefix bool
	Verbosity string
	EIP712    eip712Config
}

func defaultConfig() *ethcodecConfig {
	return &ethcodecConfig{
		HexPrefix: true,
		Verbosity: "warn",
	}
}

// buildConfig resolves the configuration: defaults, then the config file,
// then environment variables, then command line flags.
func buildConfig(ctx *cli.Context) (*ethcodecConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, cfg); err != nil {
			return nil, err
		}
	}
	if err := envVarsOverride(cfg); err != nil {
		return nil, err
	}
	cmdLineOverride(ctx, cfg)
	if _, err := log.LvlFromString(cfg.Verbosity); err != nil {
		return nil, fmt.Errorf("invalid verbosity %q", cfg.Verbosity)
	}
	return cfg, nil
}

func loadConfig(file string, cfg *ethcodecConfig) error {
	f, err := os.Open(flags.ExpandPath(file))
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func envVarsOverride(cfg *ethcodecConfig) error {
	if v := os.Getenv(envVerbosity); v != "" {
		cfg.Verbosity = v
	}
	switch v := os.Getenv(envHexPrefix); v {
	case "":
	case "1", "true":
		cfg.HexPrefix = true
	case "0", "false":
		cfg.HexPrefix = false
	default:
		return fmt.Errorf("invalid %s value %q", envHexPrefix, v)
	}
	return nil
}

func cmdLineOverride(ctx *cli.Context, cfg *ethcodecConfig) {
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.String(verbosityFlag.Name)
	}
	if ctx.IsSet(hexPrefixFlag.Name) {
		cfg.HexPrefix = ctx.Bool(hexPrefixFlag.Name)
	}
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	out, err := tomlSettings.Marshal(config(ctx))
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
