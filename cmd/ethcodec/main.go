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

// ethcodec encodes and decodes Ethereum contract ABI data and RLP, and hashes
// and signs EIP-712 typed data.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethcodec/ethcodec/internal/flags"
	"github.com/ethcodec/ethcodec/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

// Git commit this binary was built from, set via linker flags.
var gitCommit = ""

var (
	configFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
	verbosityFlag = &cli.StringFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: crit, error, warn, info, debug, trace",
		Category: flags.LoggingCategory,
	}
	hexPrefixFlag = &cli.BoolFlag{
		Name:     "hexprefix",
		Usage:    "Prefix hex output with 0x",
		Category: flags.MiscCategory,
	}
	dumpFlag = &cli.BoolFlag{
		Name:     "dump",
		Usage:    "Dump decoded values in full detail",
		Category: flags.LoggingCategory,
	}
)

func newApp() *cli.App {
	app := flags.NewApp(gitCommit, "Ethereum ABI, RLP and EIP-712 codec")
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		hexPrefixFlag,
		dumpFlag,
	}
	app.Commands = []*cli.Command{
		abiCommand,
		rlpCommand,
		eip712Command,
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := buildConfig(ctx)
		if err != nil {
			return err
		}
		ctx.App.Metadata = map[string]interface{}{configKey: cfg}
		return setupLogging(ctx, cfg)
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging routes log records to stderr, coloured when it is a terminal.
func setupLogging(ctx *cli.Context, cfg *ethcodecConfig) error {
	lvl, err := log.LvlFromString(cfg.Verbosity)
	if err != nil {
		return err
	}
	usecolor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	output := ctx.App.ErrWriter
	if output != os.Stderr {
		usecolor = false
	}
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(output, log.TerminalFormat(usecolor))))
	return nil
}

// config returns the configuration resolved before the command ran.
func config(ctx *cli.Context) *ethcodecConfig {
	return ctx.App.Metadata[configKey].(*ethcodecConfig)
}

// output writes a result line to the app's writer.
func output(ctx *cli.Context, format string, args ...interface{}) {
	fmt.Fprintf(ctx.App.Writer, format+"\n", args...)
}

// dump writes the full structure of v when --dump is set.
func dump(ctx *cli.Context, v interface{}) {
	if ctx.Bool(dumpFlag.Name) {
		fmt.Fprint(ctx.App.Writer, spew.Sdump(v))
	}
}
