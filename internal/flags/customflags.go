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

package flags

import (
	"errors"
	"flag"
	"math/big"
	"os"
	"os/user"
	"path"
	"strings"

	"github.com/ethcodec/ethcodec/common/math"
	"github.com/urfave/cli/v2"
)

// PathString is a flag value holding a file path, expanded when parsed.
type PathString string

func (s *PathString) String() string {
	return string(*s)
}

func (s *PathString) Set(value string) error {
	*s = PathString(ExpandPath(value))
	return nil
}

// PathFlag is a cli.Flag holding a file path. The home directory and
// environment variables are expanded, e.g. ~/ethcodec.toml -> /home/username/ethcodec.toml
type PathFlag struct {
	Name string

	Category    string
	DefaultText string
	Usage       string

	Required   bool
	Hidden     bool
	HasBeenSet bool

	Value PathString

	Aliases []string
}

// For cli.Flag:

func (f *PathFlag) Names() []string { return append([]string{f.Name}, f.Aliases...) }
func (f *PathFlag) IsSet() bool     { return f.HasBeenSet }
func (f *PathFlag) String() string  { return cli.FlagStringer(f) }

// Apply adds the flag to the flag set. Parsed values go to a copy of the
// default so the flag can be applied again.
func (f *PathFlag) Apply(set *flag.FlagSet) error {
	value := f.Value
	eachName(f, func(name string) {
		set.Var(&value, name, f.Usage)
	})
	return nil
}

// For cli.RequiredFlag:

func (f *PathFlag) IsRequired() bool { return f.Required }

// For cli.VisibleFlag:

func (f *PathFlag) IsVisible() bool { return !f.Hidden }

// For cli.CategorizableFlag:

func (f *PathFlag) GetCategory() string { return f.Category }

// For cli.DocGenerationFlag:

func (f *PathFlag) TakesValue() bool     { return true }
func (f *PathFlag) GetUsage() string     { return f.Usage }
func (f *PathFlag) GetValue() string     { return f.Value.String() }
func (f *PathFlag) GetEnvVars() []string { return nil } // env not supported

func (f *PathFlag) GetDefaultText() string {
	if f.DefaultText != "" {
		return f.DefaultText
	}
	return f.GetValue()
}

// ExpandPath expands a file path
// 1. replace tilde with users home dir
// 2. expands embedded environment variables
// 3. cleans the path, e.g. /a/b/../c -> /a/c
// Note, it has limitations, e.g. ~someuser/tmp will not be expanded
func ExpandPath(p string) string {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := HomeDir(); home != "" {
			p = home + p[1:]
		}
	}
	return path.Clean(os.ExpandEnv(p))
}

// HomeDir returns the home directory of the current user.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// BigFlag is a command line flag that accepts 256 bit big integers in decimal or
// hexadecimal syntax.
type BigFlag struct {
	Name string

	Category    string
	DefaultText string
	Usage       string

	Required   bool
	Hidden     bool
	HasBeenSet bool

	Value *big.Int

	Aliases []string
}

// For cli.Flag:

func (f *BigFlag) Names() []string { return append([]string{f.Name}, f.Aliases...) }
func (f *BigFlag) IsSet() bool     { return f.HasBeenSet }
func (f *BigFlag) String() string  { return cli.FlagStringer(f) }

func (f *BigFlag) Apply(set *flag.FlagSet) error {
	if f.Value == nil {
		f.Value = new(big.Int)
	}
	value := new(big.Int).Set(f.Value)
	eachName(f, func(name string) {
		set.Var((*bigValue)(value), name, f.Usage)
	})

	return nil
}

// For cli.RequiredFlag:

func (f *BigFlag) IsRequired() bool { return f.Required }

// For cli.VisibleFlag:

func (f *BigFlag) IsVisible() bool { return !f.Hidden }

// For cli.CategorizableFlag:

func (f *BigFlag) GetCategory() string { return f.Category }

// For cli.DocGenerationFlag:

func (f *BigFlag) TakesValue() bool     { return true }
func (f *BigFlag) GetUsage() string     { return f.Usage }
func (f *BigFlag) GetValue() string     { return f.Value.String() }
func (f *BigFlag) GetEnvVars() []string { return nil } // env not supported

func (f *BigFlag) GetDefaultText() string {
	if f.DefaultText != "" {
		return f.DefaultText
	}
	return f.GetValue()
}

// bigValue turns *big.Int into a flag.Value
type bigValue big.Int

func (b *bigValue) String() string {
	if b == nil {
		return ""
	}
	return (*big.Int)(b).String()
}

func (b *bigValue) Set(s string) error {
	intVal, ok := math.ParseBig256(s)
	if !ok {
		return errors.New("invalid integer syntax")
	}
	*b = (bigValue)(*intVal)
	return nil
}

// GlobalBig returns the value of a BigFlag from the global flag set.
func GlobalBig(ctx *cli.Context, name string) *big.Int {
	val := ctx.Generic(name)
	if val == nil {
		return nil
	}
	return (*big.Int)(val.(*bigValue))
}

func eachName(f cli.Flag, fn func(string)) {
	for _, name := range f.Names() {
		name = strings.Trim(name, " ")
		fn(name)
	}
}
