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

package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// elementaryTypes maps type names to their shared instances.
var elementaryTypes = map[string]Type{
	"bool":     TypeBool,
	"address":  TypeAddress,
	"string":   TypeString,
	"bytes":    TypeBytes,
	"uint":     TypeUint256,
	"int":      TypeInt256,
	"byte":     NewFixedBytes(1),
	"function": NewFixedBytes(24),
}

func init() {
	for i := 0; i < 32; i++ {
		elementaryTypes[uintTypes[i].String()] = uintTypes[i]
		elementaryTypes[intTypes[i].String()] = intTypes[i]
		elementaryTypes[fixedBytesTypes[i].String()] = fixedBytesTypes[i]
	}
}

// dataLocations are Solidity keywords that may follow a parameter type.
var dataLocations = map[string]bool{
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"indexed":  true,
}

// ParseType parses a type string such as "uint256", "bytes[2]" or
// "(address,uint256)[]".
func ParseType(s string) (Type, error) {
	p := &typeParser{src: s}
	p.space()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.space()
	if !p.done() {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseSignature parses a function signature such as "transfer(address,uint256)".
// Parameter names are allowed, and outputs may follow either directly as a
// second tuple or after the "returns" keyword:
//
//	balanceOf(address owner) returns (uint256)
func ParseSignature(sig string) (*Function, error) {
	p := &typeParser{src: sig}
	p.space()
	name := p.ident()
	if name == "" {
		return nil, p.errorf("missing function name")
	}
	inputs, err := p.parseTuple()
	if err != nil {
		return nil, err
	}
	p.space()
	var outputs *TupleType
	if !p.done() {
		mark := p.pos
		if kw := p.ident(); kw != "returns" {
			p.pos = mark
		}
		p.space()
		if outputs, err = p.parseTuple(); err != nil {
			return nil, err
		}
		p.space()
	}
	if !p.done() {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return NewFunction(name, inputs, outputs), nil
}

// MustParseSignature is like ParseSignature but panics on error.
func MustParseSignature(sig string) *Function {
	f, err := ParseSignature(sig)
	if err != nil {
		panic(err)
	}
	return f
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) done() bool { return p.pos >= len(p.src) }

func (p *typeParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) space() {
	for !p.done() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func isIdentChar(c byte, first bool) bool {
	switch {
	case c == '_' || c == '$':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func (p *typeParser) ident() string {
	start := p.pos
	for !p.done() && isIdentChar(p.src[p.pos], p.pos == start) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("abi: invalid type %q at position %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) parseType() (Type, error) {
	var t Type
	if p.peek() == '(' {
		tuple, err := p.parseTuple()
		if err != nil {
			return nil, err
		}
		t = tuple
	} else {
		name := p.ident()
		if name == "" {
			return nil, p.errorf("missing type name")
		}
		elem, ok := elementaryTypes[name]
		if !ok {
			return nil, p.errorf("unknown type %q", name)
		}
		t = elem
	}
	for p.peek() == '[' {
		p.pos++
		start := p.pos
		for !p.done() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		digits := p.src[start:p.pos]
		if p.peek() != ']' {
			return nil, p.errorf("unterminated array suffix")
		}
		p.pos++
		if digits == "" {
			t = NewSlice(t)
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, p.errorf("invalid array length %q", digits)
		}
		if _, ok := headSize(t, n); !ok {
			return nil, p.errorf("array length %d of %s too large", n, t)
		}
		t = NewArray(t, n)
	}
	return t, nil
}

// parseTuple parses "(T1 name1,T2,...)".
func (p *typeParser) parseTuple() (*TupleType, error) {
	if p.peek() != '(' {
		return nil, p.errorf("expected '('")
	}
	p.pos++
	p.space()
	var (
		elems []Type
		names []string
		named bool
	)
	if p.peek() == ')' {
		p.pos++
		return NewTuple(), nil
	}
	for {
		p.space()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.space()
		name := p.ident()
		if dataLocations[name] {
			p.space()
			name = p.ident()
		}
		p.space()
		elems = append(elems, t)
		names = append(names, name)
		named = named || name != ""

		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			if !named {
				names = nil
			}
			if _, ok := tupleSize(elems); !ok {
				return nil, p.errorf("tuple of %d elements too large", len(elems))
			}
			return newTuple(elems, names), nil
		default:
			return nil, p.errorf("expected ',' or ')'")
		}
	}
}

// formatParams renders a tuple as a parameter list with names, for display.
func formatParams(t *TupleType) string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
		if i < len(t.names) && t.names[i] != "" {
			parts[i] += " " + t.names[i]
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
