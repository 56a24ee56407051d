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

// Package apitypes implements EIP-712 typed structured data hashing.
package apitypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ethcodec/ethcodec/accounts/abi"
	"github.com/ethcodec/ethcodec/common"
	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/ethcodec/ethcodec/common/math"
	"github.com/ethcodec/ethcodec/crypto"
)

// domainType is the name of the type describing the signing domain.
const domainType = "EIP712Domain"

// maxDepth bounds the nesting of structs and arrays while hashing a message.
const maxDepth = 64

var (
	// ErrCyclicType is returned for a struct type with a field of its own type.
	ErrCyclicType = errors.New("apitypes: type references itself")

	// ErrDepthLimit is returned when a message nests deeper than the hasher allows.
	ErrDepthLimit = errors.New("apitypes: max depth exceeded")
)

// TypeResolutionError is returned when a type name is neither a primitive nor
// a declared struct type.
type TypeResolutionError struct {
	Type string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("apitypes: unknown type %q", e.Type)
}

// defaultDomainFields is used for EIP712Domain when the types do not declare it.
var defaultDomainFields = []Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

// Type is a single named field of a struct type.
type Type struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (t *Type) isArray() bool {
	return strings.HasSuffix(t.Type, "]")
}

// typeName returns the type without any array dimensions.
func (t *Type) typeName() string {
	if i := strings.IndexByte(t.Type, '['); i >= 0 {
		return t.Type[:i]
	}
	return t.Type
}

// Types maps struct type names to their ordered fields.
type Types map[string][]Type

// TypedDataMessage is a struct value keyed by field name.
type TypedDataMessage = map[string]interface{}

// TypedDataDomain is the signing domain of a typed data message.
type TypedDataDomain struct {
	Name              string                `json:"name"`
	Version           string                `json:"version"`
	ChainId           *math.HexOrDecimal256 `json:"chainId"`
	VerifyingContract string                `json:"verifyingContract"`
	Salt              string                `json:"salt"`
}

// Map returns the domain as a struct value. Empty fields are left out.
func (domain *TypedDataDomain) Map() map[string]interface{} {
	dataMap := map[string]interface{}{}
	if domain.ChainId != nil {
		dataMap["chainId"] = domain.ChainId
	}
	if len(domain.Name) > 0 {
		dataMap["name"] = domain.Name
	}
	if len(domain.Version) > 0 {
		dataMap["version"] = domain.Version
	}
	if len(domain.VerifyingContract) > 0 {
		dataMap["verifyingContract"] = domain.VerifyingContract
	}
	if len(domain.Salt) > 0 {
		dataMap["salt"] = domain.Salt
	}
	return dataMap
}

func (domain *TypedDataDomain) validate() error {
	if domain.ChainId == nil && len(domain.Name) == 0 && len(domain.Version) == 0 &&
		len(domain.VerifyingContract) == 0 && len(domain.Salt) == 0 {
		return errors.New("apitypes: domain is undefined")
	}
	return nil
}

// TypedData is a message together with the types and domain needed to hash it.
type TypedData struct {
	Types       Types            `json:"types"`
	PrimaryType string           `json:"primaryType"`
	Domain      TypedDataDomain  `json:"domain"`
	Message     TypedDataMessage `json:"message"`

	hasher crypto.Hasher
}

// WithHasher returns a copy of the typed data hashing with h instead of
// keccak-256.
func (typedData *TypedData) WithHasher(h crypto.Hasher) *TypedData {
	cpy := *typedData
	cpy.hasher = h
	return &cpy
}

func (typedData *TypedData) hash(data ...[]byte) common.Hash {
	return crypto.OrDefault(typedData.hasher).Hash(data...)
}

// fields returns the fields of a struct type and whether the type is a struct.
func (typedData *TypedData) fields(name string) ([]Type, bool) {
	if fields, ok := typedData.Types[name]; ok {
		return fields, true
	}
	if name == domainType {
		return defaultDomainFields, true
	}
	return nil, false
}

// Dependencies returns the struct types reachable from primaryType, excluding
// primaryType itself, in the order they are first referenced.
func (typedData *TypedData) Dependencies(primaryType string) ([]string, error) {
	if _, ok := typedData.fields(primaryType); !ok {
		return nil, &TypeResolutionError{Type: primaryType}
	}
	seen := map[string]bool{primaryType: true}
	return typedData.dependencies(primaryType, seen, nil)
}

func (typedData *TypedData) dependencies(name string, seen map[string]bool, found []string) ([]string, error) {
	fields, _ := typedData.fields(name)
	for _, field := range fields {
		dep := field.typeName()
		if dep == name {
			return nil, fmt.Errorf("%w: %s", ErrCyclicType, name)
		}
		if _, ok := typedData.fields(dep); !ok {
			if !isPrimitiveTypeValid(field.Type) {
				return nil, &TypeResolutionError{Type: field.Type}
			}
			continue
		}
		if seen[dep] {
			continue
		}
		seen[dep] = true
		found = append(found, dep)

		var err error
		if found, err = typedData.dependencies(dep, seen, found); err != nil {
			return nil, err
		}
	}
	return found, nil
}

// EncodeType generates the following encoding:
// `name ‖ "(" ‖ member₁ ‖ "," ‖ member₂ ‖ "," ‖ … ‖ memberₙ ")"`
//
// each member is written as `type ‖ " " ‖ name`. The encodings of the referenced
// struct types follow the primary type, sorted by name.
func (typedData *TypedData) EncodeType(primaryType string) (hexutil.Bytes, error) {
	deps, err := typedData.Dependencies(primaryType)
	if err != nil {
		return nil, err
	}
	sort.Strings(deps)
	deps = append([]string{primaryType}, deps...)

	var buffer bytes.Buffer
	for _, dep := range deps {
		fields, _ := typedData.fields(dep)
		buffer.WriteString(dep)
		buffer.WriteByte('(')
		for i, field := range fields {
			if i > 0 {
				buffer.WriteByte(',')
			}
			buffer.WriteString(field.Type)
			buffer.WriteByte(' ')
			buffer.WriteString(field.Name)
		}
		buffer.WriteByte(')')
	}
	return buffer.Bytes(), nil
}

// TypeHash hashes the type encoding of primaryType.
func (typedData *TypedData) TypeHash(primaryType string) (hexutil.Bytes, error) {
	enc, err := typedData.EncodeType(primaryType)
	if err != nil {
		return nil, err
	}
	return typedData.hash(enc).Bytes(), nil
}

// HashStruct generates a keccak256 hash of the encoding of the provided data.
func (typedData *TypedData) HashStruct(primaryType string, data TypedDataMessage) (hexutil.Bytes, error) {
	return typedData.hashStruct(primaryType, data, 1)
}

func (typedData *TypedData) hashStruct(primaryType string, data TypedDataMessage, depth int) (hexutil.Bytes, error) {
	encodedData, err := typedData.EncodeData(primaryType, data, depth)
	if err != nil {
		return nil, err
	}
	return typedData.hash(encodedData).Bytes(), nil
}

// EncodeData generates the following encoding:
// `typeHash ‖ enc(value₁) ‖ enc(value₂) ‖ … ‖ enc(valueₙ)`
//
// each encoded member is 32 bytes long.
func (typedData *TypedData) EncodeData(primaryType string, data map[string]interface{}, depth int) (hexutil.Bytes, error) {
	if depth > maxDepth {
		return nil, ErrDepthLimit
	}
	fields, ok := typedData.fields(primaryType)
	if !ok {
		return nil, &TypeResolutionError{Type: primaryType}
	}
	if len(data) > len(fields) {
		return nil, fmt.Errorf("apitypes: %s has %d fields, message provides %d", primaryType, len(fields), len(data))
	}
	typeHash, err := typedData.TypeHash(primaryType)
	if err != nil {
		return nil, err
	}
	buffer := make([]byte, 0, 32*(len(fields)+1))
	buffer = append(buffer, typeHash...)

	for _, field := range fields {
		value, ok := data[field.Name]
		if !ok {
			return nil, fmt.Errorf("apitypes: %s.%s is missing", primaryType, field.Name)
		}
		enc, err := typedData.encodeField(field.Type, value, depth)
		if err != nil {
			return nil, fmt.Errorf("apitypes: %s.%s: %w", primaryType, field.Name, err)
		}
		buffer = append(buffer, enc...)
	}
	return buffer, nil
}

// encodeField returns the 32 byte encoding of a field value.
func (typedData *TypedData) encodeField(encType string, value interface{}, depth int) ([]byte, error) {
	if strings.HasSuffix(encType, "]") {
		return typedData.encodeArray(encType, value, depth)
	}
	if _, ok := typedData.fields(encType); ok {
		mapValue, ok := value.(map[string]interface{})
		if !ok {
			return nil, dataMismatchError(encType, value)
		}
		return typedData.hashStruct(encType, mapValue, depth+1)
	}
	return typedData.EncodePrimitiveValue(encType, value, depth)
}

// encodeArray hashes the concatenated encodings of the array elements.
func (typedData *TypedData) encodeArray(encType string, value interface{}, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, ErrDepthLimit
	}
	elemType, length, err := splitArray(encType)
	if err != nil {
		return nil, err
	}
	elems, ok := asList(value)
	if !ok {
		return nil, dataMismatchError(encType, value)
	}
	if length >= 0 && len(elems) != length {
		return nil, fmt.Errorf("apitypes: %s needs %d elements, have %d", encType, length, len(elems))
	}
	buffer := make([]byte, 0, 32*len(elems))
	for _, elem := range elems {
		enc, err := typedData.encodeField(elemType, elem, depth+1)
		if err != nil {
			return nil, err
		}
		buffer = append(buffer, enc...)
	}
	return typedData.hash(buffer).Bytes(), nil
}

// EncodePrimitiveValue deals with the primitive values found
// while searching through the typed data.
func (typedData *TypedData) EncodePrimitiveValue(encType string, encValue interface{}, depth int) ([]byte, error) {
	switch encType {
	case "string":
		switch v := encValue.(type) {
		case string:
			return typedData.hash([]byte(v)).Bytes(), nil
		case []byte:
			return typedData.hash(v).Bytes(), nil
		}
		return nil, dataMismatchError(encType, encValue)
	case "bytes":
		b, ok := parseBytes(encValue)
		if !ok {
			return nil, dataMismatchError(encType, encValue)
		}
		return typedData.hash(b).Bytes(), nil
	}
	if !isPrimitiveTypeValid(encType) {
		return nil, &TypeResolutionError{Type: encType}
	}
	typ, err := abi.ParseType(encType)
	if err != nil {
		return nil, err
	}
	switch typ.Kind() {
	case abi.UintTy, abi.IntTy:
		n, ok := parseInteger(encValue)
		if !ok {
			return nil, dataMismatchError(encType, encValue)
		}
		encValue = n
	case abi.FixedBytesTy:
		b, ok := parseBytes(encValue)
		if !ok {
			return nil, dataMismatchError(encType, encValue)
		}
		size := typ.(*abi.FixedBytesType).Len()
		if len(b) > size {
			return nil, fmt.Errorf("apitypes: %s value is %d bytes long", encType, len(b))
		}
		encValue = common.RightPadBytes(b, size)
	}
	v, err := typ.New(encValue)
	if err != nil {
		return nil, err
	}
	return abi.Encode(v), nil
}

// HashDomain hashes the signing domain.
func (typedData *TypedData) HashDomain() (hexutil.Bytes, error) {
	return typedData.HashStruct(domainType, typedData.Domain.Map())
}

// TypedDataAndHash is a helper function that calculates a hash for typed data
// conforming to EIP-712. It returns the hash and the preimage
// "\x19\x01" ‖ domainSeparator ‖ hashStruct(message).
func TypedDataAndHash(typedData TypedData) ([]byte, string, error) {
	domainSeparator, err := typedData.HashDomain()
	if err != nil {
		return nil, "", err
	}
	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, "", err
	}
	rawData := fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash))
	return typedData.hash([]byte(rawData)).Bytes(), rawData, nil
}

// Validate checks that the types are well formed, every field type resolves,
// the primary type is declared and the domain is not empty.
func (typedData *TypedData) Validate() error {
	if err := typedData.Types.validate(); err != nil {
		return err
	}
	if len(typedData.PrimaryType) == 0 {
		return errors.New("apitypes: primary type is undefined")
	}
	if _, ok := typedData.fields(typedData.PrimaryType); !ok {
		return &TypeResolutionError{Type: typedData.PrimaryType}
	}
	return typedData.Domain.validate()
}

func (t Types) validate() error {
	for typeKey, typeArr := range t {
		if len(typeKey) == 0 {
			return errors.New("apitypes: empty type key")
		}
		if isPrimitiveTypeValid(typeKey) {
			return fmt.Errorf("apitypes: type %q shadows a primitive type", typeKey)
		}
		names := make(map[string]bool, len(typeArr))
		for i, typeObj := range typeArr {
			if len(typeObj.Name) == 0 {
				return fmt.Errorf("apitypes: field %d of %s has no name", i, typeKey)
			}
			if names[typeObj.Name] {
				return fmt.Errorf("apitypes: duplicate field %s in %s", typeObj.Name, typeKey)
			}
			names[typeObj.Name] = true

			if typeObj.typeName() == typeKey {
				return fmt.Errorf("%w: %s", ErrCyclicType, typeKey)
			}
			if _, ok := t[typeObj.typeName()]; ok || typeObj.typeName() == domainType {
				if _, _, err := splitDims(typeObj.Type); err != nil {
					return err
				}
				continue
			}
			if !isPrimitiveTypeValid(typeObj.Type) {
				return &TypeResolutionError{Type: typeObj.Type}
			}
		}
	}
	return nil
}

// UnmarshalJSON decodes typed data and validates it. Numbers in the message
// are kept as json.Number.
func (typedData *TypedData) UnmarshalJSON(data []byte) error {
	type input TypedData

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw input
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw.Types == nil {
		return errors.New("apitypes: types are undefined")
	}
	if raw.Message == nil {
		return errors.New("apitypes: message is undefined")
	}
	*typedData = TypedData(raw)
	return typedData.Validate()
}

// splitArray splits the outermost array dimension off a type. The length is
// -1 for dynamic arrays.
func splitArray(encType string) (string, int, error) {
	i := strings.LastIndexByte(encType, '[')
	if i < 0 || !strings.HasSuffix(encType, "]") {
		return "", 0, fmt.Errorf("apitypes: %q is not an array type", encType)
	}
	dim := encType[i+1 : len(encType)-1]
	if dim == "" {
		return encType[:i], -1, nil
	}
	n, err := strconv.ParseUint(dim, 10, 31)
	if err != nil {
		return "", 0, fmt.Errorf("apitypes: invalid array length in %q", encType)
	}
	return encType[:i], int(n), nil
}

// splitDims strips all array dimensions off a type.
func splitDims(encType string) (string, int, error) {
	dims := 0
	for strings.HasSuffix(encType, "]") {
		elem, _, err := splitArray(encType)
		if err != nil {
			return "", 0, err
		}
		encType = elem
		dims++
	}
	return encType, dims, nil
}

// isPrimitiveTypeValid checks that encType, with any array dimensions, is one
// of the primitive EIP-712 types.
func isPrimitiveTypeValid(encType string) bool {
	base, _, err := splitDims(encType)
	if err != nil || strings.ContainsAny(base, " ()[]") {
		return false
	}
	switch base {
	case "address", "bool", "string", "bytes", "int", "uint":
		return true
	case "byte", "function":
		return false
	}
	if !strings.HasPrefix(base, "bytes") && !strings.HasPrefix(base, "int") && !strings.HasPrefix(base, "uint") {
		return false
	}
	_, err = abi.ParseType(base)
	return err == nil
}

func dataMismatchError(encType string, encValue interface{}) error {
	return fmt.Errorf("apitypes: provided data '%v' doesn't match type '%s'", encValue, encType)
}
