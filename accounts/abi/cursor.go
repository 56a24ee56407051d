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
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/ethcodec/ethcodec/common/hexutil"
	"github.com/holiman/uint256"
)

// wordSize is the size of an ABI word in bytes.
const wordSize = 32

var zeroWord [wordSize]byte

// Reader is a read cursor over an encoded input. Positions and lengths are in
// bytes for both the binary and the hex representation.
type Reader interface {
	// Offset returns the current position.
	Offset() int
	// Len returns the length of the whole input.
	Len() int
	// Read returns the next n bytes and advances the cursor past them.
	Read(n int) ([]byte, error)
	// Seek moves the cursor to an absolute position.
	Seek(offset int) error
	// Fork returns an independent cursor over the same input, positioned at offset.
	Fork(offset int) (Reader, error)
}

// Writer is an append-only output cursor.
type Writer interface {
	Write(p []byte)
	// Len returns the number of encoded bytes written so far.
	Len() int
}

func checkRange(offset, n, size int) error {
	if offset < 0 || n < 0 || offset > size || n > size-offset {
		return &BoundsError{Offset: offset, Need: n, Len: size}
	}
	return nil
}

type byteReader struct {
	data []byte
	off  int
}

// NewReader returns a cursor reading binary input.
func NewReader(data []byte) Reader {
	return &byteReader{data: data}
}

func (r *byteReader) Offset() int { return r.off }
func (r *byteReader) Len() int    { return len(r.data) }

func (r *byteReader) Read(n int) ([]byte, error) {
	if err := checkRange(r.off, n, len(r.data)); err != nil {
		return nil, err
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *byteReader) Seek(offset int) error {
	if err := checkRange(offset, 0, len(r.data)); err != nil {
		return err
	}
	r.off = offset
	return nil
}

func (r *byteReader) Fork(offset int) (Reader, error) {
	if err := checkRange(offset, 0, len(r.data)); err != nil {
		return nil, err
	}
	return &byteReader{data: r.data, off: offset}, nil
}

type hexReader struct {
	text string // hex digits without prefix
	off  int
}

// NewHexReader returns a cursor reading hex text. A leading "0x" is optional.
func NewHexReader(text string) (Reader, error) {
	if hexutil.Has0xPrefix(text) {
		text = text[2:]
	}
	if len(text)%2 != 0 {
		return nil, hexutil.ErrOddLength
	}
	return &hexReader{text: text}, nil
}

func (r *hexReader) Offset() int { return r.off }
func (r *hexReader) Len() int    { return len(r.text) / 2 }

func (r *hexReader) Read(n int) ([]byte, error) {
	if err := checkRange(r.off, n, r.Len()); err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(r.text[2*r.off : 2*(r.off+n)])
	if err != nil {
		return nil, formatError("invalid hex in bytes %d..%d", r.off, r.off+n)
	}
	r.off += n
	return b, nil
}

func (r *hexReader) Seek(offset int) error {
	if err := checkRange(offset, 0, r.Len()); err != nil {
		return err
	}
	r.off = offset
	return nil
}

func (r *hexReader) Fork(offset int) (Reader, error) {
	if err := checkRange(offset, 0, r.Len()); err != nil {
		return nil, err
	}
	return &hexReader{text: r.text, off: offset}, nil
}

// BytesWriter collects binary output.
type BytesWriter struct {
	buf []byte
}

// NewBytesWriter creates a writer with room for size bytes.
func NewBytesWriter(size int) *BytesWriter {
	return &BytesWriter{buf: make([]byte, 0, size)}
}

func (w *BytesWriter) Write(p []byte) { w.buf = append(w.buf, p...) }
func (w *BytesWriter) Len() int       { return len(w.buf) }

// Bytes returns the output collected so far.
func (w *BytesWriter) Bytes() []byte { return w.buf }

// HexWriter collects output as lowercase hex text.
type HexWriter struct {
	sb     strings.Builder
	prefix int
}

// NewHexWriter creates a writer with room for size encoded bytes. If prefix is
// set the text starts with "0x".
func NewHexWriter(size int, prefix bool) *HexWriter {
	w := new(HexWriter)
	w.sb.Grow(2*size + 2)
	if prefix {
		w.sb.WriteString("0x")
		w.prefix = 2
	}
	return w
}

func (w *HexWriter) Write(p []byte) {
	var buf [2 * wordSize]byte
	for len(p) > 0 {
		n := len(p)
		if n > wordSize {
			n = wordSize
		}
		hex.Encode(buf[:], p[:n])
		w.sb.Write(buf[:2*n])
		p = p[n:]
	}
}

func (w *HexWriter) Len() int { return (w.sb.Len() - w.prefix) / 2 }

// String returns the text collected so far.
func (w *HexWriter) String() string { return w.sb.String() }

// writeUint writes n as a big-endian 32 byte word.
func writeUint(w Writer, n uint64) {
	var word [wordSize]byte
	binary.BigEndian.PutUint64(word[wordSize-8:], n)
	w.Write(word[:])
}

// writeZeros writes n zero bytes.
func writeZeros(w Writer, n int) {
	for n > 0 {
		k := n
		if k > wordSize {
			k = wordSize
		}
		w.Write(zeroWord[:k])
		n -= k
	}
}

// readLength reads a word holding an offset or an element count. The word is a
// uint256 and must fit into an int.
func readLength(r Reader) (int, error) {
	pos := r.Offset()
	word, err := r.Read(wordSize)
	if err != nil {
		return 0, err
	}
	var v uint256.Int
	v.SetBytes32(word)
	if !v.IsUint64() || v.Uint64() > math.MaxInt {
		return 0, fmt.Errorf("%w: length word %s at offset %d overflows int", ErrBounds, v.Hex(), pos)
	}
	return int(v.Uint64()), nil
}

// padding returns the number of zero bytes that align n to a word boundary.
func padding(n int) int {
	return (wordSize - n%wordSize) % wordSize
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
