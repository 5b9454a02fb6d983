// Copyright 2016 Gary Burd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package msgpack implements a low-level MessagePack encoder and decoder and
// the Value type used to carry msgpack-RPC payloads without an intermediate
// reflection-based marshaling step.
package msgpack

import (
	"bufio"
	"io"
	"math"
)

// Encoder writes MessagePack-encoded primitives to an output stream.
//
// An Encoder is not safe for concurrent use. Callers that share a single
// writer across goroutines (as rpc.Client does) must serialize access with
// their own lock.
type Encoder struct {
	w   *bufio.Writer
	buf [9]byte
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Encoder{w: bw}
}

// Flush writes any buffered data to the underlying io.Writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

// PackNil packs a nil value.
func (e *Encoder) PackNil() error {
	return e.w.WriteByte(0xc0)
}

// PackBool packs a boolean value.
func (e *Encoder) PackBool(b bool) error {
	if b {
		return e.w.WriteByte(0xc3)
	}
	return e.w.WriteByte(0xc2)
}

// PackInt packs a signed integer using the shortest MessagePack
// representation that preserves its value.
func (e *Encoder) PackInt(v int64) error {
	switch {
	case v >= 0:
		return e.PackUint(uint64(v))
	case v >= -32:
		return e.w.WriteByte(byte(v))
	case v >= math.MinInt8:
		return e.write(0xd0, byte(v))
	case v >= math.MinInt16:
		return e.write16(0xd1, uint16(v))
	case v >= math.MinInt32:
		return e.write32(0xd2, uint32(v))
	default:
		return e.write64(0xd3, uint64(v))
	}
}

// PackUint packs an unsigned integer using the shortest MessagePack
// representation that preserves its value.
func (e *Encoder) PackUint(v uint64) error {
	switch {
	case v <= 0x7f:
		return e.w.WriteByte(byte(v))
	case v <= math.MaxUint8:
		return e.write(0xcc, byte(v))
	case v <= math.MaxUint16:
		return e.write16(0xcd, uint16(v))
	case v <= math.MaxUint32:
		return e.write32(0xce, uint32(v))
	default:
		return e.write64(0xcf, v)
	}
}

// PackFloat packs a 64-bit floating-point value.
func (e *Encoder) PackFloat(v float64) error {
	return e.write64(0xcb, math.Float64bits(v))
}

// PackString packs s as a MessagePack str.
func (e *Encoder) PackString(s string) error {
	if err := e.packStrHeader(len(s)); err != nil {
		return err
	}
	_, err := e.w.WriteString(s)
	return err
}

// PackBinary packs p as a MessagePack bin.
func (e *Encoder) PackBinary(p []byte) error {
	n := len(p)
	switch {
	case n <= math.MaxUint8:
		if err := e.write(0xc4, byte(n)); err != nil {
			return err
		}
	case n <= math.MaxUint16:
		if err := e.write16(0xc5, uint16(n)); err != nil {
			return err
		}
	default:
		if err := e.write32(0xc6, uint32(n)); err != nil {
			return err
		}
	}
	_, err := e.w.Write(p)
	return err
}

// PackExtension packs p as a MessagePack ext with type tag k.
func (e *Encoder) PackExtension(k int, p []byte) error {
	n := len(p)
	switch n {
	case 1:
		if err := e.write(0xd4, byte(k)); err != nil {
			return err
		}
	case 2:
		if err := e.write(0xd5, byte(k)); err != nil {
			return err
		}
	case 4:
		if err := e.write(0xd6, byte(k)); err != nil {
			return err
		}
	case 8:
		if err := e.write(0xd7, byte(k)); err != nil {
			return err
		}
	case 16:
		if err := e.write(0xd8, byte(k)); err != nil {
			return err
		}
	default:
		switch {
		case n <= math.MaxUint8:
			if err := e.write(0xc7, byte(n)); err != nil {
				return err
			}
		case n <= math.MaxUint16:
			if err := e.write16(0xc8, uint16(n)); err != nil {
				return err
			}
		default:
			if err := e.write32(0xc9, uint32(n)); err != nil {
				return err
			}
		}
		if err := e.w.WriteByte(byte(k)); err != nil {
			return err
		}
	}
	_, err := e.w.Write(p)
	return err
}

// PackArrayLen packs the header for an array of n elements. The caller must
// follow with n Pack* calls for the elements.
func (e *Encoder) PackArrayLen(n int64) error {
	switch {
	case n <= 0xf:
		return e.w.WriteByte(0x90 | byte(n))
	case n <= math.MaxUint16:
		return e.write16(0xdc, uint16(n))
	default:
		return e.write32(0xdd, uint32(n))
	}
}

// PackMapLen packs the header for a map of n entries. The caller must follow
// with 2*n Pack* calls for the key/value pairs.
func (e *Encoder) PackMapLen(n int64) error {
	switch {
	case n <= 0xf:
		return e.w.WriteByte(0x80 | byte(n))
	case n <= math.MaxUint16:
		return e.write16(0xde, uint16(n))
	default:
		return e.write32(0xdf, uint32(n))
	}
}

func (e *Encoder) packStrHeader(n int) error {
	switch {
	case n <= 0x1f:
		return e.w.WriteByte(0xa0 | byte(n))
	case n <= math.MaxUint8:
		return e.write(0xd9, byte(n))
	case n <= math.MaxUint16:
		return e.write16(0xda, uint16(n))
	default:
		return e.write32(0xdb, uint32(n))
	}
}

func (e *Encoder) write(tag, b byte) error {
	e.buf[0] = tag
	e.buf[1] = b
	_, err := e.w.Write(e.buf[:2])
	return err
}

func (e *Encoder) write16(tag byte, v uint16) error {
	e.buf[0] = tag
	e.buf[1] = byte(v >> 8)
	e.buf[2] = byte(v)
	_, err := e.w.Write(e.buf[:3])
	return err
}

func (e *Encoder) write32(tag byte, v uint32) error {
	e.buf[0] = tag
	e.buf[1] = byte(v >> 24)
	e.buf[2] = byte(v >> 16)
	e.buf[3] = byte(v >> 8)
	e.buf[4] = byte(v)
	_, err := e.w.Write(e.buf[:5])
	return err
}

func (e *Encoder) write64(tag byte, v uint64) error {
	e.buf[0] = tag
	e.buf[1] = byte(v >> 56)
	e.buf[2] = byte(v >> 48)
	e.buf[3] = byte(v >> 40)
	e.buf[4] = byte(v >> 32)
	e.buf[5] = byte(v >> 24)
	e.buf[6] = byte(v >> 16)
	e.buf[7] = byte(v >> 8)
	e.buf[8] = byte(v)
	_, err := e.w.Write(e.buf[:9])
	return err
}
