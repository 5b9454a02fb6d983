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

package msgpack

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Type identifies the MessagePack type of the value most recently read by
// Decoder.Unpack.
type Type int

// Types returned by Decoder.Type.
const (
	TypeInvalid Type = iota
	TypeNil
	TypeBool
	TypeInt
	TypeUint
	TypeFloat
	TypeBinary
	TypeString
	TypeArrayLen
	TypeMapLen
	TypeExtension
)

func (t Type) String() string {
	switch t {
	case TypeNil:
		return "Nil"
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeUint:
		return "Uint"
	case TypeFloat:
		return "Float"
	case TypeBinary:
		return "Binary"
	case TypeString:
		return "String"
	case TypeArrayLen:
		return "ArrayLen"
	case TypeMapLen:
		return "MapLen"
	case TypeExtension:
		return "Extension"
	default:
		return "Invalid"
	}
}

// Decoder reads MessagePack-encoded primitives from an input stream one
// value at a time.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r   *bufio.Reader
	typ Type
	n   int64
	f   float64
	b   bool
	raw []byte
	ext int
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// Type returns the type of the value most recently read by Unpack.
func (d *Decoder) Type() Type { return d.typ }

// Int returns the value most recently read by Unpack as an int64. It is only
// valid when Type() == Int.
func (d *Decoder) Int() int64 { return d.n }

// Uint returns the value most recently read by Unpack as a uint64. It is
// only valid when Type() == Uint.
func (d *Decoder) Uint() uint64 { return uint64(d.n) }

// Float returns the value most recently read by Unpack. It is only valid
// when Type() == Float.
func (d *Decoder) Float() float64 { return d.f }

// Bool returns the value most recently read by Unpack. It is only valid
// when Type() == Bool.
func (d *Decoder) Bool() bool { return d.b }

// Bytes returns a copy of the byte payload most recently read by Unpack. It
// is valid when Type() is Binary, String or Extension.
func (d *Decoder) Bytes() []byte {
	p := make([]byte, len(d.raw))
	copy(p, d.raw)
	return p
}

// BytesNoCopy returns the byte payload most recently read by Unpack without
// copying. The slice is only valid until the next call to Unpack.
func (d *Decoder) BytesNoCopy() []byte { return d.raw }

// String returns the byte payload most recently read by Unpack as a string.
func (d *Decoder) String() string { return string(d.raw) }

// Extension returns the extension type tag most recently read by Unpack. It
// is only valid when Type() == Extension.
func (d *Decoder) Extension() int { return d.ext }

// Unpack reads the next MessagePack value's header (and, for scalar types,
// its payload) from the stream. Callers drain array and map elements with
// subsequent calls to Unpack. Unpack returns io.EOF when the stream is
// exhausted at a value boundary.
func (d *Decoder) Unpack() error {
	tag, err := d.r.ReadByte()
	if err != nil {
		return err
	}

	switch {
	case tag <= 0x7f:
		d.typ, d.n = TypeInt, int64(tag)
	case tag >= 0xe0:
		d.typ, d.n = TypeInt, int64(int8(tag))
	case tag >= 0x80 && tag <= 0x8f:
		d.typ, d.n = TypeMapLen, int64(tag&0x0f)
	case tag >= 0x90 && tag <= 0x9f:
		d.typ, d.n = TypeArrayLen, int64(tag&0x0f)
	case tag >= 0xa0 && tag <= 0xbf:
		return d.readString(int64(tag & 0x1f))
	default:
		return d.unpackExplicit(tag)
	}
	return nil
}

func (d *Decoder) unpackExplicit(tag byte) error {
	switch tag {
	case 0xc0:
		d.typ = TypeNil
	case 0xc2:
		d.typ, d.b = TypeBool, false
	case 0xc3:
		d.typ, d.b = TypeBool, true
	case 0xc4:
		return d.readBinaryLen(1)
	case 0xc5:
		return d.readBinaryLen(2)
	case 0xc6:
		return d.readBinaryLen(4)
	case 0xc7:
		return d.readExtensionLen(1)
	case 0xc8:
		return d.readExtensionLen(2)
	case 0xc9:
		return d.readExtensionLen(4)
	case 0xca:
		n, err := d.readUint(4)
		if err != nil {
			return err
		}
		d.typ, d.f = TypeFloat, float64(math.Float32frombits(uint32(n)))
	case 0xcb:
		n, err := d.readUint(8)
		if err != nil {
			return err
		}
		d.typ, d.f = TypeFloat, math.Float64frombits(n)
	case 0xcc:
		return d.readUintN(1)
	case 0xcd:
		return d.readUintN(2)
	case 0xce:
		return d.readUintN(4)
	case 0xcf:
		return d.readUintN(8)
	case 0xd0:
		return d.readIntN(1)
	case 0xd1:
		return d.readIntN(2)
	case 0xd2:
		return d.readIntN(4)
	case 0xd3:
		return d.readIntN(8)
	case 0xd4:
		return d.readExtensionFixed(1)
	case 0xd5:
		return d.readExtensionFixed(2)
	case 0xd6:
		return d.readExtensionFixed(4)
	case 0xd7:
		return d.readExtensionFixed(8)
	case 0xd8:
		return d.readExtensionFixed(16)
	case 0xd9:
		return d.readStringLen(1)
	case 0xda:
		return d.readStringLen(2)
	case 0xdb:
		return d.readStringLen(4)
	case 0xdc:
		return d.readLen(TypeArrayLen, 2)
	case 0xdd:
		return d.readLen(TypeArrayLen, 4)
	case 0xde:
		return d.readLen(TypeMapLen, 2)
	case 0xdf:
		return d.readLen(TypeMapLen, 4)
	default:
		return fmt.Errorf("msgpack: unknown tag byte 0x%02x", tag)
	}
	return nil
}

func (d *Decoder) readUint(n int) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(d.r, buf[:n]); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<8 | uint64(buf[i])
	}
	return v, nil
}

func (d *Decoder) readUintN(n int) error {
	v, err := d.readUint(n)
	if err != nil {
		return err
	}
	d.typ, d.n = TypeUint, int64(v)
	return nil
}

func (d *Decoder) readIntN(n int) error {
	v, err := d.readUint(n)
	if err != nil {
		return err
	}
	var signed int64
	switch n {
	case 1:
		signed = int64(int8(v))
	case 2:
		signed = int64(int16(v))
	case 4:
		signed = int64(int32(v))
	default:
		signed = int64(v)
	}
	d.typ, d.n = TypeInt, signed
	return nil
}

func (d *Decoder) readLen(t Type, n int) error {
	v, err := d.readUint(n)
	if err != nil {
		return err
	}
	d.typ, d.n = t, int64(v)
	return nil
}

func (d *Decoder) readStringLen(n int) error {
	v, err := d.readUint(n)
	if err != nil {
		return err
	}
	return d.readString(int64(v))
}

func (d *Decoder) readString(n int64) error {
	p := make([]byte, n)
	if _, err := io.ReadFull(d.r, p); err != nil {
		return err
	}
	d.typ, d.raw = TypeString, p
	return nil
}

func (d *Decoder) readBinaryLen(n int) error {
	v, err := d.readUint(n)
	if err != nil {
		return err
	}
	p := make([]byte, v)
	if _, err := io.ReadFull(d.r, p); err != nil {
		return err
	}
	d.typ, d.raw = TypeBinary, p
	return nil
}

func (d *Decoder) readExtensionLen(n int) error {
	v, err := d.readUint(n)
	if err != nil {
		return err
	}
	return d.readExtensionFixed(int(v))
}

func (d *Decoder) readExtensionFixed(n int) error {
	tagByte, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	p := make([]byte, n)
	if _, err := io.ReadFull(d.r, p); err != nil {
		return err
	}
	d.typ, d.ext, d.raw = TypeExtension, int(int8(tagByte)), p
	return nil
}
