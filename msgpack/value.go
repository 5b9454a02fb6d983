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

import "fmt"

// Kind identifies which field of a Value is meaningful.
type Kind int

// Value kinds.
const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBinary
	KindArray
	KindMap
	KindExtension
)

// MapEntry is one key/value pair of a Value of kind KindMap. Keys are
// arbitrary Values, not just strings, and order is preserved on the wire.
type MapEntry struct {
	Key   Value
	Value Value
}

// Extension is the opaque payload of a msgpack extension type. Editor
// handles (Buffer/Tabpage/Window) are carried as Extension values; the
// library never interprets the bytes, only forwards them.
type Extension struct {
	Type int
	Data []byte
}

// Value is the msgpack-RPC wire value lattice: nil, bool, signed/unsigned
// integer, float, string, binary, array, map and extension. Exactly one
// field is meaningful, selected by Kind.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	bin  []byte
	arr  []Value
	m    []MapEntry
	ext  Extension
}

// Kind reports which accessor is valid for v.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v holds nil.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Nil is the nil Value.
var Nil = Value{kind: KindNil}

// Bool returns a Value holding b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a Value holding the signed integer i.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint returns a Value holding the unsigned integer u.
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// Float returns a Value holding the floating point number f.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a Value holding the utf-8 string s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Binary returns a Value holding the binary blob p.
func Binary(p []byte) Value { return Value{kind: KindBinary, bin: p} }

// Array returns a Value holding the ordered sequence vs.
func Array(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// Map returns a Value holding the ordered key/value sequence entries.
func Map(entries []MapEntry) Value { return Value{kind: KindMap, m: entries} }

// Ext returns a Value holding an extension-typed blob. Handle objects use
// this to carry their payload verbatim.
func Ext(typ int, data []byte) Value {
	return Value{kind: KindExtension, ext: Extension{Type: typ, Data: data}}
}

// AsBool returns v's boolean value. It panics if v.Kind() != KindBool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns v's integer value, widening KindUint if necessary. It
// panics if v is neither KindInt nor KindUint.
func (v Value) AsInt() int64 {
	if v.kind == KindUint {
		return int64(v.u)
	}
	return v.i
}

// AsUint returns v's unsigned integer value. It panics if v is neither
// KindInt nor KindUint.
func (v Value) AsUint() uint64 {
	if v.kind == KindInt {
		return uint64(v.i)
	}
	return v.u
}

// AsFloat returns v's floating point value.
func (v Value) AsFloat() float64 { return v.f }

// AsString returns v's string value.
func (v Value) AsString() string { return v.s }

// AsBinary returns v's binary value.
func (v Value) AsBinary() []byte { return v.bin }

// AsArray returns v's array elements.
func (v Value) AsArray() []Value { return v.arr }

// AsMap returns v's map entries.
func (v Value) AsMap() []MapEntry { return v.m }

// AsExtension returns v's extension payload.
func (v Value) AsExtension() Extension { return v.ext }

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindUint:
		return fmt.Sprintf("%d", v.u)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return v.s
	case KindBinary:
		return fmt.Sprintf("%x", v.bin)
	case KindArray:
		return fmt.Sprintf("%v", v.arr)
	case KindMap:
		return fmt.Sprintf("%v", v.m)
	case KindExtension:
		return fmt.Sprintf("ext(%d, %x)", v.ext.Type, v.ext.Data)
	default:
		return "<invalid>"
	}
}

// Put converts a native Go value into the wire Value lattice. It handles
// nil, bool, the fixed-width integer and float kinds, string, []byte,
// []Value, []string, []MapEntry (treated as a map) and any type
// implementing ValueMarshaler (handle objects return their stored payload
// verbatim). PutAll applies Put to a heterogeneous argument list and is the
// building block generated call sites use to build a params array.
func Put(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Nil
	case Value:
		return x
	case ValueMarshaler:
		return x.MarshalValue()
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		return Binary(x)
	case []Value:
		return Array(x)
	case []string:
		vs := make([]Value, len(x))
		for i, s := range x {
			vs[i] = String(s)
		}
		return Array(vs)
	case []MapEntry:
		return Map(x)
	case []interface{}:
		return Array(PutAll(x...))
	default:
		return Array(nil)
	}
}

// ValueMarshaler is implemented by types (handle objects, in particular)
// that know how to render themselves as a wire Value.
type ValueMarshaler interface {
	MarshalValue() Value
}

// PutAll converts a heterogeneous argument list into an ordered sequence of
// Values, in order. It is the building block for assembling a Request's
// params array in generated call sites.
func PutAll(args ...interface{}) []Value {
	vs := make([]Value, len(args))
	for i, a := range args {
		vs[i] = Put(a)
	}
	return vs
}

// Encode writes v to enc.
func (v Value) Encode(enc *Encoder) error {
	switch v.kind {
	case KindNil:
		return enc.PackNil()
	case KindBool:
		return enc.PackBool(v.b)
	case KindInt:
		return enc.PackInt(v.i)
	case KindUint:
		return enc.PackUint(v.u)
	case KindFloat:
		return enc.PackFloat(v.f)
	case KindString:
		return enc.PackString(v.s)
	case KindBinary:
		return enc.PackBinary(v.bin)
	case KindArray:
		if err := enc.PackArrayLen(int64(len(v.arr))); err != nil {
			return err
		}
		for _, e := range v.arr {
			if err := e.Encode(enc); err != nil {
				return err
			}
		}
		return nil
	case KindMap:
		if err := enc.PackMapLen(int64(len(v.m))); err != nil {
			return err
		}
		for _, e := range v.m {
			if err := e.Key.Encode(enc); err != nil {
				return err
			}
			if err := e.Value.Encode(enc); err != nil {
				return err
			}
		}
		return nil
	case KindExtension:
		return enc.PackExtension(v.ext.Type, v.ext.Data)
	default:
		return fmt.Errorf("msgpack: cannot encode value of kind %d", v.kind)
	}
}

// DecodeValue reads one complete Value from dec.
func DecodeValue(dec *Decoder) (Value, error) {
	if err := dec.Unpack(); err != nil {
		return Value{}, err
	}
	return decodeValue(dec)
}

// decodeValue converts the value most recently read by dec.Unpack into a
// Value, recursing into arrays and maps via further Unpack calls.
func decodeValue(dec *Decoder) (Value, error) {
	switch dec.Type() {
	case TypeNil:
		return Value{kind: KindNil}, nil
	case TypeBool:
		return Bool(dec.Bool()), nil
	case TypeInt:
		return Int(dec.Int()), nil
	case TypeUint:
		return Uint(dec.Uint()), nil
	case TypeFloat:
		return Float(dec.Float()), nil
	case TypeString:
		return String(dec.String()), nil
	case TypeBinary:
		return Binary(dec.Bytes()), nil
	case TypeExtension:
		return Ext(dec.Extension(), dec.Bytes()), nil
	case TypeArrayLen:
		n := dec.Int()
		vs := make([]Value, n)
		for i := range vs {
			if err := dec.Unpack(); err != nil {
				return Value{}, err
			}
			ev, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			vs[i] = ev
		}
		return Array(vs), nil
	case TypeMapLen:
		n := dec.Int()
		entries := make([]MapEntry, n)
		for i := range entries {
			if err := dec.Unpack(); err != nil {
				return Value{}, err
			}
			k, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			if err := dec.Unpack(); err != nil {
				return Value{}, err
			}
			val, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			entries[i] = MapEntry{Key: k, Value: val}
		}
		return Map(entries), nil
	default:
		return Value{}, fmt.Errorf("msgpack: unexpected type %s while decoding value", dec.Type())
	}
}

// MapGet looks up key by string equality in an ordered map Value. It
// returns Nil, false if absent or v is not a map.
func (v Value) MapGet(key string) (Value, bool) {
	if v.kind != KindMap {
		return Nil, false
	}
	for _, e := range v.m {
		if e.Key.kind == KindString && e.Key.s == key {
			return e.Value, true
		}
	}
	return Nil, false
}
