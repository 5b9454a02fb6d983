package msgpack

import (
	"bytes"
	"testing"
)

func roundtripValue(t *testing.T, v Value) Value {
	t.Helper()
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := v.Encode(enc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	dec := NewDecoder(&buf)
	got, err := DecodeValue(dec)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	return got
}

func TestValueRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"nil", Nil},
		{"bool true", Bool(true)},
		{"bool false", Bool(false)},
		{"int", Int(-42)},
		{"uint", Uint(42)},
		{"float", Float(3.5)},
		{"string", String("hello")},
		{"binary", Binary([]byte{1, 2, 3})},
		{"array", Array([]Value{Int(1), String("two"), Bool(true)})},
		{"map", Map([]MapEntry{{Key: String("a"), Value: Int(1)}})},
		{"extension", Ext(5, []byte{0xde, 0xad})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundtripValue(t, tt.v)
			if got.Kind() != tt.v.Kind() {
				t.Fatalf("Kind() = %v, want %v", got.Kind(), tt.v.Kind())
			}
			if got.String() != tt.v.String() {
				t.Errorf("String() = %q, want %q", got.String(), tt.v.String())
			}
		})
	}
}

func TestValueIntUintWidening(t *testing.T) {
	// A positive integer packed as Int decodes back with AsInt() and
	// AsUint() agreeing regardless of whether the decoder classified it as
	// signed or unsigned.
	got := roundtripValue(t, Int(5))
	if got.AsInt() != 5 {
		t.Errorf("AsInt() = %d, want 5", got.AsInt())
	}
	if got.AsUint() != 5 {
		t.Errorf("AsUint() = %d, want 5", got.AsUint())
	}
}

func TestPutAll(t *testing.T) {
	vs := PutAll(1, "two", true, []byte{3})
	if len(vs) != 4 {
		t.Fatalf("len = %d, want 4", len(vs))
	}
	if vs[0].Kind() != KindInt || vs[0].AsInt() != 1 {
		t.Errorf("vs[0] = %v", vs[0])
	}
	if vs[1].Kind() != KindString || vs[1].AsString() != "two" {
		t.Errorf("vs[1] = %v", vs[1])
	}
	if vs[2].Kind() != KindBool || !vs[2].AsBool() {
		t.Errorf("vs[2] = %v", vs[2])
	}
	if vs[3].Kind() != KindBinary {
		t.Errorf("vs[3] = %v", vs[3])
	}
}

type fakeHandle struct{ data Value }

func (h fakeHandle) MarshalValue() Value { return h.data }

func TestPutValueMarshaler(t *testing.T) {
	h := fakeHandle{data: Ext(0, []byte{7})}
	got := Put(h)
	if got.Kind() != KindExtension || got.AsExtension().Type != 0 {
		t.Errorf("Put(handle) = %v, want extension payload preserved verbatim", got)
	}
}

func TestMapGet(t *testing.T) {
	m := Map([]MapEntry{
		{Key: String("version"), Value: Int(7)},
		{Key: String("functions"), Value: Array(nil)},
	})
	v, ok := m.MapGet("version")
	if !ok || v.AsInt() != 7 {
		t.Errorf("MapGet(version) = %v, %v", v, ok)
	}
	if _, ok := m.MapGet("missing"); ok {
		t.Error("MapGet(missing) returned ok=true")
	}
}
