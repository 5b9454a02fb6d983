package msgpack

import (
	"reflect"
	"testing"
)

var packUnpackTests = []struct {
	name string
	// values handed to pack, see common_test.go for the type mapping
	packed []interface{}
	// values expected back from unpack
	unpacked []interface{}
}{
	{"nil", []interface{}{nil}, []interface{}{nil}},
	{"bool", []interface{}{true, false}, []interface{}{true, false}},
	{"fixint", []interface{}{int64(0), int64(0x7f)}, []interface{}{0, 0x7f}},
	{"negative fixint", []interface{}{int64(-1), int64(-32)}, []interface{}{-1, -32}},
	{"int8", []interface{}{int64(-33), int64(-0x80)}, []interface{}{-33, -0x80}},
	{"int16", []interface{}{int64(-0x81), int64(-0x8000)}, []interface{}{-0x81, -0x8000}},
	{"int32", []interface{}{int64(-0x8001), int64(-0x80000000)}, []interface{}{-0x8001, -0x80000000}},
	{"int64", []interface{}{int64(-0x80000001)}, []interface{}{-0x80000001}},
	{"uint8", []interface{}{uint64(0x80), uint64(0xff)}, []interface{}{0x80, 0xff}},
	{"uint16", []interface{}{uint64(0x100), uint64(0xffff)}, []interface{}{0x100, 0xffff}},
	{"uint32", []interface{}{uint64(0x10000), uint64(0xffffffff)}, []interface{}{0x10000, 0xffffffff}},
	{"uint64", []interface{}{uint64(0x100000000)}, []interface{}{0x100000000}},
	{"float", []interface{}{float64(1.23456)}, []interface{}{1.23456}},
	{"fixstr", []interface{}{"", "hello"}, []interface{}{"", "hello"}},
	{"str8", []interface{}{string(make([]byte, 0x20))}, []interface{}{string(make([]byte, 0x20))}},
	{"bin", []interface{}{[]byte{1, 2, 3}}, []interface{}{[]byte{1, 2, 3}}},
	{"fixarray", []interface{}{arrayLen(2), int64(1), int64(2)}, []interface{}{arrayLen(2), 1, 2}},
	{"array16", []interface{}{arrayLen(0x10)}, []interface{}{arrayLen(0x10)}},
	{"fixmap", []interface{}{mapLen(1), "k", int64(1)}, []interface{}{mapLen(1), "k", 1}},
	{"map16", []interface{}{mapLen(0x10)}, []interface{}{mapLen(0x10)}},
	{"fixext", []interface{}{extension{1, "x"}}, []interface{}{extension{1, "x"}}},
	{"ext8", []interface{}{extension{2, "12345"}}, []interface{}{extension{2, "12345"}}},
}

func TestPackUnpack(t *testing.T) {
	for _, tt := range packUnpackTests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pack(tt.packed...)
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			got, err := unpack(p)
			if err != nil {
				t.Fatalf("unpack: %v", err)
			}
			if !reflect.DeepEqual(got, tt.unpacked) {
				t.Errorf("unpack(pack(%v)) = %v, want %v", tt.packed, got, tt.unpacked)
			}
		})
	}
}
