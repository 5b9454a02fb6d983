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

package nvim

import "github.com/rclawlor/nvim-rpc/msgpack"

// resultValue wraps the raw Value a call returned and converts it to the
// declared Go return type of a generated method.
type resultValue struct {
	v msgpack.Value
}

func (r resultValue) Int() int64       { return r.v.AsInt() }
func (r resultValue) Uint() uint64     { return r.v.AsUint() }
func (r resultValue) Bool() bool       { return r.v.AsBool() }
func (r resultValue) Float() float64   { return r.v.AsFloat() }
func (r resultValue) String() string   { return r.v.AsString() }
func (r resultValue) Binary() []byte   { return r.v.AsBinary() }
func (r resultValue) Value() msgpack.Value { return r.v }

func (r resultValue) Strings() []string { return asStringSlice(r.v) }
func (r resultValue) Dict() []DictEntry { return asDict(r.v) }
func (r resultValue) IntPair() [2]int   { return asIntPair(r.v) }

func (r resultValue) Buffer(s *Session) Buffer   { return asBuffer(r.v, s) }
func (r resultValue) Window(s *Session) Window   { return asWindow(r.v, s) }
func (r resultValue) Tabpage(s *Session) Tabpage { return asTabpage(r.v, s) }

func (r resultValue) Buffers(s *Session) []Buffer   { return asBufferSlice(r.v, s) }
func (r resultValue) Windows(s *Session) []Window   { return asWindowSlice(r.v, s) }
func (r resultValue) Tabpages(s *Session) []Tabpage { return asTabpageSlice(r.v, s) }
