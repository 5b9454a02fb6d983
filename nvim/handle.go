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

import (
	"fmt"

	"github.com/rclawlor/nvim-rpc/msgpack"
)

// Extension type tags Neovim uses for its three handle kinds, per
// :help api-types.
const (
	bufferExtType  = 0
	windowExtType  = 1
	tabpageExtType = 2
)

// Nvim is the handle for the global API namespace: functions that are not
// scoped to a buffer, window or tab page.
type Nvim struct {
	session *Session
}

// Session returns the Session this handle calls through.
func (v *Nvim) Session() *Session { return v.session }

// GetApiInfo returns the channel id and API metadata dictionary Nvim
// reports for this connection; it is the same manifest apigen decodes
// offline, but fetched live over the channel.
func (v *Nvim) GetApiInfo() (int, []DictEntry, error) {
	r, err := v.session.call("nvim_get_api_info")
	if err != nil {
		return 0, nil, err
	}
	arr := r.Value().AsArray()
	if len(arr) != 2 {
		return 0, nil, fmt.Errorf("nvim:nvim_get_api_info: unexpected result shape")
	}
	return int(arr[0].AsInt()), arr[1].AsMap(), nil
}

// Buffer is a handle to a remote buffer. It is cheap to copy: copying a
// Buffer creates another view onto the same underlying session and the
// same buffer identity.
type Buffer struct {
	data    msgpack.Value
	session *Session
}

// Tabpage is a handle to a remote tab page.
type Tabpage struct {
	data    msgpack.Value
	session *Session
}

// Window is a handle to a remote window.
type Window struct {
	data    msgpack.Value
	session *Session
}

// MarshalValue renders b's stored handle payload verbatim, so it round
// trips back to Neovim exactly as received.
func (b Buffer) MarshalValue() msgpack.Value { return b.data }

// MarshalValue renders t's stored handle payload verbatim.
func (t Tabpage) MarshalValue() msgpack.Value { return t.data }

// MarshalValue renders w's stored handle payload verbatim.
func (w Window) MarshalValue() msgpack.Value { return w.data }

func newBuffer(data msgpack.Value, s *Session) Buffer   { return Buffer{data: data, session: s} }
func newTabpage(data msgpack.Value, s *Session) Tabpage { return Tabpage{data: data, session: s} }
func newWindow(data msgpack.Value, s *Session) Window   { return Window{data: data, session: s} }

func (b Buffer) String() string  { return fmt.Sprintf("Buffer(%v)", b.data) }
func (t Tabpage) String() string { return fmt.Sprintf("Tabpage(%v)", t.data) }
func (w Window) String() string  { return fmt.Sprintf("Window(%v)", w.data) }

// asBuffer converts a raw result Value returned by a call into a Buffer
// bound to s. It panics if v is not an extension-typed handle; generated
// call sites only use it on return positions the API manifest has already
// told us are Buffer-typed.
func asBuffer(v msgpack.Value, s *Session) Buffer {
	ext := v.AsExtension()
	return newBuffer(msgpack.Ext(ext.Type, ext.Data), s)
}

func asTabpage(v msgpack.Value, s *Session) Tabpage {
	ext := v.AsExtension()
	return newTabpage(msgpack.Ext(ext.Type, ext.Data), s)
}

func asWindow(v msgpack.Value, s *Session) Window {
	ext := v.AsExtension()
	return newWindow(msgpack.Ext(ext.Type, ext.Data), s)
}

// asBufferSlice converts a result array of handle Values into a []Buffer.
func asBufferSlice(v msgpack.Value, s *Session) []Buffer {
	arr := v.AsArray()
	out := make([]Buffer, len(arr))
	for i, e := range arr {
		out[i] = asBuffer(e, s)
	}
	return out
}

func asWindowSlice(v msgpack.Value, s *Session) []Window {
	arr := v.AsArray()
	out := make([]Window, len(arr))
	for i, e := range arr {
		out[i] = asWindow(e, s)
	}
	return out
}

func asTabpageSlice(v msgpack.Value, s *Session) []Tabpage {
	arr := v.AsArray()
	out := make([]Tabpage, len(arr))
	for i, e := range arr {
		out[i] = asTabpage(e, s)
	}
	return out
}

// asIntPair converts a two-element integer array result (a mark, cursor or
// position) into a [2]int.
func asIntPair(v msgpack.Value) [2]int {
	arr := v.AsArray()
	if len(arr) != 2 {
		return [2]int{}
	}
	return [2]int{int(arr[0].AsInt()), int(arr[1].AsInt())}
}

// asStringSlice converts a result array of string Values into a []string.
func asStringSlice(v msgpack.Value) []string {
	arr := v.AsArray()
	out := make([]string, len(arr))
	for i, e := range arr {
		out[i] = e.AsString()
	}
	return out
}

// DictEntry is the Go representation of a manifest Dictionary return/param
// type: an ordered sequence of (Value, Value) pairs.
type DictEntry = msgpack.MapEntry

func asDict(v msgpack.Value) []DictEntry { return v.AsMap() }
