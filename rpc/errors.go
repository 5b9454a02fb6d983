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

package rpc

import (
	"fmt"

	"github.com/rclawlor/nvim-rpc/msgpack"
)

// TimeoutErr is returned by Client.Call when a pending call exceeds its
// request timeout. The pending table entry is not necessarily removed; a
// later response, if it ever arrives, is discarded by the reader worker.
type TimeoutErr struct {
	Method string
}

func (e *TimeoutErr) Error() string { return fmt.Sprintf("rpc: call %q timed out", e.Method) }

// ChannelErr is returned by Client.Call when the reader worker has exited
// (or never started) while a caller was waiting on its result channel.
type ChannelErr struct {
	Method string
}

func (e *ChannelErr) Error() string {
	return fmt.Sprintf("rpc: call %q: reader worker is not running", e.Method)
}

// EncodeErr wraps a failure to serialize an outgoing frame.
type EncodeErr struct {
	Method string
	Err    error
}

func (e *EncodeErr) Error() string { return fmt.Sprintf("rpc: encode %q: %v", e.Method, e.Err) }
func (e *EncodeErr) Unwrap() error { return e.Err }

// ProtocolErr wraps the non-nil error field of a Response frame: the peer
// rejected or failed the call.
type ProtocolErr struct {
	Value msgpack.Value
}

func (e *ProtocolErr) Error() string { return fmt.Sprintf("rpc: peer error: %v", e.Value) }

// NotImplementedErr is returned by DefaultRequestHandler for every method.
type NotImplementedErr struct {
	Method string
}

func (e *NotImplementedErr) Error() string {
	return fmt.Sprintf("rpc: method %q is not implemented", e.Method)
}
