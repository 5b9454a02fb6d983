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

import "github.com/rclawlor/nvim-rpc/msgpack"

// RequestHandler serves an inbound request routed back from Neovim (most
// commonly rpcrequest() calls targeting this client's channel). It is
// invoked from the reader worker goroutine and must be safe to call from
// that goroutine; it must not block on another pending Call from the same
// client or the reader worker deadlocks.
type RequestHandler interface {
	HandleRequest(id uint64, method string, params []msgpack.Value) (msgpack.Value, error)
}

// NotificationHandler serves an inbound notification (rpcnotify()). Its
// return value is ignored; a panic recovered while running it is logged,
// not propagated, so one misbehaving handler cannot kill the reader
// worker.
type NotificationHandler interface {
	HandleNotification(method string, params []msgpack.Value)
}

// RequestHandlerFunc adapts a function to a RequestHandler.
type RequestHandlerFunc func(id uint64, method string, params []msgpack.Value) (msgpack.Value, error)

// HandleRequest calls f.
func (f RequestHandlerFunc) HandleRequest(id uint64, method string, params []msgpack.Value) (msgpack.Value, error) {
	return f(id, method, params)
}

// NotificationHandlerFunc adapts a function to a NotificationHandler.
type NotificationHandlerFunc func(method string, params []msgpack.Value)

// HandleNotification calls f.
func (f NotificationHandlerFunc) HandleNotification(method string, params []msgpack.Value) {
	f(method, params)
}

// defaultRequestHandler rejects every inbound request with NotImplementedErr.
type defaultRequestHandler struct{}

func (defaultRequestHandler) HandleRequest(id uint64, method string, params []msgpack.Value) (msgpack.Value, error) {
	return msgpack.Nil, &NotImplementedErr{Method: method}
}

// DefaultRequestHandler is used when a Client is constructed without an
// explicit RequestHandler.
var DefaultRequestHandler RequestHandler = defaultRequestHandler{}

// defaultNotificationHandler silently discards every inbound notification.
type defaultNotificationHandler struct{}

func (defaultNotificationHandler) HandleNotification(method string, params []msgpack.Value) {}

// DefaultNotificationHandler is used when a Client is constructed without
// an explicit NotificationHandler.
var DefaultNotificationHandler NotificationHandler = defaultNotificationHandler{}
