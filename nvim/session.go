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

// Package nvim is a typed client for Neovim's msgpack-RPC API. A Session
// wraps one rpc.Client; Nvim, Buffer, Tabpage and Window wrap a shared
// reference to a Session and expose the editor's remote API as ordinary Go
// methods.
package nvim

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rclawlor/nvim-rpc/msgpack"
	"github.com/rclawlor/nvim-rpc/rpc"
	"github.com/rclawlor/nvim-rpc/transport"
)

// Session owns one transport-specific client and hands out shared
// references to handle objects (Nvim, Buffer, Tabpage, Window). Cloning a
// Session reference (see Ref) creates another view onto the same
// underlying transport; mutation of the pending-call table is serialized
// inside the Client by a lock, so multiple goroutines may share a Session
// freely.
type Session struct {
	client *rpc.Client
	t      *transport.Transport

	// cmd is set by NewChildProcess when this session owns a spawned
	// Neovim process; Close waits on it after the transport shuts down.
	cmd *exec.Cmd
}

func newSession(t *transport.Transport, opts ...rpc.ClientOption) *Session {
	return &Session{client: rpc.NewClient(t, opts...), t: t}
}

// NewTCP dials a TCP address (host:port) and returns a Session.
func NewTCP(ctx context.Context, addr string, opts ...rpc.ClientOption) (*Session, error) {
	t, err := transport.DialTCP(ctx, addr)
	if err != nil {
		return nil, err
	}
	return newSession(t, opts...), nil
}

// NewStdio wraps this process's inherited standard input/output as a
// Session. Used when Neovim embeds this program as a child and talks to it
// over its stdio.
func NewStdio(opts ...rpc.ClientOption) *Session {
	return newSession(transport.NewStdio(), opts...)
}

// Dial dials addr, choosing the Unix or TCP variant the way
// $NVIM_LISTEN_ADDRESS is interpreted: addresses containing a colon are
// treated as host:port, everything else as a filesystem path to a Unix
// domain socket.
//
//	:help rpc-connecting
//	:help $NVIM_LISTEN_ADDRESS
func Dial(ctx context.Context, addr string, opts ...rpc.ClientOption) (*Session, error) {
	if strings.Contains(addr, ":") {
		return NewTCP(ctx, addr, opts...)
	}
	return newUnix(ctx, addr, opts...)
}

// StartEventLoop spawns the reader worker in its own goroutine. Must be
// called exactly once before any inbound request or notification can be
// observed, and before a Call's response can ever arrive.
func (s *Session) StartEventLoop() {
	s.client.StartEventLoop()
}

// Serve runs the reader worker on the calling goroutine; it blocks until
// Neovim disconnects or an unrecoverable decode error occurs.
func (s *Session) Serve() error {
	return s.client.Serve()
}

// Call issues a raw msgpack-RPC call. Handle methods are thin wrappers
// around this; applications normally prefer the typed methods on Nvim,
// Buffer, Tabpage and Window.
func (s *Session) Call(method string, params ...interface{}) (msgpack.Value, error) {
	return s.client.Call(method, msgpack.PutAll(params...))
}

// Notify sends a fire-and-forget notification.
func (s *Session) Notify(method string, params ...interface{}) error {
	return s.client.Notify(method, msgpack.PutAll(params...))
}

// Close releases the resources used by the session's transport. If the
// Session owns a child process (see NewChildProcess), Close also waits for
// it to exit, forcing termination if it does not within a grace period.
func (s *Session) Close() error {
	err := s.client.Close()
	if cerr := s.closeChild(); err == nil {
		err = cerr
	}
	return err
}

// Nvim returns the global-namespace handle bound to this session.
func (s *Session) Nvim() *Nvim {
	return &Nvim{session: s}
}
