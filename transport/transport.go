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

// Package transport unifies the three concrete byte-stream back-ends a
// Neovim client can speak over: a TCP connection, a Unix domain socket, and
// the inherited standard input/output of a process Neovim embeds as a
// child. All three expose the same Transport contract so that rpc.Client
// does not need to know which one it was handed.
package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
)

// Kind identifies which concrete back-end a Transport wraps.
type Kind int

// The three transport variants this library supports.
const (
	TCP Kind = iota
	Unix
	Stdio
)

func (k Kind) String() string {
	switch k {
	case TCP:
		return "tcp"
	case Unix:
		return "unix"
	case Stdio:
		return "stdio"
	default:
		return "unknown"
	}
}

// ConnectionError reports failure to establish or open a Transport.
type ConnectionError struct {
	Kind Kind
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Kind, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Transport is a tagged union over the concrete byte-stream pair used to
// talk to Neovim. Reader returns the owned read half, meant to be moved
// into exactly one reader worker. Writer returns the shared write half;
// callers are responsible for serializing writes to it (rpc.Client does
// this with a mutex around each encode-and-flush).
type Transport struct {
	kind   Kind
	reader io.Reader
	writer io.Writer
	closer io.Closer
}

// Kind reports which concrete back-end t wraps.
func (t *Transport) Kind() Kind { return t.kind }

// Reader returns t's read half.
func (t *Transport) Reader() io.Reader { return t.reader }

// Writer returns t's write half.
func (t *Transport) Writer() io.Writer { return t.writer }

// Close closes both halves of the transport.
func (t *Transport) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// DialTCP opens a TCP connection to addr (host:port).
func DialTCP(ctx context.Context, addr string) (*Transport, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &ConnectionError{Kind: TCP, Addr: addr, Err: err}
	}
	return &Transport{kind: TCP, reader: conn, writer: conn, closer: conn}, nil
}

// NewStdio wraps the inherited standard input and standard output of this
// process as a Transport. Used when Neovim embeds this program as a child
// and communicates with it over its stdio, per :help rpc-connecting.
func NewStdio() *Transport {
	return &Transport{kind: Stdio, reader: os.Stdin, writer: os.Stdout, closer: os.Stdout}
}

// NewPipe wraps an already-established reader/writer/closer triple as a
// Transport. It is used by NewChildProcess (nvim package) to wrap a child
// process's stdout/stdin pipes, which do not share a single net.Conn-style
// handle the way TCP and Unix connections do.
func NewPipe(kind Kind, r io.Reader, w io.Writer, c io.Closer) *Transport {
	return &Transport{kind: kind, reader: r, writer: w, closer: c}
}
