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

package transport

import (
	"context"
	"io"
	"testing"
	"time"
)

func TestDialTCPRoundTrip(t *testing.T) {
	ln, err := ListenTCP("127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenTCP: %v", err)
	}
	defer ln.Close()

	accepted := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			accepted <- err
			return
		}
		defer conn.Close()
		buf := make([]byte, 5)
		if _, err := io.ReadFull(conn, buf); err != nil {
			accepted <- err
			return
		}
		if string(buf) != "hello" {
			accepted <- err
			return
		}
		_, err = conn.Write([]byte("world"))
		accepted <- err
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tr, err := DialTCP(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("DialTCP: %v", err)
	}
	defer tr.Close()

	if tr.Kind() != TCP {
		t.Errorf("Kind() = %v, want TCP", tr.Kind())
	}
	if _, err := tr.Writer().Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf := make([]byte, 5)
	if _, err := io.ReadFull(tr.Reader(), buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "world" {
		t.Errorf("read %q, want %q", buf, "world")
	}
	if err := <-accepted; err != nil {
		t.Fatalf("server side: %v", err)
	}
}

func TestDialTCPConnectionError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err := DialTCP(ctx, "127.0.0.1:1")
	if err == nil {
		t.Fatal("expected an error dialing a closed port")
	}
	var ce *ConnectionError
	if !asConnectionError(err, &ce) {
		t.Fatalf("err = %v (%T), want *ConnectionError", err, err)
	}
	if ce.Kind != TCP {
		t.Errorf("Kind = %v, want TCP", ce.Kind)
	}
}

func asConnectionError(err error, target **ConnectionError) bool {
	ce, ok := err.(*ConnectionError)
	if ok {
		*target = ce
	}
	return ok
}

func TestNewPipe(t *testing.T) {
	r, w := io.Pipe()
	tr := NewPipe(Stdio, r, w, multiCloserTest{r, w})
	if tr.Kind() != Stdio {
		t.Errorf("Kind() = %v, want Stdio", tr.Kind())
	}
	if err := tr.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

type multiCloserTest []io.Closer

func (m multiCloserTest) Close() error {
	for _, c := range m {
		c.Close()
	}
	return nil
}
