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

// Batch collects API calls and executes them atomically via
// nvim_call_atomic: Neovim runs them without interleaving redraws, other
// clients' requests, or user interaction in between. A Batch does not
// support concurrent use by the application; build it, Call into it, then
// Execute it on one goroutine.
type Batch struct {
	session *Session
	methods []string
	calls   []msgpack.Value
	results []msgpack.Value
}

// NewBatch creates a new, empty Batch bound to s.
func (s *Session) NewBatch() *Batch {
	return &Batch{session: s}
}

// Call queues method with args for atomic execution.
func (b *Batch) Call(method string, args ...interface{}) {
	b.methods = append(b.methods, method)
	b.calls = append(b.calls, msgpack.Array([]msgpack.Value{
		msgpack.String(method),
		msgpack.Array(msgpack.PutAll(args...)),
	}))
}

// BatchError reports which queued call in a Batch failed.
type BatchError struct {
	// Index is the zero-based index of the call which failed, or -1 if
	// Neovim's response did not have the expected shape.
	Index int
	Err   error
}

func (e *BatchError) Error() string { return e.Err.Error() }
func (e *BatchError) Unwrap() error { return e.Err }

// Execute runs the queued calls atomically. Results of calls preceding a
// failure are available via Result; Execute returns a *BatchError naming
// the index of the first call that failed. The Batch is reset (ready to
// queue a fresh set of calls) whether or not Execute succeeds.
func (b *Batch) Execute() error {
	methods := b.methods
	calls := b.calls
	defer func() {
		b.methods = nil
		b.calls = nil
	}()

	v, err := b.session.Call("nvim_call_atomic", calls)
	if err != nil {
		return fixError("nvim_call_atomic", err)
	}

	arr := v.AsArray()
	if len(arr) != 2 {
		return &BatchError{Index: -1, Err: errNvimCallAtomicShape}
	}
	b.results = arr[0].AsArray()

	errEntry := arr[1]
	if errEntry.IsNil() {
		return nil
	}
	errArr := errEntry.AsArray()
	if len(errArr) != 3 {
		return &BatchError{Index: -1, Err: errNvimCallAtomicShape}
	}
	idx := int(errArr[0].AsInt())
	msg := errArr[2].AsString()
	if idx < 0 || idx >= len(methods) {
		return &BatchError{Index: idx, Err: errNvimCallAtomicShape}
	}
	var callErr error
	switch errArr[1].AsInt() {
	case exceptionError:
		callErr = fmt.Errorf("nvim:%s exception: %s", methods[idx], msg)
	case validationError:
		callErr = fmt.Errorf("nvim:%s validation: %s", methods[idx], msg)
	default:
		callErr = fmt.Errorf("nvim:%s: %s", methods[idx], msg)
	}
	return &BatchError{Index: idx, Err: callErr}
}

// Result returns the raw result Value of the i'th queued call after a
// successful (or partially successful) Execute.
func (b *Batch) Result(i int) msgpack.Value {
	if i < 0 || i >= len(b.results) {
		return msgpack.Nil
	}
	return b.results[i]
}

type protocolMessageError struct {
	method  string
	message string
}

func (e *protocolMessageError) Error() string { return "nvim:" + e.method + ": " + e.message }

var errNvimCallAtomicShape = &protocolMessageError{method: "nvim_call_atomic", message: "unexpected result shape"}
