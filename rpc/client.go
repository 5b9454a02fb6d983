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

// Package rpc implements the msgpack-RPC concurrent call multiplexer: it
// issues requests, tracks pending correlations by id, dispatches inbound
// traffic from the reader worker, and returns results to the right caller
// with timeout semantics.
package rpc

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/rclawlor/nvim-rpc/msgpack"
	"github.com/rclawlor/nvim-rpc/transport"
)

// DefaultRequestTimeout is the per-call deadline used when no
// WithRequestTimeout option is given to NewClient.
const DefaultRequestTimeout = 1 * time.Second

// ClientOption configures a Client created by NewClient.
type ClientOption struct {
	f func(*clientOptions)
}

type clientOptions struct {
	requestTimeout      time.Duration
	logf                func(string, ...interface{})
	requestHandler      RequestHandler
	notificationHandler NotificationHandler
}

// WithRequestTimeout overrides the default one-second per-call deadline.
func WithRequestTimeout(d time.Duration) ClientOption {
	return ClientOption{func(o *clientOptions) { o.requestTimeout = d }}
}

// WithLogf overrides the function used to log reader-loop errors and
// recovered handler panics. log.Printf is used by default.
func WithLogf(logf func(string, ...interface{})) ClientOption {
	return ClientOption{func(o *clientOptions) { o.logf = logf }}
}

// WithRequestHandler installs the handler invoked for inbound requests.
// DefaultRequestHandler is used if this option is not given.
func WithRequestHandler(h RequestHandler) ClientOption {
	return ClientOption{func(o *clientOptions) { o.requestHandler = h }}
}

// WithNotificationHandler installs the handler invoked for inbound
// notifications. DefaultNotificationHandler is used if this option is not
// given.
func WithNotificationHandler(h NotificationHandler) ClientOption {
	return ClientOption{func(o *clientOptions) { o.notificationHandler = h }}
}

type callResult struct {
	result msgpack.Value
	err    error
}

// Client owns one transport and multiplexes concurrent Call invocations
// over it. A Client is safe for concurrent use by multiple goroutines.
type Client struct {
	t *transport.Transport

	requestTimeout      time.Duration
	logf                func(string, ...interface{})
	requestHandler      RequestHandler
	notificationHandler NotificationHandler

	idMu    sync.Mutex
	nextID  uint64
	pending map[uint64]chan callResult

	writerMu sync.Mutex
	enc      *msgpack.Encoder

	dec *msgpack.Decoder

	// serveDone is closed when the reader worker exits; callers blocked in
	// Call observe it and fail with ChannelErr instead of waiting out their
	// full timeout on a stream that can no longer deliver.
	serveDone chan struct{}
	doneOnce  sync.Once

	closeOnce sync.Once
	closeErr  error
}

// NewClient constructs a Client over t. The caller must run Serve (directly
// or via StartEventLoop) for the client to ever see responses or inbound
// traffic.
func NewClient(t *transport.Transport, options ...ClientOption) *Client {
	opts := &clientOptions{
		requestTimeout:      DefaultRequestTimeout,
		logf:                log.Printf,
		requestHandler:      DefaultRequestHandler,
		notificationHandler: DefaultNotificationHandler,
	}
	for _, o := range options {
		o.f(opts)
	}

	return &Client{
		t:                   t,
		requestTimeout:      opts.requestTimeout,
		logf:                opts.logf,
		requestHandler:      opts.requestHandler,
		notificationHandler: opts.notificationHandler,
		pending:             make(map[uint64]chan callResult),
		enc:                 msgpack.NewEncoder(t.Writer()),
		dec:                 msgpack.NewDecoder(t.Reader()),
		serveDone:           make(chan struct{}),
	}
}

// Call issues method with params and blocks until a response is correlated
// back to this call's id, the request timeout elapses, or the reader
// worker has stopped. It may be called concurrently from any number of
// goroutines.
func (c *Client) Call(method string, params []msgpack.Value) (msgpack.Value, error) {
	select {
	case <-c.serveDone:
		return msgpack.Nil, &ChannelErr{Method: method}
	default:
	}

	id := c.nextRequestID()

	ch := make(chan callResult, 1)
	c.idMu.Lock()
	c.pending[id] = ch
	c.idMu.Unlock()

	if err := c.writeFrame(msgpack.Request(id, method, params)); err != nil {
		c.idMu.Lock()
		delete(c.pending, id)
		c.idMu.Unlock()
		return msgpack.Nil, &EncodeErr{Method: method, Err: err}
	}

	select {
	case res, ok := <-ch:
		if !ok {
			return msgpack.Nil, &ChannelErr{Method: method}
		}
		return res.result, res.err
	case <-c.serveDone:
		// The reader exited while we were waiting; drain a response that may
		// have been delivered in the same instant before giving up.
		select {
		case res, ok := <-ch:
			if ok {
				return res.result, res.err
			}
		default:
		}
		return msgpack.Nil, &ChannelErr{Method: method}
	case <-time.After(c.requestTimeout):
		return msgpack.Nil, &TimeoutErr{Method: method}
	}
}

// Notify sends a fire-and-forget notification; it never waits for a peer
// response because msgpack-RPC notifications have none.
func (c *Client) Notify(method string, params []msgpack.Value) error {
	if err := c.writeFrame(msgpack.Notification(method, params)); err != nil {
		return &EncodeErr{Method: method, Err: err}
	}
	return nil
}

func (c *Client) nextRequestID() uint64 {
	c.idMu.Lock()
	defer c.idMu.Unlock()
	id := c.nextID
	c.nextID++
	return id
}

func (c *Client) writeFrame(f msgpack.Frame) error {
	c.writerMu.Lock()
	defer c.writerMu.Unlock()
	return msgpack.EncodeFrame(c.enc, f)
}

// Serve runs the reader worker: it decodes frames from the transport until
// end-of-stream or an unrecoverable decode error, dispatching each to the
// pending-call table or to the inbound handlers. Serve blocks until the
// stream ends; it is typically run in its own goroutine via
// StartEventLoop.
func (c *Client) Serve() error {
	for {
		f, err := msgpack.DecodeFrame(c.dec)
		if err != nil {
			c.doneOnce.Do(func() { close(c.serveDone) })
			c.failAllPending()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch f.Kind {
		case msgpack.FrameResponse:
			c.dispatchResponse(f)
		case msgpack.FrameRequest:
			c.dispatchRequest(f)
		case msgpack.FrameNotification:
			c.dispatchNotification(f)
		}
	}
}

// StartEventLoop spawns Serve in its own goroutine and returns immediately.
// Errors are reported asynchronously through logf; pending Call invocations
// observe them as ChannelErr once their channel is closed.
func (c *Client) StartEventLoop() {
	go func() {
		if err := c.Serve(); err != nil {
			c.logf("rpc: Serve exited: %v", err)
		}
	}()
}

func (c *Client) dispatchResponse(f msgpack.Frame) {
	c.idMu.Lock()
	ch, ok := c.pending[f.ID]
	if ok {
		delete(c.pending, f.ID)
	}
	c.idMu.Unlock()

	if !ok {
		// Race with a timed-out caller: drop silently.
		return
	}

	res := callResult{result: f.Result}
	if !f.Error.IsNil() {
		res.err = &ProtocolErr{Value: f.Error}
	}
	ch <- res
}

func (c *Client) dispatchRequest(f msgpack.Frame) {
	result, err := c.safeHandleRequest(f.ID, f.Method, f.Params)

	resp := msgpack.Response(f.ID, msgpack.Nil, result)
	if err != nil {
		resp = msgpack.Response(f.ID, errorValue(err), msgpack.Nil)
	}

	if werr := c.writeFrame(resp); werr != nil {
		c.logf("rpc: writing response for %q: %v", f.Method, werr)
	}
}

func (c *Client) safeHandleRequest(id uint64, method string, params []msgpack.Value) (result msgpack.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logf("rpc: request handler for %q panicked: %v", method, r)
			result, err = msgpack.Nil, &NotImplementedErr{Method: method}
		}
	}()
	return c.requestHandler.HandleRequest(id, method, params)
}

func (c *Client) dispatchNotification(f msgpack.Frame) {
	defer func() {
		if r := recover(); r != nil {
			c.logf("rpc: notification handler for %q panicked: %v", f.Method, r)
		}
	}()
	c.notificationHandler.HandleNotification(f.Method, f.Params)
}

func errorValue(err error) msgpack.Value {
	var pe *ProtocolErr
	if errors.As(err, &pe) {
		return pe.Value
	}
	return msgpack.String(err.Error())
}

// failAllPending closes every still-registered pending call channel and
// clears the table, so callers blocked in Call observe ChannelErr instead of
// hanging until their timeout once the reader worker has died.
func (c *Client) failAllPending() {
	c.idMu.Lock()
	pending := c.pending
	c.pending = make(map[uint64]chan callResult)
	c.idMu.Unlock()

	for _, ch := range pending {
		close(ch)
	}
}

// Close closes the underlying transport. Any reader worker blocked in
// Serve observes end-of-stream or an I/O error on its next read attempt
// and returns.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.t.Close()
	})
	return c.closeErr
}
