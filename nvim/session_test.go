package nvim

import (
	"io"
	"testing"

	"github.com/rclawlor/nvim-rpc/msgpack"
	"github.com/rclawlor/nvim-rpc/rpc"
	"github.com/rclawlor/nvim-rpc/transport"
)

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type peer struct {
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

func newTestSession(t *testing.T, opts ...rpc.ClientOption) (*Session, *peer) {
	t.Helper()
	clientR, peerW := io.Pipe()
	peerR, clientW := io.Pipe()

	tr := transport.NewPipe(transport.Stdio, clientR, clientW, multiCloser{clientR, clientW})
	s := newSession(tr, opts...)
	s.StartEventLoop()

	return s, &peer{dec: msgpack.NewDecoder(peerR), enc: msgpack.NewEncoder(peerW)}
}

func (p *peer) readFrame(t *testing.T) msgpack.Frame {
	t.Helper()
	f, err := msgpack.DecodeFrame(p.dec)
	if err != nil {
		t.Fatalf("peer DecodeFrame: %v", err)
	}
	return f
}

func (p *peer) respond(t *testing.T, id uint64, errVal, result msgpack.Value) {
	t.Helper()
	if err := msgpack.EncodeFrame(p.enc, msgpack.Response(id, errVal, result)); err != nil {
		t.Fatalf("peer EncodeFrame: %v", err)
	}
}

func TestNvimGetCurrentBuf(t *testing.T) {
	s, p := newTestSession(t)
	defer s.Close()

	go func() {
		f := p.readFrame(t)
		if f.Method != "nvim_get_current_buf" {
			t.Errorf("method = %q", f.Method)
		}
		p.respond(t, f.ID, msgpack.Nil, msgpack.Ext(bufferExtType, []byte{3}))
	}()

	buf, err := s.Nvim().GetCurrentBuf()
	if err != nil {
		t.Fatalf("GetCurrentBuf: %v", err)
	}
	if buf.MarshalValue().AsExtension().Data[0] != 3 {
		t.Errorf("buf = %v", buf)
	}
}

func TestBufferMethodPrependsHandle(t *testing.T) {
	s, p := newTestSession(t)
	defer s.Close()

	buf := newBuffer(msgpack.Ext(bufferExtType, []byte{9}), s)

	go func() {
		f := p.readFrame(t)
		if f.Method != "nvim_buf_line_count" {
			t.Errorf("method = %q", f.Method)
			return
		}
		if len(f.Params) != 1 || f.Params[0].AsExtension().Data[0] != 9 {
			t.Errorf("params = %v, want handle payload prepended", f.Params)
			return
		}
		p.respond(t, f.ID, msgpack.Nil, msgpack.Int(42))
	}()

	n, err := buf.LineCount()
	if err != nil {
		t.Fatalf("LineCount: %v", err)
	}
	if n != 42 {
		t.Errorf("LineCount() = %d, want 42", n)
	}
}

func TestFixErrorException(t *testing.T) {
	s, p := newTestSession(t)
	defer s.Close()

	go func() {
		f := p.readFrame(t)
		p.respond(t, f.ID, msgpack.Array([]msgpack.Value{msgpack.Int(exceptionError), msgpack.String("boom")}), msgpack.Nil)
	}()

	_, err := s.Nvim().GetCurrentLine()
	if err == nil {
		t.Fatal("expected error")
	}
	want := "nvim:nvim_get_current_line exception: boom"
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}

func TestBatchExecute(t *testing.T) {
	s, p := newTestSession(t)
	defer s.Close()

	go func() {
		f := p.readFrame(t)
		if f.Method != "nvim_call_atomic" {
			t.Errorf("method = %q", f.Method)
			return
		}
		results := msgpack.Array([]msgpack.Value{msgpack.Int(1), msgpack.Int(2)})
		p.respond(t, f.ID, msgpack.Nil, msgpack.Array([]msgpack.Value{results, msgpack.Nil}))
	}()

	b := s.NewBatch()
	b.Call("nvim_command", "echo 1")
	b.Call("nvim_command", "echo 2")
	if err := b.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.Result(0).AsInt() != 1 || b.Result(1).AsInt() != 2 {
		t.Errorf("results = %v, %v", b.Result(0), b.Result(1))
	}
}

func TestBatchExecuteError(t *testing.T) {
	s, p := newTestSession(t)
	defer s.Close()

	go func() {
		f := p.readFrame(t)
		errEntry := msgpack.Array([]msgpack.Value{msgpack.Int(1), msgpack.Int(validationError), msgpack.String("bad arg")})
		p.respond(t, f.ID, msgpack.Nil, msgpack.Array([]msgpack.Value{msgpack.Array([]msgpack.Value{msgpack.Int(1)}), errEntry}))
	}()

	b := s.NewBatch()
	b.Call("nvim_command", "ok")
	b.Call("nvim_command", "bad")
	err := b.Execute()
	be, ok := err.(*BatchError)
	if !ok {
		t.Fatalf("err = %v (%T), want *BatchError", err, err)
	}
	if be.Index != 1 {
		t.Errorf("Index = %d, want 1", be.Index)
	}
	want := "nvim:nvim_command validation: bad arg"
	if be.Error() != want {
		t.Errorf("Error() = %q, want %q", be.Error(), want)
	}
}
