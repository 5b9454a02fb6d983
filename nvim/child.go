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
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/rclawlor/nvim-rpc/rpc"
	"github.com/rclawlor/nvim-rpc/transport"
)

// pipeCloser closes both halves of a spawned child's stdio pipes.
type pipeCloser struct {
	r io.Closer
	w io.Closer
}

func (c pipeCloser) Close() error {
	err := c.w.Close()
	if rerr := c.r.Close(); err == nil {
		err = rerr
	}
	return err
}

// ChildProcessOption configures NewChildProcess.
type ChildProcessOption struct {
	f func(*childProcessOptions)
}

type childProcessOptions struct {
	command string
	args    []string
	dir     string
	env     []string
	ctx     context.Context
	opts    []rpc.ClientOption
}

// ChildProcessCommand sets the command to run. "nvim" is used by default.
func ChildProcessCommand(command string) ChildProcessOption {
	return ChildProcessOption{func(o *childProcessOptions) { o.command = command }}
}

// ChildProcessArgs sets the command-line arguments. The caller must include
// "--embed" or any other flag that makes Neovim speak msgpack-RPC on its
// stdio, since NewChildProcess does not add it implicitly.
func ChildProcessArgs(args ...string) ChildProcessOption {
	return ChildProcessOption{func(o *childProcessOptions) { o.args = args }}
}

// ChildProcessDir sets the child's working directory.
func ChildProcessDir(dir string) ChildProcessOption {
	return ChildProcessOption{func(o *childProcessOptions) { o.dir = dir }}
}

// ChildProcessEnv sets the child's environment. The current process
// environment is inherited if this is never called.
func ChildProcessEnv(env []string) ChildProcessOption {
	return ChildProcessOption{func(o *childProcessOptions) { o.env = env }}
}

// ChildProcessContext sets the context governing the child process's
// lifetime; cancelling it kills the process the way exec.CommandContext
// does.
func ChildProcessContext(ctx context.Context) ChildProcessOption {
	return ChildProcessOption{func(o *childProcessOptions) { o.ctx = ctx }}
}

// ChildProcessClientOptions forwards rpc.ClientOption values (request
// timeout, logf) to the underlying Session.
func ChildProcessClientOptions(opts ...rpc.ClientOption) ChildProcessOption {
	return ChildProcessOption{func(o *childProcessOptions) { o.opts = opts }}
}

// NewChildProcess starts command as a child process and returns a Session
// wired to its standard input and output, for the common case of this
// library embedding a headless Neovim instance rather than being embedded
// by one. Most applications driving an editor Neovim itself spawned should
// use NewStdio instead.
func NewChildProcess(options ...ChildProcessOption) (*Session, error) {
	o := &childProcessOptions{command: "nvim", ctx: context.Background()}
	for _, opt := range options {
		opt.f(o)
	}

	cmd := exec.CommandContext(o.ctx, o.command, o.args...)
	cmd.Dir = o.dir
	cmd.Env = o.env
	cmd.SysProcAttr = embedProcAttr

	inw, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	outr, err := cmd.StdoutPipe()
	if err != nil {
		inw.Close()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	t := transport.NewPipe(transport.Stdio, outr, inw, pipeCloser{outr, inw})
	s := newSession(t, o.opts...)
	s.cmd = cmd
	s.StartEventLoop()
	return s, nil
}

// Close releases the session's transport and, if it owns a child process,
// waits for it to exit, forcing termination after a grace period.
func (s *Session) closeChild() error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		killProcess(s.cmd.Process.Pid)
		return <-done
	}
}
