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
	"testing"
)

func TestChildProcessOptionsApply(t *testing.T) {
	ctx := context.Background()
	o := &childProcessOptions{command: "nvim", ctx: context.Background()}
	for _, opt := range []ChildProcessOption{
		ChildProcessCommand("nvim-test"),
		ChildProcessArgs("--embed", "--headless"),
		ChildProcessDir("/tmp"),
		ChildProcessEnv([]string{"FOO=bar"}),
		ChildProcessContext(ctx),
	} {
		opt.f(o)
	}

	if o.command != "nvim-test" {
		t.Errorf("command = %q", o.command)
	}
	if len(o.args) != 2 || o.args[0] != "--embed" {
		t.Errorf("args = %v", o.args)
	}
	if o.dir != "/tmp" {
		t.Errorf("dir = %q", o.dir)
	}
	if len(o.env) != 1 || o.env[0] != "FOO=bar" {
		t.Errorf("env = %v", o.env)
	}
}

func TestCloseChildNoProcessIsNoop(t *testing.T) {
	s := &Session{}
	if err := s.closeChild(); err != nil {
		t.Errorf("closeChild() with no cmd = %v, want nil", err)
	}
}
