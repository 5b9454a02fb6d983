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

//go:build !windows

package nvim

import (
	"context"

	"github.com/rclawlor/nvim-rpc/rpc"
	"github.com/rclawlor/nvim-rpc/transport"
)

// NewUnix dials a Unix domain socket at path and returns a Session. Absent
// on platforms without Unix sockets.
func NewUnix(ctx context.Context, path string, opts ...rpc.ClientOption) (*Session, error) {
	t, err := transport.DialUnix(ctx, path)
	if err != nil {
		return nil, err
	}
	return newSession(t, opts...), nil
}

func newUnix(ctx context.Context, path string, opts ...rpc.ClientOption) (*Session, error) {
	return NewUnix(ctx, path, opts...)
}
