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

//go:build windows

package nvim

import (
	"context"
	"fmt"

	"github.com/rclawlor/nvim-rpc/rpc"
)

// NewUnix is intentionally not defined on windows: there is no Unix domain
// socket transport to construct one over. Dial falls back to reporting a
// connection error for non-TCP addresses instead.
func newUnix(ctx context.Context, path string, opts ...rpc.ClientOption) (*Session, error) {
	return nil, fmt.Errorf("nvim: unix domain sockets are not supported on this platform (address %q)", path)
}
