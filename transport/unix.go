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

package transport

import (
	"context"
	"net"
)

// DialUnix opens a Unix domain socket connection to the filesystem path
// addr. On platforms without Unix sockets this constructor does not exist.
func DialUnix(ctx context.Context, addr string) (*Transport, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", addr)
	if err != nil {
		return nil, &ConnectionError{Kind: Unix, Addr: addr, Err: err}
	}
	return &Transport{kind: Unix, reader: conn, writer: conn, closer: conn}, nil
}
