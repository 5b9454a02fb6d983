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

package transport

import "net"

// ListenTCP opens a plain TCP listener on addr. The SO_REUSEADDR tuning
// ListenTCP applies on Unix does not translate to Windows' differing socket
// reuse semantics, so this is an ordinary net.Listen.
func ListenTCP(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
