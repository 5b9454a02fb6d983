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
	"errors"
	"fmt"

	"github.com/rclawlor/nvim-rpc/msgpack"
	"github.com/rclawlor/nvim-rpc/rpc"
)

// Neovim's two well-known API error kinds, carried as the first element of
// a two-element ProtocolErr array [kind, message].
const (
	exceptionError  = 0
	validationError = 1
)

// fixError rewrites a raw *rpc.ProtocolErr from method into a message that
// names the failing API call and distinguishes an exception from a
// validation failure, the way Neovim's own clients report these.
func fixError(method string, err error) error {
	var pe *rpc.ProtocolErr
	if !errors.As(err, &pe) {
		return err
	}
	if arr := pe.Value.AsArray(); pe.Value.Kind() == msgpack.KindArray && len(arr) == 2 {
		switch arr[0].AsInt() {
		case exceptionError:
			return fmt.Errorf("nvim:%s exception: %v", method, arr[1])
		case validationError:
			return fmt.Errorf("nvim:%s validation: %v", method, arr[1])
		}
	}
	return fmt.Errorf("nvim:%s: %v", method, pe.Value)
}

// call issues method with args (each converted through the value adapter)
// and reports any error via fixError.
func (s *Session) call(method string, args ...interface{}) (resultValue, error) {
	v, err := s.Call(method, args...)
	if err != nil {
		return resultValue{}, fixError(method, err)
	}
	return resultValue{v}, nil
}
