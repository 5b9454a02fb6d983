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
	"syscall"

	"golang.org/x/sys/unix"
)

// embedProcAttr asks the kernel to deliver SIGTERM to the embedded Neovim
// process if this process dies first, so an aborted test run or crashed
// caller never leaves an orphaned editor instance behind.
var embedProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}

// killProcess sends SIGKILL directly via unix.Kill, used by Close's
// grace-timeout path when the child does not exit on its own.
func killProcess(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}
