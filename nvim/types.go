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

// Mode describes Nvim's current mode, as returned by GetMode.
type Mode struct {
	// Mode is the current mode.
	Mode string

	// Blocking is true if Nvim is waiting for input.
	Blocking bool
}

// HLAttrs describes a highlight group's attributes.
type HLAttrs struct {
	Bold       bool
	Underline  bool
	Undercurl  bool
	Italic     bool
	Reverse    bool
	Foreground int
	Background int
	Special    int
}

// Mapping describes one key mapping, as returned by nvim_buf_get_keymap.
type Mapping struct {
	// LHS is the {lhs} of the mapping.
	LHS string

	// RHS is the {rhs} of the mapping as typed.
	RHS string

	// Silent is 1 for a |:map-silent| mapping, else 0.
	Silent int

	// NoRemap is 1 if the {rhs} of the mapping is not remappable.
	NoRemap int

	// Expr is 1 for an expression mapping.
	Expr int

	// Buffer is the buffer number for a local mapping.
	Buffer int

	// SID is the script-local ID, used for <sid> mappings.
	SID int

	// NoWait is 1 if the map does not wait for other, longer mappings.
	NoWait int

	// Mode specifies modes for which the mapping is defined.
	Mode string
}

// Client describes a channel's client-info dictionary, as set by
// nvim_set_client_info.
type Client struct {
	Name       string
	Version    map[string]interface{}
	Type       string
	Methods    map[string]interface{}
	Attributes map[string]interface{}
}

// Channel describes one open RPC channel, as returned by nvim_list_chans.
type Channel struct {
	ID     int
	Stream string
	Mode   string
	Pty    string
	Buffer string
	Client *Client
}

// Process describes one process in the output of nvim_get_proc_children.
type Process struct {
	Name string
	PID  int
	PPID int
}

// UI describes one attached UI, as returned by nvim_list_uis.
type UI struct {
	Height       int
	Width        int
	RGB          bool
	ExtPopupmenu bool
	ExtTabline   bool
	ExtCmdline   bool
	ExtWildmenu  bool
	ExtNewgrid   bool
	ExtHlstate   bool
	ChannelID    int
}
