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

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderGroupGolden(t *testing.T) {
	fns := []Function{
		{
			Name:       "nvim_buf_line_count",
			Since:      1,
			Method:     true,
			ReturnType: "Integer",
			Parameters: []Parameter{{Type: "Buffer", Name: "buffer"}},
		},
		{
			Name:       "nvim_buf_set_name",
			Since:      1,
			Method:     true,
			ReturnType: "void",
			Parameters: []Parameter{{Type: "Buffer", Name: "buffer"}, {Type: "String", Name: "name"}},
		},
	}

	rfs, err := BuildRenderedFunctions(GroupBuffer, fns)
	if err != nil {
		t.Fatalf("BuildRenderedFunctions: %v", err)
	}
	got, err := RenderGroup(GroupBuffer, rfs)
	if err != nil {
		t.Fatalf("RenderGroup: %v", err)
	}

	want := `// Code generated by apigen from the Neovim API manifest. DO NOT EDIT.
//
// This file holds the Buffer group.

package nvim

// LineCount calls nvim_buf_line_count.
//
// Since: 1
func (b Buffer) LineCount() (int, error) {
	r, err := b.session.call("nvim_buf_line_count", b)
	if err != nil {
		return 0, err
	}
	return int(r.Int()), nil
}

// SetName calls nvim_buf_set_name.
//
// Since: 1
func (b Buffer) SetName(name string) error {
	_, err := b.session.call("nvim_buf_set_name", b, name)
	return err
}
`

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("rendered output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderGroupIdempotent(t *testing.T) {
	fns := []Function{{
		Name:       "nvim_win_get_cursor",
		Since:      1,
		Method:     true,
		ReturnType: "ArrayOf(Integer, 2)",
		Parameters: []Parameter{{Type: "Window", Name: "window"}},
	}}

	render := func() []byte {
		t.Helper()
		rfs, err := BuildRenderedFunctions(GroupWindow, fns)
		if err != nil {
			t.Fatalf("BuildRenderedFunctions: %v", err)
		}
		src, err := RenderGroup(GroupWindow, rfs)
		if err != nil {
			t.Fatalf("RenderGroup: %v", err)
		}
		return src
	}

	first := render()
	second := render()
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("two renders of the same manifest differ:\n%s", diff)
	}
}
