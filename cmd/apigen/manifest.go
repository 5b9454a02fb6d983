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

// Package main implements apigen, the offline code generator that turns
// Neovim's self-described API manifest into the typed wrapper methods
// checked into the nvim package.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/rclawlor/nvim-rpc/msgpack"
)

// Parameter is one (type, name) pair of a manifest function's parameter
// list, before any renaming or handle-stripping.
type Parameter struct {
	Type string
	Name string
}

// Function is one entry of the manifest's "functions" array, with the
// fields this generator cares about.
type Function struct {
	Name            string
	Since           int
	DeprecatedSince int
	Deprecated      bool
	Parameters      []Parameter
	ReturnType      string
	Method          bool
}

// Manifest is the subset of the decoded API manifest apigen needs: the
// function table. "version" and "types" are read by FetchManifest but not
// otherwise used by this generator.
type Manifest struct {
	Functions []Function
}

// FetchManifest spawns nvimPath with the flag that causes Neovim to print
// its self-describing API manifest to standard output, decodes the
// resulting msgpack document, and extracts the function table.
func FetchManifest(ctx context.Context, nvimPath string) (*Manifest, error) {
	cmd := exec.CommandContext(ctx, nvimPath, "--api-info")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("apigen: running %s --api-info: %w", nvimPath, err)
	}
	return ParseManifest(out.Bytes())
}

// ParseManifest decodes a raw manifest document. It is split out from
// FetchManifest so tests can exercise it against a fixture without
// spawning a real editor.
func ParseManifest(raw []byte) (*Manifest, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	v, err := msgpack.DecodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("apigen: decoding manifest: %w", err)
	}
	if v.Kind() != msgpack.KindMap {
		return nil, fmt.Errorf("apigen: manifest is not a map")
	}

	functionsVal, ok := v.MapGet("functions")
	if !ok {
		return nil, fmt.Errorf("apigen: manifest has no \"functions\" key")
	}

	var fns []Function
	for _, fv := range functionsVal.AsArray() {
		fn, skip, err := parseFunction(fv)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		fns = append(fns, fn)
	}
	return &Manifest{Functions: fns}, nil
}

func parseFunction(v msgpack.Value) (fn Function, skip bool, err error) {
	if v.Kind() != msgpack.KindMap {
		return Function{}, false, fmt.Errorf("apigen: function entry is not a map")
	}

	name, _ := v.MapGet("name")
	fn.Name = name.AsString()

	if since, ok := v.MapGet("since"); ok {
		fn.Since = int(since.AsInt())
	}
	if depSince, ok := v.MapGet("deprecated_since"); ok && !depSince.IsNil() {
		fn.Deprecated = true
		fn.DeprecatedSince = int(depSince.AsInt())
	}
	if method, ok := v.MapGet("method"); ok {
		fn.Method = method.AsBool()
	}
	if ret, ok := v.MapGet("return_type"); ok {
		fn.ReturnType = ret.AsString()
	}
	if params, ok := v.MapGet("parameters"); ok {
		for _, pv := range params.AsArray() {
			pair := pv.AsArray()
			if len(pair) != 2 {
				continue
			}
			fn.Parameters = append(fn.Parameters, Parameter{
				Type: pair[0].AsString(),
				Name: pair[1].AsString(),
			})
		}
	}

	// Deprecated entries never reach the renderer.
	return fn, fn.Deprecated, nil
}
