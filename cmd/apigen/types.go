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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Group names functions are partitioned into, by manifest name prefix.
type Group string

// The four generated-file groups.
const (
	GroupNvim    Group = "nvim"
	GroupBuffer  Group = "buffer"
	GroupTabpage Group = "tabpage"
	GroupWindow  Group = "window"
)

var groupPrefix = map[Group]string{
	GroupBuffer:  "nvim_buf_",
	GroupTabpage: "nvim_tabpage_",
	GroupWindow:  "nvim_win_",
}

// PartitionGroup classifies a manifest function name by prefix and returns
// both the owning group and the name with that prefix stripped (for
// GroupNvim, name is returned unchanged with the generic "nvim_" prefix
// stripped instead, since Nvim methods have no handle receiver to elide).
func PartitionGroup(name string) (Group, string) {
	for g, prefix := range groupPrefix {
		if strings.HasPrefix(name, prefix) {
			return g, strings.TrimPrefix(name, prefix)
		}
	}
	return GroupNvim, strings.TrimPrefix(name, "nvim_")
}

// goReservedWords are Go keywords and predeclared identifiers that collide
// with common Neovim parameter names.
var goReservedWords = map[string]bool{
	"func": true, "type": true, "map": true, "range": true, "chan": true,
	"interface": true, "struct": true, "select": true, "var": true,
	"const": true, "import": true, "package": true, "return": true,
	"string": true, "error": true, "len": true,
}

// RenameReserved appends an underscore to name if it collides with a Go
// keyword or predeclared identifier, e.g. "fn" is not itself reserved in
// Go, but "func"/"type" are and commonly appear in the manifest as
// parameter names for callback and type arguments.
func RenameReserved(name string) string {
	if goReservedWords[name] {
		return name + "_"
	}
	return name
}

var arrayOfRe = regexp.MustCompile(`^ArrayOf\(([^,)]+)(?:,\s*(\d+))?\)$`)

// GoType maps a manifest type name to a Go type lattice and reports
// whether the callsite needs a result-conversion helper (handle types,
// Array-of-handle, Dictionary) versus a direct scalar conversion.
func GoType(manifest string) (goType string, err error) {
	switch manifest {
	case "Integer":
		return "int", nil
	case "Float":
		return "float64", nil
	case "Boolean":
		return "bool", nil
	case "void":
		return "", nil
	case "String":
		return "string", nil
	case "Array":
		return "[]interface{}", nil
	case "Object", "LuaRef":
		return "interface{}", nil
	case "Dictionary":
		return "[]DictEntry", nil
	case "Buffer":
		return "Buffer", nil
	case "Tabpage":
		return "Tabpage", nil
	case "Window":
		return "Window", nil
	}

	if m := arrayOfRe.FindStringSubmatch(manifest); m != nil {
		elem, err := GoType(m[1])
		if err != nil {
			return "", err
		}
		if m[2] == "" {
			return "[]" + elem, nil
		}
		n, convErr := strconv.Atoi(m[2])
		if convErr != nil {
			return "", fmt.Errorf("apigen: bad ArrayOf length %q: %w", m[2], convErr)
		}
		if n == 0 {
			return "", fmt.Errorf("apigen: ArrayOf(%s, 0) has no sensible fixed-size Go representation", m[1])
		}
		return fmt.Sprintf("[%d]%s", n, elem), nil
	}

	return "", fmt.Errorf("apigen: unknown manifest type %q", manifest)
}
