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
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

// renderedFunction is the per-method view fed to fileTemplate.
type renderedFunction struct {
	GoName       string
	Since        int
	ManifestName string
	Receiver     string
	ReceiverVar  string
	Params       []renderedParam
	HasHandle    bool // true when the receiver itself must be passed as call arg 0
	ReturnType   string // "" for void
	ZeroReturn   string
	Conversion   string // e.g. "int(r.Int())", "" for void
}

type renderedParam struct {
	Name string
	Type string
}

const fileTemplateText = `// Code generated by apigen from the Neovim API manifest. DO NOT EDIT.
//
// This file holds the {{.GroupTitle}} group.

package nvim
{{range .Functions}}
// {{.GoName}} calls {{.ManifestName}}.
//
// Since: {{.Since}}
func ({{.ReceiverVar}} {{.Receiver}}) {{.GoName}}({{paramList .Params}}) {{if .ReturnType}}({{.ReturnType}}, error){{else}}error{{end}} {
{{- if .ReturnType}}
	r, err := {{.ReceiverVar}}.session.call("{{.ManifestName}}"{{callArgs .ReceiverVar .HasHandle .Params}})
	if err != nil {
		return {{.ZeroReturn}}, err
	}
	return {{.Conversion}}, nil
{{- else}}
	_, err := {{.ReceiverVar}}.session.call("{{.ManifestName}}"{{callArgs .ReceiverVar .HasHandle .Params}})
	return err
{{- end}}
}
{{end}}`

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"paramList": func(ps []renderedParam) string {
		parts := make([]string, len(ps))
		for i, p := range ps {
			parts[i] = p.Name + " " + p.Type
		}
		return strings.Join(parts, ", ")
	},
	// callArgs renders the argument list that follows the method-name string
	// literal, including its leading comma, so a call with no arguments does
	// not end up with a dangling separator.
	"callArgs": func(recv string, hasHandle bool, ps []renderedParam) string {
		parts := make([]string, 0, len(ps)+1)
		if hasHandle {
			parts = append(parts, recv)
		}
		for _, p := range ps {
			parts = append(parts, p.Name)
		}
		if len(parts) == 0 {
			return ""
		}
		return ", " + strings.Join(parts, ", ")
	},
}).Parse(fileTemplateText))

// RenderGroup renders the Go source for one handle group's functions. The
// receiver variable and stripped handle parameter for non-Nvim groups have
// already been applied by BuildRenderedFunctions.
func RenderGroup(group Group, fns []renderedFunction) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		GroupTitle string
		Functions  []renderedFunction
	}{
		GroupTitle: strings.Title(string(group)), //nolint:staticcheck // group names are plain ASCII
		Functions:  fns,
	}
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("apigen: rendering group %s: %w", group, err)
	}
	return buf.Bytes(), nil
}

// GroupFileName returns the output file name for a rendered group, e.g.
// "buffer_generated.go".
func GroupFileName(outDir string, group Group) string {
	return filepath.Join(outDir, string(group)+"_generated.go")
}

// BuildRenderedFunctions converts manifest Functions belonging to group
// into the template view, applying handle-parameter stripping, reserved-word
// renaming, and return-type conversion selection.
func BuildRenderedFunctions(group Group, fns []Function) ([]renderedFunction, error) {
	receiver := map[Group]string{
		GroupNvim:    "*Nvim",
		GroupBuffer:  "Buffer",
		GroupTabpage: "Tabpage",
		GroupWindow:  "Window",
	}[group]
	receiverVar := map[Group]string{
		GroupNvim:    "v",
		GroupBuffer:  "b",
		GroupTabpage: "t",
		GroupWindow:  "w",
	}[group]

	var out []renderedFunction
	for _, fn := range fns {
		_, stripped := PartitionGroup(fn.Name)
		goName := pascalCase(stripped)

		params := fn.Parameters
		if group != GroupNvim && len(params) > 0 {
			params = params[1:] // elide the handle receiver parameter
		}

		rps := make([]renderedParam, 0, len(params))
		for _, p := range params {
			goType, err := GoType(p.Type)
			if err != nil {
				return nil, fmt.Errorf("apigen: %s: %w", fn.Name, err)
			}
			rps = append(rps, renderedParam{Name: RenameReserved(p.Name), Type: goType})
		}

		retType, err := GoType(fn.ReturnType)
		if err != nil {
			return nil, fmt.Errorf("apigen: %s: %w", fn.Name, err)
		}

		rf := renderedFunction{
			GoName:       goName,
			Since:        fn.Since,
			ManifestName: fn.Name,
			Receiver:     receiver,
			ReceiverVar:  receiverVar,
			Params:       rps,
			HasHandle:    group != GroupNvim,
			ReturnType:   retType,
		}
		if retType != "" {
			zero, conv := conversionFor(retType, receiverVar)
			if conv == "" {
				// A composite with no accessor on the result type: hand the
				// caller the raw decoded Value instead of emitting a method
				// body that cannot convert it.
				retType, zero, conv = "interface{}", "nil", "r.Value()"
				rf.ReturnType = retType
			}
			rf.ZeroReturn, rf.Conversion = zero, conv
		}
		out = append(out, rf)
	}
	return out, nil
}

// conversionFor returns the zero value literal and the r.* accessor
// expression used to convert a raw call result into goType.
func conversionFor(goType, receiverVar string) (zero, conv string) {
	switch goType {
	case "int":
		return "0", "int(r.Int())"
	case "float64":
		return "0", "r.Float()"
	case "bool":
		return "false", "r.Bool()"
	case "string":
		return `""`, "r.String()"
	case "[]byte":
		return "nil", "r.Binary()"
	case "[]string":
		return "nil", "r.Strings()"
	case "[]DictEntry":
		return "nil", "r.Dict()"
	case "interface{}":
		return "nil", "r.Value()"
	case "[]interface{}":
		return "nil", "r.Value().AsArray()"
	case "Buffer":
		return "Buffer{}", fmt.Sprintf("r.Buffer(%s.session)", receiverVar)
	case "Window":
		return "Window{}", fmt.Sprintf("r.Window(%s.session)", receiverVar)
	case "Tabpage":
		return "Tabpage{}", fmt.Sprintf("r.Tabpage(%s.session)", receiverVar)
	case "[]Buffer":
		return "nil", fmt.Sprintf("r.Buffers(%s.session)", receiverVar)
	case "[]Window":
		return "nil", fmt.Sprintf("r.Windows(%s.session)", receiverVar)
	case "[]Tabpage":
		return "nil", fmt.Sprintf("r.Tabpages(%s.session)", receiverVar)
	case "[2]int":
		return "[2]int{}", "r.IntPair()"
	default:
		// No accessor exists for fixed-size tuples other than [2]int;
		// BuildRenderedFunctions falls back to a raw Value return for these.
		return "", ""
	}
}

// pascalCase converts a manifest snake_case identifier (already stripped
// of its nvim_/nvim_buf_/... prefix) to an exported Go method name.
func pascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}
