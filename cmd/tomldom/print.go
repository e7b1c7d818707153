// Copyright 2024 The tomldom Authors
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
	"io"

	"github.com/kylelemons/godebug/pretty"

	"github.com/tomldom/tomldom/pkg/dom"
	"github.com/tomldom/tomldom/pkg/indent"
)

var prettyConfig = &pretty.Config{
	Compact: false,
}

// printTree writes name's built entries to w, one line per entry, with
// nested tables and arrays indented one level per level of nesting.
func printTree(w io.Writer, name string, root *dom.Root) {
	fmt.Fprintf(w, "%s:\n", name)
	writeEntries(indent.NewWriter(w, "  "), root.Entries())
}

func writeEntries(w io.Writer, entries *dom.Entries) {
	for _, e := range entries.Items() {
		writeEntry(w, e)
	}
}

func writeEntry(w io.Writer, e *dom.Entry) {
	switch v := e.Value.(type) {
	case *dom.Table:
		fmt.Fprintf(w, "%s:\n", e.Key.FullKey())
		writeEntries(indent.NewWriter(w, "  "), v.Entries())
	case *dom.Array:
		fmt.Fprintf(w, "%s = %s\n", e.Key.FullKey(), prettyConfig.Sprint(describeArray(v)))
	default:
		fmt.Fprintf(w, "%s = %s\n", e.Key.FullKey(), prettyConfig.Sprint(describeValue(e.Value)))
	}
}

// describeValue reduces a dom.Value to the plain data pretty can render;
// pretty.Sprint works off exported struct fields and map/slice/scalar
// values, not interfaces with unexported state.
func describeValue(v dom.Value) interface{} {
	switch t := v.(type) {
	case *dom.String:
		return t.Content()
	case *dom.Integer:
		return t.Token().Text()
	case *dom.Float:
		return t.Token().Text()
	case *dom.Bool:
		return t.Token().Text()
	case *dom.Date:
		return t.Token().Text()
	case *dom.Array:
		return describeArray(t)
	case *dom.Table:
		out := map[string]interface{}{}
		for _, sub := range t.Entries().Items() {
			out[sub.Key.FullKey()] = describeValue(sub.Value)
		}
		return out
	default:
		return nil
	}
}

func describeArray(a *dom.Array) []interface{} {
	out := make([]interface{}, 0, len(a.Items()))
	for _, item := range a.Items() {
		out = append(out, describeValue(item))
	}
	return out
}
