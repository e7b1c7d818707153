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

package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// snapshot reduces a Value to plain, cmp-comparable data built entirely
// from exported accessors, sidestepping cmp's refusal to look at a
// struct's unexported fields.
func snapshot(v Value) interface{} {
	switch t := v.(type) {
	case *String:
		return t.Content()
	case *Integer:
		return t.Token().Text()
	case *Float:
		return t.Token().Text()
	case *Bool:
		return t.Token().Text()
	case *Date:
		return t.Token().Text()
	case *Array:
		out := make([]interface{}, 0, len(t.Items()))
		for _, item := range t.Items() {
			out = append(out, snapshot(item))
		}
		return out
	case *Table:
		return snapshotEntries(t.Entries())
	default:
		return nil
	}
}

func snapshotEntries(entries *Entries) map[string]interface{} {
	out := map[string]interface{}{}
	for _, e := range entries.Items() {
		out[e.Key.FullKey()] = snapshot(e.Value)
	}
	return out
}

func TestBuildRootStructuralSnapshot(t *testing.T) {
	root := build(t, `
a.b.c = 1

[[fruit]]
name = "apple"

[[fruit]]
name = "banana"

[server]
host = "localhost"
port = 8080
`)
	if len(root.Errors()) != 0 {
		t.Fatalf("unexpected errors: %s", errsString(root.Errors()))
	}

	got := snapshotEntries(root.Entries())
	want := map[string]interface{}{
		"fruit": []interface{}{
			map[string]interface{}{"name": "apple"},
			map[string]interface{}{"name": "banana"},
		},
		"server": map[string]interface{}{
			"host": "localhost",
			"port": "8080",
		},
		"a": map[string]interface{}{
			"b": map[string]interface{}{
				"c": "1",
			},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("entries snapshot mismatch (-want +got):\n%s", diff)
	}
}
