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
	"strings"
	"testing"

	"github.com/openconfig/gnmi/errdiff"

	"github.com/tomldom/tomldom/pkg/syntax"
)

func build(t *testing.T, src string) *Root {
	t.Helper()
	tree, errs := syntax.Parse([]byte(src))
	if len(errs) != 0 {
		t.Fatalf("syntax.Parse(%q): unexpected syntax errors: %v", src, errs)
	}
	return BuildRoot(tree, Options{})
}

func find(entries *Entries, key string) *Entry {
	for _, e := range entries.Items() {
		if e.Key.FullKey() == key {
			return e
		}
	}
	return nil
}

func errsString(errs []error) string {
	var s []string
	for _, e := range errs {
		s = append(s, e.Error())
	}
	return strings.Join(s, "; ")
}

func TestBuildRootFlatTable(t *testing.T) {
	root := build(t, `
[server]
host = "localhost"
port = 8080
`)
	if len(root.Errors()) != 0 {
		t.Fatalf("unexpected errors: %s", errsString(root.Errors()))
	}

	server := find(root.Entries(), "server")
	if server == nil {
		t.Fatal("missing entry \"server\"")
	}
	table, ok := server.Value.(*Table)
	if !ok {
		t.Fatalf("server value is %T, want *Table", server.Value)
	}

	host := find(table.Entries(), "host")
	if host == nil {
		t.Fatal("missing entry \"server.host\"")
	}
	str, ok := host.Value.(*String)
	if !ok {
		t.Fatalf("host value is %T, want *String", host.Value)
	}
	if got, want := str.Content(), "localhost"; got != want {
		t.Errorf("host content = %q, want %q", got, want)
	}
}

func TestBuildRootDottedKeyNormalization(t *testing.T) {
	root := build(t, `a.b.c = 1`)
	if len(root.Errors()) != 0 {
		t.Fatalf("unexpected errors: %s", errsString(root.Errors()))
	}

	a := find(root.Entries(), "a")
	if a == nil {
		t.Fatal("missing pseudo entry \"a\"")
	}
	aTable, ok := a.Value.(*Table)
	if !ok || !aTable.IsPseudo() {
		t.Fatalf("a value = %+v, want a pseudo table", a.Value)
	}

	b := find(aTable.Entries(), "b")
	if b == nil {
		t.Fatal("missing pseudo entry \"a.b\"")
	}
	bTable, ok := b.Value.(*Table)
	if !ok || !bTable.IsPseudo() {
		t.Fatalf("a.b value = %+v, want a pseudo table", b.Value)
	}

	c := find(bTable.Entries(), "c")
	if c == nil {
		t.Fatal("missing entry \"a.b.c\"")
	}
	if _, ok := c.Value.(*Integer); !ok {
		t.Fatalf("a.b.c value is %T, want *Integer", c.Value)
	}
}

func TestBuildRootArrayOfTables(t *testing.T) {
	root := build(t, `
[[fruit]]
name = "apple"

[[fruit]]
name = "banana"
`)
	if len(root.Errors()) != 0 {
		t.Fatalf("unexpected errors: %s", errsString(root.Errors()))
	}

	fruit := find(root.Entries(), "fruit")
	if fruit == nil {
		t.Fatal("missing entry \"fruit\"")
	}
	arr, ok := fruit.Value.(*Array)
	if !ok || !arr.IsTableArray() {
		t.Fatalf("fruit value = %+v, want a table array", fruit.Value)
	}
	if got, want := len(arr.Items()), 2; got != want {
		t.Fatalf("len(fruit) = %d, want %d", got, want)
	}

	for i, wantName := range []string{"apple", "banana"} {
		table, ok := arr.Items()[i].(*Table)
		if !ok {
			t.Fatalf("fruit[%d] is %T, want *Table", i, arr.Items()[i])
		}
		name := find(table.Entries(), "name")
		if name == nil {
			t.Fatalf("fruit[%d] missing entry \"name\"", i)
		}
		str := name.Value.(*String)
		if str.Content() != wantName {
			t.Errorf("fruit[%d].name = %q, want %q", i, str.Content(), wantName)
		}
	}
}

func TestBuildRootErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{
			name: "duplicate key",
			src: `
a = 1
a = 2
`,
			err: "duplicate keys",
		},
		{
			name: "table then array of tables on same key",
			src: `
[a]
x = 1

[[a]]
x = 2
`,
			err: "conflicts with array of tables",
		},
		{
			name: "extending an inline table",
			src: `
a = { x = 1 }
a.y = 2
`,
			err: "cannot be modified",
		},
		{
			name: "dotted key through a scalar",
			src: `
a = 1
a.b = 2
`,
			err: "to be a table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := build(t, tt.src)
			if diff := errdiff.Check(firstErr(root.Errors()), tt.err); diff != "" {
				t.Errorf("%s", diff)
			}
		})
	}
}

func firstErr(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

func TestBuildRootTableThenArrayOfTablesOrderConflict(t *testing.T) {
	// [a.b] commits a plain table under "a.b"; [[a]] then tries to claim
	// "a" as an array of tables retroactively, which conflicts because
	// "a.b" already exists as a non-array child.
	root := build(t, `
[a.b]
x = 1

[[a]]
y = 2
`)
	if diff := errdiff.Check(firstErr(root.Errors()), "conflicts with array of tables"); diff != "" {
		t.Errorf("%s", diff)
	}
}

func TestBuildRootMixedDottedKeyThenHeaderConflict(t *testing.T) {
	// a.b.c = 1 at top level implicitly nests "c" under "a.b"; a later
	// [a.b] header tries to re-open "a.b" explicitly, which the mixed
	// top-level-table/dotted-key check must catch even though the
	// header's key ("a.b") is shorter than the dotted entry's full key
	// ("a.b.c") and so never matches it via eq_keys.
	root := build(t, `
a.b.c = 1
[a.b]
d = 2
`)
	if diff := errdiff.Check(firstErr(root.Errors()), "duplicate keys"); diff != "" {
		t.Errorf("%s", diff)
	}
}

func TestBuildRootExactDottedKeyThenHeaderConflict(t *testing.T) {
	root := build(t, `
a.b.c = 1
[a.b.c]
d = 2
`)
	if diff := errdiff.Check(firstErr(root.Errors()), "duplicate keys"); diff != "" {
		t.Errorf("%s", diff)
	}
}

func TestBuildRootDottedEntryDuplicatesHeaderEntry(t *testing.T) {
	// a.b = 1 at top level and [a] / b = 2 both resolve to the same
	// fully-qualified key "a.b"; the duplicate check must catch this
	// even though the two declarations are in different header groups.
	root := build(t, `
a.b = 1
[a]
b = 2
`)
	if diff := errdiff.Check(firstErr(root.Errors()), "duplicate keys"); diff != "" {
		t.Errorf("%s", diff)
	}
}

func TestCastStringDropsEntryOnUnescapeFailure(t *testing.T) {
	root := build(t, `
a = "bad \q escape"
b = 1
`)
	if len(root.Errors()) != 0 {
		t.Fatalf("unexpected errors: %s", errsString(root.Errors()))
	}
	if find(root.Entries(), "a") != nil {
		t.Error("entry \"a\" should have been dropped on unescape failure")
	}
	if find(root.Entries(), "b") == nil {
		t.Error("missing entry \"b\"")
	}
}

func TestCastStringReportsUnescapeFailureWhenConfigured(t *testing.T) {
	tree, errs := syntax.Parse([]byte(`a = "bad \q escape"`))
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	root := BuildRoot(tree, Options{ReportUnescapeErrors: true})
	if len(root.Errors()) != 1 {
		t.Fatalf("len(errors) = %d, want 1: %s", len(root.Errors()), errsString(root.Errors()))
	}
	if find(root.Entries(), "a") != nil {
		t.Error("entry \"a\" should still be dropped even when the failure is reported")
	}
}
