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

import "github.com/tomldom/tomldom/pkg/syntax"

// Entry is a single key = value binding. Before insertion into a parent
// table its Key is local (unqualified); the root walker rewrites it to a
// fully-qualified key once it is attached under a header.
type Entry struct {
	Key   *Key
	Value Value

	syntax *syntax.Node
}

// TextRange returns the originating ENTRY syntax node's range.
func (e *Entry) TextRange() syntax.Range {
	return e.syntax.Range()
}

// normalize rewrites a dotted Entry key into a chain of pseudo-tables:
// while the key still has more than one part, bury the current value one
// level deeper under a single-entry pseudo table keyed by the last part,
// and shorten the key to everything before it.
func (e *Entry) normalize() {
	for e.Key.KeyCount() > 1 {
		newKey := e.Key.Prefix()
		innerKey := e.Key.Last()

		value := e.Value
		e.Value = nil

		isArrayTable := false
		if t, ok := value.(*Table); ok {
			isArrayTable = t.IsPartOfArray()
		}

		inner := &Entry{syntax: e.syntax, Key: innerKey, Value: value}

		e.Value = &Table{
			rng:     e.syntax.Range(),
			array:   isArrayTable,
			pseudo:  true,
			entries: &Entries{items: []*Entry{inner}},
		}
		e.Key = newKey
	}
}

func (e *Entry) clone() *Entry {
	c := *e
	return &c
}
