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
	"fmt"

	"github.com/tomldom/tomldom/pkg/syntax"
)

// Root is the built semantic document: a hierarchical Entries tree, plus
// every structural error collected while building it. A Root is
// immutable once BuildRoot returns; there is no API to mutate one in
// place.
type Root struct {
	entries *Entries
	errors  []error
	syntax  *syntax.Node
}

// Entries returns the document's top-level entries.
func (r *Root) Entries() *Entries { return r.entries }

// Errors returns every structural error accumulated while building r,
// in the order they were found. A Root built from well-formed input
// returns an empty, non-nil slice.
func (r *Root) Errors() []error { return r.errors }

// TextRange returns the originating ROOT syntax node's range.
func (r *Root) TextRange() syntax.Range { return r.syntax.Range() }

// entryGroup remembers, for one header occurrence (or the implicit
// top-level group when key is nil), the local keys declared directly
// beneath it. Used only by the mixed top-level-table/dotted-key check.
type entryGroup struct {
	key    *Key
	locals []*Key
}

// groupIdentity distinguishes successive header occurrences sharing the
// same text (via index) from one another, and gives the implicit
// no-header group a key of its own.
func groupIdentity(key *Key) string {
	if key == nil {
		return "\x00"
	}
	return fmt.Sprintf("%s\x00%d", key.FullKey(), key.Index())
}

func keyCountOf(key *Key) int {
	if key == nil {
		return 0
	}
	return key.KeyCount()
}

func ensureGroup(groups []*entryGroup, index map[string]*entryGroup, key *Key) (*entryGroup, []*entryGroup) {
	id := groupIdentity(key)
	if g, ok := index[id]; ok {
		return g, groups
	}
	g := &entryGroup{key: key}
	index[id] = g
	groups = append(groups, g)
	return g, groups
}

// isArrayTable reports whether e's value is a Table produced by a
// TABLE_ARRAY_HEADER (i.e. one occurrence of an array of tables, before
// merge folds the occurrences into an Array).
func isArrayTable(e *Entry) bool {
	t, ok := e.Value.(*Table)
	return ok && t.array
}

// BuildRoot walks a ROOT-kinded syntax tree exactly once and produces a
// built Root: a flat pass over headers and entries that prefixes every
// entry with its enclosing header's key and disambiguating index, a
// validation pass checking for duplicate/conflicting headers and mixed
// dotted-key/table-header declarations, and finally a merge-and-normalize
// pass folding the flat, prefixed entries into the final hierarchy. The
// merge-and-normalize pass runs only when the earlier passes found no
// errors; otherwise the returned Root holds the flat, prefixed entries.
//
// tree should come from a syntax.Parse call that reported no errors;
// BuildRoot does not itself re-validate syntactic well-formedness.
func BuildRoot(tree *syntax.Node, opts Options) *Root {
	root := &Root{entries: &Entries{}, errors: []error{}, syntax: tree}

	var flat []*Entry
	var groups []*entryGroup
	groupIndex := map[string]*entryGroup{}

	var activeKey *Key

	for _, child := range tree.Children() {
		node, ok := child.(*syntax.Node)
		if !ok {
			continue
		}

		switch node.Kind() {
		case syntax.TableHeader, syntax.TableArrayHeader:
			keyNode := node.FirstChild(syntax.KeyKind)
			if keyNode == nil {
				root.errors = append(root.errors, &SpannedError{Range: node.Range(), Message: "table header is missing its key"})
				continue
			}
			key := castKey(keyNode).WithIndex(0)
			isArray := node.Kind() == syntax.TableArrayHeader

			// Search prior entries (headers and plain entries alike, per
			// the reverse-insertion-order scan) for a key collision.
			var existing *Entry
			for i := len(flat) - 1; i >= 0; i-- {
				if flat[i].Key.EqKeys(key) {
					existing = flat[i]
					break
				}
			}

			insert := true
			if existing != nil {
				existingIsArray := isArrayTable(existing)
				switch {
				case existingIsArray && !isArray:
					root.errors = append(root.errors, &ExpectedTableArrayError{Target: existing.Key, Key: key})
					insert = false
				case !existingIsArray && isArray:
					root.errors = append(root.errors, &ExpectedTableArrayError{Target: key, Key: existing.Key})
					insert = false
				case !existingIsArray && !isArray:
					root.errors = append(root.errors, &DuplicateKeyError{First: existing.Key, Second: key})
					insert = false
				default: // both array: a new occurrence of the same array of tables
					key = key.WithIndex(existing.Key.Index() + 1)
				}
			}

			if insert {
				flat = append(flat, &Entry{
					Key:    key,
					Value:  &Table{rng: node.Range(), array: isArray, entries: &Entries{}},
					syntax: node,
				})
			}

			activeKey = key
			_, groups = ensureGroup(groups, groupIndex, activeKey)

		case syntax.EntryKind:
			e := castEntry(node, opts, &root.errors)
			if e == nil {
				continue
			}
			localKey := e.Key
			insertKey := localKey
			if activeKey != nil {
				insertKey = localKey.WithPrefix(activeKey)
			}
			e.Key = insertKey

			grp, newGroups := ensureGroup(groups, groupIndex, activeKey)
			groups = newGroups
			grp.locals = append(grp.locals, localKey)

			var dup *Entry
			for _, existing := range flat {
				if existing.Key.Equal(insertKey) {
					dup = existing
					break
				}
			}
			if dup != nil {
				root.errors = append(root.errors, &DuplicateKeyError{First: dup.Key, Second: insertKey})
				continue
			}

			flat = append(flat, e)
		}
	}

	checkTableArrayConflicts(root, flat)
	checkMixedDottedKeys(root, groups)

	root.entries.items = flat
	if len(root.errors) == 0 {
		root.entries.merge(&root.errors)
		root.entries.normalize()
	}

	return root
}

// checkTableArrayConflicts implements the intra-group table-array vs
// table check: within index-group 0, a plain table entry that was
// declared before an array-of-tables header sharing (or nesting under)
// its key is a conflict, because the array header should have owned
// that key from its first occurrence. Scans exhaustively rather than
// stopping at the first hit, de-duplicating by (target, key) pair.
func checkTableArrayConflicts(root *Root, flat []*Entry) {
	seen := map[string]bool{}
	for i, e := range flat {
		t, ok := e.Value.(*Table)
		if !ok || t.inline || t.array || e.Key.Index() != 0 {
			continue
		}
		for j := i + 1; j < len(flat); j++ {
			later := flat[j]
			lt, ok := later.Value.(*Table)
			if !ok || !lt.array || later.Key.Index() != 0 {
				continue
			}
			if !later.Key.IsPartOf(e.Key) {
				continue
			}
			pairKey := later.Key.FullKey() + "\x00" + e.Key.FullKey()
			if seen[pairKey] {
				continue
			}
			seen[pairKey] = true
			root.errors = append(root.errors, &ExpectedTableArrayError{Target: later.Key, Key: e.Key})
		}
	}
}

// checkMixedDottedKeys implements the mixed top-level-table/dotted-key
// check: a dotted key declared under one group (including the implicit
// top-level group) that some other header's key nests into is a
// conflict, catching e.g. "a.b.c = 1" followed by "[a.b.c]".
func checkMixedDottedKeys(root *Root, groups []*entryGroup) {
	for i, g1 := range groups {
		for _, local := range g1.locals {
			qualified := local
			if g1.key != nil {
				qualified = local.WithPrefix(g1.key)
			}
			idx1 := 0
			if g1.key != nil {
				idx1 = g1.key.Index()
			}

			for j, g2 := range groups {
				if j == i || g2.key == nil {
					continue
				}
				if g2.key.Index() != idx1 {
					continue
				}
				if g2.key.KeyCount() < keyCountOf(g1.key) {
					continue
				}
				if !g2.key.IsPartOf(qualified) {
					continue
				}
				root.errors = append(root.errors, &DuplicateKeyError{First: qualified, Second: g2.key})
			}
		}
	}
}
