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

// Entries is an ordered sequence of Entry. Order is insertion order, and
// it is observable: callers may rely on keys declared earlier in source
// appearing earlier here.
type Entries struct {
	items []*Entry
}

// Len returns the number of entries.
func (es *Entries) Len() int { return len(es.items) }

// Items returns the entries in order. The returned slice must not be
// mutated by callers; it aliases Entries' own storage.
func (es *Entries) Items() []*Entry { return es.items }

// merge folds a flat, header-prefixed entry list into a hierarchical
// Entries, and folds array-of-tables headers into Arrays.
//
// Precondition: array-of-tables entries appear in strictly increasing
// index order without gaps within their key group, which the root walker
// guarantees (see root.go).
func (es *Entries) merge(errors *[]error) {
	old := es.items
	newEntries := make([]*Entry, 0, len(old))

	for _, e := range old {
		e = e.clone()
		e.Key = e.Key.WithIndex(0)

		merged := false
		stop := false
		for _, existing := range newEntries {
			ok, err := mergeEntry(existing, e, errors)
			if err != nil {
				*errors = append(*errors, err)
				stop = true
				break
			}
			if ok {
				merged = true
				stop = true
				break
			}
		}
		if stop && !merged {
			continue
		}
		if merged {
			continue
		}

		if t, ok := e.Value.(*Table); ok && t.array {
			t.array = false
			e.Value = &Array{
				rng:    t.rng,
				items:  []Value{t},
				tables: true,
			}
		}
		newEntries = append(newEntries, e)
	}

	es.items = newEntries
}

// normalize rewrites every remaining dotted entry key into nested
// pseudo-tables, walking tables and arrays with explicit work-lists to
// bound stack usage on deeply nested input rather than recursing.
func (es *Entries) normalize() {
	pending := [][]*Entry{es.items}

	for len(pending) > 0 {
		n := len(pending) - 1
		entries := pending[n]
		pending = pending[:n]

		for _, e := range entries {
			e.normalize()

			switch v := e.Value.(type) {
			case *Array:
				arrays := []*Array{v}
				for len(arrays) > 0 {
					m := len(arrays) - 1
					arr := arrays[m]
					arrays = arrays[:m]
					for _, item := range arr.items {
						switch iv := item.(type) {
						case *Array:
							arrays = append(arrays, iv)
						case *Table:
							pending = append(pending, iv.entries.items)
						}
					}
				}
			case *Table:
				pending = append(pending, v.entries.items)
			}
		}
	}

	// The top-level slice itself may have grown new pseudo-table parents
	// in place via e.normalize(); the items slice reference is unchanged,
	// since normalize rewrites Entry fields, not the slice.
	_ = es.items
}

// mergeEntry tries to merge new into old, or to build a shared pseudo
// table out of both. old always ends up holding the final result on a
// successful merge.
//
// Returns (true, nil) on a successful merge, (false, nil) if the two
// entries are unrelated and shouldn't be merged, or (false, err) if they
// should have merged but a structural violation was found.
func mergeEntry(old, new *Entry, errors *[]error) (bool, error) {
	oldKey, newKey := old.Key, new.Key

	switch {
	case oldKey.IsPartOf(newKey):
		switch v := old.Value.(type) {
		case *Table:
			if v.inline {
				return false, &InlineTableError{Target: old.Key, Key: new.Key}
			}
			toInsert := new.clone()
			toInsert.Key = newKey.WithoutPrefix(oldKey)
			v.entries.items = append(v.entries.items, toInsert)
			v.entries.merge(errors)
			return true, nil

		case *Array:
			if !v.tables {
				return false, &ExpectedTableError{Target: old.Key, Key: new.Key}
			}
			final := new.clone()
			switch nt := final.Value.(type) {
			case *Table:
				if oldKey.EqKeys(newKey) && nt.array {
					nt.array = false
					v.items = append(v.items, final.Value)
					return true, nil
				}
				return mergeIntoLastArrayElement(v, new, oldKey, errors)
			default:
				return mergeIntoLastArrayElement(v, new, oldKey, errors)
			}

		default:
			return false, &ExpectedTableError{Target: old.Key, Key: new.Key}
		}

	case newKey.IsPartOf(oldKey) && !newKey.EqKeys(oldKey):
		newOld := new.clone()
		ok, err := mergeEntry(newOld, old, errors)
		if err != nil {
			return false, err
		}
		if ok {
			*old = *newOld
			return true, nil
		}
		return false, nil

	default:
		commonCount := old.Key.CommonPrefixCount(new.Key)
		if commonCount == 0 {
			return false, nil
		}

		commonPrefix := old.Key.Outer(commonCount)
		a := old.clone()
		a.Key = a.Key.WithoutPrefix(commonPrefix)
		b := new.clone()
		b.Key = b.Key.WithoutPrefix(commonPrefix)

		old.Key = commonPrefix
		old.Value = &Table{
			rng:     old.syntax.Range(),
			array:   false,
			pseudo:  true,
			entries: &Entries{items: []*Entry{a, b}},
		}
		return true, nil
	}
}

// mergeIntoLastArrayElement handles the common array-merge sub-rule: the
// new entry belongs inside the last element of an existing array of
// tables, rather than starting a new element.
func mergeIntoLastArrayElement(arr *Array, new *Entry, oldKey *Key, errors *[]error) (bool, error) {
	if len(arr.items) == 0 {
		panic("dom: array of tables has no elements")
	}
	last, ok := arr.items[len(arr.items)-1].(*Table)
	if !ok {
		panic("dom: expected array of tables element to be a table")
	}
	toInsert := new.clone()
	toInsert.Key = new.Key.WithoutPrefix(oldKey)
	last.entries.items = append(last.entries.items, toInsert)
	last.entries.merge(errors)
	return true, nil
}
