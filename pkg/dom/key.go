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

	"github.com/tomldom/tomldom/pkg/syntax"
)

// Key is an ordered sequence of one or more identifier tokens: the parts
// of a dotted key such as a.b.c. Index disambiguates successive
// array-of-tables occurrences with identical key text during root
// construction; it is reset to 0 once the merge engine runs and plays no
// further part once a tree is handed to a caller.
type Key struct {
	idents []*syntax.Token
	index  int
}

// NewKey builds a Key from one or more ident tokens. It panics if given no
// tokens: spec.md's invariant is that key_count() >= 1 for any constructed
// key, so an attempt to build an empty key is a programmer error in the
// caller (the KEY syntax node is guaranteed non-empty by the parser).
func NewKey(idents ...*syntax.Token) *Key {
	if len(idents) == 0 {
		panic("dom: NewKey requires at least one ident")
	}
	return &Key{idents: idents}
}

// Idents returns the key's underlying ident tokens.
func (k *Key) Idents() []*syntax.Token { return k.idents }

// KeyCount returns the number of dotted parts in the key.
func (k *Key) KeyCount() int { return len(k.idents) }

// Index returns the key's array-of-tables disambiguator.
func (k *Key) Index() int { return k.index }

// Keys returns the key's parts with surrounding quotes trimmed exactly
// once.
func (k *Key) Keys() []string {
	out := make([]string, len(k.idents))
	for i, t := range k.idents {
		out[i] = unquoteIdent(t.Text())
	}
	return out
}

func unquoteIdent(s string) string {
	if len(s) >= 2 {
		if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
			return s[1 : len(s)-1]
		}
		if strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// FullKey returns the key's dotted string form, e.g. "a.b.c".
func (k *Key) FullKey() string {
	return strings.Join(k.Keys(), ".")
}

// String implements fmt.Stringer as the key's dotted form.
func (k *Key) String() string { return k.FullKey() }

// TextRange returns the union of all ident ranges.
func (k *Key) TextRange() syntax.Range {
	rng := k.idents[0].Range()
	for _, t := range k.idents[1:] {
		rng = rng.Cover(t.Range())
	}
	return rng
}

// IsPartOf reports whether self's ident sequence is a prefix of other's,
// comparing unquoted text and ignoring index.
func (k *Key) IsPartOf(other *Key) bool {
	if len(other.idents) < len(k.idents) {
		return false
	}
	a, b := k.Keys(), other.Keys()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether other.IsPartOf(k).
func (k *Key) Contains(other *Key) bool { return other.IsPartOf(k) }

// CommonPrefixCount returns the length of the longest shared initial run
// of identifier strings between k and other.
func (k *Key) CommonPrefixCount(other *Key) int {
	a, b := k.Keys(), other.Keys()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	count := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			break
		}
		count++
	}
	return count
}

// EqKeys reports equality ignoring index.
func (k *Key) EqKeys(other *Key) bool {
	return k.KeyCount() == other.KeyCount() && k.IsPartOf(other)
}

// Equal is full equality: same idents (by unquoted text) and same index.
func (k *Key) Equal(other *Key) bool {
	return k.EqKeys(other) && k.index == other.index
}

// Outer retains the first max(1, n) idents.
func (k *Key) Outer(n int) *Key {
	if n < 1 {
		n = 1
	}
	if n > len(k.idents) {
		n = len(k.idents)
	}
	nk := *k
	nk.idents = append([]*syntax.Token(nil), k.idents[:n]...)
	return &nk
}

// Inner drops the first min(n, len-1) idents; at least one ident always
// remains.
func (k *Key) Inner(n int) *Key {
	maxDrop := len(k.idents) - 1
	if maxDrop < 0 {
		maxDrop = 0
	}
	if n > maxDrop {
		n = maxDrop
	}
	if n <= 0 {
		nk := *k
		nk.idents = append([]*syntax.Token(nil), k.idents...)
		return &nk
	}
	nk := *k
	nk.idents = append([]*syntax.Token(nil), k.idents[n:]...)
	return &nk
}

// WithPrefix prepends other's idents and adopts other's index.
func (k *Key) WithPrefix(other *Key) *Key {
	merged := make([]*syntax.Token, 0, len(other.idents)+len(k.idents))
	merged = append(merged, other.idents...)
	merged = append(merged, k.idents...)
	return &Key{idents: merged, index: other.index}
}

// WithoutPrefix drops the first CommonPrefixCount(other) idents.
func (k *Key) WithoutPrefix(other *Key) *Key {
	count := k.CommonPrefixCount(other)
	if count == 0 {
		nk := *k
		nk.idents = append([]*syntax.Token(nil), k.idents...)
		return &nk
	}
	return k.Inner(count)
}

// WithIndex returns a copy of k with its index set to i.
func (k *Key) WithIndex(i int) *Key {
	nk := *k
	nk.idents = append([]*syntax.Token(nil), k.idents...)
	nk.index = i
	return &nk
}

// Prefix returns Outer(len-1): every part but the last.
func (k *Key) Prefix() *Key { return k.Outer(k.KeyCount() - 1) }

// Last returns Inner(len-1): just the last part.
func (k *Key) Last() *Key { return k.Inner(k.KeyCount() - 1) }
