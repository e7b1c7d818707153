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

	"github.com/tomldom/tomldom/pkg/syntax"
)

func tok(text string) *syntax.Token {
	return syntax.NewToken(syntax.Ident, syntax.Range{}, text)
}

func key(parts ...string) *Key {
	toks := make([]*syntax.Token, len(parts))
	for i, p := range parts {
		toks[i] = tok(p)
	}
	return NewKey(toks...)
}

func TestKeyFullKey(t *testing.T) {
	k := key("a", "b", "c")
	if got, want := k.FullKey(), "a.b.c"; got != want {
		t.Errorf("FullKey() = %q, want %q", got, want)
	}
}

func TestKeyQuotedIdent(t *testing.T) {
	k := key(`"a b"`, "c")
	if got, want := k.FullKey(), "a b.c"; got != want {
		t.Errorf("FullKey() = %q, want %q", got, want)
	}
}

func TestKeyIsPartOf(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Key
		isPartOf bool
	}{
		{"equal", key("a", "b"), key("a", "b"), true},
		{"prefix", key("a"), key("a", "b"), true},
		{"not prefix", key("a", "c"), key("a", "b"), false},
		{"longer than other", key("a", "b", "c"), key("a", "b"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsPartOf(tt.b); got != tt.isPartOf {
				t.Errorf("%s.IsPartOf(%s) = %v, want %v", tt.a, tt.b, got, tt.isPartOf)
			}
		})
	}
}

func TestKeyCommonPrefixCount(t *testing.T) {
	if got, want := key("a", "b", "c").CommonPrefixCount(key("a", "b", "d")), 2; got != want {
		t.Errorf("CommonPrefixCount = %d, want %d", got, want)
	}
	if got, want := key("x").CommonPrefixCount(key("y")), 0; got != want {
		t.Errorf("CommonPrefixCount = %d, want %d", got, want)
	}
}

func TestKeyPrefixAndLast(t *testing.T) {
	k := key("a", "b", "c")
	if got, want := k.Prefix().FullKey(), "a.b"; got != want {
		t.Errorf("Prefix() = %q, want %q", got, want)
	}
	if got, want := k.Last().FullKey(), "c"; got != want {
		t.Errorf("Last() = %q, want %q", got, want)
	}
}

func TestKeyWithoutPrefix(t *testing.T) {
	k := key("a", "b", "c")
	got := k.WithoutPrefix(key("a", "b")).FullKey()
	if want := "c"; got != want {
		t.Errorf("WithoutPrefix = %q, want %q", got, want)
	}
}

func TestKeyWithPrefix(t *testing.T) {
	k := key("c").WithPrefix(key("a", "b"))
	if got, want := k.FullKey(), "a.b.c"; got != want {
		t.Errorf("WithPrefix = %q, want %q", got, want)
	}
}

func TestKeyWithIndex(t *testing.T) {
	k := key("a").WithIndex(3)
	if got, want := k.Index(), 3; got != want {
		t.Errorf("Index() = %d, want %d", got, want)
	}
	if got, want := key("a").Index(), 0; got != want {
		t.Errorf("default Index() = %d, want %d", got, want)
	}
}

func TestNewKeyPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewKey() with no idents did not panic")
		}
	}()
	NewKey()
}
