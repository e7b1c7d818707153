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

	"github.com/tomldom/tomldom/internal/unescape"
	"github.com/tomldom/tomldom/pkg/syntax"
)

// castKey builds a Key from a syntax.Key node, keeping only its Ident
// children; the Dot tokens between them carry no semantic weight here.
func castKey(node *syntax.Node) *Key {
	var idents []*syntax.Token
	for _, child := range node.Children() {
		if tok, ok := child.(*syntax.Token); ok && tok.Kind() == syntax.Ident {
			idents = append(idents, tok)
		}
	}
	return NewKey(idents...)
}

// castEntry builds an Entry from a syntax.Entry node: a KEY child and a
// VALUE child.
func castEntry(node *syntax.Node, opts Options, errs *[]error) *Entry {
	keyNode := node.FirstChild(syntax.KeyKind)
	if keyNode == nil {
		return nil
	}
	valueNode := node.FirstChild(syntax.ValueKind)

	e := &Entry{Key: castKey(keyNode), syntax: node}
	if valueNode != nil {
		v := castValueNode(valueNode, opts, errs)
		if v == nil {
			return nil
		}
		e.Value = v
	}
	return e
}

// castValueNode unwraps the VALUE wrapper node and casts its single
// element child.
func castValueNode(node *syntax.Node, opts Options, errs *[]error) Value {
	for _, child := range node.Children() {
		switch v := child.(type) {
		case *syntax.Node:
			return castElement(v, opts, errs)
		case *syntax.Token:
			if isValueToken(v.Kind()) {
				return castToken(v, opts, errs)
			}
		}
	}
	return nil
}

func isValueToken(k syntax.Kind) bool {
	if k.IsString() || k.IsInteger() {
		return true
	}
	switch k {
	case syntax.Float, syntax.Bool, syntax.Date:
		return true
	}
	return false
}

// castElement casts an ARRAY or INLINE_TABLE node (VALUE's non-token
// children are always one of these two).
func castElement(node *syntax.Node, opts Options, errs *[]error) Value {
	switch node.Kind() {
	case syntax.ArrayKind:
		return castArray(node, opts, errs)
	case syntax.InlineTable:
		return castInlineTable(node, opts, errs)
	default:
		return nil
	}
}

func castArray(node *syntax.Node, opts Options, errs *[]error) *Array {
	arr := &Array{rng: node.Range()}
	for _, child := range node.Children() {
		switch v := child.(type) {
		case *syntax.Node:
			item := castElement(v, opts, errs)
			if item != nil {
				arr.items = append(arr.items, item)
			}
		case *syntax.Token:
			if isValueToken(v.Kind()) {
				if item := castToken(v, opts, errs); item != nil {
					arr.items = append(arr.items, item)
				}
			}
		}
	}
	return arr
}

func castInlineTable(node *syntax.Node, opts Options, errs *[]error) *Table {
	t := &Table{rng: node.Range(), inline: true, entries: &Entries{}}
	for _, child := range node.Children() {
		entryNode, ok := child.(*syntax.Node)
		if !ok || entryNode.Kind() != syntax.EntryKind {
			continue
		}
		if e := castEntry(entryNode, opts, errs); e != nil {
			t.entries.items = append(t.entries.items, e)
		}
	}
	return t
}

// castToken casts a single leaf value token: a string, integer, float,
// bool or date literal.
func castToken(tok *syntax.Token, opts Options, errs *[]error) Value {
	switch {
	case tok.Kind().IsString():
		s := castString(tok, opts, errs)
		if s == nil {
			return nil
		}
		return s
	case tok.Kind().IsInteger():
		return &Integer{tok: tok, repr: integerRepr(tok.Kind())}
	case tok.Kind() == syntax.Float:
		return &Float{tok: tok}
	case tok.Kind() == syntax.Bool:
		return &Bool{tok: tok}
	case tok.Kind() == syntax.Date:
		return &Date{tok: tok}
	default:
		return nil
	}
}

func integerRepr(k syntax.Kind) IntegerRepr {
	switch k {
	case syntax.IntegerBin:
		return IntegerBin
	case syntax.IntegerOct:
		return IntegerOct
	case syntax.IntegerHex:
		return IntegerHex
	default:
		return IntegerDec
	}
}

// castString decodes a string token's escapes, if any apply. A failed
// unescape drops the value entirely (and, via castEntry, the entry it
// belongs to) rather than falling back to the raw escaped text, per the
// two sanctioned behaviors for this case: silently drop, or drop with a
// recorded Spanned error when opts.ReportUnescapeErrors is set.
func castString(tok *syntax.Token, opts Options, errs *[]error) *String {
	kind, raw := stringKindAndBody(tok)
	content := raw
	if kind == StringBasic || kind == StringMultiLine {
		unescaped, err := unescape.String(raw)
		if err != nil {
			if opts.ReportUnescapeErrors {
				*errs = append(*errs, &SpannedError{Range: tok.Range(), Message: err.Error()})
			}
			return nil
		}
		content = unescaped
	}
	return &String{tok: tok, kind: kind, content: content}
}

// stringKindAndBody classifies a string token's quoting style and strips
// its delimiters, leaving the raw (still-escaped, for basic strings)
// body.
func stringKindAndBody(tok *syntax.Token) (StringKind, string) {
	text := tok.Text()
	switch tok.Kind() {
	case syntax.MultiLineString:
		return StringMultiLine, trimDelim(text, `"""`)
	case syntax.MultiLineStringLiteral:
		return StringMultiLineLiteral, trimDelim(text, "'''")
	case syntax.StringLiteral:
		return StringLiteral, trimDelim(text, "'")
	default:
		return StringBasic, trimDelim(text, `"`)
	}
}

func trimDelim(text, delim string) string {
	if strings.HasPrefix(text, delim) && strings.HasSuffix(text, delim) && len(text) >= 2*len(delim) {
		body := text[len(delim) : len(text)-len(delim)]
		if delim == `"""` || delim == "'''" {
			body = strings.TrimPrefix(body, "\n")
		}
		return body
	}
	return text
}
