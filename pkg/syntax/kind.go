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

package syntax

// Kind tags every node and token in the concrete syntax tree.
type Kind int

// The node kinds package dom's casting layer switches on, plus the
// punctuation and structural token kinds the lexer and parser need among
// themselves. Node kinds and token kinds share one enumeration, the same
// way rowan's SyntaxKind does in the original implementation this package
// is modeled on.
const (
	Invalid Kind = iota

	// Node kinds.
	Root
	TableHeader
	TableArrayHeader
	EntryKind // ENTRY in spec terms; named EntryKind to avoid clashing with dom.Entry.
	KeyKind
	ValueKind
	ArrayKind
	InlineTable

	// Token kinds carrying literal text, read by package dom's casting layer.
	Ident
	String
	MultiLineString
	StringLiteral
	MultiLineStringLiteral
	Integer
	IntegerBin
	IntegerOct
	IntegerHex
	Float
	Bool
	Date

	// Punctuation and structural tokens. Of these, only Dot (inside KEY
	// nodes) and Eq (inside ENTRY nodes) appear in a parsed tree.
	Dot
	Eq
	Comma
	LBrack
	LDoubleBrack
	RBrack
	RDoubleBrack
	LBrace
	RBrace
	Newline
	Comment
	EOF
)

var kindNames = map[Kind]string{
	Invalid:                "INVALID",
	Root:                   "ROOT",
	TableHeader:            "TABLE_HEADER",
	TableArrayHeader:       "TABLE_ARRAY_HEADER",
	EntryKind:              "ENTRY",
	KeyKind:                "KEY",
	ValueKind:              "VALUE",
	ArrayKind:              "ARRAY",
	InlineTable:            "INLINE_TABLE",
	Ident:                  "IDENT",
	String:                 "STRING",
	MultiLineString:        "MULTI_LINE_STRING",
	StringLiteral:          "STRING_LITERAL",
	MultiLineStringLiteral: "MULTI_LINE_STRING_LITERAL",
	Integer:                "INTEGER",
	IntegerBin:             "INTEGER_BIN",
	IntegerOct:             "INTEGER_OCT",
	IntegerHex:             "INTEGER_HEX",
	Float:                  "FLOAT",
	Bool:                   "BOOL",
	Date:                   "DATE",
	Dot:                    "DOT",
	Eq:                     "EQ",
	Comma:                  "COMMA",
	LBrack:                 "LBRACK",
	LDoubleBrack:           "LDOUBLE_BRACK",
	RBrack:                 "RBRACK",
	RDoubleBrack:           "RDOUBLE_BRACK",
	LBrace:                 "LBRACE",
	RBrace:                 "RBRACE",
	Newline:                "NEWLINE",
	Comment:                "COMMENT",
	EOF:                    "EOF",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsString reports whether k is one of the four TOML string token kinds.
func (k Kind) IsString() bool {
	switch k {
	case String, MultiLineString, StringLiteral, MultiLineStringLiteral:
		return true
	}
	return false
}

// IsInteger reports whether k is one of the four TOML integer token kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case Integer, IntegerBin, IntegerOct, IntegerHex:
		return true
	}
	return false
}
