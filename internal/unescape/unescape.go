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

// Package unescape decodes TOML basic-string escape sequences.
//
// This is the "string unescape utility" spec.md §1 lists as an out-of-scope
// core collaborator: a narrow, self-contained routine with no state and no
// dependency on the rest of the tree. No library in the retrieval pack
// exposes a standalone TOML unescape routine (pelletier/go-toml keeps its
// equivalent unexported inside its own parser package), so this is written
// directly against strconv's rune-decoding primitives, which is the
// standard library's idiomatic tool for exactly this job.
package unescape

import (
	"fmt"
	"strconv"
	"strings"
)

// String decodes TOML basic-string escape sequences in s (content only,
// delimiters already stripped by the caller) and returns the decoded
// value. It fails on an unknown escape or a malformed \u/\U sequence.
func String(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("unescape: trailing backslash")
		}
		esc := s[i+1]
		switch esc {
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '\n':
			// Line-ending backslash: a multi-line basic string escape that
			// swallows the newline and any leading whitespace on the next
			// line.
			i += 2
			for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
				i++
			}
		case 'u', 'U':
			n := 4
			if esc == 'U' {
				n = 8
			}
			if i+2+n > len(s) {
				return "", fmt.Errorf("unescape: truncated \\%c escape", esc)
			}
			hex := s[i+2 : i+2+n]
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", fmt.Errorf("unescape: invalid \\%c escape %q: %w", esc, hex, err)
			}
			r := rune(v)
			if r >= 0xD800 && r <= 0xDFFF {
				return "", fmt.Errorf("unescape: \\%c escape %q is a surrogate half", esc, hex)
			}
			b.WriteRune(r)
			i += 2 + n
		default:
			return "", fmt.Errorf("unescape: unknown escape sequence \\%c", esc)
		}
	}

	return b.String(), nil
}
