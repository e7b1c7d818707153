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

import (
	"fmt"
	"strings"
)

// This file holds the character-level scanning primitives the recursive
// descent parser in parse.go drives. There is no separate token channel or
// goroutine: scanning happens on demand, directly against the source
// bytes, the same way go/scanner or encoding/json's internal scanner work.

// maxErrors bounds how many syntax errors we'll accumulate before giving up
// on reporting more; pathological input shouldn't grow an unbounded slice.
const maxErrors = 64

func (p *parser) errorf(rng Range, format string, args ...interface{}) {
	if len(p.errs) >= maxErrors {
		return
	}
	p.errs = append(p.errs, Error{Range: rng, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.src) {
		return 0
	}
	return p.src[p.pos+off]
}

func (p *parser) advance() byte {
	b := p.src[p.pos]
	p.pos++
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isBareKeyByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// skipTrivia skips whitespace and comments between tokens. This parser
// does not enforce "one statement per line" or comment placement rules;
// it treats all inter-token trivia uniformly, which keeps it small at the
// cost of accepting a few malformed documents a conformance-grade TOML
// parser would reject. That tradeoff is deliberate: syntactic conformance
// testing is out of scope for this module (see SPEC_FULL.md §1).
func (p *parser) skipTrivia() {
	for !p.eof() {
		b := p.peek()
		switch {
		case isSpace(b):
			p.pos++
		case b == '#':
			for !p.eof() && p.peek() != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// readBareWord reads a maximal run of bare-key characters starting at the
// current position. Used both for bare keys and, with a different stop
// set, is not reused for bare values: see readBareValue.
func (p *parser) readBareWord() (string, Range) {
	start := p.pos
	for !p.eof() && isBareKeyByte(p.peek()) {
		p.pos++
	}
	return string(p.src[start:p.pos]), Range{Start: start, End: p.pos}
}

// readBareValue reads a maximal run of characters that can appear in an
// unquoted value literal: booleans, integers (incl. 0x/0o/0b prefixes and
// '_' digit separators), floats (incl. inf/nan and exponents), and RFC
// 3339 dates/date-times. The value is classified afterwards by
// classifyBareValue; this function only finds its extent.
func (p *parser) readBareValue() (string, Range) {
	start := p.pos
	for !p.eof() {
		b := p.peek()
		if isBareKeyByte(b) || b == '.' || b == ':' || b == '+' {
			p.pos++
			continue
		}
		break
	}
	return string(p.src[start:p.pos]), Range{Start: start, End: p.pos}
}

// classifyBareValue tags a scanned bare-value literal with its token kind.
// It does not validate the literal beyond what's needed to pick a kind:
// value parsing is explicitly out of scope for the dom layer this feeds
// (spec.md §1 Non-goals), so representation tagging is all that matters.
func classifyBareValue(word string) Kind {
	switch word {
	case "true", "false":
		return Bool
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return Float
	}
	if word == "" {
		return Invalid
	}
	signless := strings.TrimPrefix(strings.TrimPrefix(word, "+"), "-")
	switch {
	case strings.HasPrefix(signless, "0x"):
		return IntegerHex
	case strings.HasPrefix(signless, "0o"):
		return IntegerOct
	case strings.HasPrefix(signless, "0b"):
		return IntegerBin
	}
	hasDot := strings.Contains(word, ".")
	hasExp := strings.ContainsAny(word, "eE") && !strings.ContainsAny(word, "-:") // crude: avoid misreading dates with no T
	hasColon := strings.Contains(word, ":")
	hasDash := strings.Contains(signless, "-")
	switch {
	case hasColon || (hasDash && strings.Count(signless, "-") >= 2):
		// "2021-01-01", "2021-01-01T10:00:00Z", "10:00:00" all land here.
		return Date
	case hasDot || hasExp:
		return Float
	default:
		return Integer
	}
}

// readQuoted reads a quoted literal (basic or literal string, single or
// multi line) starting at the current position, which must be on the
// opening quote character. It returns the raw text including delimiters,
// exactly as it appeared in source, and the kind it belongs to.
func (p *parser) readQuoted() (string, Range, Kind) {
	start := p.pos
	quote := p.peek()
	literal := quote == '\''
	triple := p.peekAt(1) == quote && p.peekAt(2) == quote
	delimLen := 1
	if triple {
		delimLen = 3
	}
	p.pos += delimLen

	for !p.eof() {
		if p.peek() == quote {
			if !triple {
				p.pos++
				break
			}
			if p.peekAt(1) == quote && p.peekAt(2) == quote {
				p.pos += 3
				break
			}
		}
		if !literal && p.peek() == '\\' {
			p.pos += 2 // skip escaped char; unescape validity is checked during dom casting.
			continue
		}
		p.pos++
	}
	if p.pos > len(p.src) {
		p.pos = len(p.src)
	}

	text := string(p.src[start:p.pos])
	rng := Range{Start: start, End: p.pos}

	var kind Kind
	switch {
	case literal && triple:
		kind = MultiLineStringLiteral
	case literal:
		kind = StringLiteral
	case triple:
		kind = MultiLineString
	default:
		kind = String
	}
	return text, rng, kind
}
