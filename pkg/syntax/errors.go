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

import "fmt"

// Error is a syntactic parse error: malformed source that prevented the
// lexer or parser from producing a well-formed tree element. It is
// distinct from, and never surfaced as, a dom.Error: semantic validation
// happens one layer up and assumes the tree it receives is syntactically
// sound.
type Error struct {
	Range   Range
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Message)
}
