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

// DuplicateKeyError reports two sibling entries (or table headers)
// declaring the same key.
type DuplicateKeyError struct {
	First, Second *Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate keys: %q (%s) and %q (%s)",
		e.First.FullKey(), e.First.TextRange(), e.Second.FullKey(), e.Second.TextRange())
}

// ExpectedTableError reports a dotted key trying to descend through a
// value that is not a table.
type ExpectedTableError struct {
	Target, Key *Key
}

func (e *ExpectedTableError) Error() string {
	return fmt.Sprintf("expected %q (%s) to be a table, required by %q (%s)",
		e.Target.FullKey(), e.Target.TextRange(), e.Key.FullKey(), e.Key.TextRange())
}

// ExpectedTableArrayError reports an array-of-tables header colliding with
// a plain table header (or vice versa) on the same key.
type ExpectedTableArrayError struct {
	Target, Key *Key
}

func (e *ExpectedTableArrayError) Error() string {
	return fmt.Sprintf("%q (%s) conflicts with array of tables %q (%s)",
		e.Target.FullKey(), e.Target.TextRange(), e.Key.FullKey(), e.Key.TextRange())
}

// InlineTableError reports an attempt to extend an inline table after its
// construction: inline tables are closed.
type InlineTableError struct {
	Target, Key *Key
}

func (e *InlineTableError) Error() string {
	return fmt.Sprintf("inline table %q (%s) cannot be modified, attempted by %q (%s)",
		e.Target.FullKey(), e.Target.TextRange(), e.Key.FullKey(), e.Key.TextRange())
}

// SpannedError is a general ranged error not tied to a pair of keys, e.g.
// a table header missing its key.
type SpannedError struct {
	Range   syntax.Range
	Message string
}

func (e *SpannedError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Range)
}

// GenericError is a ranged-free catch-all error.
type GenericError struct {
	Message string
}

func (e *GenericError) Error() string { return e.Message }
