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

// Package syntax lexes and parses TOML source text into a range-annotated
// concrete syntax tree. The tree keeps keys, values, the '.' tokens of
// dotted keys and the '=' of entries; whitespace, comments, commas,
// brackets and braces are not kept, so it is not lossless.
//
// The tree is the input contract that package dom builds a semantic DOM
// from: a ROOT node whose children are TableHeader, TableArrayHeader and
// Entry nodes in source order. Errors reported here are syntactic; package
// dom assumes the tree it is given is syntactically valid and never
// re-checks the things this package already checked.
package syntax
