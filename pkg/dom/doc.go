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

// Package dom builds a validated, normalized, semantically-typed tree of
// TOML values from a concrete syntax tree produced by package syntax.
//
// BuildRoot walks the syntax tree once, folding header-scoped entries and
// dotted keys into a single hierarchy of tables and arrays, while
// accumulating structural errors: duplicate keys, table / array-of-tables
// conflicts, and attempts to extend inline tables. The resulting Root is
// immutable; there is no API to mutate a dom tree after construction.
package dom
