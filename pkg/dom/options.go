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

// Options controls BuildRoot's behavior in ways that don't affect the
// resulting tree shape, only which problems get surfaced.
type Options struct {
	// ReportUnescapeErrors makes a failed string escape decode record a
	// SpannedError. The offending entry is dropped either way; without
	// this option the drop is silent.
	ReportUnescapeErrors bool
}
