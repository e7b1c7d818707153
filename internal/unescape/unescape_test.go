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

package unescape

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: `hello`, want: `hello`},
		{in: `a\nb`, want: "a\nb"},
		{in: `a\tb`, want: "a\tb"},
		{in: `\"quoted\"`, want: `"quoted"`},
		{in: `back\\slash`, want: `back\slash`},
		{in: `é`, want: "é"},
		{in: `\U0001F600`, want: "\U0001F600"},
		{in: `\z`, wantErr: true},
		{in: `\u12`, wantErr: true},
		{in: `\uD800`, wantErr: true},
	}

	for _, tt := range tests {
		got, err := String(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("String(%q): expected an error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("String(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringLineContinuation(t *testing.T) {
	got, err := String("a\\\n   b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ab"; got != want {
		t.Errorf("String(...) = %q, want %q", got, want)
	}
}
