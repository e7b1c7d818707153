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

// Package tomlfile contains high-level helpers for building dom.Root
// trees directly from files on disk.
package tomlfile

import (
	"fmt"
	"os"

	"github.com/tomldom/tomldom/pkg/dom"
	"github.com/tomldom/tomldom/pkg/syntax"
)

// Parse reads and builds every file in paths into a dom.Root, keyed by
// the path it came from. If any path cannot be stat'ed, Parse returns a
// nil map and just those errors, without reading any file. Otherwise, if
// any file fails to read, fails to parse, or builds a Root with structural
// errors, Parse returns a nil map and the problems found across every
// file.
func Parse(paths []string) (map[string]*dom.Root, []error) {
	return parse(paths, dom.Options{})
}

// ParseWithOptions is Parse with caller-controlled dom.Options, e.g. to
// surface string-unescape failures instead of silently dropping them.
func ParseWithOptions(paths []string, opts dom.Options) (map[string]*dom.Root, []error) {
	return parse(paths, opts)
}

func parse(paths []string, opts dom.Options) (map[string]*dom.Root, []error) {
	var errs []error

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	roots := make(map[string]*dom.Root, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		tree, syntaxErrs := syntax.Parse(data)
		if len(syntaxErrs) > 0 {
			for _, se := range syntaxErrs {
				errs = append(errs, fmt.Errorf("%s: %s", p, se.Error()))
			}
			continue
		}

		root := dom.BuildRoot(tree, opts)
		if len(root.Errors()) > 0 {
			for _, e := range root.Errors() {
				errs = append(errs, fmt.Errorf("%s: %w", p, e))
			}
			continue
		}

		roots[p] = root
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return roots, nil
}
