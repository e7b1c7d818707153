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

// Program tomldom parses TOML files, builds their semantic DOM, and
// either reports the structural errors found or prints the resulting
// tree.
//
// Usage: tomldom [--format errors|tree] [--path DIR] [--workers N] FILE ...
package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pborman/getopt"

	"github.com/tomldom/tomldom/pkg/dom"
	"github.com/tomldom/tomldom/pkg/syntax"
)

var validFormats = []string{"errors", "tree"}

func main() {
	var format string
	var paths []string
	var workersFlag string
	var help bool

	getopt.StringVarLong(&format, "format", 0, "output format: "+strings.Join(validFormats, ", "), "FORMAT")
	getopt.ListVarLong(&paths, "path", 0, "comma separated list of directories (accepted, not used to locate files)", "DIR[,DIR...]")
	getopt.StringVarLong(&workersFlag, "workers", 0, "number of files to parse concurrently", "N")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE ...]")
	getopt.Parse()

	if help {
		getopt.Usage()
		os.Exit(0)
	}

	if format == "" {
		format = "errors"
	}
	if !validFormat(format) {
		fmt.Fprintf(os.Stderr, "%s: invalid format. Choices are %s\n", format, strings.Join(validFormats, ", "))
		os.Exit(1)
	}

	workers := runtime.GOMAXPROCS(0)
	if workersFlag != "" {
		n, err := strconv.Atoi(workersFlag)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "tomldom: --workers must be a positive integer, got %q\n", workersFlag)
			os.Exit(1)
		}
		workers = n
	}

	files := getopt.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "tomldom: no input files")
		os.Exit(1)
	}

	results := parseAll(files, workers)

	failed := false
	for _, name := range files {
		r := results[name]
		if len(r.syntaxErrs) > 0 {
			failed = true
			for _, e := range r.syntaxErrs {
				fmt.Fprintf(os.Stderr, "%s: syntax: %s\n", name, e.Error())
			}
			continue
		}
		if len(r.root.Errors()) > 0 {
			failed = true
		}
		switch format {
		case "errors":
			for _, e := range r.root.Errors() {
				fmt.Fprintf(os.Stderr, "%s: dom: %s\n", name, e.Error())
			}
		case "tree":
			printTree(os.Stdout, name, r.root)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func validFormat(f string) bool {
	for _, v := range validFormats {
		if v == f {
			return true
		}
	}
	return false
}

type parseResult struct {
	root       *dom.Root
	syntaxErrs []syntax.Error
}

// parseAll parses every file in names with a bounded worker pool: each
// file's lex/parse/build is fully independent, so there is nothing to
// synchronize beyond collecting results.
func parseAll(names []string, workers int) map[string]*parseResult {
	results := make(map[string]*parseResult, len(names))
	var mu sync.Mutex

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				r := parseOne(name)
				mu.Lock()
				results[name] = r
				mu.Unlock()
			}
		}()
	}

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, name := range sorted {
		jobs <- name
	}
	close(jobs)
	wg.Wait()

	return results
}

func parseOne(name string) *parseResult {
	data, err := os.ReadFile(name)
	if err != nil {
		return &parseResult{syntaxErrs: []syntax.Error{{Message: err.Error()}}}
	}

	tree, errs := syntax.Parse(data)
	if len(errs) > 0 {
		return &parseResult{syntaxErrs: errs}
	}

	return &parseResult{root: dom.BuildRoot(tree, dom.Options{})}
}
