// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// parseFuncs returns the exported functions, excluding methods, declared in
// filenames that are not in exclude.
func parseFuncs(t *testing.T, filenames []string, exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}
	fset := token.NewFileSet()
	var names []string
	for _, filename := range filenames {
		af, err := parser.ParseFile(fset, filename, nil, parser.AllErrors)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range af.Decls {
			fd, _ := d.(*ast.FuncDecl)
			if fd == nil || fd.Name == nil || fd.Recv != nil {
				continue
			}
			name := fd.Name.Name
			if ast.IsExported(name) && !skip[name] {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Test that the utext and ustring packages have the same API.
func TestPackageParity(t *testing.T) {
	matches, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	var files []string
	for _, name := range matches {
		// wide_windows.go declares the same functions as wide_other.go
		if strings.HasSuffix(name, "_test.go") || name == "wide_windows.go" || name == "gen.go" {
			continue
		}
		files = append(files, name)
	}
	// Rune and property lookups have no string form.
	bytenames := parseFuncs(t, files, "FoldRune", "CategoryOf", "Is")
	strnames := parseFuncs(t, []string{"ustring/ustring.go"}, "EqualFold")
	if diff := cmp.Diff(bytenames, strnames); diff != "" {
		t.Fatalf("The API of the utext and ustring packages differs (-utext +ustring):\n%s", diff)
	}
}
