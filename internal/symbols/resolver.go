// Package symbols resolves the public type names declared in generated
// model source. Generated files are parsed into a Go AST and their
// top-level type declarations queried directly, which stays robust across
// formatting changes in the upstream compiler's output.
package symbols

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"

	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// DeclaredTypes returns the names of all top-level type declarations in a
// generated source file. Purely inspects text; no mutation.
func DeclaredTypes(fsys filesystem.Provider, path string) ([]string, error) {
	src, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read generated file: %w", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated file %s: %w", path, err)
	}

	var names []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok {
				names = append(names, ts.Name.Name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve confirms the expected record, series, and interval types exist in
// the generated files and returns their concrete names.
//
// Fails with ErrMissingSymbol, naming the expected symbol and every name
// actually found, when the record file lacks the record type or the series
// file lacks either the series type or the interval enumeration. A missing
// symbol aborts generation: it would otherwise silently publish an
// incomplete API.
func Resolve(fsys filesystem.Provider, seriesFile, recordFile string) (ptagen.Symbols, error) {
	seriesTypes, err := DeclaredTypes(fsys, seriesFile)
	if err != nil {
		return ptagen.Symbols{}, err
	}
	recordTypes, err := DeclaredTypes(fsys, recordFile)
	if err != nil {
		return ptagen.Symbols{}, err
	}

	if !contains(recordTypes, ptagen.RecordSymbol) {
		return ptagen.Symbols{}, missing(ptagen.RecordSymbol, recordFile, recordTypes)
	}
	if !contains(seriesTypes, ptagen.SeriesSymbol) {
		return ptagen.Symbols{}, missing(ptagen.SeriesSymbol, seriesFile, seriesTypes)
	}
	if !contains(seriesTypes, ptagen.IntervalSymbol) {
		return ptagen.Symbols{}, missing(ptagen.IntervalSymbol, seriesFile, seriesTypes)
	}

	return ptagen.Symbols{
		Record:   ptagen.RecordSymbol,
		Series:   ptagen.SeriesSymbol,
		Interval: ptagen.IntervalSymbol,
	}, nil
}

func missing(symbol, file string, found []string) error {
	return fmt.Errorf("expected %q in %s; found %v: %w",
		symbol, file, found, ptagen.ErrMissingSymbol)
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
