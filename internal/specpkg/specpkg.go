// Package specpkg provides read-only access to the installed PTag schema
// package: schema document discovery, content access, and the package
// version string.
package specpkg

import (
	"fmt"
	"path"
	"strings"

	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// Package is a handle on the schema package's root directory.
// All operations are read-only.
type Package struct {
	root string
	fsys filesystem.Provider
}

// Open returns a handle for the schema package rooted at root, using the
// OS filesystem.
func Open(root string) *Package {
	return OpenFS(root, filesystem.NewOSFileSystem())
}

// OpenFS returns a handle backed by a custom filesystem provider.
// Primarily useful for testing with in-memory filesystems.
func OpenFS(root string, fsys filesystem.Provider) *Package {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &Package{root: root, fsys: fsys}
}

// Root returns the schema package root directory.
func (p *Package) Root() string { return p.root }

// SchemaDir returns the directory holding schema documents: the schemas
// subdirectory when present, otherwise the package root itself.
func (p *Package) SchemaDir() string {
	sub := path.Join(p.root, "schemas")
	if info, err := p.fsys.Stat(sub); err == nil && info.IsDir() {
		return sub
	}
	return p.root
}

// SchemaNames enumerates the schema document filenames in the package.
func (p *Package) SchemaNames() ([]string, error) {
	entries, err := p.fsys.ReadDir(p.SchemaDir())
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate schema directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ptagen.SchemaFileSuffix) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// DiscoverSchemas resolves the canonical series and record schema filenames
// from the package contents.
//
// Returns ErrSchemaNotFound when no schema files exist at all (the schema
// package is not installed with its data files), and ErrSchemaAmbiguous
// when either canonical name cannot be uniquely resolved, listing every
// discovered name for diagnosis.
func (p *Package) DiscoverSchemas() (ptagen.SchemaPair, error) {
	names, err := p.SchemaNames()
	if err != nil {
		return ptagen.SchemaPair{}, err
	}

	if len(names) == 0 {
		return ptagen.SchemaPair{}, fmt.Errorf(
			"no '*%s' files found under %s; is the schema package installed with data files?: %w",
			ptagen.SchemaFileSuffix, p.SchemaDir(), ptagen.ErrSchemaNotFound)
	}

	var series, record string
	for _, name := range names {
		switch name {
		case ptagen.SeriesSchemaName:
			series = name
		case ptagen.RecordSchemaName:
			record = name
		}
	}

	if series == "" || record == "" {
		return ptagen.SchemaPair{}, fmt.Errorf(
			"could not resolve schema filenames; found %v, need %q for %s and %q for %s: %w",
			names,
			ptagen.SeriesSchemaName, ptagen.SeriesSymbol,
			ptagen.RecordSchemaName, ptagen.RecordSymbol,
			ptagen.ErrSchemaAmbiguous)
	}

	return ptagen.SchemaPair{Series: series, Record: record}, nil
}

// SchemaPath returns the full path of a named schema document.
func (p *Package) SchemaPath(name string) string {
	return path.Join(p.SchemaDir(), name)
}

// SchemaText reads the exact text of a named schema document.
func (p *Package) SchemaText(name string) ([]byte, error) {
	content, err := p.fsys.ReadFile(p.SchemaPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return content, nil
}

// Version returns the schema package version from its VERSION file, or the
// unknown-version sentinel when no version metadata is available.
func (p *Package) Version() string {
	content, err := p.fsys.ReadFile(path.Join(p.root, "VERSION"))
	if err != nil {
		return ptagen.UnknownVersion
	}
	v := strings.TrimSpace(string(content))
	if v == "" {
		return ptagen.UnknownVersion
	}
	return v
}
