package generator

import (
	"fmt"
	"regexp"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// Header is a parsed provenance header.
type Header struct {
	SchemaName string
	SchemaSHA  string
	Version    string
}

// FormatHeader renders the four provenance lines stamped onto a generated
// model file. The hash is of the schema text, not the generated file: the
// generated file's correctness relative to the schema is checked by full
// regeneration diff instead.
func FormatHeader(schemaName, schemaSHA, specVersion string) string {
	return fmt.Sprintf("// %s\n// %s: %s\n// %s: %s\n// %s: %s\n",
		ptagen.HeaderNotice,
		ptagen.HeaderSchemaKey, schemaName,
		ptagen.HeaderHashKey, schemaSHA,
		ptagen.HeaderVersionKey, specVersion)
}

// Stamp prepends the provenance header to a generated model file. Must run
// after all content-mutating patches; the pipeline ordering is the safeguard
// against double-stamping.
func Stamp(fsys filesystem.Provider, calc checksum.Calculator, path, schemaName string, schemaText []byte, specVersion string) error {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file for stamping: %w", err)
	}

	header := FormatHeader(schemaName, calc.Sum(schemaText), specVersion)
	// Blank line after the header keeps it out of the package doc comment.
	stamped := append([]byte(header+"\n"), checksum.NormalizeLineEndings(content)...)

	if err := fsys.WriteFile(path, stamped); err != nil {
		return fmt.Errorf("failed to write stamped file: %w", err)
	}
	return nil
}

var headerLineRx = regexp.MustCompile(`(?m)^//\s*([a-z0-9-]+):\s*([0-9a-zA-Z._+-]+)\s*$`)

// ParseHeader extracts the provenance fields from the first lines of a
// committed generated file. Missing fields are left empty; the caller
// decides whether that constitutes a HeaderMissing failure.
func ParseHeader(content []byte) Header {
	// Only the top of the file is a header; cap the scan.
	head := content
	if len(head) > 512 {
		head = head[:512]
	}

	var h Header
	for _, m := range headerLineRx.FindAllSubmatch(head, -1) {
		switch string(m[1]) {
		case ptagen.HeaderSchemaKey:
			h.SchemaName = string(m[2])
		case ptagen.HeaderHashKey:
			h.SchemaSHA = string(m[2])
		case ptagen.HeaderVersionKey:
			h.Version = string(m[2])
		}
	}
	return h
}
