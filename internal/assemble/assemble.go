// Package assemble writes the non-model files of the generated package: the
// metadata file (schema package version + per-schema hashes), the public
// surface file (canonical aliases for the resolved symbols), and the
// version stamp file.
package assemble

import (
	"fmt"
	"os"
	"path"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

const generatedMarker = "// Code generated by ptagen. DO NOT EDIT."

// WriteMeta writes the metadata file from the finalized per-schema hash
// mapping and the schema package version. Whole-file overwrite; read by
// nothing at runtime except diagnostics.
func WriteMeta(fsys filesystem.Provider, outDir, pkgName, specVersion string, hashes map[string]string) error {
	names := make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(generatedMarker + "\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	b.WriteString("// PTagSpecVersion is the schema package version used for the last generation run.\n")
	fmt.Fprintf(&b, "const PTagSpecVersion = %q\n\n", specVersion)
	b.WriteString("// SchemaHashes maps each source schema filename to the SHA-256 digest of its text.\n")
	fmt.Fprintf(&b, "var SchemaHashes = map[string]string{\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t%q: %q,\n", name, hashes[name])
	}
	b.WriteString("}\n")

	return writeNormalized(fsys, path.Join(outDir, ptagen.MetaFileName), b.String())
}

// WriteAPI writes the public-surface file: canonical aliases bound to the
// three resolved symbol names. The aliases are derived from what was
// actually declared in the generated files, so the exported surface can
// never drift from the real generation output.
func WriteAPI(fsys filesystem.Provider, outDir, pkgName string, syms ptagen.Symbols) error {
	var b strings.Builder
	b.WriteString(generatedMarker + "\n\n")
	fmt.Fprintf(&b, "// Package %s exposes the generated PTag model types.\n", pkgName)
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	b.WriteString("// Canonical public aliases, derived from the symbols resolved in the\n")
	b.WriteString("// generated model files.\n")
	b.WriteString("type (\n")
	fmt.Fprintf(&b, "\tTag      = %s\n", syms.Record)
	fmt.Fprintf(&b, "\tSeries   = %s\n", syms.Series)
	fmt.Fprintf(&b, "\tInterval = %s\n", syms.Interval)
	b.WriteString(")\n")

	return writeNormalized(fsys, path.Join(outDir, ptagen.APIFileName), b.String())
}

// WriteVersion writes the version stamp file. It is the only generated file
// whose identity is purely a version stamp, and is therefore excluded from
// drift comparison.
func WriteVersion(fsys filesystem.Provider, outDir, pkgName, version string) error {
	var b strings.Builder
	b.WriteString(generatedMarker + "\n")
	b.WriteString("// Refreshed on every build; excluded from drift comparison.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	b.WriteString("// Version is the resolved distribution version of the generated package.\n")
	fmt.Fprintf(&b, "const Version = %q\n", version)

	return writeNormalized(fsys, path.Join(outDir, ptagen.VersionFileName), b.String())
}

// ResolveDistVersion resolves the distribution version to stamp into the
// generated package. The fallback chain is explicit: build-pin environment
// override, then the tool's own build metadata, then the unknown sentinel.
func ResolveDistVersion() string {
	if v := os.Getenv(ptagen.BuildVersionEnv); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return ptagen.UnknownVersion
}

func writeNormalized(fsys filesystem.Provider, p, content string) error {
	if err := fsys.WriteFile(p, checksum.NormalizeLineEndings([]byte(content))); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}
