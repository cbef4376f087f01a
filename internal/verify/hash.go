// Package verify implements the three independent drift checks that gate
// commits and releases: the schema-hash check, the full regeneration diff,
// and the committed-package invariant check.
package verify

import (
	"fmt"
	"path"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/generator"
	"github.com/civitrans/ptagen/internal/specpkg"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// HashChecker compares the schema hashes stamped in committed generated
// files against digests recomputed from the installed schema package.
// It only catches schema-content drift; drift introduced by compiler,
// patch, or assembler changes is the regeneration diff's job.
type HashChecker struct {
	spec *specpkg.Package
	fsys filesystem.Provider
	calc checksum.Calculator
	log  ptagen.Logger
}

// NewHashChecker creates a hash checker.
func NewHashChecker(spec *specpkg.Package, fsys filesystem.Provider, calc checksum.Calculator, log ptagen.Logger) *HashChecker {
	return &HashChecker{spec: spec, fsys: fsys, calc: calc, log: log}
}

// Check verifies every tracked schema. Mismatches accumulate: all of them
// are reported in one pass, not just the first. An empty report means the
// committed files are in sync with the installed schemas.
func (c *HashChecker) Check(typesDir string) (ptagen.DriftReport, error) {
	pair, err := c.spec.DiscoverSchemas()
	if err != nil {
		return nil, err
	}

	var report ptagen.DriftReport
	for _, schemaName := range []string{pair.Series, pair.Record} {
		modelFile, err := generator.ModelFileFor(schemaName)
		if err != nil {
			return nil, err
		}
		modelPath := path.Join(typesDir, modelFile)

		content, err := c.fsys.ReadFile(modelPath)
		if err != nil {
			report = append(report, ptagen.Drift{
				Kind:   ptagen.DriftHeaderMissing,
				Path:   modelPath,
				Detail: "missing generated file",
			})
			continue
		}

		header := generator.ParseHeader(content)
		if header.SchemaName != schemaName || header.SchemaSHA == "" {
			report = append(report, ptagen.Drift{
				Kind:   ptagen.DriftHeaderMissing,
				Path:   modelPath,
				Detail: fmt.Sprintf("missing schema header or wrong schema name (got %q)", header.SchemaName),
			})
			continue
		}

		schemaText, err := c.spec.SchemaText(schemaName)
		if err != nil {
			return nil, err
		}
		actual := c.calc.Sum(schemaText)

		if actual != header.SchemaSHA {
			c.log.Info("stamped: %s", header.SchemaSHA)
			c.log.Info("actual : %s", actual)
			report = append(report, ptagen.Drift{
				Kind:   ptagen.DriftHashMismatch,
				Path:   modelPath,
				Detail: fmt.Sprintf("%s: stamped %.12s..., actual %.12s...", schemaName, header.SchemaSHA, actual),
			})
		}
	}

	return report, nil
}
