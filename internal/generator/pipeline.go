// Package generator drives the schema-to-model pipeline: discover schemas,
// compile each into a model source file, apply post-processing patches,
// stamp provenance headers, resolve the public symbols, and assemble the
// package metadata and surface files.
package generator

import (
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/civitrans/ptagen/internal/assemble"
	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/postprocess"
	"github.com/civitrans/ptagen/internal/specpkg"
	"github.com/civitrans/ptagen/internal/symbols"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// Pipeline generates the typed model package from the installed schema
// package. A generation run is synchronous and idempotent: re-running with
// the same schema inputs produces byte-identical committed output.
type Pipeline struct {
	spec     *specpkg.Package
	compiler *Compiler
	fsys     filesystem.Provider
	calc     checksum.Calculator
	log      ptagen.Logger
	pkgName  string
}

// NewPipeline assembles a generation pipeline.
func NewPipeline(spec *specpkg.Package, compiler *Compiler, fsys filesystem.Provider, calc checksum.Calculator, pkgName string, log ptagen.Logger) *Pipeline {
	return &Pipeline{
		spec:     spec,
		compiler: compiler,
		fsys:     fsys,
		calc:     calc,
		log:      log,
		pkgName:  pkgName,
	}
}

// GenerateAll runs the full pipeline into outDir.
//
// Generation-time failures (schema discovery, compilation, symbol
// resolution) are fatal and abort immediately; callers must inspect the
// error before trusting anything under outDir.
func (p *Pipeline) GenerateAll(outDir string) error {
	runID := uuid.NewString()
	p.log.Info("generating PTag types from JSON Schemas (run %s)", runID)

	pair, err := p.spec.DiscoverSchemas()
	if err != nil {
		return err
	}
	p.log.Info("[discover] using series schema: %s", pair.Series)
	p.log.Info("[discover] using record schema: %s", pair.Record)

	specVersion := p.spec.Version()

	plan := []struct {
		schemaName string
		outFile    string
	}{
		{pair.Series, ptagen.SeriesFileName},
		{pair.Record, ptagen.RecordFileName},
	}

	hashes := make(map[string]string, len(plan))

	for _, step := range plan {
		target := path.Join(outDir, step.outFile)
		p.log.Info("  - %s from %s", step.outFile, step.schemaName)

		if err := p.compiler.Compile(p.spec.SchemaPath(step.schemaName), target); err != nil {
			return err
		}
		p.compiler.Format(target)

		schemaText, err := p.spec.SchemaText(step.schemaName)
		if err != nil {
			return err
		}
		hashes[step.schemaName] = p.calc.Sum(schemaText)

		if step.outFile == ptagen.SeriesFileName {
			changed, err := postprocess.FixPointsField(p.fsys, p.log, target)
			if err != nil {
				return err
			}
			if changed {
				p.compiler.Format(target)
			}
		}

		if err := Stamp(p.fsys, p.calc, target, step.schemaName, schemaText, specVersion); err != nil {
			return err
		}
	}

	seriesTarget := path.Join(outDir, ptagen.SeriesFileName)
	recordTarget := path.Join(outDir, ptagen.RecordFileName)

	syms, err := symbols.Resolve(p.fsys, seriesTarget, recordTarget)
	if err != nil {
		return err
	}

	if err := assemble.WriteMeta(p.fsys, outDir, p.pkgName, specVersion, hashes); err != nil {
		return err
	}
	if err := assemble.WriteAPI(p.fsys, outDir, p.pkgName, syms); err != nil {
		return err
	}
	if err := assemble.WriteVersion(p.fsys, outDir, p.pkgName, assemble.ResolveDistVersion()); err != nil {
		return err
	}

	p.log.Info("[init] wrote public surface: Tag, Series, Interval")
	p.log.Info("generation complete")
	return nil
}

// Hashes recomputes the current per-schema digests from the installed
// schema package. Used by verification to compare against stamped headers.
func (p *Pipeline) Hashes() (map[string]string, error) {
	pair, err := p.spec.DiscoverSchemas()
	if err != nil {
		return nil, err
	}

	hashes := make(map[string]string, 2)
	for _, name := range []string{pair.Series, pair.Record} {
		text, err := p.spec.SchemaText(name)
		if err != nil {
			return nil, err
		}
		hashes[name] = p.calc.Sum(text)
	}
	return hashes, nil
}

// ModelFileFor maps a schema filename to its generated model filename.
func ModelFileFor(schemaName string) (string, error) {
	switch schemaName {
	case ptagen.SeriesSchemaName:
		return ptagen.SeriesFileName, nil
	case ptagen.RecordSchemaName:
		return ptagen.RecordFileName, nil
	}
	return "", fmt.Errorf("no generated model file for schema %q", schemaName)
}
