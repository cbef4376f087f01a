package cli

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/config"
	"github.com/civitrans/ptagen/internal/execx"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/generator"
	"github.com/civitrans/ptagen/internal/logging"
	"github.com/civitrans/ptagen/internal/specpkg"
	"github.com/civitrans/ptagen/internal/verify"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// project bundles the wired-up services every command needs: config,
// filesystem, schema package, and the generation pipeline.
type project struct {
	cfg      *config.ProjectConfig
	fsys     filesystem.Provider
	log      ptagen.Logger
	spec     *specpkg.Package
	pipeline *generator.Pipeline
	calc     checksum.Calculator
	runner   execx.Runner
}

// openProject loads ptagen.yaml (defaults when absent) and wires the
// production dependencies. Every command goes through here so flag and
// environment handling stays in one place.
func openProject(verbose bool) (*project, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(".")
	if err != nil {
		return nil, err
	}

	log := logging.NewConsoleLogger(verbose)
	fsys := filesystem.NewOSFileSystem()
	runner := execx.NewRunner(log)
	calc := checksum.New()

	spec := specpkg.OpenFS(cfg.SpecDir, fsys)

	compiler := generator.NewCompiler(cfg.Compiler, cfg.Formatter, cfg.Package, runner, fsys, log)
	pipeline := generator.NewPipeline(spec, compiler, fsys, calc, cfg.Package, log)

	return &project{
		cfg:      cfg,
		fsys:     fsys,
		log:      log,
		spec:     spec,
		pipeline: pipeline,
		calc:     calc,
		runner:   runner,
	}, nil
}

func (p *project) hashChecker() *verify.HashChecker {
	return verify.NewHashChecker(p.spec, p.fsys, p.calc, p.log)
}

func (p *project) driftChecker() *verify.DriftChecker {
	return verify.NewDriftChecker(p.pipeline, p.fsys, p.calc, os.TempDir(), p.log)
}

func (p *project) invariantChecker() *verify.InvariantChecker {
	return verify.NewInvariantChecker(p.spec, p.fsys, p.log)
}
