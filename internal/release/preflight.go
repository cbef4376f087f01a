// Package release implements the pre-release gate: tag validation, a clean
// versioned build, artifact version verification, and the optional drift
// and test gates that run before anything is published.
package release

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/civitrans/ptagen/internal/execx"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

var versionRx = regexp.MustCompile(`^\d+\.\d+\.\d+[0-9A-Za-z.\-+]*$`)

// NormalizeTag strips a single leading "v" and validates the remainder as a
// plain version: MAJOR.MINOR.PATCH with an optional suffix (pre-release or
// build metadata). Both "v0.2.5" and "0.2.5" normalize to "0.2.5".
func NormalizeTag(tag string) (string, error) {
	plain := strings.TrimPrefix(tag, "v")
	if !versionRx.MatchString(plain) {
		return "", fmt.Errorf("tag %q is not a release version: %w", tag, ptagen.ErrInvalidTag)
	}
	return plain, nil
}

// Preflight runs the release gate. It owns the dist directory: every run
// starts from a clean build so stale artifacts can never leak into a
// release.
type Preflight struct {
	fsys         filesystem.Provider
	runner       execx.Runner
	log          ptagen.Logger
	distDir      string
	buildCommand []string
	testCommand  []string

	// driftFn is the optional regeneration diff gate, wired in by the
	// caller when --ensure-types is requested.
	driftFn func() (ptagen.DriftReport, error)
}

// NewPreflight creates the release gate. driftFn may be nil when the caller
// never enables the type-sync gate.
func NewPreflight(fsys filesystem.Provider, runner execx.Runner, log ptagen.Logger, distDir string, buildCommand, testCommand []string, driftFn func() (ptagen.DriftReport, error)) *Preflight {
	return &Preflight{
		fsys:         fsys,
		runner:       runner,
		log:          log,
		distDir:      distDir,
		buildCommand: buildCommand,
		testCommand:  testCommand,
		driftFn:      driftFn,
	}
}

// Run executes the gate sequence for the given options. The first failing
// gate aborts the run; a nil return means every requested gate passed and
// the dist directory holds exactly the artifacts for the tag's version.
func (p *Preflight) Run(opts ptagen.ReleaseOptions) error {
	version, err := NormalizeTag(opts.Tag)
	if err != nil {
		return err
	}
	p.log.Info("preparing release %s (tag %s)", version, opts.Tag)

	if opts.EnsureTypes {
		if err := p.ensureTypesInSync(); err != nil {
			return err
		}
	}

	if err := p.build(version); err != nil {
		return err
	}

	if err := p.verifyArtifactVersion(version); err != nil {
		return err
	}

	if opts.RunTests {
		if err := p.runTests(); err != nil {
			return err
		}
	}

	return p.listArtifacts()
}

func (p *Preflight) ensureTypesInSync() error {
	if p.driftFn == nil {
		return fmt.Errorf("type-sync gate requested but no drift checker is configured")
	}
	p.log.Info("[gate] verifying committed types are in sync...")

	report, err := p.driftFn()
	if err != nil {
		return err
	}
	if !report.Empty() {
		p.log.Error("committed types drifted from the installed schemas:")
		p.log.Error("%s", report.Render(ptagen.MaxReportedDrifts))
		return fmt.Errorf("refusing to release with drifted types: %w", ptagen.ErrDriftDetected)
	}
	return nil
}

func (p *Preflight) build(version string) error {
	if len(p.buildCommand) == 0 {
		return fmt.Errorf("no build command configured: %w", ptagen.ErrInvalidConfig)
	}

	p.log.Info("[gate] cleaning %s", p.distDir)
	if err := p.fsys.RemoveAll(p.distDir); err != nil {
		return fmt.Errorf("failed to clean dist directory: %w", err)
	}

	p.log.Info("[gate] building artifacts pinned to %s", version)
	err := p.runner.Run(p.buildCommand[0], p.buildCommand[1:], execx.Options{
		ExtraEnv: []string{ptagen.BuildVersionEnv + "=" + version},
	})
	if err != nil {
		return fmt.Errorf("build command failed: %w", err)
	}
	return nil
}

// artifactRx extracts the version segment from a dist artifact name, e.g.
// ptagen_0.2.5_linux_amd64.tar.gz.
var artifactRx = regexp.MustCompile(`^ptagen[_-]v?(\d+\.\d+\.\d+[0-9A-Za-z.\-+]*)_`)

// verifyArtifactVersion requires at least one archive in dist and that every
// archive's embedded version exactly matches the normalized tag.
func (p *Preflight) verifyArtifactVersion(version string) error {
	entries, err := p.fsys.ReadDir(p.distDir)
	if err != nil {
		return fmt.Errorf("failed to read dist directory %s: %w", p.distDir, err)
	}

	var archives int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tar.gz") {
			continue
		}
		archives++

		m := artifactRx.FindStringSubmatch(entry.Name())
		if m == nil {
			return fmt.Errorf("artifact %s has no parseable version: %w", entry.Name(), ptagen.ErrVersionMismatch)
		}
		if m[1] != version {
			return fmt.Errorf("artifact %s carries version %s, tag resolves to %s: %w",
				entry.Name(), m[1], version, ptagen.ErrVersionMismatch)
		}
	}

	if archives == 0 {
		return fmt.Errorf("build produced no .tar.gz archives in %s: %w", p.distDir, ptagen.ErrVersionMismatch)
	}

	p.log.Info("[gate] %d artifact(s) verified at version %s", archives, version)
	return nil
}

func (p *Preflight) runTests() error {
	if len(p.testCommand) == 0 {
		return fmt.Errorf("no test command configured: %w", ptagen.ErrInvalidConfig)
	}
	p.log.Info("[gate] running test suite...")
	if err := p.runner.Run(p.testCommand[0], p.testCommand[1:], execx.Options{}); err != nil {
		return fmt.Errorf("test suite failed: %w", err)
	}
	return nil
}

func (p *Preflight) listArtifacts() error {
	entries, err := p.fsys.ReadDir(p.distDir)
	if err != nil {
		return err
	}
	p.log.Info("release artifacts:")
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		p.log.Info("  %s (%d bytes)", path.Join(p.distDir, entry.Name()), entry.Size())
	}
	return nil
}
