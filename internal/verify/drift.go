package verify

import (
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/generator"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// DefaultExclusion is the declarative filter for tree comparison: files
// whose identity is not regeneration output are ignored. That is the
// version stamp file (refreshed per build) and Go test files living beside
// the committed package.
func DefaultExclusion(rel string) bool {
	base := path.Base(rel)
	return base == ptagen.VersionFileName || strings.HasSuffix(base, "_test.go")
}

// DriftChecker regenerates the whole package into an isolated temporary
// location and structurally compares it against the committed files. This
// is the authoritative check: it catches drift from schema, compiler,
// patch, and assembler changes alike.
type DriftChecker struct {
	pipeline *generator.Pipeline
	fsys     filesystem.Provider
	calc     checksum.Calculator
	log      ptagen.Logger
	tmpRoot  string
}

// NewDriftChecker creates a drift checker. tmpRoot hosts the scratch
// regeneration directories (os.TempDir() in production).
func NewDriftChecker(pipeline *generator.Pipeline, fsys filesystem.Provider, calc checksum.Calculator, tmpRoot string, log ptagen.Logger) *DriftChecker {
	return &DriftChecker{pipeline: pipeline, fsys: fsys, calc: calc, log: log, tmpRoot: tmpRoot}
}

// Check regenerates into a scratch directory and diffs against typesDir.
// The scratch directory is removed on every exit path so repeated CI runs
// never accumulate state.
func (c *DriftChecker) Check(typesDir string) (ptagen.DriftReport, error) {
	regenDir := path.Join(c.tmpRoot, "ptagen-regen-"+uuid.NewString())
	defer func() {
		if err := c.fsys.RemoveAll(regenDir); err != nil {
			c.log.Error("failed to clean up %s: %v", regenDir, err)
		}
	}()

	c.log.Info("regenerating types into: %s", regenDir)
	if err := c.pipeline.GenerateAll(regenDir); err != nil {
		return nil, err
	}

	c.log.Info("comparing regenerated vs committed...")
	return CompareDirs(c.fsys, c.calc, typesDir, regenDir, DefaultExclusion)
}

// CompareDirs performs a recursive tree comparison between the committed
// and regenerated directories. Comparison is by content hash per relative
// path, never by timestamp. exclude filters paths out of the comparison
// entirely; nil means no exclusion.
func CompareDirs(fsys filesystem.Provider, calc checksum.Calculator, committedDir, regenDir string, exclude func(rel string) bool) (ptagen.DriftReport, error) {
	hashTree := func(root string) (map[string]string, error) {
		tree := make(map[string]string)
		err := fsys.WalkFiles(root, func(rel string) error {
			if exclude != nil && exclude(rel) {
				return nil
			}
			content, err := fsys.ReadFile(path.Join(root, rel))
			if err != nil {
				return err
			}
			tree[rel] = calc.Sum(content)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return tree, nil
	}

	committed, err := hashTree(committedDir)
	if err != nil {
		return nil, err
	}
	regenerated, err := hashTree(regenDir)
	if err != nil {
		return nil, err
	}

	union := make(map[string]struct{}, len(committed)+len(regenerated))
	for rel := range committed {
		union[rel] = struct{}{}
	}
	for rel := range regenerated {
		union[rel] = struct{}{}
	}

	rels := make([]string, 0, len(union))
	for rel := range union {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	var report ptagen.DriftReport
	for _, rel := range rels {
		committedHash, inCommitted := committed[rel]
		regenHash, inRegen := regenerated[rel]

		switch {
		case !inRegen:
			report = append(report, ptagen.Drift{Kind: ptagen.DriftOnlyCommitted, Path: rel})
		case !inCommitted:
			report = append(report, ptagen.Drift{Kind: ptagen.DriftOnlyRegenerated, Path: rel})
		case committedHash != regenHash:
			report = append(report, ptagen.Drift{Kind: ptagen.DriftModified, Path: rel})
		}
	}

	return report, nil
}
