// Package postprocess applies idempotent, pattern-based patches to freshly
// generated model source before it is stamped and committed.
package postprocess

import (
	"fmt"
	"regexp"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// canonicalPointsField is the declaration the series file must end up with:
// the points field defaults to an empty sequence instead of being required.
const canonicalPointsField = "Points []PTagSeriesPoint `json:\"points,omitempty\"`"

var (
	// Matches the declaration once it already carries the default-empty tag.
	pointsAlreadyOK = regexp.MustCompile(
		"(?m)^[ \t]*Points\\s+\\[\\]PTagSeriesPoint\\s+`json:\"points,omitempty\"`[ \t]*$")

	// Matches the declaration in whatever shape the compiler emitted it,
	// tolerating tag and whitespace variation.
	pointsField = regexp.MustCompile(
		"(?m)^([ \t]*)Points\\s+\\[\\]PTagSeriesPoint\\s+`[^`]*`")
)

// FixPointsField rewrites the series type's points declaration so an absent
// or empty points collection validates, instead of the field being required.
//
// The patch is idempotent: when the declaration already has the canonical
// form, nothing is written and false is returned. When the expected pattern
// is not found at all (the upstream compiler changed its emitted syntax),
// the skip is logged and false is returned rather than failing the
// pipeline; the full regeneration diff remains the authoritative gate.
func FixPointsField(fsys filesystem.Provider, log ptagen.Logger, seriesFile string) (bool, error) {
	content, err := fsys.ReadFile(seriesFile)
	if err != nil {
		return false, fmt.Errorf("failed to read series file: %w", err)
	}
	text := string(content)

	if pointsAlreadyOK.MatchString(text) {
		log.Verbose("[series] points field already defaults to empty (skip patch)")
		return false, nil
	}

	loc := pointsField.FindStringSubmatchIndex(text)
	if loc == nil {
		log.Info("[series] points field pattern not found (skip patch)")
		return false, nil
	}

	// Replace only the first occurrence, keeping the original indentation.
	indent := text[loc[2]:loc[3]]
	patched := text[:loc[0]] + indent + canonicalPointsField + text[loc[1]:]

	normalized := checksum.NormalizeLineEndings([]byte(patched))
	if err := fsys.WriteFile(seriesFile, normalized); err != nil {
		return false, fmt.Errorf("failed to write patched series file: %w", err)
	}

	log.Info("[series] patched points field -> default empty sequence")
	return true, nil
}
