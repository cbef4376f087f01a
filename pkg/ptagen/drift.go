package ptagen

import (
	"fmt"
	"strings"
)

// DriftKind classifies a single drift report entry.
type DriftKind string

const (
	// DriftOnlyCommitted marks a path present only in the committed tree.
	DriftOnlyCommitted DriftKind = "only-in-committed"

	// DriftOnlyRegenerated marks a path present only in the regenerated tree.
	DriftOnlyRegenerated DriftKind = "only-in-regenerated"

	// DriftModified marks a path whose content differs between the trees.
	DriftModified DriftKind = "modified"

	// DriftHashMismatch marks a stamped schema hash that no longer matches
	// the installed schema text.
	DriftHashMismatch DriftKind = "hash-mismatch"

	// DriftHeaderMissing marks a generated file whose provenance header is
	// absent or names the wrong schema.
	DriftHeaderMissing DriftKind = "header-missing"
)

// Drift is one human-readable difference entry.
type Drift struct {
	Kind   DriftKind
	Path   string
	Detail string
}

// String renders the entry for console output.
func (d Drift) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Path)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Path, d.Detail)
}

// DriftReport is an ordered sequence of difference entries.
// An empty report signals "in sync". Ephemeral: produced and consumed within
// a single verification invocation.
type DriftReport []Drift

// Empty reports whether no drift was found.
func (r DriftReport) Empty() bool { return len(r) == 0 }

// Render formats up to limit entries, collapsing the remainder into a count.
// A non-positive limit renders every entry.
func (r DriftReport) Render(limit int) string {
	if limit <= 0 || limit > len(r) {
		limit = len(r)
	}

	var b strings.Builder
	for _, d := range r[:limit] {
		b.WriteString("  ")
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	if rest := len(r) - limit; rest > 0 {
		fmt.Fprintf(&b, "  ... and %d more differences\n", rest)
	}
	return b.String()
}
