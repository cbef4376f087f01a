package ptagen_test

import (
	"strings"
	"testing"

	"github.com/civitrans/ptagen/pkg/ptagen"
)

func TestDriftString(t *testing.T) {
	d := ptagen.Drift{Kind: ptagen.DriftModified, Path: "ptag_gen.go"}
	if got := d.String(); got != "modified: ptag_gen.go" {
		t.Errorf("String() = %q", got)
	}

	d.Detail = "content differs"
	if got := d.String(); got != "modified: ptag_gen.go (content differs)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDriftReportRender_Unbounded(t *testing.T) {
	report := ptagen.DriftReport{
		{Kind: ptagen.DriftOnlyCommitted, Path: "a.go"},
		{Kind: ptagen.DriftOnlyRegenerated, Path: "b.go"},
	}

	rendered := report.Render(0)
	if !strings.Contains(rendered, "a.go") || !strings.Contains(rendered, "b.go") {
		t.Errorf("Render(0) should include every entry, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "more difference") {
		t.Errorf("Render(0) should not collapse entries, got:\n%s", rendered)
	}
}

func TestDriftReportEmpty(t *testing.T) {
	var report ptagen.DriftReport
	if !report.Empty() {
		t.Error("nil report should be empty")
	}
	report = append(report, ptagen.Drift{Kind: ptagen.DriftModified, Path: "x"})
	if report.Empty() {
		t.Error("non-empty report reported as empty")
	}
}
