package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civitrans/ptagen/internal/logging"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

const remediationHint = "To fix: run `ptagen generate` and commit the updated files."

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify committed models are in sync with the installed schemas",
	Long: `Check runs the drift gates against the committed generated package.

Without a subcommand, all three checks run in order:
  hash     - compare stamped schema hashes against recomputed digests (fast)
  drift    - regenerate into a scratch directory and diff file-by-file (authoritative)
  runtime  - verify runtime invariants of the committed package

Any detected drift exits non-zero, making the command suitable as a CI and
pre-commit gate.`,
	Args: cobra.NoArgs,
	RunE: runCheckAll,
}

var checkHashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compare stamped schema hashes against the installed schemas",
	Long: `Hash recomputes each schema's SHA-256 digest and compares it against the
hash stamped in the corresponding committed model file. This is the cheap
check: it catches schema-content drift without invoking the compiler, but
cannot see drift introduced by compiler or pipeline changes.`,
	Args: cobra.NoArgs,
	RunE: runCheckHash,
}

var checkDriftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Regenerate into a scratch directory and diff against committed files",
	Long: `Drift performs the authoritative check: a full regeneration into a
temporary directory followed by a file-by-file content comparison with the
committed package. The version stamp file and test files are excluded.`,
	Args: cobra.NoArgs,
	RunE: runCheckDrift,
}

var checkRuntimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Verify runtime invariants of the committed package",
	Long: `Runtime verifies that the committed generated package upholds its
behavioral contract, independent of how it was produced. In particular a
series value without points must remain valid, which requires the patched
points field and a schema without a minimum-items constraint.`,
	Args: cobra.NoArgs,
	RunE: runCheckRuntime,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkHashCmd)
	checkCmd.AddCommand(checkDriftCmd)
	checkCmd.AddCommand(checkRuntimeCmd)
}

func runCheckAll(cmd *cobra.Command, args []string) error {
	if err := runCheckHash(cmd, args); err != nil {
		return err
	}
	if err := runCheckDrift(cmd, args); err != nil {
		return err
	}
	return runCheckRuntime(cmd, args)
}

func runCheckHash(cmd *cobra.Command, args []string) error {
	proj, err := openProject(getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	report, err := proj.hashChecker().Check(proj.cfg.OutDir)
	if err != nil {
		return err
	}
	return reportOutcome("schema hashes match committed models", report)
}

func runCheckDrift(cmd *cobra.Command, args []string) error {
	proj, err := openProject(getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	report, err := proj.driftChecker().Check(proj.cfg.OutDir)
	if err != nil {
		return err
	}
	return reportOutcome("committed models match a fresh regeneration", report)
}

func runCheckRuntime(cmd *cobra.Command, args []string) error {
	proj, err := openProject(getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	if err := proj.invariantChecker().Check(proj.cfg.OutDir); err != nil {
		fmt.Println(logging.FailLine("%v", err))
		return err
	}
	fmt.Println(logging.PassLine("committed package invariants hold"))
	return nil
}

// reportOutcome prints the PASS/FAIL result line and converts a non-empty
// drift report into the error that drives the exit code.
func reportOutcome(passMessage string, report ptagen.DriftReport) error {
	if report.Empty() {
		fmt.Println(logging.PassLine("%s", passMessage))
		return nil
	}

	fmt.Println(logging.FailLine("%d difference(s) found:", len(report)))
	fmt.Print(report.Render(ptagen.MaxReportedDrifts))
	fmt.Println(remediationHint)
	return fmt.Errorf("%d difference(s) between schemas and committed models: %w",
		len(report), ptagen.ErrDriftDetected)
}
