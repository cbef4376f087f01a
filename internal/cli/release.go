package cli

import (
	"github.com/spf13/cobra"

	"github.com/civitrans/ptagen/internal/release"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Run the pre-release gate for a tagged version",
	Long: `Release validates the tag, rebuilds the dist directory from scratch with
the version pinned into the build environment, and verifies that every
built archive embeds exactly the tag's version.

The dist directory is wiped on every run, so stale artifacts from earlier
builds can never leak into a release.

Examples:
  # Gate a release for tag v0.2.5
  ptagen release --tag v0.2.5

  # Additionally refuse to release with drifted committed types
  ptagen release --tag v0.2.5 --ensure-types

  # Full gate: drift check, build, artifact verification, test suite
  ptagen release --tag v0.2.5 --ensure-types --run-tests`,
	Args: cobra.NoArgs,
	RunE: runRelease,
}

var releaseFlags ptagen.ReleaseOptions

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVar(&releaseFlags.Tag, "tag", "",
		"Release tag to gate (e.g. v0.2.5 or 0.2.5)")
	releaseCmd.Flags().BoolVar(&releaseFlags.EnsureTypes, "ensure-types", false,
		"Refuse to release when committed types drift from the schemas")
	releaseCmd.Flags().BoolVar(&releaseFlags.RunTests, "run-tests", false,
		"Run the configured test command after building")
	_ = releaseCmd.MarkFlagRequired("tag")
}

func runRelease(cmd *cobra.Command, args []string) error {
	proj, err := openProject(getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	driftFn := func() (ptagen.DriftReport, error) {
		return proj.driftChecker().Check(proj.cfg.OutDir)
	}

	preflight := release.NewPreflight(proj.fsys, proj.runner, proj.log,
		proj.cfg.DistDir, proj.cfg.BuildCommand, proj.cfg.TestCommand, driftFn)
	return preflight.Run(releaseFlags)
}
