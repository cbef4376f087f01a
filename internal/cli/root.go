package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ptagen",
	Short: "Schema-to-model pipeline for PTag telemetry types",
	Long: `ptagen generates the typed PTag model package from the installed JSON
Schema package and verifies that the committed models never silently drift
from the schemas they were generated from.

The schemas are the single source of truth. Generated files are committed
for reviewability, and three independent checks (schema hash, full
regeneration diff, runtime invariants) gate commits and releases.

Exit Codes:
  0  - Success, everything in sync
  1  - General error or detected drift
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Schema package has no schema files
  12 - Canonical schema names could not be resolved
  13 - Model compiler failed (child exit code propagated when known)
  14 - Generated source lacks an expected type declaration
  15 - Release tag does not normalize to a version
  16 - Built artifact version differs from the tag`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for ptagen")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
