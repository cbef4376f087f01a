package cli

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the typed model package from the installed schemas",
	Long: `Generate compiles each JSON Schema into a Go model file, applies the
points-field patch, stamps provenance headers, and writes the package
metadata, public surface, and version stamp files.

Generation is idempotent: re-running with the same schema inputs produces
byte-identical committed files (only the version stamp may differ between
environments). Commit the output directory after every schema change.

Examples:
  # Regenerate into the configured output directory
  ptagen generate

  # Regenerate into an explicit directory
  ptagen generate --out ./internal/models`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var generateOut string

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateOut, "out", "",
		"Output directory for the generated package (default: out_dir from ptagen.yaml)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	proj, err := openProject(getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	outDir := generateOut
	if outDir == "" {
		outDir = proj.cfg.OutDir
	}
	return proj.pipeline.GenerateAll(outDir)
}
