package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civitrans/ptagen/internal/release"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "List built release artifacts and their bundled schemas",
	Long: `Artifacts lists the contents of the dist directory. For each archive the
bundled schema documents are listed, so a reviewer can confirm the schemas
shipped with a build without unpacking anything.`,
	Args: cobra.NoArgs,
	RunE: runArtifacts,
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	proj, err := openProject(getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	artifacts, err := release.ListArtifacts(proj.fsys, proj.cfg.DistDir)
	if err != nil {
		return err
	}

	for _, artifact := range artifacts {
		fmt.Printf("%s (%d bytes)\n", artifact.Name, artifact.Size)
		for _, schema := range artifact.Schemas {
			fmt.Printf("  bundles %s\n", schema)
		}
	}
	return nil
}
