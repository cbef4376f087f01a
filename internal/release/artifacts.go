package release

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// Artifact describes one file in the dist directory.
type Artifact struct {
	Name    string
	Size    int64
	Schemas []string // schema files bundled inside the archive, if any
}

// ListArtifacts enumerates the dist directory and, for each .tar.gz
// archive, records the schema files bundled inside it. At least one archive
// must be present; a dist directory full of loose files is not a release.
func ListArtifacts(fsys filesystem.Provider, distDir string) ([]Artifact, error) {
	entries, err := fsys.ReadDir(distDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dist directory %s: %w", distDir, err)
	}

	var artifacts []Artifact
	var archives int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		artifact := Artifact{Name: entry.Name(), Size: entry.Size()}

		if strings.HasSuffix(entry.Name(), ".tar.gz") {
			archives++
			schemas, err := bundledSchemas(fsys, path.Join(distDir, entry.Name()))
			if err != nil {
				return nil, err
			}
			artifact.Schemas = schemas
		}
		artifacts = append(artifacts, artifact)
	}

	if archives == 0 {
		return nil, fmt.Errorf("no .tar.gz archives in %s: %w", distDir, ptagen.ErrVersionMismatch)
	}
	return artifacts, nil
}

// bundledSchemas lists the *.schema.json entries inside a gzipped tarball.
func bundledSchemas(fsys filesystem.Provider, archivePath string) ([]string, error) {
	content, err := fsys.ReadFile(archivePath)
	if err != nil {
		return nil, err
	}

	gz, err := gzip.NewReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", archivePath, err)
	}
	defer gz.Close()

	var schemas []string
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", archivePath, err)
		}
		if hdr.Typeflag == tar.TypeReg && strings.HasSuffix(hdr.Name, ".schema.json") {
			schemas = append(schemas, hdr.Name)
		}
	}

	sort.Strings(schemas)
	return schemas, nil
}
