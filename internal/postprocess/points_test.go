package postprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/logging"
)

const unpatchedSeries = `package ptagtypes

type PTagSeries struct {
	Topic       string             ` + "`json:\"topic\"`" + `
	GeneratedAt string             ` + "`json:\"generated_at\"`" + `
	Interval    PTagInterval       ` + "`json:\"interval\"`" + `
	Points      []PTagSeriesPoint  ` + "`json:\"points\" yaml:\"points\" mapstructure:\"points\"`" + `
}
`

func writeSeries(t *testing.T, content string) (*filesystem.MemoryFileSystem, string) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/out/ptag_series_gen.go", content)
	return mfs, "/out/ptag_series_gen.go"
}

func TestFixPointsField_PatchesRequiredField(t *testing.T) {
	mfs, file := writeSeries(t, unpatchedSeries)

	changed, err := FixPointsField(mfs, logging.NewNullLogger(), file)
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := mfs.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Points []PTagSeriesPoint `json:\"points,omitempty\"`")
	assert.NotContains(t, string(content), "mapstructure")
	// Indentation of the declaration is preserved.
	assert.Contains(t, string(content), "\tPoints []PTagSeriesPoint")
}

func TestFixPointsField_Idempotent(t *testing.T) {
	mfs, file := writeSeries(t, unpatchedSeries)
	log := logging.NewNullLogger()

	changed, err := FixPointsField(mfs, log, file)
	require.NoError(t, err)
	require.True(t, changed)

	first, err := mfs.ReadFile(file)
	require.NoError(t, err)

	// Second run detects the canonical form and leaves the file alone.
	changed, err = FixPointsField(mfs, log, file)
	require.NoError(t, err)
	assert.False(t, changed)

	second, err := mfs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestFixPointsField_ToleratesWhitespaceVariation(t *testing.T) {
	variant := strings.Replace(unpatchedSeries,
		"Points      []PTagSeriesPoint  `json:\"points\" yaml:\"points\" mapstructure:\"points\"`",
		"Points   []PTagSeriesPoint `json:\"points\"`", 1)
	mfs, file := writeSeries(t, variant)

	changed, err := FixPointsField(mfs, logging.NewNullLogger(), file)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestFixPointsField_PatternNotFoundSkips(t *testing.T) {
	mfs, file := writeSeries(t, "package ptagtypes\n\ntype PTagSeries struct{}\n")

	changed, err := FixPointsField(mfs, logging.NewNullLogger(), file)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFixPointsField_NormalizesLineEndings(t *testing.T) {
	mfs, file := writeSeries(t, strings.ReplaceAll(unpatchedSeries, "\n", "\r\n"))

	changed, err := FixPointsField(mfs, logging.NewNullLogger(), file)
	require.NoError(t, err)
	require.True(t, changed)

	content, err := mfs.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "\r\n")
}
