package specpkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

func newSpecFS(t *testing.T) *filesystem.MemoryFileSystem {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/spec/schemas/ptag.schema.json", `{"title":"PTag"}`)
	mfs.AddFile("/spec/schemas/ptag_series.schema.json", `{"title":"PTagSeries"}`)
	mfs.AddFile("/spec/VERSION", "0.2.5\n")
	return mfs
}

func TestDiscoverSchemas(t *testing.T) {
	pkg := OpenFS("/spec", newSpecFS(t))

	pair, err := pkg.DiscoverSchemas()
	require.NoError(t, err)
	assert.Equal(t, "ptag_series.schema.json", pair.Series)
	assert.Equal(t, "ptag.schema.json", pair.Record)
}

func TestDiscoverSchemas_FallbackToRoot(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/flat/ptag.schema.json", "{}")
	mfs.AddFile("/flat/ptag_series.schema.json", "{}")

	pkg := OpenFS("/flat", mfs)
	assert.Equal(t, "/flat", pkg.SchemaDir())

	pair, err := pkg.DiscoverSchemas()
	require.NoError(t, err)
	assert.Equal(t, "ptag_series.schema.json", pair.Series)
}

func TestDiscoverSchemas_NoneFound(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/spec/schemas/readme.txt", "not a schema")

	_, err := OpenFS("/spec", mfs).DiscoverSchemas()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrSchemaNotFound))
}

func TestDiscoverSchemas_Ambiguous(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/spec/schemas/ptag.schema.json", "{}")
	mfs.AddFile("/spec/schemas/series_v2.schema.json", "{}")

	_, err := OpenFS("/spec", mfs).DiscoverSchemas()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrSchemaAmbiguous))
	// Every discovered name is reported for diagnosis.
	assert.Contains(t, err.Error(), "series_v2.schema.json")
	assert.Contains(t, err.Error(), "ptag.schema.json")
}

func TestSchemaText(t *testing.T) {
	pkg := OpenFS("/spec", newSpecFS(t))

	content, err := pkg.SchemaText("ptag.schema.json")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"PTag"}`, string(content))

	_, err = pkg.SchemaText("missing.schema.json")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	pkg := OpenFS("/spec", newSpecFS(t))
	assert.Equal(t, "0.2.5", pkg.Version())
}

func TestVersion_MissingFileSentinel(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/spec/schemas/ptag.schema.json", "{}")

	pkg := OpenFS("/spec", mfs)
	assert.Equal(t, ptagen.UnknownVersion, pkg.Version())
}
