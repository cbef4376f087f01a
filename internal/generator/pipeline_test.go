package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/execx"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/logging"
	"github.com/civitrans/ptagen/internal/specpkg"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

const seriesSchemaText = `{"title":"PTagSeries","type":"object"}`
const recordSchemaText = `{"title":"PTag","type":"object"}`

const compiledSeries = `package ptagtypes

type PTagInterval string

type PTagSeriesPoint struct {
	Volume int ` + "`json:\"volume\"`" + `
}

type PTagSeries struct {
	Topic  string            ` + "`json:\"topic\"`" + `
	Points []PTagSeriesPoint ` + "`json:\"points\" yaml:\"points\"`" + `
}
`

const compiledRecord = `package ptagtypes

type PTag struct {
	DedupHash string ` + "`json:\"dedup_hash\"`" + `
}
`

// fakeRunner simulates the external compiler and formatter: the compiler
// writes canned output for the schema it was given, the formatter is a
// no-op.
type fakeRunner struct {
	fsys    filesystem.Provider
	outputs map[string]string
	calls   []string
	fail    error
}

func (r *fakeRunner) Run(name string, args []string, opts execx.Options) error {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	if name != "go-jsonschema" {
		return nil
	}
	if r.fail != nil {
		return r.fail
	}

	var out string
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "-o" {
			out = args[i+1]
		}
	}
	schema := args[len(args)-1]
	content, ok := r.outputs[schema]
	if !ok {
		return errors.New("unexpected schema path: " + schema)
	}
	return r.fsys.WriteFile(out, []byte(content))
}

func newTestPipeline(t *testing.T, fail error) (*Pipeline, *filesystem.MemoryFileSystem, *fakeRunner) {
	t.Helper()

	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/spec/schemas/ptag_series.schema.json", seriesSchemaText)
	mfs.AddFile("/spec/schemas/ptag.schema.json", recordSchemaText)
	mfs.AddFile("/spec/VERSION", "0.2.5\n")

	runner := &fakeRunner{
		fsys: mfs,
		outputs: map[string]string{
			"/spec/schemas/ptag_series.schema.json": compiledSeries,
			"/spec/schemas/ptag.schema.json":        compiledRecord,
		},
		fail: fail,
	}

	log := logging.NewNullLogger()
	spec := specpkg.OpenFS("/spec", mfs)
	compiler := NewCompiler("go-jsonschema", "gofmt", "ptagtypes", runner, mfs, log)
	return NewPipeline(spec, compiler, mfs, checksum.New(), "ptagtypes", log), mfs, runner
}

func TestGenerateAll(t *testing.T) {
	pipeline, mfs, runner := newTestPipeline(t, nil)

	require.NoError(t, pipeline.GenerateAll("/out"))

	calc := checksum.New()

	// Series file: patched, stamped with the series schema's hash.
	series, err := mfs.ReadFile("/out/ptag_series_gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(series), "Points []PTagSeriesPoint `json:\"points,omitempty\"`")
	h := ParseHeader(series)
	assert.Equal(t, "ptag_series.schema.json", h.SchemaName)
	assert.Equal(t, calc.Sum([]byte(seriesSchemaText)), h.SchemaSHA)
	assert.Equal(t, "0.2.5", h.Version)

	// Record file: stamped with the record schema's hash.
	record, err := mfs.ReadFile("/out/ptag_gen.go")
	require.NoError(t, err)
	h = ParseHeader(record)
	assert.Equal(t, "ptag.schema.json", h.SchemaName)
	assert.Equal(t, calc.Sum([]byte(recordSchemaText)), h.SchemaSHA)

	// Metadata, surface, and version files exist with expected content.
	meta, err := mfs.ReadFile("/out/meta_gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(meta), `const PTagSpecVersion = "0.2.5"`)
	assert.Contains(t, string(meta), calc.Sum([]byte(seriesSchemaText)))

	api, err := mfs.ReadFile("/out/api_gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(api), "Series   = PTagSeries")

	_, err = mfs.ReadFile("/out/version_gen.go")
	require.NoError(t, err)

	// Compiler invoked once per schema with a fixed argument vector.
	var compileCalls int
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "go-jsonschema ") {
			compileCalls++
			assert.Contains(t, call, "-p ptagtypes")
			assert.Contains(t, call, "--tags json")
		}
	}
	assert.Equal(t, 2, compileCalls)
}

func TestGenerateAll_Idempotent(t *testing.T) {
	t.Setenv(ptagen.BuildVersionEnv, "0.2.5")

	pipeline, mfs, _ := newTestPipeline(t, nil)
	require.NoError(t, pipeline.GenerateAll("/out"))

	first := map[string]string{}
	require.NoError(t, mfs.WalkFiles("/out", func(rel string) error {
		content, err := mfs.ReadFile("/out/" + rel)
		if err != nil {
			return err
		}
		first[rel] = string(content)
		return nil
	}))
	require.Len(t, first, 5)

	// Second run from the same schema inputs produces byte-identical files.
	require.NoError(t, pipeline.GenerateAll("/out"))
	require.NoError(t, mfs.WalkFiles("/out", func(rel string) error {
		content, err := mfs.ReadFile("/out/" + rel)
		if err != nil {
			return err
		}
		assert.Equal(t, first[rel], string(content), "file %s changed between runs", rel)
		return nil
	}))
}

func TestGenerateAll_CompilationFailed(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t, errors.New("exit status 2"))

	err := pipeline.GenerateAll("/out")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrCompilationFailed))
}

func TestHashes(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t, nil)

	hashes, err := pipeline.Hashes()
	require.NoError(t, err)
	calc := checksum.New()
	assert.Equal(t, calc.Sum([]byte(seriesSchemaText)), hashes["ptag_series.schema.json"])
	assert.Equal(t, calc.Sum([]byte(recordSchemaText)), hashes["ptag.schema.json"])
}

func TestModelFileFor(t *testing.T) {
	f, err := ModelFileFor("ptag_series.schema.json")
	require.NoError(t, err)
	assert.Equal(t, "ptag_series_gen.go", f)

	f, err = ModelFileFor("ptag.schema.json")
	require.NoError(t, err)
	assert.Equal(t, "ptag_gen.go", f)

	_, err = ModelFileFor("unknown.schema.json")
	assert.Error(t, err)
}
