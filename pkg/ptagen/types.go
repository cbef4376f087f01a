package ptagen

// SchemaPair holds the resolved schema filenames for one generation run.
// Resolved once per invocation by name-matching against the schema package;
// immutable thereafter.
type SchemaPair struct {
	// Series is the filename of the series schema (ptag_series.schema.json).
	Series string

	// Record is the filename of the record schema (ptag.schema.json).
	Record string
}

// Symbols are the concrete type names resolved from generated source.
// They are discovered from the files' actual declarations, never assumed,
// so the exported surface always matches what was truly generated.
type Symbols struct {
	Record   string // record type, expected in the record file
	Series   string // series type, expected in the series file
	Interval string // interval enumeration, expected in the series file
}

// GenerateOptions parameterizes a generation run.
type GenerateOptions struct {
	// OutDir is the directory receiving the generated package files.
	OutDir string

	// Verbose enables detailed logging.
	Verbose bool
}

// ReleaseOptions parameterizes a release preflight run.
type ReleaseOptions struct {
	// Tag is the git tag gating the release (e.g. "v0.2.5" or "0.2.5").
	Tag string

	// EnsureTypes runs the full regeneration diff; any drift is fatal.
	EnsureTypes bool

	// RunTests runs the downstream test suite; non-zero exit is fatal.
	RunTests bool
}
