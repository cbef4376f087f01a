package ptagen

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Operation completed, everything in sync
	ExitGeneralError      = 1  // Unknown error, detected drift, or failed verification
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitSchemaNotFound    = 11 // Schema package has no schema files
	ExitSchemaAmbiguous   = 12 // Canonical schema names could not be resolved
	ExitCompilationFailed = 13 // External model compiler failed (child code wins when known)
	ExitMissingSymbol     = 14 // Generated source lacks an expected type declaration
	ExitInvalidTag        = 15 // Release tag does not normalize to a version
	ExitVersionMismatch   = 16 // Built artifact version differs from the tag
)

// Canonical schema filenames inside the schema package.
const (
	SeriesSchemaName = "ptag_series.schema.json"
	RecordSchemaName = "ptag.schema.json"
)

// SchemaFileSuffix identifies schema documents during discovery.
const SchemaFileSuffix = ".schema.json"

// Generated file names inside the output package.
const (
	RecordFileName  = "ptag_gen.go"
	SeriesFileName  = "ptag_series_gen.go"
	MetaFileName    = "meta_gen.go"
	APIFileName     = "api_gen.go"
	VersionFileName = "version_gen.go"
)

// Provenance header field keys. The header occupies the first four lines of
// every generated model file:
//
//	// AUTO-GENERATED: do not edit by hand
//	// source-schema: <schema-filename>
//	// schema-sha256: <64-char lowercase hex>
//	// spec-version: <version-string>
const (
	HeaderNotice     = "AUTO-GENERATED: do not edit by hand"
	HeaderSchemaKey  = "source-schema"
	HeaderHashKey    = "schema-sha256"
	HeaderVersionKey = "spec-version"
)

// Expected public symbols in generated source.
const (
	RecordSymbol   = "PTag"
	SeriesSymbol   = "PTagSeries"
	IntervalSymbol = "PTagInterval"
)

// UnknownVersion is the sentinel used when no version metadata is available.
const UnknownVersion = "0.0.0+unknown"

// BuildVersionEnv pins the distribution version for a single build invocation.
const BuildVersionEnv = "PTAGEN_BUILD_VERSION"

// SpecDirEnv overrides the schema package location from the environment.
const SpecDirEnv = "PTAGEN_SPEC_DIR"

// MaxReportedDrifts bounds how many differences a drift report prints
// before collapsing the remainder into a count.
const MaxReportedDrifts = 10
