package ptagen

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := checker.Check(dir)
//	if errors.Is(err, ptagen.ErrSchemaNotFound) {
//	    // schema package not installed with data files
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema package yielded no schema files.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrSchemaAmbiguous indicates a canonical schema name could not be
	// uniquely resolved from the discovered files.
	ErrSchemaAmbiguous = errors.New("schema name resolution failed")

	// ErrCompilationFailed indicates the external model compiler exited non-zero.
	ErrCompilationFailed = errors.New("model compilation failed")

	// ErrMissingSymbol indicates generated source lacks an expected type declaration.
	ErrMissingSymbol = errors.New("expected symbol missing from generated source")

	// ErrHashMismatch indicates a stamped schema hash no longer matches the
	// installed schema text.
	ErrHashMismatch = errors.New("schema hash mismatch")

	// ErrHeaderMissing indicates a generated file lacks its provenance header
	// or names the wrong source schema.
	ErrHeaderMissing = errors.New("provenance header missing or wrong")

	// ErrInvariantViolated indicates a runtime invariant of the committed
	// generated package does not hold.
	ErrInvariantViolated = errors.New("generated package invariant violated")

	// ErrInvalidTag indicates a release tag does not look like a version.
	ErrInvalidTag = errors.New("invalid release tag")

	// ErrVersionMismatch indicates the built artifact embeds a version that
	// differs from the release tag.
	ErrVersionMismatch = errors.New("artifact version mismatch")

	// ErrDriftDetected indicates committed generated files differ from a
	// fresh regeneration.
	ErrDriftDetected = errors.New("generated files drifted from schema")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
//
// When a child process failure is in the chain, its exit code is propagated
// verbatim so CI surfaces the real cause.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSchemaNotFound):
		return ExitSchemaNotFound
	case errors.Is(err, ErrSchemaAmbiguous):
		return ExitSchemaAmbiguous
	case errors.Is(err, ErrCompilationFailed):
		return ExitCompilationFailed
	case errors.Is(err, ErrMissingSymbol):
		return ExitMissingSymbol
	case errors.Is(err, ErrInvalidTag):
		return ExitInvalidTag
	case errors.Is(err, ErrVersionMismatch):
		return ExitVersionMismatch
	case errors.Is(err, ErrHashMismatch),
		errors.Is(err, ErrHeaderMissing),
		errors.Is(err, ErrInvariantViolated),
		errors.Is(err, ErrDriftDetected):
		return ExitGeneralError
	}

	if isUsageError(err.Error()) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// isUsageError recognizes cobra/pflag parse failures by their message
// prefixes, since those libraries return plain errors without sentinels.
func isUsageError(msg string) bool {
	for _, prefix := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"required flag",
		"accepts ",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
