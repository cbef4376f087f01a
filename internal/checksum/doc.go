// Package checksum provides content hashing for schema provenance tracking.
//
// Every generated model file is stamped with the SHA-256 digest of the schema
// text that produced it, and the same digest is recomputed later to detect
// drift. Two variants exist:
//
//   - Sum: digest of the exact bytes (the canonical provenance hash)
//   - SumNormalized: digest after CRLF -> LF conversion, for callers that
//     need hash stability across platform line-ending conventions
//
// Callers that require cross-platform stable digests must normalize before
// hashing; the generator normalizes generated files on disk for the same
// reason, so Sum over on-disk generated content is already stable.
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
