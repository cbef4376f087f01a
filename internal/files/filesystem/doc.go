// Package filesystem provides the file access abstraction used by the
// generation and drift-verification pipeline.
//
// The Provider interface covers the small set of operations the pipeline
// needs: reading schema documents, writing generated files, and walking
// trees for content comparison. The OS implementation is used in
// production; the in-memory implementation lets tests run the full
// pipeline without touching disk.
package filesystem
