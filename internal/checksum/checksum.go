package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing content hashes.
// This abstraction allows swapping the digest strategy without touching callers.
type Calculator interface {
	// Sum computes a hash of the exact, unmodified content.
	Sum(content []byte) string

	// SumNormalized computes a hash after normalizing line endings.
	// Normalization makes digests byte-identical across platforms that
	// check out files with CRLF line endings.
	SumNormalized(content []byte) string
}

// SHA256 implements hashing using SHA-256 over UTF-8 bytes, producing
// 64-character lowercase hex digests.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Value semantics avoid heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Sum computes SHA-256 of raw content.
func (c SHA256) Sum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// SumNormalized computes SHA-256 of content with CRLF converted to LF.
func (c SHA256) SumNormalized(content []byte) string {
	return c.Sum(NormalizeLineEndings(content))
}

// NormalizeLineEndings converts CRLF sequences to LF. The input is returned
// unchanged when no CRLF is present.
func NormalizeLineEndings(content []byte) []byte {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}
