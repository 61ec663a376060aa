// Package errs defines the sentinel errors shared across the SLEEP codec
// packages.
//
// Every error in this package is a deterministic data-integrity failure:
// nothing here is transient or retryable. I/O errors from the storage layer
// are propagated unmodified and never wrapped into these sentinels.
//
// Callers are expected to test errors with errors.Is; packages add context
// by wrapping with fmt.Errorf("...: %w", err).
package errs

import "errors"

// Header errors.
var (
	// ErrMalformedHeader indicates the header buffer is not exactly 32 bytes.
	ErrMalformedHeader = errors.New("SLEEP header must be exactly 32 bytes")

	// ErrBadMagic indicates the buffer does not start with the SLEEP magic
	// bytes 0x05 0x02 0x57.
	ErrBadMagic = errors.New("invalid SLEEP magic bytes")

	// ErrUnknownFileType indicates the file type byte does not name a known
	// SLEEP file kind.
	ErrUnknownFileType = errors.New("unknown SLEEP file type")

	// ErrUnsupportedVersion indicates a version byte other than 0.
	ErrUnsupportedVersion = errors.New("unsupported SLEEP version")

	// ErrUnknownAlgorithm indicates a hash algorithm name that is neither
	// BLAKE2b nor Ed25519.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrCorruptPadding indicates a non-zero byte in the reserved padding
	// between the algorithm name and the end of the 32-byte header.
	ErrCorruptPadding = errors.New("non-zero byte in SLEEP header padding")

	// ErrInvalidEntrySize indicates an entry size inconsistent with the
	// declared file type and hash algorithm.
	ErrInvalidEntrySize = errors.New("entry size inconsistent with file type and algorithm")
)

// Entry codec errors.
var (
	// ErrTruncatedEntry indicates an entry buffer shorter or longer than the
	// fixed entry size.
	ErrTruncatedEntry = errors.New("truncated SLEEP entry")

	// ErrMisalignedBody indicates a file body whose length is not a multiple
	// of the entry size.
	ErrMisalignedBody = errors.New("file body is not a multiple of the entry size")
)

// Flat-tree errors.
var (
	// ErrInvalidIndex indicates a flat-tree index outside the domain of the
	// requested operation.
	ErrInvalidIndex = errors.New("invalid flat-tree index")

	// ErrLeafHasNoChildren indicates a child lookup on a depth-0 node.
	ErrLeafHasNoChildren = errors.New("leaf nodes have no children")
)

// Tree validation errors.
var (
	// ErrHashMismatch indicates a stored node hash that does not match the
	// hash recomputed from its children.
	ErrHashMismatch = errors.New("stored hash does not match recomputed hash")

	// ErrIncompleteTree indicates a validation walk that requires a node
	// beyond the current entry sequence.
	ErrIncompleteTree = errors.New("tree entry sequence is incomplete")

	// ErrNoSingleRoot indicates a leaf count that no single flat-tree node
	// spans; the tree is a forest of complete subtree roots instead.
	ErrNoSingleRoot = errors.New("no single node spans the requested leaves")
)
