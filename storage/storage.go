// Package storage defines the byte-range provider the SLEEP codec reads and
// writes through, with in-memory and file-backed implementations.
//
// The codec itself never opens files or schedules I/O; it asks a Provider
// for byte ranges at explicit offsets and hands back byte ranges to store.
// Any I/O error a provider returns is propagated to the caller unmodified.
package storage

import "io"

// Provider supplies random-access byte ranges over a persistent byte
// sequence. Offsets are absolute from the start of the sequence.
//
// Implementations must allow WriteAt beyond the current length; the gap is
// zero-filled, matching the sparse writes a growing tree file performs.
type Provider interface {
	io.ReaderAt
	io.WriterAt

	// Len returns the current total length of the byte sequence.
	Len() (int64, error)
}

// Closer is implemented by providers holding releasable resources.
type Closer interface {
	Close() error
}
