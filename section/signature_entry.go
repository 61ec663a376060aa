package section

import (
	"fmt"
	"iter"

	"github.com/khernyo/sleep-parser/errs"
)

// SignatureEntry is one fixed-size record in a signatures file body: a
// 64-byte Ed25519 signature over the tree root at the matching position.
type SignatureEntry struct {
	// Signature is the raw 64-byte Ed25519 signature.
	//
	// Offset: 0, Size: 64 bytes
	Signature [SignatureEntrySize]byte
}

// Bytes returns the entry as a 64-byte slice owned by the caller.
func (e *SignatureEntry) Bytes() []byte {
	b := make([]byte, SignatureEntrySize)
	copy(b, e.Signature[:])

	return b
}

// ParseSignatureEntry parses a SignatureEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be exactly 64 bytes)
//
// Returns:
//   - SignatureEntry: Parsed entry
//   - error: ErrTruncatedEntry if data is not exactly 64 bytes
func ParseSignatureEntry(data []byte) (SignatureEntry, error) {
	if len(data) != SignatureEntrySize {
		return SignatureEntry{}, fmt.Errorf("%w: got %d bytes, want %d",
			errs.ErrTruncatedEntry, len(data), SignatureEntrySize)
	}

	e := SignatureEntry{}
	copy(e.Signature[:], data)

	return e, nil
}

// SignatureEntries returns a restartable iterator over all signature entries
// in a signatures file body, yielding each with its zero-based position.
//
// Returns ErrMisalignedBody if len(body) is not a multiple of the 64-byte
// signature entry size.
func SignatureEntries(body []byte) (iter.Seq2[int, SignatureEntry], error) {
	if len(body)%SignatureEntrySize != 0 {
		return nil, fmt.Errorf("%w: %d bytes with entry size %d",
			errs.ErrMisalignedBody, len(body), SignatureEntrySize)
	}

	return func(yield func(int, SignatureEntry) bool) {
		for i := 0; i*SignatureEntrySize < len(body); i++ {
			e, _ := ParseSignatureEntry(body[i*SignatureEntrySize : (i+1)*SignatureEntrySize])
			if !yield(i, e) {
				return
			}
		}
	}, nil
}
