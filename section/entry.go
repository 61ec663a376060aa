package section

import (
	"fmt"
	"iter"

	"github.com/khernyo/sleep-parser/endian"
	"github.com/khernyo/sleep-parser/errs"
)

// Entry is one fixed-size record in a tree or bitfield file body. It is a
// fixed size of 40 bytes: a 32-byte hash followed by an 8-byte big-endian
// byte length.
//
// For a leaf node the hash is the content hash of one data block and the
// byte length is that block's raw length. For an internal node the hash is
// the combined hash of the two children and the byte length is the total
// byte length of all data blocks the node's subtree spans.
type Entry struct {
	// Hash is the 32-byte BLAKE2b digest of the node.
	//
	// Offset: 0, Size: 32 bytes
	Hash [HashSize]byte

	// ByteLength is the total raw byte length of the data blocks this node
	// covers.
	//
	// Offset: 32, Size: 8 bytes (big-endian uint64)
	ByteLength uint64
}

// Bytes returns the entry as a 40-byte slice.
//
// This method uses stack allocation for the encode buffer; the returned
// slice is newly allocated and owned by the caller.
func (e *Entry) Bytes() []byte {
	var b [EntrySize]byte // stack allocation, it's faster than heap allocation
	copy(b[0:HashSize], e.Hash[:])
	endian.GetBigEndianEngine().PutUint64(b[HashSize:EntrySize], e.ByteLength)

	return b[:]
}

// WriteToSlice writes the entry to a pre-allocated slice and returns the
// next write position.
//
// This is the most efficient method when writing multiple entries
// sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 40 bytes at offset)
//   - offset: Starting position in data slice
//
// Returns:
//   - int: Next write position (offset + 40)
func (e *Entry) WriteToSlice(data []byte, offset int) int {
	copy(data[offset:offset+HashSize], e.Hash[:])
	endian.GetBigEndianEngine().PutUint64(data[offset+HashSize:offset+EntrySize], e.ByteLength)

	return offset + EntrySize
}

// ParseEntry parses an Entry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be exactly 40 bytes)
//
// Returns:
//   - Entry: Parsed entry
//   - error: ErrTruncatedEntry if data is not exactly 40 bytes
func ParseEntry(data []byte) (Entry, error) {
	if len(data) != EntrySize {
		return Entry{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrTruncatedEntry, len(data), EntrySize)
	}

	e := Entry{ByteLength: endian.GetBigEndianEngine().Uint64(data[HashSize:EntrySize])}
	copy(e.Hash[:], data[0:HashSize])

	return e, nil
}

// Entries returns an iterator over all entries in a file body, yielding each
// entry with its zero-based position in the body.
//
// The body length must be an exact multiple of entrySize; otherwise
// ErrMisalignedBody is returned and the iterator is nil. The iterator is
// finite and restartable: ranging over it a second time yields the same
// sequence again. Entries are decoded lazily, one per step, so breaking out
// early does not decode the rest of the body.
//
// Parameters:
//   - body: File body bytes (everything after the 32-byte header)
//   - entrySize: Fixed record width from the file header
//
// Returns:
//   - iter.Seq2[int, Entry]: Iterator over (position, entry) pairs
//   - error: ErrMisalignedBody if len(body) is not a multiple of entrySize
func Entries(body []byte, entrySize uint16) (iter.Seq2[int, Entry], error) {
	if entrySize != EntrySize {
		return nil, fmt.Errorf("%w: hash entries are %d bytes, got %d", errs.ErrInvalidEntrySize, EntrySize, entrySize)
	}
	size := int(entrySize)
	if len(body)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes with entry size %d", errs.ErrMisalignedBody, len(body), size)
	}

	return func(yield func(int, Entry) bool) {
		for i := 0; i*size < len(body); i++ {
			e, err := ParseEntry(body[i*size : (i+1)*size])
			if err != nil {
				// unreachable once alignment is checked, but never yield junk
				return
			}
			if !yield(i, e) {
				return
			}
		}
	}, nil
}
