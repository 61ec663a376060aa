package section

import (
	"fmt"

	"github.com/khernyo/sleep-parser/endian"
	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/format"
)

// Header represents the fixed-size 32-byte header at the start of every
// SLEEP file. It is parsed once per file open and held read-only afterwards.
type Header struct {
	// FileType declares which of the three SLEEP file kinds this file is.
	FileType format.FileType // byte offset 3
	// Version is the SLEEP protocol version, currently always V0.
	Version format.Version // byte offset 4
	// EntrySize is the byte width of every record in the file body.
	EntrySize uint16 // byte offset 5-6, big-endian
	// HashAlgorithm names the algorithm the file's entries were produced
	// with, stored on disk as a length-prefixed ASCII name.
	HashAlgorithm format.HashAlgorithm // byte offset 7 (length) and 8.. (name)
}

// NewHeader creates a Header for the given file type and algorithm. The
// entry size is the fixed width the algorithm implies: 40 for BLAKE2b,
// 64 for Ed25519.
func NewHeader(fileType format.FileType, algorithm format.HashAlgorithm) Header {
	size, _ := algorithm.EntrySize()

	return Header{
		FileType:      fileType,
		Version:       format.VersionV0,
		EntrySize:     size,
		HashAlgorithm: algorithm,
	}
}

// Parse parses the header from a byte slice.
//
// Parsing is strict: the buffer must be exactly 32 bytes, start with the
// SLEEP magic sequence, declare a known file type, version and algorithm,
// and carry only zero bytes between the end of the algorithm name and byte
// 32. Each violation maps to its own sentinel in the errs package.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: the sentinel identifying the first field that violated the
//     format, or nil
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrMalformedHeader, len(data))
	}

	if data[MagicOffset] != Magic0 || data[MagicOffset+1] != Magic1 || data[MagicOffset+2] != Magic2 {
		return fmt.Errorf("%w: got %02x", errs.ErrBadMagic, data[MagicOffset:MagicOffset+3])
	}

	switch data[FileTypeOffset] {
	case byte(format.TypeBitField), byte(format.TypeSignatures), byte(format.TypeTree):
		h.FileType = format.FileType(data[FileTypeOffset])
	default:
		return fmt.Errorf("%w: byte value %d", errs.ErrUnknownFileType, data[FileTypeOffset])
	}

	if data[VersionOffset] != byte(format.VersionV0) {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, data[VersionOffset])
	}
	h.Version = format.VersionV0

	engine := endian.GetBigEndianEngine()
	h.EntrySize = engine.Uint16(data[EntrySizeOffset : EntrySizeOffset+2])

	nameLen := int(data[AlgoLenOffset])
	if AlgoNameOffset+nameLen > HeaderSize {
		return fmt.Errorf("%w: algorithm name length %d overruns header", errs.ErrMalformedHeader, nameLen)
	}

	name := string(data[AlgoNameOffset : AlgoNameOffset+nameLen])
	algorithm, ok := format.AlgorithmByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownAlgorithm, name)
	}
	h.HashAlgorithm = algorithm

	for i := AlgoNameOffset + nameLen; i < HeaderSize; i++ {
		if data[i] != 0 {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", errs.ErrCorruptPadding, data[i], i)
		}
	}

	return nil
}

// Validate checks the semantic consistency of an already parsed header: the
// declared entry size must match the fixed width the algorithm implies, and
// the algorithm must fit the file kind (tree and bitfield files hash with
// BLAKE2b, signatures files sign with Ed25519).
func (h *Header) Validate() error {
	want, ok := h.HashAlgorithm.EntrySize()
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrUnknownAlgorithm, h.HashAlgorithm)
	}
	if h.EntrySize != want {
		return fmt.Errorf("%w: %s requires %d, header declares %d",
			errs.ErrInvalidEntrySize, h.HashAlgorithm, want, h.EntrySize)
	}

	switch h.FileType {
	case format.TypeTree, format.TypeBitField:
		if h.HashAlgorithm != format.AlgorithmBLAKE2b {
			return fmt.Errorf("%w: %s files require BLAKE2b", errs.ErrInvalidEntrySize, h.FileType)
		}
	case format.TypeSignatures:
		if h.HashAlgorithm != format.AlgorithmEd25519 {
			return fmt.Errorf("%w: signatures files require Ed25519", errs.ErrInvalidEntrySize)
		}
	}

	return nil
}

// Bytes serializes the Header into a 32-byte slice. It is the exact left
// inverse of Parse: ParseHeader(h.Bytes()) reproduces h for every valid h.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetBigEndianEngine()

	b[MagicOffset] = Magic0
	b[MagicOffset+1] = Magic1
	b[MagicOffset+2] = Magic2
	b[FileTypeOffset] = byte(h.FileType)
	b[VersionOffset] = byte(h.Version)
	engine.PutUint16(b[EntrySizeOffset:EntrySizeOffset+2], h.EntrySize)

	name := h.HashAlgorithm.Name()
	b[AlgoLenOffset] = byte(len(name))
	copy(b[AlgoNameOffset:], name)
	// remaining bytes up to HeaderSize stay zero

	return b
}

// ParseHeader parses and validates a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: layout errors from Parse or consistency errors from Validate
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
