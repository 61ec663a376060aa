package format

type (
	FileType      uint8
	Version       uint8
	HashAlgorithm uint8
)

const (
	TypeBitField   FileType = 0 // TypeBitField identifies a bitfield (block presence) file.
	TypeSignatures FileType = 1 // TypeSignatures identifies a signatures file.
	TypeTree       FileType = 2 // TypeTree identifies a hash-tree file.

	VersionV0 Version = 0 // VersionV0 is the only SLEEP protocol version defined so far.

	AlgorithmBLAKE2b HashAlgorithm = 0 // AlgorithmBLAKE2b hashes tree nodes with BLAKE2b-256.
	AlgorithmEd25519 HashAlgorithm = 1 // AlgorithmEd25519 signs tree roots with Ed25519.
)

// Entry widths implied by each algorithm: a BLAKE2b entry is a 32-byte digest
// plus an 8-byte big-endian byte length, an Ed25519 entry is a 64-byte
// signature.
const (
	BLAKE2bEntrySize = 40
	Ed25519EntrySize = 64
)

func (t FileType) String() string {
	switch t {
	case TypeBitField:
		return "BitField"
	case TypeSignatures:
		return "Signatures"
	case TypeTree:
		return "Tree"
	default:
		return "Unknown"
	}
}

func (v Version) String() string {
	switch v {
	case VersionV0:
		return "V0"
	default:
		return "Unknown"
	}
}

func (a HashAlgorithm) String() string {
	switch a {
	case AlgorithmBLAKE2b:
		return "BLAKE2b"
	case AlgorithmEd25519:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

// Name returns the on-disk algorithm name exactly as it appears in the
// length-prefixed header field.
func (a HashAlgorithm) Name() string {
	return a.String()
}

// EntrySize returns the fixed entry width this algorithm implies for a file
// body, and false for an algorithm with no defined width.
func (a HashAlgorithm) EntrySize() (uint16, bool) {
	switch a {
	case AlgorithmBLAKE2b:
		return BLAKE2bEntrySize, true
	case AlgorithmEd25519:
		return Ed25519EntrySize, true
	default:
		return 0, false
	}
}

// AlgorithmByName maps an on-disk algorithm name to its HashAlgorithm value.
// The format enumerates exactly two algorithms; anything else is unknown.
func AlgorithmByName(name string) (HashAlgorithm, bool) {
	switch name {
	case "BLAKE2b":
		return AlgorithmBLAKE2b, true
	case "Ed25519":
		return AlgorithmEd25519, true
	default:
		return 0, false
	}
}
