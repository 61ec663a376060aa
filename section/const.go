package section

// Offsets and sizes of the fixed header fields. The header is always exactly
// 32 bytes; everything between the end of the algorithm name and byte 32 is
// zero padding.
const (
	HeaderSize = 32 // fixed header size in bytes (shared by all file kinds)

	MagicOffset     = 0 // byte offset of the 3-byte magic sequence
	FileTypeOffset  = 3 // byte offset of the file type byte
	VersionOffset   = 4 // byte offset of the version byte
	EntrySizeOffset = 5 // byte offset of the big-endian uint16 entry size
	AlgoLenOffset   = 7 // byte offset of the algorithm name length prefix
	AlgoNameOffset  = 8 // byte offset of the algorithm name bytes

	BodyOffset = HeaderSize // byte offset where the entry array starts
)

// Magic bytes at the start of every SLEEP file.
const (
	Magic0 = 0x05
	Magic1 = 0x02
	Magic2 = 0x57
)

// Entry sizes of the two defined body record layouts.
const (
	EntrySize          = 40 // hash entry: 32-byte digest + 8-byte big-endian length
	SignatureEntrySize = 64 // signature entry: 64-byte Ed25519 signature
)

// HashSize is the digest width of a hash entry.
const HashSize = 32
