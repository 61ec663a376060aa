// Package section defines the low-level binary structures and constants of
// the SLEEP file format.
//
// This package provides the types that define the physical layout of SLEEP
// files. It handles binary serialization and deserialization of the shared
// 32-byte header and of the fixed-size entries that make up a file body,
// ensuring a consistent byte-level representation across platforms.
//
// # Overview
//
// The section package defines two categories of types:
//
//  1. Header: the fixed 32-byte envelope shared by every SLEEP file kind
//  2. Entries: fixed-size body records (Entry for tree and bitfield files,
//     SignatureEntry for signatures files)
//
// # File Structure
//
// A SLEEP file is a fixed header followed by a flat array of fixed-size
// records:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Magic (3 bytes): 0x05 0x02 0x57                      │
//	│  - FileType (1 byte): 0=BitField, 1=Signatures, 2=Tree  │
//	│  - Version (1 byte): 0                                  │
//	│  - EntrySize (2 bytes): big-endian uint16               │
//	│  - Algorithm name (1 length byte + name bytes)          │
//	│  - Zero padding to byte 32                              │
//	├─────────────────────────────────────────────────────────┤
//	│ Entry 0 (EntrySize bytes)                               │
//	│ Entry 1 (EntrySize bytes)                               │
//	│ ...                                                     │
//	└─────────────────────────────────────────────────────────┘
//
// The fixed widths give O(1) random access: entry i lives at byte offset
// 32 + i*EntrySize. All multi-byte fields are big-endian.
//
// # Design Principles
//
// Parsing is strict. Every deviation from the layout above maps to a
// specific sentinel in the errs package, down to non-zero padding bytes,
// so corruption is reported at the exact field that violated the format
// rather than surfacing later as a bad hash.
package section
