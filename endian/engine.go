// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a unified EndianEngine interface, so codecs can take a
// single value that covers both in-place writes and append-style writes.
//
// All multi-byte fields of the SLEEP on-disk format are big-endian, so
// GetBigEndianEngine() is the engine used throughout this module:
//
//	engine := endian.GetBigEndianEngine()
//	size := engine.Uint16(buf[5:7])
//
// The little-endian engine exists for tooling that needs to dump or compare
// against foreign byte orders.
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless, and safe
// for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.BigEndian and binary.LittleEndian
// from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine. This is the byte order of
// every multi-byte field in a SLEEP file.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
