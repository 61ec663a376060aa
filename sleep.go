// Package sleepparser reads and writes SLEEP (Simple Layout for Encoding
// Persisted data) files: the binary format persisting the Merkle-tree
// metadata of append-only datasets.
//
// A SLEEP dataset keeps its metadata in three file kinds sharing one
// 32-byte header: a tree file of hash-tree nodes over the data blocks, a
// bitfield file tracking block presence, and a signatures file of Ed25519
// signatures over tree roots. Every file is a fixed header followed by a
// flat array of fixed-size entries, so any record is addressable by pure
// arithmetic.
//
// # Basic Usage
//
// Building a tree over data blocks and persisting it:
//
//	import sleepparser "github.com/khernyo/sleep-parser"
//
//	f, _ := sleepparser.Create("metadata.tree", format.TypeTree, format.AlgorithmBLAKE2b)
//	defer f.Close()
//
//	t, _ := tree.New()
//	for _, block := range blocks {
//	    t.AppendLeaf(tree.Blake2b(block), uint64(len(block)))
//	}
//	_ = f.WriteTree(t)
//
// Opening and validating an existing tree file:
//
//	f, _ := sleepparser.Open("metadata.tree")
//	defer f.Close()
//
//	t, _ := f.ReadTree()
//	if err := t.ValidateAll(); err != nil {
//	    // err identifies the exact diverging node index
//	}
//
// # Package Structure
//
// This package provides convenience constructors around the lower-level
// packages; use those directly for fine-grained control:
//
//   - section: header and entry codecs
//   - flattree: the pointer-free tree index arithmetic
//   - tree: building and validating the hash tree
//   - sleepfile: file-level access over a storage provider
//   - storage: the byte-range providers (file-backed and in-memory)
//   - snapshot: compressed archives of a dataset's files
package sleepparser

import (
	"github.com/khernyo/sleep-parser/format"
	"github.com/khernyo/sleep-parser/sleepfile"
	"github.com/khernyo/sleep-parser/storage"
)

// Open opens an existing SLEEP file on disk read-only and validates its
// header. Close the returned file to release the handle.
func Open(path string, opts ...sleepfile.Option) (*sleepfile.File, error) {
	provider, err := storage.OpenFile(path)
	if err != nil {
		return nil, err
	}

	f, err := sleepfile.Open(provider, opts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return f, nil
}

// Create creates (or reopens) a SLEEP file on disk for reading and writing,
// writing a fresh header for the given file kind.
func Create(path string, fileType format.FileType, algorithm format.HashAlgorithm, opts ...sleepfile.Option) (*sleepfile.File, error) {
	provider, err := storage.CreateFile(path)
	if err != nil {
		return nil, err
	}

	f, err := sleepfile.Create(provider, fileType, algorithm, opts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return f, nil
}
