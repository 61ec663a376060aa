// Package sleepfile provides access to a single SLEEP file through a
// storage provider: the 32-byte header parsed and validated once at open,
// then random access to the fixed-size entries that follow it.
//
// Parsed entries are memoized in an LRU cache keyed by position, so hot
// tree nodes are decoded once even when validation walks revisit them.
// Entries are never rewritten after being written, which keeps the cache
// trivially consistent.
package sleepfile

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/format"
	"github.com/khernyo/sleep-parser/internal/options"
	"github.com/khernyo/sleep-parser/section"
	"github.com/khernyo/sleep-parser/storage"
)

// DefaultEntryCacheSize is the default capacity of the parsed-entry cache.
const DefaultEntryCacheSize = 4096

// File is one open SLEEP file: a validated header plus entry access over a
// byte-range provider.
type File struct {
	provider storage.Provider
	header   section.Header

	cache *lru.Cache[uint64, section.Entry]
}

// Option configures a File.
type Option = options.Option[*File]

// WithEntryCacheSize sets the capacity of the parsed-entry cache. A size of
// 0 disables caching.
func WithEntryCacheSize(size int) Option {
	return options.New(func(f *File) error {
		if size < 0 {
			return fmt.Errorf("sleepfile: cache size must not be negative")
		}
		if size == 0 {
			f.cache = nil
			return nil
		}

		cache, err := lru.New[uint64, section.Entry](size)
		if err != nil {
			return err
		}
		f.cache = cache

		return nil
	})
}

func newFile(provider storage.Provider, header section.Header, opts ...Option) (*File, error) {
	f := &File{provider: provider, header: header}

	cache, err := lru.New[uint64, section.Entry](DefaultEntryCacheSize)
	if err != nil {
		return nil, err
	}
	f.cache = cache

	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Open reads and validates the header of an existing SLEEP file.
func Open(provider storage.Provider, opts ...Option) (*File, error) {
	buf := make([]byte, section.HeaderSize)
	if _, err := provider.ReadAt(buf, 0); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(buf)
	if err != nil {
		return nil, err
	}

	return newFile(provider, header, opts...)
}

// Create writes a fresh header for the given file kind to the provider and
// returns the opened file. The provider is expected to be empty.
func Create(provider storage.Provider, fileType format.FileType, algorithm format.HashAlgorithm, opts ...Option) (*File, error) {
	header := section.NewHeader(fileType, algorithm)
	if err := header.Validate(); err != nil {
		return nil, err
	}

	if _, err := provider.WriteAt(header.Bytes(), 0); err != nil {
		return nil, err
	}

	return newFile(provider, header, opts...)
}

// Close releases the underlying provider if it holds releasable resources;
// for purely in-memory providers it is a no-op.
func (f *File) Close() error {
	if closer, ok := f.provider.(storage.Closer); ok {
		return closer.Close()
	}

	return nil
}

// Header returns the file's parsed header. The header is immutable for the
// lifetime of the file.
func (f *File) Header() section.Header {
	return f.header
}

// EntryCount returns the number of entries the file body currently holds.
//
// Returns ErrMisalignedBody if the body length is not an exact multiple of
// the header's entry size.
func (f *File) EntryCount() (uint64, error) {
	length, err := f.provider.Len()
	if err != nil {
		return 0, err
	}
	if length < section.BodyOffset {
		return 0, nil
	}

	body := length - section.BodyOffset
	size := int64(f.header.EntrySize)
	if body%size != 0 {
		return 0, fmt.Errorf("%w: %d body bytes with entry size %d", errs.ErrMisalignedBody, body, size)
	}

	return uint64(body / size), nil
}

// offsetOf returns the byte offset of entry i.
func (f *File) offsetOf(index uint64) int64 {
	return section.BodyOffset + int64(index)*int64(f.header.EntrySize)
}

// requireHashEntries guards the Entry accessors against being used on a
// signatures file.
func (f *File) requireHashEntries() error {
	if f.header.EntrySize != section.EntrySize {
		return fmt.Errorf("%w: %s file stores %d-byte entries, not hash entries",
			errs.ErrInvalidEntrySize, f.header.FileType, f.header.EntrySize)
	}

	return nil
}

// Entry reads the hash entry at the given flat position. I/O errors from
// the provider, including reads past the end of the file, are returned
// unmodified.
func (f *File) Entry(index uint64) (section.Entry, error) {
	if err := f.requireHashEntries(); err != nil {
		return section.Entry{}, err
	}

	if f.cache != nil {
		if e, ok := f.cache.Get(index); ok {
			return e, nil
		}
	}

	buf := make([]byte, section.EntrySize)
	if _, err := f.provider.ReadAt(buf, f.offsetOf(index)); err != nil {
		return section.Entry{}, err
	}

	e, err := section.ParseEntry(buf)
	if err != nil {
		return section.Entry{}, err
	}

	if f.cache != nil {
		f.cache.Add(index, e)
	}

	return e, nil
}

// PutEntry writes the hash entry at the given flat position, zero-filling
// any gap positions before it.
func (f *File) PutEntry(index uint64, e section.Entry) error {
	if err := f.requireHashEntries(); err != nil {
		return err
	}

	if _, err := f.provider.WriteAt(e.Bytes(), f.offsetOf(index)); err != nil {
		return err
	}

	if f.cache != nil {
		f.cache.Add(index, e)
	}

	return nil
}

// Signature reads the signature entry at the given position of a
// signatures file.
func (f *File) Signature(index uint64) (section.SignatureEntry, error) {
	if f.header.FileType != format.TypeSignatures {
		return section.SignatureEntry{}, fmt.Errorf("%w: %s file stores no signatures",
			errs.ErrUnknownFileType, f.header.FileType)
	}

	buf := make([]byte, section.SignatureEntrySize)
	if _, err := f.provider.ReadAt(buf, f.offsetOf(index)); err != nil {
		return section.SignatureEntry{}, err
	}

	return section.ParseSignatureEntry(buf)
}

// PutSignature writes the signature entry at the given position of a
// signatures file.
func (f *File) PutSignature(index uint64, e section.SignatureEntry) error {
	if f.header.FileType != format.TypeSignatures {
		return fmt.Errorf("%w: %s file stores no signatures", errs.ErrUnknownFileType, f.header.FileType)
	}

	_, err := f.provider.WriteAt(e.Bytes(), f.offsetOf(index))

	return err
}

// Body reads the complete file body (everything after the header).
func (f *File) Body() ([]byte, error) {
	length, err := f.provider.Len()
	if err != nil {
		return nil, err
	}
	if length <= section.BodyOffset {
		return nil, nil
	}

	body := make([]byte, length-section.BodyOffset)
	if _, err := f.provider.ReadAt(body, section.BodyOffset); err != nil {
		return nil, err
	}

	return body, nil
}
