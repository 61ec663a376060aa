package storage

import "os"

// File is an os.File backed Provider. Reads and writes go straight to the
// underlying file; os.File already supports sparse WriteAt past the end.
type File struct {
	f *os.File
}

var _ Provider = (*File)(nil)
var _ Closer = (*File)(nil)

// OpenFile opens an existing file as a read-only Provider.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &File{f: f}, nil
}

// CreateFile opens a file as a read-write Provider, creating it if missing.
// An existing file is kept as-is, not truncated, so an interrupted append
// can be resumed.
func CreateFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	return &File{f: f}, nil
}

func (s *File) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *File) WriteAt(p []byte, off int64) (int, error) {
	return s.f.WriteAt(p, off)
}

// Len returns the current file size.
func (s *File) Len() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

// Sync flushes written data to stable storage.
func (s *File) Sync() error {
	return s.f.Sync()
}

func (s *File) Close() error {
	return s.f.Close()
}
