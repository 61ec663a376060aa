package storage

import (
	"fmt"
	"io"
	"sync"
)

// Memory is an in-memory Provider, used by tests and tooling that assemble
// or inspect SLEEP files without touching disk. The zero value is ready to
// use. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

var _ Provider = (*Memory)(nil)

// NewMemory creates a Memory provider seeded with a copy of data.
func NewMemory(data []byte) *Memory {
	m := &Memory{data: make([]byte, len(data))}
	copy(m.data, data)

	return m
}

// ReadAt implements io.ReaderAt. A read past the end returns io.EOF with the
// number of bytes actually copied, matching os.File semantics.
func (m *Memory) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("storage: negative read offset %d", off)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// WriteAt implements io.WriterAt, zero-filling any gap between the current
// end and the write offset.
func (m *Memory) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("storage: negative write offset %d", off)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if end := off + int64(len(p)); end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}

	return copy(m.data[off:], p), nil
}

// Len returns the current length of the stored byte sequence.
func (m *Memory) Len() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.data)), nil
}

// Bytes returns a copy of the full stored byte sequence.
func (m *Memory) Bytes() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]byte, len(m.data))
	copy(out, m.data)

	return out
}
