// Package snapshot bundles the SLEEP files of a dataset into a single
// compressed archive for backup or transfer.
//
// The archive is a small binary container in the same big-endian,
// fixed-layout spirit as SLEEP itself: a header naming the codec, then one
// length-prefixed compressed section per file. Each section carries an
// xxHash64 fingerprint of the raw content, so extraction detects both
// archive corruption and codec mismatches before handing bytes back.
//
// Snapshots are tooling; the SLEEP files inside stay byte-identical to
// their on-disk form and are never themselves stored compressed.
package snapshot

import (
	"fmt"
	"io"
	"sort"

	"github.com/khernyo/sleep-parser/compress"
	"github.com/khernyo/sleep-parser/endian"
	"github.com/khernyo/sleep-parser/internal/hash"
)

// Container layout constants. The magic shares the SLEEP prefix; the marker
// byte 0xA5 can never collide with a SLEEP file type byte (0..2).
const (
	markerByte       = 0xA5
	containerVersion = 0
	headerSize       = 8 // magic(3) + marker(1) + version(1) + codec(1) + file count(2)

	maxNameLen = 255
)

// Write encodes the given files into an archive on w, compressing each with
// the chosen codec. Files are written in sorted name order, so archives of
// identical content are byte-identical.
func Write(w io.Writer, codec compress.Type, files map[string][]byte) error {
	c, err := compress.GetCodec(codec)
	if err != nil {
		return err
	}
	if len(files) > 0xFFFF {
		return fmt.Errorf("snapshot: too many files: %d", len(files))
	}

	engine := endian.GetBigEndianEngine()

	header := make([]byte, 0, headerSize)
	header = append(header, 0x05, 0x02, 0x57, markerByte, containerVersion, byte(codec))
	header = engine.AppendUint16(header, uint16(len(files)))
	if _, err := w.Write(header); err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if len(name) == 0 || len(name) > maxNameLen {
			return fmt.Errorf("snapshot: invalid file name %q", name)
		}

		raw := files[name]
		compressed, err := c.Compress(raw)
		if err != nil {
			return fmt.Errorf("snapshot: compressing %q: %w", name, err)
		}

		section := make([]byte, 0, 1+len(name)+24+len(compressed))
		section = append(section, byte(len(name)))
		section = append(section, name...)
		section = engine.AppendUint64(section, hash.Fingerprint(raw))
		section = engine.AppendUint64(section, uint64(len(raw)))
		section = engine.AppendUint64(section, uint64(len(compressed)))
		section = append(section, compressed...)

		if _, err := w.Write(section); err != nil {
			return err
		}
	}

	return nil
}

// Read decodes an archive from r, decompresses every file and verifies each
// fingerprint against the extracted content.
func Read(r io.Reader) (map[string][]byte, error) {
	engine := endian.GetBigEndianEngine()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if header[0] != 0x05 || header[1] != 0x02 || header[2] != 0x57 || header[3] != markerByte {
		return nil, fmt.Errorf("snapshot: invalid archive magic % 02x", header[:4])
	}
	if header[4] != containerVersion {
		return nil, fmt.Errorf("snapshot: unsupported archive version %d", header[4])
	}

	codec, err := compress.GetCodec(compress.Type(header[5]))
	if err != nil {
		return nil, err
	}
	count := int(engine.Uint16(header[6:8]))

	files := make(map[string][]byte, count)
	for i := 0; i < count; i++ {
		var nameLen [1]byte
		if _, err := io.ReadFull(r, nameLen[:]); err != nil {
			return nil, err
		}

		meta := make([]byte, int(nameLen[0])+24)
		if _, err := io.ReadFull(r, meta); err != nil {
			return nil, err
		}

		name := string(meta[:nameLen[0]])
		fingerprint := engine.Uint64(meta[nameLen[0] : int(nameLen[0])+8])
		rawLen := engine.Uint64(meta[int(nameLen[0])+8 : int(nameLen[0])+16])
		compLen := engine.Uint64(meta[int(nameLen[0])+16 : int(nameLen[0])+24])

		compressed := make([]byte, compLen)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, err
		}

		raw, err := codec.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("snapshot: decompressing %q: %w", name, err)
		}
		if uint64(len(raw)) != rawLen {
			return nil, fmt.Errorf("snapshot: %q decompressed to %d bytes, manifest says %d",
				name, len(raw), rawLen)
		}
		if hash.Fingerprint(raw) != fingerprint {
			return nil, fmt.Errorf("snapshot: fingerprint mismatch for %q", name)
		}

		files[name] = raw
	}

	return files, nil
}
