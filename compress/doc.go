// Package compress provides the compression codecs used by SLEEP snapshot
// archives.
//
// SLEEP files themselves are never compressed on disk; the format depends
// on fixed 40- and 64-byte records at computable offsets. Compression only
// enters the picture when a dataset's files are bundled into a snapshot for
// backup or transfer, where the highly repetitive entry layout compresses
// well.
//
// Four codecs are available:
//
//   - None: pass-through, for debugging and baselines
//   - Zstd: best ratio, the default for archives
//   - S2: fastest, for large datasets snapshotted frequently
//   - LZ4: balanced, widely interoperable
//
// All codecs are stateless values safe for concurrent use; internal encoder
// state is pooled per process.
package compress
