package compress

// ZstdCompressor compresses with Zstandard, the default codec for snapshot
// archives: the best ratio of the four on the repetitive fixed-width entry
// layout of SLEEP bodies.
//
// Two implementations exist behind the cgozstd build tag: the default pure
// Go one (klauspost/compress/zstd) and a cgo one (valyala/gozstd) for
// deployments that already link libzstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
