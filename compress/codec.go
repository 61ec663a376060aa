package compress

import "fmt"

// Type identifies a snapshot compression codec. The value is stored in the
// snapshot manifest, so existing values must never be renumbered.
type Type uint8

const (
	None Type = 0 // None represents no compression.
	Zstd Type = 1 // Zstd represents Zstandard compression.
	S2   Type = 2 // S2 represents S2 (Snappy-compatible) compression.
	LZ4  Type = 3 // LZ4 represents LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// TypeByName maps a codec name, as the CLI accepts it, to its Type.
func TypeByName(name string) (Type, bool) {
	switch name {
	case "none":
		return None, true
	case "zstd":
		return Zstd, true
	case "s2":
		return S2, true
	case "lz4":
		return LZ4, true
	default:
		return 0, false
	}
}

// Compressor compresses a complete byte payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused across calls
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor is the inverse of Compressor. Implementations validate the
// input framing and return an error for corrupted or foreign data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
