package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given bytes. It is a fast,
// non-cryptographic content fingerprint used to detect snapshot drift; it
// plays no part in the Merkle tree itself.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
