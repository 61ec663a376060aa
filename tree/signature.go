package tree

import (
	"crypto/ed25519"

	"github.com/khernyo/sleep-parser/section"
)

// SignRoot signs a tree root hash with Ed25519. The resulting entry is what
// a signatures file stores at the position matching the signed revision.
func SignRoot(priv ed25519.PrivateKey, rootHash [section.HashSize]byte) section.SignatureEntry {
	e := section.SignatureEntry{}
	copy(e.Signature[:], ed25519.Sign(priv, rootHash[:]))

	return e
}

// VerifyRoot reports whether sig is a valid Ed25519 signature by pub over
// the given tree root hash.
func VerifyRoot(pub ed25519.PublicKey, rootHash [section.HashSize]byte, sig section.SignatureEntry) bool {
	return ed25519.Verify(pub, rootHash[:], sig.Signature[:])
}
