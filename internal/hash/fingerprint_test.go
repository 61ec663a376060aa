package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("sleep"))
	b := Fingerprint([]byte("sleep"))
	require.Equal(t, a, b, "fingerprints are deterministic")

	c := Fingerprint([]byte("sleeq"))
	require.NotEqual(t, a, c)

	require.Equal(t, Fingerprint(nil), Fingerprint([]byte{}))
}
