package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khernyo/sleep-parser/compress"
	"github.com/khernyo/sleep-parser/format"
	"github.com/khernyo/sleep-parser/section"
	"github.com/khernyo/sleep-parser/sleepfile"
	"github.com/khernyo/sleep-parser/storage"
	"github.com/khernyo/sleep-parser/tree"
)

// datasetFiles builds a realistic pair of SLEEP files: a tree file over
// three data blocks and its empty signatures companion.
func datasetFiles(t *testing.T) map[string][]byte {
	t.Helper()

	mem := storage.NewMemory(nil)
	f, err := sleepfile.Create(mem, format.TypeTree, format.AlgorithmBLAKE2b)
	require.NoError(t, err)

	built, err := tree.New()
	require.NoError(t, err)
	for _, content := range []string{"one", "two", "three"} {
		built.AppendLeaf(tree.Blake2b([]byte(content)), uint64(len(content)))
	}
	require.NoError(t, f.WriteTree(built))

	sigMem := storage.NewMemory(nil)
	_, err = sleepfile.Create(sigMem, format.TypeSignatures, format.AlgorithmEd25519)
	require.NoError(t, err)

	return map[string][]byte{
		"metadata.tree":       mem.Bytes(),
		"metadata.signatures": sigMem.Bytes(),
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	files := datasetFiles(t)

	for _, codec := range []compress.Type{compress.None, compress.Zstd, compress.S2, compress.LZ4} {
		t.Run(codec.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, codec, files))

			got, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, files, got)
		})
	}
}

func TestWrite_Deterministic(t *testing.T) {
	files := datasetFiles(t)

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, compress.Zstd, files))
	require.NoError(t, Write(&b, compress.Zstd, files))
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestRead_ExtractedFilesStillParse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, compress.S2, datasetFiles(t)))

	got, err := Read(&buf)
	require.NoError(t, err)

	f, err := sleepfile.Open(storage.NewMemory(got["metadata.tree"]))
	require.NoError(t, err)
	require.Equal(t, format.TypeTree, f.Header().FileType)

	loaded, err := f.ReadTree()
	require.NoError(t, err)
	require.Equal(t, uint64(3), loaded.Leaves())
	require.NoError(t, loaded.ValidateAll())
}

func TestRead_Rejections(t *testing.T) {
	t.Run("Bad magic", func(t *testing.T) {
		_, err := Read(bytes.NewReader(make([]byte, 16)))
		require.ErrorContains(t, err, "magic")
	})

	t.Run("Corrupted section payload", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, compress.None, map[string][]byte{
			"metadata.tree": bytes.Repeat([]byte{0xAB}, section.HeaderSize),
		}))

		data := buf.Bytes()
		data[len(data)-1] ^= 0xFF // flip a bit inside the stored content

		_, err := Read(bytes.NewReader(data))
		require.ErrorContains(t, err, "fingerprint mismatch")
	})

	t.Run("Truncated archive", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, compress.Zstd, datasetFiles(t)))

		_, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()-4]))
		require.Error(t, err)
	})
}
