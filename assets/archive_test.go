package assets

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArchive(t *testing.T, files map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestOpenAndResolve(t *testing.T) {
	data := buildArchive(t, map[string][]byte{
		"ppt/media/image1.png": []byte("png-bytes"),
		"ppt/media/image2.jpg": []byte("jpg-bytes"),
	})

	archive, err := Open(data)
	require.NoError(t, err)
	assert.Equal(t, 2, archive.Len())

	got, ok := archive.Resolve("ppt/media/image1.png")
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), got)
}

func TestResolveStripsLeadingSeparator(t *testing.T) {
	data := buildArchive(t, map[string][]byte{
		"ppt/media/image1.png": []byte("png-bytes"),
	})

	archive, err := Open(data)
	require.NoError(t, err)

	got, ok := archive.Resolve("/ppt/media/image1.png")
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), got)
}

func TestResolveNormalizesBackslashes(t *testing.T) {
	data := buildArchive(t, map[string][]byte{
		"ppt/media/image1.png": []byte("png-bytes"),
	})

	archive, err := Open(data)
	require.NoError(t, err)

	_, ok := archive.Resolve(`ppt\media\image1.png`)
	assert.True(t, ok)
}

func TestResolveMissingEntry(t *testing.T) {
	archive, err := Open(buildArchive(t, map[string][]byte{
		"ppt/media/image1.png": []byte("png-bytes"),
	}))
	require.NoError(t, err)

	got, ok := archive.Resolve("ppt/media/missing.png")
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = archive.Resolve("")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestOpenCorruptArchive(t *testing.T) {
	_, err := Open([]byte("not a zip archive"))
	assert.Error(t, err)
}

func TestMIMEType(t *testing.T) {
	assert.Equal(t, "image/png", MIMEType("ppt/media/image1.png"))
	assert.Equal(t, "image/jpeg", MIMEType("ppt/media/photo.JPEG"))
	assert.Equal(t, "image/wmf", MIMEType("/ppt/media/clip.wmf"))
	assert.Equal(t, "", MIMEType("ppt/media/movie.mp4"))
	assert.Equal(t, "", MIMEType(""))
}
