// Package assets resolves logical asset paths inside a deck archive to
// raw bytes. Deck documents reference their embedded media by
// archive-relative paths (for example "ppt/media/image1.png"); the
// enrichment pipeline opens the archive once per run and resolves each
// referenced picture through this package.
package assets

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// Archive is a read-only view over a deck archive's entries. It is safe
// for concurrent Resolve calls.
type Archive struct {
	entries map[string]*zip.File
}

// Open builds an Archive from raw archive bytes. A corrupt archive is a
// hard error: without it no picture can be resolved, and that decision
// belongs to the caller.
func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening deck archive: %w", err)
	}

	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		entries[f.Name] = f
	}
	return &Archive{entries: entries}, nil
}

// Resolve reads the entry at the given logical path fully into memory.
// A leading path separator is stripped before lookup. Missing entries
// are not an error: decks may reference images that failed to extract
// upstream, and those pictures are simply skipped.
func (a *Archive) Resolve(logical string) ([]byte, bool) {
	name := normalizePath(logical)
	if name == "" {
		return nil, false
	}

	f := a.entries[name]
	if f == nil {
		return nil, false
	}

	rc, err := f.Open()
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Len returns the number of entries in the archive.
func (a *Archive) Len() int {
	return len(a.entries)
}

func normalizePath(logical string) string {
	name := strings.TrimSpace(logical)
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "/")
}

// MIMEType maps an asset path to its media type by extension. Returns
// the empty string for unrecognized extensions.
func MIMEType(logical string) string {
	switch strings.ToLower(path.Ext(normalizePath(logical))) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".webp":
		return "image/webp"
	case ".emf":
		return "image/emf"
	case ".wmf":
		return "image/wmf"
	default:
		return ""
	}
}
