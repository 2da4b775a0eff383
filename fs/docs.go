// Package fs provides file-based collaborators: the documentation snapshot
// reader and the JSON artifacts (mapping, overrides, download stats).
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/polyscout"
)

// SlugToPath converts a documentation slug to the page's source file path
// relative to the snapshot root.
// Example: Web/API/Set/difference → files/en-us/web/api/set/difference/index.md
//
// Reserved token sequences are escaped longest-first so the two-colon case
// is never double-escaped: "::" → "_doublecolon_", ":" → "_colon_",
// "*" → "_star_".
func SlugToPath(slug string) string {
	p := strings.ToLower(slug)
	p = strings.ReplaceAll(p, "::", "_doublecolon_")
	p = strings.ReplaceAll(p, ":", "_colon_")
	p = strings.ReplaceAll(p, "*", "_star_")
	return filepath.Join("files", "en-us", filepath.FromSlash(p), "index.md")
}

// Ensure DocumentReader implements polyscout.DocumentReader at compile time.
var _ polyscout.DocumentReader = (*DocumentReader)(nil)

// DocumentReader reads page sources from a local documentation snapshot.
type DocumentReader struct {
	root string
}

// NewDocumentReader creates a DocumentReader over the snapshot directory.
func NewDocumentReader(root string) *DocumentReader {
	return &DocumentReader{root: root}
}

// ReadDocument returns the raw markdown source for a slug. An absent or
// unreadable file returns ENOTFOUND; most slugs resolve to no file and
// callers treat this as an empty extraction result.
func (r *DocumentReader) ReadDocument(slug string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.root, SlugToPath(slug)))
	if err != nil {
		return "", polyscout.Errorf(polyscout.ENOTFOUND, "no documentation file for slug %q", slug)
	}
	return string(data), nil
}
