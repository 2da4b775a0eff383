package mock

import (
	"context"

	"github.com/fwojciec/polyscout"
)

var _ polyscout.Snapshotter = (*Snapshotter)(nil)

// Snapshotter is a mock implementation of polyscout.Snapshotter.
type Snapshotter struct {
	EnsureFn func(ctx context.Context) (string, error)
}

func (s *Snapshotter) Ensure(ctx context.Context) (string, error) {
	return s.EnsureFn(ctx)
}

var _ polyscout.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of polyscout.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(slug string) (string, error)
}

func (r *DocumentReader) ReadDocument(slug string) (string, error) {
	return r.ReadDocumentFn(slug)
}

var _ polyscout.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of polyscout.LinkExtractor.
type LinkExtractor struct {
	SeeAlsoLinksFn func(content string) []polyscout.RawLink
}

func (e *LinkExtractor) SeeAlsoLinks(content string) []polyscout.RawLink {
	return e.SeeAlsoLinksFn(content)
}
