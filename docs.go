package polyscout

import "context"

// Snapshotter ensures a local snapshot of the documentation source exists
// before extraction begins. Presence of the snapshot directory is the sole
// freshness signal: an existing snapshot is reused unconditionally.
type Snapshotter interface {
	// Ensure returns the snapshot directory path, fetching the snapshot
	// first if it is absent. A fetch failure is fatal.
	Ensure(ctx context.Context) (string, error)
}

// DocumentReader reads documentation source files by slug.
type DocumentReader interface {
	// ReadDocument returns the raw markdown source for a slug.
	// Returns ENOTFOUND if the slug has no corresponding file; callers
	// treat this as an empty extraction result, not an error.
	ReadDocument(slug string) (string, error)
}

// LinkExtractor produces raw polyfill-candidate links from a documentation
// page's "See also" section.
type LinkExtractor interface {
	// SeeAlsoLinks returns the candidate links found in the page content.
	// A page without a "See also" section yields an empty result.
	SeeAlsoLinks(content string) []RawLink
}
