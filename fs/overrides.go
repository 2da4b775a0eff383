package fs

import (
	"context"
	"os"

	"github.com/fwojciec/polyscout"
)

// Ensure OverrideFile implements polyscout.OverrideSource at compile time.
var _ polyscout.OverrideSource = (*OverrideFile)(nil)

// OverrideFile loads the curated override document from disk.
type OverrideFile struct {
	path string
}

// NewOverrideFile creates an OverrideFile at the given path.
func NewOverrideFile(path string) *OverrideFile {
	return &OverrideFile{path: path}
}

// Overrides reads and parses the override document. A missing file is the
// legitimate empty-override case; a present but malformed file is a hard
// EINVALID failure and must never degrade to an empty set.
func (f *OverrideFile) Overrides(ctx context.Context) (polyscout.Overrides, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return polyscout.Overrides{}, nil
	} else if err != nil {
		return nil, err
	}
	return polyscout.ParseOverrides(data)
}
