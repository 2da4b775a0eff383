package fs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/fwojciec/polyscout"
)

// Ensure StatsFile implements polyscout.StatsStore at compile time.
var _ polyscout.StatsStore = (*StatsFile)(nil)

// StatsFile persists the npm download-stats artifact as JSON.
type StatsFile struct {
	path string
}

// NewStatsFile creates a StatsFile at the given path.
func NewStatsFile(path string) *StatsFile {
	return &StatsFile{path: path}
}

// ReadStats loads the current artifact. A missing file is the legitimate
// first-run case and yields an empty Stats. A present but malformed file
// is an EINVALID failure.
func (f *StatsFile) ReadStats(ctx context.Context) (polyscout.Stats, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return polyscout.Stats{}, nil
	} else if err != nil {
		return nil, err
	}

	var stats polyscout.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, polyscout.Errorf(polyscout.EINVALID, "malformed stats artifact %q: %v", f.path, err)
	}
	return stats, nil
}

// WriteStats overwrites the artifact wholesale, atomically, with sorted keys.
func (f *StatsFile) WriteStats(ctx context.Context, stats polyscout.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(f.path, append(data, '\n'))
}
