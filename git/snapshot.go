// Package git ensures a local snapshot of the documentation source
// repository exists, cloning it once and reusing it thereafter.
package git

import (
	"context"
	"os"
	"os/exec"

	"github.com/fwojciec/polyscout"
)

// DefaultContentRepo is the documentation source repository.
const DefaultContentRepo = "https://github.com/mdn/content.git"

// RunFunc executes an external command. It exists so tests can observe
// clone invocations without a network.
type RunFunc func(ctx context.Context, name string, args ...string) error

// Ensure Snapshot implements polyscout.Snapshotter at compile time.
var _ polyscout.Snapshotter = (*Snapshot)(nil)

// Snapshot manages the local documentation snapshot. Presence of the
// snapshot directory is the sole freshness signal: an existing directory
// is reused unconditionally, with no TTL or revision check. This is a
// caching-by-existence policy.
type Snapshot struct {
	repoURL string
	dir     string
	run     RunFunc
}

// Option configures a Snapshot.
type Option func(*Snapshot)

// WithRunner replaces the command runner. Used by tests.
func WithRunner(run RunFunc) Option {
	return func(s *Snapshot) {
		s.run = run
	}
}

// NewSnapshot creates a Snapshot for the given repository and local
// directory. An empty repoURL selects DefaultContentRepo.
func NewSnapshot(repoURL, dir string, opts ...Option) *Snapshot {
	if repoURL == "" {
		repoURL = DefaultContentRepo
	}
	s := &Snapshot{
		repoURL: repoURL,
		dir:     dir,
		run:     runCommand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure returns the snapshot directory, cloning it first if absent.
// A clone failure is fatal to the run.
func (s *Snapshot) Ensure(ctx context.Context) (string, error) {
	if _, err := os.Stat(s.dir); err == nil {
		return s.dir, nil
	}

	if err := s.run(ctx, "git", "clone", "--depth", "1", s.repoURL, s.dir); err != nil {
		return "", polyscout.Errorf(polyscout.EUNAVAILABLE, "clone %s: %v", s.repoURL, err)
	}
	return s.dir, nil
}

// runCommand shells out synchronously and folds command output into the
// error on failure.
func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return polyscout.Errorf(polyscout.EINTERNAL, "%s %v: %v: %s", name, args, err, out)
	}
	return nil
}
