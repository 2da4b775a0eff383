package mock

import (
	"context"

	"github.com/fwojciec/polyscout"
)

var _ polyscout.MappingWriter = (*MappingWriter)(nil)

// MappingWriter is a mock implementation of polyscout.MappingWriter.
type MappingWriter struct {
	WriteMappingFn func(ctx context.Context, mapping polyscout.Mapping) error
}

func (w *MappingWriter) WriteMapping(ctx context.Context, mapping polyscout.Mapping) error {
	return w.WriteMappingFn(ctx, mapping)
}

var _ polyscout.MappingReader = (*MappingReader)(nil)

// MappingReader is a mock implementation of polyscout.MappingReader.
type MappingReader struct {
	ReadMappingFn func(ctx context.Context) (polyscout.Mapping, error)
}

func (r *MappingReader) ReadMapping(ctx context.Context) (polyscout.Mapping, error) {
	return r.ReadMappingFn(ctx)
}

var _ polyscout.OverrideSource = (*OverrideSource)(nil)

// OverrideSource is a mock implementation of polyscout.OverrideSource.
type OverrideSource struct {
	OverridesFn func(ctx context.Context) (polyscout.Overrides, error)
}

func (s *OverrideSource) Overrides(ctx context.Context) (polyscout.Overrides, error) {
	return s.OverridesFn(ctx)
}
