package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/polyscout"
)

// Ensure MappingFile implements the mapping interfaces at compile time.
var (
	_ polyscout.MappingWriter = (*MappingFile)(nil)
	_ polyscout.MappingReader = (*MappingFile)(nil)
)

// MappingFile reads and writes the persisted feature mapping as
// pretty-printed JSON with lexicographically sorted keys.
type MappingFile struct {
	path string
}

// NewMappingFile creates a MappingFile at the given path.
func NewMappingFile(path string) *MappingFile {
	return &MappingFile{path: path}
}

// WriteMapping overwrites the mapping artifact wholesale. The write is
// atomic: content goes to a temporary file first and is renamed into
// place. encoding/json sorts map keys, which provides the deterministic
// key order the artifact requires.
func (f *MappingFile) WriteMapping(ctx context.Context, mapping polyscout.Mapping) error {
	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(f.path, append(data, '\n'))
}

// ReadMapping loads the mapping artifact. Returns ENOTFOUND if no artifact
// has been generated yet.
func (f *MappingFile) ReadMapping(ctx context.Context) (polyscout.Mapping, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, polyscout.Errorf(polyscout.ENOTFOUND, "mapping artifact %q does not exist", f.path)
	} else if err != nil {
		return nil, err
	}

	var mapping polyscout.Mapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, polyscout.Errorf(polyscout.EINVALID, "malformed mapping artifact %q: %v", f.path, err)
	}
	return mapping, nil
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
