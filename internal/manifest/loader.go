package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Loader loads manifest files from a filesystem
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a new manifest loader
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses the manifest at path
func (l *Loader) Load(path string) (*Manifest, error) {
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat manifest file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	m, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// LoadFromBytes parses a manifest from raw bytes
func (l *Loader) LoadFromBytes(data []byte) (*Manifest, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrInvalidFormat
	}

	var r raw
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	main, err := decodeMain(r.Main)
	if err != nil {
		return nil, err
	}

	return &Manifest{Main: main}, nil
}
