package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// FileName is the manifest file name searched for
const FileName = "package.json"

// Manifest is the subset of a package.json consumed by entrify
type Manifest struct {
	// Path is the absolute path of the manifest file
	Path string
	// Main is the declared main module, empty when absent or falsy
	Main string
}

// HasMain reports whether the manifest declares a main module
func (m *Manifest) HasMain() bool {
	return m.Main != ""
}

// Dir returns the directory containing the manifest
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// raw mirrors the manifest fields with their JSON form preserved
type raw struct {
	Main json.RawMessage `json:"main"`
}

// decodeMain interprets the main field. null, false, 0 and "" are treated
// as absent; any other non-string value is rejected.
func decodeMain(msg json.RawMessage) (string, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return "", nil
	}

	switch msg[0] {
	case '"':
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidMain, err)
		}
		return s, nil
	case 'n':
		return "", nil
	case 'f':
		return "", nil
	case 't', '{', '[':
		return "", ErrInvalidMain
	}

	var n float64
	if err := json.Unmarshal(msg, &n); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMain, err)
	}
	if n == 0 {
		return "", nil
	}
	return "", ErrInvalidMain
}
