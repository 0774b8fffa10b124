package entry

import (
	"path/filepath"

	"github.com/quantmind-br/entrify/internal/manifest"
)

// Outcome is the result of inspecting one manifest
type Outcome int

const (
	// SkipNoMain means the manifest declares no main entry
	SkipNoMain Outcome = iota
	// SkipMainIsIndex means main already points at index.js
	SkipMainIsIndex
	// SkipAlreadyExists means an index.js is already present
	SkipAlreadyExists
	// Create means an entry point should be written
	Create
)

var outcomeNames = map[Outcome]string{
	SkipNoMain:        "skip-no-main",
	SkipMainIsIndex:   "skip-main-is-index",
	SkipAlreadyExists: "skip-already-exists",
	Create:            "create",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Decision is the outcome for a manifest together with what to write
type Decision struct {
	Outcome Outcome
	// IndexPath is the entry point location next to the manifest
	IndexPath string
	// Source is the rendered entry point, set only for Create
	Source string
}

// ExistsFunc reports whether a file exists
type ExistsFunc func(path string) (bool, error)

// Decide picks the outcome for m. exists is consulted only once the main
// entry checks have passed.
func Decide(m *manifest.Manifest, format Format, exists ExistsFunc) (Decision, error) {
	dir := m.Dir()
	d := Decision{IndexPath: filepath.Join(dir, IndexFile)}

	if !m.HasMain() {
		d.Outcome = SkipNoMain
		return d, nil
	}

	if m.Main == IndexFile || m.Main == "./"+IndexFile {
		d.Outcome = SkipMainIsIndex
		return d, nil
	}

	found, err := exists(d.IndexPath)
	if err != nil {
		return Decision{}, err
	}
	if found {
		d.Outcome = SkipAlreadyExists
		return d, nil
	}

	src, err := Render(format, NewRenderContext(filepath.Base(dir), m.Main))
	if err != nil {
		return Decision{}, err
	}
	d.Outcome = Create
	d.Source = src
	return d, nil
}
