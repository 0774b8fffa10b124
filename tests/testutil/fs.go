package testutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FaultFs wraps an afero.Fs and injects failures for selected paths
type FaultFs struct {
	afero.Fs

	// OpenErr fails Open for the listed paths (directory reads go through Open)
	OpenErr map[string]error
	// RemoveErr fails Remove for the listed paths
	RemoveErr map[string]error
	// Hidden makes Stat report the listed paths as missing while they still exist
	Hidden map[string]bool
}

// NewFaultFs wraps fs with no faults configured
func NewFaultFs(fs afero.Fs) *FaultFs {
	return &FaultFs{
		Fs:        fs,
		OpenErr:   map[string]error{},
		RemoveErr: map[string]error{},
		Hidden:    map[string]bool{},
	}
}

func (f *FaultFs) Open(name string) (afero.File, error) {
	if err, ok := f.OpenErr[filepath.Clean(name)]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.Open(name)
}

func (f *FaultFs) Remove(name string) error {
	if err, ok := f.RemoveErr[filepath.Clean(name)]; ok {
		return &os.PathError{Op: "remove", Path: name, Err: err}
	}
	return f.Fs.Remove(name)
}

func (f *FaultFs) Stat(name string) (os.FileInfo, error) {
	if f.Hidden[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}
	return f.Fs.Stat(name)
}
