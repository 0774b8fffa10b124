package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/entrify/internal/domain"
	"github.com/quantmind-br/entrify/internal/entry"
)

// apply writes the entry point of a Create decision and deletes the manifest.
// The manifest is only deleted once the entry point is fully written.
func (e *Entrifier) apply(pkgPath string, d entry.Decision) error {
	if err := e.writeNew(d.IndexPath, d.Source); err != nil {
		return domain.NewManifestError(d.IndexPath, "write", err)
	}
	e.sink.Notice(domain.EventCreated, d.IndexPath)

	if err := e.fs.Remove(pkgPath); err != nil {
		return domain.NewManifestError(pkgPath, "delete", fmt.Errorf("%w: %v", domain.ErrManifestDeleteFailed, err))
	}
	e.sink.Notice(domain.EventDeleted, pkgPath)
	return nil
}

// writeNew creates path with content, failing if the file already exists
func (e *Entrifier) writeNew(path, content string) error {
	f, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return domain.ErrWriteConflict
		}
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	_, werr := f.WriteString(content)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		// remove the partial entry point
		_ = e.fs.Remove(path)
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, werr)
	}
	return nil
}
