// Package locator finds package.json manifests below a root directory.
package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quantmind-br/entrify/internal/domain"
	"github.com/quantmind-br/entrify/internal/manifest"
	"github.com/spf13/afero"
)

// Locator enumerates manifest files on a filesystem
type Locator struct {
	fs   afero.Fs
	name string
}

// New creates a Locator matching manifest.FileName
func New(fs afero.Fs) *Locator {
	return &Locator{fs: fs, name: manifest.FileName}
}

// Locate returns the absolute paths of every regular file named package.json
// under root, root included, in lexical order.
//
// Directories whose name starts with a dot are not descended into, and
// symlinked directories are not followed. A root that does not exist or is
// not a directory yields no matches. Any other read failure aborts with
// domain.ErrTraversalFailed.
func (l *Locator) Locate(root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTraversalFailed, err)
	}

	info, err := l.fs.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTraversalFailed, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	// Walk does not descend into a symlinked root, so walk its target and
	// report paths below abs.
	walkRoot, err := l.resolveRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTraversalFailed, err)
	}

	var paths []string
	walkErr := afero.Walk(l.fs, walkRoot, func(path string, info os.FileInfo, err error) error {
		if walkRoot != abs {
			rel, relErr := filepath.Rel(walkRoot, path)
			if relErr != nil {
				return fmt.Errorf("%w: %v", domain.ErrTraversalFailed, relErr)
			}
			path = filepath.Join(abs, rel)
		}

		if err != nil {
			if path != abs && errors.Is(err, os.ErrNotExist) {
				// removed while walking
				return nil
			}
			return fmt.Errorf("%w: %s: %v", domain.ErrTraversalFailed, path, err)
		}

		if info.IsDir() {
			if path != abs && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Name() != l.name {
			return nil
		}

		ok, err := l.isRegular(path, info)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrTraversalFailed, path, err)
		}
		if ok {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Strings(paths)
	return paths, nil
}

// isRegular resolves symlinks so that only regular files count as manifests
func (l *Locator) isRegular(path string, info os.FileInfo) (bool, error) {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular(), nil
	}

	target, err := l.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// dangling link
			return false, nil
		}
		return false, err
	}
	return target.Mode().IsRegular(), nil
}

// maxLinkHops bounds symlink chains on the root, matching the usual ELOOP limit
const maxLinkHops = 40

// resolveRoot follows root while it is a symlink. Filesystems without
// Lstat support are walked as is.
func (l *Locator) resolveRoot(root string) (string, error) {
	lstater, ok := l.fs.(afero.Lstater)
	if !ok {
		return root, nil
	}
	reader, ok := l.fs.(afero.LinkReader)
	if !ok {
		return root, nil
	}

	current := root
	for i := 0; i < maxLinkHops; i++ {
		info, lstatCalled, err := lstater.LstatIfPossible(current)
		if err != nil {
			return "", err
		}
		if !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}

		target, err := reader.ReadlinkIfPossible(current)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}
	return "", fmt.Errorf("%s: too many levels of symbolic links", root)
}
