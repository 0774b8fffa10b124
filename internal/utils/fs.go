package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// RequireDir returns an error unless path is an existing directory on fs
func RequireDir(fs afero.Fs, path string) error {
	ok, err := afero.IsDir(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory %s does not exist", path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
