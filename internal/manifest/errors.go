package manifest

import (
	"fmt"

	"github.com/quantmind-br/entrify/internal/domain"
)

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = fmt.Errorf("%w: manifest file not found", domain.ErrManifestInvalid)

	// ErrInvalidFormat indicates the manifest file is not a valid JSON object
	ErrInvalidFormat = fmt.Errorf("%w: manifest must be a JSON object", domain.ErrManifestInvalid)

	// ErrInvalidMain indicates the main field holds a truthy non-string value
	ErrInvalidMain = fmt.Errorf("%w: main entry must be a string", domain.ErrManifestInvalid)
)
