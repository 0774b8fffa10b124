package domain

import (
	"errors"
	"fmt"
)

// Configuration errors, raised before any filesystem access
var (
	// ErrMissingPath indicates no directory was provided
	ErrMissingPath = errors.New("the path is required")

	// ErrInvalidPathType indicates the directory value is not a string
	ErrInvalidPathType = errors.New("the path must be a string")

	// ErrUnsupportedFormat indicates an unknown output format
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Run errors
var (
	// ErrTraversalFailed indicates a directory could not be read while locating manifests
	ErrTraversalFailed = errors.New("traversal failed")

	// ErrWriteConflict indicates the entry point appeared between check and write
	ErrWriteConflict = errors.New("entry point already exists")

	// ErrManifestDeleteFailed indicates the entry point was written but the manifest remains
	ErrManifestDeleteFailed = errors.New("manifest delete failed")

	// ErrManifestInvalid indicates a manifest could not be read or parsed
	ErrManifestInvalid = errors.New("invalid manifest")

	// ErrWriteFailed indicates writing the entry point failed for another reason
	ErrWriteFailed = errors.New("write failed")
)

// ManifestError represents a non-fatal failure while processing one manifest
type ManifestError struct {
	Path string
	Op   string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// NewManifestError creates a new ManifestError
func NewManifestError(path, op string, err error) *ManifestError {
	return &ManifestError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping a sentinel
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsFatal reports whether err must stop the whole run
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingPath) ||
		errors.Is(err, ErrInvalidPathType) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrTraversalFailed)
}
