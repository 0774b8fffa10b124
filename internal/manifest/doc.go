// Package manifest reads package.json manifests as plain data.
//
// Only the fields the entry point generator consumes are extracted. The
// file is decoded with a JSON parser and never evaluated, so a manifest
// cannot run code while it is being inspected.
//
// # Usage
//
//	loader := manifest.NewLoader(afero.NewOsFs())
//	m, err := loader.Load("/repo/packages/foo/package.json")
//	if err != nil {
//	    return err
//	}
//	if !m.HasMain() {
//	    // nothing to re-export
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidFormat: file is not a JSON object
//   - ErrInvalidMain: the main field is present but is not a string
//
// All of them wrap domain.ErrManifestInvalid.
package manifest
