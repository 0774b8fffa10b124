package testutil

// Package fixtures shared by the entry point tests.
const (
	ValidManifest   = `{"name": "valid-package", "main": "lib/foo.js"}`
	InvalidManifest = `{"name": "invalid-package", "main": "index.js"}`
	FooModule       = `module.exports = 'test'`
)

// FixtureTree returns the standard fixture layout: a valid package, a package
// whose main is index.js, and a valid package nested one directory deeper.
func FixtureTree() map[string]string {
	return map[string]string{
		"valid-package/package.json":                ValidManifest,
		"valid-package/lib/foo.js":                  FooModule,
		"invalid-package/package.json":              InvalidManifest,
		"nested-package/valid-package/package.json": ValidManifest,
		"nested-package/valid-package/lib/foo.js":   FooModule,
	}
}
