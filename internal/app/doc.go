// Package app runs entrify over a directory tree: it locates manifests,
// decides per manifest whether an entry point is needed, then writes the
// entry point and deletes the manifest.
//
// Processing is sequential. Each manifest is finished before the next
// one is read, and a failure on one manifest never aborts the run.
package app
