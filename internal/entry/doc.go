// Package entry decides whether a manifest needs an index.js entry point
// and renders its source.
//
// Decide evaluates, in order: no main entry, main already pointing at
// index.js, an index.js already on disk, and finally Create. Only the last
// outcome carries rendered source. Nothing in this package writes to disk.
package entry
