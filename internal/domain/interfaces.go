package domain

//go:generate mockgen -source=interfaces.go -destination=../../tests/mocks/domain_mock.go -package=mocks

// Sink receives the diagnostics emitted while processing manifests.
// Implementations must not fail; diagnostics are observability output only.
type Sink interface {
	// Notice reports an expected step: discovery, creation or deletion
	Notice(event Event, path string)
	// Warn reports a skip (err is nil) or a per-manifest failure
	Warn(event Event, path string, err error)
}

// Progress is advanced once per processed manifest
type Progress interface {
	Add(n int) error
	Finish() error
}
