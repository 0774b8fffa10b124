package domain

// Options contains the caller-supplied options for a run.
// Zero-valued fields fall back to defaults when merged.
type Options struct {
	Format string
}

// DefaultFormat is the output format used when none is supplied
const DefaultFormat = "cjs"

// DefaultOptions returns Options with default values.
func DefaultOptions() Options {
	return Options{Format: DefaultFormat}
}

// Merge returns a fresh Options with o laid over the defaults.
func (o Options) Merge() Options {
	merged := DefaultOptions()
	if o.Format != "" {
		merged.Format = o.Format
	}
	return merged
}
